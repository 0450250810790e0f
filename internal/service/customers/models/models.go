package models

import (
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// WarningEventResponse is one entry of a customer's warning history
type WarningEventResponse struct {
	Type      string    `json:"type"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// WarningInfoResponse is the admin view of a customer's warning state
type WarningInfoResponse struct {
	UserID         string                 `json:"userId"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	WarningCount   int                    `json:"warningCount"`
	OnWatchlist    bool                   `json:"onWatchlist"`
	IsBanned       bool                   `json:"isBanned"`
	BanReason      *string                `json:"banReason,omitempty"`
	UpliftFee      *int                   `json:"upliftFee,omitempty"`
	WarningHistory []WarningEventResponse `json:"warningHistory"`
}

// WatchlistResponse lists customers at or above the watchlist threshold
type WatchlistResponse struct {
	Customers []WarningInfoResponse `json:"customers"`
	Total     int                   `json:"total"`
}

// LiftBanRequest lifts a ban, optionally resetting the warning counter
type LiftBanRequest struct {
	ResetWarnings bool
}

// FromDomainUser converts a domain user into the warning info view
func FromDomainUser(u *domain.User) *WarningInfoResponse {
	history := make([]WarningEventResponse, 0, len(u.WarningHistory))
	for _, e := range u.WarningHistory {
		history = append(history, WarningEventResponse{
			Type:      string(e.Type),
			Reason:    e.Reason,
			Timestamp: e.Timestamp,
		})
	}

	resp := &WarningInfoResponse{
		UserID:         u.ID,
		Name:           u.Name,
		Email:          u.Email,
		WarningCount:   u.WarningCount,
		OnWatchlist:    u.OnWatchlist(),
		IsBanned:       u.IsBanned,
		BanReason:      u.BanReason,
		WarningHistory: history,
	}
	if u.IsBanned {
		fee := domain.BanUpliftFee
		resp.UpliftFee = &fee
	}
	return resp
}

// FromDomainUserList converts the watchlist query result
func FromDomainUserList(users []*domain.User) *WatchlistResponse {
	customers := make([]WarningInfoResponse, 0, len(users))
	for _, u := range users {
		customers = append(customers, *FromDomainUser(u))
	}
	return &WatchlistResponse{Customers: customers, Total: len(customers)}
}
