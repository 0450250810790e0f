package models

import "github.com/bestbuddies/grooming-service/internal/domain"

// GroomerResponse is the API view of a roster entry
type GroomerResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Specialty        string `json:"specialty"`
	MaxDailyBookings int    `json:"maxDailyBookings"`
	Reserve          bool   `json:"reserve"`
	Linked           bool   `json:"linked"`
}

// GroomerListResponse is the roster list
type GroomerListResponse struct {
	Groomers []GroomerResponse `json:"groomers"`
	Total    int               `json:"total"`
}

// FromDomainGroomer converts a roster entry into the API view
func FromDomainGroomer(g *domain.Groomer) *GroomerResponse {
	return &GroomerResponse{
		ID:               g.ID,
		Name:             g.Name,
		Specialty:        g.Specialty,
		MaxDailyBookings: g.DailyLimit(),
		Reserve:          g.Reserve,
		Linked:           g.StaffUserID != nil,
	}
}

// FromDomainGroomerList converts the roster
func FromDomainGroomerList(groomers []domain.Groomer) *GroomerListResponse {
	out := make([]GroomerResponse, 0, len(groomers))
	for i := range groomers {
		out = append(out, *FromDomainGroomer(&groomers[i]))
	}
	return &GroomerListResponse{Groomers: out, Total: len(out)}
}
