package models

import (
	"errors"
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status string
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// Actor identifies who is performing an operation
type Actor struct {
	UserID string
	Role   domain.Role
}

// IsAdmin reports whether the actor holds the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == domain.RoleAdmin
}

// HistoryActor maps the actor to the audit-trail attribution
func (a Actor) HistoryActor() domain.HistoryActor {
	if a.IsAdmin() {
		return domain.ActorAdmin
	}
	return domain.ActorCustomer
}

// CancelRequest cancels a booking
type CancelRequest struct {
	Actor Actor
	Note  string
}

// CompleteRequest finishes a confirmed booking
type CompleteRequest struct {
	Actor         Actor
	GroomingNotes string
}

// UpdatePendingRequest edits a pending booking
type UpdatePendingRequest struct {
	Actor          Actor
	PetName        *string
	WeightLabel    *string
	AddOns         []string
	SingleServices []string
	Notes          *string
}

// SetMediaRequest stores or clears the before/after photos
type SetMediaRequest struct {
	Actor     Actor
	BeforeURL *string
	AfterURL  *string
}

// SetReviewRequest stores the customer rating and review
type SetReviewRequest struct {
	Actor  Actor
	Rating int
	Review *string
}

// ListRequest filters the admin booking list
type ListRequest struct {
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	GroomerID       *string
	IncludeInactive bool
}

// ToDomainFilter converts the request into the repository filter
func (r *ListRequest) ToDomainFilter() (domain.AdminBookingsFilter, error) {
	filter := domain.AdminBookingsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		GroomerID:       r.GroomerID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingResponse booking data returned to handlers
type BookingResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`

	CustomerID    string `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	PetName     string `json:"petName"`
	PetSpecies  string `json:"petSpecies"`
	WeightLabel string `json:"weightLabel,omitempty"`

	PackageID   string `json:"packageId"`
	PackageName string `json:"packageName"`

	GroomerID   *string `json:"groomerId,omitempty"`
	GroomerName *string `json:"groomerName,omitempty"`

	Date string `json:"date"` // "2026-03-14"
	Slot string `json:"slot"`

	AddOns         []string `json:"addOns,omitempty"`
	SingleServices []string `json:"singleServices,omitempty"`
	Notes          *string  `json:"notes,omitempty"`

	Cost domain.CostBreakdown `json:"cost"`

	Status string `json:"status"`

	BeforeImageURL *string `json:"beforeImageUrl,omitempty"`
	AfterImageURL  *string `json:"afterImageUrl,omitempty"`
	Featured       bool    `json:"featured"`

	Rating int     `json:"rating,omitempty"`
	Review *string `json:"review,omitempty"`

	CancellationNote *string `json:"cancellationNote,omitempty"`
	CancelledAt      *string `json:"cancelledAt,omitempty"` // ISO 8601

	GroomingNotes *string `json:"groomingNotes,omitempty"`
	CompletedAt   *string `json:"completedAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// HistoryEntryResponse one audit-trail entry
type HistoryEntryResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	Action    string    `json:"action"`
	Message   string    `json:"message"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryListResponse a booking's audit trail
type HistoryListResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

// Conversion helpers

// FromDomainBooking converts the domain model into the DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:             b.ID,
		Code:           b.Code,
		CustomerID:     b.CustomerID,
		CustomerName:   b.CustomerName,
		CustomerPhone:  b.CustomerPhone,
		PetName:        b.PetName,
		PetSpecies:     string(b.PetSpecies),
		WeightLabel:    b.WeightLabel,
		PackageID:      b.PackageID,
		PackageName:    b.PackageName,
		GroomerID:      b.GroomerID,
		GroomerName:    b.GroomerName,
		Date:           b.Date.Format(domain.DateFormat),
		Slot:           string(b.Slot),
		AddOns:         b.AddOns,
		SingleServices: b.SingleServices,
		Notes:          b.Notes,
		Cost:           b.Cost,
		Status:         string(b.Status),
		BeforeImageURL: b.BeforeImageURL,
		AfterImageURL:  b.AfterImageURL,
		Featured:       b.Featured,
		Rating:         b.Rating,
		Review:         b.Review,
		CancellationNote: b.CancellationNote,
		GroomingNotes:    b.GroomingNotes,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelled := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}
	if b.CompletedAt != nil {
		completed := b.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}

	return resp
}

// FromDomainBookingList converts a slice of domain bookings
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

// FromDomainHistory converts a slice of history entries
func FromDomainHistory(entries []*domain.BookingHistoryEntry) *HistoryListResponse {
	resp := &HistoryListResponse{
		Entries: make([]HistoryEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, HistoryEntryResponse{
			ID:        e.ID,
			BookingID: e.BookingID,
			Action:    string(e.Action),
			Message:   e.Message,
			Actor:     string(e.Actor),
			Timestamp: e.Timestamp,
		})
	}
	return resp
}

// ToDomainBookingStatus validates and converts a status string
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByCustomer,
		domain.StatusCancelledByAdmin,
		domain.StatusCancelledLegacy:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
