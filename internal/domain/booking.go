package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByCustomer BookingStatus = "cancelledByCustomer"
	StatusCancelledByAdmin    BookingStatus = "cancelledByAdmin"

	// StatusCancelledLegacy appears in records imported from the old system.
	// Treated as cancelled on read, never written.
	StatusCancelledLegacy BookingStatus = "cancelled"
)

// PetSpecies allowed pet kinds
type PetSpecies string

const (
	SpeciesDog PetSpecies = "dog"
	SpeciesCat PetSpecies = "cat"
)

// Booking represents a grooming appointment in the system
type Booking struct {
	ID   string
	Code string // short receipt code shown to customers, e.g. BB-X4K2P0917

	CustomerID    string
	CustomerName  string
	CustomerPhone string

	PetName     string
	PetSpecies  PetSpecies
	WeightLabel string

	PackageID   string
	PackageName string

	// Groomer is unset until assignment succeeds
	GroomerID   *string
	GroomerName *string

	Date time.Time // calendar day, time component zero
	Slot TimeSlot

	AddOns         []string
	SingleServices []string
	Notes          *string

	Cost CostBreakdown

	Status BookingStatus

	BeforeImageURL *string
	AfterImageURL  *string
	Featured       bool

	Rating int // 0 = not rated
	Review *string

	CancellationNote *string
	CancelledAt      *time.Time

	GroomingNotes *string
	CompletedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	switch b.Status {
	case StatusCancelledByCustomer, StatusCancelledByAdmin, StatusCancelledLegacy:
		return false
	}
	return true
}

// IsTerminal returns true if no further lifecycle transitions are allowed
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.IsCancelled()
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the customer may still edit the booking
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending
}

// IsCancelled returns true if the booking has been cancelled by anyone
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByCustomer ||
		b.Status == StatusCancelledByAdmin ||
		b.Status == StatusCancelledLegacy
}

// HasMedia returns true if both the before and after photos are set
func (b *Booking) HasMedia() bool {
	return b.BeforeImageURL != nil && *b.BeforeImageURL != "" &&
		b.AfterImageURL != nil && *b.AfterImageURL != ""
}

// AdminBookingsFilter filter for the admin booking list
type AdminBookingsFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	GroomerID       *string
	IncludeInactive bool
}
