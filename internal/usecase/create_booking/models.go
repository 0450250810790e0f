package create_booking

import (
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// Request is the booking wizard submission
type Request struct {
	CustomerID    string
	CustomerName  string
	CustomerPhone string

	PetName    string
	PetSpecies string

	WeightLabel    string
	PackageID      string
	AddOns         []string
	SingleServices []string

	Date time.Time
	Slot string

	// Groomer the customer asked for; empty means auto-assign
	RequestedGroomerID string

	Notes *string
}

// Response is the created booking
type Response struct {
	ID          string
	Code        string
	CustomerID  string
	PetName     string
	PackageID   string
	PackageName string

	GroomerID   *string
	GroomerName *string

	Date string
	Slot string

	Cost   domain.CostBreakdown
	Status string

	CreatedAt time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		Code:        b.Code,
		CustomerID:  b.CustomerID,
		PetName:     b.PetName,
		PackageID:   b.PackageID,
		PackageName: b.PackageName,
		GroomerID:   b.GroomerID,
		GroomerName: b.GroomerName,
		Date:        b.Date.Format(domain.DateFormat),
		Slot:        string(b.Slot),
		Cost:        b.Cost,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}
}
