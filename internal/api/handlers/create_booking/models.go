package create_booking

import (
	"fmt"
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
	createBooking "github.com/bestbuddies/grooming-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	PetName    string `json:"petName"`
	PetSpecies string `json:"petSpecies"`

	WeightLabel    string   `json:"weightLabel"`
	PackageID      string   `json:"packageId"`
	AddOns         []string `json:"addOns,omitempty"`
	SingleServices []string `json:"singleServices,omitempty"`

	Date string `json:"date"`
	Slot string `json:"slot"`

	GroomerID string  `json:"groomerId,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the HTTP request, parsing the date
func (r *CreateBookingRequest) ToUseCaseRequest(customerID string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	return &createBooking.Request{
		CustomerID:         customerID,
		CustomerName:       r.CustomerName,
		CustomerPhone:      r.CustomerPhone,
		PetName:            r.PetName,
		PetSpecies:         r.PetSpecies,
		WeightLabel:        r.WeightLabel,
		PackageID:          r.PackageID,
		AddOns:             r.AddOns,
		SingleServices:     r.SingleServices,
		Date:               date,
		Slot:               r.Slot,
		RequestedGroomerID: r.GroomerID,
		Notes:              r.Notes,
	}, nil
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID          string               `json:"id"`
	Code        string               `json:"code"`
	CustomerID  string               `json:"customerId"`
	PetName     string               `json:"petName"`
	PackageID   string               `json:"packageId"`
	PackageName string               `json:"packageName"`
	GroomerID   *string              `json:"groomerId,omitempty"`
	GroomerName *string              `json:"groomerName,omitempty"`
	Date        string               `json:"date"`
	Slot        string               `json:"slot"`
	Cost        domain.CostBreakdown `json:"cost"`
	Status      string               `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// FromUseCaseResponse converts the use case result into the HTTP model
func FromUseCaseResponse(r *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:          r.ID,
		Code:        r.Code,
		CustomerID:  r.CustomerID,
		PetName:     r.PetName,
		PackageID:   r.PackageID,
		PackageName: r.PackageName,
		GroomerID:   r.GroomerID,
		GroomerName: r.GroomerName,
		Date:        r.Date,
		Slot:        r.Slot,
		Cost:        r.Cost,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}
