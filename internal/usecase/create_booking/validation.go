package create_booking

import (
	"fmt"
	"regexp"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// Philippine mobile numbers: +63 or 0 prefix followed by ten digits
var phonePattern = regexp.MustCompile(`^(\+63|0)[0-9]{10}$`)

// validateRequest checks the wizard submission before any storage work
func validateRequest(req *Request) error {
	if req.CustomerID == "" {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if !phonePattern.MatchString(req.CustomerPhone) {
		return fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}

	if req.PetName == "" {
		return fmt.Errorf("%w: petName is required", ErrInvalidInput)
	}

	species := domain.PetSpecies(req.PetSpecies)
	if species != domain.SpeciesDog && species != domain.SpeciesCat {
		return fmt.Errorf("%w: species must be dog or cat", ErrInvalidInput)
	}

	if req.PackageID == "" {
		return fmt.Errorf("%w: packageID is required", ErrInvalidInput)
	}

	if req.PackageID == domain.SingleServicePackageID && len(req.SingleServices) == 0 {
		return fmt.Errorf("%w: at least one single service is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsValidTimeSlot(domain.TimeSlot(req.Slot)) {
		return fmt.Errorf("%w: invalid time slot", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
