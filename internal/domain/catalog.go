package domain

import "time"

// SingleServicePackageID is the distinguished mix-and-match package whose
// price is the sum of the selected single services
const SingleServicePackageID = "single-service"

// PackageType distinguishes bookable packages from add-on catalog rows
type PackageType string

const (
	PackageTypeAny   PackageType = "any"
	PackageTypeAddon PackageType = "addon"
)

// PriceTier one weight bracket of a package's price table
type PriceTier struct {
	Label string `json:"label"`
	Price int    `json:"price"`
}

// Package a grooming package as stored in the catalog
type Package struct {
	ID              string
	Name            string
	Type            PackageType
	DurationMinutes int
	Includes        []string
	Tiers           []PriceTier

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TierPrice returns the price for an exact weight-label match. When the
// label matches no tier the first tier's price applies.
func (p *Package) TierPrice(weightLabel string) int {
	if len(p.Tiers) == 0 {
		return 0
	}
	for _, tier := range p.Tiers {
		if tier.Label == weightLabel {
			return tier.Price
		}
	}
	return p.Tiers[0].Price
}

// WeightCategory is the coarse small/large split used by single-service
// and add-on pricing
type WeightCategory string

const (
	WeightSmall WeightCategory = "small"
	WeightLarge WeightCategory = "large"
)

// CostLine one priced item inside a cost breakdown
type CostLine struct {
	Key            string `json:"key"`
	Label          string `json:"label"`
	Price          int    `json:"price"`
	RequiresWeight bool   `json:"requiresWeight,omitempty"`
}

// CostBreakdown the itemized cost of a booking. Stored with the booking so
// later catalog edits never reprice past appointments.
type CostBreakdown struct {
	PackagePrice   int        `json:"packagePrice"`
	Services       []CostLine `json:"services,omitempty"`
	AddOns         []CostLine `json:"addOns,omitempty"`
	Subtotal       int        `json:"subtotal"`
	BookingFee     int        `json:"bookingFee"`
	TotalAmount    int        `json:"totalAmount"`
	BalanceOnVisit int        `json:"balanceOnVisit"`
	TotalDueToday  int        `json:"totalDueToday"`
	WeightLabel    string     `json:"weightLabel,omitempty"`
	RequiresWeight bool       `json:"requiresWeight,omitempty"`
}
