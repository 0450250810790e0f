// Package pricing holds the grooming price catalog defaults and the cost
// calculator. Prices are whole pesos.
package pricing

import "github.com/bestbuddies/grooming-service/internal/domain"

// AddOn one bookable extra with a flat base price
type AddOn struct {
	Key   string
	Label string
	Price int
}

// AddOnCatalog base prices for add-ons. De-matting charges the starting
// rate; the heavy-tangles price in the catalog is display data quoted by
// the groomer on site.
var AddOnCatalog = map[string]AddOn{
	"toothbrush": {Key: "toothbrush", Label: "Toothbrush Add-on", Price: 25},
	"dematting":  {Key: "dematting", Label: "De-matting Add-on", Price: 80},
}

// SingleService one mix-and-match service priced by weight category
type SingleService struct {
	ID        string
	Label     string
	FlatPrice int // 0 means weight-tiered
	Tiers     map[domain.WeightCategory]int
}

// SingleServiceCatalog weight-category prices for the single-service
// package items
var SingleServiceCatalog = map[string]SingleService{
	"nail": {
		ID:    "nail",
		Label: "Nail Trim",
		Tiers: map[domain.WeightCategory]int{domain.WeightSmall: 50, domain.WeightLarge: 80},
	},
	"ear": {
		ID:    "ear",
		Label: "Ear Clean",
		Tiers: map[domain.WeightCategory]int{domain.WeightSmall: 70, domain.WeightLarge: 90},
	},
	"face": {
		ID:        "face",
		Label:     "Face Trim",
		FlatPrice: 250,
	},
}

// DefaultPackages is seeded on first start when the packages collection
// is empty. Tier labels are matched verbatim against the booking's weight
// label.
var DefaultPackages = []domain.Package{
	{
		ID:              "full-basic",
		Name:            "Full Package · Basic",
		Type:            domain.PackageTypeAny,
		DurationMinutes: 75,
		Includes: []string{
			"Bath & Dry",
			"Brush / De-Shedding",
			"Hair Cut (Basic)",
			"Nail Trim",
			"Ear Clean",
			"Foot Pad Clean",
			"Cologne",
		},
		Tiers: []domain.PriceTier{
			{Label: "5kg & below", Price: 530},
			{Label: "5.1 – 8kg", Price: 630},
			{Label: "8.1 – 15kg", Price: 750},
			{Label: "15.1 – 30kg", Price: 800},
			{Label: "30kg & above", Price: 920},
		},
	},
	{
		ID:              "full-styled",
		Name:            "Full Package · Trimming & Styling",
		Type:            domain.PackageTypeAny,
		DurationMinutes: 90,
		Includes: []string{
			"Bath & Dry",
			"Brush / De-Shedding",
			"Hair Cut (Styled)",
			"Nail Trim",
			"Ear Clean",
			"Foot Pad Clean",
			"Cologne",
		},
		Tiers: []domain.PriceTier{
			{Label: "5kg & below", Price: 630},
			{Label: "5.1 – 8kg", Price: 730},
			{Label: "8.1 – 15kg", Price: 880},
			{Label: "15.1 – 30kg", Price: 930},
			{Label: "30kg & above", Price: 1050},
		},
	},
	{
		ID:              "bubble-bath",
		Name:            "Shampoo Bath 'n Bubble",
		Type:            domain.PackageTypeAny,
		DurationMinutes: 60,
		Includes: []string{
			"Bath & Dry",
			"Brush / De-Shedding",
			"Hygiene Trim",
			"Nail Trim",
			"Ear Clean",
			"Foot Pad Clean",
			"Cologne",
		},
		Tiers: []domain.PriceTier{
			{Label: "5kg & below", Price: 350},
			{Label: "5.1 – 8kg", Price: 450},
			{Label: "8.1 – 15kg", Price: 550},
			{Label: "15.1 – 30kg", Price: 600},
			{Label: "30kg & above", Price: 700},
		},
	},
	{
		ID:              domain.SingleServicePackageID,
		Name:            "Single Service · Mix & Match",
		Type:            domain.PackageTypeAny,
		DurationMinutes: 45,
		Includes: []string{
			"Choose from Nail Trim, Ear Clean, or Hygiene Focus",
			"Add to any package as needed",
		},
		Tiers: []domain.PriceTier{
			{Label: "Nail Trim 5kg & below", Price: 50},
			{Label: "Nail Trim 30kg & above", Price: 80},
			{Label: "Ear Clean 5kg & below", Price: 70},
			{Label: "Ear Clean 30kg & above", Price: 90},
		},
	},
	{
		ID:              "addon-toothbrush",
		Name:            "Add-on · Toothbrush",
		Type:            domain.PackageTypeAddon,
		DurationMinutes: 5,
		Includes:        []string{"Individual toothbrush to bring home"},
		Tiers: []domain.PriceTier{
			{Label: "Per item", Price: 25},
		},
	},
	{
		ID:              "addon-dematting",
		Name:            "Add-on · De-matting",
		Type:            domain.PackageTypeAddon,
		DurationMinutes: 25,
		Includes:        []string{"Targeted de-matting service"},
		Tiers: []domain.PriceTier{
			{Label: "Light tangles", Price: 80},
			{Label: "Heavy tangles", Price: 250},
		},
	},
}
