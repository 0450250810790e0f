package get_packages

import (
	"sort"

	"github.com/bestbuddies/grooming-service/internal/domain"
	"github.com/bestbuddies/grooming-service/internal/pricing"
)

// PriceTierResponse one weight label with its package price
type PriceTierResponse struct {
	Label string `json:"label"`
	Price int    `json:"price"`
}

// PackageResponse one bookable package
type PackageResponse struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Type            string              `json:"type"`
	DurationMinutes int                 `json:"durationMinutes"`
	Includes        []string            `json:"includes"`
	Tiers           []PriceTierResponse `json:"tiers"`
}

// AddOnResponse one bookable extra
type AddOnResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Price int    `json:"price"`
}

// SingleServiceResponse one mix-and-match service with its price table
type SingleServiceResponse struct {
	ID        string         `json:"id"`
	Label     string         `json:"label"`
	FlatPrice int            `json:"flatPrice,omitempty"`
	Tiers     map[string]int `json:"tiers,omitempty"`
}

// CatalogResponse the full bookable catalog
type CatalogResponse struct {
	Packages       []PackageResponse       `json:"packages"`
	AddOns         []AddOnResponse         `json:"addOns"`
	SingleServices []SingleServiceResponse `json:"singleServices"`
}

func toCatalogResponse(packages []domain.Package) *CatalogResponse {
	resp := &CatalogResponse{
		Packages:       make([]PackageResponse, 0, len(packages)),
		AddOns:         make([]AddOnResponse, 0, len(pricing.AddOnCatalog)),
		SingleServices: make([]SingleServiceResponse, 0, len(pricing.SingleServiceCatalog)),
	}

	for _, pkg := range packages {
		tiers := make([]PriceTierResponse, 0, len(pkg.Tiers))
		for _, tier := range pkg.Tiers {
			tiers = append(tiers, PriceTierResponse{Label: tier.Label, Price: tier.Price})
		}
		resp.Packages = append(resp.Packages, PackageResponse{
			ID:              pkg.ID,
			Name:            pkg.Name,
			Type:            string(pkg.Type),
			DurationMinutes: pkg.DurationMinutes,
			Includes:        pkg.Includes,
			Tiers:           tiers,
		})
	}

	for _, addOn := range pricing.AddOnCatalog {
		resp.AddOns = append(resp.AddOns, AddOnResponse{
			Key:   addOn.Key,
			Label: addOn.Label,
			Price: addOn.Price,
		})
	}
	sort.Slice(resp.AddOns, func(i, j int) bool { return resp.AddOns[i].Key < resp.AddOns[j].Key })

	for _, svc := range pricing.SingleServiceCatalog {
		tiers := make(map[string]int, len(svc.Tiers))
		for category, price := range svc.Tiers {
			tiers[string(category)] = price
		}
		resp.SingleServices = append(resp.SingleServices, SingleServiceResponse{
			ID:        svc.ID,
			Label:     svc.Label,
			FlatPrice: svc.FlatPrice,
			Tiers:     tiers,
		})
	}
	sort.Slice(resp.SingleServices, func(i, j int) bool { return resp.SingleServices[i].ID < resp.SingleServices[j].ID })

	return resp
}
