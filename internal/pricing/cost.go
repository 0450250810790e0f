package pricing

import "github.com/bestbuddies/grooming-service/internal/domain"

// Compute builds the itemized cost breakdown for a booking. Unknown
// package IDs produce a zeroed breakdown rather than an error; the
// lifecycle layer treats pricing as best effort and never blocks a
// booking on catalog gaps.
func Compute(
	packages []domain.Package,
	packageID string,
	weightLabel string,
	addOns []string,
	singleServices []string,
) domain.CostBreakdown {
	breakdown := domain.CostBreakdown{WeightLabel: weightLabel}

	pkg := findPackage(packages, packageID)
	if pkg == nil {
		return breakdown
	}

	if packageID == domain.SingleServicePackageID {
		for _, serviceID := range singleServices {
			line := singleServiceLine(serviceID, weightLabel)
			breakdown.Services = append(breakdown.Services, line)
			breakdown.Subtotal += line.Price
			if line.RequiresWeight {
				breakdown.RequiresWeight = true
			}
		}
	} else if weightLabel != "" {
		breakdown.PackagePrice = pkg.TierPrice(weightLabel)
		breakdown.Subtotal = breakdown.PackagePrice
	} else {
		breakdown.RequiresWeight = true
	}

	for _, key := range addOns {
		addOn, ok := AddOnCatalog[key]
		if !ok {
			continue
		}
		breakdown.AddOns = append(breakdown.AddOns, domain.CostLine{
			Key:   addOn.Key,
			Label: addOn.Label,
			Price: addOn.Price,
		})
		breakdown.Subtotal += addOn.Price
	}

	breakdown.BookingFee = domain.BookingFee
	breakdown.TotalDueToday = domain.BookingFee
	breakdown.TotalAmount = breakdown.Subtotal
	breakdown.BalanceOnVisit = max(0, breakdown.Subtotal-domain.BookingFee)
	return breakdown
}

func findPackage(packages []domain.Package, id string) *domain.Package {
	for i := range packages {
		if packages[i].ID == id {
			return &packages[i]
		}
	}
	return nil
}

// singleServiceLine prices one mix-and-match item. Weight-tiered services
// report zero with the RequiresWeight flag until the customer supplies a
// weight label; flat services never need one.
func singleServiceLine(serviceID, weightLabel string) domain.CostLine {
	service, ok := SingleServiceCatalog[serviceID]
	if !ok {
		return domain.CostLine{Key: serviceID, Label: "Unknown service", RequiresWeight: true}
	}

	line := domain.CostLine{Key: service.ID, Label: service.Label}
	if service.FlatPrice > 0 {
		line.Price = service.FlatPrice
		return line
	}
	if weightLabel == "" {
		line.RequiresWeight = true
		return line
	}
	line.Price = service.Tiers[WeightCategory(weightLabel)]
	return line
}
