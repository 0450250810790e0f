package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

func TestCompute_PackageWithAddOn(t *testing.T) {
	got := Compute(DefaultPackages, "full-basic", "5.1 – 8kg", []string{"toothbrush"}, nil)

	assert.Equal(t, 630, got.PackagePrice)
	require.Len(t, got.AddOns, 1)
	assert.Equal(t, 25, got.AddOns[0].Price)
	assert.Equal(t, 655, got.Subtotal)
	assert.Equal(t, 655, got.TotalAmount)
	assert.Equal(t, domain.BookingFee, got.BookingFee)
	assert.Equal(t, 555, got.BalanceOnVisit)
	assert.Equal(t, 100, got.TotalDueToday)
}

func TestCompute_UnknownWeightLabelFallsBackToFirstTier(t *testing.T) {
	got := Compute(DefaultPackages, "bubble-bath", "around 6kg", nil, nil)

	assert.Equal(t, 350, got.PackagePrice)
}

func TestCompute_UnknownPackageZeroed(t *testing.T) {
	got := Compute(DefaultPackages, "deluxe-spa", "5kg & below", []string{"toothbrush"}, nil)

	assert.Zero(t, got.PackagePrice)
	assert.Zero(t, got.Subtotal)
	assert.Zero(t, got.BookingFee)
	assert.Zero(t, got.BalanceOnVisit)
	assert.Empty(t, got.AddOns)
}

func TestCompute_SingleServices(t *testing.T) {
	got := Compute(DefaultPackages, domain.SingleServicePackageID, "30kg & above", nil, []string{"nail", "ear"})

	assert.Zero(t, got.PackagePrice)
	require.Len(t, got.Services, 2)
	assert.Equal(t, 80, got.Services[0].Price)
	assert.Equal(t, 90, got.Services[1].Price)
	assert.Equal(t, 170, got.Subtotal)
	assert.Equal(t, 70, got.BalanceOnVisit)
	assert.False(t, got.RequiresWeight)
}

func TestCompute_SingleServiceWithoutWeightFlagged(t *testing.T) {
	got := Compute(DefaultPackages, domain.SingleServicePackageID, "", nil, []string{"nail"})

	require.Len(t, got.Services, 1)
	assert.Zero(t, got.Services[0].Price)
	assert.True(t, got.Services[0].RequiresWeight)
	assert.True(t, got.RequiresWeight)
	assert.Zero(t, got.Subtotal)
}

func TestCompute_FlatServiceIgnoresWeight(t *testing.T) {
	got := Compute(DefaultPackages, domain.SingleServicePackageID, "", nil, []string{"face"})

	require.Len(t, got.Services, 1)
	assert.Equal(t, 250, got.Services[0].Price)
	assert.False(t, got.Services[0].RequiresWeight)
	assert.Equal(t, 250, got.Subtotal)
	assert.Equal(t, 150, got.BalanceOnVisit)
}

func TestCompute_DemattingChargesBaseRate(t *testing.T) {
	got := Compute(DefaultPackages, "full-styled", "30kg & above", []string{"dematting"}, nil)

	require.Len(t, got.AddOns, 1)
	assert.Equal(t, 80, got.AddOns[0].Price)
	assert.Equal(t, 1130, got.Subtotal)
}

func TestCompute_SubtotalBelowFee(t *testing.T) {
	got := Compute(DefaultPackages, domain.SingleServicePackageID, "5kg & below", nil, []string{"nail"})

	assert.Equal(t, 50, got.Subtotal)
	assert.Equal(t, 0, got.BalanceOnVisit)
	assert.Equal(t, 100, got.TotalDueToday)
}

func TestWeightCategory(t *testing.T) {
	tests := []struct {
		label string
		want  domain.WeightCategory
	}{
		{"5kg & below", domain.WeightSmall},
		{"5.1 – 8kg", domain.WeightSmall},
		{"8.1 – 15kg", domain.WeightSmall},
		{"15.1 – 30kg", domain.WeightLarge},
		{"30kg & above", domain.WeightLarge},
		{"12", domain.WeightSmall},
		{"18kg", domain.WeightLarge},
		{"heavy boy", domain.WeightSmall},
		{"", domain.WeightSmall},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, WeightCategory(tt.label))
		})
	}
}
