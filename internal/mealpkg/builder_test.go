package mealpkg_test

import (
	"errors"
	"testing"

	"github.com/dinepay/escrow-service/internal/domain"
	"github.com/dinepay/escrow-service/internal/mealpkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullComponents() map[domain.Slot]domain.PricedItem {
	return map[domain.Slot]domain.PricedItem{
		domain.SlotAppetizer:  {Name: "bruschetta", Price: 8.50},
		domain.SlotMainCourse: {Name: "osso buco", Price: 32.00},
		domain.SlotDessert:    {Name: "tiramisu", Price: 9.00},
		domain.SlotBeverage:   {Name: "house red", Price: 11.00},
	}
}

func TestBuildAppliesPackageDiscount(t *testing.T) {
	builder := mealpkg.NewBuilder(0)

	pkg, err := builder.Build(fullComponents())
	require.NoError(t, err)

	assert.InDelta(t, 60.50, pkg.IndividualTotal, 1e-9)
	assert.InDelta(t, 60.50*0.85, pkg.PackagePrice, 1e-9)
	assert.Equal(t, 15.0, pkg.SavingsPercentage)
	// package_price + savings_amount == individual_total, always
	assert.InDelta(t, pkg.IndividualTotal, pkg.PackagePrice+pkg.SavingsAmount, 1e-9)
}

func TestBuildMissingComponents(t *testing.T) {
	builder := mealpkg.NewBuilder(0)

	components := fullComponents()
	delete(components, domain.SlotDessert)
	delete(components, domain.SlotBeverage)

	_, err := builder.Build(components)
	var missingErr *domain.MissingComponentError
	require.True(t, errors.As(err, &missingErr))
	assert.ElementsMatch(t, []domain.Slot{domain.SlotDessert, domain.SlotBeverage}, missingErr.Slots)
	assert.Contains(t, missingErr.Error(), "dessert")
}

func TestBuildEmptyInput(t *testing.T) {
	builder := mealpkg.NewBuilder(0)

	_, err := builder.Build(nil)
	var missingErr *domain.MissingComponentError
	require.True(t, errors.As(err, &missingErr))
	assert.Len(t, missingErr.Slots, 4)
}

func TestBuildCustomDiscount(t *testing.T) {
	builder := mealpkg.NewBuilder(0.20)

	pkg, err := builder.Build(fullComponents())
	require.NoError(t, err)
	assert.InDelta(t, 60.50*0.80, pkg.PackagePrice, 1e-9)
	assert.Equal(t, 20.0, pkg.SavingsPercentage)
}
