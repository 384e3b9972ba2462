package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricingQuote(t *testing.T) {
	pricing := Pricing{BaseFee: 30000, EquipmentUnitFee: 1000, CleaningFee: 5000}

	details := pricing.Quote(nil)
	assert.Equal(t, float64(30000), details.FraisLocation)
	assert.Zero(t, details.FraisEquipements)
	assert.Equal(t, float64(35000), details.Total())

	details = pricing.Quote([]EquipmentSelection{
		{EquipmentID: 1, Quantity: 100},
		{EquipmentID: 2, Quantity: 20},
	})
	assert.Equal(t, float64(120000), details.FraisEquipements)
	assert.Equal(t, float64(155000), details.Total())
}

func TestPricingQuoteIgnoresNonPositiveQuantities(t *testing.T) {
	pricing := Pricing{BaseFee: 30000, EquipmentUnitFee: 1000, CleaningFee: 5000}

	details := pricing.Quote([]EquipmentSelection{
		{EquipmentID: 1, Quantity: -5},
		{EquipmentID: 2, Quantity: 10},
	})
	assert.Equal(t, float64(10000), details.FraisEquipements)
}
