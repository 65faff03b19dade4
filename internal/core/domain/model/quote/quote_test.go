package quote_test

import (
	"testing"
	"time"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/quote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuote() quote.RateQuote {
	return quote.NewRateQuote(
		"pathao",
		"Pathao Courier",
		courier.ServiceStandard,
		quote.Charges{Base: 60, Weight: 20, Distance: 10, COD: 10, FuelSurcharge: 3, Service: 0},
		"",
		quote.DeliveryEstimate{Hours: 72, ETA: time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC)},
		true,
		quote.DistanceResolved,
		false,
		[]string{"tracking"},
	)
}

func TestNewRateQuote_TotalEqualsSumOfParts(t *testing.T) {
	q := newTestQuote()

	assert.EqualValues(t, 60+20+10+10+3, q.Total())
	assert.Equal(t, q.Charges().Total(), q.Total())
	assert.Equal(t, kernel.CurrencyBDT, q.Currency())
	assert.Nil(t, q.OriginalTotal())
	assert.Nil(t, q.Surge())
	assert.Nil(t, q.Discount())
}

func TestRateQuote_WithSurge(t *testing.T) {
	// Arrange
	q := newTestQuote()
	factors := quote.PricingFactors{TimeOfDay: 1.15, Demand: 1.2, Seasonal: 1.0, Festival: 1.0}

	// Act
	adjusted := q.WithSurge(142, quote.SurgeDetails{
		Multiplier:  factors.Combined(),
		SurgeAmount: 39,
		Factors:     factors,
	})

	// Assert
	assert.EqualValues(t, 142, adjusted.Total())
	require.NotNil(t, adjusted.OriginalTotal())
	assert.Equal(t, q.Total(), *adjusted.OriginalTotal())
	require.NotNil(t, adjusted.Surge())
	assert.InDelta(t, 1.38, adjusted.Surge().Multiplier, 0.001)

	// The source quote is untouched.
	assert.EqualValues(t, 103, q.Total())
	assert.Nil(t, q.Surge())
}

func TestRateQuote_WithDiscount_ChainsProvenance(t *testing.T) {
	q := newTestQuote()
	surged := q.WithSurge(142, quote.SurgeDetails{Multiplier: 1.38, SurgeAmount: 39})

	discounted := surged.WithDiscount(128, quote.DiscountDetails{
		TierName:       "gold",
		Percentage:     10,
		DiscountAmount: 14,
	})

	// Each step records its immediate predecessor.
	require.NotNil(t, discounted.OriginalTotal())
	assert.EqualValues(t, 142, *discounted.OriginalTotal())
	assert.EqualValues(t, 128, discounted.Total())
	require.NotNil(t, discounted.Surge())
	require.NotNil(t, discounted.Discount())
	assert.Equal(t, "gold", discounted.Discount().TierName)
}

func TestPricingFactors_Combined(t *testing.T) {
	factors := quote.PricingFactors{TimeOfDay: 1.15, Demand: 1.5, Seasonal: 1.2, Festival: 1.25}

	assert.InDelta(t, 1.15*1.5*1.2*1.25, factors.Combined(), 0.0001)
}

func TestDistanceConfidence_String(t *testing.T) {
	assert.Equal(t, "resolved", quote.DistanceResolved.String())
	assert.Equal(t, "defaulted", quote.DistanceDefaulted.String())
}
