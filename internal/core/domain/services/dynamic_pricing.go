package services

import (
	"time"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/quote"

	"github.com/zoobzio/clockz"
)

const (
	nightFactor    = 1.15
	lunchFactor    = 1.05
	festivalFactor = 1.25
)

// festivalMonths is the fixed calendar of festival surge periods. Festival
// detection is a pure function of the month so repeated calls under a fixed
// clock are reproducible.
var festivalMonths = map[time.Month]bool{
	time.April:    true, // Pohela Boishakh / Eid season
	time.October:  true, // Durga Puja
	time.December: true,
}

// PricingContext is the ephemeral bag of dynamic-pricing inputs for one
// adjustment pass. Zero factors default to 1.0; Hour and Festival override
// the clock-derived values when set, which keeps handlers testable and lets
// callers replay historical conditions.
type PricingContext struct {
	DemandFactor   float64
	SeasonalFactor float64
	Hour           *int
	Festival       *bool
}

// normalized returns the context with zero factors replaced by the neutral 1.0.
func (p PricingContext) normalized() PricingContext {
	if p.DemandFactor == 0 {
		p.DemandFactor = 1.0
	}
	if p.SeasonalFactor == 0 {
		p.SeasonalFactor = 1.0
	}
	return p
}

// DynamicPricingAdjuster applies time-of-day, demand, seasonal and festival
// surge multipliers to quotes. The adjustment is a pure transform: the input
// quote is untouched and the result carries the prior total plus the
// decomposed multiplier for transparency.
type DynamicPricingAdjuster struct {
	clock clockz.Clock
}

// NewDynamicPricingAdjuster creates an adjuster anchored to the given clock.
func NewDynamicPricingAdjuster(clock clockz.Clock) *DynamicPricingAdjuster {
	return &DynamicPricingAdjuster{clock: clock}
}

// Adjust returns a new quote with the composed surge multiplier applied to
// its total. The multiplier is timeOfDay × demand × seasonal × festival.
func (a *DynamicPricingAdjuster) Adjust(q quote.RateQuote, pctx PricingContext) quote.RateQuote {
	pctx = pctx.normalized()
	now := a.clock.Now()

	hour := now.Hour()
	if pctx.Hour != nil {
		hour = *pctx.Hour
	}

	festival := festivalMonths[now.Month()]
	if pctx.Festival != nil {
		festival = *pctx.Festival
	}

	factors := quote.PricingFactors{
		TimeOfDay: timeOfDayFactor(hour),
		Demand:    pctx.DemandFactor,
		Seasonal:  pctx.SeasonalFactor,
		Festival:  1.0,
	}
	if festival {
		factors.Festival = festivalFactor
	}

	multiplier := factors.Combined()
	newTotal := kernel.NewMoneyFromFloat(q.Total().Float64() * multiplier)

	return q.WithSurge(newTotal, quote.SurgeDetails{
		Multiplier:  multiplier,
		SurgeAmount: newTotal.Sub(q.Total()),
		Factors:     factors,
	})
}

// IsFestivalPeriod reports whether the clock currently falls in a festival
// surge month.
func (a *DynamicPricingAdjuster) IsFestivalPeriod() bool {
	return festivalMonths[a.clock.Now().Month()]
}

// timeOfDayFactor returns the surge factor for an hour of day: night hours
// (18:00-06:00) surge 15%, lunch hours (12:00-14:00) surge 5%.
func timeOfDayFactor(hour int) float64 {
	switch {
	case hour >= 18 || hour < 6:
		return nightFactor
	case hour >= 12 && hour < 14:
		return lunchFactor
	default:
		return 1.0
	}
}
