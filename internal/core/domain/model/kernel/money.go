package kernel

import (
	"fmt"
	"math"
)

// CurrencyBDT is the fixed domestic currency for every quote the engine
// produces. International tariff rows may override it explicitly.
const CurrencyBDT = "BDT"

// Money is a whole-unit monetary amount. The engine works in integer-rounded
// amounts with no minor units, so Money is a plain integer count of the
// quote's currency.
type Money int64

// NewMoneyFromFloat rounds a computed amount to the nearest whole unit.
// All fractional intermediate results (per-kg charges, percentage surcharges)
// are rounded through this single function so every itemized charge is an
// integer and quote totals stay an exact sum of their parts.
func NewMoneyFromFloat(v float64) Money {
	return Money(math.Round(v))
}

// Float64 returns the amount as a float for multiplier arithmetic.
func (m Money) Float64() float64 {
	return float64(m)
}

// Percent returns p percent of the amount, rounded to the nearest whole unit.
func (m Money) Percent(p float64) Money {
	return NewMoneyFromFloat(float64(m) * p / 100)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return m - other
}

// String renders the amount with the domestic currency code, e.g. "145 BDT".
func (m Money) String() string {
	return fmt.Sprintf("%d %s", int64(m), CurrencyBDT)
}
