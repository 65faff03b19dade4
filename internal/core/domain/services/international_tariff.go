package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/shipment"

	"github.com/zoobzio/clockz"
)

// ErrUnsupportedDestination is the hard error for countries absent from the
// tariff table. Unlike domestic coverage gaps there is no sane default for an
// arbitrary country, so this is never a soft skip.
var ErrUnsupportedDestination = errors.New("destination country is not supported")

// UnsupportedDestinationError carries the offending country name.
type UnsupportedDestinationError struct {
	Country string
}

func (e *UnsupportedDestinationError) Error() string {
	return fmt.Sprintf("destination country is not supported: %s", e.Country)
}

func (e *UnsupportedDestinationError) Unwrap() error {
	return ErrUnsupportedDestination
}

// ShippingMethod is the closed enumeration of international transport modes.
type ShippingMethod int

const (
	// MethodAir is standard air freight.
	MethodAir ShippingMethod = iota
	// MethodSea is sea freight, cheapest and slowest.
	MethodSea
	// MethodExpress is priority air with customs fast-track.
	MethodExpress
)

// ParseShippingMethod converts a wire-level method name into the enum.
func ParseShippingMethod(s string) (ShippingMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "air", "":
		return MethodAir, nil
	case "sea":
		return MethodSea, nil
	case "express":
		return MethodExpress, nil
	default:
		return MethodAir, fmt.Errorf("unknown shipping method %q", s)
	}
}

// String returns the wire-level method name.
func (m ShippingMethod) String() string {
	switch m {
	case MethodSea:
		return "sea"
	case MethodExpress:
		return "express"
	default:
		return "air"
	}
}

// factor is the freight cost multiplier of the method.
func (m ShippingMethod) factor() float64 {
	switch m {
	case MethodSea:
		return 0.6
	case MethodExpress:
		return 1.5
	default:
		return 1.0
	}
}

// transitDays is the promised transit window of the method.
func (m ShippingMethod) transitDays() int {
	switch m {
	case MethodSea:
		return 30
	case MethodExpress:
		return 3
	default:
		return 7
	}
}

const (
	// tariffFreeWeightKg is included in the tariff base charge.
	tariffFreeWeightKg = 0.5
	// insuranceRate applies to customs value above insuranceThreshold.
	insuranceRate      = 0.01
	insuranceThreshold = kernel.Money(1000)
)

// TariffRow is one country's tariff parameters.
type TariffRow struct {
	Country    string
	Currency   string
	Base       kernel.Money
	PerKg      kernel.Money
	CustomsFee kernel.Money
	Handling   kernel.Money
}

// TariffTable is the immutable per-country tariff lookup.
type TariffTable struct {
	rows map[string]TariffRow
}

// NewTariffTable builds a TariffTable keyed by lowercase country name.
func NewTariffTable(rows []TariffRow) *TariffTable {
	m := make(map[string]TariffRow, len(rows))
	for _, row := range rows {
		m[strings.ToLower(strings.TrimSpace(row.Country))] = row
	}
	return &TariffTable{rows: m}
}

// Lookup returns the tariff row for a country.
func (t *TariffTable) Lookup(country string) (TariffRow, bool) {
	row, ok := t.rows[strings.ToLower(strings.TrimSpace(country))]
	return row, ok
}

// InternationalCharges is the itemized breakdown of an international quote.
type InternationalCharges struct {
	Base      kernel.Money
	Weight    kernel.Money
	Customs   kernel.Money
	Handling  kernel.Money
	Insurance kernel.Money
}

// Total returns the sum of all itemized charges.
func (c InternationalCharges) Total() kernel.Money {
	return c.Base + c.Weight + c.Customs + c.Handling + c.Insurance
}

// InternationalQuote is one cross-border cost quote. It is an independent
// cost model from domestic quotes and carries its own currency.
type InternationalQuote struct {
	Country      string
	Method       ShippingMethod
	Charges      InternationalCharges
	Total        kernel.Money
	Currency     string
	TransitDays  int
	ETA          time.Time
	CustomsValue kernel.Money
}

// InternationalTariffCalculator prices cross-border shipments from a fixed
// per-country tariff table.
type InternationalTariffCalculator struct {
	tariffs *TariffTable
	clock   clockz.Clock
}

// NewInternationalTariffCalculator creates a calculator over the tariff table.
func NewInternationalTariffCalculator(tariffs *TariffTable, clock clockz.Clock) *InternationalTariffCalculator {
	return &InternationalTariffCalculator{
		tariffs: tariffs,
		clock:   clock,
	}
}

// Quote prices one international shipment: tariff base plus per-kg freight
// above the first 0.5 kg (both scaled by the method factor), flat customs and
// handling fees, and 1% insurance on customs value above the 1000 threshold.
// Returns UnsupportedDestinationError when the country is not in the table.
func (c *InternationalTariffCalculator) Quote(
	destinationCountry string,
	pkg shipment.PackageDetails,
	customsValue kernel.Money,
	method ShippingMethod,
) (*InternationalQuote, error) {
	if err := pkg.Validate(); err != nil {
		return nil, err
	}

	row, ok := c.tariffs.Lookup(destinationCountry)
	if !ok {
		return nil, &UnsupportedDestinationError{Country: destinationCountry}
	}

	factor := method.factor()
	base := kernel.NewMoneyFromFloat(row.Base.Float64() * factor)
	weight := kernel.NewMoneyFromFloat(
		max(0, pkg.WeightKg()-tariffFreeWeightKg) * row.PerKg.Float64() * factor)

	var insurance kernel.Money
	if customsValue > insuranceThreshold {
		insurance = kernel.NewMoneyFromFloat(insuranceRate * customsValue.Float64())
	}

	charges := InternationalCharges{
		Base:      base,
		Weight:    weight,
		Customs:   row.CustomsFee,
		Handling:  row.Handling,
		Insurance: insurance,
	}

	currency := row.Currency
	if currency == "" {
		currency = kernel.CurrencyBDT
	}

	days := method.transitDays()
	return &InternationalQuote{
		Country:      row.Country,
		Method:       method,
		Charges:      charges,
		Total:        charges.Total(),
		Currency:     currency,
		TransitDays:  days,
		ETA:          c.clock.Now().Add(time.Duration(days) * 24 * time.Hour),
		CustomsValue: customsValue,
	}, nil
}
