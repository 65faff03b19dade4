package courier

import (
	"errors"
	"strings"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// ErrPartnerIsNotConstructed is returned when validating a Partner that was
// not created via NewPartner.
var ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")

// CoverageNationwide is the coverage token meaning a partner serves every
// destination.
const CoverageNationwide = "nationwide"

// CourierID identifies a courier partner, e.g. "pathao".
type CourierID string

// BaseRate holds the default pricing parameters of a partner for one service
// type: the flat base covering the first kilogram, and the per-kg rate above it.
type BaseRate struct {
	Base  kernel.Money
	PerKg kernel.Money
}

// Partner is a courier company the marketplace ships through. Partners are
// read-only master data: identifier, display name, activity flag, coverage
// tokens, per-service default rates, COD handling charge and feature tags.
type Partner struct {
	id            CourierID
	name          string
	active        bool
	coverageAreas []string
	baseRates     map[ServiceType]BaseRate
	codCharge     kernel.Money
	features      []string

	guard guard.ConstructorGuard
}

// NewPartner creates a courier Partner.
// Coverage tokens are lowercased; an empty coverage list means no restriction.
func NewPartner(
	id CourierID,
	name string,
	active bool,
	coverageAreas []string,
	baseRates map[ServiceType]BaseRate,
	codCharge kernel.Money,
	features []string,
) (*Partner, error) {
	if strings.TrimSpace(string(id)) == "" {
		return nil, errs.NewValueIsRequiredError("courier id")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("courier name")
	}
	if codCharge < 0 {
		return nil, errs.NewValueIsInvalidError("codCharge")
	}

	normalized := make([]string, 0, len(coverageAreas))
	for _, area := range coverageAreas {
		area = strings.ToLower(strings.TrimSpace(area))
		if area != "" {
			normalized = append(normalized, area)
		}
	}

	rates := make(map[ServiceType]BaseRate, len(baseRates))
	for st, rate := range baseRates {
		rates[st] = rate
	}

	return &Partner{
		id:            CourierID(strings.ToLower(strings.TrimSpace(string(id)))),
		name:          name,
		active:        active,
		coverageAreas: normalized,
		baseRates:     rates,
		codCharge:     codCharge,
		features:      append([]string(nil), features...),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the partner was created through the constructor.
func (p *Partner) Validate() error {
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// ID returns the courier identifier.
func (p *Partner) ID() CourierID {
	return p.id
}

// Name returns the courier display name.
func (p *Partner) Name() string {
	return p.name
}

// IsActive reports whether the partner currently accepts shipments.
func (p *Partner) IsActive() bool {
	return p.active
}

// CoverageAreas returns the normalized coverage tokens.
func (p *Partner) CoverageAreas() []string {
	return append([]string(nil), p.coverageAreas...)
}

// CODCharge returns the flat cash-on-delivery handling charge.
func (p *Partner) CODCharge() kernel.Money {
	return p.codCharge
}

// Features returns the partner's feature tags (e.g. "tracking", "fragile").
func (p *Partner) Features() []string {
	return append([]string(nil), p.features...)
}

// BaseRateFor returns the partner's default rate for a service type.
// The second return is false when the partner does not offer the service.
func (p *Partner) BaseRateFor(serviceType ServiceType) (BaseRate, bool) {
	rate, ok := p.baseRates[serviceType]
	return rate, ok
}

// CoversArea reports whether the partner serves the given city. A partner
// covers a city when it has no coverage restrictions, lists nationwide
// coverage, or any coverage token is a substring match of the city in either
// direction. Absence of coverage is a soft condition: the partner is skipped
// during aggregation, never surfaced as an error.
func (p *Partner) CoversArea(city string) bool {
	if len(p.coverageAreas) == 0 {
		return true
	}

	city = strings.ToLower(strings.TrimSpace(city))
	for _, area := range p.coverageAreas {
		if area == CoverageNationwide {
			return true
		}
		if strings.Contains(city, area) || strings.Contains(area, city) {
			return true
		}
	}
	return false
}
