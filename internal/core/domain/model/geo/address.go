package geo

import (
	"errors"
	"strings"

	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating an Address that was
// not created via NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// ErrCityIsRequired is returned when an address is missing its city.
var ErrCityIsRequired = errs.NewValueIsRequiredError("city")

// Address is the free-form input address of a shipment endpoint. It is a value
// object, never persisted by the engine; zone resolution consumes it and
// produces a canonical Zone.
type Address struct { //nolint:recvcheck //using for validation
	city     string
	district string
	line     string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address. City is required; district and the free-text
// line are optional hints used by zone resolution heuristics.
func NewAddress(city, district, line string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := address.setCity(city); err != nil {
		return Address{}, err
	}
	address.district = strings.TrimSpace(district)
	address.line = strings.TrimSpace(line)

	return address, nil
}

// Validate ensures the address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// City returns the address city.
func (a Address) City() string {
	return a.city
}

// District returns the address district, possibly empty.
func (a Address) District() string {
	return a.district
}

// Line returns the free-text address line, possibly empty.
func (a Address) Line() string {
	return a.line
}

// NormalizedCity returns the city lowered and trimmed, the form zone tables
// are keyed by.
func (a Address) NormalizedCity() string {
	return strings.ToLower(strings.TrimSpace(a.city))
}

func (a *Address) setCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return ErrCityIsRequired
	}

	a.city = strings.TrimSpace(city)
	return nil
}
