package kernel

import (
	"shiprates/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not created through one of
// the constructor functions. Returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object wrapping github.com/google/uuid. It identifies batch
// jobs and batch result rows. The zero value is invalid; use the constructors.
type UUID struct {
	value uuid.UUID
	isSet bool
}

// NewUUID generates a new random UUID (version 4).
func NewUUID() UUID {
	return UUID{value: uuid.New(), isSet: true}
}

// UUIDFromString parses a UUID from its canonical string representation.
// Returns a validation error for malformed input.
func UUIDFromString(s string) (UUID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", err)
	}
	return UUID{value: parsed, isSet: true}, nil
}

// UUIDFromBytes builds a UUID from a 16-byte slice.
// Returns a validation error when the slice has the wrong length.
func UUIDFromBytes(b []byte) (UUID, error) {
	parsed, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", err)
	}
	return UUID{value: parsed, isSet: true}, nil
}

// Validate checks that the UUID was created through a constructor.
func (u UUID) Validate() error {
	if !u.isSet {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// String returns the canonical string form of the UUID.
func (u UUID) String() string {
	return u.value.String()
}

// Bytes returns the 16-byte form of the UUID, suitable for persistence.
func (u UUID) Bytes() [16]byte {
	return u.value
}

// IsEqual compares two UUIDs for equality.
func (u UUID) IsEqual(other UUID) bool {
	return u.value == other.value && u.isSet == other.isSet
}
