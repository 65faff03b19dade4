// Package guard provides the constructor-guard pattern used by domain value
// objects and use case inputs. A zero-value struct embedding a ConstructorGuard
// fails validation, which forces callers through the designated constructor and
// keeps domain invariants intact.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// Embed it in a struct and set it via NewConstructorGuard inside the
// constructor; Validate then rejects any instance created by direct struct
// initialization.
//
// Example:
//
//	type PackageDetails struct {
//	    weightKg float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewPackageDetails(weightKg float64) (PackageDetails, error) {
//	    if weightKg <= 0 {
//	        return PackageDetails{}, errors.New("weight must be positive")
//	    }
//	    return PackageDetails{weightKg: weightKg, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as properly
// constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
