// Package guard provides the constructor guard shared by entities, commands and
// queries. A guarded value can tell whether it was produced by its constructor
// or is an unusable zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero value
// and the caller did not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built through its designated constructor.
// Embed it as a private field and set it with NewConstructorGuard inside the
// constructor; the zero value fails Validate.
//
// Example usage:
//
//	var ErrCodeNotConstructed = errors.New("Code must be created via NewCode")
//
//	type Code struct {
//	    code    string
//	    percent int
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCode(code string, percent int) (*Code, error) {
//	    if code == "" {
//	        return nil, errors.New("code is required")
//	    }
//	    return &Code{code: code, percent: percent, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c *Code) Validate() error {
//	    return c.guard.Validate(ErrCodeNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owning value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a guard created by NewConstructorGuard.
// For a zero-value guard it returns validationError, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
