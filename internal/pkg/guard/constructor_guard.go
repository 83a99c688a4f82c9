// Package guard provides the ConstructorGuard pattern that ensures value
// objects, entities, commands, and queries are only created through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was initialized through its
// constructor or created as a zero value. Embed one in a struct, set it with
// NewConstructorGuard inside the constructor, and call Validate before using
// the object.
//
// Example usage:
//
//	var ErrMoneyNotConstructed = errors.New("Money must be created via NewMoney")
//
//	type Money struct {
//	    amount int64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int64) (Money, error) {
//	    if amount < 0 {
//	        return Money{}, errors.New("amount cannot be negative")
//	    }
//	    return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the holder was created through its constructor.
// For a zero-value holder it returns notConstructed, or
// ErrDefaultConstructorGuard when notConstructed is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructed
}
