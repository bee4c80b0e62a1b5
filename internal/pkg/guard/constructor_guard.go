// Package guard provides a construction check that ensures value objects,
// commands, and queries are only created through their designated constructors.
// Embedding a ConstructorGuard in a struct makes zero-value instances detectable:
// only objects that went through the constructor carry a constructed guard.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil
// validation error. Validation always fails with a meaningful message even when no
// specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is an
// unconstructed guard and fails validation.
//
// Example:
//
//	type CreateShipmentCommand struct {
//	    senderName string
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewCreateShipmentCommand(senderName string) (CreateShipmentCommand, error) {
//	    if senderName == "" {
//	        return CreateShipmentCommand{}, errors.New("sender name is required")
//	    }
//	    return CreateShipmentCommand{
//	        senderName: senderName,
//	        guard:      guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c CreateShipmentCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the embedding object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was constructed through its constructor.
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
