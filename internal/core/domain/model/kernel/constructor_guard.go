package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// guarded object was not created through its constructor and no specific error
// was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures that entities and value objects are only created
// through their designated constructor functions. The zero value fails
// validation, so directly instantiated structs are detectable.
//
// Embed a ConstructorGuard in an entity and set it with NewConstructorGuard
// inside the constructor:
//
//	type Pallet struct {
//	    id    UUID
//	    guard ConstructorGuard
//	}
//
//	func NewPallet(id UUID) (*Pallet, error) {
//	    return &Pallet{id: id, guard: NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was properly constructed. Otherwise it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
