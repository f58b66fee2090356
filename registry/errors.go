package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when a name is empty.
	ErrEmptyName = errors.New("name cannot be empty")
	// ErrNilHandle is returned when a handle is nil or a typed nil.
	ErrNilHandle = errors.New("handle cannot be nil")
	// ErrDuplicateName is returned when a name is already claimed.
	ErrDuplicateName = errors.New("name already used")
	// ErrNameNotFound is returned when a name is not in the registry.
	ErrNameNotFound = errors.New("name missing from registry")
	// ErrNilRegistry is returned when a mutator is called on a nil *Registry.
	ErrNilRegistry = errors.New("registry is nil")
)

// NameError records a failed registry operation and the name it targeted.
type NameError struct {
	Op   string
	Name string
	Err  error
}

func (e *NameError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("registry: %s %q: %v", e.Op, e.Name, e.Err)
}

func (e *NameError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func nameError(op, name string, err error) error {
	return &NameError{Op: op, Name: name, Err: err}
}

var (
	// ErrAlreadyAttached is the panic cause when Attach is called on an attached Registrable.
	ErrAlreadyAttached = errors.New("object already attached")
	// ErrNotInitialized is the panic cause when a Registrable is used before Init.
	ErrNotInitialized = errors.New("object not initialized")
	// ErrAlreadyInitialized is the panic cause when Init runs twice on one Registrable.
	ErrAlreadyInitialized = errors.New("object already initialized")
)
