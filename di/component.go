package di

import (
	"errors"
	"reflect"
	"strconv"
)

var (
	// ErrNilTarget is returned when an injector is applied to a nil component
	// or a component holding a nil value.
	ErrNilTarget = errors.New("di: nil target component")

	// ErrNilAttach is returned when Bind is given a nil attach function.
	ErrNilAttach = errors.New("di: nil attach function")
)

// Key identifies a dependency recorded in a Component's bag.
// Define keys as package-level constants to keep wiring consistent.
type Key string

// DuplicateKeyError is returned when an injector registers a dependency under
// a key the target already holds.
type DuplicateKeyError struct{ Key Key }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// MissingDependencyError is returned when a requested key is not present.
type MissingDependencyError struct{ Key Key }

// Error implements the error interface.
func (e MissingDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned when a key is present but the stored
// value is not of the requested type.
type WrongTypeDependencyError struct {
	Key Key

	// GotType is reflect.TypeOf(stored).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}

// NilDependencyError indicates a nil dependency component for a specific key.
type NilDependencyError struct{ Key Key }

// Error implements the error interface.
func (e NilDependencyError) Error() string {
	return "di: nil dependency component for key " + strconv.Quote(string(e.Key))
}

// Component wraps a constructed value together with a bag of the dependencies
// that were wired into it.
//
// Val is the constructed value. Deps records what Bind attached, keyed by Key,
// so demos and tests can ask a component what it was built from. The bag is
// intentionally loose (map[Key]any); typed retrieval goes through As / MustAs.
type Component[T any] struct {
	Val  *T
	Deps map[Key]any
}

// Provide constructs a Component by calling ctor and initializing the bag.
func Provide[T any](ctor func() *T) *Component[T] {
	return &Component[T]{Val: ctor(), Deps: make(map[Key]any)}
}

// Value returns the constructed value pointer.
func (c *Component[T]) Value() *T { return c.Val }

// Injector mutates a Component in place and reports wiring failures.
type Injector[T any] func(*Component[T]) error

// Apply runs a single injector. A nil injector is a no-op.
func (c *Component[T]) Apply(inj Injector[T]) (*Component[T], error) {
	if inj == nil {
		return c, nil
	}
	if err := inj(c); err != nil {
		return c, err
	}
	return c, nil
}

// ApplyAll runs injectors in order, stopping at the first error.
func (c *Component[T]) ApplyAll(injs ...Injector[T]) (*Component[T], error) {
	for _, inj := range injs {
		if _, err := c.Apply(inj); err != nil {
			return c, err
		}
	}
	return c, nil
}

// Bind builds an Injector that records dep under key in the target's bag and
// then calls attach to hand the dependency to the target value.
//
// The injector fails with:
//   - ErrNilTarget when the target component or its value is nil
//   - NilDependencyError when dep or its value is nil
//   - ErrNilAttach when attach is nil
//   - DuplicateKeyError when key is already present in the bag
func Bind[T any, D any](key Key, dep *Component[D], attach func(target *T, dependency *D)) Injector[T] {
	return func(c *Component[T]) error {
		if c == nil || c.Val == nil {
			return ErrNilTarget
		}
		if dep == nil || dep.Val == nil {
			return NilDependencyError{Key: key}
		}
		if attach == nil {
			return ErrNilAttach
		}
		if c.Deps == nil {
			c.Deps = make(map[Key]any)
		}
		if _, exists := c.Deps[key]; exists {
			return DuplicateKeyError{Key: key}
		}

		c.Deps[key] = dep.Val
		attach(c.Val, dep.Val)
		return nil
	}
}

// Has reports whether a dependency was recorded under key.
func (c *Component[T]) Has(key Key) bool {
	if c == nil || c.Deps == nil {
		return false
	}
	_, ok := c.Deps[key]
	return ok
}

// Lookup returns the raw recorded dependency without a type assertion.
func (c *Component[T]) Lookup(key Key) (any, bool) {
	if c == nil || c.Deps == nil {
		return nil, false
	}
	v, ok := c.Deps[key]
	return v, ok
}

// As returns the recorded dependency typed as *D.
//
// It returns:
//   - MissingDependencyError when the key is not present
//   - WrongTypeDependencyError when the key holds something other than *D
func As[T any, D any](c *Component[T], key Key) (*D, error) {
	if c == nil || c.Deps == nil {
		return nil, MissingDependencyError{Key: key}
	}
	raw, ok := c.Deps[key]
	if !ok || raw == nil {
		return nil, MissingDependencyError{Key: key}
	}
	d, ok := raw.(*D)
	if !ok {
		return nil, WrongTypeDependencyError{Key: key, GotType: reflect.TypeOf(raw).String()}
	}
	return d, nil
}

// MustAs returns the recorded dependency typed as *D or panics.
// Meant for tests and wiring that cannot legitimately fail.
func MustAs[T any, D any](c *Component[T], key Key) *D {
	d, err := As[T, D](c, key)
	if err != nil {
		panic(err)
	}
	return d
}
