package di

import (
	"errors"
	"sort"
	"strconv"
)

// ErrNilFactory is returned when a nil factory is registered.
var ErrNilFactory = errors.New("di: nil factory")

// Factory constructs a T on resolution. Factories run once per Resolve call;
// the registry performs no caching or lifetime management.
type Factory[T any] func() (T, error)

// NotRegisteredError is returned when a name resolves to no registration.
type NotRegisteredError struct{ Name string }

// Error implements the error interface.
func (e NotRegisteredError) Error() string {
	return "di: nothing registered under " + strconv.Quote(e.Name)
}

// AlreadyRegisteredError is returned when a name is registered twice.
type AlreadyRegisteredError struct{ Name string }

// Error implements the error interface.
func (e AlreadyRegisteredError) Error() string {
	return "di: " + strconv.Quote(e.Name) + " already registered"
}

// Registry maps names to factories for one abstraction T.
//
// It is the smallest possible form of "register a type mapping, resolve an
// instance": no scopes, no reflection, no graph. The zero value is not usable;
// construct with NewRegistry.
type Registry[T any] struct {
	factories map[string]Factory[T]
}

// NewRegistry returns an empty registry for T.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]Factory[T])}
}

// Register stores factory under name. A nil factory fails with ErrNilFactory;
// registering the same name twice fails with AlreadyRegisteredError.
func (r *Registry[T]) Register(name string, factory Factory[T]) error {
	if factory == nil {
		return ErrNilFactory
	}
	if _, exists := r.factories[name]; exists {
		return AlreadyRegisteredError{Name: name}
	}
	r.factories[name] = factory
	return nil
}

// Resolve constructs a fresh T from the factory registered under name.
func (r *Registry[T]) Resolve(name string) (T, error) {
	factory, ok := r.factories[name]
	if !ok {
		var zero T
		return zero, NotRegisteredError{Name: name}
	}
	return factory()
}

// MustResolve resolves or panics. Meant for examples and tests where a missing
// registration is a programming error.
func (r *Registry[T]) MustResolve(name string) T {
	v, err := r.Resolve(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether name has a registration.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Names returns all registered names, sorted.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
