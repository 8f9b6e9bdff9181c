package ordering

import (
	"errors"
	"fmt"
	"sync"

	"facette.io/natsort"
)

// ErrAlreadyRegistered is returned when a strategy name is registered twice.
var ErrAlreadyRegistered = errors.New("strategy already registered")

// ErrNotRegistered is returned when a strategy name is not in the registry.
var ErrNotRegistered = errors.New("strategy not registered")

// Registry publishes named strategies for an element type so common
// orderings ("by year", "by name") can be built once and looked up wherever
// they are needed. A Registry is safe for concurrent use.
type Registry[T any] struct {
	mu         sync.RWMutex
	strategies map[string]Strategy[T]
}

// NewRegistry creates an empty strategy registry for T.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		strategies: make(map[string]Strategy[T]),
	}
}

// Register publishes a strategy under the given name. Registering an empty
// name, a nil strategy, or a name that is already taken is an error; existing
// entries are never silently replaced.
func (r *Registry[T]) Register(name string, s Strategy[T]) error {
	if name == "" {
		return errors.New("strategy name must not be empty")
	}

	if s == nil {
		return fmt.Errorf("nil strategy for %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.strategies[name]; ok {
		return fmt.Errorf("%q: %w", name, ErrAlreadyRegistered)
	}

	r.strategies[name] = s

	return nil
}

// Lookup returns the strategy registered under name, or ErrNotRegistered.
func (r *Registry[T]) Lookup(name string) (Strategy[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotRegistered)
	}

	return s, nil
}

// Names returns the registered strategy names in natural sort order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}

	natsort.Sort(names)

	return names
}

// Size returns the number of registered strategies.
func (r *Registry[T]) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.strategies)
}
