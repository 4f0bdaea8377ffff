package container

import (
	"fmt"
	"reflect"
	"sync"
)

// ── Repository ────────────────────────────────────────────────────────────────

// NamedFactory pairs a factory with the name it was registered under.
// FindByType returns it so callers can report which registrations matched.
type NamedFactory struct {
	Name    string
	Factory Factory
}

// Repository holds every factory registered with one container, indexed by
// component name and by produced type. It is a pure lookup structure: it never
// constructs components and never resolves requirements.
//
// Indices are mutated only during the registration phase; after Setup all
// access is read-only, so concurrent lookups are safe.
type Repository struct {
	mu sync.RWMutex

	// Factories in registration order. Setup wires them in this order.
	ordered []Factory

	// name → factory. Names are unique within one repository.
	byName map[string]Factory

	// Exact produced types, for the fast path of type existence checks.
	types map[reflect.Type]struct{}
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{
		byName: make(map[string]Factory),
		types:  make(map[reflect.Type]struct{}),
	}
}

// Register stores a factory under a component name.
// It fails with ErrNameConflict if the name is already bound.
func (r *Repository) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrNameConflict, name)
	}

	r.byName[name] = factory
	r.ordered = append(r.ordered, factory)
	r.types[factory.ComponentType()] = struct{}{}
	return nil
}

// FindByName returns the factory bound to name, if any. A miss is not an
// error at this level; callers decide whether absence is fatal.
func (r *Repository) FindByName(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byName[name]
	return f, ok
}

// FindByType returns every factory whose produced type equals t or is
// assignable to it (covers interface satisfaction and embedding). The result
// preserves registration order and may hold zero, one, or many entries.
func (r *Repository) FindByType(t reflect.Type) []NamedFactory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []NamedFactory
	for _, f := range r.ordered {
		if producesType(f, t) {
			matches = append(matches, NamedFactory{Name: f.ComponentName(), Factory: f})
		}
	}
	return matches
}

// ExistsName reports whether a factory is bound to name.
func (r *Repository) ExistsName(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byName[name]
	return ok
}

// ExistsType reports whether any factory produces t, exactly or assignably.
func (r *Repository) ExistsType(t reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.types[t]; ok {
		return true
	}
	for _, f := range r.ordered {
		if producesType(f, t) {
			return true
		}
	}
	return false
}

// Factories returns a copy of all registered factories in registration order.
func (r *Repository) Factories() []Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Factory, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of registered factories.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}

// producesType reports whether f's produced type equals t or is assignable
// to it.
func producesType(f Factory, t reflect.Type) bool {
	if t == nil {
		return false
	}
	ct := f.ComponentType()
	return ct == t || ct.AssignableTo(t)
}
