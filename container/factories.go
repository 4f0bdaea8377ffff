package container

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// ── Static factory ────────────────────────────────────────────────────────────

// staticFactory wraps a pre-built instance and returns it on every call.
// It has no requirements and is ready from the moment it is created.
type staticFactory struct {
	name     string
	typ      reflect.Type
	instance any
}

// NewStaticFactory creates a factory that always produces instance.
// The declared component type is the instance's dynamic type.
func NewStaticFactory(name string, instance any) (Factory, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty component name", ErrInvalidArgument)
	}
	if instance == nil {
		return nil, fmt.Errorf("%w: nil instance for component %q", ErrInvalidArgument, name)
	}
	return &staticFactory{name: name, typ: reflect.TypeOf(instance), instance: instance}, nil
}

func (f *staticFactory) ComponentName() string            { return f.name }
func (f *staticFactory) ComponentType() reflect.Type      { return f.typ }
func (f *staticFactory) Ready() bool                      { return true }
func (f *staticFactory) Wire(*Repository) error           { return nil }
func (f *staticFactory) Produce(*Resolution) (any, error) { return f.instance, nil }

// ── Creating factories ────────────────────────────────────────────────────────

// creatingFactory holds what singleton and prototype factories share: the
// constructor, the declared requirements, and — after Wire — non-owning
// references to the factories that satisfy them, in declared order.
type creatingFactory struct {
	name         string
	ctor         constructor
	requirements []Requirement

	// Set by Wire, read-only afterwards.
	resolved []Factory
	ready    bool
}

func (f *creatingFactory) ComponentName() string       { return f.name }
func (f *creatingFactory) ComponentType() reflect.Type { return f.ctor.out }
func (f *creatingFactory) Ready() bool                 { return f.ready }

// Wire resolves every declared requirement into a factory reference.
//
// Resolution is name-first: a named requirement is looked up by name and the
// found factory's produced type must be assignable to the requirement type
// (ErrTypeMismatch otherwise). If the requirement is unnamed, or the name
// lookup misses, a by-type lookup must find exactly one factory — zero fails
// with ErrUnknownComponent, more than one with ErrAmbiguousComponent.
//
// Wire runs exactly once, during Container.Setup; a second call fails with
// ErrInvalidState.
func (f *creatingFactory) Wire(repo *Repository) error {
	if f.ready {
		return fmt.Errorf("%w: factory %q already wired", ErrInvalidState, f.name)
	}

	resolved := make([]Factory, 0, len(f.requirements))
	for i, req := range f.requirements {
		dep, err := resolveRequirement(repo, req)
		if err != nil {
			return fmt.Errorf("component %q (requirement #%d, %s): %w", f.name, i, req, err)
		}
		resolved = append(resolved, dep)
	}

	f.resolved = resolved
	f.ready = true
	return nil
}

func resolveRequirement(repo *Repository, req Requirement) (Factory, error) {
	if req.Name != "" {
		if dep, ok := repo.FindByName(req.Name); ok {
			if !producesType(dep, req.Type) {
				return nil, fmt.Errorf("%w: component %q produces %s, not %s",
					ErrTypeMismatch, req.Name, dep.ComponentType(), req.Type)
			}
			return dep, nil
		}
		// Name miss falls through to by-type resolution.
	}

	matches := repo.FindByType(req.Type)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: no component of type %s", ErrUnknownComponent, req.Type)
	case 1:
		return matches[0].Factory, nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return nil, fmt.Errorf("%w: %d components of type %s (%v)",
			ErrAmbiguousComponent, len(matches), req.Type, names)
	}
}

// construct builds one instance: produce every wired requirement in declared
// order, then invoke the constructor with the results. The caller must
// already hold the cycle guard for f.name.
func (f *creatingFactory) construct(res *Resolution) (any, error) {
	if !f.ready {
		return nil, fmt.Errorf("%w: component %q", ErrNotInitialized, f.name)
	}

	fnType := f.ctor.fn.Type()
	args := make([]reflect.Value, len(f.resolved))
	for i, dep := range f.resolved {
		v, err := dep.Produce(res)
		if err != nil {
			return nil, err
		}
		if v == nil {
			args[i] = reflect.Zero(fnType.In(i))
		} else {
			args[i] = reflect.ValueOf(v)
		}
	}

	out := f.ctor.fn.Call(args)
	if f.ctor.returnsErr && !out[1].IsNil() {
		return nil, fmt.Errorf("component %q: constructor failed: %w", f.name, out[1].Interface().(error))
	}
	return out[0].Interface(), nil
}

// guarded wraps construct with the cycle guard: push the component name,
// build, and pop on every exit path so the stack never leaks into later
// lookups.
func (f *creatingFactory) guarded(res *Resolution) (out any, err error) {
	if err = res.Push(f.name); err != nil {
		return nil, err
	}
	defer func() {
		if perr := res.Pop(f.name); perr != nil && err == nil {
			out, err = nil, perr
		}
	}()
	return f.construct(res)
}

// ── Singleton factory ─────────────────────────────────────────────────────────

// singletonFactory builds its instance on first Produce and caches it. First
// construction under concurrent access is serialized by a per-factory mutex
// with a double-check, so the constructor runs at most once.
//
// The cycle guard is pushed before the creation lock is taken: a cyclic chain
// on one goroutine fails with ErrCyclicDependency instead of self-deadlocking
// on mu. A construction cycle spanning two goroutines is not detected and
// will block; per-goroutine detection cannot see it.
type singletonFactory struct {
	creatingFactory

	mu       sync.Mutex
	done     atomic.Bool
	instance any
}

// NewSingletonFactory creates a lazily-cached factory for ctor.
// names optionally bind component names to constructor parameters, in order.
func NewSingletonFactory(name string, ctor any, names ...string) (Factory, error) {
	cf, err := newCreatingFactory(name, ctor, names)
	if err != nil {
		return nil, err
	}
	return &singletonFactory{creatingFactory: cf}, nil
}

func (f *singletonFactory) Produce(res *Resolution) (out any, err error) {
	// Fast path: instance is published before done flips to true.
	if f.done.Load() {
		return f.instance, nil
	}

	if err = res.Push(f.name); err != nil {
		return nil, err
	}
	defer func() {
		if perr := res.Pop(f.name); perr != nil && err == nil {
			out, err = nil, perr
		}
	}()

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done.Load() {
		return f.instance, nil
	}

	inst, err := f.construct(res)
	if err != nil {
		return nil, err
	}
	f.instance = inst
	f.done.Store(true)
	return inst, nil
}

// ── Prototype factory ─────────────────────────────────────────────────────────

// prototypeFactory builds a fresh instance on every Produce. Requirements are
// wired once, at Setup; only the instantiation repeats.
type prototypeFactory struct {
	creatingFactory
}

// NewPrototypeFactory creates a factory that constructs a new instance per
// call. names optionally bind component names to constructor parameters.
func NewPrototypeFactory(name string, ctor any, names ...string) (Factory, error) {
	cf, err := newCreatingFactory(name, ctor, names)
	if err != nil {
		return nil, err
	}
	return &prototypeFactory{creatingFactory: cf}, nil
}

func (f *prototypeFactory) Produce(res *Resolution) (any, error) {
	return f.guarded(res)
}

func newCreatingFactory(name string, ctor any, names []string) (creatingFactory, error) {
	if name == "" {
		return creatingFactory{}, fmt.Errorf("%w: empty component name", ErrInvalidArgument)
	}
	c, err := analyzeConstructor(ctor)
	if err != nil {
		return creatingFactory{}, err
	}
	reqs, err := requirementsOf(c, names)
	if err != nil {
		return creatingFactory{}, err
	}
	return creatingFactory{name: name, ctor: c, requirements: reqs}, nil
}
