package container

import (
	"fmt"
	"reflect"
	"sync"
)

// ContainerComponentName is the fixed name under which every container
// registers itself, so components can declare the container as a dependency.
const ContainerComponentName = "container"

// ── Keys ──────────────────────────────────────────────────────────────────────

type keyKind uint8

const (
	keyInvalid keyKind = iota
	keyByName
	keyByType
)

// Key identifies a component for lookup: either by its registered name or by
// its produced type. Construct one with ByName, ByType, or ByTypeOf.
type Key struct {
	kind keyKind
	name string
	typ  reflect.Type
}

// ByName keys a lookup on a component name.
func ByName(name string) Key { return Key{kind: keyByName, name: name} }

// ByType keys a lookup on a produced type. Exactly one registered component
// must match for Get to succeed.
func ByType(t reflect.Type) Key { return Key{kind: keyByType, typ: t} }

// ByTypeOf is ByType for a compile-time type:
//
//	c.Get(container.ByTypeOf[*PrintService]())
func ByTypeOf[T any]() Key {
	return ByType(reflect.TypeOf((*T)(nil)).Elem())
}

// String renders the key for diagnostics.
func (k Key) String() string {
	switch k.kind {
	case keyByName:
		return fmt.Sprintf("name %q", k.name)
	case keyByType:
		return fmt.Sprintf("type %s", k.typ)
	default:
		return "invalid key"
	}
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the single entry point of the library: it registers components,
// wires factories' requirements during the one-time Setup pass, and serves
// lookups by name or type.
//
// Lifecycle:
//
//  1. Create: c := container.New()
//  2. Register: c.RegisterType(NewPrintService), c.RegisterInstance(cfg, "config"), …
//  3. Setup: c.Setup() — fixes the dependency graph; no registrations after this
//  4. Resolve: svc, err := container.Resolve[*PrintService](c, container.ByName("print_service"))
//
// Lookups are safe to call from multiple goroutines once Setup has run.
// The container registers itself under ContainerComponentName, so a component
// may declare *Container as a constructor parameter and receive the very
// container that builds it.
type Container struct {
	repo   *Repository
	naming NameStrategy

	mu        sync.Mutex
	setupDone bool
}

// Option customizes a Container at construction time.
type Option func(*Container)

// WithNameStrategy replaces the default SnakeCaseStrategy used to derive
// component names from types.
func WithNameStrategy(s NameStrategy) Option {
	return func(c *Container) { c.naming = s }
}

// New creates an empty container and registers it under
// ContainerComponentName.
func New(opts ...Option) *Container {
	c := &Container{
		repo:   NewRepository(),
		naming: SnakeCaseStrategy{},
	}
	for _, opt := range opts {
		opt(c)
	}

	// A fresh repository cannot have a name conflict.
	f, _ := NewStaticFactory(ContainerComponentName, c)
	_ = c.repo.Register(ContainerComponentName, f)
	return c
}

// Repository exposes the container's factory repository for inspection.
func (c *Container) Repository() *Repository { return c.repo }

// ── Registration ──────────────────────────────────────────────────────────────

// registerConfig collects per-registration options.
type registerConfig struct {
	name       string
	paramNames []string
	prototype  bool
}

// RegisterOption customizes a single RegisterType call.
type RegisterOption func(*registerConfig)

// Named sets an explicit component name instead of deriving one from the
// produced type.
func Named(name string) RegisterOption {
	return func(cfg *registerConfig) { cfg.name = name }
}

// WithParamNames binds component names to the constructor's parameters,
// positionally. A parameter with a name resolves name-first; an empty string
// leaves that parameter resolving by type.
func WithParamNames(names ...string) RegisterOption {
	return func(cfg *registerConfig) { cfg.paramNames = names }
}

// AsPrototype registers a prototype component: a fresh instance is
// constructed on every lookup instead of being cached after the first.
func AsPrototype() RegisterOption {
	return func(cfg *registerConfig) { cfg.prototype = true }
}

// RegisterType registers a component by its constructor. The constructor's
// parameters become the component's requirements; its first result is the
// produced component type. Without a Named option the component name is
// derived from the produced type via the name strategy.
//
// The component is a lazy singleton unless AsPrototype is given.
func (c *Container) RegisterType(ctor any, opts ...RegisterOption) error {
	var cfg registerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	analyzed, err := analyzeConstructor(ctor)
	if err != nil {
		return err
	}

	name := cfg.name
	if name == "" {
		name = c.naming.ComponentName(analyzed.out)
		if name == "" {
			return fmt.Errorf("%w: cannot derive a component name from %s", ErrInvalidArgument, analyzed.out)
		}
	}

	var factory Factory
	if cfg.prototype {
		factory, err = NewPrototypeFactory(name, ctor, cfg.paramNames...)
	} else {
		factory, err = NewSingletonFactory(name, ctor, cfg.paramNames...)
	}
	if err != nil {
		return err
	}
	return c.register(name, factory)
}

// RegisterTypes registers constructors in bulk, each under a name derived
// from its produced type. Every argument is validated up front: a non-
// constructor anywhere fails the whole call with ErrInvalidArgument, naming
// the offending position, and registers nothing.
func (c *Container) RegisterTypes(ctors ...any) error {
	if len(ctors) == 0 {
		return fmt.Errorf("%w: no constructors given", ErrInvalidArgument)
	}
	for i, ctor := range ctors {
		if _, err := analyzeConstructor(ctor); err != nil {
			return fmt.Errorf("argument #%d: %w", i, err)
		}
	}
	for _, ctor := range ctors {
		if err := c.RegisterType(ctor); err != nil {
			return err
		}
	}
	return nil
}

// RegisterInstance registers a pre-built value as a static component under
// name. The instance is returned as-is on every lookup.
func (c *Container) RegisterInstance(instance any, name string) error {
	f, err := NewStaticFactory(name, instance)
	if err != nil {
		return err
	}
	return c.register(name, f)
}

func (c *Container) register(name string, factory Factory) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setupDone {
		return fmt.Errorf("%w: cannot register %q after Setup", ErrInvalidState, name)
	}
	return c.repo.Register(name, factory)
}

// ── Lifecycle ─────────────────────────────────────────────────────────────────

// Setup wires every registered factory, in registration order, resolving each
// declared requirement to the factory that satisfies it. The dependency graph
// is fixed at this point and never re-evaluated.
//
// Setup must be called after all registrations and before any Get; it runs at
// most once, and a second call fails with ErrInvalidState. Lookups before
// Setup fail with ErrNotInitialized from the underlying factories.
func (c *Container) Setup() error {
	c.mu.Lock()
	if c.setupDone {
		c.mu.Unlock()
		return fmt.Errorf("%w: Setup already performed", ErrInvalidState)
	}
	c.setupDone = true
	c.mu.Unlock()

	for _, f := range c.repo.Factories() {
		if err := f.Wire(c.repo); err != nil {
			return err
		}
	}
	return nil
}

// ── Lookup ────────────────────────────────────────────────────────────────────

// Get resolves a component.
//
// By name, a miss fails with ErrUnknownComponent. By type, exactly one
// registered component must match: zero fails with ErrUnknownComponent, more
// than one with ErrAmbiguousComponent. The matched factory then produces the
// instance — cached for singletons, fresh for prototypes.
func (c *Container) Get(key Key) (any, error) {
	factory, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return factory.Produce(NewResolution())
}

func (c *Container) lookup(key Key) (Factory, error) {
	switch key.kind {
	case keyByName:
		f, ok := c.repo.FindByName(key.name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, key.name)
		}
		return f, nil

	case keyByType:
		matches := c.repo.FindByType(key.typ)
		switch len(matches) {
		case 0:
			return nil, fmt.Errorf("%w: no component of type %s", ErrUnknownComponent, key.typ)
		case 1:
			return matches[0].Factory, nil
		default:
			names := make([]string, len(matches))
			for i, m := range matches {
				names[i] = m.Name
			}
			return nil, fmt.Errorf("%w: %d components of type %s (%v)",
				ErrAmbiguousComponent, len(matches), key.typ, names)
		}

	default:
		return nil, fmt.Errorf("%w: zero lookup key (use ByName or ByType)", ErrInvalidArgument)
	}
}

// Exists reports whether any component matches key. Unlike Get it never
// errors: an ambiguous type match still reports true, and a zero key reports
// false.
func (c *Container) Exists(key Key) bool {
	switch key.kind {
	case keyByName:
		return c.repo.ExistsName(key.name)
	case keyByType:
		return c.repo.ExistsType(key.typ)
	default:
		return false
	}
}

// ── Generic helpers ───────────────────────────────────────────────────────────

// Resolve is Get with the type assertion folded in:
//
//	svc, err := container.Resolve[*PrintService](c, container.ByName("print_service"))
func Resolve[T any](c *Container, key Key) (T, error) {
	var zero T
	v, err := c.Get(key)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: component by %s is %T, not %T", ErrTypeMismatch, key, v, zero)
	}
	return typed, nil
}

// MustResolve is Resolve for wiring code where a failure is fatal; it panics
// on error.
func MustResolve[T any](c *Container, key Key) T {
	v, err := Resolve[T](c, key)
	if err != nil {
		panic(err)
	}
	return v
}
