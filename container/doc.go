// Package container provides a lazily-resolving dependency injection
// container for Go.
//
// # Overview
//
// A Container maps component names and types to factories. Components are
// registered up front — by constructor or as pre-built instances — then a
// one-time Setup pass resolves every constructor parameter to the factory
// that satisfies it. From then on components are constructed on demand:
// singletons once, prototypes per lookup, with cyclic construction chains
// detected and reported as the exact offending path.
//
// # Container Lifecycle
//
//  1. Create: c := container.New()
//  2. Register: c.RegisterType(...), c.RegisterInstance(...)
//  3. Setup: c.Setup() — wires the dependency graph; registration closes
//  4. Resolve: c.Get(...), container.Resolve[T](c, ...)
//
// # Registering
//
//	// By constructor — parameters become requirements, resolved by type
//	c.RegisterType(func(db *Database) *UserService { return &UserService{db: db} })
//
//	// Explicit name and per-parameter names (resolved name-first)
//	c.RegisterType(NewReportService,
//	    container.Named("reports"),
//	    container.WithParamNames("db", "mailer"))
//
//	// Fresh instance per lookup
//	c.RegisterType(NewRequestScratch, container.AsPrototype())
//
//	// Pre-built value
//	c.RegisterInstance(cfg, "config")
//
//	// Bulk, names derived from the produced types (PascalCase → snake_case)
//	c.RegisterTypes(NewDatabase, NewUserService, NewMailer)
//
// # Resolving
//
//	// Untyped, by name or by type
//	raw, err := c.Get(container.ByName("user_service"))
//	raw, err = c.Get(container.ByTypeOf[*UserService]())
//
//	// Generic (preferred — no type assertion required)
//	svc, err := container.Resolve[*UserService](c, container.ByName("user_service"))
//
// By-type lookup requires exactly one matching registration; interface types
// match every component whose produced type satisfies them.
//
// # Cycles
//
// A constructor chain that revisits a component already under construction in
// the same lookup fails with a *CycleError carrying the ordered cycle, e.g.
// ["a", "b", "c", "a"]. Detection is scoped to one lookup: concurrent
// unrelated resolutions never interfere, and a construction cycle spanning
// two goroutines is not detected.
//
// # The container as a component
//
// Every container registers itself under ContainerComponentName, so a
// constructor may take *container.Container as a parameter and receive the
// container that is building it.
//
// # Service Providers
//
// ServiceProvider and ProviderRegistry split registration into modular pieces
// with a two-phase lifecycle: Register (bind components) then Boot (container
// set up, everything resolvable).
package container
