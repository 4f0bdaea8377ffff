package container

import "reflect"

// ── Factory ───────────────────────────────────────────────────────────────────

// Factory is the producer for one component.
//
// Three implementations exist: a static factory wrapping a pre-built instance,
// a singleton factory that lazily builds and caches its instance, and a
// prototype factory that builds a fresh instance on every call.
//
// Creating factories (singleton, prototype) start in a not-ready state and
// must be wired exactly once — by Container.Setup — before they can produce.
// Wiring resolves each declared requirement to the factory that satisfies it;
// the dependency graph is fixed at that point and never re-evaluated.
type Factory interface {
	// ComponentName returns the name the component is registered under.
	ComponentName() string

	// ComponentType returns the declared type of the produced component.
	ComponentType() reflect.Type

	// Ready reports whether the factory can produce. Static factories are
	// always ready; creating factories become ready after Wire succeeds.
	Ready() bool

	// Wire resolves the factory's declared requirements against the
	// repository. It is a no-op for static factories. Calling it twice on a
	// creating factory fails with ErrInvalidState.
	Wire(repo *Repository) error

	// Produce returns an instance of the component. res tracks the chain of
	// components under construction for this lookup; implementations that
	// build instances must guard themselves on it so cycles are caught.
	Produce(res *Resolution) (any, error)
}
