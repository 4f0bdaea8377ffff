package container

import (
	"errors"
	"fmt"
	"strings"
)

// ── Sentinel errors ───────────────────────────────────────────────────────────

var (
	// ErrInvalidArgument is returned when a caller passes malformed input:
	// a non-function where a constructor is expected, a nil instance,
	// an empty component name, or an unusable lookup key.
	ErrInvalidArgument = errors.New("container: invalid argument")

	// ErrInvalidState is returned when an operation is invoked out of its
	// required lifecycle order, or when an internal guard invariant is
	// violated (the latter indicates a bug, not a configuration mistake).
	ErrInvalidState = errors.New("container: invalid state")

	// ErrNameConflict is returned when a component name is already bound.
	ErrNameConflict = errors.New("container: component name already defined")

	// ErrUnknownComponent is returned when a lookup, by name or by type,
	// matches nothing.
	ErrUnknownComponent = errors.New("container: unknown component")

	// ErrAmbiguousComponent is returned when a by-type lookup matches more
	// than one factory where exactly one was required.
	ErrAmbiguousComponent = errors.New("container: ambiguous component")

	// ErrTypeMismatch is returned when a named requirement resolves to a
	// factory whose produced type is incompatible with the declared
	// requirement type.
	ErrTypeMismatch = errors.New("container: type mismatch")

	// ErrCyclicDependency is returned when a construction chain revisits a
	// component that is already under construction. The concrete error is a
	// *CycleError carrying the ordered cycle; match it with
	// errors.Is(err, ErrCyclicDependency).
	ErrCyclicDependency = errors.New("container: cyclic dependency")
)

// ErrNotInitialized is returned when a creating factory is asked to produce
// before it has been wired (Setup not yet called). It is part of the
// ErrInvalidState family: errors.Is(err, ErrInvalidState) is true.
var ErrNotInitialized = fmt.Errorf("%w: factory not wired", ErrInvalidState)

// ── CycleError ────────────────────────────────────────────────────────────────

// CycleError reports a cyclic construction chain.
//
// Path holds the exact cycle in traversal order, starting and ending with the
// revisited component, e.g. ["a", "b", "c", "a"].
type CycleError struct {
	Path []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	// Example: container: cyclic dependency: a -> b -> c -> a
	return "container: cyclic dependency: " + strings.Join(e.Path, " -> ")
}

// Is makes errors.Is(err, ErrCyclicDependency) match.
func (e *CycleError) Is(target error) bool { return target == ErrCyclicDependency }
