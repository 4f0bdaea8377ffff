package container

import "fmt"

// ── Resolution ────────────────────────────────────────────────────────────────

// Resolution tracks the chain of components under construction during one
// top-level lookup. A fresh Resolution is created per Container.Get call and
// passed down through every nested Produce, so concurrent lookups never share
// detection state and independent containers never interfere.
//
// A Resolution is not safe for concurrent use; each lookup owns its own.
type Resolution struct {
	stack []string
}

// NewResolution creates an empty resolution context. Container.Get does this
// automatically; it is exported for custom Factory implementations and tests.
func NewResolution() *Resolution { return &Resolution{} }

// Push records name as under construction.
//
// If name is already on the stack the construction chain is cyclic: Push
// fails with a *CycleError whose Path is the stack from the first occurrence
// of name through the end, with name appended — the exact cycle in traversal
// order.
func (r *Resolution) Push(name string) error {
	for i, n := range r.stack {
		if n == name {
			path := make([]string, 0, len(r.stack)-i+1)
			path = append(path, r.stack[i:]...)
			path = append(path, name)
			return &CycleError{Path: path}
		}
	}
	r.stack = append(r.stack, name)
	return nil
}

// Pop removes name from the top of the stack.
//
// An empty stack or a top entry other than name fails with ErrInvalidState:
// it means a Produce implementation mismatched its guard, not that the caller
// misconfigured anything.
func (r *Resolution) Pop(name string) error {
	if len(r.stack) == 0 {
		return fmt.Errorf("%w: pop %q from empty resolution stack", ErrInvalidState, name)
	}
	top := r.stack[len(r.stack)-1]
	if top != name {
		return fmt.Errorf("%w: pop %q but %q is under construction", ErrInvalidState, name, top)
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Depth returns the number of components currently under construction.
func (r *Resolution) Depth() int { return len(r.stack) }
