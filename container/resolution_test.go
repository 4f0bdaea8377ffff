package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-inject/container"
)

// TestResolution_PushPop verifies the plain guard lifecycle.
func TestResolution_PushPop(t *testing.T) {
	t.Parallel()

	r := container.NewResolution()
	require.NoError(t, r.Push("a"))
	require.NoError(t, r.Push("b"))
	assert.Equal(t, 2, r.Depth())

	require.NoError(t, r.Pop("b"))
	require.NoError(t, r.Pop("a"))
	assert.Equal(t, 0, r.Depth())

	// An emptied context is reusable for a follow-up chain.
	require.NoError(t, r.Push("a"))
	require.NoError(t, r.Pop("a"))
}

// TestResolution_CyclePath verifies the reported cycle is the stack slice
// from the first occurrence of the revisited name, with that name appended.
func TestResolution_CyclePath(t *testing.T) {
	t.Parallel()

	r := container.NewResolution()
	require.NoError(t, r.Push("root"))
	require.NoError(t, r.Push("a"))
	require.NoError(t, r.Push("b"))
	require.NoError(t, r.Push("c"))

	err := r.Push("a")
	require.ErrorIs(t, err, container.ErrCyclicDependency)

	var cycle *container.CycleError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, []string{"a", "b", "c", "a"}, cycle.Path)
	assert.Contains(t, cycle.Error(), "a -> b -> c -> a")

	// The failed push left the stack untouched.
	assert.Equal(t, 4, r.Depth())
}

// TestResolution_SelfCycle verifies the degenerate one-element cycle.
func TestResolution_SelfCycle(t *testing.T) {
	t.Parallel()

	r := container.NewResolution()
	require.NoError(t, r.Push("a"))

	err := r.Push("a")
	var cycle *container.CycleError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, []string{"a", "a"}, cycle.Path)
}

// TestResolution_PopInvariants verifies popping an empty stack or the wrong
// name reports an internal inconsistency.
func TestResolution_PopInvariants(t *testing.T) {
	t.Parallel()

	r := container.NewResolution()
	require.ErrorIs(t, r.Pop("a"), container.ErrInvalidState)

	require.NoError(t, r.Push("a"))
	require.ErrorIs(t, r.Pop("b"), container.ErrInvalidState)

	// The stack survives a bad pop.
	require.NoError(t, r.Pop("a"))
}
