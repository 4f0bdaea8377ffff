package container_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-inject/container"
)

//
// -----------------------------------------------------------------------------
// Static factory
// -----------------------------------------------------------------------------

// TestStaticFactory_AlwaysSameInstance verifies a static factory is ready
// from the start and hands out the wrapped instance unchanged.
func TestStaticFactory_AlwaysSameInstance(t *testing.T) {
	t.Parallel()

	inst := &SampleService{ID: 7}
	f, err := container.NewStaticFactory("svc", inst)
	require.NoError(t, err)

	assert.True(t, f.Ready())
	assert.Equal(t, "svc", f.ComponentName())
	assert.Equal(t, reflect.TypeOf(inst), f.ComponentType())
	require.NoError(t, f.Wire(container.NewRepository())) // no-op

	for i := 0; i < 3; i++ {
		v, err := f.Produce(container.NewResolution())
		require.NoError(t, err)
		require.Same(t, inst, v)
	}
}

// TestStaticFactory_InvalidInputs verifies empty names and nil instances are
// rejected.
func TestStaticFactory_InvalidInputs(t *testing.T) {
	t.Parallel()

	_, err := container.NewStaticFactory("", &SampleService{})
	require.ErrorIs(t, err, container.ErrInvalidArgument)

	_, err = container.NewStaticFactory("svc", nil)
	require.ErrorIs(t, err, container.ErrInvalidArgument)
}

//
// -----------------------------------------------------------------------------
// Wiring
// -----------------------------------------------------------------------------

// TestWire_ProduceBeforeWire verifies creating factories refuse to produce
// until wired.
func TestWire_ProduceBeforeWire(t *testing.T) {
	t.Parallel()

	f, err := container.NewSingletonFactory("svc", NewSampleService)
	require.NoError(t, err)
	assert.False(t, f.Ready())

	_, err = f.Produce(container.NewResolution())
	require.ErrorIs(t, err, container.ErrNotInitialized)
}

// TestWire_Twice verifies wiring runs exactly once per factory.
func TestWire_Twice(t *testing.T) {
	t.Parallel()

	repo := container.NewRepository()
	f, err := container.NewSingletonFactory("svc", NewSampleService)
	require.NoError(t, err)
	require.NoError(t, repo.Register("svc", f))

	require.NoError(t, f.Wire(repo))
	assert.True(t, f.Ready())
	require.ErrorIs(t, f.Wire(repo), container.ErrInvalidState)
}

// TestWire_NamedRequirement_TypeMismatch verifies a named requirement whose
// provider produces an incompatible type fails wiring.
func TestWire_NamedRequirement_TypeMismatch(t *testing.T) {
	t.Parallel()

	repo := container.NewRepository()
	greeter, err := container.NewStaticFactory("dep", &ConsoleGreeter{})
	require.NoError(t, err)
	require.NoError(t, repo.Register("dep", greeter))

	// The named component exists but cannot satisfy *SampleService.
	f, err := container.NewSingletonFactory("svc", NewInjectableComponent, "dep")
	require.NoError(t, err)

	err = f.Wire(repo)
	require.ErrorIs(t, err, container.ErrTypeMismatch)
	assert.False(t, f.Ready())
}

// TestWire_NameMissFallsBackToType verifies a named requirement whose name is
// unbound still wires when exactly one type match exists.
func TestWire_NameMissFallsBackToType(t *testing.T) {
	t.Parallel()

	repo := container.NewRepository()
	sample, err := container.NewStaticFactory("actual_name", &SampleService{ID: 3})
	require.NoError(t, err)
	require.NoError(t, repo.Register("actual_name", sample))

	f, err := container.NewSingletonFactory("svc", NewInjectableComponent, "wrong_name")
	require.NoError(t, err)
	require.NoError(t, f.Wire(repo))

	v, err := f.Produce(container.NewResolution())
	require.NoError(t, err)
	assert.Equal(t, 3, v.(*InjectableComponent).Sample.ID)
}

// TestWire_AmbiguousByType verifies by-type wiring fails when several
// components produce the required type.
func TestWire_AmbiguousByType(t *testing.T) {
	t.Parallel()

	repo := container.NewRepository()
	for _, name := range []string{"first", "second"} {
		sf, err := container.NewStaticFactory(name, &SampleService{})
		require.NoError(t, err)
		require.NoError(t, repo.Register(name, sf))
	}

	f, err := container.NewSingletonFactory("svc", NewInjectableComponent)
	require.NoError(t, err)
	require.ErrorIs(t, f.Wire(repo), container.ErrAmbiguousComponent)
}

// TestWire_UnknownByType verifies by-type wiring fails when nothing produces
// the required type.
func TestWire_UnknownByType(t *testing.T) {
	t.Parallel()

	f, err := container.NewSingletonFactory("svc", NewInjectableComponent)
	require.NoError(t, err)
	require.ErrorIs(t, f.Wire(container.NewRepository()), container.ErrUnknownComponent)
}

//
// -----------------------------------------------------------------------------
// Production
// -----------------------------------------------------------------------------

// TestSingleton_DependencyResolvedOncePerGraph verifies a shared singleton
// dependency is constructed once even when two components require it.
func TestSingleton_DependencyResolvedOncePerGraph(t *testing.T) {
	t.Parallel()

	c := container.New()
	require.NoError(t, c.RegisterTypes(NewSampleService, NewInjectableComponent))
	require.NoError(t, c.RegisterType(NewInjectableComponent, container.Named("second_holder")))
	require.NoError(t, c.Setup())

	first, err := container.Resolve[*InjectableComponent](c, container.ByName("injectable_component"))
	require.NoError(t, err)
	second, err := container.Resolve[*InjectableComponent](c, container.ByName("second_holder"))
	require.NoError(t, err)

	require.NotSame(t, first, second)
	require.Same(t, first.Sample, second.Sample)
}

// TestPrototype_RequirementsWiredOnce verifies prototype factories re-use the
// wiring done at setup while constructing fresh instances.
func TestPrototype_RequirementsWiredOnce(t *testing.T) {
	t.Parallel()

	c := container.New()
	require.NoError(t, c.RegisterType(NewSampleService))
	require.NoError(t, c.RegisterType(NewInjectableComponent, container.AsPrototype()))
	require.NoError(t, c.Setup())

	first, err := container.Resolve[*InjectableComponent](c, container.ByName("injectable_component"))
	require.NoError(t, err)
	second, err := container.Resolve[*InjectableComponent](c, container.ByName("injectable_component"))
	require.NoError(t, err)

	// Fresh holders, same singleton dependency behind them.
	require.NotSame(t, first, second)
	require.Same(t, first.Sample, second.Sample)
}
