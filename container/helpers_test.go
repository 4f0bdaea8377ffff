package container_test

import (
	"errors"
	"sync/atomic"

	"github.com/km-arc/go-inject/container"
)

// ── shared fixtures ───────────────────────────────────────────────────────────

// SampleService is a dependency-free component.
type SampleService struct {
	ID int
}

func NewSampleService() *SampleService { return &SampleService{} }

// InjectableComponent holds a typed dependency on SampleService.
type InjectableComponent struct {
	Sample *SampleService
}

func NewInjectableComponent(s *SampleService) *InjectableComponent {
	return &InjectableComponent{Sample: s}
}

// AnyHolder declares its dependency untyped; resolution relies on the
// parameter name supplied at registration.
type AnyHolder struct {
	Dep any
}

func NewAnyHolder(dep any) *AnyHolder { return &AnyHolder{Dep: dep} }

// Greeter / ConsoleGreeter exercise interface-typed lookups.
type Greeter interface {
	Greet() string
}

type ConsoleGreeter struct{}

func NewConsoleGreeter() *ConsoleGreeter { return &ConsoleGreeter{} }

func (g *ConsoleGreeter) Greet() string { return "hello" }

// CycleA → CycleB → CycleC → CycleA form a construction cycle.
type CycleA struct{ B *CycleB }
type CycleB struct{ C *CycleC }
type CycleC struct{ A *CycleA }

func NewCycleA(b *CycleB) *CycleA { return &CycleA{B: b} }
func NewCycleB(c *CycleC) *CycleB { return &CycleB{C: c} }
func NewCycleC(a *CycleA) *CycleC { return &CycleC{A: a} }

// SelfAware depends on the container that builds it.
type SelfAware struct {
	C *container.Container
}

func NewSelfAware(c *container.Container) *SelfAware { return &SelfAware{C: c} }

// countingCtor returns a SampleService constructor that counts invocations.
func countingCtor(calls *atomic.Int64) func() *SampleService {
	return func() *SampleService {
		calls.Add(1)
		return &SampleService{}
	}
}

var errBoom = errors.New("boom")

// failingCtor always fails.
func failingCtor() (*SampleService, error) { return nil, errBoom }

// registerCycle registers the three mutually-referencing components.
func registerCycle(c *container.Container) error {
	return c.RegisterTypes(NewCycleA, NewCycleB, NewCycleC)
}
