package container

import "fmt"

// ── ServiceProvider ───────────────────────────────────────────────────────────

// ServiceProvider groups related component registrations so an application can
// assemble its container from modular pieces.
//
// Register runs during the registration phase and must only register
// components — nothing is wired yet, so resolving inside Register fails with
// ErrNotInitialized. Boot runs after the registry has performed the
// container's Setup pass, so every component is resolvable there.
//
//	type MailProvider struct{ container.BaseProvider }
//
//	func (p *MailProvider) Register(c *container.Container) error {
//	    return c.RegisterType(NewMailer, container.Named("mailer"))
//	}
//
//	func (p *MailProvider) Boot(c *container.Container) error {
//	    mailer, err := container.Resolve[*Mailer](c, container.ByName("mailer"))
//	    …
//	}
type ServiceProvider interface {
	// Register binds components into the container. Do not resolve here.
	Register(c *Container) error

	// Boot is called after the container has been set up.
	// Safe to resolve any component here.
	Boot(c *Container) error
}

// BaseProvider is an embeddable no-op Boot implementation. Embed it and
// override only what the provider needs.
//
//	type MyProvider struct{ container.BaseProvider }
//	func (p *MyProvider) Register(c *container.Container) error { … }
type BaseProvider struct{}

func (BaseProvider) Boot(*Container) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages the two-phase provider lifecycle against one
// container: Register collects registrations, Boot performs the container's
// one-time Setup pass and then boots every provider in registration order.
type ProviderRegistry struct {
	c          *Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
	bootErr    error
}

// NewProviderRegistry creates a registry bound to c.
func NewProviderRegistry(c *Container) *ProviderRegistry {
	return &ProviderRegistry{
		c:          c,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and runs its Register phase. Registering the same
// provider twice is a no-op. Providers cannot be added after Boot: the Setup
// pass has fixed the dependency graph by then.
func (r *ProviderRegistry) Register(p ServiceProvider) error {
	if r.registered[p] {
		return nil
	}
	if r.booted {
		return fmt.Errorf("%w: cannot register a provider after Boot", ErrInvalidState)
	}
	r.registered[p] = true
	r.providers = append(r.providers, p)
	return p.Register(r.c)
}

// Boot performs Container.Setup and then calls Boot on every provider, in
// registration order. It runs at most once: later calls return the first
// run's outcome, so a boot failure keeps surfacing instead of being
// swallowed by the run-once check.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return r.bootErr
	}
	r.booted = true

	if err := r.c.Setup(); err != nil {
		r.bootErr = err
		return err
	}
	for _, p := range r.providers {
		if err := p.Boot(r.c); err != nil {
			r.bootErr = err
			return err
		}
	}
	return nil
}

// Booted reports whether Boot has run, successfully or not.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered providers in registration order.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
