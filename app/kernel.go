// Package app bootstraps an application around the container: core providers,
// the one-time setup pass, and the HTTP server.
package app

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/km-arc/go-inject/config"
	"github.com/km-arc/go-inject/container"
	"github.com/km-arc/go-inject/providers"
)

// Application is the top-level application kernel. It embeds the container so
// user code can call app.RegisterType(), app.Get(), etc. directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates an application with the core providers registered: config
// (loaded from .env) and the HTTP router.
func New(envFiles ...string) (*Application, error) {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	if err := registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles}); err != nil {
		return nil, err
	}
	if err := registry.Register(&providers.RouterServiceProvider{}); err != nil {
		return nil, err
	}
	return app, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(p container.ServiceProvider) error {
	return a.Providers.Register(p)
}

// Boot wires the container and boots all providers. It must run after all
// registrations and before any lookup.
func (a *Application) Boot() error {
	return a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.MustResolve[*config.Config](a.Container, container.ByName("config"))
}

// Router resolves the HTTP router from the container.
func (a *Application) Router() *chi.Mux {
	return container.MustResolve[*chi.Mux](a.Container, container.ByName("router"))
}

// Run boots the application (if needed) and starts the HTTP server.
// Boot is idempotent: after a successful boot this is a no-op, and after a
// failed one Run returns the original boot error instead of panicking on an
// unwired lookup.
func (a *Application) Run() error {
	if err := a.Boot(); err != nil {
		return err
	}
	cfg := a.Config()
	addr := cfg.Addr()
	log.Printf("%s listening on %s [%s]", cfg.App.Name, addr, cfg.App.Env)
	return http.ListenAndServe(addr, a.Router())
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
