// Package providers holds the core service providers an application registers
// before adding its own: configuration and the HTTP router.
package providers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/km-arc/go-inject/config"
	"github.com/km-arc/go-inject/container"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// registers it as the "config" component.
//
// Registered components:
//   - "config" → *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(c *container.Container) error {
	return c.RegisterInstance(config.Load(p.EnvFiles...), "config")
}

// ── RouterServiceProvider ─────────────────────────────────────────────────────

// RouterServiceProvider registers the HTTP router as a lazy singleton. The
// router's constructor declares *config.Config, so it is resolved through the
// container like any other requirement.
//
// Registered components:
//   - "router" → *chi.Mux
type RouterServiceProvider struct {
	container.BaseProvider
}

func (p *RouterServiceProvider) Register(c *container.Container) error {
	return c.RegisterType(newRouter, container.Named("router"))
}

func newRouter(cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	if cfg.App.Debug {
		r.Use(middleware.Logger)
	}
	return r
}
