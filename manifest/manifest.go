// Package manifest registers components from a YAML definition file, so an
// application can move its wiring out of code.
//
// A manifest lists component definitions. Each entry either names a
// constructor from a Catalog supplied by the application, or carries a
// literal value registered as a static component:
//
//	components:
//	  - name: mailer
//	    type: smtp_mailer
//	    params: [config]
//	  - name: scratch
//	    type: request_scratch
//	    kind: prototype
//	  - name: greeting
//	    value: "hello from ${APP_NAME}"
//
// String values are env-expanded (${VAR}) before registration.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/km-arc/go-inject/container"
)

// Kinds accepted in a definition's "kind" field. An empty kind means
// singleton.
const (
	KindSingleton = "singleton"
	KindPrototype = "prototype"
)

// Definition is one component entry in a manifest.
type Definition struct {
	// Name the component is registered under. Optional for constructor
	// entries (derived from the produced type); required for value entries.
	Name string `yaml:"name"`

	// Type is the catalog key of the constructor to register.
	Type string `yaml:"type"`

	// Kind selects the factory: "singleton" (default) or "prototype".
	Kind string `yaml:"kind"`

	// Params optionally bind component names to the constructor's
	// parameters, positionally.
	Params []string `yaml:"params"`

	// Value, if set, registers a literal as a static component instead of a
	// constructor. Mutually exclusive with Type.
	Value any `yaml:"value"`
}

// Manifest is the parsed definition file.
type Manifest struct {
	Components []Definition `yaml:"components"`
}

// Catalog maps manifest type keys to constructor functions. Applications
// build one and hand it to Apply; a manifest can only instantiate what the
// catalog exposes.
type Catalog map[string]any

// Parse decodes a manifest from YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return Parse(data)
}

// Apply registers every definition on c, in manifest order. The first failing
// definition aborts with its position in the error; definitions before it
// stay registered.
func (m *Manifest) Apply(c *container.Container, cat Catalog) error {
	for i, def := range m.Components {
		if err := apply(c, cat, def); err != nil {
			return fmt.Errorf("manifest: component #%d: %w", i, err)
		}
	}
	return nil
}

func apply(c *container.Container, cat Catalog, def Definition) error {
	if def.Value != nil {
		if def.Type != "" {
			return fmt.Errorf("%w: both type and value given", container.ErrInvalidArgument)
		}
		if def.Name == "" {
			return fmt.Errorf("%w: value entry needs a name", container.ErrInvalidArgument)
		}
		return c.RegisterInstance(expand(def.Value), def.Name)
	}

	if def.Type == "" {
		return fmt.Errorf("%w: entry needs a type or a value", container.ErrInvalidArgument)
	}
	ctor, ok := cat[def.Type]
	if !ok {
		return fmt.Errorf("%w: type %q not in catalog", container.ErrUnknownComponent, def.Type)
	}

	opts := make([]container.RegisterOption, 0, 3)
	if def.Name != "" {
		opts = append(opts, container.Named(def.Name))
	}
	if len(def.Params) > 0 {
		opts = append(opts, container.WithParamNames(def.Params...))
	}
	switch def.Kind {
	case "", KindSingleton:
	case KindPrototype:
		opts = append(opts, container.AsPrototype())
	default:
		return fmt.Errorf("%w: unknown kind %q", container.ErrInvalidArgument, def.Kind)
	}

	return c.RegisterType(ctor, opts...)
}

// expand env-expands string values; everything else passes through unchanged.
func expand(v any) any {
	if s, ok := v.(string); ok {
		return os.ExpandEnv(s)
	}
	return v
}
