package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/km-arc/go-inject/config"
)

// TestLoad_Defaults verifies all defaults when no environment is set.
func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load("testdata/absent.env") // missing file is non-fatal

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "go-inject"},
		{"App.Env", cfg.App.Env, "local"},
		{"HTTP.Port", cfg.HTTP.Port, "8000"},
		{"Addr", cfg.Addr(), ":8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.True(t, cfg.App.Debug)
}

// TestLoad_EnvOverrides verifies environment variables win over defaults.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "svc")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_DEBUG", "false")
	t.Setenv("HTTP_HOST", "0.0.0.0")
	t.Setenv("HTTP_PORT", "9001")

	cfg := config.Load("testdata/absent.env")

	assert.Equal(t, "svc", cfg.App.Name)
	assert.Equal(t, "production", cfg.App.Env)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, "0.0.0.0:9001", cfg.Addr())
}

// TestHelpers verifies the raw env accessors and their fallbacks.
func TestHelpers(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	t.Setenv("SOME_BOOL", "true")
	t.Setenv("SOME_BAD_INT", "x")

	assert.Equal(t, "fallback", config.Get("SOME_UNSET", "fallback"))
	assert.Equal(t, 42, config.GetInt("SOME_INT", 0))
	assert.Equal(t, 7, config.GetInt("SOME_BAD_INT", 7))
	assert.True(t, config.GetBool("SOME_BOOL", false))
	assert.False(t, config.GetBool("SOME_UNSET", false))
}
