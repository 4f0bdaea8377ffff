package container_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-inject/container"
)

type PrintService struct{}
type Print struct{}
type HTMLBody struct{}

// TestSnakeCase_ComponentName verifies the PascalCase → snake_case
// conversion, including the letter-by-letter handling of acronyms.
func TestSnakeCase_ComponentName(t *testing.T) {
	t.Parallel()

	s := container.SnakeCaseStrategy{}

	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"multi word", reflect.TypeOf(PrintService{}), "print_service"},
		{"single word", reflect.TypeOf(Print{}), "print"},
		{"pointer dereferenced", reflect.TypeOf(&PrintService{}), "print_service"},
		{"acronym splits per letter", reflect.TypeOf(HTMLBody{}), "h_t_m_l_body"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, s.ComponentName(tt.typ))
		})
	}
}

// upperStrategy derives names by upper-casing the type name.
type upperStrategy struct{}

func (upperStrategy) ComponentName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := make([]rune, 0, len(t.Name()))
	for _, r := range t.Name() {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}

// TestContainer_CustomNameStrategy verifies the pluggable strategy is used
// when no explicit name is given.
func TestContainer_CustomNameStrategy(t *testing.T) {
	t.Parallel()

	c := container.New(container.WithNameStrategy(upperStrategy{}))
	require.NoError(t, c.RegisterType(NewSampleService))

	assert.True(t, c.Exists(container.ByName("SAMPLESERVICE")))
	assert.False(t, c.Exists(container.ByName("sample_service")))
}
