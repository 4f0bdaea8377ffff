package container

import (
	"reflect"
	"strings"
	"unicode"
)

// ── Name derivation ───────────────────────────────────────────────────────────

// NameStrategy derives a component name from a component type. It is consulted
// only when a type is registered without an explicit name.
type NameStrategy interface {
	ComponentName(t reflect.Type) string
}

// SnakeCaseStrategy is the default NameStrategy: it converts a PascalCase type
// name into a lowercase, underscore-separated component name by inserting a
// separator before each interior uppercase letter.
//
//	PrintService  → print_service
//	*PrintService → print_service (pointers are dereferenced first)
type SnakeCaseStrategy struct{}

// ComponentName implements NameStrategy.
func (SnakeCaseStrategy) ComponentName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var b strings.Builder
	for _, r := range t.Name() {
		if unicode.IsUpper(r) {
			if b.Len() > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
