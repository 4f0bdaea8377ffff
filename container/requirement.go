package container

import (
	"fmt"
	"reflect"
)

// ── Requirement ───────────────────────────────────────────────────────────────

// Requirement is one declared dependency of a component: an optional component
// name plus the required type. Requirements are created once, at registration
// time, from the component's constructor signature, and are immutable
// afterwards.
//
// Resolution is name-first: a named requirement is looked up by name and the
// match's produced type checked against Type. An unnamed requirement — Go
// reflection does not expose parameter names, so requirements are unnamed
// unless WithParamNames supplies them — resolves by type and requires exactly
// one match.
type Requirement struct {
	Name string
	Type reflect.Type
}

// String renders the requirement for diagnostics.
func (q Requirement) String() string {
	if q.Name != "" {
		return fmt.Sprintf("%s %s", q.Name, q.Type)
	}
	return q.Type.String()
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// constructor is the analyzed shape of a component constructor.
type constructor struct {
	fn         reflect.Value
	out        reflect.Type // produced component type
	returnsErr bool         // true for func(...) (T, error)
}

// analyzeConstructor validates that ctor is a usable constructor function:
// a func value returning one component value, optionally followed by an error.
func analyzeConstructor(ctor any) (constructor, error) {
	if ctor == nil {
		return constructor{}, fmt.Errorf("%w: nil constructor", ErrInvalidArgument)
	}
	if _, isType := ctor.(reflect.Type); isType {
		return constructor{}, fmt.Errorf("%w: a type is not a constructor (pass a func value)", ErrInvalidArgument)
	}

	v := reflect.ValueOf(ctor)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return constructor{}, fmt.Errorf("%w: constructor must be a func, got %s", ErrInvalidArgument, t)
	}

	switch t.NumOut() {
	case 1:
		if t.Out(0) == errType {
			return constructor{}, fmt.Errorf("%w: constructor %s returns only an error", ErrInvalidArgument, t)
		}
		return constructor{fn: v, out: t.Out(0)}, nil
	case 2:
		if t.Out(1) != errType {
			return constructor{}, fmt.Errorf("%w: constructor %s second result must be error", ErrInvalidArgument, t)
		}
		return constructor{fn: v, out: t.Out(0), returnsErr: true}, nil
	default:
		return constructor{}, fmt.Errorf("%w: constructor %s must return (T) or (T, error)", ErrInvalidArgument, t)
	}
}

// RequirementsOf derives the ordered requirement list from a constructor's
// parameter list. A variadic catch-all parameter is skipped. names, if given,
// assign component names to parameters positionally; an empty string leaves
// that parameter resolving by type.
//
// It fails with ErrInvalidArgument if ctor is not a constructor function or
// if more names than parameters are supplied.
func RequirementsOf(ctor any, names ...string) ([]Requirement, error) {
	c, err := analyzeConstructor(ctor)
	if err != nil {
		return nil, err
	}
	return requirementsOf(c, names)
}

func requirementsOf(c constructor, names []string) ([]Requirement, error) {
	t := c.fn.Type()
	n := t.NumIn()
	if t.IsVariadic() {
		n-- // the catch-all never becomes a requirement
	}
	if len(names) > n {
		return nil, fmt.Errorf("%w: %d parameter names for %d parameters of %s",
			ErrInvalidArgument, len(names), n, t)
	}

	reqs := make([]Requirement, 0, n)
	for i := 0; i < n; i++ {
		var name string
		if i < len(names) {
			name = names[i]
		}
		reqs = append(reqs, Requirement{Name: name, Type: t.In(i)})
	}
	return reqs, nil
}
