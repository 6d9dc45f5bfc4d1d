package nulltest

import (
	"errors"
	"reflect"
	"strings"
)

// DefaultValues maps a parameter type to a representative non-nil instance of
// that exact type. The checker draws on it for every parameter that is not
// the nil target of the current check.
//
// Lookup is exact-type only: a default registered for *bytes.Buffer does not
// serve an io.Writer parameter. Register interface defaults under the
// interface type itself.
//
// The registry is seeded with a handful of built-ins:
//
//   - *strings.Builder: a fresh builder (mutable text buffer)
//   - error: a fixed placeholder error
//   - reflect.Type: the reflect.Type describing reflect.Type itself
//   - func(any) any: the identity transform
//   - func() any: a supplier of the constant 1
//
// The last three are not sound for parameterized contracts: a supplier
// filled in for "a supplier of T" always produces the same constant no
// matter what T is. They are kept anyway, because the tool only detects the
// presence of a non-nil placeholder and never relies on its semantics.
//
// There are deliberately no entries for non-nilable types (strings, numbers,
// structs, ...): such a parameter can never hold nil and is exempt from
// checking altogether.
type DefaultValues struct {
	values map[reflect.Type]reflect.Value
}

var placeholderErr = errors.New("nulltest: placeholder failure")

// NewDefaultValues returns a registry seeded with the built-in table.
func NewDefaultValues() *DefaultValues {
	d := &DefaultValues{values: make(map[reflect.Type]reflect.Value, 8)}
	d.Set(reflect.TypeFor[*strings.Builder](), new(strings.Builder))
	d.Set(reflect.TypeFor[error](), placeholderErr)

	// Unsound for generic contracts, see the type doc.
	typeType := reflect.TypeFor[reflect.Type]()
	d.Set(typeType, typeType)
	d.Set(reflect.TypeFor[func(any) any](), func(v any) any { return v })
	d.Set(reflect.TypeFor[func() any](), func() any { return any(1) })
	return d
}

// Set records value as the default for typ and returns the registry for
// chaining. A later Set for the same type replaces the earlier entry.
//
// Set panics with BadDefaultError when value is nil or not assignable to
// typ; both are unrecoverable misuses of the configuration surface.
func (d *DefaultValues) Set(typ reflect.Type, value any) *DefaultValues {
	if typ == nil {
		panic(BadDefaultError{Type: "<nil>", Reason: "type is nil"})
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		panic(BadDefaultError{Type: typ.String(), Reason: "value is nil"})
	}
	if nilable(rv.Type()) && rv.IsNil() {
		panic(BadDefaultError{Type: typ.String(), Reason: "value is a typed nil"})
	}
	if !rv.Type().AssignableTo(typ) {
		panic(BadDefaultError{
			Type:   typ.String(),
			Reason: "value of type " + rv.Type().String() + " is not assignable",
		})
	}
	d.values[typ] = rv
	return d
}

// Get returns the default registered for exactly typ.
func (d *DefaultValues) Get(typ reflect.Type) (reflect.Value, bool) {
	v, ok := d.values[typ]
	return v, ok
}

// Len returns the number of registered defaults, built-ins included.
func (d *DefaultValues) Len() int { return len(d.values) }

// nilable reports whether the zero value of t can be nil. Everything else is
// "primitive" in the checker's sense and exempt from nil substitution.
func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
