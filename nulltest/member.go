package nulltest

import (
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MemberKind classifies a callable member.
type MemberKind int

const (
	// KindConstructor is a package-level function whose first result is (or
	// points to) the target type.
	KindConstructor MemberKind = iota

	// KindFunc is a package-level function associated with the target type,
	// the closest Go has to a static method.
	KindFunc

	// KindMethod is a method on the target type or its pointer type.
	KindMethod
)

// String implements fmt.Stringer.
func (k MemberKind) String() string {
	switch k {
	case KindConstructor:
		return "constructor"
	case KindFunc:
		return "func"
	default:
		return "method"
	}
}

// Member is a stable descriptor of one callable: its kind, name, declaring
// type, modifiers, ordered parameter types and declared-nilable slots. It is
// what the ignore-set and the exemption side-table key on, so its identity
// is derived from the declaration, not from the descriptor value itself —
// two Members describing the same declaration compare as the same member.
type Member struct {
	// Kind says whether this is a constructor, a func or a method.
	Kind MemberKind

	// Name is the declared name, e.g. "NewStore" or "Put".
	Name string

	// Target is the type the member belongs to (pointer types are reduced
	// to their element type for constructors and funcs).
	Target reflect.Type

	// Modifiers describes how the member is declared.
	Modifiers Modifier

	fn          reflect.Value
	params      []reflect.Type
	nilableAt   map[int]bool
	hasReceiver bool
}

// MemberOption customizes a member at registration time.
type MemberOption func(*Member)

// WithModifiers replaces the member's inferred modifier set.
func WithModifiers(m Modifier) MemberOption {
	return func(mem *Member) { mem.Modifiers = m }
}

// Nilable marks the given parameter positions as legitimately accepting nil.
// A marked position is never used as the nil target of a check, and an
// unfillable marked position is passed as nil instead of failing the setup.
func Nilable(indexes ...int) MemberOption {
	return func(mem *Member) {
		for _, i := range indexes {
			mem.nilableAt[i] = true
		}
	}
}

// ID returns a stable identity string for the member, usable as a map key.
func (m Member) ID() string {
	target := "<nil>"
	if m.Target != nil {
		target = m.Target.String()
	}
	return m.Kind.String() + " " + target + "." + m.Name + "/" + strconv.Itoa(len(m.params))
}

// ParameterTypes returns the ordered parameter types (receiver excluded).
func (m Member) ParameterTypes() []reflect.Type {
	out := make([]reflect.Type, len(m.params))
	copy(out, m.params)
	return out
}

// NilableAt reports whether parameter i was declared nilable at
// registration time.
func (m Member) NilableAt(i int) bool { return m.nilableAt[i] }

// String renders the member as name(parameter types).
func (m Member) String() string {
	parts := make([]string, len(m.params))
	for i, p := range m.params {
		parts[i] = p.String()
	}
	return m.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Constructor wraps a constructor function as a Member. The target type is
// taken from the function's first result; a pointer result is reduced to its
// element type. Constructor panics with InvalidMemberError on anything that
// is not a function returning a constructed value.
func Constructor(fn any, opts ...MemberOption) Member {
	fv, name := callable(fn, "")
	ft := fv.Type()
	if ft.NumOut() == 0 {
		panic(InvalidMemberError{Name: name, Reason: "constructor returns nothing"})
	}
	target := ft.Out(0)
	if target == errType {
		panic(InvalidMemberError{Name: name, Reason: "constructor must return the constructed value first"})
	}
	if target.Kind() == reflect.Pointer {
		target = target.Elem()
	}
	return newMember(KindConstructor, name, target, fv, false, opts)
}

// Func wraps a package-level function as a Member associated with target.
// An empty name falls back to the function's runtime name.
func Func(target any, name string, fn any, opts ...MemberOption) Member {
	fv, inferred := callable(fn, name)
	m := newMember(KindFunc, inferred, derefType(typeOf(target)), fv, false, opts)
	m.Modifiers |= ModStatic
	return m
}

// MethodOf looks up an exported method on the dynamic type of receiver.
func MethodOf(receiver any, name string) (Member, bool) {
	rt := reflect.TypeOf(receiver)
	if rt == nil {
		return Member{}, false
	}
	rm, ok := rt.MethodByName(name)
	if !ok {
		return Member{}, false
	}
	return methodMember(rt, rm), true
}

func methodMember(t reflect.Type, rm reflect.Method) Member {
	m := newMember(KindMethod, rm.Name, t, rm.Func, true, nil)
	return m
}

func newMember(kind MemberKind, name string, target reflect.Type, fv reflect.Value, hasReceiver bool, opts []MemberOption) Member {
	ft := fv.Type()
	first := 0
	if hasReceiver {
		first = 1
	}
	params := make([]reflect.Type, 0, ft.NumIn()-first)
	for i := first; i < ft.NumIn(); i++ {
		params = append(params, ft.In(i))
	}
	m := Member{
		Kind:        kind,
		Name:        name,
		Target:      target,
		Modifiers:   inferModifiers(name),
		fn:          fv,
		params:      params,
		nilableAt:   make(map[int]bool),
		hasReceiver: hasReceiver,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// callable validates fn and resolves its display name.
func callable(fn any, name string) (reflect.Value, string) {
	fv := reflect.ValueOf(fn)
	if name == "" {
		name = funcName(fv)
	}
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		panic(InvalidMemberError{Name: name, Reason: "not a function"})
	}
	return fv, name
}

// inferModifiers mirrors Go's own rule: an exported name is public, an
// unexported one is package-private. WithModifiers overrides the inference.
func inferModifiers(name string) Modifier {
	r, _ := utf8.DecodeRuneInString(name)
	if unicode.IsUpper(r) {
		return ModPublic
	}
	return 0
}

// funcName resolves a function value's short runtime name, e.g. "NewStore".
func funcName(fv reflect.Value) string {
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		return "<nil>"
	}
	rf := runtime.FuncForPC(fv.Pointer())
	if rf == nil {
		return "<unknown>"
	}
	name := rf.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

var errType = reflect.TypeFor[error]()

// typeOf normalizes a scan target: a reflect.Type is used as-is, anything
// else contributes its dynamic type.
func typeOf(target any) reflect.Type {
	if t, ok := target.(reflect.Type); ok {
		return t
	}
	return reflect.TypeOf(target)
}

func derefType(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// Enumerator lists the declared callable members of a type. It is the
// collaborator bulk scans consume; TypeEnumerator is the default
// implementation.
type Enumerator interface {
	DeclaredConstructors(t reflect.Type) []Member
	DeclaredFuncs(t reflect.Type) []Member
	DeclaredMethods(t reflect.Type) []Member
}

// TypeEnumerator is the default Enumerator. Methods come straight from the
// runtime via reflection. Constructors and package-level functions are not
// discoverable in Go, so they are registered explicitly as invocable
// wrappers and handed back per target type.
type TypeEnumerator struct {
	ctors map[reflect.Type][]Member
	funcs map[reflect.Type][]Member
}

// NewTypeEnumerator returns an empty enumerator.
func NewTypeEnumerator() *TypeEnumerator {
	return &TypeEnumerator{
		ctors: make(map[reflect.Type][]Member),
		funcs: make(map[reflect.Type][]Member),
	}
}

// RegisterConstructor records fn as a constructor of the type its first
// result constructs. Returns the enumerator for chaining.
func (e *TypeEnumerator) RegisterConstructor(fn any, opts ...MemberOption) *TypeEnumerator {
	m := Constructor(fn, opts...)
	e.ctors[m.Target] = append(e.ctors[m.Target], m)
	return e
}

// RegisterFunc records a package-level function as a static member of
// target. Returns the enumerator for chaining.
func (e *TypeEnumerator) RegisterFunc(target any, name string, fn any, opts ...MemberOption) *TypeEnumerator {
	m := Func(target, name, fn, opts...)
	e.funcs[m.Target] = append(e.funcs[m.Target], m)
	return e
}

// DeclaredConstructors implements Enumerator.
func (e *TypeEnumerator) DeclaredConstructors(t reflect.Type) []Member {
	return e.ctors[derefType(t)]
}

// DeclaredFuncs implements Enumerator.
func (e *TypeEnumerator) DeclaredFuncs(t reflect.Type) []Member {
	return e.funcs[derefType(t)]
}

// DeclaredMethods implements Enumerator. Only exported methods exist as far
// as Go reflection is concerned; each is reported as public. Pass a pointer
// type to include pointer-receiver methods.
func (e *TypeEnumerator) DeclaredMethods(t reflect.Type) []Member {
	if t == nil || t.Kind() == reflect.Interface {
		return nil
	}
	out := make([]Member, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		out = append(out, methodMember(t, t.Method(i)))
	}
	return out
}
