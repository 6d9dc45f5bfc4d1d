package nulltest

import (
	"io"
	"reflect"
	"strconv"

	"github.com/charmbracelet/log"
)

// Reporter is the failure channel the tester reports through. *testing.T
// satisfies it. Errorf carries test outcomes (a nil that was accepted, a
// rejection of the wrong kind); Fatalf carries setup problems the check
// cannot run through (missing defaults, undispatchable calls).
type Reporter interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// Option customizes a Tester at construction time.
type Option func(*Tester)

// WithEnumerator replaces the default TypeEnumerator. Useful when member
// lists come from somewhere other than runtime reflection.
func WithEnumerator(e Enumerator) Option {
	return func(t *Tester) { t.enum = e }
}

// WithLogger installs a logger for per-check debug tracing. The default
// logger discards everything.
func WithLogger(l *log.Logger) Option {
	return func(t *Tester) { t.logger = l }
}

// WithParallelism lets bulk scans run up to n member checks concurrently.
// Each check builds its own argument list and observes no other check, so
// this is safe whenever the targets themselves are. Values below 2 keep the
// default synchronous behavior.
func WithParallelism(n int) Option {
	return func(t *Tester) {
		if n > 1 {
			t.parallelism = n
		}
	}
}

// WithNilRejection registers an extra predicate recognized as the
// null-rejection signal, for targets that carry their own sentinel instead
// of wrapping ErrNilArgument.
func WithNilRejection(accept func(error) bool) Option {
	return func(t *Tester) {
		if accept != nil {
			t.rejections = append(t.rejections, accept)
		}
	}
}

// Tester verifies that every non-exempt parameter of the callables in scope
// rejects nil with a recognized failure. Configure it with chained
// SetDefaultFor / Ignore / ExemptParameter calls, then point a scan entry
// point at a type.
//
// A Tester owns its registry and ignore-set. Configuration calls are meant
// for test setup, before any scan runs; they are not synchronized against
// running checks.
type Tester struct {
	rep         Reporter
	enum        Enumerator
	defaults    *DefaultValues
	ignored     map[string]struct{}
	exempt      map[string]struct{}
	rejections  []func(error) bool
	logger      *log.Logger
	parallelism int
}

// New returns a Tester reporting through r, with the built-in defaults
// seeded and a reflection-backed enumerator installed.
func New(r Reporter, opts ...Option) *Tester {
	t := &Tester{
		rep:         r,
		enum:        NewTypeEnumerator(),
		defaults:    NewDefaultValues(),
		ignored:     make(map[string]struct{}),
		exempt:      make(map[string]struct{}),
		logger:      log.New(io.Discard),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Defaults exposes the tester's registry, mostly for introspection in tests.
func (t *Tester) Defaults() *DefaultValues { return t.defaults }

// SetDefaultFor records value as the filler for parameters of exactly typ
// and returns the tester for chaining. A later call for the same type
// replaces the earlier value.
func (t *Tester) SetDefaultFor(typ reflect.Type, value any) *Tester {
	t.defaults.Set(typ, value)
	return t
}

// SetDefault is the generic form of (*Tester).SetDefaultFor. The type key is
// T itself, so interface defaults land under the interface type:
//
//	nulltest.SetDefault[io.Writer](nt, &strings.Builder{})
func SetDefault[T any](t *Tester, value T) *Tester {
	return t.SetDefaultFor(reflect.TypeFor[T](), value)
}

// Ignore excludes a member from bulk scans and returns the tester for
// chaining. The exclusion keys on the member's declaration identity, so any
// descriptor of the same declaration is excluded. Single-member entry points
// are not affected.
func (t *Tester) Ignore(m Member) *Tester {
	t.ignored[m.ID()] = struct{}{}
	return t
}

// ExemptParameter marks parameter index of m as legitimately nilable and
// returns the tester for chaining. Equivalent to registering the member with
// the Nilable option, but usable for members the tester discovered itself.
func (t *Tester) ExemptParameter(m Member, index int) *Tester {
	t.exempt[exemptKey(m.ID(), index)] = struct{}{}
	return t
}

func exemptKey(id string, index int) string {
	return id + "#" + strconv.Itoa(index)
}

// exemptAt decides whether a parameter slot participates in checking at
// all. A non-nilable type is exempt unconditionally, marker or not; nilable
// slots are exempt when declared so at registration or via ExemptParameter.
func (t *Tester) exemptAt(m Member, i int) bool {
	if !nilable(m.params[i]) {
		return true
	}
	if m.NilableAt(i) {
		return true
	}
	_, ok := t.exempt[exemptKey(m.ID(), i)]
	return ok
}

// TestConstructor checks every parameter of a constructor member.
func (t *Tester) TestConstructor(m Member) {
	t.rep.Helper()
	if err := t.testMember(nil, m, allParameters); err != nil {
		t.rep.Fatalf("%v", err)
	}
}

// TestConstructorParameter checks a single parameter of a constructor
// member.
func (t *Tester) TestConstructorParameter(m Member, index int) {
	t.rep.Helper()
	if err := t.testMember(nil, m, index); err != nil {
		t.rep.Fatalf("%v", err)
	}
}

// TestMethod checks every parameter of a method (or, with a nil receiver, a
// func member).
func (t *Tester) TestMethod(receiver any, m Member) {
	t.rep.Helper()
	if err := t.testMember(receiver, m, allParameters); err != nil {
		t.rep.Fatalf("%v", err)
	}
}

// TestMethodParameter checks a single parameter of a method (or func)
// member.
func (t *Tester) TestMethodParameter(receiver any, m Member, index int) {
	t.rep.Helper()
	if err := t.testMember(receiver, m, index); err != nil {
		t.rep.Fatalf("%v", err)
	}
}

const allParameters = -1

// testMember runs the per-parameter check for one member. index selects a
// single parameter, or allParameters. The returned error is always a setup
// problem (marshal or configuration), never a test outcome.
func (t *Tester) testMember(receiver any, m Member, index int) error {
	f, err := newFunctor(m, receiver)
	if err != nil {
		return err
	}
	if index != allParameters {
		if index < 0 || index >= len(m.params) {
			return MarshalError{Member: m.String(), Reason: "no parameter " + strconv.Itoa(index)}
		}
		return t.checkParameter(f, index)
	}
	for i := range m.params {
		if err := t.checkParameter(f, i); err != nil {
			return err
		}
	}
	return nil
}

// checkParameter is the unit of verification: one member, one nil target.
func (t *Tester) checkParameter(f *functor, index int) error {
	m := f.member
	if t.exemptAt(m, index) {
		t.logger.Debug("parameter exempt, skipping", "member", m.ID(), "index", index)
		return nil
	}
	args, err := t.buildArgs(m, index)
	if err != nil {
		return err
	}
	t.logger.Debug("checking nil rejection", "member", m.ID(), "index", index)

	err = f.invoke(args)
	if err == nil {
		t.rep.Errorf("nulltest: %s: %s %s accepted nil parameter %d: call %s%s completed",
			noFailureRaised, m.Kind, m.String(), index, m.Name, renderArgs(args))
		return nil
	}
	inv, ok := err.(*InvocationError)
	if !ok {
		// Could not be dispatched; not a verdict about the target.
		return err
	}
	cause := inv.Cause
	switch t.classify(cause) {
	case correctRejection:
		return nil
	default:
		t.rep.Errorf("nulltest: %s: %s %s rejected nil parameter %d with %v",
			wrongFailureKind, m.Kind, m.String(), index, cause)
		return nil
	}
}

// buildArgs constructs the full argument list for a check targeting index:
// the target slot holds the typed nil, every other slot holds the registry
// default for its type. An exempt slot without a default is passed as its
// zero value; a non-exempt one is a configuration error.
func (t *Tester) buildArgs(m Member, index int) ([]reflect.Value, error) {
	args := make([]reflect.Value, len(m.params))
	for j, typ := range m.params {
		if j == index {
			args[j] = reflect.Zero(typ)
			continue
		}
		if v, ok := t.defaults.Get(typ); ok {
			args[j] = v
			continue
		}
		if t.exemptAt(m, j) {
			args[j] = reflect.Zero(typ)
			continue
		}
		return nil, MissingDefaultError{Type: typ.String()}
	}
	return args, nil
}
