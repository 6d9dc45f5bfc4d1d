package nulltest

import (
	"reflect"

	"golang.org/x/sync/errgroup"
)

// TestAllPublicConstructors runs the per-parameter check on every public
// constructor registered for the target type.
func (t *Tester) TestAllPublicConstructors(target any) {
	t.rep.Helper()
	t.TestConstructors(target, VisibilityPublic)
}

// TestConstructors runs the per-parameter check on every registered
// constructor of the target type with at least the given visibility.
func (t *Tester) TestConstructors(target any, vis Visibility) {
	t.rep.Helper()
	typ := typeOf(target)
	t.scan(t.enum.DeclaredConstructors(typ), nil, typ, vis)
}

// TestAllPublicFuncs runs the per-parameter check on every public
// package-level function registered for the target type.
func (t *Tester) TestAllPublicFuncs(target any) {
	t.rep.Helper()
	t.TestFuncs(target, VisibilityPublic)
}

// TestFuncs runs the per-parameter check on every registered package-level
// function of the target type with at least the given visibility.
func (t *Tester) TestFuncs(target any, vis Visibility) {
	t.rep.Helper()
	typ := typeOf(target)
	t.scan(t.enum.DeclaredFuncs(typ), nil, typ, vis)
}

// TestAllPublicInstanceMethods runs the per-parameter check on every public
// method of the dynamic type of instance, invoked on that instance. Pass a
// pointer to cover pointer-receiver methods.
func (t *Tester) TestAllPublicInstanceMethods(instance any) {
	t.rep.Helper()
	t.TestInstanceMethods(instance, VisibilityPublic)
}

// TestInstanceMethods runs the per-parameter check on every method of the
// dynamic type of instance with at least the given visibility.
func (t *Tester) TestInstanceMethods(instance any, vis Visibility) {
	t.rep.Helper()
	typ := reflect.TypeOf(instance)
	if typ == nil {
		t.rep.Fatalf("%v", MarshalError{Member: "<instance>", Reason: "instance is nil"})
		return
	}
	t.scan(t.enum.DeclaredMethods(typ), instance, typ, vis)
}

// scan filters the supplied members by visibility, ignore-set and the
// synthetic flag, then checks each survivor. With parallelism enabled the
// survivors run on a bounded errgroup; assertion failures are reported from
// the workers (Errorf is safe off the test goroutine), while the first
// setup error is carried back and raised on the caller's goroutine.
func (t *Tester) scan(members []Member, receiver any, typ reflect.Type, vis Visibility) {
	t.rep.Helper()
	selected := members[:0:0]
	for _, m := range members {
		if m.Modifiers.Has(ModSynthetic) {
			continue
		}
		if !vis.Visible(m.Modifiers) {
			continue
		}
		if _, skip := t.ignored[m.ID()]; skip {
			continue
		}
		selected = append(selected, m)
	}
	t.logger.Debug("scanning members",
		"type", typ.String(), "visibility", vis.String(),
		"declared", len(members), "selected", len(selected))

	if t.parallelism <= 1 {
		for _, m := range selected {
			if err := t.testMember(receiver, m, allParameters); err != nil {
				t.rep.Fatalf("%v", err)
				return
			}
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(t.parallelism)
	for _, m := range selected {
		g.Go(func() error {
			return t.testMember(receiver, m, allParameters)
		})
	}
	if err := g.Wait(); err != nil {
		t.rep.Fatalf("%v", err)
	}
}
