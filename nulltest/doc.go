// Package nulltest verifies that an API rejects nil arguments explicitly.
//
// For every callable in scope, the tester invokes it once per nilable
// parameter, with that parameter nil and every other parameter filled from a
// registry of default values. The call must raise one of two recognized
// signals:
//
//   - a null rejection: an error (returned or panicked) wrapping
//     ErrNilArgument, a predicate installed via WithNilRejection, or a
//     runtime nil fault
//   - an unsupported operation: an error wrapping errors.ErrUnsupported
//
// A call that completes, or that fails in any other way, is reported as a
// test failure through the Reporter (normally the *testing.T at hand).
// Parameters of non-nilable types, and parameters declared nilable, are
// skipped entirely.
//
// Go reflection enumerates methods but not constructors or package-level
// functions, so those are registered explicitly as invocable wrappers:
//
//	en := nulltest.NewTypeEnumerator().
//		RegisterConstructor(kvstore.NewStore).
//		RegisterFunc(kvstore.Store{}, "Open", kvstore.Open)
//
//	nt := nulltest.New(t, nulltest.WithEnumerator(en))
//	nulltest.SetDefault[*kvstore.Store](nt, seed)
//
//	nt.TestAllPublicConstructors(kvstore.Store{})
//	nt.TestAllPublicFuncs(kvstore.Store{})
//	nt.TestAllPublicInstanceMethods(seed)
//
// The same applies to unexported members: reflection cannot call them, and
// this package does not try to pry access open. Register a closure from
// inside the target's own package instead; the declared Modifier set keeps
// visibility-filtered scans honest.
package nulltest
