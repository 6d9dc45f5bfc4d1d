// Package nulltester hosts a small conformance checker for defensive Go APIs.
//
// The idea: a well-behaved API rejects a nil argument explicitly, with a
// recognizable failure, instead of limping along or blowing up somewhere
// unrelated. This repository automates checking that contract for every
// in-scope callable of a type, one parameter at a time.
//
// The interesting part lives in the nulltest package:
//
//   - a type-keyed default-value registry that fills the parameters that are
//     NOT under test with valid placeholders
//   - a uniform functor view over constructors, package-level functions and
//     methods, so one verification algorithm drives them all
//   - outcome classification that tells "correctly rejected" apart from
//     "silently accepted" and "failed, but not the way it should"
//
// See subpackages:
//   - nulltest: the library itself
//   - examples/kvstore: a defensively written consumer wired end to end in
//     its own tests
package nulltester
