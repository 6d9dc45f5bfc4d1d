package nulltest

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNilArgument is the null-rejection signal this package recognizes.
//
// A target under test signals a correct rejection by returning or panicking
// with an error that wraps this sentinel (errors.Is). Targets that already
// carry their own sentinel can be accommodated via WithNilRejection instead
// of importing this one.
var ErrNilArgument = errors.New("nil argument")

// MissingDefaultError is the configuration error raised when a non-exempt
// filler parameter has no registered default value. It is always a setup bug
// in the calling test, never a defect in the target.
type MissingDefaultError struct {
	// Type is the parameter type no default was found for.
	Type string
}

// Error implements the error interface.
func (e MissingDefaultError) Error() string {
	// Example: nulltest: no default value registered for "*kvstore.Store"
	return "nulltest: no default value registered for " + strconv.Quote(e.Type)
}

// BadDefaultError reports a misuse of the registry: a nil default, or a
// value that is not assignable to the type it is registered under.
type BadDefaultError struct {
	Type   string
	Reason string
}

// Error implements the error interface.
func (e BadDefaultError) Error() string {
	// Example: nulltest: bad default for "io.Writer": value is nil
	return "nulltest: bad default for " + strconv.Quote(e.Type) + ": " + e.Reason
}

// InvalidMemberError reports that a callable handed to Constructor, Func or
// a Register call cannot be treated as a member at all (not a function, no
// constructed result, and so on).
type InvalidMemberError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e InvalidMemberError) Error() string {
	return "nulltest: invalid member " + strconv.Quote(e.Name) + ": " + e.Reason
}

// MarshalError reports that a call could not be dispatched at all: wrong
// arity, receiver of the wrong type, a member with no callable behind it.
// It is never a test outcome; scans halt on it.
type MarshalError struct {
	Member string
	Reason string
}

// Error implements the error interface.
func (e MarshalError) Error() string {
	// Example: nulltest: cannot invoke "Put(string, []uint8)": receiver has wrong type
	return "nulltest: cannot invoke " + strconv.Quote(e.Member) + ": " + e.Reason
}

// InvocationError wraps a failure raised by the target itself during the
// call, whether panicked or returned through the trailing error result. The
// wrapped cause is what outcome classification looks at.
type InvocationError struct {
	Cause error
}

// Error implements the error interface.
func (e *InvocationError) Error() string {
	return "nulltest: invocation raised: " + e.Cause.Error()
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *InvocationError) Unwrap() error { return e.Cause }

// PanicError adapts a non-error panic value into the error taxonomy so it
// can flow through classification like any other cause.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("nulltest: panic: %v", e.Value)
}
