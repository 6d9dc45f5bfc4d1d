package nulltest

import (
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// functor binds a Member to a concrete receiver (methods only) and exposes
// the one invoke operation the verification algorithm needs. Constructors,
// funcs and methods differ only in whether a receiver is prepended, so one
// implementation covers all three kinds.
type functor struct {
	member   Member
	receiver reflect.Value
}

// newFunctor validates the pairing of member and receiver up front so that
// dispatch problems surface as MarshalError instead of masquerading as a
// failure raised by the target.
func newFunctor(m Member, receiver any) (*functor, error) {
	if !m.fn.IsValid() || m.fn.Kind() != reflect.Func || m.fn.IsNil() {
		return nil, MarshalError{Member: m.String(), Reason: "member has no callable"}
	}
	f := &functor{member: m}
	if !m.hasReceiver {
		if receiver != nil {
			return nil, MarshalError{Member: m.String(), Reason: "receiver given for a receiverless member"}
		}
		return f, nil
	}
	rv := reflect.ValueOf(receiver)
	if !rv.IsValid() {
		return nil, MarshalError{Member: m.String(), Reason: "method needs a receiver"}
	}
	if !rv.Type().AssignableTo(m.fn.Type().In(0)) {
		return nil, MarshalError{
			Member: m.String(),
			Reason: "receiver of type " + rv.Type().String() + " does not match " + m.fn.Type().In(0).String(),
		}
	}
	f.receiver = rv
	return f, nil
}

// invoke dispatches the call with the given argument list (receiver
// excluded).
//
// Failure surfaces in two distinct shapes:
//
//   - *InvocationError wraps anything the target itself raised, whether it
//     panicked or returned a non-nil trailing error. Classification digs
//     into its cause.
//   - MarshalError means the call could not be dispatched at all and the
//     check cannot run meaningfully.
//
// A nil return means the target completed without signaling anything.
func (f *functor) invoke(args []reflect.Value) (err error) {
	ft := f.member.fn.Type()
	call := args
	if f.member.hasReceiver {
		call = append([]reflect.Value{f.receiver}, args...)
	}
	if len(call) != ft.NumIn() {
		return MarshalError{Member: f.member.String(), Reason: "wrong number of arguments"}
	}
	for i, a := range call {
		if !a.IsValid() || !a.Type().AssignableTo(ft.In(i)) {
			return MarshalError{Member: f.member.String(), Reason: "argument " + ft.In(i).String() + " not assignable"}
		}
	}

	defer func() {
		if r := recover(); r != nil {
			err = &InvocationError{Cause: panicCause(r)}
		}
	}()
	var out []reflect.Value
	if ft.IsVariadic() {
		out = f.member.fn.CallSlice(call)
	} else {
		out = f.member.fn.Call(call)
	}
	if n := len(out); n > 0 {
		if last := out[n-1]; last.Type() == errType && !last.IsNil() {
			return &InvocationError{Cause: last.Interface().(error)}
		}
	}
	return nil
}

func panicCause(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}

// argDump renders an argument list for failure diagnostics. spew is used
// instead of plain %v so a typed nil and a populated value read differently.
var argDump = spew.ConfigState{Indent: " ", MaxDepth: 3, SortKeys: true}

func renderArgs(args []reflect.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if !a.IsValid() {
			parts[i] = "<invalid>"
			continue
		}
		parts[i] = argDump.Sprintf("%v", a.Interface())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
