package nulltest

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// derefFault produces a genuine runtime nil-dereference error.
func derefFault() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(error)
		}
	}()
	var p *int
	_ = *p
	return nil
}

// nilMapFault produces a genuine nil-map assignment error.
func nilMapFault() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(error)
		}
	}()
	var m map[string]int
	m["k"] = 1
	return nil
}

//
// -----------------------------------------------------------------------------
// classification
// -----------------------------------------------------------------------------

// TestClassify_AcceptedKinds verifies the two recognized signals pass, in
// wrapped and bare form, along with runtime nil faults.
func TestClassify_AcceptedKinds(t *testing.T) {
	t.Parallel()

	nt := New(nil)
	for name, cause := range map[string]error{
		"bare sentinel":       ErrNilArgument,
		"wrapped sentinel":    fmt.Errorf("store: value: %w", ErrNilArgument),
		"bare unsupported":    errors.ErrUnsupported,
		"wrapped unsupported": fmt.Errorf("compact: %w", errors.ErrUnsupported),
		"nil dereference":     derefFault(),
		"nil map assignment":  nilMapFault(),
		"deeply nested":       fmt.Errorf("a: %w", fmt.Errorf("b: %w", ErrNilArgument)),
	} {
		assert.Equal(t, correctRejection, nt.classify(cause), name)
	}
}

// TestClassify_WrongKinds verifies unrelated failures classify as the wrong
// kind, including non-error panics adapted through PanicError.
func TestClassify_WrongKinds(t *testing.T) {
	t.Parallel()

	nt := New(nil)
	for name, cause := range map[string]error{
		"plain error":     errors.New("boom"),
		"string panic":    &PanicError{Value: "must not be nil"},
		"wrapped other":   fmt.Errorf("outer: %w", errors.New("inner")),
		"placeholder err": placeholderErr,
	} {
		assert.Equal(t, wrongFailureKind, nt.classify(cause), name)
	}
}

// TestClassify_CustomPredicate verifies WithNilRejection extends, not
// replaces, the recognized null-rejection signal.
func TestClassify_CustomPredicate(t *testing.T) {
	t.Parallel()

	own := errors.New("store: nil argument")
	nt := New(nil, WithNilRejection(func(err error) bool { return errors.Is(err, own) }))

	assert.Equal(t, correctRejection, nt.classify(fmt.Errorf("put: %w", own)))
	assert.Equal(t, correctRejection, nt.classify(ErrNilArgument))
	assert.Equal(t, wrongFailureKind, nt.classify(errors.New("boom")))

	// A nil predicate is dropped, not installed.
	safe := New(nil, WithNilRejection(nil))
	assert.Equal(t, wrongFailureKind, safe.classify(errors.New("boom")))
}

// TestNilRuntimeFault verifies only nil-flavored runtime errors qualify.
func TestNilRuntimeFault(t *testing.T) {
	t.Parallel()

	require.True(t, nilRuntimeFault(derefFault()))
	require.True(t, nilRuntimeFault(nilMapFault()))
	assert.False(t, nilRuntimeFault(errors.New("runtime error: index out of range")))

	boundsFault := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = r.(error)
			}
		}()
		s := []int{}
		_ = s[1]
		return nil
	}()
	assert.False(t, nilRuntimeFault(boundsFault))
}
