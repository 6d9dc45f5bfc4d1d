package nulltest

import (
	"errors"
	"runtime"
	"strings"
)

// outcome is the terminal result of one (member, parameter) check. Only the
// non-passing outcomes ever leave the package, rendered into a reported
// failure message.
type outcome int

const (
	correctRejection outcome = iota
	wrongFailureKind
	noFailureRaised
)

func (o outcome) String() string {
	switch o {
	case correctRejection:
		return "correct rejection"
	case wrongFailureKind:
		return "wrong failure kind"
	default:
		return "no failure raised"
	}
}

// classify decides how a raised cause relates to the contract. Accepted are
// the two recognized signals: a nil rejection and an unsupported operation.
func (t *Tester) classify(cause error) outcome {
	if t.nilRejection(cause) || errors.Is(cause, errors.ErrUnsupported) {
		return correctRejection
	}
	return wrongFailureKind
}

// nilRejection recognizes the null-rejection signal: the ErrNilArgument
// sentinel anywhere in the chain, any predicate installed via
// WithNilRejection, or a runtime nil fault. The last one mirrors the
// original contract this checker descends from: a rejection by accidental
// nil dereference still counts as a rejection, since the call did not
// proceed with the nil.
func (t *Tester) nilRejection(cause error) bool {
	if errors.Is(cause, ErrNilArgument) {
		return true
	}
	for _, accept := range t.rejections {
		if accept(cause) {
			return true
		}
	}
	return nilRuntimeFault(cause)
}

func nilRuntimeFault(cause error) bool {
	var rte runtime.Error
	if !errors.As(cause, &rte) {
		return false
	}
	msg := rte.Error()
	return strings.Contains(msg, "nil pointer dereference") ||
		strings.Contains(msg, "invalid memory address") ||
		strings.Contains(msg, "nil map")
}
