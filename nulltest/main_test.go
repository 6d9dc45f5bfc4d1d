package nulltest_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain guards against leaked goroutines, mostly to keep the parallel
// scan path honest about waiting for its workers.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
