package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyNoLeaks verifies that no goroutines are leaked during test execution.
// Call this at the beginning of tests that open databases or run UI programs.
//
// Example usage:
//
//	func TestHistoryRecord(t *testing.T) {
//	    defer VerifyNoLeaks(t)
//	    // Test code that may create resources
//	}
func VerifyNoLeaks(t *testing.T) {
	t.Helper()
	goleak.VerifyNone(t, defaultOptions()...)
}

// VerifyNoLeaksWithOptions provides more control over leak detection.
func VerifyNoLeaksWithOptions(t *testing.T, options ...goleak.Option) {
	t.Helper()
	allOptions := append(defaultOptions(), options...)
	goleak.VerifyNone(t, allOptions...)
}

// defaultOptions returns common ignore patterns for testing framework goroutines
func defaultOptions() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreTopFunction("testing.tRunner.func1"),
		goleak.IgnoreTopFunction("testing.runTests"),
		goleak.IgnoreTopFunction("testing.(*M).Run"),
		goleak.IgnoreTopFunction("go.uber.org/goleak.(*opts).retry"),
		goleak.IgnoreTopFunction("time.Sleep"),
	}
}
