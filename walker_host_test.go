//go:build !tinygo

package coredump

import "testing"

func callerOfWalkHostRuntime() Backtrace {
	return WalkHostRuntime(0)
}

func TestWalkHostRuntime_capturesNonemptyBacktrace(t *testing.T) {
	bt := callerOfWalkHostRuntime()

	if bt[0] == 0 {
		t.Fatalf("expected at least one real caller PC, got all zero: %v", bt)
	}
}

func TestWalkHostRuntime_neverExceedsCallStackSize(t *testing.T) {
	bt := callerOfWalkHostRuntime()

	if len(bt) != CallStackSize {
		t.Fatalf("backtrace array must be exactly CallStackSize long, got %d", len(bt))
	}
}
