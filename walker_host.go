//go:build !tinygo

package coredump

import "runtime"

// WalkHostRuntime is Strategy C (spec.md 4.4): on a host with a native
// backtrace primitive -- used for this package's own test suite and for
// ports to commodity OSes -- a thin adapter calls that primitive instead
// of scanning raw memory. Only the first CallStackSize addresses are
// retained; any symbol resolution the runtime could have done is
// discarded, because the record stores addresses only, so the post-mortem
// pipeline is identical regardless of which strategy produced the data.
//
// skip is the number of additional stack frames to omit on top of this
// function itself, the same convention runtime.Callers uses.
func WalkHostRuntime(skip int) Backtrace {
	var out Backtrace

	pcs := make([]uintptr, CallStackSize)
	n := runtime.Callers(skip+2, pcs)

	for i := 0; i < n && i < CallStackSize; i++ {
		out[i] = uint32(pcs[i])
	}

	return out
}
