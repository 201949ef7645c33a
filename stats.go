package coredump

import "github.com/aclements/go-moremath/vec"

// TaskBacktraceDepths returns, for each of the OSTaskCount rows
// CaptureTasks may have populated, how many nonzero backtrace entries it
// holds -- a quick diagnostic for how far the heuristic scan got before
// finding a marker pair or running out of candidates, across every task
// captured in one fault.
func TaskBacktraceDepths(rec *DumpRecord) []float64 {
	depths := make([]float64, OSTaskCount)

	for t := 0; t < OSTaskCount; t++ {
		n := 0
		for _, addr := range rec.TaskBacktraces[t] {
			if addr != 0 {
				n++
			}
		}
		depths[t] = float64(n)
	}

	return depths
}

// TaskBacktraceFillRatios scales each task's backtrace depth against the
// maximum possible depth (CallStackSize), the same vec.Map-shaped
// elementwise transform the retrieval pack's memlat command uses to map
// raw sample counts onto a plotted scale.
func TaskBacktraceFillRatios(rec *DumpRecord) []float64 {
	depths := TaskBacktraceDepths(rec)

	return vec.Map(func(d float64) float64 {
		return d / float64(CallStackSize)
	}, depths)
}
