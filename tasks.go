package coredump

// CaptureTasks is the optional multi-task walker (C6). It iterates table,
// extracting each live task's saved stack pointer and running the active
// stack-walk strategy into the corresponding row of Record.TaskBacktraces.
// Inactive or null entries are skipped outright.
//
// The walk is capped at OSTaskCount using an exclusive bound (t <
// OSTaskCount). spec.md's Design Notes flag the reference implementation's
// inclusive bound (t <= OSTaskCount) as a likely off-by-one bug rather than
// intent, since it walks one row past the declared table size; this
// implementation uses the corrected exclusive bound.
//
// CaptureTasks does nothing if the profile does not enable multi-task
// capture, or if the record is not yet valid -- there is nothing useful to
// attach task backtraces to before Capture has run. On most RTOSes this
// must not be called from inside an ISR, because the task table is not in
// a consistent state there; it is intended for a software-assertion
// capture path or a dedicated recovery task.
func CaptureTasks(c *Capturer, table TaskTable) {
	if !c.Profile.MultiTaskEnabled || !IsValid(c.Record) {
		return
	}

	count := table.TaskCount()

	for t := 0; t < OSTaskCount && t < count; t++ {
		entry := table.Task(t)
		if !entry.Live {
			continue
		}

		strategy := c.Strategy
		if strategy == nil {
			strategy = WalkStackScan
		}

		c.Record.TaskBacktraces[t] = strategy(c.Profile, c.Memory, entry.StackPointer)
	}
}
