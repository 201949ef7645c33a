package coredump

// This file declares the collaborator contracts spec.md section 6
// describes in prose, as Go interfaces. None of them are implemented by
// this package -- a real target package implements them against its own
// CPU and RTOS, and the core here only ever consumes them. This is what
// lets Capture, CaptureTasks, and the walkers run against test doubles
// without any target-specific import.

// StackPointerReader reads the CPU's current stack-pointer register. It is
// consulted by Capture only when the caller passes a null stack pointer on
// a hardware-register-enabled profile (spec.md 4.5 step 8).
type StackPointerReader interface {
	CurrentStackPointer() uint32
}

// RegisterReader reads the exception-frame register file and the
// target-specific secondary fault-status registers. It is consulted by
// Capture on the hardware-exception path when the profile enables hardware
// register capture (spec.md 4.5 step 5).
type RegisterReader interface {
	ReadRegisters(stackPointer uint32) RegisterFile
	ReadFaultStatusRegisters() FaultStatusRegisters
}

// Resetter performs the CPU reset a fault handler triggers after Capture
// returns (spec.md 4.5 step 10) and that a post-reboot caller triggers
// after durable export (spec.md C7 reset()). It is never called by this
// package; it exists so a target package has a named contract to satisfy
// and so test doubles can assert a reset was requested.
type Resetter interface {
	Reset()
}

// TaskEntry is one row of a TaskTable: a live task's saved stack pointer,
// or Live == false for an inactive/null slot that CaptureTasks must skip.
type TaskEntry struct {
	StackPointer uint32
	Live         bool
}

// TaskTable is the OS-integration collaborator CaptureTasks (C6) walks.
// Implementations back it with the RTOS's actual task control block array;
// TaskCount must not exceed OSTaskCount (the walk is bounded regardless,
// see CaptureTasks).
type TaskTable interface {
	TaskCount() int
	Task(index int) TaskEntry
}
