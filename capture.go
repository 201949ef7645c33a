package coredump

// StackWalkFunc selects one of the interchangeable stack-walk strategies
// (Strategy A WalkStackScan, Strategy B WalkFramePointerChain, or a
// closure around Strategy C WalkHostRuntime). Exactly one is chosen per
// build via Capturer.Strategy.
type StackWalkFunc func(profile *Profile, mem MemoryView, sp uint32) Backtrace

// Capturer is the capture orchestrator (C5). It owns no state of its own
// beyond what it's given -- Record is the single process-wide dump record
// (see DESIGN.md on the global singleton), Memory is the raw stack memory
// the active-capture walk reads, and Registers/StackPointer are the
// optional hardware collaborators spec.md section 6 describes.
type Capturer struct {
	Profile  *Profile
	Record   *DumpRecord
	Memory   MemoryView
	Strategy StackWalkFunc

	Registers    RegisterReader
	StackPointer StackPointerReader
}

// NewCapturer builds a Capturer wired to rec and mem, defaulting to the
// address-range scan strategy (Strategy A), which needs no toolchain or
// OS support.
func NewCapturer(profile *Profile, rec *DumpRecord, mem MemoryView) *Capturer {
	return &Capturer{
		Profile:  profile,
		Record:   rec,
		Memory:   mem,
		Strategy: WalkStackScan,
	}
}

// Capture is the core's single public capture entry point (spec.md 4.5).
// It never returns an error: every recoverable condition -- an
// out-of-range stack pointer, a missing file name, a cascading fault --
// degrades to a zero-filled substructure instead of failing. A nonzero
// stackPointer means this is the auto-pushed exception-frame pointer from
// an ISR entry trampoline. A stackPointer of zero classifies the capture as
// a software assertion; the current stack pointer is then read from the
// StackPointer collaborator only when the profile enables hardware
// registers and StackPointer is set, and otherwise zero is walked as-is,
// which yields an empty backtrace.
//
// Capture is idempotent: once the record is valid, every subsequent call
// before Reset is silently dropped, because a fault cascade after the
// first capture frequently corrupts the context that would otherwise
// overwrite it.
func (c *Capturer) Capture(stackPointer uint32, fileName string, lineNumber uint32, auxCode uint32) {
	if IsValid(c.Record) {
		return
	}

	MarkValid(c.Record)

	c.Record.SoftwareVersion = c.Profile.SoftwareVersion
	c.Record.AuxCode = auxCode

	if stackPointer != 0 {
		c.Record.Kind = FaultKindHardwareException
	} else {
		c.Record.Kind = FaultKindSoftwareAssertion
	}

	if c.Record.Kind == FaultKindHardwareException && c.Profile.HardwareRegistersEnabled && c.Registers != nil {
		c.Record.Registers = c.Registers.ReadRegisters(stackPointer)
		c.Record.FaultRegs = c.Registers.ReadFaultStatusRegisters()
		c.Record.RegistersCaptured = true
	} else {
		c.Record.Registers = RegisterFile{}
		c.Record.FaultRegs = FaultStatusRegisters{}
		c.Record.RegistersCaptured = false
	}

	c.Record.TaskBacktraces = [OSTaskCount][CallStackSize]uint32{}

	c.Record.setFileName(fileName)
	c.Record.LineNumber = lineNumber

	if stackPointer == 0 && c.Profile.HardwareRegistersEnabled && c.StackPointer != nil {
		stackPointer = c.StackPointer.CurrentStackPointer()
	}

	strategy := c.Strategy
	if strategy == nil {
		strategy = WalkStackScan
	}

	c.Record.ActiveBacktrace = strategy(c.Profile, c.Memory, stackPointer)
}
