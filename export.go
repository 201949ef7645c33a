package coredump

// This file is the export interface (C7): the read-only accessors the
// post-reboot consumer uses, plus the reset primitive that hands the
// record back to the cold state machine.

// IsSaved reports whether rec holds a capture the post-reboot path should
// export. It is spec.md's collaborator-facing alias for IsValid.
func IsSaved(rec *DumpRecord) bool {
	return IsValid(rec)
}

// DumpRecordView is a read-only handle to a captured record, as returned
// by Get. Its behavior is undefined if rec was not IsSaved when Get was
// called -- callers must check first.
type DumpRecordView struct {
	rec *DumpRecord
}

// Get returns a read-only handle to rec.
func Get(rec *DumpRecord) DumpRecordView {
	return DumpRecordView{rec: rec}
}

// FaultKind returns the fault classification recorded at capture time.
func (v DumpRecordView) FaultKind() FaultKind { return v.rec.Kind }

// FileName returns the NUL-terminated source file name.
func (v DumpRecordView) FileName() string { return v.rec.FileNameString() }

// LineNumber returns the captured source line.
func (v DumpRecordView) LineNumber() uint32 { return v.rec.LineNumber }

// AuxCode returns the caller-supplied auxiliary tag.
func (v DumpRecordView) AuxCode() uint32 { return v.rec.AuxCode }

// SoftwareVersion returns the build-identity tag stamped at capture time.
func (v DumpRecordView) SoftwareVersion() uint32 { return v.rec.SoftwareVersion }

// RegistersCaptured reports whether Registers and FaultStatusRegisters
// below hold a genuine exception-frame snapshot rather than zero values
// left over from a software-assertion capture or a profile with hardware
// register capture disabled.
func (v DumpRecordView) RegistersCaptured() bool { return v.rec.RegistersCaptured }

// Registers returns the captured general-purpose/status register file.
// It is zero-valued if hardware register capture was not enabled or this
// was a software-assertion capture.
func (v DumpRecordView) Registers() RegisterFile { return v.rec.Registers }

// FaultStatusRegisters returns the captured secondary fault-cause
// registers, zero-valued under the same conditions as Registers.
func (v DumpRecordView) FaultStatusRegisters() FaultStatusRegisters { return v.rec.FaultRegs }

// ActiveBacktrace returns the backtrace captured for the faulting stack.
func (v DumpRecordView) ActiveBacktrace() Backtrace { return v.rec.ActiveBacktrace }

// TaskBacktrace returns the backtrace captured for task index i by
// CaptureTasks, zero-valued if multi-task capture never ran.
func (v DumpRecordView) TaskBacktrace(i int) Backtrace { return v.rec.TaskBacktraces[i] }

// Record exposes the underlying DumpRecord for callers that need to Pack
// it or hand it to the export report renderer.
func (v DumpRecordView) Record() *DumpRecord { return v.rec }

// Reset clears the validity keys so the next cold path sees "no capture".
// It must only be called after rec's content has been durably exported;
// every other field is left at its post-capture value.
func Reset(rec *DumpRecord) {
	ClearValidity(rec)
}
