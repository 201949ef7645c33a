package coredump

import (
	"encoding/binary"

	"github.com/dsoprea/go-logging"
	"github.com/go-restruct/restruct"
)

// defaultEncoding is the byte order used to pack/unpack DumpRecord to and
// from its backing storage, the same role defaultEncoding plays for the
// teacher's on-disk structures.
var defaultEncoding = binary.LittleEndian

// RegisterFile is the general-purpose and status register snapshot taken
// from a Cortex-M-style auto-stacked exception frame: R0-R3, R12, the link
// register, the saved program counter, and the program status register --
// eight words, at the fixed offsets the CPU itself pushed them at.
type RegisterFile struct {
	R0, R1, R2, R3, R12 uint32
	LR, PC, PSR         uint32
}

// FaultStatusRegisters are target-specific secondary fault-cause
// registers. The fields modeled here are the ARM Cortex-M fault status
// registers: the Configurable Fault Status Register, the HardFault Status
// Register, and the two fault address registers.
type FaultStatusRegisters struct {
	CFSR  uint32
	HFSR  uint32
	MMFAR uint32
	BFAR  uint32
}

// DumpRecord is the fixed-layout, zero-padded, POD-like structure that
// lives in the non-initialized memory region (see region_tinygo.go,
// linker/noinit.ld and DESIGN.md's "Region / MemoryView" notes). Field order matches
// spec.md section 3 exactly; nothing here may be reordered or resized
// without breaking the host decoder's byte-for-byte expectations.
//
// The register file and per-task backtraces are always present in the
// wire layout (see DESIGN.md's decision on "Conditional fields"); whether
// they carry meaningful data is governed by Profile.HardwareRegistersEnabled
// and Profile.MultiTaskEnabled at capture time, not by the struct shape.
type DumpRecord struct {
	// Key is the validity sentinel. It equals KeySentinel exactly when
	// this record holds a genuine capture; any other value means the
	// region's contents are cold-boot garbage (see validity.go).
	Key uint32
	// AntiKey must equal Key's bitwise complement for the record to be
	// considered valid -- a single stuck or garbage word cannot pass the
	// validity check, since it would have to corrupt both words in a
	// precisely complementary way.
	AntiKey uint32
	// SoftwareVersion is the build-identity tag stamped from
	// Profile.SoftwareVersion at capture time, so a report reader can tell
	// which firmware build produced a given record.
	SoftwareVersion uint32
	// AuxCode is the caller-supplied auxiliary tag passed to Capture,
	// opaque to this package -- an assertion ID, an error code, whatever
	// the call site finds useful to carry through to the report.
	AuxCode uint32
	// Kind classifies why this capture happened: FaultKindHardwareException
	// for a non-null stack pointer from an ISR entry trampoline, or
	// FaultKindSoftwareAssertion when the caller passed a null stack
	// pointer.
	Kind FaultKind
	// LineNumber is the captured source line, paired with FileName.
	LineNumber uint32
	// FileName is the fixed-capacity, NUL-terminated source file name
	// supplied to Capture (see setFileName/FileNameString).
	FileName [FileNameLen]byte

	// RegistersCaptured reports whether Registers and FaultRegs below hold
	// a genuine exception-frame snapshot. Capture only ever sets this true
	// on the hardware-exception path when Profile.HardwareRegistersEnabled
	// is also true; every other path leaves Registers/FaultRegs zero-valued,
	// and this flag is what lets a report reader tell "zero because
	// unread" apart from "zero because that's what the CPU pushed".
	RegistersCaptured bool
	// Registers is the general-purpose/status register snapshot, valid
	// only when RegistersCaptured is true.
	Registers RegisterFile
	// FaultRegs is the secondary fault-cause register snapshot, valid
	// only when RegistersCaptured is true.
	FaultRegs FaultStatusRegisters

	// ActiveBacktrace is the backtrace walked from the faulting stack
	// itself -- the one stack every capture attempts to walk.
	ActiveBacktrace [CallStackSize]uint32
	// TaskBacktraces holds one backtrace per RTOS task slot, populated
	// only when CaptureTasks (C6) runs; rows for tasks it never reached
	// stay zero-filled.
	TaskBacktraces [OSTaskCount][CallStackSize]uint32
}

// Pack renders rec into its canonical byte image, the same image a linker
// section would expose to a durable-storage exporter or a host decoder.
func (rec *DumpRecord) Pack() ([]byte, error) {
	raw, err := restruct.Pack(defaultEncoding, rec)
	if err != nil {
		return nil, log.Wrap(err)
	}

	return raw, nil
}

// UnpackDumpRecord reconstructs a DumpRecord from a byte image previously
// produced by Pack, or read back from durable storage after export.
func UnpackDumpRecord(raw []byte) (rec *DumpRecord, err error) {
	defer func() {
		if errRaw := recover(); errRaw != nil {
			if asErr, ok := errRaw.(error); ok {
				err = log.Wrap(asErr)
			} else {
				err = log.Errorf("panic unpacking dump record: %v", errRaw)
			}
		}
	}()

	rec = new(DumpRecord)

	err = restruct.Unpack(raw, defaultEncoding, rec)
	log.PanicIf(err)

	return rec, nil
}

// setFileName copies name into the fixed buffer using a size-bounded copy,
// always terminating. A null/empty name leaves the buffer as-is except for
// the trailing NUL, matching spec.md's "null file_name" error-handling
// entry.
func (rec *DumpRecord) setFileName(name string) {
	if name == "" {
		rec.FileName[FileNameLen-1] = 0
		return
	}

	n := copy(rec.FileName[:FileNameLen-1], name)
	for i := n; i < FileNameLen; i++ {
		rec.FileName[i] = 0
	}
}

// FileNameString returns the NUL-terminated file-name field as a Go
// string, truncated at the first NUL byte.
func (rec *DumpRecord) FileNameString() string {
	for i, b := range rec.FileName {
		if b == 0 {
			return string(rec.FileName[:i])
		}
	}

	return string(rec.FileName[:])
}
