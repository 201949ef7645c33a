// Package coredump implements a post-mortem crash-capture subsystem for
// targets without an OS-provided core dump facility: a fixed-layout record
// written to a region of RAM that survives a warm reset, and a heuristic
// stack walker that reconstructs a backtrace from raw stack memory without
// DWARF or unwind tables.
package coredump

// FaultKind classifies why a capture happened.
type FaultKind uint32

const (
	// FaultKindHardwareException means capture() was handed a non-null
	// stack pointer, i.e. it ran from an ISR entry trampoline.
	FaultKindHardwareException FaultKind = iota
	// FaultKindSoftwareAssertion means the caller passed a null stack
	// pointer, i.e. capture() ran from an assertion path.
	FaultKindSoftwareAssertion
)

func (k FaultKind) String() string {
	switch k {
	case FaultKindHardwareException:
		return "Hardware Exception"
	case FaultKindSoftwareAssertion:
		return "Software Assertion"
	default:
		return "Unknown"
	}
}

// Fixed structural sizes. These are Go array lengths and therefore must be
// compile-time constants; a target with different geometry needs its own
// build of this package (see Profile for the values that *can* vary without
// changing the record's shape).
const (
	// CallStackSize is the backtrace depth captured per stack.
	CallStackSize = 8

	// FileNameLen is the fixed capacity of the file-name buffer, including
	// the trailing NUL.
	FileNameLen = 128

	// OSTaskCount is the multi-task walk cap (C6). The walker loop bound is
	// exclusive (t < OSTaskCount) -- the reference implementation this
	// subsystem is modeled on used an inclusive bound here, which walks one
	// past the declared cap into whatever memory follows the task table.
	OSTaskCount = 32
)

// StackMarker is the sentinel word. A thread-entry function must plant two
// consecutive words equal to StackMarker at the base of its stack frame;
// the walker's scan strategy (Strategy A) stops there instead of running to
// MaxStackDepthSearch.
const StackMarker uint32 = 0xEFEFEFEF

// KeySentinel is the dump record's validity key. anti_key must equal its
// bitwise complement for the record to be considered valid (see IsValid).
const KeySentinel uint32 = 0xDEADBEEF

// Profile holds the compile-time platform knowledge every other component
// is parameterized over. All algorithms in this package take a *Profile
// (or consume one indirectly through a Capturer) rather than reading global
// constants, so a single build can carry more than one target's worth of
// ranges in its tests.
type Profile struct {
	// RAMBegin, RAMEnd: inclusive bounds of the stack-bearing data region.
	// A stack pointer outside this range is rejected by the walker.
	RAMBegin, RAMEnd uint32

	// CodeBegin, CodeEnd: inclusive bounds of executable memory. Any
	// in-range stack word is treated as a candidate return address.
	CodeBegin, CodeEnd uint32

	// StackGrowsDown selects the walker's scan direction.
	StackGrowsDown bool

	// MaxStackDepthSearch caps words examined per walk when no marker pair
	// is ever found.
	MaxStackDepthSearch int

	// SoftwareVersion is the fixed build-identity tag stamped into every
	// capture.
	SoftwareVersion uint32

	// HardwareRegistersEnabled selects whether capture() populates
	// RegisterFile/FaultStatusRegisters from the exception frame. Kept as a
	// runtime flag rather than a build-time struct-layout switch (see
	// DESIGN.md) so the record's wire shape is identical across targets;
	// DumpRecord.RegistersCaptured, not this profile flag, is what the host
	// decoder actually reads to tell whether the register section in a
	// given record is meaningful.
	HardwareRegistersEnabled bool

	// MultiTaskEnabled selects whether capture_tasks() (C6) does anything:
	// CaptureTasks checks it at run time and returns without walking when
	// it is false. It has no effect on the record layout.
	MultiTaskEnabled bool
}

// DefaultProfile returns placeholder production ranges. Every real target
// must supply its own Profile built from its linker map; these values exist
// so the package has a usable zero-configuration default and so doc
// examples compile against something concrete.
func DefaultProfile() *Profile {
	return &Profile{
		RAMBegin:            0x20000000,
		RAMEnd:              0x2000FFFF,
		CodeBegin:           0x08000000,
		CodeEnd:             0x081FFFFF,
		StackGrowsDown:      true,
		MaxStackDepthSearch: 1024,
		SoftwareVersion:     0x00010000,
	}
}

// HostTestProfile returns a Profile sized for the synthetic RAM/code images
// the test suite and the host backtrace strategy build in memory. It mirrors
// the layout spec.md's scenario tests use: a small code range and a RAM
// window sized to hold a handful of synthetic stack frames.
func HostTestProfile() *Profile {
	return &Profile{
		RAMBegin:            0x10000000,
		RAMEnd:              0x1000FFFF,
		CodeBegin:           0x00400000,
		CodeEnd:             0x00500000,
		StackGrowsDown:      true,
		MaxStackDepthSearch: 1024,
		SoftwareVersion:     0xC0DEC0DE,
	}
}

// InCodeRange reports whether word could plausibly be a return address.
func (p *Profile) InCodeRange(word uint32) bool {
	return word >= p.CodeBegin && word <= p.CodeEnd
}

// InRAMRange reports whether addr is a legal stack pointer for this target.
func (p *Profile) InRAMRange(addr uint32) bool {
	return addr >= p.RAMBegin && addr <= p.RAMEnd
}
