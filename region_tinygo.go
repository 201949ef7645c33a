//go:build tinygo

package coredump

import "unsafe"

// __coredump_record is defined by the target's linker script in a
// ".noinit" output section the startup runtime does not zero -- see
// linker/noinit.ld and DESIGN.md's "Region / MemoryView" notes.
// go:extern binds globalRecordStorage to that linker symbol instead of
// letting TinyGo allocate (and zero-initialize) it itself.
//
//go:extern __coredump_record
var globalRecordStorage DumpRecord

func newRecordStorage() *DumpRecord {
	return &globalRecordStorage
}

// targetMemoryView is the core's one unsafe primitive on a real target
// (spec.md Design Notes, "Raw memory reads"): addr is interpreted as an
// absolute address in the CPU's address space and read without any bounds
// checking beyond word alignment. Every other component in this package
// only ever reaches memory through the MemoryView interface this
// satisfies.
type targetMemoryView struct{}

func (targetMemoryView) ReadWord(addr uint32) (uint32, bool) {
	if addr%4 != 0 {
		return 0, false
	}

	return *(*uint32)(unsafe.Pointer(uintptr(addr))), true
}
