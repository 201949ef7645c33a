package coredump

import "github.com/dsoprea/go-logging"

// MemoryView is the one bounded, alignment-aware primitive the stack
// walker reads raw memory through. It is the sole "unsafe" surface the
// core exposes (see spec Design Notes "Raw memory reads"): everything else
// in this package only ever calls ReadWord, never does its own pointer
// arithmetic.
type MemoryView interface {
	// ReadWord reads the 32-bit word whose address is addr. ok is false if
	// addr is outside the view's backing extent or misaligned; the walker
	// treats that exactly like "no data here" rather than an error.
	ReadWord(addr uint32) (word uint32, ok bool)
}

// SliceMemoryView is a MemoryView backed by an in-process byte slice,
// addressed starting at Base. It is how every test in this package
// constructs a synthetic stack image, and it is also what cmd/coredumpsim
// and the export package's tests plant candidate addresses into.
type SliceMemoryView struct {
	Base  uint32
	Bytes []byte
}

// NewSliceMemoryView wraps buf as a MemoryView starting at address base.
func NewSliceMemoryView(base uint32, buf []byte) *SliceMemoryView {
	return &SliceMemoryView{Base: base, Bytes: buf}
}

// ReadWord implements MemoryView.
func (v *SliceMemoryView) ReadWord(addr uint32) (uint32, bool) {
	if addr < v.Base {
		return 0, false
	}

	offset := addr - v.Base
	if offset%4 != 0 {
		return 0, false
	}

	end := uint64(offset) + 4
	if end > uint64(len(v.Bytes)) {
		return 0, false
	}

	b := v.Bytes[offset : offset+4]
	word := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return word, true
}

// WriteWord stores value at addr, growing no storage -- addr must already
// be within the view. It exists for tests that plant candidate return
// addresses and marker pairs into a synthetic stack image.
func (v *SliceMemoryView) WriteWord(addr uint32, value uint32) {
	if addr < v.Base {
		log.Panicf("address (0x%08x) precedes view base (0x%08x)", addr, v.Base)
	}

	offset := addr - v.Base
	if int(offset)+4 > len(v.Bytes) {
		log.Panicf("address (0x%08x) exceeds view extent", addr)
	}

	v.Bytes[offset] = byte(value)
	v.Bytes[offset+1] = byte(value >> 8)
	v.Bytes[offset+2] = byte(value >> 16)
	v.Bytes[offset+3] = byte(value >> 24)
}
