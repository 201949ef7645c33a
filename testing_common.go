package coredump

// Shared test scaffolding, in the same spirit as the teacher's
// testing_common.go: instead of opening a fixture file from a well-known
// asset path, every test here builds a synthetic RAM/code image in
// memory, sized against HostTestProfile.

// newTestStack returns a zeroed synthetic stack image of size bytes,
// addressed starting at base, along with the MemoryView wrapping it.
func newTestStack(base uint32, size int) (*SliceMemoryView, []byte) {
	buf := make([]byte, size)
	return NewSliceMemoryView(base, buf), buf
}

// plantCodeAddresses writes addrs as consecutive stack-resident candidate
// return addresses starting at byte offset 4 from base, spaced 8 bytes
// apart with a non-code filler word in between -- the shape spec.md's
// scenario 4 describes -- then plants a marker pair immediately after.
func plantCodeAddresses(mem *SliceMemoryView, base uint32, addrs []uint32) {
	offset := base + 4
	for _, addr := range addrs {
		mem.WriteWord(offset, addr)
		mem.WriteWord(offset+4, 0x11111111) // non-code filler
		offset += 8
	}

	mem.WriteWord(offset, StackMarker)
	mem.WriteWord(offset+4, StackMarker)
}

// adversarialColdBootPatterns returns the uninitialized-RAM byte patterns
// spec.md section 8's universal invariants require IsValid to reject.
func adversarialColdBootPatterns() map[string][]byte {
	patterns := map[string][]byte{}

	size := recordSize()

	allZero := make([]byte, size)
	patterns["all-zero"] = allZero

	allOnes := make([]byte, size)
	for i := range allOnes {
		allOnes[i] = 0xff
	}
	patterns["all-ones"] = allOnes

	alternating := make([]byte, size)
	for i := range alternating {
		if i%2 == 0 {
			alternating[i] = 0xaa
		} else {
			alternating[i] = 0x55
		}
	}
	patterns["alternating"] = alternating

	keyOnly := make([]byte, size)
	keyOnly[0] = 0xef
	keyOnly[1] = 0xbe
	keyOnly[2] = 0xad
	keyOnly[3] = 0xde // little-endian KEY_SENTINEL with a zero anti_key
	patterns["key-sentinel-in-key-position-only"] = keyOnly

	return patterns
}

func recordSize() int {
	raw, err := (&DumpRecord{}).Pack()
	if err != nil {
		panic(err)
	}

	return len(raw)
}
