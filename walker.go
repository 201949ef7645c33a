package coredump

// Backtrace is a fixed-capacity ordered sequence of candidate return
// addresses. Entries [0, k) are populated in stack order; entries
// [k, CallStackSize) are always zero. Zero entries never precede a
// nonzero one.
type Backtrace [CallStackSize]uint32

// WalkStackScan is Strategy A (spec.md 4.4): a portable address-range scan
// over raw stack memory that needs no debug information and no toolchain
// support. It treats any stack-resident word inside the profile's code
// range as a candidate return address -- stale return addresses from
// popped frames may be picked up this way, and that is by design: a
// compact, mostly-correct backtrace is worth more to a human analyst than
// a precise but empty one.
//
// WalkStackScan never errors. An out-of-range sp, a marker pair that never
// appears, and a full output buffer are all ordinary termination
// conditions, not failures.
func WalkStackScan(profile *Profile, mem MemoryView, sp uint32) Backtrace {
	var out Backtrace

	if !profile.InRAMRange(sp) {
		return out
	}

	step := int64(4)
	if !profile.StackGrowsDown {
		step = -4
	}

	n := 0
	addr := int64(sp)

	for d := 0; d < profile.MaxStackDepthSearch; d++ {
		word, ok := mem.ReadWord(uint32(addr))
		if !ok {
			break
		}

		neighbor, ok := mem.ReadWord(uint32(addr + step))
		if ok && word == StackMarker && neighbor == StackMarker {
			break
		}

		if profile.InCodeRange(word) {
			out[n] = word
			n++
			if n == CallStackSize {
				break
			}
		}

		addr += step
	}

	return out
}
