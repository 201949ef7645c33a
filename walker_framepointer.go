package coredump

// WalkFramePointerChain is Strategy B (spec.md 4.4): when the toolchain
// preserves frame pointers, following the saved-frame-pointer linked list
// skips local-variable words entirely and so reports fewer spurious
// entries than the address-range scan (Strategy A). fp is the initial
// frame-pointer value; the saved return address for each frame is read
// from the word immediately following the saved link (the standard
// frame-pointer layout: [savedFP][returnAddress]).
//
// A link is valid only if it still lies in RAM and points strictly
// further along the stack than the frame that referenced it -- this is
// what keeps a corrupt or cyclic chain from looping forever. The chain
// terminates at an invalid link, at a marker pair occupying the link
// slot, or once the output buffer is full.
func WalkFramePointerChain(profile *Profile, mem MemoryView, fp uint32) Backtrace {
	var out Backtrace

	link := fp
	n := 0

	for n < CallStackSize {
		if !profile.InRAMRange(link) {
			break
		}

		savedLink, ok := mem.ReadWord(link)
		if !ok {
			break
		}

		retAddr, ok := mem.ReadWord(link + 4)
		if !ok {
			break
		}

		if savedLink == StackMarker && retAddr == StackMarker {
			break
		}

		out[n] = retAddr
		n++

		if profile.StackGrowsDown {
			if savedLink <= link {
				break
			}
		} else {
			if savedLink >= link {
				break
			}
		}

		link = savedLink
	}

	return out
}
