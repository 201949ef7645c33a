package coredump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkStackScan_outOfRangeStackPointerYieldsEmptyBacktrace(t *testing.T) {
	profile := HostTestProfile()
	mem, _ := newTestStack(profile.RAMBegin, 256)

	sp := profile.RAMEnd + 0x1000 // well outside RAM

	bt := WalkStackScan(profile, mem, sp)

	for i, addr := range bt {
		assert.Equal(t, uint32(0), addr, "entry %d should be zero for an out-of-range stack pointer", i)
	}
}

func TestWalkStackScan_findsPlantedReturnAddresses(t *testing.T) {
	profile := HostTestProfile()
	mem, _ := newTestStack(profile.RAMBegin, 256)

	want := []uint32{
		profile.CodeBegin + 0x100,
		profile.CodeBegin + 0x200,
		profile.CodeBegin + 0x300,
	}
	plantCodeAddresses(mem, profile.RAMBegin, want)

	bt := WalkStackScan(profile, mem, profile.RAMBegin)

	var expected Backtrace
	copy(expected[:], want)

	assert.Equal(t, expected, bt)
}

func TestWalkStackScan_truncatesAtCallStackSize(t *testing.T) {
	profile := HostTestProfile()
	mem, _ := newTestStack(profile.RAMBegin, 512)

	var addrs []uint32
	for i := 0; i < 20; i++ {
		addrs = append(addrs, profile.CodeBegin+uint32(i*0x10))
	}
	plantCodeAddresses(mem, profile.RAMBegin, addrs)

	bt := WalkStackScan(profile, mem, profile.RAMBegin)

	for i := 0; i < CallStackSize; i++ {
		assert.Equal(t, addrs[i], bt[i], "entry %d should hold the i-th planted address in stack order", i)
	}
}

func TestWalkStackScan_stopsAtDepthCapWhenNoMarker(t *testing.T) {
	profile := HostTestProfile()
	profile.MaxStackDepthSearch = 4

	size := 4 * (profile.MaxStackDepthSearch + 8)
	mem, _ := newTestStack(profile.RAMBegin, size)

	// Every word is left zero (non-code, non-marker) and no marker pair is
	// planted, except for one code address just past the depth cap; the
	// walker must stop after MaxStackDepthSearch words, before reaching
	// it, with whatever (nothing, here) it found.
	mem.WriteWord(profile.RAMBegin+uint32(4*(profile.MaxStackDepthSearch+1)), profile.CodeBegin+0x10)

	bt := WalkStackScan(profile, mem, profile.RAMBegin)

	for _, addr := range bt {
		assert.Equal(t, uint32(0), addr)
	}
}

func TestWalkStackScan_zeroNeverPrecedesNonzero(t *testing.T) {
	profile := HostTestProfile()
	mem, _ := newTestStack(profile.RAMBegin, 256)

	plantCodeAddresses(mem, profile.RAMBegin, []uint32{profile.CodeBegin + 4})

	bt := WalkStackScan(profile, mem, profile.RAMBegin)

	seenZero := false
	for _, addr := range bt {
		if addr == 0 {
			seenZero = true
			continue
		}

		if seenZero {
			t.Fatalf("nonzero entry found after a zero entry: %v", bt)
		}
	}
}

func TestWalkFramePointerChain_followsLinksAndStopsAtMarker(t *testing.T) {
	profile := HostTestProfile()
	mem, _ := newTestStack(profile.RAMBegin, 256)

	// Frame layout: [savedFP][returnAddr]. Three chained frames terminated
	// by a marker pair occupying the final link slot.
	f0 := profile.RAMBegin
	f1 := f0 + 16
	f2 := f1 + 16
	marker := f2 + 16

	mem.WriteWord(f0, f1)
	mem.WriteWord(f0+4, profile.CodeBegin+0x10)

	mem.WriteWord(f1, f2)
	mem.WriteWord(f1+4, profile.CodeBegin+0x20)

	mem.WriteWord(f2, marker)
	mem.WriteWord(f2+4, profile.CodeBegin+0x30)

	mem.WriteWord(marker, StackMarker)
	mem.WriteWord(marker+4, StackMarker)

	bt := WalkFramePointerChain(profile, mem, f0)

	expected := Backtrace{profile.CodeBegin + 0x10, profile.CodeBegin + 0x20, profile.CodeBegin + 0x30}
	assert.Equal(t, expected, bt)
}

func TestWalkFramePointerChain_invalidLinkStopsImmediately(t *testing.T) {
	profile := HostTestProfile()
	mem, _ := newTestStack(profile.RAMBegin, 256)

	bt := WalkFramePointerChain(profile, mem, profile.RAMEnd+0x1000)

	for _, addr := range bt {
		assert.Equal(t, uint32(0), addr)
	}
}
