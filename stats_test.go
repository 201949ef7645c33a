package coredump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskBacktraceFillRatios_reflectsPlantedDepths(t *testing.T) {
	profile := HostTestProfile()
	profile.MultiTaskEnabled = true

	mem, _ := newTestStack(profile.RAMBegin, 1024)
	rec := new(DumpRecord)
	c := NewCapturer(profile, rec, mem)
	c.Capture(0, "assert.c", 1, 0)

	liveBase := profile.RAMBegin + 512
	plantCodeAddresses(mem, liveBase, []uint32{profile.CodeBegin + 4, profile.CodeBegin + 8})

	table := &fakeTaskTable{entries: []TaskEntry{{Live: true, StackPointer: liveBase}}}
	CaptureTasks(c, table)

	ratios := TaskBacktraceFillRatios(rec)

	assert.Equal(t, OSTaskCount, len(ratios))
	assert.InDelta(t, 2.0/float64(CallStackSize), ratios[0], 1e-9)
	assert.Equal(t, 0.0, ratios[1])
}
