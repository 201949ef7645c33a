package coredump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCapturer() (*Capturer, *DumpRecord) {
	profile := HostTestProfile()
	mem, _ := newTestStack(profile.RAMBegin, 256)
	rec := new(DumpRecord)

	return NewCapturer(profile, rec, mem), rec
}

type fakeRegisterReader struct {
	regs RegisterFile
	fsr  FaultStatusRegisters
}

func (f fakeRegisterReader) ReadRegisters(stackPointer uint32) RegisterFile { return f.regs }

func (f fakeRegisterReader) ReadFaultStatusRegisters() FaultStatusRegisters { return f.fsr }

func TestCapture_softwareAssertionCapturesLocation(t *testing.T) {
	c, rec := newTestCapturer()

	c.Capture(0, "path/to/file.c", 42, 0)

	assert.True(t, IsSaved(rec))
	assert.Equal(t, FaultKindSoftwareAssertion, rec.Kind)
	assert.Equal(t, "path/to/file.c", rec.FileNameString())
	assert.Equal(t, uint32(42), rec.LineNumber)
	assert.Equal(t, uint32(0), rec.AuxCode)
}

func TestCapture_hardwareExceptionClassification(t *testing.T) {
	c, rec := newTestCapturer()

	c.Capture(c.Profile.RAMBegin, "isr.c", 7, 0xee)

	assert.Equal(t, FaultKindHardwareException, rec.Kind)
	assert.Equal(t, uint32(0xee), rec.AuxCode)
}

func TestCapture_registersNotCapturedWhenProfileDisablesThem(t *testing.T) {
	c, rec := newTestCapturer()
	c.Registers = fakeRegisterReader{regs: RegisterFile{R0: 1}, fsr: FaultStatusRegisters{CFSR: 2}}
	// c.Profile.HardwareRegistersEnabled is left false.

	c.Capture(c.Profile.RAMBegin, "isr.c", 7, 0)

	assert.Equal(t, FaultKindHardwareException, rec.Kind)
	assert.False(t, rec.RegistersCaptured)
	assert.Equal(t, RegisterFile{}, rec.Registers)
	assert.Equal(t, FaultStatusRegisters{}, rec.FaultRegs)
}

func TestCapture_registersCapturedWhenProfileEnablesThem(t *testing.T) {
	c, rec := newTestCapturer()
	c.Profile.HardwareRegistersEnabled = true
	c.Registers = fakeRegisterReader{regs: RegisterFile{R0: 1}, fsr: FaultStatusRegisters{CFSR: 2}}

	c.Capture(c.Profile.RAMBegin, "isr.c", 7, 0)

	assert.True(t, rec.RegistersCaptured)
	assert.Equal(t, uint32(1), rec.Registers.R0)
	assert.Equal(t, uint32(2), rec.FaultRegs.CFSR)
}

func TestCapture_registersNotCapturedOnSoftwareAssertion(t *testing.T) {
	c, rec := newTestCapturer()
	c.Profile.HardwareRegistersEnabled = true
	c.Registers = fakeRegisterReader{regs: RegisterFile{R0: 1}}

	c.Capture(0, "assert.c", 1, 0)

	assert.Equal(t, FaultKindSoftwareAssertion, rec.Kind)
	assert.False(t, rec.RegistersCaptured)
}

func TestCapture_firstWriterWins(t *testing.T) {
	c, rec := newTestCapturer()

	c.Capture(0, "first", 1, 0)
	c.Capture(0, "second", 2, 9)

	assert.Equal(t, "first", rec.FileNameString())
	assert.Equal(t, uint32(1), rec.LineNumber)
	assert.Equal(t, uint32(0), rec.AuxCode)
}

func TestCapture_idempotentAcrossManyCalls(t *testing.T) {
	c, rec := newTestCapturer()

	c.Capture(0, "first", 1, 0)
	after1, err := rec.Pack()
	assert.NoError(t, err)

	for i := 0; i < 5; i++ {
		c.Capture(0, "ignored", uint32(i+100), uint32(i+100))
	}

	afterN, err := rec.Pack()
	assert.NoError(t, err)

	assert.Equal(t, after1, afterN)
}

func TestCapture_resetRoundTrip(t *testing.T) {
	c, rec := newTestCapturer()

	c.Capture(0, "first", 1, 0)
	assert.True(t, IsSaved(rec))

	exported, err := rec.Pack()
	assert.NoError(t, err)
	assert.NotNil(t, exported)

	Reset(rec)
	assert.False(t, IsSaved(rec))

	c.Capture(0, "second", 2, 0)
	assert.True(t, IsSaved(rec))
	assert.Equal(t, "second", rec.FileNameString())
}

func TestCapture_emptyFileNameStillNullTerminated(t *testing.T) {
	c, rec := newTestCapturer()

	c.Capture(0, "", 5, 0)

	assert.True(t, IsSaved(rec))
	assert.Equal(t, byte(0), rec.FileName[FileNameLen-1])
}

func TestCapture_cascadingFaultsDoNotCorruptFirstCapture(t *testing.T) {
	c, rec := newTestCapturer()

	c.Capture(c.Profile.RAMBegin, "first.c", 10, 1)
	firstKind := rec.Kind

	// A cascading software assertion after the hardware exception must
	// not flip the classification or any other field.
	c.Capture(0, "second.c", 20, 2)

	assert.Equal(t, firstKind, rec.Kind)
	assert.Equal(t, "first.c", rec.FileNameString())
}
