//go:build !tinygo

package coredump

// newRecordStorage backs the global record with a plain heap allocation.
// A development host has no linker-level non-initialized section to place
// it in, so unlike real cold RAM -- whose contents across a cold boot are
// unspecified -- this starts zeroed and therefore fails closed: IsValid
// reports false rather than aliasing a real capture. Tests that need to
// exercise the adversarial cold-boot patterns (spec.md section 8) build
// their own *DumpRecord and fill it directly instead of going through
// this singleton.
func newRecordStorage() *DumpRecord {
	return new(DumpRecord)
}

// targetMemoryView is unused on a host build; GlobalCapturer.Memory is
// expected to be replaced before use (see global.go), since a host has no
// single address space worth reading words out of by raw address.
type targetMemoryView struct{}

func (targetMemoryView) ReadWord(addr uint32) (uint32, bool) {
	return 0, false
}
