package coredump

// globalRecord is the single process-wide dump record (spec.md section 3,
// "Lifecycle"): created at program load, never destroyed during device
// lifetime, mutated exactly twice per fault cycle by Capture and Reset.
// Ownership is process-wide and singular by construction -- this package
// never hands out a second *DumpRecord backed by the same storage.
//
// Its backing storage differs between a real embedded build and a host
// build: newRecordStorage is implemented once per build tag (see
// region_tinygo.go and region_host.go).
var globalRecord = newRecordStorage()

// GlobalCapturer is the production entry point a fault-dispatch
// collaborator (spec.md section 6) should hold a reference to. It is
// preconfigured with DefaultProfile and the address-range scan strategy;
// a target package should replace Strategy, Memory, Registers, and
// StackPointer with its own implementations before the first possible
// fault.
var GlobalCapturer = NewCapturer(DefaultProfile(), globalRecord, targetMemoryView{})

// GlobalRecord returns the process-wide record for use with IsSaved, Get,
// and Reset from the post-reboot path.
func GlobalRecord() *DumpRecord {
	return globalRecord
}
