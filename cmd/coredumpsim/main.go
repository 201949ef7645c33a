// coredumpsim drives a synthetic fault through the capture orchestrator
// without any real hardware: it plants a handful of candidate return
// addresses and a stack-marker pair into an in-process memory image, then
// calls Capture exactly the way a fault handler would, and prints the
// resulting report. It exists for exercising the core on a development
// host, the way exfat_list_contents exercises the teacher's navigator
// against a fixture file instead of a real device.
package main

import (
	"os"

	"github.com/dsoprea/go-logging"
	"github.com/jessevdk/go-flags"

	"github.com/endurodave/go-coredump"
	"github.com/endurodave/go-coredump/export"
)

type rootParameters struct {
	File string `short:"n" long:"file" description:"Simulated source file name" default:"sim/fault.c"`
	Line uint32 `short:"l" long:"line" description:"Simulated source line number" default:"42"`
	Aux  uint32 `short:"a" long:"aux" description:"Simulated auxiliary code" default:"0"`
	Out  string `short:"o" long:"out" description:"Optional file-path to write the packed record image to"`
}

var rootArguments = new(rootParameters)

func main() {
	defer func() {
		if state := recover(); state != nil {
			err := log.Wrap(state.(error))
			log.PrintError(err)
			os.Exit(-1)
		}
	}()

	p := flags.NewParser(rootArguments, flags.Default)

	_, err := p.Parse()
	if err != nil {
		os.Exit(1)
	}

	profile := coredump.HostTestProfile()

	stackImage := make([]byte, 256)
	mem := coredump.NewSliceMemoryView(profile.RAMBegin, stackImage)

	// Plant three candidate return addresses interleaved with
	// non-code filler, then a marker pair to terminate the scan --
	// the same shape spec.md's scenario 4 describes.
	mem.WriteWord(profile.RAMBegin+4, profile.CodeBegin+0x100)
	mem.WriteWord(profile.RAMBegin+12, profile.CodeBegin+0x200)
	mem.WriteWord(profile.RAMBegin+28, profile.CodeBegin+0x300)
	mem.WriteWord(profile.RAMBegin+40, coredump.StackMarker)
	mem.WriteWord(profile.RAMBegin+44, coredump.StackMarker)

	rec := new(coredump.DumpRecord)
	capturer := coredump.NewCapturer(profile, rec, mem)

	capturer.Capture(profile.RAMBegin, rootArguments.File, rootArguments.Line, rootArguments.Aux)

	view := coredump.Get(rec)

	err = export.WriteReport(os.Stdout, view, nil)
	log.PanicIf(err)

	if rootArguments.Out != "" {
		raw, err := rec.Pack()
		log.PanicIf(err)

		err = os.WriteFile(rootArguments.Out, raw, 0644)
		log.PanicIf(err)
	}
}
