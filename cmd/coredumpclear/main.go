package main

import (
	"os"

	"github.com/dsoprea/go-logging"
	"github.com/jessevdk/go-flags"

	"github.com/endurodave/go-coredump"
)

type rootParameters struct {
	Filepath string `short:"f" long:"filepath" description:"File-path of a dump-record image to clear after export" required:"true"`
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

	raw, err := os.ReadFile(rootArguments.Filepath)
	log.PanicIf(err)

	rec, err := coredump.UnpackDumpRecord(raw)
	log.PanicIf(err)

	if !coredump.IsSaved(rec) {
		log.Panicf("record at (%s) is already clear -- nothing to do", rootArguments.Filepath)
	}

	coredump.Reset(rec)

	cleared, err := rec.Pack()
	log.PanicIf(err)

	err = os.WriteFile(rootArguments.Filepath, cleared, 0644)
	log.PanicIf(err)
}
