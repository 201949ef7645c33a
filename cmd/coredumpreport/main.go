package main

import (
	"os"

	"github.com/dsoprea/go-logging"
	"github.com/jessevdk/go-flags"

	"github.com/endurodave/go-coredump"
	"github.com/endurodave/go-coredump/export"
)

type rootParameters struct {
	Filepath string `short:"f" long:"filepath" description:"File-path of an exported dump-record image" required:"true"`
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
		log.Panicf("record at (%s) is not valid -- nothing was ever captured here", rootArguments.Filepath)
	}

	view := coredump.Get(rec)

	err = export.WriteReport(os.Stdout, view, nil)
	log.PanicIf(err)
}
