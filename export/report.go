// Package export renders a captured coredump.DumpRecord as the text
// report spec.md section 6 describes: the textual shape is explicitly not
// normative, but the field set it must cover is, and this is this repo's
// one concrete renderer for it.
package export

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/ianlancetaylor/demangle"

	"github.com/endurodave/go-coredump"
)

// SymbolResolver optionally maps a backtrace address to a (possibly
// mangled) symbol name. It exists for host test builds where Strategy C
// (WalkHostRuntime) produces addresses the Go runtime itself can still
// symbolize; target builds have no symbol table at all and pass a nil
// resolver, in which case the report falls back to bare hex addresses --
// which is the only thing every target, regardless of strategy, can
// always produce.
type SymbolResolver func(addr uint32) (name string, ok bool)

// WriteReport writes the mandatory-field text report for view to w:
// fault kind, file name, line number, auxiliary code, software version,
// the register file when it was captured, and each backtrace entry
// labeled "Stack 0" .. "Stack N-1".
func WriteReport(w io.Writer, view coredump.DumpRecordView, resolve SymbolResolver) error {
	fmt.Fprintf(w, "Crash Dump Report\n")
	fmt.Fprintf(w, "==================\n\n")

	fmt.Fprintf(w, "Fault Kind: %s\n", view.FaultKind())
	fmt.Fprintf(w, "File: %s\n", view.FileName())
	fmt.Fprintf(w, "Line: %s\n", humanize.Comma(int64(view.LineNumber())))
	fmt.Fprintf(w, "Aux Code: 0x%08x\n", view.AuxCode())
	fmt.Fprintf(w, "Software Version: 0x%08x\n", view.SoftwareVersion())
	fmt.Fprintf(w, "\n")

	if view.RegistersCaptured() {
		regs := view.Registers()
		fmt.Fprintf(w, "Registers\n")
		fmt.Fprintf(w, "---------\n")
		fmt.Fprintf(w, "R0:  0x%08x   R1:  0x%08x   R2:  0x%08x   R3: 0x%08x\n", regs.R0, regs.R1, regs.R2, regs.R3)
		fmt.Fprintf(w, "R12: 0x%08x   LR:  0x%08x   PC:  0x%08x   PSR: 0x%08x\n", regs.R12, regs.LR, regs.PC, regs.PSR)

		fsr := view.FaultStatusRegisters()
		fmt.Fprintf(w, "CFSR: 0x%08x   HFSR: 0x%08x   MMFAR: 0x%08x   BFAR: 0x%08x\n", fsr.CFSR, fsr.HFSR, fsr.MMFAR, fsr.BFAR)
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "Backtrace\n")
	fmt.Fprintf(w, "---------\n")

	bt := view.ActiveBacktrace()
	for i, addr := range bt {
		if addr == 0 {
			break
		}

		line := fmt.Sprintf("Stack %d: 0x%08x", i, addr)

		if resolve != nil {
			if name, ok := resolve(addr); ok {
				line += " " + demangle.Filter(name)
			}
		}

		fmt.Fprintf(w, "%s\n", line)
	}

	return nil
}
