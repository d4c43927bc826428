// Package emit formats an assembled asm.Image as either a reassemblable
// listing or a synthesizable VHDL ROM array, grounded on the original's
// emitter.py (emitasm/emitasmsection, emitvhdl/emitarray) and, for the
// general shape of a "walk a program, print formatted text" Go helper, the
// teacher's disassembly formatting in debugger/debugger.go.
package emit

import (
	"fmt"
	"io"

	"github.com/wcaarls/puc16/asm"
)

// Listing writes img back out as assembly: one ".section" header per
// section, an ".org" directive whenever a run of empty (gap-filled) slots
// was skipped, and the original source text of every non-empty slot.
func Listing(img *asm.Image, w io.Writer) {
	for _, section := range img.Sections {
		fmt.Fprintf(w, ".section %s\n", section.Name)
		emitSection(section, w)
	}
}

func emitSection(section asm.Section, w io.Writer) {
	skipped := false
	for _, slot := range section.Slots {
		if slot.Text == "" {
			skipped = true
			continue
		}
		if skipped {
			fmt.Fprintf(w, ".org %d\n", slot.Addr-section.Origin)
			skipped = false
		}
		if slot.Label != "" {
			fmt.Fprintf(w, "%s: %s\n", slot.Label, slot.Text)
		} else {
			fmt.Fprintln(w, slot.Text)
		}
	}
}
