package emit

import (
	"fmt"
	"io"

	"github.com/wcaarls/puc16/asm"
)

// VHDLSize is the word count of the synthesizable ROM array, matching the
// original's fixed `array(0 to 8191)` declaration.
const VHDLSize = 8192

// VHDL writes img as a synthesizable ROM array. If pkgName is non-empty the
// array is wrapped in a named VHDL package (the form written to a file);
// an empty pkgName produces the bare "signal ram : ram_t" form the original
// writes when emitting to standard output.
func VHDL(img *asm.Image, w io.Writer, pkgName string) {
	if pkgName != "" {
		fmt.Fprintf(w, "library ieee;\nuse ieee.std_logic_1164.all;\n\npackage %s is\n", pkgName)
		fmt.Fprintf(w, "  type %s_t is array(0 to %d) of std_logic_vector(15 downto 0);\n\n", pkgName, VHDLSize-1)
		fmt.Fprintf(w, "  constant %s_init: %s_t := (\n", pkgName, pkgName)
	} else {
		fmt.Fprint(w, "  signal ram: ram_t := (\n")
	}

	for _, section := range img.Sections {
		emitArray(section, w)
	}
	fmt.Fprintln(w, "  others => (others => '0'));")

	if pkgName != "" {
		fmt.Fprintf(w, "end package %s;\n", pkgName)
	}
}

func emitArray(section asm.Section, w io.Writer) {
	for _, slot := range section.Slots {
		if slot.Word == 0 && slot.Text == "" {
			continue
		}
		fmt.Fprintf(w, "    %d => \"%016b\", -- %s\n", slot.Addr, slot.Word, slot.Text)
	}
}
