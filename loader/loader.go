// Package loader bridges the assembler's output to the simulator: it
// copies an assembled Image's sections into a fresh machine State at their
// origins and preloads the video device, mirroring the teacher's
// LoadProgramIntoVM (loader/loader.go) but built against asm.Image and
// vm.State instead of the ARM parser/VM pair.
package loader

import (
	"github.com/wcaarls/puc16/asm"
	"github.com/wcaarls/puc16/vm"
	"github.com/wcaarls/puc16/vm/video"
)

// Load builds a fresh State, writes every section's words at its origin,
// and preloads the font/palette into character and palette RAM — done
// unconditionally, matching the original's State.__init__, since spec
// section 9 resolves the memory-sizing Open Question in favor of the
// video-capable layout for every program.
func Load(img *asm.Image, io vm.IO) *vm.State {
	s := vm.NewState(io)
	for _, section := range img.Sections {
		for _, slot := range section.Slots {
			s.Mem.Write(slot.Addr, slot.Word)
		}
	}
	video.Preload(s.Mem)
	return s
}
