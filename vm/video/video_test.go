package video_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wcaarls/puc16/vm"
	"github.com/wcaarls/puc16/vm/video"
)

func TestPreloadSetsWhitePalette(t *testing.T) {
	mem := vm.NewMemory()
	video.Preload(mem)
	assert.Equal(t, uint16(0xFFFF), mem.Read(video.PRAM+1))
}

func TestPreloadWritesNonEmptyGlyph(t *testing.T) {
	mem := vm.NewMemory()
	video.Preload(mem)

	nonZero := false
	for line := 0; line < 8; line++ {
		if mem.Read(uint16(video.CRAM)+uint16('A')*8+uint16(line)) != 0 {
			nonZero = true
		}
	}
	assert.True(t, nonZero, "glyph 'A' should have at least one lit scanline")
}

func TestRenderProducesExpectedFrameSize(t *testing.T) {
	mem := vm.NewMemory()
	video.Preload(mem)
	img := video.Render(mem)
	assert.Equal(t, video.FrameWidth, img.Bounds().Dx())
	assert.Equal(t, video.FrameHeight, img.Bounds().Dy())
}

func TestRenderUsesPaletteColor(t *testing.T) {
	mem := vm.NewMemory()
	video.Preload(mem)

	// Tile 0 at (0,0), character 'A', palette 0; subpalette bit pattern 1
	// maps to PRAM[0*4+1], which Preload sets to white.
	mem.Write(video.VRAM, uint16('A'))
	img := video.Render(mem)

	litSomewhere := false
	for x := 0; x < 8; x++ {
		r, g, b, _ := img.At(x, 0).RGBA()
		if r != 0 || g != 0 || b != 0 {
			litSomewhere = true
		}
	}
	assert.True(t, litSomewhere, "glyph 'A' top scanline should light at least one pixel white")
}
