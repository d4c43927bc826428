// Package video implements PUC16's optional tile-based display: a tile map
// (VRAM), per-tile 8x8 pixel lines keyed by character index (CRAM), and a
// 4-subpalette-entries-per-palette color table (PRAM), rendered into a
// 640x480 RGBA frame. Grounded on the original's Screen.draw, which does
// the same index math with numpy; this package does it with plain loops
// since there's no Go-native numpy equivalent in the retrieved pack.
package video

import (
	"image"
	"image/color"

	"github.com/wcaarls/puc16/vm"
)

// Memory layout (spec section 4.5 "Video (optional)"): a 80x60 tile map,
// 8 lines per character in character RAM, 256 palettes of 4 colors each.
const (
	VRAM        = 8 * 1024
	CRAM        = 13 * 1024
	PRAM        = 15 * 1024
	ControlReg  = 15
	TilesWide   = 80
	TilesHigh   = 60
	FrameWidth  = 640
	FrameHeight = 480
)

// Preload writes the built-in font into character RAM and sets palette
// slot 0 subindex 1 to white, exactly as the original's State.__init__
// does unconditionally (not just when a screen is attached) — spec section
// 4.5: "a built-in 128x8 font is loaded... and palette slot 0/1 is pre-set
// to white".
func Preload(mem *vm.Memory) {
	for char := 0; char < 128; char++ {
		for line := 0; line < 8; line++ {
			row := font8x8Basic[char][line]
			var packed uint16
			for pix := 0; pix < 8; pix++ {
				p := uint16(row>>uint(pix)) & 1
				packed |= p << uint(2*pix)
			}
			mem.Write(uint16(CRAM+char*8+line), packed)
		}
	}
	mem.Write(uint16(PRAM+1), 0xFFFF)
}

// Render paints one 640x480 frame from the current VRAM/CRAM/PRAM contents.
// ControlReg bit 0 selects "line doubling" mode, which halves the
// vertical tile resolution (used by 30-line text modes).
func Render(mem *vm.Memory) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight))
	doubled := mem.Read(ControlReg)&1 == 1

	for y := 0; y < FrameHeight; y++ {
		var tileRow, subRow int
		if doubled {
			tileRow = y / 16
			subRow = (y - tileRow*16) / 2
		} else {
			tileRow = y / 8
			subRow = y - tileRow*8
		}
		for x := 0; x < FrameWidth; x++ {
			tileCol := x / 8
			subCol := x - tileCol*8

			tile := mem.Read(uint16(VRAM + tileRow*TilesWide + tileCol))
			index := tile & 0xFF
			palette := (tile >> 8) & 0xFF

			line := mem.Read(uint16(CRAM) + index*8 + uint16(subRow))
			subpalette := (line >> uint(2*subCol)) & 3
			c := mem.Read(uint16(PRAM) + palette*4 + subpalette)

			img.Set(x, y, color.RGBA{
				R: uint8((c & 0x1F) << 3),
				G: uint8(((c >> 5) & 0x3F) << 2),
				B: uint8(((c >> 11) & 0x1F) << 3),
				A: 0xFF,
			})
		}
	}
	return img
}
