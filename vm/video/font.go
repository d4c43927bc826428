package video

// font8x8Basic is a built-in 128-glyph 8x8 bitmap font indexed by ASCII
// code, one byte per scanline (bit 0 = leftmost pixel). Spec section 4.5
// assumes a font is preloaded into character RAM at boot without
// specifying its bitmap; the original's font8x8_basic table wasn't among
// the retrieved sources, so this is a self-authored replacement covering
// digits, uppercase letters and common punctuation (lowercase letters
// share their uppercase glyph) rather than a verbatim reproduction.
var font8x8Basic = func() [128][8]byte {
	var f [128][8]byte

	set := func(ch rune, rows [8]byte) {
		f[ch] = rows
		if ch >= 'A' && ch <= 'Z' {
			f[ch-'A'+'a'] = rows
		}
	}

	set(' ', [8]byte{})
	set('0', [8]byte{0x3C, 0x66, 0x6E, 0x76, 0x66, 0x66, 0x3C, 0x00})
	set('1', [8]byte{0x18, 0x38, 0x18, 0x18, 0x18, 0x18, 0x3C, 0x00})
	set('2', [8]byte{0x3C, 0x66, 0x06, 0x0C, 0x30, 0x60, 0x7E, 0x00})
	set('3', [8]byte{0x3C, 0x66, 0x06, 0x1C, 0x06, 0x66, 0x3C, 0x00})
	set('4', [8]byte{0x0C, 0x1C, 0x3C, 0x6C, 0x7E, 0x0C, 0x0C, 0x00})
	set('5', [8]byte{0x7E, 0x60, 0x7C, 0x06, 0x06, 0x66, 0x3C, 0x00})
	set('6', [8]byte{0x3C, 0x66, 0x60, 0x7C, 0x66, 0x66, 0x3C, 0x00})
	set('7', [8]byte{0x7E, 0x06, 0x0C, 0x18, 0x30, 0x30, 0x30, 0x00})
	set('8', [8]byte{0x3C, 0x66, 0x66, 0x3C, 0x66, 0x66, 0x3C, 0x00})
	set('9', [8]byte{0x3C, 0x66, 0x66, 0x3E, 0x06, 0x66, 0x3C, 0x00})
	set('A', [8]byte{0x18, 0x3C, 0x66, 0x66, 0x7E, 0x66, 0x66, 0x00})
	set('B', [8]byte{0x7C, 0x66, 0x66, 0x7C, 0x66, 0x66, 0x7C, 0x00})
	set('C', [8]byte{0x3C, 0x66, 0x60, 0x60, 0x60, 0x66, 0x3C, 0x00})
	set('D', [8]byte{0x78, 0x6C, 0x66, 0x66, 0x66, 0x6C, 0x78, 0x00})
	set('E', [8]byte{0x7E, 0x60, 0x60, 0x7C, 0x60, 0x60, 0x7E, 0x00})
	set('F', [8]byte{0x7E, 0x60, 0x60, 0x7C, 0x60, 0x60, 0x60, 0x00})
	set('G', [8]byte{0x3C, 0x66, 0x60, 0x6E, 0x66, 0x66, 0x3C, 0x00})
	set('H', [8]byte{0x66, 0x66, 0x66, 0x7E, 0x66, 0x66, 0x66, 0x00})
	set('I', [8]byte{0x3C, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3C, 0x00})
	set('J', [8]byte{0x1E, 0x0C, 0x0C, 0x0C, 0x0C, 0x6C, 0x38, 0x00})
	set('K', [8]byte{0x66, 0x6C, 0x78, 0x70, 0x78, 0x6C, 0x66, 0x00})
	set('L', [8]byte{0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x7E, 0x00})
	set('M', [8]byte{0x63, 0x77, 0x7F, 0x6B, 0x63, 0x63, 0x63, 0x00})
	set('N', [8]byte{0x66, 0x76, 0x7E, 0x7E, 0x6E, 0x66, 0x66, 0x00})
	set('O', [8]byte{0x3C, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x00})
	set('P', [8]byte{0x7C, 0x66, 0x66, 0x7C, 0x60, 0x60, 0x60, 0x00})
	set('Q', [8]byte{0x3C, 0x66, 0x66, 0x66, 0x6A, 0x6C, 0x36, 0x00})
	set('R', [8]byte{0x7C, 0x66, 0x66, 0x7C, 0x78, 0x6C, 0x66, 0x00})
	set('S', [8]byte{0x3C, 0x66, 0x60, 0x3C, 0x06, 0x66, 0x3C, 0x00})
	set('T', [8]byte{0x7E, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00})
	set('U', [8]byte{0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x00})
	set('V', [8]byte{0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x18, 0x00})
	set('W', [8]byte{0x63, 0x63, 0x63, 0x6B, 0x7F, 0x77, 0x63, 0x00})
	set('X', [8]byte{0x66, 0x66, 0x3C, 0x18, 0x3C, 0x66, 0x66, 0x00})
	set('Y', [8]byte{0x66, 0x66, 0x66, 0x3C, 0x18, 0x18, 0x18, 0x00})
	set('Z', [8]byte{0x7E, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x7E, 0x00})
	set('.', [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00})
	set(',', [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x30})
	set('!', [8]byte{0x18, 0x18, 0x18, 0x18, 0x18, 0x00, 0x18, 0x00})
	set('?', [8]byte{0x3C, 0x66, 0x0C, 0x18, 0x18, 0x00, 0x18, 0x00})
	set('-', [8]byte{0x00, 0x00, 0x00, 0x7E, 0x00, 0x00, 0x00, 0x00})
	set(':', [8]byte{0x00, 0x18, 0x18, 0x00, 0x18, 0x18, 0x00, 0x00})

	return f
}()
