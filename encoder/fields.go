package encoder

import (
	"fmt"

	"github.com/wcaarls/puc16/isa"
)

func regField(r int, name string) (uint16, error) {
	if r < 0 || r > 15 {
		return 0, fmt.Errorf("register operand %s out of range: %d", name, r)
	}
	return uint16(r), nil
}

// imm4Field packs a 4-bit immediate for the three possible ShapeRRC kinds:
// signed load/store offset (-8..7), unsigned ALU immediate (0..15), or a
// shift amount+direction (sign of v selects direction).
func imm4Field(kind isa.Kind, v int) (uint16, error) {
	switch kind {
	case isa.KindImm4S:
		if v < -8 || v > 7 {
			return 0, fmt.Errorf("signed 4-bit offset out of range: %d", v)
		}
		return uint16(v) & 0xF, nil

	case isa.KindImm4U:
		if v < 0 || v > 15 {
			return 0, fmt.Errorf("unsigned 4-bit immediate out of range: %d", v)
		}
		return uint16(v), nil

	case isa.KindShift4:
		if v == 0 || v < -8 || v > 8 {
			return 0, fmt.Errorf("shift amount out of range: %d", v)
		}
		if v < 0 {
			amount := uint16(-v - 1)
			return 0x8 | amount, nil
		}
		amount := uint16(v - 1)
		return amount, nil

	default:
		return 0, fmt.Errorf("instruction has no 4-bit operand field")
	}
}

func imm8Field(v int) (uint16, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("8-bit immediate out of range: %d", v)
	}
	return uint16(v), nil
}

// rel8Field packs an already-computed PC-relative displacement (target -
// (here+1)) as a signed 8-bit value.
func rel8Field(disp int) (uint16, error) {
	if disp < -128 || disp > 127 {
		return 0, fmt.Errorf("branch displacement out of range (relocation overflow): %d", disp)
	}
	return uint16(disp) & 0xFF, nil
}

func abs12Field(addr int) (uint16, error) {
	if addr < 0 || addr > 0xFFF {
		return 0, fmt.Errorf("12-bit absolute address out of range (relocation overflow): %d", addr)
	}
	return uint16(addr) & 0xFFF, nil
}
