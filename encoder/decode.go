package encoder

import (
	"fmt"
	"strconv"

	"github.com/wcaarls/puc16/isa"
)

// Decoded is the result of decoding one instruction word: the resolved
// table entry, its packed operand values, and a human-readable rendering
// of the operands (register names, bracketed addressing, label names when
// a label map is supplied).
type Decoded struct {
	Entry   isa.Entry
	Ops     Operands
	Operand string // printable operand list, comma separated
}

// Decode decodes a fetched instruction word. pc is the address the word
// was fetched from (used to turn a branch's relative displacement into an
// absolute target for label lookup); labels, if non-nil, maps absolute
// code addresses to label names for @name annotation, mirroring the
// original disassembler's optional "map" argument.
func Decode(word uint16, pc uint16, labels map[uint16]string) (Decoded, error) {
	entry, ok := isa.Decode(word)
	if !ok {
		return Decoded{}, NewEncodingError(fmt.Sprintf("illegal instruction 0x%04X", word))
	}

	var ops Operands
	var operand string

	switch entry.Shape {
	case isa.ShapeRRR:
		ops.R1 = int((word >> 8) & 0xF)
		ops.R2 = int((word >> 4) & 0xF)
		ops.R3 = int(word & 0xF)
		operand = fmt.Sprintf("%s, %s, %s", isa.RegisterName(ops.R1), isa.RegisterName(ops.R2), isa.RegisterName(ops.R3))

	case isa.ShapeRRC:
		ops.R1 = int((word >> 8) & 0xF)
		ops.R2 = int((word >> 4) & 0xF)
		ops.Imm = decode4(entry.OffsetKind, word&0xF)
		if entry.Mnemonic == "ldr" || entry.Mnemonic == "str" {
			operand = fmt.Sprintf("%s, [%s, %d]", isa.RegisterName(ops.R1), isa.RegisterName(ops.R2), ops.Imm)
		} else {
			operand = fmt.Sprintf("%s, %s, %d", isa.RegisterName(ops.R1), isa.RegisterName(ops.R2), ops.Imm)
		}

	case isa.ShapeRC:
		ops.R1 = int((word >> 8) & 0xF)
		ops.Imm = int(word & 0xFF)
		operand = fmt.Sprintf("%s, %d", isa.RegisterName(ops.R1), ops.Imm)

	case isa.ShapeMC:
		disp := signExtend8(word & 0xFF)
		ops.Imm = disp
		target := uint16(int(pc) + 1 + disp)
		operand = "@" + addrLabel(target, labels)

	case isa.ShapeC:
		target := word & 0xFFF
		ops.Imm = int(target)
		operand = "@" + addrLabel(target, labels)

	case isa.ShapeMR:
		ops.R3 = int(word & 0xF)
		operand = isa.RegisterName(ops.R3)

	case isa.ShapeRM:
		ops.R1 = int((word >> 8) & 0xF)
		operand = isa.RegisterName(ops.R1)
	}

	return Decoded{Entry: entry, Ops: ops, Operand: operand}, nil
}

func decode4(kind isa.Kind, raw uint16) int {
	switch kind {
	case isa.KindImm4S:
		return signExtend4(raw)
	case isa.KindImm4U:
		return int(raw)
	case isa.KindShift4:
		amount := int(raw&0x7) + 1
		if raw > 7 {
			return -amount
		}
		return amount
	default:
		return int(raw)
	}
}

func signExtend4(raw uint16) int {
	v := int(raw)
	if v > 7 {
		v -= 16
	}
	return v
}

func signExtend8(raw uint16) int {
	v := int(raw)
	if v > 127 {
		v -= 256
	}
	return v
}

func addrLabel(addr uint16, labels map[uint16]string) string {
	if labels != nil {
		if name, ok := labels[addr]; ok {
			return name
		}
	}
	return strconv.Itoa(int(addr))
}
