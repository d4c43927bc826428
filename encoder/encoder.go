// Package encoder turns resolved PUC16 operands into 16-bit machine words
// and back again. It is the only place that knows the physical bit layout
// of an instruction; both the assembler and the simulator's disassembler
// go through it, keeping encode and decode mechanically in sync.
package encoder

import (
	"github.com/wcaarls/puc16/isa"
)

// Operands carries the already-resolved values for one instruction. Which
// fields are meaningful depends on the instruction's isa.Shape: register
// indices are always 0..15, Imm holds whatever single immediate/relocated
// value the shape needs (signed or unsigned depending on isa.Kind).
type Operands struct {
	R1, R2, R3 int
	Imm        int
}

// Encode packs mnemonic+operands into a 16-bit instruction word. mnemonic
// must already have been disambiguated to a specific table entry by the
// caller (the assembler picks register-vs-immediate forms of add/sub by
// operand shape before calling Encode); Entry is passed explicitly rather
// than re-resolved by mnemonic alone.
func Encode(e isa.Entry, ops Operands) (uint16, error) {
	word := e.Opcode << 12

	switch e.Shape {
	case isa.ShapeRRR:
		r1, err := regField(ops.R1, "r1")
		if err != nil {
			return 0, NewEncodingError(err.Error())
		}
		r2, err := regField(ops.R2, "r2")
		if err != nil {
			return 0, NewEncodingError(err.Error())
		}
		r3, err := regField(ops.R3, "r3")
		if err != nil {
			return 0, NewEncodingError(err.Error())
		}
		word |= r1<<8 | r2<<4 | r3

	case isa.ShapeRRC:
		r1, err := regField(ops.R1, "r1")
		if err != nil {
			return 0, NewEncodingError(err.Error())
		}
		r2, err := regField(ops.R2, "r2")
		if err != nil {
			return 0, NewEncodingError(err.Error())
		}
		c4, err := imm4Field(e.OffsetKind, ops.Imm)
		if err != nil {
			return 0, NewEncodingError(err.Error())
		}
		word |= r1<<8 | r2<<4 | c4

	case isa.ShapeRC:
		r1, err := regField(ops.R1, "r1")
		if err != nil {
			return 0, NewEncodingError(err.Error())
		}
		c8, err := imm8Field(ops.Imm)
		if err != nil {
			return 0, NewEncodingError(err.Error())
		}
		word |= r1<<8 | c8

	case isa.ShapeMC:
		c8, err := rel8Field(ops.Imm)
		if err != nil {
			return 0, NewEncodingError(err.Error())
		}
		word |= e.MinorVal<<8 | c8

	case isa.ShapeC:
		c12, err := abs12Field(ops.Imm)
		if err != nil {
			return 0, NewEncodingError(err.Error())
		}
		word |= c12

	case isa.ShapeMR:
		r3, err := regField(ops.R3, "r3")
		if err != nil {
			return 0, NewEncodingError(err.Error())
		}
		word |= e.MinorVal<<4 | r3

	case isa.ShapeRM:
		r1, err := regField(ops.R1, "r1")
		if err != nil {
			return 0, NewEncodingError(err.Error())
		}
		word |= r1<<8 | e.MinorVal
	}

	return word, nil
}
