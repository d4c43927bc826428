// Package isa describes the PUC16 instruction set: the mnemonic, opcode,
// operand shape and relocation kind of every instruction. It is pure data —
// no I/O, no parsing — consumed both by the encoder (to emit words) and by
// the simulator's disassembler (to decode them). Keeping this table as the
// single source of truth is what keeps the assembler and simulator in sync.
package isa

import "strconv"

// Kind is the closed set of operand kinds an instruction field can hold.
type Kind int

const (
	KindNone   Kind = iota
	KindR           // plain register operand
	KindA           // register used as an address base, printed in brackets
	KindImm4S       // signed 4-bit immediate, range -8..7 (load/store offset)
	KindImm4U       // unsigned 4-bit immediate, range 0..15 (ALU immediate)
	KindShift4      // 4-bit shift amount: sign of the Go value selects direction
	KindImm8        // unsigned 8-bit immediate (mov/movt)
	KindRel8        // signed 8-bit PC-relative branch displacement
	KindAbs12       // unsigned 12-bit absolute code address (jmp)
)

// Reloc identifies how a label reference is substituted into an encoded
// instruction by the assembler's second pass.
type Reloc int

const (
	RelNone Reloc = iota
	RelRel8Branch
	RelAbs12Branch
	RelAbs8DataLow  // low(@L): target & 0xFF
	RelAbs8DataHigh // high(@L): (target >> 8) & 0xFF
)

// Shape names the bit layout family an instruction belongs to, mirroring
// the original assembler's make_rrr/make_rrc/make_rc/make_mc/make_c/
// make_mr/make_rm instruction builders.
type Shape int

const (
	ShapeRRR Shape = iota // opcode | r1 | r2 | r3
	ShapeRRC              // opcode | r1 | r2 | c4 (signed or unsigned, see OffsetKind)
	ShapeRC               // opcode | r1 | c8
	ShapeMC               // opcode | minor(r1 field) | c8   (conditional branches)
	ShapeC                // opcode | c12                     (jmp)
	ShapeMR               // opcode | minor(c8l field) | r3   (push)
	ShapeRM               // opcode | r1 | minor(c8 field)    (pop)
)

// Entry is one row of the instruction table.
type Entry struct {
	Mnemonic   string
	Opcode     uint16 // 4-bit opcode nibble, bits[15:12]
	Shape      Shape
	MinorVal   uint16 // ShapeMC: branch subtype (4 bits); ShapeMR/ShapeRM: fixed minor pattern
	OffsetKind Kind   // only meaningful for ShapeRRC: KindImm4S, KindImm4U or KindShift4
	Operands   []Kind // operand kinds in source order, for printing/parsing
	Reloc      Reloc
}

// Table is the full PUC16 instruction inventory (spec section 4.1).
var Table = []Entry{
	{Mnemonic: "mov", Opcode: 0, Shape: ShapeRC, Operands: []Kind{KindR, KindImm8}, Reloc: RelAbs8DataLow},
	{Mnemonic: "movt", Opcode: 1, Shape: ShapeRC, Operands: []Kind{KindR, KindImm8}, Reloc: RelAbs8DataHigh},

	{Mnemonic: "b", Opcode: 2, Shape: ShapeMC, MinorVal: 0, Operands: []Kind{KindRel8}, Reloc: RelRel8Branch},
	{Mnemonic: "bz", Opcode: 2, Shape: ShapeMC, MinorVal: 1, Operands: []Kind{KindRel8}, Reloc: RelRel8Branch},
	{Mnemonic: "bnz", Opcode: 2, Shape: ShapeMC, MinorVal: 2, Operands: []Kind{KindRel8}, Reloc: RelRel8Branch},
	{Mnemonic: "bcs", Opcode: 2, Shape: ShapeMC, MinorVal: 3, Operands: []Kind{KindRel8}, Reloc: RelRel8Branch},
	{Mnemonic: "bcc", Opcode: 2, Shape: ShapeMC, MinorVal: 4, Operands: []Kind{KindRel8}, Reloc: RelRel8Branch},
	{Mnemonic: "blt", Opcode: 2, Shape: ShapeMC, MinorVal: 5, Operands: []Kind{KindRel8}, Reloc: RelRel8Branch},
	{Mnemonic: "bge", Opcode: 2, Shape: ShapeMC, MinorVal: 6, Operands: []Kind{KindRel8}, Reloc: RelRel8Branch},

	{Mnemonic: "jmp", Opcode: 3, Shape: ShapeC, Operands: []Kind{KindAbs12}, Reloc: RelAbs12Branch},

	{Mnemonic: "ldr", Opcode: 4, Shape: ShapeRRC, OffsetKind: KindImm4S, Operands: []Kind{KindR, KindA, KindImm4S}},
	{Mnemonic: "str", Opcode: 5, Shape: ShapeRRC, OffsetKind: KindImm4S, Operands: []Kind{KindR, KindA, KindImm4S}},

	{Mnemonic: "push", Opcode: 6, Shape: ShapeMR, MinorVal: 0b00001110, Operands: []Kind{KindR}},
	{Mnemonic: "pop", Opcode: 7, Shape: ShapeRM, MinorVal: 0b11100000, Operands: []Kind{KindR}},

	{Mnemonic: "add", Opcode: 8, Shape: ShapeRRR, Operands: []Kind{KindR, KindR, KindR}},
	{Mnemonic: "add", Opcode: 9, Shape: ShapeRRC, OffsetKind: KindImm4U, Operands: []Kind{KindR, KindR, KindImm4U}},
	{Mnemonic: "sub", Opcode: 10, Shape: ShapeRRR, Operands: []Kind{KindR, KindR, KindR}},
	{Mnemonic: "sub", Opcode: 11, Shape: ShapeRRC, OffsetKind: KindImm4U, Operands: []Kind{KindR, KindR, KindImm4U}},
	{Mnemonic: "shl", Opcode: 12, Shape: ShapeRRC, OffsetKind: KindShift4, Operands: []Kind{KindR, KindR, KindShift4}},
	{Mnemonic: "and", Opcode: 13, Shape: ShapeRRR, Operands: []Kind{KindR, KindR, KindR}},
	{Mnemonic: "or", Opcode: 14, Shape: ShapeRRR, Operands: []Kind{KindR, KindR, KindR}},
	{Mnemonic: "xor", Opcode: 15, Shape: ShapeRRR, Operands: []Kind{KindR, KindR, KindR}},
}

// byMnemonic indexes Table by mnemonic for Lookup. "add" and "sub" have two
// entries (register and immediate form); the assembler picks between them by
// operand count/kind, so Lookup returns the first and LookupAll returns both.
var byMnemonic = func() map[string][]Entry {
	m := make(map[string][]Entry, len(Table))
	for _, e := range Table {
		m[e.Mnemonic] = append(m[e.Mnemonic], e)
	}
	return m
}()

// Lookup returns the first table entry for mnemonic.
func Lookup(mnemonic string) (Entry, bool) {
	entries, ok := byMnemonic[mnemonic]
	if !ok || len(entries) == 0 {
		return Entry{}, false
	}
	return entries[0], true
}

// LookupAll returns every table entry sharing mnemonic (register and
// immediate forms of add/sub).
func LookupAll(mnemonic string) []Entry {
	return byMnemonic[mnemonic]
}

// registerNames holds the PUC16 register aliases: r0..r12, then fp, sp, pc.
var registerNames = func() [16]string {
	var names [16]string
	for i := 0; i < 13; i++ {
		names[i] = "r" + strconv.Itoa(i)
	}
	names[13] = "fp"
	names[14] = "sp"
	names[15] = "pc"
	return names
}()

// RegisterName returns the canonical printed name for register index n
// (0..15). Out-of-range indices return an empty string.
func RegisterName(n int) string {
	if n < 0 || n > 15 {
		return ""
	}
	return registerNames[n]
}

// RegisterByName resolves a register name ("r0".."r12", "fp", "sp", "pc")
// back to its index, or -1 if unrecognized.
func RegisterByName(name string) int {
	for i, n := range registerNames {
		if n == name {
			return i
		}
	}
	return -1
}

