package asm

import (
	"fmt"
	"strconv"

	"github.com/wcaarls/puc16/encoder"
	"github.com/wcaarls/puc16/isa"
)

// DefaultOrigins is the section layout spec section 4.2 assigns when a
// configuration doesn't override it.
var DefaultOrigins = map[string]uint16{"io": 0, "code": 16, "data": 4096}

// Assemble runs both passes described in spec section 4.4 over a
// preprocessed line stream: it builds the symbol table, then resolves every
// instruction's operands and relocations and encodes them, producing the
// section-indexed Image the loader and emitters consume.
func Assemble(lines []Line, origins map[string]uint16) (*Image, error) {
	syms, symErrs := NewSymbolTable(lines, origins)
	if symErrs != nil {
		return nil, symErrs
	}

	var errs ErrorList
	bySection := map[string][]Slot{}

	for _, l := range lines {
		origin := origins[l.Section]
		addr := origin + uint16(l.SlotIndex)

		var word uint16
		if l.IsData {
			v, err := strconv.Atoi(l.Text)
			if err != nil {
				errs.AddError(NewError(l.Pos, ErrorSyntax, fmt.Sprintf("malformed data word %q", l.Text)))
				continue
			}
			word = uint16(v) & 0xFFFF
		} else {
			w, err := assembleInstruction(l.Text, addr, syms)
			if err != nil {
				if ae, ok := err.(*Error); ok {
					errs.AddError(ae)
				} else {
					errs.AddError(NewErrorWithContext(l.Pos, ErrorOperandRange, err.Error(), l.Text))
				}
				continue
			}
			word = w
		}

		fillGap(bySection, l.Section, origin, addr)

		label := l.Label
		bySection[l.Section] = append(bySection[l.Section], Slot{
			Addr:  addr,
			Word:  word,
			Label: label,
			Text:  l.Text,
			Pos:   l.Pos,
		})
	}

	if errs.HasErrors() {
		return nil, &errs
	}

	img := &Image{Symbols: syms}
	for _, name := range []string{"io", "code", "data"} {
		img.Sections = append(img.Sections, Section{
			Name:   name,
			Origin: origins[name],
			Slots:  bySection[name],
		})
	}
	return img, nil
}

// fillGap inserts zero-filled, empty-text slots for any address a ".org"
// directive skipped over within a section, so each section's slot slice is
// dense from the section's origin up to addr — matching spec section
// 4.4's "gaps from .org are zero-filled slots with empty source text" and
// letting the loader and VHDL/listing emitters index by plain position.
func fillGap(bySection map[string][]Slot, section string, origin, addr uint16) {
	slots := bySection[section]
	next := origin
	if len(slots) > 0 {
		next = slots[len(slots)-1].Addr + 1
	}
	for a := next; a < addr; a++ {
		slots = append(slots, Slot{Addr: a})
	}
	bySection[section] = slots
}

// assembleInstruction resolves and encodes a single instruction line at the
// given absolute address.
func assembleInstruction(text string, addr uint16, syms *SymbolTable) (uint16, error) {
	mnemonic, rest := splitFirst(text)
	entries := isa.LookupAll(mnemonic)
	if len(entries) == 0 {
		return 0, fmt.Errorf("unknown mnemonic %q", mnemonic)
	}
	raw := splitOperands(rest)

	entry, err := selectEntry(mnemonic, entries, raw)
	if err != nil {
		return 0, err
	}

	ops, err := resolveOperands(entry, raw, addr, syms)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", mnemonic, err)
	}

	return encoder.Encode(entry, ops)
}

// selectEntry disambiguates "add"/"sub", which have both a register and an
// immediate table entry: the third operand's kind picks the form (spec
// section 4.1's opcode-bit-3 rule, applied here at encode time rather than
// decode time).
func selectEntry(mnemonic string, entries []isa.Entry, raw []string) (isa.Entry, error) {
	if len(entries) == 1 {
		return entries[0], nil
	}
	if len(raw) != 3 {
		return isa.Entry{}, fmt.Errorf("%s requires 3 operands, got %d", mnemonic, len(raw))
	}
	if isa.RegisterByName(raw[2]) >= 0 {
		return entries[0], nil // register form
	}
	return entries[1], nil // immediate form
}

func resolveOperands(entry isa.Entry, raw []string, addr uint16, syms *SymbolTable) (encoder.Operands, error) {
	switch entry.Shape {
	case isa.ShapeRRR:
		if len(raw) != 3 {
			return encoder.Operands{}, fmt.Errorf("expected 3 register operands, got %d", len(raw))
		}
		r1, err := resolveRegister(raw[0])
		if err != nil {
			return encoder.Operands{}, err
		}
		r2, err := resolveRegister(raw[1])
		if err != nil {
			return encoder.Operands{}, err
		}
		r3, err := resolveRegister(raw[2])
		if err != nil {
			return encoder.Operands{}, err
		}
		return encoder.Operands{R1: r1, R2: r2, R3: r3}, nil

	case isa.ShapeRRC:
		if len(entry.Operands) == 3 && entry.Operands[1] == isa.KindA {
			return resolveMemoryOperands(entry, raw)
		}
		if len(raw) != 3 {
			return encoder.Operands{}, fmt.Errorf("expected 3 operands, got %d", len(raw))
		}
		r1, err := resolveRegister(raw[0])
		if err != nil {
			return encoder.Operands{}, err
		}
		r2, err := resolveRegister(raw[1])
		if err != nil {
			return encoder.Operands{}, err
		}
		imm, err := ParseNumber(raw[2])
		if err != nil {
			return encoder.Operands{}, fmt.Errorf("operand 3: %w", err)
		}
		return encoder.Operands{R1: r1, R2: r2, Imm: imm}, nil

	case isa.ShapeRC: // mov, movt
		if len(raw) != 2 {
			return encoder.Operands{}, fmt.Errorf("expected 2 operands, got %d", len(raw))
		}
		r1, err := resolveRegister(raw[0])
		if err != nil {
			return encoder.Operands{}, err
		}
		imm, err := resolveImm8Operand(raw[1], entry.Reloc, syms)
		if err != nil {
			return encoder.Operands{}, err
		}
		return encoder.Operands{R1: r1, Imm: imm}, nil

	case isa.ShapeMC: // conditional/unconditional branch
		if len(raw) != 1 {
			return encoder.Operands{}, fmt.Errorf("expected 1 operand, got %d", len(raw))
		}
		target, err := resolveCodeAddress(raw[0], syms)
		if err != nil {
			return encoder.Operands{}, err
		}
		disp := int(target) - int(addr) - 1
		return encoder.Operands{Imm: disp}, nil

	case isa.ShapeC: // jmp
		if len(raw) != 1 {
			return encoder.Operands{}, fmt.Errorf("expected 1 operand, got %d", len(raw))
		}
		target, err := resolveCodeAddress(raw[0], syms)
		if err != nil {
			return encoder.Operands{}, err
		}
		return encoder.Operands{Imm: int(target)}, nil

	case isa.ShapeMR: // push
		if len(raw) != 1 {
			return encoder.Operands{}, fmt.Errorf("expected 1 operand, got %d", len(raw))
		}
		r3, err := resolveRegister(raw[0])
		if err != nil {
			return encoder.Operands{}, err
		}
		return encoder.Operands{R3: r3}, nil

	case isa.ShapeRM: // pop
		if len(raw) != 1 {
			return encoder.Operands{}, fmt.Errorf("expected 1 operand, got %d", len(raw))
		}
		r1, err := resolveRegister(raw[0])
		if err != nil {
			return encoder.Operands{}, err
		}
		return encoder.Operands{R1: r1}, nil

	default:
		return encoder.Operands{}, fmt.Errorf("unhandled operand shape for %q", entry.Mnemonic)
	}
}

// resolveMemoryOperands handles ldr/str, whose operand list is a register
// plus a "[base, offset]" addressing token rather than one kind per slot.
func resolveMemoryOperands(entry isa.Entry, raw []string) (encoder.Operands, error) {
	if len(raw) != 2 {
		return encoder.Operands{}, fmt.Errorf("expected 2 operands, got %d", len(raw))
	}
	r1, err := resolveRegister(raw[0])
	if err != nil {
		return encoder.Operands{}, err
	}
	base, offsetText, ok := parseAddressOperand(raw[1])
	if !ok {
		return encoder.Operands{}, fmt.Errorf("expected [reg] or [reg, offset] addressing, got %q", raw[1])
	}
	r2, err := resolveRegister(base)
	if err != nil {
		return encoder.Operands{}, err
	}
	offset, err := ParseNumber(offsetText)
	if err != nil {
		return encoder.Operands{}, fmt.Errorf("offset: %w", err)
	}
	return encoder.Operands{R1: r1, R2: r2, Imm: offset}, nil
}

func resolveRegister(token string) (int, error) {
	r := isa.RegisterByName(token)
	if r < 0 {
		return 0, fmt.Errorf("not a register: %q", token)
	}
	return r, nil
}

// resolveImm8Operand resolves mov/movt's second operand: a literal 0..255
// value, or a low(@L)/high(@L) reference resolved via the entry's declared
// relocation kind.
func resolveImm8Operand(token string, reloc isa.Reloc, syms *SymbolTable) (int, error) {
	if form, name := parseLabelRef(token); form != labelRefNone {
		addr, ok := syms.Lookup(name)
		if !ok {
			return 0, fmt.Errorf("undefined label %q", name)
		}
		switch {
		case form == labelRefLow && reloc == isa.RelAbs8DataLow:
			return int(addr) & 0xFF, nil
		case form == labelRefHigh && reloc == isa.RelAbs8DataHigh:
			return int(addr>>8) & 0xFF, nil
		default:
			return 0, fmt.Errorf("%q is not a valid operand for this instruction", token)
		}
	}
	return ParseNumber(token)
}

// resolveCodeAddress resolves a branch/jmp target: a "@label" reference or
// a bare numeric address.
func resolveCodeAddress(token string, syms *SymbolTable) (uint16, error) {
	if form, name := parseLabelRef(token); form == labelRefDirect {
		addr, ok := syms.Lookup(name)
		if !ok {
			return 0, fmt.Errorf("undefined label %q", name)
		}
		return addr, nil
	}
	v, err := ParseNumber(token)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
