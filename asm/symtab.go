package asm

import "fmt"

// SymbolTable maps a label to its absolute address, built once in pass 1
// and consulted by every operand resolution in pass 2.
type SymbolTable struct {
	addr map[string]uint16
}

// NewSymbolTable builds the global label -> absolute address map from the
// preprocessed line stream and the section origins, rejecting a label bound
// twice across any section (spec section 4.4, pass 1).
func NewSymbolTable(lines []Line, origins map[string]uint16) (*SymbolTable, *ErrorList) {
	st := &SymbolTable{addr: make(map[string]uint16)}
	var errs ErrorList

	bind := func(name string, pos Position, addr uint16) {
		if name == "" {
			return
		}
		if _, exists := st.addr[name]; exists {
			errs.AddError(NewError(pos, ErrorDuplicateLabel, fmt.Sprintf("label %q already defined", name)))
			return
		}
		st.addr[name] = addr
	}

	for _, l := range lines {
		origin, ok := origins[l.Section]
		if !ok {
			errs.AddError(NewError(l.Pos, ErrorSyntax, fmt.Sprintf("no origin configured for section %q", l.Section)))
			continue
		}
		addr := origin + uint16(l.SlotIndex)
		bind(l.Label, l.Pos, addr)
		for _, extra := range l.ExtraLabels {
			bind(extra, l.Pos, addr)
		}
	}

	if errs.HasErrors() {
		return st, &errs
	}
	return st, nil
}

// Lookup resolves a label to its absolute address.
func (st *SymbolTable) Lookup(name string) (uint16, bool) {
	addr, ok := st.addr[name]
	return addr, ok
}
