package isa

// Decode finds the unique table entry matching a fetched 16-bit word,
// using the opcode nibble plus (where an opcode is shared by several
// entries, e.g. the branch family) the instruction's minor field. Ties
// are broken by the longest minor match, per the decoder contract in
// spec section 4.1; in this table no opcode ever has two candidates
// whose minors differ in width, so matching reduces to "does the minor
// field equal the candidate's MinorVal".
func Decode(word uint16) (Entry, bool) {
	opcode := (word >> 12) & 0xF

	var best Entry
	found := false
	for _, e := range Table {
		if e.Opcode != opcode {
			continue
		}
		if minorMatches(e, word) {
			best = e
			found = true
			break
		}
	}
	return best, found
}

func minorMatches(e Entry, word uint16) bool {
	switch e.Shape {
	case ShapeMC:
		minor := (word >> 8) & 0xF
		return minor == e.MinorVal
	case ShapeMR:
		minor := (word >> 4) & 0xFF
		return minor == e.MinorVal
	case ShapeRM:
		minor := word & 0xFF
		return minor == e.MinorVal
	default:
		return true
	}
}
