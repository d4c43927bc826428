package encoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcaarls/puc16/encoder"
	"github.com/wcaarls/puc16/isa"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		e    isa.Entry
		ops  encoder.Operands
	}{
		{"mov", entryFor(t, "mov", isa.ShapeRC), encoder.Operands{R1: 0, Imm: 0x34}},
		{"movt", entryFor(t, "movt", isa.ShapeRC), encoder.Operands{R1: 0, Imm: 0x12}},
		{"add-reg", entryFor(t, "add", isa.ShapeRRR), encoder.Operands{R1: 2, R2: 0, R3: 1}},
		{"add-imm", entryFor(t, "add", isa.ShapeRRC), encoder.Operands{R1: 1, R2: 2, Imm: 5}},
		{"sub-reg", entryFor(t, "sub", isa.ShapeRRR), encoder.Operands{R1: 3, R2: 4, R3: 5}},
		{"shl-left", entryFor(t, "shl", isa.ShapeRRC), encoder.Operands{R1: 1, R2: 1, Imm: 3}},
		{"shl-right", entryFor(t, "shl", isa.ShapeRRC), encoder.Operands{R1: 1, R2: 1, Imm: -3}},
		{"ldr", entryFor(t, "ldr", isa.ShapeRRC), encoder.Operands{R1: 0, R2: 14, Imm: -2}},
		{"str", entryFor(t, "str", isa.ShapeRRC), encoder.Operands{R1: 0, R2: 14, Imm: 7}},
		{"push", entryFor(t, "push", isa.ShapeMR), encoder.Operands{R3: 5}},
		{"pop", entryFor(t, "pop", isa.ShapeRM), encoder.Operands{R1: 6}},
		{"jmp", entryFor(t, "jmp", isa.ShapeC), encoder.Operands{Imm: 4000}},
		{"bz", isa.LookupAll("bz")[0], encoder.Operands{Imm: -10}},
		{"and", entryFor(t, "and", isa.ShapeRRR), encoder.Operands{R1: 1, R2: 2, R3: 3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			word, err := encoder.Encode(c.e, c.ops)
			require.NoError(t, err)

			dec, err := encoder.Decode(word, 0, nil)
			require.NoError(t, err)

			assert.Equal(t, c.e.Mnemonic, dec.Entry.Mnemonic)
			assert.Equal(t, c.e.Opcode, dec.Entry.Opcode)
			assert.Equal(t, c.ops.R1, dec.Ops.R1)
			assert.Equal(t, c.ops.R2, dec.Ops.R2)
			assert.Equal(t, c.ops.R3, dec.Ops.R3)
			assert.Equal(t, c.ops.Imm, dec.Ops.Imm)
		})
	}
}

func TestEncodeRangeErrors(t *testing.T) {
	_, err := encoder.Encode(entryFor(t, "mov", isa.ShapeRC), encoder.Operands{R1: 0, Imm: 256})
	require.Error(t, err)

	_, err = encoder.Encode(entryFor(t, "ldr", isa.ShapeRRC), encoder.Operands{R1: 0, R2: 1, Imm: 8})
	require.Error(t, err)

	_, err = encoder.Encode(entryFor(t, "ldr", isa.ShapeRRC), encoder.Operands{R1: 0, R2: 1, Imm: -9})
	require.Error(t, err)

	_, err = encoder.Encode(entryFor(t, "jmp", isa.ShapeC), encoder.Operands{Imm: 4096})
	require.Error(t, err)

	_, err = encoder.Encode(isa.LookupAll("bz")[0], encoder.Operands{Imm: 200})
	require.Error(t, err)
}

func TestDecodeUnknownWord(t *testing.T) {
	// push/pop require an exact minor pattern; this word has opcode 6 but
	// the wrong minor bits and must be rejected, not silently accepted.
	_, err := encoder.Decode(0x6000, 0, nil)
	require.Error(t, err)
}

func TestDecodeLabelAnnotation(t *testing.T) {
	e := isa.LookupAll("bz")[0]
	word, err := encoder.Encode(e, encoder.Operands{Imm: 5})
	require.NoError(t, err)

	labels := map[uint16]string{20: "loop"}
	dec, err := encoder.Decode(word, 14, labels)
	require.NoError(t, err)
	assert.Equal(t, "@loop", dec.Operand)
}

func entryFor(t *testing.T, mnemonic string, shape isa.Shape) isa.Entry {
	t.Helper()
	for _, e := range isa.LookupAll(mnemonic) {
		if e.Shape == shape {
			return e
		}
	}
	t.Fatalf("no %s entry with shape %v", mnemonic, shape)
	return isa.Entry{}
}
