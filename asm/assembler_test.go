package asm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcaarls/puc16/asm"
)

func preprocess(t *testing.T, src string) []asm.Line {
	t.Helper()
	path := writeTemp(t, t.TempDir(), "main.asm", src)
	lines, err := asm.NewPreprocessor("").Process(path)
	require.NoError(t, err)
	return lines
}

func TestAssembleMovMovt16BitLoad(t *testing.T) {
	lines := preprocess(t, `
.section code
mov r0, 0x34
movt r0, 0x12
`)
	img, err := asm.Assemble(lines, asm.DefaultOrigins)
	require.NoError(t, err)

	code, ok := img.Section("code")
	require.True(t, ok)
	require.Len(t, code.Slots, 2)
	assert.Equal(t, uint16(0x0034), code.Slots[0].Word) // opcode 0, r0, imm8=0x34
	assert.Equal(t, uint16(0x1012), code.Slots[1].Word) // opcode 1, r0, imm8=0x12
}

func TestAssembleBranchToLabel(t *testing.T) {
	lines := preprocess(t, `
.section code
mov r0, 1
sub r1, r0, r0
bz @hit
mov r2, 9
hit: mov r2, 7
`)
	img, err := asm.Assemble(lines, asm.DefaultOrigins)
	require.NoError(t, err)
	code, _ := img.Section("code")
	require.Len(t, code.Slots, 5)

	addr, ok := img.Symbols.Lookup("hit")
	require.True(t, ok)
	assert.Equal(t, asm.DefaultOrigins["code"]+4, addr)

	bz := code.Slots[2].Word
	disp := int(int8(bz & 0xFF))
	assert.Equal(t, 1, disp) // target(slot4) - (slot2+1) == 1
}

func TestAssemblePushPop(t *testing.T) {
	lines := preprocess(t, `
.section code
push r5
pop r6
`)
	img, err := asm.Assemble(lines, asm.DefaultOrigins)
	require.NoError(t, err)
	code, _ := img.Section("code")
	assert.Equal(t, uint16(6<<12|0b00001110<<4|5), code.Slots[0].Word)
	assert.Equal(t, uint16(7<<12|6<<8|0b11100000), code.Slots[1].Word)
}

func TestAssembleLoadStoreAddressing(t *testing.T) {
	lines := preprocess(t, `
.section code
ldr r1, [r2, 4]
str r1, [r2]
`)
	img, err := asm.Assemble(lines, asm.DefaultOrigins)
	require.NoError(t, err)
	code, _ := img.Section("code")
	assert.Equal(t, uint16(4<<12|1<<8|2<<4|4), code.Slots[0].Word)
	assert.Equal(t, uint16(5<<12|1<<8|2<<4|0), code.Slots[1].Word)
}

func TestAssembleAddSubDisambiguation(t *testing.T) {
	lines := preprocess(t, `
.section code
add r0, r1, r2
add r0, r1, 5
sub r0, r1, r2
sub r0, r1, 5
`)
	img, err := asm.Assemble(lines, asm.DefaultOrigins)
	require.NoError(t, err)
	code, _ := img.Section("code")
	assert.Equal(t, uint16(8), code.Slots[0].Word>>12)
	assert.Equal(t, uint16(9), code.Slots[1].Word>>12)
	assert.Equal(t, uint16(10), code.Slots[2].Word>>12)
	assert.Equal(t, uint16(11), code.Slots[3].Word>>12)
}

func TestAssembleLowHighDataAddress(t *testing.T) {
	lines := preprocess(t, `
.section data
msg: .dw 65
.section code
mov r0, low(@msg)
movt r0, high(@msg)
`)
	img, err := asm.Assemble(lines, asm.DefaultOrigins)
	require.NoError(t, err)
	addr, ok := img.Symbols.Lookup("msg")
	require.True(t, ok)
	assert.Equal(t, asm.DefaultOrigins["data"], addr)

	code, _ := img.Section("code")
	assert.Equal(t, uint16(addr)&0xFF, code.Slots[0].Word&0xFF)
	assert.Equal(t, uint16(addr>>8)&0xFF, code.Slots[1].Word&0xFF)
}

func TestAssembleDuplicateLabelFails(t *testing.T) {
	lines := preprocess(t, `
.section code
loop: mov r0, 1
loop: mov r0, 2
`)
	_, err := asm.Assemble(lines, asm.DefaultOrigins)
	assert.Error(t, err)
}

func TestAssembleUndefinedLabelFails(t *testing.T) {
	lines := preprocess(t, `
.section code
bz @nowhere
`)
	_, err := asm.Assemble(lines, asm.DefaultOrigins)
	assert.Error(t, err)
}

func TestAssembleOperandRangeFails(t *testing.T) {
	lines := preprocess(t, `
.section code
mov r0, 256
`)
	_, err := asm.Assemble(lines, asm.DefaultOrigins)
	assert.Error(t, err)
}
