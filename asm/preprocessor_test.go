package asm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcaarls/puc16/asm"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPreprocessorBasicLine(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "main.asm", `
.section code
loop: mov r0, 5 ; comment
      b @loop
`)
	p := asm.NewPreprocessor("")
	lines, err := p.Process(path)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "code", lines[0].Section)
	assert.Equal(t, 0, lines[0].SlotIndex)
	assert.Equal(t, "loop", lines[0].Label)
	assert.Equal(t, "mov r0, 5", lines[0].Text)

	assert.Equal(t, 1, lines[1].SlotIndex)
	assert.Empty(t, lines[1].Label)
}

func TestPreprocessorEquSubstitution(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "main.asm", `
.section code
.equ WIDTH 40
mov r0, WIDTH
`)
	p := asm.NewPreprocessor("")
	lines, err := p.Process(path)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "mov r0, 40", lines[0].Text)
}

func TestPreprocessorDataDirectives(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "main.asm", `
.section data
.dw 1, 2, "hi"
.ds 2
`)
	p := asm.NewPreprocessor("")
	lines, err := p.Process(path)
	require.NoError(t, err)
	require.Len(t, lines, 6) // 1, 2, 'h', 'i', then two .ds zeros
	assert.Equal(t, "1", lines[0].Text)
	assert.Equal(t, "2", lines[1].Text)
	assert.Equal(t, "104", lines[2].Text) // 'h'
	assert.Equal(t, "105", lines[3].Text) // 'i'
	assert.Equal(t, "0", lines[4].Text)
	assert.True(t, lines[4].IsData)
}

func TestPreprocessorInclude(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "consts.inc", ".equ ANSWER 42\n")
	path := writeTemp(t, dir, "main.asm", `
.include "consts.inc"
.section code
mov r0, ANSWER
`)
	p := asm.NewPreprocessor("")
	lines, err := p.Process(path)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "mov r0, 42", lines[0].Text)
}

func TestPreprocessorStandaloneLabelBindsToNextSlot(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "main.asm", `
.section code
target:
mov r0, 1
`)
	p := asm.NewPreprocessor("")
	lines, err := p.Process(path)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "target", lines[0].Label)
}

func TestPreprocessorUnknownDirectiveFails(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "main.asm", ".bogus\n")
	p := asm.NewPreprocessor("")
	_, err := p.Process(path)
	assert.Error(t, err)
}

func TestPreprocessorFSRootRejectsEscape(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "src")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeTemp(t, dir, "outside.inc", ".equ X 1\n")
	path := writeTemp(t, sub, "main.asm", `.include "../outside.inc"`+"\n")

	p := asm.NewPreprocessor(sub)
	_, err := p.Process(path)
	assert.Error(t, err)
}
