package cfront_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcaarls/puc16/cfront"
)

type stubCodegen struct {
	output string
	err    error
}

func (s stubCodegen) Generate(string) (string, error) {
	return s.output, s.err
}

func TestAdaptPrependsBootStub(t *testing.T) {
	out, err := cfront.Adapt(strings.NewReader("int main() { return 0; }"), stubCodegen{output: "main:\n  mov r0, 0\n"})
	require.NoError(t, err)

	assert.Contains(t, out, ".section io")
	assert.Contains(t, out, "add r12, r15, 2")
	assert.Contains(t, out, "push r12")
	assert.Contains(t, out, "jmp @main")
	assert.Contains(t, out, "loop: b @loop")
}

func TestAdaptDropsGlobalTypeAlignLines(t *testing.T) {
	generated := "global main\ntype main\nALIGN 4\nmain:\nmov r0, 1\n"
	out, err := cfront.Adapt(strings.NewReader(""), stubCodegen{output: generated})
	require.NoError(t, err)

	assert.NotContains(t, out, "global")
	assert.NotContains(t, out, "type main")
	assert.NotContains(t, out, "ALIGN")
	assert.Contains(t, out, "main: mov r0, 1")
}

func TestAdaptRewritesByteToDw(t *testing.T) {
	out, err := cfront.Adapt(strings.NewReader(""), stubCodegen{output: "msg:\n.byte 1,2,3\n"})
	require.NoError(t, err)
	assert.Contains(t, out, "msg: .dw 1,2,3")
}

func TestAdaptPrefixesSectionWithDot(t *testing.T) {
	out, err := cfront.Adapt(strings.NewReader(""), stubCodegen{output: "section data\nx:\n.byte 0\n"})
	require.NoError(t, err)
	assert.Contains(t, out, ".section data")
}

func TestAdaptCarriesMultiplePendingLabelsForward(t *testing.T) {
	out, err := cfront.Adapt(strings.NewReader(""), stubCodegen{output: "a:\nb:\nmov r0, 1\n"})
	require.NoError(t, err)
	assert.Contains(t, out, "a: \nb: mov r0, 1")
}

func TestAdaptPropagatesCodegenError(t *testing.T) {
	_, err := cfront.Adapt(strings.NewReader(""), stubCodegen{err: errors.New("backend crashed")})
	assert.ErrorContains(t, err, "backend crashed")
}
