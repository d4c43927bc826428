package vm

// MemSize is the flat address space size. Spec's Open Question on sizing is
// resolved in favor of the video-capable variant unconditionally (DESIGN.md),
// so every program shares the same 16384-word map whether or not it drives
// the video device.
const MemSize = 16384

// CodeStart and StackStart are the PC and SP reset values (spec section
// 4.5): code is assembled to start at address 16, and the stack grows down
// from the top of the 8K addressable by a 13-bit stack pointer convention.
const (
	CodeStart  uint16 = 16
	StackStart uint16 = 8191
)

// Memory is PUC16's single flat word array, unlike the teacher's segmented
// MemorySegment model (vm/memory.go) — PUC16 has no page permissions or
// multiple backing segments, just one address space the assembler's three
// sections are loaded into at their origins.
type Memory struct {
	Words [MemSize]uint16
}

// NewMemory returns a zeroed memory image.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the word at addr, wrapping per spec section 4.5's "mod
// MEMSIZE" addressing rule.
func (m *Memory) Read(addr uint16) uint16 {
	return m.Words[int(addr)%MemSize]
}

// Write stores v at addr, wrapping per the same rule.
func (m *Memory) Write(addr uint16, v uint16) {
	m.Words[int(addr)%MemSize] = v
}
