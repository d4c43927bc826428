package vm

import (
	"fmt"
	"strings"
)

// Diff reports what changed between s and other: registers r0..r12, sp,
// every differing memory cell, and the four flags. Supplemental from
// original_source (simulator.py's State.diff), used by the interactive
// monitor to show the effect of the last step without printing the whole
// machine state every time.
func (s *State) Diff(other *State) string {
	var parts []string

	for i := 0; i < 13; i++ {
		if s.CPU.R[i] != other.CPU.R[i] {
			parts = append(parts, fmt.Sprintf("r%d <- %d", i, other.CPU.R[i]))
		}
	}
	if s.CPU.R[SP] != other.CPU.R[SP] {
		parts = append(parts, fmt.Sprintf("sp <- %d", other.CPU.R[SP]))
	}

	for i := 0; i < MemSize; i++ {
		if s.Mem.Words[i] != other.Mem.Words[i] {
			parts = append(parts, fmt.Sprintf("[%d] <- %d", i, other.Mem.Words[i]))
		}
	}

	if s.CPU.Flags.Z != other.CPU.Flags.Z {
		parts = append(parts, fmt.Sprintf("zf <- %t", other.CPU.Flags.Z))
	}
	if s.CPU.Flags.C != other.CPU.Flags.C {
		parts = append(parts, fmt.Sprintf("cf <- %t", other.CPU.Flags.C))
	}
	if s.CPU.Flags.N != other.CPU.Flags.N {
		parts = append(parts, fmt.Sprintf("nf <- %t", other.CPU.Flags.N))
	}
	if s.CPU.Flags.V != other.CPU.Flags.V {
		parts = append(parts, fmt.Sprintf("vf <- %t", other.CPU.Flags.V))
	}

	return strings.Join(parts, ", ")
}

// String renders the full machine state on one line, grounded on the
// original's State.__str__.
func (s *State) String() string {
	var sb strings.Builder
	for i := 0; i < 13; i++ {
		fmt.Fprintf(&sb, "r%d = %d, ", i, s.CPU.R[i])
	}
	fmt.Fprintf(&sb, "pc = %d, sp = %d, zf = %t, cf = %t, nf = %t, vf = %t",
		s.CPU.R[PC], s.CPU.R[SP], s.CPU.Flags.Z, s.CPU.Flags.C, s.CPU.Flags.N, s.CPU.Flags.V)
	return sb.String()
}
