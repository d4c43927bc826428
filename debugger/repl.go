// Package debugger implements PUC16's interactive monitor: a line-oriented
// command REPL over an abstract I/O pair (spec section 4.5, "Interactive
// monitor is specified as a line-oriented REPL over an abstract I/O
// collaborator; wire it to any stream pair in an implementation"),
// grounded on the teacher's Debugger struct (debugger/debugger.go) but
// matching the original's simulator.py command set exactly rather than the
// teacher's much larger ARM command language.
package debugger

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wcaarls/puc16/encoder"
	"github.com/wcaarls/puc16/isa"
	"github.com/wcaarls/puc16/vm"
)

// REPL drives one interactive monitor session against a live machine State.
type REPL struct {
	State   *vm.State
	Labels  map[uint16]string
	// MaxSteps caps a single "c" continuous run, mirroring config's
	// Simulate.MaxSteps budget; zero means unbounded (stop only on
	// breakpoint or pc self-loop).
	MaxSteps int
	in       *bufio.Scanner
	out      io.Writer
	breaks   map[uint16]bool
	quiet    bool
	lastErr  error
}

// NewREPL wires the monitor to state and a stream pair; labels (optional)
// annotate branch/jmp operands in the per-instruction trace line.
func NewREPL(state *vm.State, in io.Reader, out io.Writer, labels map[uint16]string) *REPL {
	return &REPL{
		State:  state,
		Labels: labels,
		in:     bufio.NewScanner(in),
		out:    out,
		breaks: make(map[uint16]bool),
	}
}

// Run drives the monitor until the user quits or input is exhausted.
func (r *REPL) Run() error {
	steps := 0
	for {
		if r.quiet {
			before := r.State.CPU.R[vm.PC]
			if err := r.step(); err != nil {
				return err
			}
			steps++
			pc := r.State.CPU.R[vm.PC]
			if pc == before || r.breaks[pc] || (r.MaxSteps > 0 && steps >= r.MaxSteps) {
				r.quiet = false
				steps = 0
			}
			continue
		}

		r.printCurrentInstruction()
		fmt.Fprint(r.out, ">> ")
		if !r.in.Scan() {
			return r.in.Err()
		}
		cmd := strings.TrimSpace(r.in.Text())
		quit, err := r.dispatch(cmd)
		if err != nil {
			fmt.Fprintln(r.out, err)
		}
		if quit {
			return nil
		}
	}
}

func (r *REPL) step() error {
	before := r.State.Clone()
	err := vm.Step(r.State)
	if err != nil {
		return err
	}
	if diff := before.Diff(r.State); diff != "" {
		fmt.Fprintln(r.out, "     "+diff)
	}
	return nil
}

func (r *REPL) printCurrentInstruction() {
	pc := r.State.CPU.R[vm.PC]
	word := r.State.Mem.Read(pc)
	dec, err := encoder.Decode(word, pc, r.Labels)
	dis := "???"
	if err == nil {
		dis = formatDecoded(dec)
	}
	bits := fmt.Sprintf("%016b", word)
	fmt.Fprintf(r.out, "%3d: %s %s %s %s (%s)\n", pc, bits[0:4], bits[4:8], bits[8:12], bits[12:16], dis)
}

func formatDecoded(d encoder.Decoded) string {
	if d.Operand == "" {
		return d.Entry.Mnemonic
	}
	return d.Entry.Mnemonic + " " + d.Operand
}

// dispatch executes one command line, returning quit=true on "q".
func (r *REPL) dispatch(cmd string) (bool, error) {
	switch {
	case cmd == "" || cmd == "n":
		return false, r.step()

	case cmd == "c":
		r.quiet = true
		return false, nil

	case cmd == "p":
		fmt.Fprintln(r.out, r.State.String())
		return false, nil

	case cmd == "q":
		return true, nil

	case cmd == "h":
		r.printHelp()
		return false, nil

	case strings.HasPrefix(cmd, "b "):
		return false, r.toggleBreakpoint(cmd[2:])

	case strings.HasPrefix(cmd, "["):
		return false, r.memoryCommand(cmd)

	case strings.HasPrefix(cmd, "r"):
		return false, r.registerCommand(cmd)

	default:
		r.printHelp()
		return false, nil
	}
}

func (r *REPL) toggleBreakpoint(addrText string) error {
	addr, err := parseAddress(strings.TrimSpace(addrText))
	if err != nil {
		return err
	}
	if r.breaks[addr] {
		delete(r.breaks, addr)
	} else {
		r.breaks[addr] = true
	}
	fmt.Fprintf(r.out, "breakpoints: %v\n", r.breakpointList())
	return nil
}

func (r *REPL) breakpointList() []uint16 {
	var list []uint16
	for addr := range r.breaks {
		list = append(list, addr)
	}
	return list
}

func (r *REPL) registerCommand(cmd string) error {
	parts := strings.SplitN(cmd, "=", 2)
	name := strings.TrimSpace(parts[0])
	n := isa.RegisterByName(name)
	if n < 0 {
		// also accept the original's bare "rN" spelling for n >= 13
		if idx, err := strconv.Atoi(strings.TrimPrefix(name, "r")); err == nil {
			n = idx
		}
	}
	if n < 0 || n > 15 {
		return fmt.Errorf("not a register: %q", name)
	}

	if len(parts) == 1 {
		fmt.Fprintf(r.out, "%s = %d\n", name, r.State.CPU.R[n])
		return nil
	}
	v, err := parseAddress(strings.TrimSpace(parts[1]))
	if err != nil {
		return err
	}
	r.State.CPU.R[n] = v
	return nil
}

func (r *REPL) memoryCommand(cmd string) error {
	parts := strings.SplitN(cmd, "=", 2)
	inner := strings.TrimSpace(parts[0])
	if !strings.HasSuffix(inner, "]") {
		return fmt.Errorf("malformed memory reference: %q", cmd)
	}
	addr, err := parseAddress(inner[1 : len(inner)-1])
	if err != nil {
		return err
	}

	if len(parts) == 1 {
		fmt.Fprintf(r.out, "[%d] = %d\n", addr, r.State.Mem.Read(addr))
		return nil
	}
	v, err := parseAddress(strings.TrimSpace(parts[1]))
	if err != nil {
		return err
	}
	r.State.Mem.Write(addr, v)
	return nil
}

func parseAddress(s string) (uint16, error) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %q", s)
	}
	return uint16(v), nil
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.out, `Available commands:
   h       This help.
   n       Advance to next instruction.
   b a     Set or clear breakpoint at address a.
   c       Execute continuously until halted.
   p       Print current state.
   q       Exit simulator.
   rx      Print contents of register x.
   rx = y  Set register x to value y.
   [a]     Print contents of memory address a.
   [a] = y Set memory address a to value y.
`)
}
