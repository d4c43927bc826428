package debugger

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/wcaarls/puc16/encoder"
	"github.com/wcaarls/puc16/vm"
)

// TUI is the full-screen front-end over the same command dispatch the
// stream REPL uses, grounded on the teacher's debugger/tui.go panel layout
// (disassembly left, registers/memory right, output and command line along
// the bottom; breakpoints are marked in the disassembly panel) but scaled
// to PUC16's much smaller register file and command language.
type TUI struct {
	repl *REPL

	App      *tview.Application
	Layout   *tview.Flex
	RegsView *tview.TextView
	MemView  *tview.TextView
	DisView  *tview.TextView
	OutView  *tview.TextView
	Input    *tview.InputField

	// MaxSteps caps a single "c"/F5 continue run, mirroring REPL.MaxSteps;
	// zero means unbounded (stop only on breakpoint or pc self-loop).
	MaxSteps int

	memAddr uint16
}

// NewTUI wraps state in a REPL and builds the tview layout around it.
func NewTUI(state *vm.State, labels map[uint16]string) *TUI {
	return newTUI(state, labels, nil)
}

// NewTUIWithScreen is NewTUI with an explicit tcell.Screen, letting tests
// drive the application against a tcell.SimulationScreen instead of a real
// terminal, matching the teacher's own test-only constructor.
func NewTUIWithScreen(state *vm.State, labels map[uint16]string, screen tcell.Screen) *TUI {
	return newTUI(state, labels, screen)
}

func newTUI(state *vm.State, labels map[uint16]string, screen tcell.Screen) *TUI {
	t := &TUI{
		repl: NewREPL(state, bytes.NewReader(nil), &discardWriter{}, labels),
		App:  tview.NewApplication(),
	}
	if screen != nil {
		t.App.SetScreen(screen)
	}
	t.buildViews()
	t.buildLayout()
	t.setupKeyBindings()
	if screen != nil {
		t.RefreshAll()
	}
	return t
}

// discardWriter satisfies REPL's io.Writer in TUI mode, where output is
// routed through TUI.WriteOutput instead of the REPL's own prompt loop.
type discardWriter struct{}

func (*discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func (t *TUI) buildViews() {
	t.DisView = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	t.DisView.SetBorder(true).SetTitle(" Disassembly ")

	t.RegsView = tview.NewTextView().SetDynamicColors(true)
	t.RegsView.SetBorder(true).SetTitle(" Registers ")

	t.MemView = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	t.MemView.SetBorder(true).SetTitle(" Memory ")

	t.OutView = tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	t.OutView.SetBorder(true).SetTitle(" Output ")

	t.Input = tview.NewInputField().SetLabel("> ").SetFieldWidth(0)
	t.Input.SetBorder(true).SetTitle(" Command ")
	t.Input.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	right := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.RegsView, 8, 0, false).
		AddItem(t.MemView, 0, 1, false)

	main := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.DisView, 0, 2, false).
		AddItem(right, 0, 1, false)

	t.Layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(main, 0, 3, false).
		AddItem(t.OutView, 6, 0, false).
		AddItem(t.Input, 3, 0, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF5:
			t.run("c")
			return nil
		case tcell.KeyF10:
			t.run("n")
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := t.Input.GetText()
	if cmd == "" {
		return
	}
	t.Input.SetText("")
	t.run(cmd)
}

// run executes one command line through the REPL's dispatcher, then
// refreshes every panel. "q" stops the application instead of the REPL's
// own input loop (the TUI owns the main loop here).
func (t *TUI) run(cmd string) {
	if cmd == "q" {
		t.App.Stop()
		return
	}

	var out bytes.Buffer
	t.repl.out = &out
	quit, err := t.repl.dispatch(cmd)
	if err != nil {
		fmt.Fprintf(&out, "error: %v\n", err)
	}
	if t.repl.quiet {
		t.continueRun(&out)
	}
	t.WriteOutput(out.String())
	if quit {
		t.App.Stop()
		return
	}
	t.RefreshAll()
}

// continueRun drains the "c"/F5 continuous-execution request dispatch just
// armed (repl.quiet = true) directly against the machine, since TUI.Run
// drives tview's event loop rather than REPL.Run — the only other place
// repl.quiet is ever read. Mirrors REPL.Run's quiet loop in repl.go:
// stops at a breakpoint, a pc self-loop, or MaxSteps, whichever is first.
func (t *TUI) continueRun(out *bytes.Buffer) {
	steps := 0
	for t.repl.quiet {
		before := t.repl.State.CPU.R[vm.PC]
		if err := t.repl.step(); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			t.repl.quiet = false
			break
		}
		steps++
		pc := t.repl.State.CPU.R[vm.PC]
		if pc == before || t.repl.breaks[pc] || (t.MaxSteps > 0 && steps >= t.MaxSteps) {
			t.repl.quiet = false
		}
	}
}

// WriteOutput appends text to the output panel and scrolls to the end.
func (t *TUI) WriteOutput(text string) {
	if text == "" {
		return
	}
	fmt.Fprint(t.OutView, text)
	t.OutView.ScrollToEnd()
}

// RefreshAll redraws every panel from the current machine state.
func (t *TUI) RefreshAll() {
	t.updateDisassembly()
	t.updateRegisters()
	t.updateMemory()
	t.App.Draw()
}

func (t *TUI) updateDisassembly() {
	t.DisView.Clear()
	pc := t.repl.State.CPU.R[vm.PC]

	var lines []string
	start := pc
	if start > 10 {
		start -= 10
	} else {
		start = 0
	}
	for addr := start; addr < start+30; addr++ {
		word := t.repl.State.Mem.Read(addr)
		dec, err := encoder.Decode(word, addr, t.repl.Labels)
		dis := "???"
		if err == nil {
			dis = formatDecoded(dec)
		}
		marker := "  "
		if addr == pc {
			marker = "->"
		}
		if t.repl.breaks[addr] {
			marker = "* "
		}
		lines = append(lines, fmt.Sprintf("%s %5d: %s", marker, addr, dis))
	}
	t.DisView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) updateRegisters() {
	t.RegsView.Clear()
	s := t.repl.State
	var lines []string
	for row := 0; row < 4; row++ {
		var cols []string
		for col := 0; col < 3; col++ {
			r := row*3 + col
			if r > 12 {
				break
			}
			cols = append(cols, fmt.Sprintf("r%d=%5d", r, s.CPU.R[r]))
		}
		lines = append(lines, strings.Join(cols, "  "))
	}
	lines = append(lines, fmt.Sprintf("fp=%5d sp=%5d pc=%5d", s.CPU.R[vm.FP], s.CPU.R[vm.SP], s.CPU.R[vm.PC]))
	lines = append(lines, fmt.Sprintf("z=%t c=%t n=%t v=%t",
		s.CPU.Flags.Z, s.CPU.Flags.C, s.CPU.Flags.N, s.CPU.Flags.V))
	t.RegsView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) updateMemory() {
	t.MemView.Clear()
	addr := t.memAddr
	var lines []string
	for row := 0; row < 16; row++ {
		var cells []string
		for col := 0; col < 4; col++ {
			a := addr + uint16(row*4+col)
			cells = append(cells, fmt.Sprintf("%5d:%5d", a, t.repl.State.Mem.Read(a)))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	t.MemView.SetText(strings.Join(lines, "\n"))
}

// Run starts the full-screen application; it returns when the user quits.
func (t *TUI) Run() error {
	return t.App.SetRoot(t.Layout, true).SetFocus(t.Input).Run()
}
