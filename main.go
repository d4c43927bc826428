// Command puc16 is the assembler/simulator/debugger entry point: it
// preprocesses and assembles a source file, then either emits it as VHDL,
// runs it to a fixed step count for regression testing, or hands
// it to the interactive simulator (CLI or TUI), optionally with a live
// video window. Grounded on the teacher's main.go flag-dispatch structure,
// scaled down to the flag surface spec section 6 actually specifies.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wcaarls/puc16/asm"
	"github.com/wcaarls/puc16/cfront"
	"github.com/wcaarls/puc16/config"
	"github.com/wcaarls/puc16/debugger"
	"github.com/wcaarls/puc16/emit"
	"github.com/wcaarls/puc16/loader"
	"github.com/wcaarls/puc16/vm"
	"github.com/wcaarls/puc16/vm/video"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		outFile     = flag.String("o", "", "VHDL output file (default: stdout)")
		preprocess  = flag.Bool("E", false, "Print preprocessed assembly and exit")
		simulate    = flag.Bool("s", false, "Launch the interactive simulator (CLI debugger)")
		tuiMode     = flag.Bool("tui", false, "Launch the interactive simulator (TUI debugger)")
		videoOn     = flag.Bool("v", false, "Enable the video window during simulation")
		testPC      = flag.Int("t", -1, "Run a fixed 1000 steps and exit nonzero unless PC equals this value")
		configPath  = flag.String("config", "", "Path to a TOML config file (default: built-in defaults)")
		entryFlag   = flag.String("entry", "", "Override the code entry label or address (hex or decimal)")
		maxSteps    = flag.Int("max-steps", 0, "Maximum steps for a single -s/-tui continue run (default: from config; does not affect -t)")
		cfrontMode  = flag.Bool("cfront", false, "Treat the input as C source and adapt it via the configured codegen backend")
	)
	flag.Usage = printHelp
	flag.Parse()

	if *showVersion {
		fmt.Printf("puc16 %s (commit %s, built %s)\n", Version, Commit, Date)
		return
	}
	if *showHelp {
		printHelp()
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "error: missing assembly file")
		printHelp()
		os.Exit(1)
	}
	srcPath := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading config: %v\n", err)
		os.Exit(1)
	}

	if *cfrontMode {
		srcPath = adaptCFront(srcPath, cfg)
	}

	lines, err := asm.NewPreprocessor("").Process(srcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *preprocess {
		for _, l := range lines {
			fmt.Println(l.Text)
		}
		return
	}

	img, err := asm.Assemble(lines, cfg.Origins())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	labels := collectLabels(img)

	switch {
	case *testPC >= 0:
		runTestMode(img, *testPC)
	case *simulate || *tuiMode:
		runSimulator(img, labels, cfg, *tuiMode, *videoOn, *entryFlag, *maxSteps)
	default:
		emitOutput(img, *outFile)
	}
}

// adaptCFront runs the C frontend adapter over srcPath and writes the
// resulting assembly to a temp file, returning its path for the normal
// preprocess/assemble pipeline to consume.
func adaptCFront(srcPath string, cfg *config.Config) string {
	f, err := os.Open(srcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: opening %s: %v\n", srcPath, err)
		os.Exit(1)
	}
	defer f.Close()

	backend := cfront.ExternalCodegen{EnvVar: "PUC16_CC_BACKEND"}
	out, err := cfront.Adapt(f, backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: c-frontend: %v\n", err)
		os.Exit(1)
	}

	tmp, err := os.CreateTemp("", "puc16-cfront-*.s")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer tmp.Close()
	if _, err := tmp.WriteString(out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return tmp.Name()
}

// emitOutput writes the VHDL rendering of img to path (or stdout, bare
// form, if path is empty), matching spec section 6's output contract.
func emitOutput(img *asm.Image, path string) {
	if path == "" {
		emit.VHDL(img, os.Stdout, "")
		return
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: creating %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	emit.VHDL(img, f, base)
}

// testModeSteps is the fixed step count spec.md §6/§8 scenario 6 specifies
// for "-t N": run this many steps, then check pc==N. It is not configurable
// via -max-steps, which governs -s/-tui's run budget instead.
const testModeSteps = 1000

// runTestMode runs the program for testModeSteps steps and exits nonzero
// unless the final pc equals want, per spec section 6/8 scenario 6.
func runTestMode(img *asm.Image, want int) {
	s := loader.Load(img, vm.NewStreamIO(os.Stdin, os.Stdout))
	pc, err := vm.Run(s, testModeSteps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: runtime: %v\n", err)
		os.Exit(1)
	}
	if int(pc) != want {
		fmt.Fprintf(os.Stderr, "test mismatch: pc=%d, expected %d\n", pc, want)
		os.Exit(1)
	}
}

// runSimulator launches the interactive CLI or TUI debugger over the
// assembled image, optionally with a video window. maxSteps caps a single
// "c"/continue run (0 falls back to cfg.Simulate.MaxSteps); this budget is
// distinct from -t's fixed testModeSteps count.
func runSimulator(img *asm.Image, labels map[uint16]string, cfg *config.Config, tui, videoWin bool, entryFlag string, maxSteps int) {
	if maxSteps <= 0 {
		maxSteps = cfg.Simulate.MaxSteps
	}
	s := loader.Load(img, vm.NewStreamIO(os.Stdin, os.Stdout))
	if entryFlag != "" {
		if pc, ok := resolveEntry(entryFlag, labels); ok {
			s.CPU.R[vm.PC] = pc
		} else {
			fmt.Fprintf(os.Stderr, "error: unknown entry %q\n", entryFlag)
			os.Exit(1)
		}
	}

	if videoWin {
		win := video.NewWindow(s)
		defer win.Close()
		go win.Run(cfg.Simulate.ThrottleHz)
	}

	if tui {
		t := debugger.NewTUI(s, labels)
		t.MaxSteps = maxSteps
		if err := t.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "error: tui: %v\n", err)
			os.Exit(1)
		}
		return
	}

	repl := debugger.NewREPL(s, os.Stdin, os.Stdout, labels)
	repl.MaxSteps = maxSteps
	if err := repl.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: debugger: %v\n", err)
		os.Exit(1)
	}
}

// resolveEntry parses entryFlag as a label name, then a hex (0x-prefixed)
// or decimal address, matching the -entry flag's "ADDR" contract.
func resolveEntry(entryFlag string, labels map[uint16]string) (uint16, bool) {
	for addr, name := range labels {
		if name == entryFlag {
			return addr, true
		}
	}
	base := 10
	s := entryFlag
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		s = s[2:]
	}
	n, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// collectLabels builds an address->label map from every slot the assembler
// bound a label to, for the debugger's disassembly and "@name" rendering.
func collectLabels(img *asm.Image) map[uint16]string {
	labels := make(map[uint16]string)
	for _, section := range img.Sections {
		for _, slot := range section.Slots {
			if slot.Label != "" {
				labels[slot.Addr] = slot.Label
			}
		}
	}
	return labels
}

func printHelp() {
	fmt.Printf(`puc16 %s

Usage: puc16 [options] <file>

Options:
  -help              Show this help message
  -version           Show version information
  -o OUT             Write VHDL output to OUT instead of stdout
  -E                 Print preprocessed assembly and exit
  -s                 Launch the interactive simulator (CLI debugger)
  -tui               Launch the interactive simulator (TUI debugger)
  -v                 Enable the video window during simulation
  -t N               Run a fixed 1000 steps and exit nonzero unless pc==N
  -config PATH       Load a TOML config file (default: built-in defaults)
  -entry ADDR        Override the entry point (label name, hex, or decimal)
  -max-steps N       Maximum steps for a single -s/-tui continue run (default: from config)
  -cfront            Treat <file> as C source, adapted via the configured codegen backend

Examples:
  puc16 program.s                  # assemble and emit VHDL to stdout
  puc16 program.s -o program.vhd   # assemble and emit VHDL to a file
  puc16 program.s -E               # print preprocessed source
  puc16 program.s -s               # assemble and drop into the CLI debugger
  puc16 program.s -tui -v          # TUI debugger with the video window
  puc16 program.s -t 42            # run and check the final pc is 42
`, Version)
}
