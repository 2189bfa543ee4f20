// debugger.go - interactive raw-terminal stepping debugger

package host

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/zotley-labs/chip8vm/chip8"
)

// DebugCommand is a parsed debugger input line.
type DebugCommand struct {
	Name string
	Args []string
}

// ParseDebugCommand splits a raw input line into a command name and
// its arguments, lower-casing the command name.
func ParseDebugCommand(input string) DebugCommand {
	input = strings.TrimSpace(input)
	if input == "" {
		return DebugCommand{}
	}
	parts := strings.Fields(input)
	return DebugCommand{Name: strings.ToLower(parts[0]), Args: parts[1:]}
}

// ParseAddress parses a debugger address argument: $hex, 0xhex, or bare
// hex, matching the notations a CHIP-8 disassembly listing would use.
func ParseAddress(s string) (uint16, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// Debugger is a line-oriented stepping debugger for a CPU. It reads
// commands from an input stream and writes responses to an output
// stream, so it can run against a real terminal or be driven by tests.
type Debugger struct {
	cpu *chip8.CPU
	out io.Writer

	breakpoints  map[uint16]bool
	lastMnemonic string
}

// NewDebugger creates a debugger attached to cpu, writing responses to out.
func NewDebugger(cpu *chip8.CPU, out io.Writer) *Debugger {
	return &Debugger{
		cpu:         cpu,
		out:         out,
		breakpoints: make(map[uint16]bool),
	}
}

// RunInteractive puts the given file descriptor's terminal into raw
// mode, echoes a "(chip8) " prompt, and dispatches commands read line
// by line until "q" or EOF. It restores the terminal before returning.
func RunInteractive(cpu *chip8.CPU, fd int, in io.Reader, out io.Writer) error {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	d := NewDebugger(cpu, out)
	rd := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, "(chip8) ")

	for {
		line, err := rd.ReadLine()
		if err != nil {
			return nil
		}
		if !d.Dispatch(ParseDebugCommand(line)) {
			return nil
		}
	}
}

// Dispatch executes one parsed command and returns false when the
// debugger session should end.
func (d *Debugger) Dispatch(cmd DebugCommand) bool {
	switch cmd.Name {
	case "":
		return true
	case "q", "quit":
		return false
	case "s", "step":
		d.cmdStep()
	case "r", "regs":
		d.cmdRegisters()
	case "b", "break":
		d.cmdBreakpointSet(cmd)
	case "bc", "clear":
		d.cmdBreakpointClear(cmd)
	case "bl", "breaks":
		d.cmdBreakpointList()
	case "g", "go":
		d.cmdGo()
	case "?", "help":
		d.cmdHelp()
	default:
		fmt.Fprintf(d.out, "unknown command %q (try \"help\")\r\n", cmd.Name)
	}
	return true
}

func (d *Debugger) cmdStep() {
	o, mnemonic := d.cpu.Step()
	d.lastMnemonic = mnemonic
	fmt.Fprintf(d.out, "%04X  %-16s %s\r\n", d.cpu.PC, mnemonic, o)
}

func (d *Debugger) cmdRegisters() {
	fmt.Fprintf(d.out, "PC=%04X I=%04X DT=%02X ST=%02X\r\n", d.cpu.PC, d.cpu.I, d.cpu.DT, d.cpu.ST)
	for i := 0; i < 16; i++ {
		fmt.Fprintf(d.out, "V%X=%02X ", i, d.cpu.V[i])
	}
	fmt.Fprintln(d.out, "\r")
}

func (d *Debugger) cmdBreakpointSet(cmd DebugCommand) {
	if len(cmd.Args) != 1 {
		fmt.Fprintln(d.out, "usage: b <addr>\r")
		return
	}
	addr, ok := ParseAddress(cmd.Args[0])
	if !ok {
		fmt.Fprintln(d.out, "bad address\r")
		return
	}
	d.breakpoints[addr] = true
	fmt.Fprintf(d.out, "breakpoint set at %04X\r\n", addr)
}

func (d *Debugger) cmdBreakpointClear(cmd DebugCommand) {
	if len(cmd.Args) != 1 {
		fmt.Fprintln(d.out, "usage: bc <addr>\r")
		return
	}
	addr, ok := ParseAddress(cmd.Args[0])
	if !ok {
		fmt.Fprintln(d.out, "bad address\r")
		return
	}
	delete(d.breakpoints, addr)
	fmt.Fprintf(d.out, "breakpoint cleared at %04X\r\n", addr)
}

func (d *Debugger) cmdBreakpointList() {
	if len(d.breakpoints) == 0 {
		fmt.Fprintln(d.out, "no breakpoints\r")
		return
	}
	for addr := range d.breakpoints {
		fmt.Fprintf(d.out, "  %04X\r\n", addr)
	}
}

// cmdGo runs until a breakpoint is hit or the CPU halts. It caps the
// number of steps taken to avoid a runaway loop with no breakpoints set.
func (d *Debugger) cmdGo() {
	const maxSteps = 10_000_000
	for i := 0; i < maxSteps; i++ {
		if d.cpu.Halted() {
			fmt.Fprintf(d.out, "halted: %v\r\n", d.cpu.LastOutcome())
			return
		}
		if d.breakpoints[d.cpu.PC] {
			fmt.Fprintf(d.out, "breakpoint hit at %04X\r\n", d.cpu.PC)
			return
		}
		d.cpu.Step()
	}
	fmt.Fprintln(d.out, "step budget exhausted\r")
}

func (d *Debugger) cmdHelp() {
	fmt.Fprint(d.out, "commands: s(tep) r(egs) b(reak) <addr> bc <addr> bl g(o) q(uit)\r\n")
}
