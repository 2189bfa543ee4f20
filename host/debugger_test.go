package host

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zotley-labs/chip8vm/chip8"
)

func TestParseDebugCommand(t *testing.T) {
	cmd := ParseDebugCommand("  B $300  ")
	if cmd.Name != "b" || len(cmd.Args) != 1 || cmd.Args[0] != "$300" {
		t.Errorf("ParseDebugCommand = %+v", cmd)
	}
}

func TestParseAddress(t *testing.T) {
	cases := map[string]uint16{
		"$300": 0x300,
		"0x300": 0x300,
		"300":  0x300,
	}
	for in, want := range cases {
		got, ok := ParseAddress(in)
		if !ok || got != want {
			t.Errorf("ParseAddress(%q) = %X, %v; want %X, true", in, got, ok, want)
		}
	}
	if _, ok := ParseAddress("zz"); ok {
		t.Error("ParseAddress(zz) should fail")
	}
}

func TestDebuggerStepAndRegisters(t *testing.T) {
	cpu := chip8.New(chip8.Quirks{}, 1)
	cpu.LoadROM([]byte{0x60, 0x2A})

	var out bytes.Buffer
	d := NewDebugger(cpu, &out)

	if !d.Dispatch(ParseDebugCommand("s")) {
		t.Fatal("step should keep the session open")
	}
	if !strings.Contains(out.String(), "LD V0, 0x2A") {
		t.Errorf("step output missing mnemonic: %q", out.String())
	}

	out.Reset()
	d.Dispatch(ParseDebugCommand("r"))
	if !strings.Contains(out.String(), "V0=2A") {
		t.Errorf("registers output missing V0: %q", out.String())
	}
}

func TestDebuggerBreakpoints(t *testing.T) {
	cpu := chip8.New(chip8.Quirks{}, 1)
	cpu.LoadROM([]byte{0x00, 0xE0, 0x00, 0xE0, 0x12, 0x02})

	var out bytes.Buffer
	d := NewDebugger(cpu, &out)

	d.Dispatch(ParseDebugCommand("b $202"))
	d.Dispatch(ParseDebugCommand("g"))
	if cpu.PC != 0x202 {
		t.Errorf("PC after go = 0x%X, want 0x202 (breakpoint should have stopped it)", cpu.PC)
	}
	if !strings.Contains(out.String(), "breakpoint hit") {
		t.Errorf("expected breakpoint-hit message, got %q", out.String())
	}
}

func TestDebuggerQuit(t *testing.T) {
	cpu := chip8.New(chip8.Quirks{}, 1)
	var out bytes.Buffer
	d := NewDebugger(cpu, &out)
	if d.Dispatch(ParseDebugCommand("q")) {
		t.Error("quit command should end the session")
	}
}
