// script.go - Lua-driven conformance harness for the CHIP-8 core
//
// Exposes a small "chip8" table to Lua scripts so a test scenario can
// be written as a short script instead of Go: deploy a ROM, step the
// CPU, and assert on register/PC/outcome state.

package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/zotley-labs/chip8vm/chip8"
)

// Runner owns the Lua state and the CPU instance scripts operate on.
type Runner struct {
	L   *lua.LState
	cpu *chip8.CPU
}

// NewRunner creates a Runner with a fresh CPU and registers the chip8
// API table into the Lua global namespace.
func NewRunner(quirks chip8.Quirks, seed uint64) *Runner {
	r := &Runner{
		L:   lua.NewState(),
		cpu: chip8.New(quirks, seed),
	}
	r.register()
	return r
}

// Close releases the Lua state.
func (r *Runner) Close() {
	r.L.Close()
}

// RunFile loads and executes a Lua script file against the runner's CPU.
func (r *Runner) RunFile(path string) error {
	return r.L.DoFile(path)
}

// RunString loads and executes Lua source directly, for inline scripts.
func (r *Runner) RunString(src string) error {
	return r.L.DoString(src)
}

func (r *Runner) register() {
	tbl := r.L.NewTable()

	r.L.SetFuncs(tbl, map[string]lua.LGFunction{
		"deploy":         r.luaDeploy,
		"step":           r.luaStep,
		"set_key":        r.luaSetKey,
		"assert_v":       r.luaAssertV,
		"assert_pc":      r.luaAssertPC,
		"assert_outcome": r.luaAssertOutcome,
		"assert_vf":      r.luaAssertVF,
	})

	r.L.SetGlobal("chip8", tbl)
}

// luaDeploy(bytes_table) loads a ROM given as a Lua table of small
// integers (0-255), one per byte.
func (r *Runner) luaDeploy(L *lua.LState) int {
	tbl := L.CheckTable(1)
	rom := make([]byte, 0, tbl.Len())
	tbl.ForEach(func(_, v lua.LValue) {
		rom = append(rom, byte(lua.LVAsNumber(v)))
	})
	if o := r.cpu.LoadROM(rom); !o.Ok() {
		L.RaiseError("deploy failed: %s", o.String())
	}
	return 0
}

// luaStep(n) runs n Step calls (default 1) and returns the last outcome
// name and mnemonic as two string return values.
func (r *Runner) luaStep(L *lua.LState) int {
	n := 1
	if L.GetTop() >= 1 {
		n = L.CheckInt(1)
	}
	var o chip8.Outcome
	var mnemonic string
	for i := 0; i < n; i++ {
		o, mnemonic = r.cpu.Step()
	}
	L.Push(lua.LString(o.String()))
	L.Push(lua.LString(mnemonic))
	return 2
}

func (r *Runner) luaSetKey(L *lua.LState) int {
	idx := L.CheckInt(1)
	down := L.CheckBool(2)
	if o := r.cpu.SetKey(idx, down); !o.Ok() {
		L.RaiseError("set_key failed: %s", o.String())
	}
	return 0
}

func (r *Runner) luaAssertV(L *lua.LState) int {
	idx := L.CheckInt(1)
	want := byte(L.CheckInt(2))
	if idx < 0 || idx > 15 {
		L.RaiseError("register index out of range: %d", idx)
	}
	if got := r.cpu.V[idx]; got != want {
		L.RaiseError("V%X = %d, want %d", idx, got, want)
	}
	return 0
}

func (r *Runner) luaAssertVF(L *lua.LState) int {
	want := byte(L.CheckInt(1))
	if got := r.cpu.V[0xF]; got != want {
		L.RaiseError("VF = %d, want %d", got, want)
	}
	return 0
}

func (r *Runner) luaAssertPC(L *lua.LState) int {
	want := uint16(L.CheckInt(1))
	if r.cpu.PC != want {
		L.RaiseError("PC = 0x%X, want 0x%X", r.cpu.PC, want)
	}
	return 0
}

func (r *Runner) luaAssertOutcome(L *lua.LState) int {
	want := L.CheckString(1)
	got := r.cpu.LastOutcome().String()
	if got != want {
		L.RaiseError("outcome = %s, want %s", got, want)
	}
	return 0
}

// CPU exposes the underlying CPU for Go-side inspection after a script runs.
func (r *Runner) CPU() *chip8.CPU {
	return r.cpu
}
