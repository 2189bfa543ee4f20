package script

import (
	"path/filepath"
	"testing"

	"github.com/zotley-labs/chip8vm/chip8"
)

func TestScenarioScripts(t *testing.T) {
	scripts := []string{
		"jump_and_halt.lua",
		"register_set_and_skip.lua",
		"add_with_carry.lua",
		"stack_call_ret.lua",
		"block_on_key.lua",
	}

	for _, name := range scripts {
		t.Run(name, func(t *testing.T) {
			r := NewRunner(chip8.Quirks{}, 1)
			defer r.Close()

			if err := r.RunFile(filepath.Join("testdata", name)); err != nil {
				t.Fatalf("script %s failed: %v", name, err)
			}
		})
	}
}

func TestRunStringInline(t *testing.T) {
	r := NewRunner(chip8.Quirks{}, 1)
	defer r.Close()

	err := r.RunString(`
		chip8.deploy({0x60, 0x05})
		chip8.step(1)
		chip8.assert_v(0, 5)
	`)
	if err != nil {
		t.Fatalf("inline script failed: %v", err)
	}
}

func TestRaisesOnAssertionFailure(t *testing.T) {
	r := NewRunner(chip8.Quirks{}, 1)
	defer r.Close()

	err := r.RunString(`
		chip8.deploy({0x60, 0x05})
		chip8.step(1)
		chip8.assert_v(0, 99)
	`)
	if err == nil {
		t.Fatal("expected a Lua error from a failed assertion")
	}
}
