//go:build headless

// display_headless.go - headless stand-in for the ebiten display, used
// in test environments without a window system.

package host

import (
	"sync"

	"github.com/zotley-labs/chip8vm/chip8"
)

type Display struct {
	cpu   *chip8.CPU
	title string

	mu     sync.Mutex
	onTick func()
}

func NewDisplay(cpu *chip8.CPU, scale int, title string) *Display {
	return &Display{cpu: cpu, title: title}
}

func (d *Display) SetTickFunc(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onTick = fn
}

// Run invokes the tick callback once, since there is no windowing
// system driving a real frame loop in this build.
func (d *Display) Run() error {
	d.mu.Lock()
	tick := d.onTick
	d.mu.Unlock()
	if tick != nil {
		tick()
	}
	return nil
}
