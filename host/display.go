//go:build !headless

// display.go - Ebiten video output and hex-keypad input

package host

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/zotley-labs/chip8vm/chip8"
)

// keyMap associates a physical key with a hex keypad index (0x0-0xF),
// following the usual left-hand QWERTY layout for the COSMAC VIP keypad:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keyMap = map[ebiten.Key]int{
	ebiten.Key1: 0x1, ebiten.Key2: 0x2, ebiten.Key3: 0x3, ebiten.Key4: 0xC,
	ebiten.KeyQ: 0x4, ebiten.KeyW: 0x5, ebiten.KeyE: 0x6, ebiten.KeyR: 0xD,
	ebiten.KeyA: 0x7, ebiten.KeyS: 0x8, ebiten.KeyD: 0x9, ebiten.KeyF: 0xE,
	ebiten.KeyZ: 0xA, ebiten.KeyX: 0x0, ebiten.KeyC: 0xB, ebiten.KeyV: 0xF,
}

// Display drives the CHIP-8 framebuffer through ebiten and forwards
// keypad state back into a CPU each frame. It implements ebiten.Game.
type Display struct {
	cpu   *chip8.CPU
	scale int

	title string

	mu     sync.Mutex
	onTick func() // invoked once per Update, before rendering

	onColor  color.Color
	offColor color.Color
}

// NewDisplay wires an ebiten window to cpu. scale multiplies the native
// 64x32 CHIP-8 resolution to a viewable window size.
func NewDisplay(cpu *chip8.CPU, scale int, title string) *Display {
	if scale < 1 {
		scale = 1
	}
	return &Display{
		cpu:      cpu,
		scale:    scale,
		title:    title,
		onColor:  color.RGBA{0xE0, 0xE0, 0xE0, 0xFF},
		offColor: color.RGBA{0x10, 0x10, 0x18, 0xFF},
	}
}

// SetTickFunc installs a callback invoked once per Update before the
// keypad state is applied and the frame is drawn. The run loop uses
// this to advance the CPU at its configured instruction rate.
func (d *Display) SetTickFunc(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onTick = fn
}

// Update advances one ebiten tick: run the host's step callback, then
// sync the hex keypad from whatever keys are currently held.
func (d *Display) Update() error {
	d.mu.Lock()
	tick := d.onTick
	d.mu.Unlock()
	if tick != nil {
		tick()
	}

	for key, idx := range keyMap {
		if o := d.cpu.SetKey(idx, ebiten.IsKeyPressed(key)); !o.Ok() {
			return fmt.Errorf("setting key %d: %w", idx, o)
		}
	}
	return nil
}

// Draw paints the CHIP-8 framebuffer, scaled and monochrome, onto screen.
func (d *Display) Draw(screen *ebiten.Image) {
	screen.Fill(d.offColor)
	fb := d.cpu.Framebuffer()
	for y := 0; y < chip8.ScreenHeight; y++ {
		for x := 0; x < chip8.ScreenWidth; x++ {
			if fb[y*chip8.ScreenWidth+x] == 0 {
				continue
			}
			ebitenutil.DrawRect(screen,
				float64(x*d.scale), float64(y*d.scale),
				float64(d.scale), float64(d.scale),
				d.onColor)
		}
	}
}

// Layout reports the fixed logical screen size ebiten should render at.
func (d *Display) Layout(_, _ int) (int, int) {
	return chip8.ScreenWidth * d.scale, chip8.ScreenHeight * d.scale
}

// Run opens the window and blocks until it is closed.
func (d *Display) Run() error {
	ebiten.SetWindowSize(chip8.ScreenWidth*d.scale, chip8.ScreenHeight*d.scale)
	ebiten.SetWindowTitle(d.title)
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(d)
}
