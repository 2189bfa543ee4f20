// graphics.go - sprite blitting (DXYN)

package chip8

import "fmt"

// opDRW draws an N-byte sprite from memory[I:I+N] at (V[X], V[Y]),
// XOR-composited onto the framebuffer. The starting coordinates wrap
// modulo the screen dimensions; the sprite body does not — pixels that
// would fall past the right or bottom edge are clipped, not wrapped
// (see spec.md §9's design note on this exact point). VF is set to 1 if
// any lit sprite pixel collided with an already-lit framebuffer pixel.
func (c *CPU) opDRW(op Opcode) (Outcome, string) {
	x, y, n := op.X(), op.Y(), int(op.N())
	mnemonic := fmt.Sprintf("DRW V%X, V%X, 0x%X", x, y, n)

	if uint32(c.I)+uint32(n) > 0x1000 {
		return MemOutOfBounds, mnemonic
	}

	px := int(c.V[x]) & (ScreenWidth - 1)
	py := int(c.V[y]) & (ScreenHeight - 1)
	c.V[0xF] = 0

	for row := 0; row < n; row++ {
		ty := py + row
		if ty >= ScreenHeight {
			continue
		}
		spriteByte := c.Memory[int(c.I)+row]
		for col := 0; col < 8; col++ {
			if spriteByte&(0x80>>uint(col)) == 0 {
				continue
			}
			tx := px + col
			if tx >= ScreenWidth {
				continue
			}
			idx := ty*ScreenWidth + tx
			if c.fb[idx] == 1 {
				c.V[0xF] = 1
				c.fb[idx] = 0
			} else {
				c.fb[idx] = 1
			}
		}
	}
	return Success, mnemonic
}
