package chip8

import "testing"

func TestDrawAndCollision(t *testing.T) {
	c := newTestCPU()
	c.Memory[0x300] = 0xFF
	c.I = 0x300
	c.V[0] = 0
	c.V[1] = 0

	o, _ := c.execute(Opcode(0xD011)) // DRW V0, V1, 1
	if !o.Ok() {
		t.Fatalf("first DRW failed: %v", o)
	}
	for x := 0; x < 8; x++ {
		if c.fb[x] != 1 {
			t.Fatalf("fb[%d] = %d after first draw, want 1", x, c.fb[x])
		}
	}
	if c.V[0xF] != 0 {
		t.Fatalf("VF = %d after first draw, want 0", c.V[0xF])
	}

	o, _ = c.execute(Opcode(0xD011)) // same sprite, same coords -> erases
	if !o.Ok() {
		t.Fatalf("second DRW failed: %v", o)
	}
	for x := 0; x < 8; x++ {
		if c.fb[x] != 0 {
			t.Fatalf("fb[%d] = %d after second draw, want 0", x, c.fb[x])
		}
	}
	if c.V[0xF] != 1 {
		t.Errorf("VF = %d after collision, want 1", c.V[0xF])
	}
}

func TestDrawClipsAtRightEdge(t *testing.T) {
	c := newTestCPU()
	c.Memory[0x300] = 0xFF // 8 lit pixels in a row
	c.I = 0x300
	c.V[0] = ScreenWidth - 4 // origin near the right edge
	c.V[1] = 0

	c.execute(Opcode(0xD011))
	// Pixels at columns ScreenWidth-4..ScreenWidth-1 should be lit,
	// nothing wraps to column 0.
	for x := 0; x < ScreenWidth-4; x++ {
		if c.fb[x] != 0 {
			t.Fatalf("fb[%d] = %d, sprite wrapped instead of clipping", x, c.fb[x])
		}
	}
	for x := ScreenWidth - 4; x < ScreenWidth; x++ {
		if c.fb[x] != 1 {
			t.Fatalf("fb[%d] = %d, want 1", x, c.fb[x])
		}
	}
}

func TestDrawClipsAtBottomEdge(t *testing.T) {
	c := newTestCPU()
	for i := 0; i < 4; i++ {
		c.Memory[0x300+i] = 0x80 // single pixel at column 0 each row
	}
	c.I = 0x300
	c.V[0] = 0
	c.V[1] = ScreenHeight - 2

	c.execute(Opcode(0xD014)) // 4-row sprite starting 2 rows from the bottom

	if c.fb[(ScreenHeight-2)*ScreenWidth] != 1 || c.fb[(ScreenHeight-1)*ScreenWidth] != 1 {
		t.Error("expected the two in-bounds rows to be drawn")
	}
	// no wraparound to row 0/1
	if c.fb[0] != 0 || c.fb[ScreenWidth] != 0 {
		t.Error("sprite tail wrapped to top of screen instead of clipping")
	}
}

func TestDrawOriginWraps(t *testing.T) {
	c := newTestCPU()
	c.Memory[0x300] = 0x80 // single pixel, top-left of the sprite
	c.I = 0x300
	c.V[0] = ScreenWidth + 2 // wraps to column 2
	c.V[1] = ScreenHeight + 1 // wraps to row 1

	c.execute(Opcode(0xD011))

	idx := 1*ScreenWidth + 2
	if c.fb[idx] != 1 {
		t.Errorf("fb[%d] = %d, want 1 (origin should wrap mod screen size)", idx, c.fb[idx])
	}
}

func TestDrawZeroHeightNoOp(t *testing.T) {
	c := newTestCPU()
	c.Memory[0x300] = 0xFF
	c.I = 0x300
	c.V[0], c.V[1] = 0, 0
	c.V[0xF] = 1 // sentinel

	o, _ := c.execute(Opcode(0xD010)) // N=0
	if !o.Ok() {
		t.Fatalf("N=0 draw failed: %v", o)
	}
	for i, v := range c.fb {
		if v != 0 {
			t.Fatalf("fb[%d] = %d, want 0 (no draw for N=0)", i, v)
		}
	}
	if c.V[0xF] != 0 {
		t.Errorf("VF = %d, want 0 (N=0 still initializes VF)", c.V[0xF])
	}
}

func TestDrawOutOfBounds(t *testing.T) {
	c := newTestCPU()
	c.I = 0x0FFC
	if o, _ := c.execute(Opcode(0xD01F)); o != MemOutOfBounds {
		t.Errorf("DRW past top of memory = %v, want MemOutOfBounds", o)
	}
}
