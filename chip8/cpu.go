// cpu.go - CPU aggregate state, lifecycle, and host-facing accessors

package chip8

import "math/rand"

// Quirks selects one of two documented dialect behaviors for each of the
// four opcode families that differ between the 1977 COSMAC-VIP
// interpreter and later CHIP-48/SUPER-CHIP dialects.
type Quirks struct {
	// ShiftsUseVY makes 8XY6/8XYE read from V[Y] before shifting instead
	// of shifting V[X] in place.
	ShiftsUseVY bool

	// BnnnUsesVX makes BNNN read V[X] (X taken from the opcode's second
	// nibble) instead of V[0].
	BnnnUsesVX bool

	// FxAutoIncI makes FX55/FX65 leave I incremented by X+1 after the
	// register block transfer, the classic COSMAC behavior.
	FxAutoIncI bool
}

// runState tracks the CPU step driver's two persistent states.
type runState int

const (
	running runState = iota
	halted
)

// CPU is the complete state of one emulated CHIP-8 machine: memory,
// registers, timers, the keyed input latch, the framebuffer, and the
// selected quirk set. It is exclusively owned by whichever goroutine
// drives it with Step; nothing here is safe for concurrent access.
type CPU struct {
	Memory [MemSize]byte
	V      [16]byte
	I      uint16
	PC     uint16
	DT     byte
	ST     byte

	Quirks Quirks

	stack callStack
	keys  uint16 // bit i set means hex key i is currently held
	fb    [framebufferSize]byte

	rng   *rand.Rand
	state runState
	last  Outcome
}

// New creates a freshly initialized CPU: memory zeroed, the hex fontset
// preloaded at FontsetBase, PC at ProgramStart, the given quirk set
// active, and the random source seeded once from seed. Per spec, the
// core never reseeds itself after this; callers that want fresh entropy
// call Reset with a new seed.
func New(quirks Quirks, seed uint64) *CPU {
	c := &CPU{
		PC:     ProgramStart,
		Quirks: quirks,
	}
	copy(c.Memory[FontsetBase:], fontset[:])
	c.rng = rand.New(rand.NewSource(int64(seed)))
	return c
}

// Reset reinitializes the CPU in place to the same state New would
// produce, with a possibly different quirk set and seed.
func (c *CPU) Reset(quirks Quirks, seed uint64) {
	c.Memory = [MemSize]byte{}
	c.V = [16]byte{}
	c.I = 0
	c.PC = ProgramStart
	c.DT = 0
	c.ST = 0
	c.Quirks = quirks
	c.stack = callStack{}
	c.keys = 0
	c.fb = [framebufferSize]byte{}
	c.rng = rand.New(rand.NewSource(int64(seed)))
	c.state = running
	c.last = Success
	copy(c.Memory[FontsetBase:], fontset[:])
}

// LoadROM copies rom into memory starting at ProgramStart. It fails with
// RomExceedsMaxMem, leaving memory untouched, when rom is longer than
// MaxROMSize.
func (c *CPU) LoadROM(rom []byte) Outcome {
	if len(rom) > MaxROMSize {
		return RomExceedsMaxMem
	}
	copy(c.Memory[ProgramStart:], rom)
	return Success
}

// SetKey latches or releases hex key index. It fails with
// IndexOutOfRange, leaving the latch unchanged, when index is outside
// [0, 15].
func (c *CPU) SetKey(index int, down bool) Outcome {
	if index < 0 || index > 15 {
		return IndexOutOfRange
	}
	if down {
		c.keys |= 1 << uint(index)
	} else {
		c.keys &^= 1 << uint(index)
	}
	return Success
}

// GetKey reports whether hex key index is currently held. It fails with
// IndexOutOfRange when index is outside [0, 15].
func (c *CPU) GetKey(index int) (bool, Outcome) {
	if index < 0 || index > 15 {
		return false, IndexOutOfRange
	}
	return c.keys&(1<<uint(index)) != 0, Success
}

// SetQuirks turns on every quirk named in flags.
func (c *CPU) SetQuirks(flags QuirkFlag) {
	if flags&QuirkShiftsUseVY != 0 {
		c.Quirks.ShiftsUseVY = true
	}
	if flags&QuirkBnnnUsesVX != 0 {
		c.Quirks.BnnnUsesVX = true
	}
	if flags&QuirkFxAutoIncI != 0 {
		c.Quirks.FxAutoIncI = true
	}
}

// ClearQuirks turns off every quirk named in flags.
func (c *CPU) ClearQuirks(flags QuirkFlag) {
	if flags&QuirkShiftsUseVY != 0 {
		c.Quirks.ShiftsUseVY = false
	}
	if flags&QuirkBnnnUsesVX != 0 {
		c.Quirks.BnnnUsesVX = false
	}
	if flags&QuirkFxAutoIncI != 0 {
		c.Quirks.FxAutoIncI = false
	}
}

// QuirkFlag is a bitmask selecting one or more Quirks fields for
// SetQuirks/ClearQuirks.
type QuirkFlag uint8

const (
	QuirkShiftsUseVY QuirkFlag = 1 << iota
	QuirkBnnnUsesVX
	QuirkFxAutoIncI
)

// Halted reports whether the step driver has transitioned out of
// Running; only Reset returns it to Running.
func (c *CPU) Halted() bool {
	return c.state == halted
}

// LastOutcome returns the terminal outcome that halted the driver, or
// Success if the CPU is still Running.
func (c *CPU) LastOutcome() Outcome {
	return c.last
}

// Framebuffer returns the 64x32 monochrome pixel grid, row-major, each
// cell 0 or 1. The returned slice aliases CPU-owned storage; callers
// that need a stable snapshot should copy it.
func (c *CPU) Framebuffer() []byte {
	return c.fb[:]
}

// StackDepth returns the number of valid return addresses currently on
// the call stack.
func (c *CPU) StackDepth() int {
	return c.stack.len()
}

// StackAt returns the raw call-stack entry at index i (0 is the oldest
// frame). Entries at i >= StackDepth() are not meaningful.
func (c *CPU) StackAt(i int) uint16 {
	return c.stack.at(i)
}

func (c *CPU) halt(o Outcome) {
	c.state = halted
	c.last = o
}
