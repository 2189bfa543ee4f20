// step.go - fetch/decode/execute driver

package chip8

// Step fetches the instruction at PC, advances PC by 2, decodes and
// executes it, decrements DT and ST once each if nonzero, and returns
// the outcome together with a disassembled mnemonic of the instruction
// that ran.
//
// While Running, any outcome other than Success transitions the CPU to
// Halted; the core does not auto-resume. While Halted, Step is a no-op
// that re-reports the last terminal outcome with an empty mnemonic —
// only Reset returns the CPU to Running.
func (c *CPU) Step() (Outcome, string) {
	if c.state == halted {
		return c.last, ""
	}

	if c.PC >= 0x0FFF {
		c.halt(MemOutOfBounds)
		return MemOutOfBounds, ""
	}

	word := uint16(c.Memory[c.PC])<<8 | uint16(c.Memory[c.PC+1])
	op := Opcode(word)
	c.PC += 2

	outcome, mnemonic := c.execute(op)

	if c.DT > 0 {
		c.DT--
	}
	if c.ST > 0 {
		c.ST--
	}

	if !outcome.Ok() {
		c.halt(outcome)
	}
	return outcome, mnemonic
}
