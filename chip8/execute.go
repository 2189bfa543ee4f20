// execute.go - opcode decode and execution

package chip8

import "fmt"

// execute decodes op and mutates c according to its effect, returning
// the outcome of the attempt and a disassembled mnemonic of the
// instruction that was decoded (populated even on failure, since the
// decode itself always succeeds — only some effects can fail).
func (c *CPU) execute(op Opcode) (Outcome, string) {
	switch op.Nibble(3) {
	case 0x0:
		switch op.Byte() {
		case 0xE0:
			return c.opCLS()
		case 0xEE:
			return c.opRET()
		default:
			return InvalidOpcode, fmt.Sprintf("DW 0x%04X", uint16(op))
		}
	case 0x1:
		return c.opJP(op)
	case 0x2:
		return c.opCALL(op)
	case 0x3:
		return c.opSE_KK(op)
	case 0x4:
		return c.opSNE_KK(op)
	case 0x5:
		if op.N() != 0 {
			return InvalidOpcode, fmt.Sprintf("DW 0x%04X", uint16(op))
		}
		return c.opSE_VY(op)
	case 0x6:
		return c.opLD_KK(op)
	case 0x7:
		return c.opADD_KK(op)
	case 0x8:
		return c.opALU(op)
	case 0x9:
		if op.N() != 0 {
			return InvalidOpcode, fmt.Sprintf("DW 0x%04X", uint16(op))
		}
		return c.opSNE_VY(op)
	case 0xA:
		return c.opLD_I(op)
	case 0xB:
		return c.opJP_V0(op)
	case 0xC:
		return c.opRND(op)
	case 0xD:
		return c.opDRW(op)
	case 0xE:
		return c.opSkipKey(op)
	case 0xF:
		return c.opF(op)
	default:
		return InvalidOpcode, fmt.Sprintf("DW 0x%04X", uint16(op))
	}
}

func (c *CPU) opCLS() (Outcome, string) {
	c.fb = [framebufferSize]byte{}
	return Success, "CLS"
}

func (c *CPU) opRET() (Outcome, string) {
	addr, o := c.stack.pop()
	if !o.Ok() {
		return o, "RET"
	}
	c.PC = addr
	return Success, "RET"
}

func (c *CPU) opJP(op Opcode) (Outcome, string) {
	c.PC = op.NNN()
	return Success, fmt.Sprintf("JP 0x%03X", op.NNN())
}

func (c *CPU) opCALL(op Opcode) (Outcome, string) {
	o := c.stack.push(c.PC)
	if !o.Ok() {
		return o, fmt.Sprintf("CALL 0x%03X", op.NNN())
	}
	c.PC = op.NNN()
	return Success, fmt.Sprintf("CALL 0x%03X", op.NNN())
}

func (c *CPU) opSE_KK(op Opcode) (Outcome, string) {
	x, kk := op.X(), op.KK()
	if c.V[x] == kk {
		c.PC += 2
	}
	return Success, fmt.Sprintf("SE V%X, 0x%02X", x, kk)
}

func (c *CPU) opSNE_KK(op Opcode) (Outcome, string) {
	x, kk := op.X(), op.KK()
	if c.V[x] != kk {
		c.PC += 2
	}
	return Success, fmt.Sprintf("SNE V%X, 0x%02X", x, kk)
}

func (c *CPU) opSE_VY(op Opcode) (Outcome, string) {
	x, y := op.X(), op.Y()
	if c.V[x] == c.V[y] {
		c.PC += 2
	}
	return Success, fmt.Sprintf("SE V%X, V%X", x, y)
}

func (c *CPU) opSNE_VY(op Opcode) (Outcome, string) {
	x, y := op.X(), op.Y()
	if c.V[x] != c.V[y] {
		c.PC += 2
	}
	return Success, fmt.Sprintf("SNE V%X, V%X", x, y)
}

func (c *CPU) opLD_KK(op Opcode) (Outcome, string) {
	x, kk := op.X(), op.KK()
	c.V[x] = kk
	return Success, fmt.Sprintf("LD V%X, 0x%02X", x, kk)
}

func (c *CPU) opADD_KK(op Opcode) (Outcome, string) {
	x, kk := op.X(), op.KK()
	c.V[x] += kk // VF is not modified
	return Success, fmt.Sprintf("ADD V%X, 0x%02X", x, kk)
}

// opALU handles the 8XYn register-to-register family. VF is always
// computed into a local and assigned last, after V[X] holds its result,
// so that X == 0xF or Y == 0xF behaves correctly (see spec.md §4.4).
func (c *CPU) opALU(op Opcode) (Outcome, string) {
	x, y := op.X(), op.Y()
	switch op.N() {
	case 0x0:
		c.V[x] = c.V[y]
		return Success, fmt.Sprintf("LD V%X, V%X", x, y)
	case 0x1:
		c.V[x] |= c.V[y]
		return Success, fmt.Sprintf("OR V%X, V%X", x, y)
	case 0x2:
		c.V[x] &= c.V[y]
		return Success, fmt.Sprintf("AND V%X, V%X", x, y)
	case 0x3:
		c.V[x] ^= c.V[y]
		return Success, fmt.Sprintf("XOR V%X, V%X", x, y)
	case 0x4:
		sum := int(c.V[x]) + int(c.V[y])
		c.V[x] = byte(sum)
		flag := byte(0)
		if sum > 0xFF {
			flag = 1
		}
		c.V[0xF] = flag
		return Success, fmt.Sprintf("ADD V%X, V%X", x, y)
	case 0x5:
		vx, vy := c.V[x], c.V[y]
		flag := byte(0)
		if vx >= vy {
			flag = 1
		}
		c.V[x] = vx - vy
		c.V[0xF] = flag
		return Success, fmt.Sprintf("SUB V%X, V%X", x, y)
	case 0x6:
		src := c.V[x]
		if c.Quirks.ShiftsUseVY {
			src = c.V[y]
		}
		lsb := src & 1
		c.V[x] = src >> 1
		c.V[0xF] = lsb
		return Success, fmt.Sprintf("SHR V%X", x)
	case 0x7:
		vx, vy := c.V[x], c.V[y]
		flag := byte(0)
		if vy >= vx {
			flag = 1
		}
		c.V[x] = vy - vx
		c.V[0xF] = flag
		return Success, fmt.Sprintf("SUBN V%X, V%X", x, y)
	case 0xE:
		src := c.V[x]
		if c.Quirks.ShiftsUseVY {
			src = c.V[y]
		}
		msb := (src & 0x80) >> 7
		c.V[x] = src << 1
		c.V[0xF] = msb
		return Success, fmt.Sprintf("SHL V%X", x)
	default:
		return InvalidOpcode, fmt.Sprintf("DW 0x%04X", uint16(op))
	}
}

func (c *CPU) opLD_I(op Opcode) (Outcome, string) {
	c.I = op.NNN()
	return Success, fmt.Sprintf("LD I, 0x%03X", op.NNN())
}

func (c *CPU) opJP_V0(op Opcode) (Outcome, string) {
	if c.Quirks.BnnnUsesVX {
		x := op.X()
		c.PC = op.NNN() + uint16(c.V[x])
		return Success, fmt.Sprintf("JP V%X, 0x%03X", x, op.NNN())
	}
	c.PC = op.NNN() + uint16(c.V[0])
	return Success, fmt.Sprintf("JP V0, 0x%03X", op.NNN())
}

func (c *CPU) opRND(op Opcode) (Outcome, string) {
	x, kk := op.X(), op.KK()
	c.V[x] = byte(c.rng.Intn(256)) & kk
	return Success, fmt.Sprintf("RND V%X, 0x%02X", x, kk)
}

func (c *CPU) opSkipKey(op Opcode) (Outcome, string) {
	switch op.KK() {
	case 0x9E:
		x := op.X()
		held, o := c.GetKey(int(c.V[x]))
		if !o.Ok() {
			return o, fmt.Sprintf("SKP V%X", x)
		}
		if held {
			c.PC += 2
		}
		return Success, fmt.Sprintf("SKP V%X", x)
	case 0xA1:
		x := op.X()
		held, o := c.GetKey(int(c.V[x]))
		if !o.Ok() {
			return o, fmt.Sprintf("SKNP V%X", x)
		}
		if !held {
			c.PC += 2
		}
		return Success, fmt.Sprintf("SKNP V%X", x)
	default:
		return InvalidOpcode, fmt.Sprintf("DW 0x%04X", uint16(op))
	}
}

func (c *CPU) opF(op Opcode) (Outcome, string) {
	x := op.X()
	switch op.KK() {
	case 0x07:
		c.V[x] = c.DT
		return Success, fmt.Sprintf("LD V%X, DT", x)
	case 0x0A:
		return c.opWaitKey(x)
	case 0x15:
		c.DT = c.V[x]
		return Success, fmt.Sprintf("LD DT, V%X", x)
	case 0x18:
		c.ST = c.V[x]
		return Success, fmt.Sprintf("LD ST, V%X", x)
	case 0x1E:
		c.I = (c.I + uint16(c.V[x])) & 0x0FFF
		return Success, fmt.Sprintf("ADD I, V%X", x)
	case 0x29:
		c.I = FontsetBase + fontGlyphSize*uint16(c.V[x]&0x0F)
		return Success, fmt.Sprintf("LD F, V%X", x)
	case 0x33:
		return c.opBCD(x)
	case 0x55:
		return c.opStoreRegs(x)
	case 0x65:
		return c.opLoadRegs(x)
	default:
		return InvalidOpcode, fmt.Sprintf("DW 0x%04X", uint16(op))
	}
}

func (c *CPU) opWaitKey(x byte) (Outcome, string) {
	if c.keys == 0 {
		c.PC -= 2
		return Success, fmt.Sprintf("LD V%X, K", x)
	}
	for k := 0; k < 16; k++ {
		if c.keys&(1<<uint(k)) != 0 {
			c.V[x] = byte(k)
			break
		}
	}
	return Success, fmt.Sprintf("LD V%X, K", x)
}

func (c *CPU) opBCD(x byte) (Outcome, string) {
	if uint32(c.I)+2 > 0xFFF {
		return MemOutOfBounds, fmt.Sprintf("LD B, V%X", x)
	}
	d := c.V[x]
	c.Memory[c.I] = d / 100
	c.Memory[c.I+1] = (d / 10) % 10
	c.Memory[c.I+2] = d % 10
	return Success, fmt.Sprintf("LD B, V%X", x)
}

func (c *CPU) opStoreRegs(x byte) (Outcome, string) {
	if uint32(c.I)+uint32(x) > 0xFFF {
		return MemOutOfBounds, fmt.Sprintf("LD [I], V%X", x)
	}
	for i := 0; i <= int(x); i++ {
		c.Memory[c.I+uint16(i)] = c.V[i]
	}
	if c.Quirks.FxAutoIncI {
		c.I += uint16(x) + 1
	}
	return Success, fmt.Sprintf("LD [I], V%X", x)
}

func (c *CPU) opLoadRegs(x byte) (Outcome, string) {
	if uint32(c.I)+uint32(x) > 0xFFF {
		return MemOutOfBounds, fmt.Sprintf("LD V%X, [I]", x)
	}
	for i := 0; i <= int(x); i++ {
		c.V[i] = c.Memory[c.I+uint16(i)]
	}
	if c.Quirks.FxAutoIncI {
		c.I += uint16(x) + 1
	}
	return Success, fmt.Sprintf("LD V%X, [I]", x)
}
