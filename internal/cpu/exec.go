package cpu

// rawPush16 writes v onto the stack without any extra internal cycle;
// callers add the internal cycle precisely where the real instruction
// timing calls for one (PUSH rr, CALL, RST).
func (c *CPU) rawPush16(v uint16) {
	c.SP--
	c.write8(c.SP, uint8(v>>8))
	c.SP--
	c.write8(c.SP, uint8(v))
}

func (c *CPU) call(target uint16) {
	c.internalCycle()
	c.rawPush16(c.PC)
	c.PC = target
}

// execute decodes and runs one instruction, opcode having already been
// fetched (and PC advanced past it).
func (c *CPU) execute(opcode uint8) {
	switch {
	case opcode >= 0x40 && opcode <= 0x7F:
		if opcode == 0x76 {
			c.Halt = true
			return
		}
		dst := (opcode >> 3) & 7
		src := opcode & 7
		c.setR8(dst, c.getR8(src))
		return
	case opcode >= 0x80 && opcode <= 0xBF:
		group := (opcode >> 3) & 7
		v := c.getR8(opcode & 7)
		switch group {
		case 0:
			c.addA(v)
		case 1:
			c.adcA(v)
		case 2:
			c.subA(v)
		case 3:
			c.sbcA(v)
		case 4:
			c.andA(v)
		case 5:
			c.xorA(v)
		case 6:
			c.orA(v)
		case 7:
			c.cpA(v)
		}
		return
	}

	switch opcode {
	case 0x00: // NOP
	case 0x01, 0x11, 0x21, 0x31:
		c.setR16((opcode>>4)&3, c.fetch16())
	case 0x02:
		c.write8(c.BC(), c.A)
	case 0x12:
		c.write8(c.DE(), c.A)
	case 0x22:
		hl := c.HL()
		c.write8(hl, c.A)
		c.SetHL(hl + 1)
	case 0x32:
		hl := c.HL()
		c.write8(hl, c.A)
		c.SetHL(hl - 1)
	case 0x03, 0x13, 0x23, 0x33:
		idx := (opcode >> 4) & 3
		c.setR16(idx, c.getR16(idx)+1)
		c.internalCycle()
	case 0x0B, 0x1B, 0x2B, 0x3B:
		idx := (opcode >> 4) & 3
		c.setR16(idx, c.getR16(idx)-1)
		c.internalCycle()
	case 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C:
		idx := (opcode >> 3) & 7
		c.setR8(idx, c.inc8(c.getR8(idx)))
	case 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D:
		idx := (opcode >> 3) & 7
		c.setR8(idx, c.dec8(c.getR8(idx)))
	case 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E:
		idx := (opcode >> 3) & 7
		c.setR8(idx, c.fetch8())
	case 0x07:
		c.A = c.rlc(c.A)
		c.setZ(false)
	case 0x0F:
		c.A = c.rrc(c.A)
		c.setZ(false)
	case 0x17:
		c.A = c.rl(c.A)
		c.setZ(false)
	case 0x1F:
		c.A = c.rr(c.A)
		c.setZ(false)
	case 0x08:
		addr := c.fetch16()
		sp := c.SP
		c.write8(addr, uint8(sp))
		c.write8(addr+1, uint8(sp>>8))
	case 0x09, 0x19, 0x29, 0x39:
		c.addHL(c.getR16((opcode >> 4) & 3))
		c.internalCycle()
	case 0x0A:
		c.A = c.read8(c.BC())
	case 0x1A:
		c.A = c.read8(c.DE())
	case 0x2A:
		hl := c.HL()
		c.A = c.read8(hl)
		c.SetHL(hl + 1)
	case 0x3A:
		hl := c.HL()
		c.A = c.read8(hl)
		c.SetHL(hl - 1)
	case 0x10: // STOP
		c.fetch8()
		if c.mem.KEY1&0x01 != 0 {
			c.mem.KEY1 ^= 0x80
			c.mem.KEY1 &^= 0x01
		}
	case 0x18:
		e := int8(c.fetch8())
		c.internalCycle()
		c.PC = uint16(int32(c.PC) + int32(e))
	case 0x20, 0x28, 0x30, 0x38:
		e := int8(c.fetch8())
		if c.condition((opcode >> 3) & 3) {
			c.internalCycle()
			c.PC = uint16(int32(c.PC) + int32(e))
		}
	case 0x27:
		c.daa()
	case 0x2F:
		c.A = ^c.A
		c.setN(true)
		c.setH(true)
	case 0x37:
		c.setN(false)
		c.setH(false)
		c.setC(true)
	case 0x3F:
		c.setN(false)
		c.setH(false)
		c.setC(!c.FlagC())

	case 0xC6:
		c.addA(c.fetch8())
	case 0xCE:
		c.adcA(c.fetch8())
	case 0xD6:
		c.subA(c.fetch8())
	case 0xDE:
		c.sbcA(c.fetch8())
	case 0xE6:
		c.andA(c.fetch8())
	case 0xEE:
		c.xorA(c.fetch8())
	case 0xF6:
		c.orA(c.fetch8())
	case 0xFE:
		c.cpA(c.fetch8())

	case 0xC1, 0xD1, 0xE1:
		idx := (opcode >> 4) & 3
		c.setR16(idx, c.pop16())
	case 0xF1:
		c.SetAF(c.pop16())
	case 0xC5, 0xD5, 0xE5:
		idx := (opcode >> 4) & 3
		c.internalCycle()
		c.rawPush16(c.getR16(idx))
	case 0xF5:
		c.internalCycle()
		c.rawPush16(c.AF())

	case 0xC2, 0xCA, 0xD2, 0xDA:
		nn := c.fetch16()
		if c.condition((opcode >> 3) & 3) {
			c.internalCycle()
			c.PC = nn
		}
	case 0xC3:
		nn := c.fetch16()
		c.internalCycle()
		c.PC = nn
	case 0xE9:
		c.PC = c.HL()

	case 0xC4, 0xCC, 0xD4, 0xDC:
		nn := c.fetch16()
		if c.condition((opcode >> 3) & 3) {
			c.call(nn)
		}
	case 0xCD:
		nn := c.fetch16()
		c.call(nn)

	case 0xC0, 0xC8, 0xD0, 0xD8:
		c.internalCycle()
		if c.condition((opcode >> 3) & 3) {
			pc := c.pop16()
			c.internalCycle()
			c.PC = pc
		}
	case 0xC9:
		pc := c.pop16()
		c.internalCycle()
		c.PC = pc
	case 0xD9:
		pc := c.pop16()
		c.internalCycle()
		c.PC = pc
		c.IME = true

	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF:
		c.call(uint16(opcode & 0x38))

	case 0xCB:
		c.executeCB(c.fetch8())

	case 0xE0:
		n := c.fetch8()
		c.write8(0xFF00+uint16(n), c.A)
	case 0xF0:
		n := c.fetch8()
		c.A = c.read8(0xFF00 + uint16(n))
	case 0xE2:
		c.write8(0xFF00+uint16(c.C), c.A)
	case 0xF2:
		c.A = c.read8(0xFF00 + uint16(c.C))
	case 0xEA:
		addr := c.fetch16()
		c.write8(addr, c.A)
	case 0xFA:
		addr := c.fetch16()
		c.A = c.read8(addr)

	case 0xE8:
		e := int8(c.fetch8())
		result := c.addSPSigned(e)
		c.internalCycle()
		c.internalCycle()
		c.SP = result
	case 0xF8:
		e := int8(c.fetch8())
		result := c.addSPSigned(e)
		c.internalCycle()
		c.SetHL(result)
	case 0xF9:
		c.SP = c.HL()
		c.internalCycle()

	case 0xF3:
		c.IME = false
		c.eiPending = false
	case 0xFB:
		c.eiPending = true

	default:
		c.fatal("illegal opcode 0x%02X at PC=0x%04X", opcode, c.PC-1)
	}
}
