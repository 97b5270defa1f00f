package cpu

// r8 indexes the eight operand positions shared by the regular LD r,r'
// (0x40-0x7F) and ALU A,r (0x80-0xBF) grids, plus the CB-prefixed
// table: register index 6 is not a register at all but the (HL)
// memory operand.
const (
	r8B = iota
	r8C
	r8D
	r8E
	r8H
	r8L
	r8HL
	r8A
)

func (c *CPU) getR8(idx uint8) uint8 {
	switch idx {
	case r8B:
		return c.B
	case r8C:
		return c.C
	case r8D:
		return c.D
	case r8E:
		return c.E
	case r8H:
		return c.H
	case r8L:
		return c.L
	case r8HL:
		return c.read8(c.HL())
	default:
		return c.A
	}
}

func (c *CPU) setR8(idx uint8, v uint8) {
	switch idx {
	case r8B:
		c.B = v
	case r8C:
		c.C = v
	case r8D:
		c.D = v
	case r8E:
		c.E = v
	case r8H:
		c.H = v
	case r8L:
		c.L = v
	case r8HL:
		c.write8(c.HL(), v)
	default:
		c.A = v
	}
}

// r16 indexes the four 16-bit register-pair operand positions used by
// the 0x00-0x3F grid's INC/DEC/ADD/LD-immediate rows.
const (
	r16BC = iota
	r16DE
	r16HL
	r16SP
)

func (c *CPU) getR16(idx uint8) uint16 {
	switch idx {
	case r16BC:
		return c.BC()
	case r16DE:
		return c.DE()
	case r16HL:
		return c.HL()
	default:
		return c.SP
	}
}

func (c *CPU) setR16(idx uint8, v uint16) {
	switch idx {
	case r16BC:
		c.SetBC(v)
	case r16DE:
		c.SetDE(v)
	case r16HL:
		c.SetHL(v)
	default:
		c.SP = v
	}
}

// condition evaluates one of the four branch conditions encoded in
// bits 3-4 of a conditional jump/call/return opcode.
func (c *CPU) condition(idx uint8) bool {
	switch idx {
	case 0:
		return !c.Z()
	case 1:
		return c.Z()
	case 2:
		return !c.FlagC()
	default:
		return c.FlagC()
	}
}
