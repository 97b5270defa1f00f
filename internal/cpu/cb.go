package cpu

// executeCB runs one 0xCB-prefixed instruction, recovered by splitting
// the byte into a 2-bit group, 3-bit operation/bit-index, and 3-bit
// operand register — the regular structure of the CB opcode table.
func (c *CPU) executeCB(opcode uint8) {
	group := opcode >> 6 // 0 = rotate/shift, 1 = BIT, 2 = RES, 3 = SET
	n := (opcode >> 3) & 7
	reg := opcode & 7

	v := c.getR8(reg)

	switch group {
	case 0:
		var result uint8
		switch n {
		case 0:
			result = c.rlc(v)
		case 1:
			result = c.rrc(v)
		case 2:
			result = c.rl(v)
		case 3:
			result = c.rr(v)
		case 4:
			result = c.sla(v)
		case 5:
			result = c.sra(v)
		case 6:
			result = c.swap(v)
		default:
			result = c.srl(v)
		}
		c.setR8(reg, result)
	case 1:
		c.bit(n, v)
	case 2:
		c.setR8(reg, v&^(1<<n))
	default:
		c.setR8(reg, v|(1<<n))
	}
}
