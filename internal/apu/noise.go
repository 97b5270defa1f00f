package apu

import "github.com/tobu-wr/CppGB/internal/mmu"

// noiseChannel generates channel 4, a pseudo-random bitstream from a
// 15-bit linear feedback shift register clocked at a rate derived
// from NR43.
type noiseChannel struct {
	mem *mmu.MemoryMap

	prevTrigger bool
	triggerT    float64
	acc         float64
	lfsr        uint16
}

func (c *noiseChannel) restart(t float64) {
	c.triggerT = t
	c.acc = 0
	c.lfsr = 0x7FFF
	c.mem.Sound[regNR52] |= 0x08
}

func (c *noiseChannel) stepRate() float64 {
	nr43 := c.mem.Sound[regNR43]
	r := nr43 & 0x07
	s := (nr43 >> 4) & 0x0F
	divisor := 0.5
	if r != 0 {
		divisor = float64(r)
	}
	return 524288.0 / divisor / float64(uint32(1)<<(s+1))
}

func (c *noiseChannel) sample(t float64, nr51, divSO1, divSO2 uint8) int {
	hi := c.mem.Sound[regNR44]
	trigger := hi&0x80 != 0
	if trigger && !c.prevTrigger {
		c.restart(t)
	}
	c.prevTrigger = trigger

	dt := t - c.triggerT
	if hi&0x40 != 0 {
		nr41 := c.mem.Sound[regNR41]
		lengthSeconds := float64(64-(nr41&0x3F)) / 256
		if dt >= lengthSeconds {
			c.mem.Sound[regNR52] &^= 0x08
			return 0
		}
	}

	c.acc += c.stepRate() / SampleRate
	nr43 := c.mem.Sound[regNR43]
	narrow := nr43&0x08 != 0
	for c.acc >= 1 {
		c.acc -= 1
		xor := (c.lfsr & 1) ^ ((c.lfsr >> 1) & 1)
		c.lfsr >>= 1
		c.lfsr |= xor << 14
		if narrow {
			c.lfsr = (c.lfsr &^ (1 << 6)) | (xor << 6)
		}
	}

	if c.lfsr&1 == 0 {
		return 0
	}

	envReg := c.mem.Sound[regNR42]
	initial := envReg >> 4
	envPeriod := envReg & 7
	var amplitude uint8
	if envPeriod == 0 {
		amplitude = initial
	} else {
		freq := 64.0 / float64(envPeriod)
		steps := int(freq * dt)
		if envReg&0x08 != 0 {
			amplitude = clamp(int(initial)+steps, 0, 15)
		} else {
			amplitude = clamp(int(initial)-steps, 0, 15)
		}
	}

	out := 0
	if nr51&0x08 != 0 {
		out += int(amplitude) / int(divSO1)
	}
	if nr51&0x80 != 0 {
		out += int(amplitude) / int(divSO2)
	}
	return out
}
