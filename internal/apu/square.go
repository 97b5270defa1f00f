package apu

import "github.com/tobu-wr/CppGB/internal/mmu"

// dutyTable holds the four 8-step rectangular waveforms selectable by
// NRx1 bits 6-7: 12.5%, 25%, 50%, 75% duty.
var dutyTable = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 1, 0},
}

// squareChannel generates channel 1 (with frequency sweep) and
// channel 2 (without), selected by hasSweep.
type squareChannel struct {
	mem *mmu.MemoryMap

	hasSweep                          bool
	sweepIdx, durIdx, envIdx          int
	loIdx, hiIdx                      int
	enableBit, so1Bit, so2Bit         uint8

	prevTrigger bool
	triggerT    float64
	phase       float64

	sweepShadow uint16
	sweepSteps  int
	silenced    bool
}

func clamp(v, lo, hi int) uint8 {
	if v < lo {
		return uint8(lo)
	}
	if v > hi {
		return uint8(hi)
	}
	return uint8(v)
}

func (c *squareChannel) frequency() uint16 {
	hi := c.mem.Sound[c.hiIdx]
	lo := c.mem.Sound[c.loIdx]
	return (uint16(hi&7) << 8) | uint16(lo)
}

func (c *squareChannel) restart(t float64) {
	c.triggerT = t
	c.phase = 0
	c.sweepShadow = c.frequency()
	c.sweepSteps = 0
	c.silenced = false
	c.mem.Sound[regNR52] |= c.enableBit
}

func (c *squareChannel) silence() {
	c.silenced = true
	c.mem.Sound[regNR52] &^= c.enableBit
}

func (c *squareChannel) sample(t float64, nr51, divSO1, divSO2 uint8) int {
	hi := c.mem.Sound[c.hiIdx]
	trigger := hi&0x80 != 0
	if trigger && !c.prevTrigger {
		c.restart(t)
	}
	c.prevTrigger = trigger

	if c.silenced {
		return 0
	}

	dt := t - c.triggerT

	if c.hasSweep {
		sweepReg := c.mem.Sound[c.sweepIdx]
		shift := sweepReg & 7
		period := float64((sweepReg&0x70)>>4) / 128
		if period > 0 && shift > 0 {
			negate := sweepReg&0x08 != 0
			target := int(dt / period)
			for c.sweepSteps < target {
				c.sweepSteps++
				delta := c.sweepShadow >> shift
				var next uint16
				if negate {
					next = c.sweepShadow - delta
				} else {
					next = c.sweepShadow + delta
				}
				if next > 2047 {
					c.silence()
					return 0
				}
				delta2 := next >> shift
				var next2 uint16
				if negate {
					next2 = next - delta2
				} else {
					next2 = next + delta2
				}
				if next2 > 2047 {
					c.silence()
					return 0
				}
				c.sweepShadow = next
				c.mem.Sound[c.loIdx] = uint8(c.sweepShadow & 0xFF)
				c.mem.Sound[c.hiIdx] = (c.mem.Sound[c.hiIdx] &^ 0x07) | uint8((c.sweepShadow>>8)&7)
			}
		}
	}

	nrx1 := c.mem.Sound[c.durIdx]
	if hi&0x40 != 0 {
		lengthSeconds := float64(64-(nrx1&0x3F)) / 256
		if dt >= lengthSeconds {
			c.silence()
			return 0
		}
	}

	x := c.frequency()
	if x >= 2048 {
		return 0
	}
	f := 1048576.0 / float64(2048-x)
	c.phase += f / SampleRate
	for c.phase >= 8 {
		c.phase -= 8
	}

	duty := (nrx1 >> 6) & 3
	bit := dutyTable[duty][int(c.phase)]
	if bit == 0 {
		return 0
	}

	envReg := c.mem.Sound[c.envIdx]
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
	if nr51&c.so1Bit != 0 {
		out += int(amplitude) / int(divSO1)
	}
	if nr51&c.so2Bit != 0 {
		out += int(amplitude) / int(divSO2)
	}
	return out
}
