package apu

import "github.com/tobu-wr/CppGB/internal/mmu"

// waveChannel generates channel 3, which plays back the 32 4-bit
// samples in waveform RAM (0xFF30-0xFF3F).
type waveChannel struct {
	mem *mmu.MemoryMap

	prevTrigger bool
	triggerT    float64
	step        float64
}

func (c *waveChannel) restart(t float64) {
	c.triggerT = t
	c.step = 0
	c.mem.Sound[regNR52] |= 0x04
}

func (c *waveChannel) sample(t float64, nr51, divSO1, divSO2 uint8) int {
	hi := c.mem.Sound[regNR34]
	trigger := hi&0x80 != 0
	if trigger && !c.prevTrigger {
		c.restart(t)
	}
	c.prevTrigger = trigger

	dt := t - c.triggerT
	if hi&0x40 != 0 {
		nr31 := c.mem.Sound[regNR31]
		lengthSeconds := float64(256-int(nr31)) / 256
		if dt >= lengthSeconds {
			c.mem.Sound[regNR52] &^= 0x04
			return 0
		}
	}

	lo := c.mem.Sound[regNR33]
	x := (uint16(hi&7) << 8) | uint16(lo)
	if x >= 2048 {
		return 0
	}
	f := 2097152.0 / float64(2048-x)
	c.step += f / SampleRate
	for c.step >= 32 {
		c.step -= 32
	}

	idx := int(c.step)
	b := c.mem.WaveRAM[idx/2]
	var nibble uint8
	if idx%2 == 0 {
		nibble = b >> 4
	} else {
		nibble = b & 0x0F
	}

	var shift uint8
	switch (c.mem.Sound[regNR32] >> 5) & 3 {
	case 0:
		shift = 4 // mute
	case 1:
		shift = 0
	case 2:
		shift = 1
	case 3:
		shift = 2
	}
	level := nibble >> shift

	out := 0
	if nr51&0x04 != 0 {
		out += int(level) / int(divSO1)
	}
	if nr51&0x40 != 0 {
		out += int(level) / int(divSO2)
	}
	return out
}
