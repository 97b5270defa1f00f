// Package apu implements the sound generator: four synthesis channels
// pulled on demand by the host adapter's audio pull to fill a PCM buffer.
// Each channel's hot state (phase accumulators, envelope/sweep timers)
// lives in its own struct rather than function-local statics, so a
// fresh APU has no state leaking across ROM restarts.
package apu

import "github.com/tobu-wr/CppGB/internal/mmu"

const SampleRate = 48000

// register offsets into mmu.MemoryMap.Sound, indexed from NR10 at 0.
const (
	regNR10 = 0x00
	regNR11 = 0x01
	regNR12 = 0x02
	regNR13 = 0x03
	regNR14 = 0x04
	regNR21 = 0x06
	regNR22 = 0x07
	regNR23 = 0x08
	regNR24 = 0x09
	regNR30 = 0x0A
	regNR31 = 0x0B
	regNR32 = 0x0C
	regNR33 = 0x0D
	regNR34 = 0x0E
	regNR41 = 0x10
	regNR42 = 0x11
	regNR43 = 0x12
	regNR44 = 0x13
	regNR50 = 0x14
	regNR51 = 0x15
	regNR52 = 0x16
)

// APU owns the four channel generators and the shared sample clock
// they measure elapsed time against.
type APU struct {
	mem *mmu.MemoryMap

	sampleIndex uint64

	ch1 squareChannel
	ch2 squareChannel
	ch3 waveChannel
	ch4 noiseChannel
}

// New constructs a sound generator reading registers from mem.
func New(mem *mmu.MemoryMap) *APU {
	a := &APU{mem: mem}
	a.ch1 = squareChannel{mem: mem, hasSweep: true, sweepIdx: regNR10, durIdx: regNR11, envIdx: regNR12, loIdx: regNR13, hiIdx: regNR14, enableBit: 0x01, so1Bit: 0x01, so2Bit: 0x10}
	a.ch2 = squareChannel{mem: mem, durIdx: regNR21, envIdx: regNR22, loIdx: regNR23, hiIdx: regNR24, enableBit: 0x02, so1Bit: 0x02, so2Bit: 0x20}
	a.ch3 = waveChannel{mem: mem}
	a.ch4 = noiseChannel{mem: mem}
	return a
}

// Generate fills buf with N bytes of unsigned 8-bit mono PCM, mixing
// each enabled channel down through NR50/NR51's output-level and
// panning controls.
func (a *APU) Generate(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}

	if a.mem.Sound[regNR52]&0x80 == 0 {
		return
	}

	nr50 := a.mem.Sound[regNR50]
	divSO1 := 8 - (nr50 & 7)
	divSO2 := 8 - ((nr50 >> 4) & 7)
	nr51 := a.mem.Sound[regNR51]

	for i := range buf {
		t := float64(a.sampleIndex) / SampleRate
		var acc int

		if a.mem.Sound[regNR52]&0x01 != 0 && envelopeActive(a.mem.Sound[regNR12]) {
			acc += a.ch1.sample(t, nr51, divSO1, divSO2)
		}
		if a.mem.Sound[regNR52]&0x02 != 0 && envelopeActive(a.mem.Sound[regNR22]) {
			acc += a.ch2.sample(t, nr51, divSO1, divSO2)
		}
		if a.mem.Sound[regNR52]&0x04 != 0 {
			acc += a.ch3.sample(t, nr51, divSO1, divSO2)
		}
		if a.mem.Sound[regNR52]&0x08 != 0 && envelopeActive(a.mem.Sound[regNR42]) {
			acc += a.ch4.sample(t, nr51, divSO1, divSO2)
		}

		if acc > 255 {
			acc = 255
		} else if acc < 0 {
			acc = 0
		}
		buf[i] = uint8(acc)
		a.sampleIndex++
	}
}

// envelopeActive reports whether an NRx2-style envelope register is
// "non-trivial": initial volume non-zero or direction bit set.
func envelopeActive(nrx2 uint8) bool {
	return nrx2&0xF8 != 0
}
