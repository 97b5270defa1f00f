// Package ppu implements the pixel pipeline: the mode-based state
// machine that drives raster timing and, at the start of each
// horizontal-blank, composites one scanline of background, window and
// sprite pixels into the frame buffer.
package ppu

import (
	"github.com/tobu-wr/CppGB/internal/interrupts"
	"github.com/tobu-wr/CppGB/internal/mmu"
	"github.com/tobu-wr/CppGB/internal/types"
)

// Mode is the pixel pipeline's current raster state.
type Mode uint8

const (
	ModeHBlank Mode = iota
	ModeVBlank
	ModeOAMScan
	ModeXFER
)

const (
	ScreenWidth  = 160
	ScreenHeight = 144

	cyclesOAMScan = 20
	cyclesXFER    = 43
	cyclesHBlank  = 51
	cyclesPerLine = 114
)

// Pixel is one composited screen pixel, carrying both the DMG 2-bit
// shade and the CGB 15-bit color so the frame sink can pick whichever
// the running model needs.
type Pixel struct {
	DMGColor uint8    // 0-3
	CGBColor [3]uint8 // 5-bit-per-channel, left-justified into a byte each
}

// FrameSink receives one composited frame per draw, a row-major
// ScreenWidth x ScreenHeight buffer, along with the model that
// produced it so the sink knows which of Pixel's two color
// representations to read.
type FrameSink interface {
	DeliverFrame(frame *[ScreenHeight][ScreenWidth]Pixel, model types.Model)
}

// PPU holds the pipeline's mode timer and the frame buffer it
// composites scanlines into.
type PPU struct {
	mem *mmu.MemoryMap
	irq *interrupts.Service

	mode    Mode
	counter int

	frame      [ScreenHeight][ScreenWidth]Pixel
	sink       FrameSink
	wasEnabled bool

	// wly is the internal window line counter, only advanced on lines
	// where the window was actually drawn.
	wly int
}

// New constructs a pixel pipeline over mem, requesting interrupts
// through irq and delivering completed frames to sink.
func New(mem *mmu.MemoryMap, irq *interrupts.Service, sink FrameSink) *PPU {
	return &PPU{mem: mem, irq: irq, sink: sink, mode: ModeOAMScan}
}

// Tick advances the pipeline by one machine cycle through the
// OAM-scan/transfer/HBlank/VBlank mode state machine. Called once per
// cycle from the CPU's clock advance, except that in double-speed mode
// the caller invokes it only on every other call.
func (p *PPU) Tick() {
	enabled := p.mem.LCDC&0x80 != 0
	if !enabled {
		if p.wasEnabled {
			p.mem.SetLY(0)
			p.setMode(ModeHBlank)
			p.counter = 0
		}
		p.wasEnabled = false
		return
	}
	p.wasEnabled = true

	p.counter++
	switch p.mode {
	case ModeOAMScan:
		if p.counter >= cyclesOAMScan {
			p.counter = 0
			p.setMode(ModeXFER)
		}
	case ModeXFER:
		if p.counter >= cyclesXFER {
			p.counter = 0
			p.compositeLine()
			p.mem.PerformHDMA()
			if p.mem.STAT&0x08 != 0 {
				p.irq.Request(types.IntLCDStat)
			}
			p.setMode(ModeHBlank)
		}
	case ModeHBlank:
		if p.counter >= cyclesHBlank {
			p.counter = 0
			ly := p.mem.LY + 1
			if ly < ScreenHeight {
				p.mem.SetLY(ly)
				p.setMode(ModeOAMScan)
			} else {
				p.mem.SetLY(ly)
				p.setMode(ModeVBlank)
				p.sink.DeliverFrame(&p.frame, p.mem.Model)
				p.irq.Request(types.IntVBlank)
			}
		}
	case ModeVBlank:
		if p.counter >= cyclesPerLine {
			p.counter = 0
			if p.mem.LY == 153 {
				p.mem.SetLY(0)
				p.wly = 0
				p.setMode(ModeOAMScan)
			} else {
				p.mem.SetLY(p.mem.LY + 1)
			}
		}
	}
}

// setMode updates STAT's mode bits, requesting an LCDSTAT interrupt on
// the OAMSCAN/VBLANK entry conditions STAT bits 5/4 gate.
func (p *PPU) setMode(m Mode) {
	p.mode = m
	p.mem.STAT = (p.mem.STAT &^ 0x03) | uint8(m)
	switch m {
	case ModeOAMScan:
		if p.mem.STAT&0x20 != 0 {
			p.irq.Request(types.IntLCDStat)
		}
	case ModeVBlank:
		if p.mem.STAT&0x10 != 0 {
			p.irq.Request(types.IntLCDStat)
		}
	}
}
