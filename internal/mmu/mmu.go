// Package mmu implements the central memory map: it owns every RAM
// bank, the loaded cartridge, and every MMIO register byte, and
// exposes the 8-bit read/write surface plus OAM DMA and HDMA block
// transfers. It is the single owning data structure that the CPU,
// pixel pipeline and sound generator all take a reference to, rather
// than a web of cross-referencing components.
package mmu

import (
	"github.com/tobu-wr/CppGB/internal/cartridge"
	"github.com/tobu-wr/CppGB/internal/interrupts"
	"github.com/tobu-wr/CppGB/internal/joypad"
	"github.com/tobu-wr/CppGB/internal/serial"
	"github.com/tobu-wr/CppGB/internal/timer"
	"github.com/tobu-wr/CppGB/internal/types"
	"github.com/tobu-wr/CppGB/pkg/log"
)

// MemoryMap is the Game Boy's 64KiB address space and every
// memory-mapped register behind it.
type MemoryMap struct {
	Cart   *cartridge.Cartridge
	IRQ    *interrupts.Service
	Timer  *timer.Controller
	Joypad *joypad.Controller
	Serial *serial.Controller
	Model  types.Model
	Log    log.Logger

	// Display RAM, two 8KiB banks; bank 1 only meaningful in color mode.
	VRAM     [2][0x2000]byte
	VRAMBank uint8

	// Work RAM, fixed bank 0 plus banks 1-7 switchable via SVBK.
	WRAM     [8][0x1000]byte
	WRAMBank uint8 // always 1-7; 0 is normalized to 1 on write

	OAM  [160]byte
	HRAM [0x7F]byte // 0xFF80-0xFFFE

	// Pixel pipeline registers (internal/ppu reads/writes these
	// directly rather than through accessor methods).
	LCDC, STAT             uint8
	SCY, SCX, LY, LYC      uint8
	WY, WX                 uint8
	BGP, OBP0, OBP1        uint8
	BCPS, OCPS             uint8
	BGPaletteRAM           [64]byte
	OBJPaletteRAM          [64]byte

	// HDMA registers.
	HDMA1, HDMA2, HDMA3, HDMA4, HDMA5 uint8
	hdma                              hdmaState
	lastDMA                           uint8

	// Sound registers, indexed by (address - 0xFF10); NR10 is index 0.
	// Bytes outside the defined register set (the gaps in the NRxx
	// range) simply read back whatever was last written, matching
	// open-bus-free MMIO behavior for this block.
	Sound   [0x17]byte
	WaveRAM [16]byte

	KEY1 uint8 // bit7 = current speed, bit0 = armed to switch
}

// New constructs a memory map over a loaded cartridge.
func New(cart *cartridge.Cartridge, irq *interrupts.Service, t *timer.Controller, jp *joypad.Controller, sc *serial.Controller, model types.Model, logger log.Logger) *MemoryMap {
	m := &MemoryMap{
		Cart:     cart,
		IRQ:      irq,
		Timer:    t,
		Joypad:   jp,
		Serial:   sc,
		Model:    model,
		Log:      logger,
		WRAMBank: 1,
		STAT:     0x80,
	}
	return m
}

// LoadSave preloads the cartridge's external RAM from a previously
// persisted save file.
func (m *MemoryMap) LoadSave(data []byte) {
	m.Cart.LoadRAM(data)
}

// Read returns the byte at addr across the full 64KiB address space.
// Unmapped holes read as 0xFF.
func (m *MemoryMap) Read(addr uint16) uint8 {
	switch {
	case addr < 0x8000:
		return m.Cart.Read(addr)
	case addr < 0xA000:
		return m.VRAM[m.vramBank()][addr-0x8000]
	case addr < 0xC000:
		return m.Cart.Read(addr)
	case addr < 0xD000:
		return m.WRAM[0][addr-0xC000]
	case addr < 0xE000:
		return m.WRAM[m.WRAMBank][addr-0xD000]
	case addr < 0xF000:
		return m.WRAM[0][addr-0xE000]
	case addr < 0xFE00:
		return m.WRAM[m.WRAMBank][addr-0xE000-0x1000]
	case addr < 0xFEA0:
		return m.OAM[addr-0xFE00]
	case addr < 0xFF00:
		return 0xFF
	case addr < 0xFF80:
		return m.readIO(addr)
	case addr < 0xFFFF:
		return m.HRAM[addr-0xFF80]
	default:
		return m.IRQ.Enable
	}
}

// Write delivers a write to addr. Writes into the ROM window are
// interpreted by the cartridge's bank controller; writes to unmapped
// holes are silently ignored.
func (m *MemoryMap) Write(addr uint16, v uint8) {
	switch {
	case addr < 0x8000:
		m.Cart.Write(addr, v)
	case addr < 0xA000:
		m.VRAM[m.vramBank()][addr-0x8000] = v
	case addr < 0xC000:
		m.Cart.Write(addr, v)
	case addr < 0xD000:
		m.WRAM[0][addr-0xC000] = v
	case addr < 0xE000:
		m.WRAM[m.WRAMBank][addr-0xD000] = v
	case addr < 0xF000:
		m.WRAM[0][addr-0xE000] = v
	case addr < 0xFE00:
		m.WRAM[m.WRAMBank][addr-0xE000-0x1000] = v
	case addr < 0xFEA0:
		m.OAM[addr-0xFE00] = v
	case addr < 0xFF00:
		// unmapped
	case addr < 0xFF80:
		m.writeIO(addr, v)
	case addr < 0xFFFF:
		m.HRAM[addr-0xFF80] = v
	default:
		m.IRQ.Enable = v
	}
}

// vramBank returns the display-RAM bank selected by VBK; always bank 0
// outside color mode.
func (m *MemoryMap) vramBank() uint8 {
	if m.Model == types.ModelCGB {
		return m.VRAMBank
	}
	return 0
}

// SetLY writes the LY register directly, requesting an LCDSTAT
// interrupt if it now equals LYC and the coincidence interrupt is
// enabled.
func (m *MemoryMap) SetLY(v uint8) {
	m.LY = v
	stat := m.STAT & 0xFB
	if m.LY == m.LYC {
		stat |= 0x04
		if m.STAT&0x40 != 0 {
			m.IRQ.Request(types.IntLCDStat)
		}
	}
	m.STAT = stat
}
