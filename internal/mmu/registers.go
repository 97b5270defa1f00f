package mmu

import "github.com/tobu-wr/CppGB/internal/types"

// readIO dispatches a read to one MMIO register, 0xFF00-0xFF7F.
func (m *MemoryMap) readIO(addr uint16) uint8 {
	switch addr {
	case types.P1:
		return m.Joypad.Read()
	case types.SB:
		return m.Serial.SB
	case types.SC:
		return m.Serial.SC
	case types.DIV:
		return m.Timer.DIV
	case types.TIMA:
		return m.Timer.TIMA
	case types.TMA:
		return m.Timer.TMA
	case types.TAC:
		return m.Timer.TAC | 0xF8
	case types.IF:
		return m.IRQ.Flag | 0xE0
	case types.LCDC:
		return m.LCDC
	case types.STAT:
		return m.STAT | 0x80
	case types.SCY:
		return m.SCY
	case types.SCX:
		return m.SCX
	case types.LY:
		return m.LY
	case types.LYC:
		return m.LYC
	case types.DMA:
		return m.lastDMA
	case types.BGP:
		return m.BGP
	case types.OBP0:
		return m.OBP0
	case types.OBP1:
		return m.OBP1
	case types.WY:
		return m.WY
	case types.WX:
		return m.WX
	case types.KEY1:
		return m.KEY1 | 0x7E
	case types.VBK:
		return m.VRAMBank | 0xFE
	case types.HDMA1:
		return m.HDMA1
	case types.HDMA2:
		return m.HDMA2
	case types.HDMA3:
		return m.HDMA3
	case types.HDMA4:
		return m.HDMA4
	case types.HDMA5:
		return m.HDMA5
	case types.BCPS:
		return m.BCPS | 0x40
	case types.BCPD:
		return m.BGPaletteRAM[m.BCPS&0x3F]
	case types.OCPS:
		return m.OCPS | 0x40
	case types.OCPD:
		return m.OBJPaletteRAM[m.OCPS&0x3F]
	case types.SVBK:
		return m.WRAMBank | 0xF8
	default:
		if addr >= types.WaveRAMStart && addr <= types.WaveRAMEnd {
			return m.WaveRAM[addr-types.WaveRAMStart]
		}
		if addr >= 0xFF10 && addr <= 0xFF26 {
			return m.Sound[addr-0xFF10] | soundReadMask(addr)
		}
		return 0xFF
	}
}

// writeIO dispatches a write to one MMIO register.
func (m *MemoryMap) writeIO(addr uint16, v uint8) {
	switch addr {
	case types.P1:
		m.Joypad.Write(v)
	case types.SB:
		m.Serial.SB = v
	case types.SC:
		m.Serial.WriteSC(v)
	case types.DIV:
		m.Timer.WriteDIV()
	case types.TIMA:
		m.Timer.TIMA = v
	case types.TMA:
		m.Timer.TMA = v
	case types.TAC:
		m.Timer.WriteTAC(v)
	case types.IF:
		m.IRQ.Flag = v & 0x1F
	case types.LCDC:
		m.writeLCDC(v)
	case types.STAT:
		m.STAT = (m.STAT & 0x07) | (v & 0x78)
	case types.SCY:
		m.SCY = v
	case types.SCX:
		m.SCX = v
	case types.LY:
		m.SetLY(0)
	case types.LYC:
		m.LYC = v
		m.SetLY(m.LY)
	case types.DMA:
		m.PerformOAMDMA(v)
	case types.BGP:
		m.BGP = v
	case types.OBP0:
		m.OBP0 = v
	case types.OBP1:
		m.OBP1 = v
	case types.WY:
		m.WY = v
	case types.WX:
		m.WX = v
	case types.KEY1:
		m.KEY1 = (m.KEY1 & 0x80) | (v & 0x01)
	case types.VBK:
		m.VRAMBank = v & 0x01
	case types.HDMA1:
		m.HDMA1 = v
	case types.HDMA2:
		m.HDMA2 = v & 0xF0
	case types.HDMA3:
		m.HDMA3 = v & 0x1F
	case types.HDMA4:
		m.HDMA4 = v & 0xF0
	case types.HDMA5:
		m.writeHDMA5(v)
	case types.BCPS:
		m.BCPS = v & 0xBF
	case types.BCPD:
		m.BGPaletteRAM[m.BCPS&0x3F] = v
		m.bumpPaletteIndex(&m.BCPS)
	case types.OCPS:
		m.OCPS = v & 0xBF
	case types.OCPD:
		m.OBJPaletteRAM[m.OCPS&0x3F] = v
		m.bumpPaletteIndex(&m.OCPS)
	case types.SVBK:
		bank := v & 0x07
		if bank == 0 {
			bank = 1
		}
		m.WRAMBank = bank
	default:
		if addr >= types.WaveRAMStart && addr <= types.WaveRAMEnd {
			m.WaveRAM[addr-types.WaveRAMStart] = v
			return
		}
		if addr >= 0xFF10 && addr <= 0xFF26 {
			m.Sound[addr-0xFF10] = v
		}
	}
}

func (m *MemoryMap) writeLCDC(v uint8) {
	wasEnabled := m.LCDC&0x80 != 0
	m.LCDC = v
	if wasEnabled && v&0x80 == 0 {
		m.SetLY(0)
		m.STAT = m.STAT &^ 0x03 // HBLANK
	}
}

// bumpPaletteIndex advances a BCPS/OCPS index if its auto-increment bit
// (bit 7) is set, wrapping the 6-bit index and clearing bit 6.
func (m *MemoryMap) bumpPaletteIndex(reg *uint8) {
	if *reg&0x80 == 0 {
		return
	}
	idx := (*reg & 0x3F) + 1
	*reg = 0x80 | (idx & 0x3F)
}

// soundReadMask returns the bits that always read as 1 for a given
// NRxx register, matching the write-only bits documented for each
// channel's control registers.
func soundReadMask(addr uint16) uint8 {
	switch addr {
	case types.NR10:
		return 0x80
	case types.NR11, 0xFF16:
		return 0x3F
	case types.NR13, 0xFF18, 0xFF1D:
		return 0xFF
	case types.NR14, 0xFF19, 0xFF1E, 0xFF23:
		return 0xBF
	case types.NR30:
		return 0x7F
	case types.NR32:
		return 0x9F
	case types.NR41:
		return 0xFF
	case types.NR52:
		return 0x70
	default:
		return 0x00
	}
}
