package mbc

// MBC1 implements bank switching for the most common cartridge family:
// a 5-bit ROM bank number (0x2000-0x3FFF) and a RAM bank number
// (0x4000-0x5FFF). RAM-enable and the mode-select bit (normally at the
// same write range on real hardware) are not implemented here —
// external RAM is always accessible, and 0x4000-0x5FFF always selects
// the RAM bank. Bank 0 requested for the switchable ROM window is
// remapped to bank 1.
type MBC1 struct {
	rom []byte
	ram []byte

	romBank uint8
	ramBank uint8
}

// NewMBC1 returns an MBC1 controller over the given ROM image and a
// RAM window of ramSize bytes (may be zero).
func NewMBC1(rom []byte, ramSize int) *MBC1 {
	return &MBC1{rom: rom, ram: make([]byte, ramSize), romBank: 1}
}

func (m *MBC1) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return m.rom[addr]
	case addr < 0x8000:
		off := uint32(m.romBank)*0x4000 + uint32(addr-0x4000)
		return m.rom[off%uint32(len(m.rom))]
	case addr >= 0xA000 && addr < 0xC000:
		if len(m.ram) == 0 {
			return 0xFF
		}
		off := uint32(m.ramBank)*0x2000 + uint32(addr-0xA000)
		return m.ram[off%uint32(len(m.ram))]
	default:
		return 0xFF
	}
}

func (m *MBC1) Write(addr uint16, v uint8) {
	switch {
	case addr >= 0x2000 && addr < 0x4000:
		bank := v & 0x1F
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	case addr >= 0x4000 && addr < 0x6000:
		m.ramBank = v & 0x03
	case addr >= 0xA000 && addr < 0xC000:
		if len(m.ram) == 0 {
			return
		}
		off := uint32(m.ramBank)*0x2000 + uint32(addr-0xA000)
		m.ram[off%uint32(len(m.ram))] = v
	}
}

func (m *MBC1) RAM() []byte { return m.ram }

func (m *MBC1) LoadRAM(data []byte) { copy(m.ram, data) }
