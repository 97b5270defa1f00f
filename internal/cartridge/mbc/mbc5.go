package mbc

// MBC5 has a 9-bit ROM bank register, split across two write ranges on
// real hardware (0x2000-0x2FFF low 8 bits, 0x3000-0x3FFF high bit);
// only the low 8 bits are wired here, enough for any cartridge under
// 4MiB. It also has a RAM bank register (0x4000-0x5FFF). Unlike
// MBC1/MBC3, bank 0 is a legal ROM-bank selection: it simply mirrors
// the fixed 0x0000-0x3FFF window.
type MBC5 struct {
	rom []byte
	ram []byte

	romBank uint16
	ramBank uint8
}

// NewMBC5 returns an MBC5 controller.
func NewMBC5(rom []byte, ramSize int) *MBC5 {
	return &MBC5{rom: rom, ram: make([]byte, ramSize), romBank: 1}
}

func (m *MBC5) Read(addr uint16) uint8 {
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

func (m *MBC5) Write(addr uint16, v uint8) {
	switch {
	case addr >= 0x2000 && addr < 0x3000:
		m.romBank = uint16(v)
	case addr >= 0x4000 && addr < 0x6000:
		m.ramBank = v & 0x0F
	case addr >= 0xA000 && addr < 0xC000:
		if len(m.ram) == 0 {
			return
		}
		off := uint32(m.ramBank)*0x2000 + uint32(addr-0xA000)
		m.ram[off%uint32(len(m.ram))] = v
	}
}

func (m *MBC5) RAM() []byte { return m.ram }

func (m *MBC5) LoadRAM(data []byte) { copy(m.ram, data) }
