// Package mbc implements the cartridge bank-controller families found
// in retail carts: NONE, MBC1, MBC2, MBC3, MBC5. Each translates
// ROM-region writes into bank-select commands and gates access to
// external RAM.
package mbc

// MBC decodes reads and writes across the cartridge's ROM and external
// RAM windows (0x0000-0x7FFF and 0xA000-0xBFFF) according to its
// family's bank-switching rules.
type MBC interface {
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)

	// RAM returns the external RAM backing store, for battery
	// persistence. Cartridges without RAM return an empty slice.
	RAM() []byte
	// LoadRAM preloads the external RAM backing store from a save
	// file, copying min(len(data), len(RAM())) bytes.
	LoadRAM(data []byte)
}

// None is a cartridge with a single fixed ROM bank and no switching;
// writes to the ROM region are ignored.
type None struct {
	rom []byte
	ram []byte
}

// NewNone returns an MBC for a ROM-only cartridge, optionally with a
// fixed, unbanked RAM window of ramSize bytes (cartridge type ROM+RAM).
func NewNone(rom []byte, ramSize int) *None {
	return &None{rom: rom, ram: make([]byte, ramSize)}
}

func (n *None) Read(addr uint16) uint8 {
	switch {
	case addr < 0x8000:
		return n.rom[addr]
	case addr >= 0xA000 && addr < 0xC000 && len(n.ram) > 0:
		return n.ram[(addr-0xA000)%uint16(len(n.ram))]
	default:
		return 0xFF
	}
}

func (n *None) Write(addr uint16, v uint8) {
	if addr >= 0xA000 && addr < 0xC000 && len(n.ram) > 0 {
		n.ram[(addr-0xA000)%uint16(len(n.ram))] = v
	}
}

func (n *None) RAM() []byte { return n.ram }

func (n *None) LoadRAM(data []byte) { copy(n.ram, data) }
