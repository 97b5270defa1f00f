package cartridge

import "fmt"

// Family identifies the bank-controller hardware a cartridge type byte
// selects.
type Family uint8

const (
	FamilyNone Family = iota
	FamilyMBC1
	FamilyMBC2
	FamilyMBC3
	FamilyMBC5
)

func (f Family) String() string {
	switch f {
	case FamilyMBC1:
		return "MBC1"
	case FamilyMBC2:
		return "MBC2"
	case FamilyMBC3:
		return "MBC3"
	case FamilyMBC5:
		return "MBC5"
	default:
		return "NONE"
	}
}

// Header is the parsed cartridge header, bytes 0x0100-0x014F of the ROM
// image.
type Header struct {
	Title string

	// ColorMode is true when byte 0x0143 is 0x80 or 0xC0.
	ColorMode bool

	Type       uint8
	Family     Family
	HasBattery bool
	HasRAM     bool

	ROMBanks int
	RAMSize  int // bytes
}

// ramSizes maps the byte at 0x0149 to an external RAM size in bytes.
// 0x01 (2KiB), an early value some documentation lists but no released
// cartridge actually uses, is treated as an unknown size.
var ramSizes = map[uint8]int{
	0x00: 0,
	0x02: 0x2000,
	0x03: 0x8000,
	0x04: 0x20000,
}

// cartridgeTypes maps byte 0x0147 to the MBC family and feature flags.
// Values not present here are unknown and fatal to load.
var cartridgeTypes = map[uint8]struct {
	family       Family
	ram, battery bool
}{
	0x00: {FamilyNone, false, false},
	0x08: {FamilyNone, true, false},
	0x09: {FamilyNone, true, true},
	0x01: {FamilyMBC1, false, false},
	0x02: {FamilyMBC1, true, false},
	0x03: {FamilyMBC1, true, true},
	0x05: {FamilyMBC2, false, false},
	0x06: {FamilyMBC2, false, true},
	0x0F: {FamilyMBC3, false, true},
	0x10: {FamilyMBC3, true, true},
	0x11: {FamilyMBC3, false, false},
	0x12: {FamilyMBC3, true, false},
	0x13: {FamilyMBC3, true, true},
	0x19: {FamilyMBC5, false, false},
	0x1A: {FamilyMBC5, true, false},
	0x1B: {FamilyMBC5, true, true},
	0x1C: {FamilyMBC5, false, false},
	0x1D: {FamilyMBC5, true, false},
	0x1E: {FamilyMBC5, true, true},
}

// parseHeader parses the header of a loaded ROM image. rom must be at
// least 0x150 bytes. It returns an error for an unrecognized cartridge
// type or external RAM size byte.
func parseHeader(rom []byte) (Header, error) {
	var h Header

	switch rom[0x0143] {
	case 0x80, 0xC0:
		h.ColorMode = true
	}

	end := 0x0144
	if h.ColorMode {
		end = 0x0143
	}
	h.Title = stringFromBytes(rom[0x0134:end])

	h.Type = rom[0x0147]
	ct, ok := cartridgeTypes[h.Type]
	if !ok {
		return Header{}, fmt.Errorf("unknown cartridge type: 0x%02X", h.Type)
	}
	h.Family = ct.family
	h.HasRAM = ct.ram
	h.HasBattery = ct.battery

	h.ROMBanks = 2 << rom[0x0148]

	if h.Family == FamilyMBC2 {
		h.RAMSize = 0x200
	} else {
		size, ok := ramSizes[rom[0x0149]]
		if !ok {
			return Header{}, fmt.Errorf("unknown external RAM size: 0x%02X", rom[0x0149])
		}
		h.RAMSize = size
	}

	return h, nil
}

func stringFromBytes(b []byte) string {
	n := len(b)
	for n > 0 && b[n-1] == 0 {
		n--
	}
	return string(b[:n])
}

func (h Header) String() string {
	mode := "DMG"
	if h.ColorMode {
		mode = "CGB"
	}
	return fmt.Sprintf("%q mode=%s mbc=%s rom=%dx16KiB ram=%dB battery=%v",
		h.Title, mode, h.Family, h.ROMBanks, h.RAMSize, h.HasBattery)
}
