package cartridge

import (
	"testing"

	"github.com/tobu-wr/CppGB/pkg/log"
)

func blankROM(banks int) []byte {
	rom := make([]byte, banks*0x4000)
	copy(rom[0x0134:0x0144], "TESTROM")
	rom[0x0148] = 0 // 2 banks
	return rom
}

func TestLoadNoneFamily(t *testing.T) {
	rom := blankROM(2)
	rom[0x0147] = 0x00 // ROM only
	rom[0x0149] = 0x00

	c, err := Load(rom, log.NewNull())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Header().Family != FamilyNone {
		t.Fatalf("Family = %v, want FamilyNone", c.Header().Family)
	}
	if c.Header().ROMBanks != 2 {
		t.Fatalf("ROMBanks = %d, want 2", c.Header().ROMBanks)
	}
}

func TestLoadMBC1WithBattery(t *testing.T) {
	rom := blankROM(4)
	rom[0x0147] = 0x03 // MBC1+RAM+BATTERY
	rom[0x0149] = 0x02 // 8KiB RAM

	c, err := Load(rom, log.NewNull())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	h := c.Header()
	if h.Family != FamilyMBC1 || !h.HasBattery || !h.HasRAM {
		t.Fatalf("Header = %+v, want MBC1+RAM+battery", h)
	}
	if h.RAMSize != 0x2000 {
		t.Fatalf("RAMSize = %d, want 0x2000", h.RAMSize)
	}
}

func TestLoadMBC2FixedRAMSize(t *testing.T) {
	rom := blankROM(2)
	rom[0x0147] = 0x06 // MBC2+BATTERY
	rom[0x0149] = 0x00

	c, err := Load(rom, log.NewNull())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Header().RAMSize != 0x200 {
		t.Fatalf("RAMSize = %d, want 0x200 (MBC2's built-in 512x4-bit RAM)", c.Header().RAMSize)
	}
}

func TestLoadUnknownCartridgeTypeFails(t *testing.T) {
	rom := blankROM(2)
	rom[0x0147] = 0xFE // unassigned

	if _, err := Load(rom, log.NewNull()); err == nil {
		t.Fatal("expected error for unknown cartridge type")
	}
}

func TestLoadTooSmallFails(t *testing.T) {
	if _, err := Load(make([]byte, 0x100), log.NewNull()); err == nil {
		t.Fatal("expected error for undersized ROM image")
	}
}

func TestColorModeDetected(t *testing.T) {
	rom := blankROM(2)
	rom[0x0147] = 0x00
	rom[0x0149] = 0x00
	rom[0x0143] = 0xC0

	c, err := Load(rom, log.NewNull())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.Header().ColorMode {
		t.Fatal("expected ColorMode true for header byte 0xC0")
	}
}
