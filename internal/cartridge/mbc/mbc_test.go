package mbc

import "testing"

func makeROM(banks int) []byte {
	rom := make([]byte, banks*0x4000)
	for b := 0; b < banks; b++ {
		// stamp each bank's first byte with its own index so reads can
		// be checked against the selected bank.
		rom[b*0x4000] = byte(b)
	}
	return rom
}

func TestMBC1ZeroBankRemapsToOne(t *testing.T) {
	m := NewMBC1(makeROM(4), 0)
	m.Write(0x2000, 0x00) // request bank 0
	if got := m.Read(0x4000); got != 1 {
		t.Fatalf("switchable-window first byte = %d, want 1 (bank 0 remapped)", got)
	}
}

func TestMBC1BankSwitchRoundTrip(t *testing.T) {
	m := NewMBC1(makeROM(4), 0x2000)
	m.Write(0x2000, 0x03)
	if got := m.Read(0x4000); got != 3 {
		t.Fatalf("switchable-window first byte = %d, want 3", got)
	}

	m.Write(0xA000, 0xAB)
	if got := m.Read(0xA000); got != 0xAB {
		t.Fatalf("RAM read = 0x%02X, want 0xAB", got)
	}
}

func TestMBC1RAMBankSwitch(t *testing.T) {
	m := NewMBC1(makeROM(2), 0x4000) // two 8KiB RAM banks
	m.Write(0x4000, 0x00)
	m.Write(0xA000, 0x11)
	m.Write(0x4000, 0x01)
	m.Write(0xA000, 0x22)

	m.Write(0x4000, 0x00)
	if got := m.Read(0xA000); got != 0x11 {
		t.Fatalf("RAM bank 0 = 0x%02X, want 0x11", got)
	}
	m.Write(0x4000, 0x01)
	if got := m.Read(0xA000); got != 0x22 {
		t.Fatalf("RAM bank 1 = 0x%02X, want 0x22", got)
	}
}

func TestMBC1NoRAMReadsOpenBus(t *testing.T) {
	m := NewMBC1(makeROM(2), 0)
	if got := m.Read(0xA000); got != 0xFF {
		t.Fatalf("RAM read with no RAM = 0x%02X, want 0xFF", got)
	}
}

func TestMBC5BankZeroIsLegalSelection(t *testing.T) {
	m := NewMBC5(makeROM(4), 0)
	m.Write(0x2000, 0x00)
	if got := m.Read(0x4000); got != 0 {
		t.Fatalf("switchable-window first byte = %d, want 0 (MBC5 allows bank 0)", got)
	}
}

func TestNoneIgnoresROMWrites(t *testing.T) {
	n := NewNone(makeROM(2), 0)
	before := n.Read(0x0000)
	n.Write(0x2000, 0xFF)
	if got := n.Read(0x0000); got != before {
		t.Fatalf("ROM-only cartridge changed after write: got %d, want %d", got, before)
	}
}

func TestMBC3RTCBankReadsStaleZero(t *testing.T) {
	m := NewMBC3(makeROM(2), 0x2000)
	m.Write(0x4000, 0x08) // select an RTC register
	m.Write(0xA000, 0x55) // accepted and discarded
	if got := m.Read(0xA000); got != 0x00 {
		t.Fatalf("RTC register read = 0x%02X, want 0x00", got)
	}
}

func TestLoadRAMCopiesIntoBackingStore(t *testing.T) {
	m := NewMBC3(makeROM(2), 0x2000)
	data := make([]byte, 0x2000)
	data[0] = 0x7A
	m.LoadRAM(data)
	if got := m.Read(0xA000); got != 0x7A {
		t.Fatalf("RAM[0] = 0x%02X after LoadRAM, want 0x7A", got)
	}
}
