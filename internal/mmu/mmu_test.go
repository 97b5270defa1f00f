package mmu

import (
	"testing"

	"github.com/tobu-wr/CppGB/internal/cartridge"
	"github.com/tobu-wr/CppGB/internal/interrupts"
	"github.com/tobu-wr/CppGB/internal/joypad"
	"github.com/tobu-wr/CppGB/internal/serial"
	"github.com/tobu-wr/CppGB/internal/timer"
	"github.com/tobu-wr/CppGB/internal/types"
	"github.com/tobu-wr/CppGB/pkg/log"
)

func newTestMap(t *testing.T) *MemoryMap {
	t.Helper()
	rom := make([]byte, 0x8000)
	copy(rom[0x0134:0x0144], "TEST")
	rom[0x0147] = 0x03 // MBC1+RAM+BATTERY
	rom[0x0148] = 0x00 // 2 banks, matching the 0x8000-byte image above
	rom[0x0149] = 0x02 // 8KiB RAM

	cart, err := cartridge.Load(rom, log.NewNull())
	if err != nil {
		t.Fatalf("cartridge.Load: %v", err)
	}

	irq := interrupts.NewService()
	return New(cart, irq, timer.NewController(irq), joypad.NewController(irq), serial.NewController(irq), types.ModelDMG, log.NewNull())
}

func TestWorkRAMAndEchoRAMAlias(t *testing.T) {
	m := newTestMap(t)
	m.Write(0xC010, 0x5A)
	if got := m.Read(0xE010); got != 0x5A {
		t.Fatalf("echo RAM read = 0x%02X, want 0x5A aliased from WRAM", got)
	}
}

func TestOAMAndHRAMRoundTrip(t *testing.T) {
	m := newTestMap(t)
	m.Write(0xFE10, 0x12)
	if got := m.Read(0xFE10); got != 0x12 {
		t.Fatalf("OAM read = 0x%02X, want 0x12", got)
	}
	m.Write(0xFF90, 0x34)
	if got := m.Read(0xFF90); got != 0x34 {
		t.Fatalf("HRAM read = 0x%02X, want 0x34", got)
	}
}

func TestUnmappedHoleReadsFF(t *testing.T) {
	m := newTestMap(t)
	if got := m.Read(0xFEA0); got != 0xFF {
		t.Fatalf("unmapped hole read = 0x%02X, want 0xFF", got)
	}
}

func TestOAMDMACopiesFromSourcePage(t *testing.T) {
	m := newTestMap(t)
	for i := 0; i < 160; i++ {
		m.WRAM[0][i] = byte(i)
	}
	// 0xC000 maps to WRAM bank 0 offset 0; source page 0xC0 is 0xC000.
	m.Write(0xFF46, 0xC0)

	for i := 0; i < 160; i++ {
		if m.OAM[i] != byte(i) {
			t.Fatalf("OAM[%d] = %d, want %d after OAM-DMA", i, m.OAM[i], byte(i))
		}
	}
	if got := m.Read(0xFF46); got != 0xC0 {
		t.Fatalf("DMA register readback = 0x%02X, want 0xC0", got)
	}
}

func TestHDMA5GeneralPurposeTransfersImmediately(t *testing.T) {
	m := newTestMap(t)
	for i := 0; i < 32; i++ {
		m.WRAM[0][i] = byte(0x80 + i)
	}
	m.HDMA1, m.HDMA2 = 0xC0, 0x00 // source 0xC000
	m.HDMA3, m.HDMA4 = 0x00, 0x00 // dest 0x8000 in VRAM

	m.Write(0xFF55, 0x81) // bit7 set, 2 blocks (32 bytes)

	for i := 0; i < 32; i++ {
		if m.VRAM[0][i] != byte(0x80+i) {
			t.Fatalf("VRAM[%d] = 0x%02X, want 0x%02X", i, m.VRAM[0][i], byte(0x80+i))
		}
	}
	if got := m.Read(0xFF55); got != 0xFF {
		t.Fatalf("HDMA5 readback = 0x%02X, want 0xFF (transfer complete)", got)
	}
}

func TestHDMA5HBlankModeTransfersOneBlockPerCall(t *testing.T) {
	m := newTestMap(t)
	for i := 0; i < 32; i++ {
		m.WRAM[0][i] = byte(i)
	}
	m.HDMA1, m.HDMA2 = 0xC0, 0x00
	m.HDMA3, m.HDMA4 = 0x00, 0x00

	m.Write(0xFF55, 0x01) // bit7 clear, 2 blocks, HBLANK mode

	m.PerformHDMA()
	for i := 0; i < 16; i++ {
		if m.VRAM[0][i] != byte(i) {
			t.Fatalf("VRAM[%d] = 0x%02X after first block, want 0x%02X", i, m.VRAM[0][i], byte(i))
		}
	}
	if m.VRAM[0][16] != 0 {
		t.Fatal("second block should not have transferred yet")
	}

	m.PerformHDMA()
	for i := 16; i < 32; i++ {
		if m.VRAM[0][i] != byte(i) {
			t.Fatalf("VRAM[%d] = 0x%02X after second block, want 0x%02X", i, m.VRAM[0][i], byte(i))
		}
	}
	if got := m.Read(0xFF55); got != 0xFF {
		t.Fatalf("HDMA5 readback = 0x%02X, want 0xFF after last block", got)
	}
}

func TestLYCCoincidenceRequestsLCDStatWhenEnabled(t *testing.T) {
	m := newTestMap(t)
	m.STAT |= 0x40 // enable LYC=LY interrupt
	m.LYC = 42

	m.SetLY(42)

	if m.STAT&0x04 == 0 {
		t.Fatal("expected STAT coincidence bit set")
	}
	if m.IRQ.Flag&types.IntLCDStat == 0 {
		t.Fatal("expected IntLCDStat requested on LYC match")
	}
}

func TestLYCMismatchClearsCoincidenceBit(t *testing.T) {
	m := newTestMap(t)
	m.LYC = 10
	m.SetLY(10)
	if m.STAT&0x04 == 0 {
		t.Fatal("expected coincidence bit set at LY==LYC")
	}
	m.SetLY(11)
	if m.STAT&0x04 != 0 {
		t.Fatal("expected coincidence bit cleared once LY no longer matches LYC")
	}
}
