package joypad

import (
	"testing"

	"github.com/tobu-wr/CppGB/internal/interrupts"
	"github.com/tobu-wr/CppGB/internal/types"
)

func TestNewControllerResetState(t *testing.T) {
	c := NewController(interrupts.NewService())
	if c.Read() != 0xFF {
		t.Fatalf("Read() = 0x%02X, want 0xFF (no group selected)", c.Read())
	}
}

func TestDirectionGroupSelected(t *testing.T) {
	c := NewController(interrupts.NewService())
	c.Write(0x20) // select direction group (bit 4 low)
	c.Update(State{Right: true})
	if v := c.Read(); v&0x01 != 0 {
		t.Fatalf("Read() = 0x%02X, want bit 0 clear for Right pressed", v)
	}
	if v := c.Read(); v&0x0E != 0x0E {
		t.Fatalf("Read() = 0x%02X, want other direction bits set", v)
	}
}

func TestButtonGroupSelected(t *testing.T) {
	c := NewController(interrupts.NewService())
	c.Write(0x10) // select button group (bit 5 low)
	c.Update(State{A: true, Start: true})
	v := c.Read()
	if v&0x01 != 0 {
		t.Fatalf("Read() = 0x%02X, want bit 0 clear for A pressed", v)
	}
	if v&0x08 != 0 {
		t.Fatalf("Read() = 0x%02X, want bit 3 clear for Start pressed", v)
	}
	if v&0x06 != 0x06 {
		t.Fatalf("Read() = 0x%02X, want B/Select bits set", v)
	}
}

func TestPressRequestsJoypadInterrupt(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	c.Write(0x20)
	c.Update(State{})
	if irq.Flag&types.IntJoypad != 0 {
		t.Fatal("no interrupt expected before any key is pressed")
	}
	c.Update(State{Down: true})
	if irq.Flag&types.IntJoypad == 0 {
		t.Fatal("expected IntJoypad requested on key press")
	}
}

func TestUnselectedGroupReadsNotPressed(t *testing.T) {
	c := NewController(interrupts.NewService())
	c.Write(0x30) // neither group selected
	c.Update(State{Right: true, A: true})
	if v := c.Read(); v&0x0F != 0x0F {
		t.Fatalf("Read() = 0x%02X, want low nibble all set when no group selected", v)
	}
}
