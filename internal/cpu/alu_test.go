package cpu

import "testing"

func TestDAAAddScenario(t *testing.T) {
	c := &CPU{}
	c.A = 0x45
	c.addA(0x38)
	c.daa()

	if c.A != 0x83 {
		t.Fatalf("A = 0x%02X, want 0x83", c.A)
	}
	if c.Z() || c.N() || c.FlagH() || c.FlagC() {
		t.Fatalf("flags after DAA: Z=%v N=%v H=%v C=%v, want all false", c.Z(), c.N(), c.FlagH(), c.FlagC())
	}
}

func TestDAASubtractScenarioPreservesCarry(t *testing.T) {
	c := &CPU{}
	c.A = 0x00
	c.subA(0x01) // sets carry and half-carry (borrow)
	c.daa()

	if !c.FlagC() {
		t.Fatal("expected carry preserved across DAA on the subtract path")
	}
	if c.A != 0x99 {
		t.Fatalf("A = 0x%02X, want 0x99 (0xFF - 0x66 adjust)", c.A)
	}
}

func TestAddAHalfCarryAndCarry(t *testing.T) {
	c := &CPU{}
	c.A = 0xFF
	c.addA(0x01)
	if c.A != 0x00 {
		t.Fatalf("A = 0x%02X, want 0x00", c.A)
	}
	if !c.Z() || !c.FlagH() || !c.FlagC() || c.N() {
		t.Fatalf("flags Z=%v H=%v C=%v N=%v, want Z,H,C true and N false", c.Z(), c.FlagH(), c.FlagC(), c.N())
	}
}

func TestSubAZeroFlagOnEqualOperands(t *testing.T) {
	c := &CPU{}
	c.A = 0x10
	c.subA(0x10)
	if c.A != 0 || !c.Z() || !c.N() || c.FlagH() || c.FlagC() {
		t.Fatalf("A=0x%02X Z=%v N=%v H=%v C=%v, want A=0 Z=true N=true H=false C=false", c.A, c.Z(), c.N(), c.FlagH(), c.FlagC())
	}
}

func TestInc8WrapsAndSetsHalfCarry(t *testing.T) {
	c := &CPU{}
	result := c.inc8(0xFF)
	if result != 0x00 {
		t.Fatalf("inc8(0xFF) = 0x%02X, want 0x00", result)
	}
	if !c.Z() || !c.FlagH() || c.N() {
		t.Fatalf("flags Z=%v H=%v N=%v, want Z,H true and N false", c.Z(), c.FlagH(), c.N())
	}
}

func TestDec8BorrowsAndSetsHalfCarry(t *testing.T) {
	c := &CPU{}
	result := c.dec8(0x00)
	if result != 0xFF {
		t.Fatalf("dec8(0x00) = 0x%02X, want 0xFF", result)
	}
	if !c.FlagH() || !c.N() || c.Z() {
		t.Fatalf("flags H=%v N=%v Z=%v, want H,N true and Z false", c.FlagH(), c.N(), c.Z())
	}
}

func TestBitInstructionSetsZWhenClear(t *testing.T) {
	c := &CPU{}
	c.bit(3, 0x00)
	if !c.Z() {
		t.Fatal("expected Z set when tested bit is clear")
	}
	c.bit(3, 0x08)
	if c.Z() {
		t.Fatal("expected Z clear when tested bit is set")
	}
	if c.N() || !c.FlagH() {
		t.Fatalf("flags N=%v H=%v, want N false and H true", c.N(), c.FlagH())
	}
}

func TestRLCCarriesBit7IntoBit0(t *testing.T) {
	c := &CPU{}
	result := c.rlc(0x80)
	if result != 0x01 {
		t.Fatalf("rlc(0x80) = 0x%02X, want 0x01", result)
	}
	if !c.FlagC() {
		t.Fatal("expected carry set from bit 7")
	}
}

func TestSwapNibbles(t *testing.T) {
	c := &CPU{}
	result := c.swap(0xA5)
	if result != 0x5A {
		t.Fatalf("swap(0xA5) = 0x%02X, want 0x5A", result)
	}
}
