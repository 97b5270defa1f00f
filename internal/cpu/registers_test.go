package cpu

import "testing"

func TestSetAFMasksLowNibble(t *testing.T) {
	r := &Registers{}
	r.SetAF(0x1234)
	if r.A != 0x12 {
		t.Fatalf("A = 0x%02X, want 0x12", r.A)
	}
	if r.F != 0x30 {
		t.Fatalf("F = 0x%02X, want 0x30 (low nibble of 0x34 masked off)", r.F)
	}
}

func TestBCDEHLRoundTrip(t *testing.T) {
	r := &Registers{}
	r.SetBC(0xABCD)
	if r.B != 0xAB || r.C != 0xCD || r.BC() != 0xABCD {
		t.Fatalf("BC round-trip failed: B=0x%02X C=0x%02X BC()=0x%04X", r.B, r.C, r.BC())
	}

	r.SetDE(0x1122)
	if r.DE() != 0x1122 {
		t.Fatalf("DE() = 0x%04X, want 0x1122", r.DE())
	}

	r.SetHL(0x3344)
	if r.HL() != 0x3344 {
		t.Fatalf("HL() = 0x%04X, want 0x3344", r.HL())
	}
}

func TestFlagAccessors(t *testing.T) {
	r := &Registers{}
	r.setZ(true)
	r.setN(false)
	r.setH(true)
	r.setC(false)

	if !r.Z() || r.N() || !r.FlagH() || r.FlagC() {
		t.Fatalf("flags Z=%v N=%v H=%v C=%v, want Z,H true and N,C false", r.Z(), r.N(), r.FlagH(), r.FlagC())
	}
	if r.F&0x0F != 0 {
		t.Fatalf("F low nibble = 0x%X, want always 0", r.F&0x0F)
	}
}
