package cpu

// Registers holds the eight 8-bit registers as plain bytes; the 16-bit
// pairs are computed on demand rather than aliased through a union,
// since Go has no union types to alias them with.
type Registers struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8
}

const (
	flagZ uint8 = 1 << 7
	flagN uint8 = 1 << 6
	flagH uint8 = 1 << 5
	flagC uint8 = 1 << 4
)

func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }
func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F) }

func (r *Registers) SetBC(v uint16) { r.B = uint8(v >> 8); r.C = uint8(v) }
func (r *Registers) SetDE(v uint16) { r.D = uint8(v >> 8); r.E = uint8(v) }
func (r *Registers) SetHL(v uint16) { r.H = uint8(v >> 8); r.L = uint8(v) }

// SetAF masks F's low nibble to zero: the flag register only ever
// carries bits 4-7, regardless of what POP AF pulls off the stack.
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F = uint8(v) & 0xF0
}

func (r *Registers) flag(mask uint8) bool { return r.F&mask != 0 }

func (r *Registers) setFlag(mask uint8, set bool) {
	if set {
		r.F |= mask
	} else {
		r.F &^= mask
	}
}

func (r *Registers) Z() bool { return r.flag(flagZ) }
func (r *Registers) N() bool { return r.flag(flagN) }
func (r *Registers) FlagH() bool { return r.flag(flagH) }
func (r *Registers) FlagC() bool { return r.flag(flagC) }

func (r *Registers) setZ(v bool) { r.setFlag(flagZ, v) }
func (r *Registers) setN(v bool) { r.setFlag(flagN, v) }
func (r *Registers) setH(v bool) { r.setFlag(flagH, v) }
func (r *Registers) setC(v bool) { r.setFlag(flagC, v) }
