// Package interrupts implements the five-source interrupt request/enable
// pair (IF/IE) the CPU polls once per main-loop iteration.
package interrupts

import "github.com/tobu-wr/CppGB/internal/types"

// Service holds the IF (requested) and IE (enabled) registers and
// resolves which source, if any, should be serviced next.
//
// Priority order, lowest vector first: VBlank, LCDStat, Timer, Serial,
// Joypad. Only one source is serviced per CPU main-loop iteration.
type Service struct {
	Flag   uint8 // IF, 0xFF0F; only bits 0-4 are meaningful
	Enable uint8 // IE, 0xFFFF
}

// NewService returns an interrupt service with no source requested
// and none enabled, matching the post-boot reset state. IME is not
// part of it; the CPU holds that flag.
func NewService() *Service {
	return &Service{}
}

// Request sets the IF bit for the given source (one of the Int* bit
// constants in package types).
func (s *Service) Request(source uint8) {
	s.Flag |= source
}

// Pending reports whether any enabled interrupt is currently requested,
// regardless of IME. HALT exits whenever this is true.
func (s *Service) Pending() bool {
	return s.Flag&s.Enable != 0
}

// Next returns the bit and vector of the highest-priority interrupt
// that is both requested and enabled, and whether one exists. It does
// NOT clear the IF bit; callers that actually service the interrupt
// must call Ack.
func (s *Service) Next() (bit uint8, vector uint16, ok bool) {
	pending := s.Flag & s.Enable
	if pending == 0 {
		return 0, 0, false
	}
	for i := 0; i < 5; i++ {
		b := uint8(1) << i
		if pending&b != 0 {
			return b, types.IntVectors[i], true
		}
	}
	return 0, 0, false
}

// Ack clears the IF bit for a serviced interrupt.
func (s *Service) Ack(bit uint8) {
	s.Flag &^= bit
}
