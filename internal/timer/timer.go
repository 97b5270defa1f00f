// Package timer implements the divider and programmable timer. Both
// counters are ticked in whole machine cycles by the CPU's clock
// advance — not the bit-edge model real hardware's internal divider
// quirks require, since sub-instruction bus timing for quirks
// mainstream software doesn't depend on is out of scope.
package timer

import (
	"github.com/tobu-wr/CppGB/internal/interrupts"
	"github.com/tobu-wr/CppGB/internal/types"
)

// periods maps TAC bits 1..0 to the number of machine cycles between
// TIMA increments.
var periods = [4]uint16{256, 4, 16, 64}

// Controller owns DIV, TIMA, TMA and TAC.
type Controller struct {
	DIV  uint8
	TIMA uint8
	TMA  uint8
	TAC  uint8

	divCycles  uint16
	timaCycles uint16

	irq *interrupts.Service
}

// NewController returns a timer controller wired to request TIMER
// interrupts through irq.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{irq: irq}
}

// WriteDIV resets the divider to zero, as any software write does.
func (c *Controller) WriteDIV() {
	c.DIV = 0
	c.divCycles = 0
}

// Enabled reports whether TAC bit 2 is set.
func (c *Controller) Enabled() bool {
	return c.TAC&0x04 != 0
}

// Tick advances the divider and, if enabled, the programmable counter
// by one machine cycle.
func (c *Controller) Tick() {
	c.divCycles++
	if c.divCycles == 128 {
		c.divCycles = 0
		c.DIV++
	}

	if !c.Enabled() {
		return
	}

	c.timaCycles++
	period := periods[c.TAC&0x03]
	if c.timaCycles < period {
		return
	}
	c.timaCycles = 0

	if c.TIMA == 0xFF {
		c.TIMA = c.TMA
		c.irq.Request(types.IntTimer)
	} else {
		c.TIMA++
	}
}

// WriteTAC installs a new TAC value, resetting the sub-cycle counter
// so a changed clock select takes effect from the next tick.
func (c *Controller) WriteTAC(v uint8) {
	c.TAC = v & 0x07
	c.timaCycles = 0
}
