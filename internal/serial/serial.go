// Package serial implements the SB/SC link-cable registers, limited to
// disconnected-cable behavior: a transfer started with no peer always
// "completes" with 0xFF shifted in and a SERIAL interrupt requested. A
// real second console or accessory (printer, mobile adapter) isn't
// modeled.
package serial

import (
	"github.com/tobu-wr/CppGB/internal/interrupts"
	"github.com/tobu-wr/CppGB/internal/types"
)

// Controller owns SB and SC.
type Controller struct {
	SB uint8
	SC uint8

	irq *interrupts.Service
}

// NewController returns a serial controller with SC's unused bits set,
// matching post-boot reset state.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{SC: 0x7E, irq: irq}
}

// WriteSC starts a transfer when bit 7 (start) and bit 0 (internal
// clock) are both set. With no connected peer, the byte in SB is
// immediately replaced with 0xFF and a SERIAL interrupt requested, as
// if the link cable were open.
func (c *Controller) WriteSC(v uint8) {
	c.SC = v | 0x7E
	if v&0x81 == 0x81 {
		c.SB = 0xFF
		c.SC &^= 0x80
		c.irq.Request(types.IntSerial)
	}
}
