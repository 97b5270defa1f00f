// Package joypad models the P1 register and the host's input source
// contract: four directional and four button keys, sampled once per
// main-loop iteration, plus a quit signal that belongs to the host
// adapter rather than the joypad itself.
package joypad

import (
	"github.com/tobu-wr/CppGB/internal/interrupts"
	"github.com/tobu-wr/CppGB/internal/types"
)

// Button is one of the eight physical keys.
type Button uint8

const (
	ButtonRight Button = iota
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
)

// State is a snapshot of all eight keys, reported by the host's input
// source once per main-loop iteration. A true bit means pressed.
type State struct {
	Right, Left, Up, Down bool
	A, B, Select, Start   bool
}

// Controller holds the P1 register and the last key state reported by
// the host, and requests JOYPAD interrupts on a press.
type Controller struct {
	P1 uint8

	state State
	irq   *interrupts.Service
}

// NewController returns a joypad controller with P1's select bits
// (4 and 5) both set, matching post-boot reset state (no group
// selected).
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{P1: 0x3F, irq: irq}
}

// Update applies a newly-sampled key state from the host's input
// source, requesting a JOYPAD interrupt if any key transitioned from
// released to pressed while its group is selected.
func (c *Controller) Update(s State) {
	before := c.readLowNibble()
	c.state = s
	after := c.readLowNibble()
	// a bit going from 1 (released) to 0 (pressed) is a falling edge
	if before&^after != 0 {
		c.irq.Request(types.IntJoypad)
	}
}

// readLowNibble computes bits 0-3 of P1 from the current key state and
// the group-select bits already latched into P1.
func (c *Controller) readLowNibble() uint8 {
	v := uint8(0x0F)
	if c.P1&0x10 == 0 {
		v &= c.directionNibble()
	}
	if c.P1&0x20 == 0 {
		v &= c.buttonNibble()
	}
	return v
}

func (c *Controller) directionNibble() uint8 {
	n := uint8(0x0F)
	if c.state.Right {
		n &^= 0x01
	}
	if c.state.Left {
		n &^= 0x02
	}
	if c.state.Up {
		n &^= 0x04
	}
	if c.state.Down {
		n &^= 0x08
	}
	return n
}

func (c *Controller) buttonNibble() uint8 {
	n := uint8(0x0F)
	if c.state.A {
		n &^= 0x01
	}
	if c.state.B {
		n &^= 0x02
	}
	if c.state.Select {
		n &^= 0x04
	}
	if c.state.Start {
		n &^= 0x08
	}
	return n
}

// Read returns the current value of P1, the low nibble always
// recomputed from the last reported key state and the select bits.
func (c *Controller) Read() uint8 {
	return 0xC0 | (c.P1 & 0x30) | c.readLowNibble()
}

// Write updates P1's group-select bits (4 and 5); the low nibble is
// read-only from software's perspective.
func (c *Controller) Write(v uint8) {
	c.P1 = (c.P1 & 0xCF) | (v & 0x30)
}
