// Package cpu implements the instruction interpreter: the decoded
// 8-bit opcode table plus the 0xCB-prefixed table, flag semantics,
// interrupt servicing and the machine-cycle clock that drives the
// timer and pixel pipeline.
package cpu

import (
	"fmt"
	"os"

	"github.com/tobu-wr/CppGB/internal/interrupts"
	"github.com/tobu-wr/CppGB/internal/mmu"
	"github.com/tobu-wr/CppGB/internal/ppu"
	"github.com/tobu-wr/CppGB/pkg/log"
)

// CPU is the Game Boy's instruction interpreter and master clock.
type CPU struct {
	Registers
	SP, PC uint16

	IME  bool
	Halt bool

	mem *mmu.MemoryMap
	irq *interrupts.Service
	ppu *ppu.PPU
	log log.Logger

	// eiPending defers IME's enable by one instruction, per EI's
	// documented delayed-effect semantics.
	eiPending bool

	// doubleSpeedCycle alternates on every advanceOneCycle call while
	// KEY1's double-speed bit is set, so the pixel pipeline ticks at
	// half the CPU's rate.
	doubleSpeedCycle bool
}

// New constructs a CPU in its post-boot-ROM state: the state the real
// boot ROM leaves registers in just before handing off to the
// cartridge at 0x0100.
func New(mem *mmu.MemoryMap, irq *interrupts.Service, pipeline *ppu.PPU, logger log.Logger) *CPU {
	c := &CPU{
		mem: mem,
		irq: irq,
		ppu: pipeline,
		log: logger,
	}
	c.PC = 0x0100
	c.SP = 0xFFFE
	c.A = 0x11
	c.F = 0x00
	return c
}

// advanceOneCycle ticks the divider/timer and, subject to double-speed
// mode, the pixel pipeline, once per machine cycle.
func (c *CPU) advanceOneCycle() {
	c.mem.Timer.Tick()
	if c.mem.KEY1&0x80 == 0 {
		c.ppu.Tick()
		return
	}
	c.doubleSpeedCycle = !c.doubleSpeedCycle
	if c.doubleSpeedCycle {
		c.ppu.Tick()
	}
}

func (c *CPU) fetch8() uint8 {
	v := c.mem.Read(c.PC)
	c.PC++
	c.advanceOneCycle()
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) read8(addr uint16) uint8 {
	v := c.mem.Read(addr)
	c.advanceOneCycle()
	return v
}

func (c *CPU) write8(addr uint16, v uint8) {
	c.mem.Write(addr, v)
	c.advanceOneCycle()
}

func (c *CPU) internalCycle() {
	c.advanceOneCycle()
}

func (c *CPU) pop16() uint16 {
	lo := c.read8(c.SP)
	c.SP++
	hi := c.read8(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// Step runs one iteration of the main loop: service a pending
// interrupt if any, then either execute one decoded instruction or, if
// halted, advance a single machine cycle.
func (c *CPU) Step() {
	c.serviceInterrupt()

	if c.Halt {
		c.advanceOneCycle()
		return
	}

	if c.eiPending {
		c.eiPending = false
		c.IME = true
	}

	opcode := c.fetch8()
	c.execute(opcode)
}

// serviceInterrupt checks for a pending, enabled interrupt and, if
// IME is set, dispatches it: at most one source is serviced per call,
// in priority order.
func (c *CPU) serviceInterrupt() {
	bit, vector, ok := c.irq.Next()
	if !ok {
		return
	}
	c.Halt = false
	if !c.IME {
		return
	}
	c.IME = false
	c.irq.Ack(bit)
	c.internalCycle()
	c.internalCycle()
	c.rawPush16(c.PC)
	c.PC = vector
}

// fatal reports an unrecoverable error and terminates the process:
// there's no recovery path for a decode or memory-map invariant
// violation, so it's reported and the process exits.
func (c *CPU) fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
