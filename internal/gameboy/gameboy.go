// Package gameboy wires the CPU, memory map, pixel pipeline, sound
// generator and the supporting controllers into one runnable unit, and
// drives the "run until quit" main loop against a host-supplied input
// source.
package gameboy

import (
	"github.com/tobu-wr/CppGB/internal/apu"
	"github.com/tobu-wr/CppGB/internal/cartridge"
	"github.com/tobu-wr/CppGB/internal/cpu"
	"github.com/tobu-wr/CppGB/internal/interrupts"
	"github.com/tobu-wr/CppGB/internal/joypad"
	"github.com/tobu-wr/CppGB/internal/mmu"
	"github.com/tobu-wr/CppGB/internal/ppu"
	"github.com/tobu-wr/CppGB/internal/serial"
	"github.com/tobu-wr/CppGB/internal/timer"
	"github.com/tobu-wr/CppGB/internal/types"
	"github.com/tobu-wr/CppGB/pkg/log"
)

// InputSource is queried once per main-loop iteration for the current
// button state and a quit signal.
type InputSource interface {
	Poll() joypad.State
	Quit() bool
}

// GameBoy is the fully wired emulation core.
type GameBoy struct {
	CPU    *cpu.CPU
	Mem    *mmu.MemoryMap
	PPU    *ppu.PPU
	APU    *apu.APU
	Timer  *timer.Controller
	Joypad *joypad.Controller
	Serial *serial.Controller
	IRQ    *interrupts.Service
	Cart   *cartridge.Cartridge
}

// New loads rom and constructs a fully wired GameBoy delivering frames
// to sink.
func New(rom []byte, logger log.Logger, sink ppu.FrameSink) (*GameBoy, error) {
	cart, err := cartridge.Load(rom, logger)
	if err != nil {
		return nil, err
	}

	model := types.ModelDMG
	if cart.Header().ColorMode {
		model = types.ModelCGB
	}

	irq := interrupts.NewService()
	t := timer.NewController(irq)
	jp := joypad.NewController(irq)
	sc := serial.NewController(irq)
	mem := mmu.New(cart, irq, t, jp, sc, model, logger)

	pipeline := ppu.New(mem, irq, sink)
	sound := apu.New(mem)
	core := cpu.New(mem, irq, pipeline, logger)

	return &GameBoy{
		CPU:    core,
		Mem:    mem,
		PPU:    pipeline,
		APU:    sound,
		Timer:  t,
		Joypad: jp,
		Serial: sc,
		IRQ:    irq,
		Cart:   cart,
	}, nil
}

// LoadSave preloads external RAM from a previously persisted save
// file.
func (g *GameBoy) LoadSave(data []byte) {
	g.Mem.LoadSave(data)
}

// HasBattery reports whether the loaded cartridge declared a battery,
// the condition under which the host should persist SaveRAM on
// shutdown.
func (g *GameBoy) HasBattery() bool {
	return g.Cart.Header().HasBattery
}

// SaveRAM returns the cartridge's external RAM backing store, for
// battery persistence. Returns nil if the cartridge has no RAM.
func (g *GameBoy) SaveRAM() []byte {
	return g.Cart.RAM()
}

// GenerateAudio fills buf with PCM samples pulled from the sound
// generator, for the host's audio pull.
func (g *GameBoy) GenerateAudio(buf []byte) {
	g.APU.Generate(buf)
}

// Run executes the main loop until input reports a quit signal: poll
// input into P1, run one CPU step, repeat. Input polling lives at this
// wiring layer, not in internal/cpu, so the CPU package stays free of a
// host-input dependency.
func (g *GameBoy) Run(input InputSource) {
	for !input.Quit() {
		g.Joypad.Update(input.Poll())
		g.CPU.Step()
	}
}
