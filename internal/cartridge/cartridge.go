// Package cartridge loads a ROM image, parses its header, and wires the
// appropriate bank controller (internal/cartridge/mbc) in front of the
// ROM and external RAM.
package cartridge

import (
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/tobu-wr/CppGB/internal/cartridge/mbc"
	"github.com/tobu-wr/CppGB/pkg/log"
)

// Cartridge owns the loaded ROM image, its parsed header, and the bank
// controller that mediates access to it.
type Cartridge struct {
	header Header
	bank   mbc.MBC
	hash   uint64
}

// Load parses rom's header and constructs the bank controller its type
// byte selects. It returns an error for an unrecognized cartridge type
// or RAM size, which the caller should treat as fatal.
func Load(rom []byte, logger log.Logger) (*Cartridge, error) {
	if len(rom) < 0x150 {
		return nil, fmt.Errorf("rom image too small: %d bytes", len(rom))
	}
	header, err := parseHeader(rom)
	if err != nil {
		return nil, err
	}

	var bank mbc.MBC
	switch header.Family {
	case FamilyNone:
		bank = mbc.NewNone(rom, header.RAMSize)
	case FamilyMBC1:
		bank = mbc.NewMBC1(rom, header.RAMSize)
	case FamilyMBC2:
		bank = mbc.NewMBC2(rom)
	case FamilyMBC3:
		bank = mbc.NewMBC3(rom, header.RAMSize)
	case FamilyMBC5:
		bank = mbc.NewMBC5(rom, header.RAMSize)
	default:
		return nil, fmt.Errorf("unhandled mbc family: %s", header.Family)
	}

	c := &Cartridge{header: header, bank: bank, hash: xxhash.Sum64(rom)}
	logger.Infof("cartridge: %s (hash %016x)", header.String(), c.hash)
	return c, nil
}

// Header returns the cartridge's parsed header.
func (c *Cartridge) Header() Header { return c.header }

// Hash returns an xxhash64 digest of the raw ROM image, useful for
// identifying a cartridge independent of its file name.
func (c *Cartridge) Hash() uint64 { return c.hash }

// Read reads a byte from the cartridge's ROM or external RAM window.
func (c *Cartridge) Read(addr uint16) uint8 { return c.bank.Read(addr) }

// Write delivers a write to the cartridge's ROM window (interpreted as
// a bank-control command) or external RAM window.
func (c *Cartridge) Write(addr uint16, v uint8) { c.bank.Write(addr, v) }

// RAM returns the external RAM backing store, for battery persistence.
// Returns nil for cartridges with no RAM.
func (c *Cartridge) RAM() []byte {
	ram := c.bank.RAM()
	if len(ram) == 0 {
		return nil
	}
	return ram
}

// LoadRAM preloads the external RAM backing store from a save file.
func (c *Cartridge) LoadRAM(data []byte) { c.bank.LoadRAM(data) }
