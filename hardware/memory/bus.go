// Package memory implements the system bus: the address decoder that
// routes CPU reads and writes among RAM, the OS and BASIC ROMs, the
// self-test ROM window, and the four chip register banks.
package memory

import (
	"github.com/retrostack/atari800core/errors"
	"github.com/retrostack/atari800core/logger"
	"github.com/retrostack/atari800core/random"
)

const (
	ramSize   = 0x10000
	osROMSize = 0x4000 // 16 KiB, mapped at $C000-$FFFF
	basicROMSize = 0x2000 // 8 KiB, mapped at $A000-$BFFF

	selfTestBase   = 0x5000
	selfTestTop    = 0x57FF
	selfTestOffset = 0x1000 // into osROM

	basicBase = 0xA000
	basicTop  = 0xBFFF

	osLowBase = 0xC000
	osLowTop  = 0xCFFF

	osHighBase = 0xD800
	osHighTop  = 0xFFFF

	gtiaBase = 0xD000
	gtiaTop  = 0xD0FF
	pokeyBase = 0xD200
	pokeyTop  = 0xD2FF
	piaBase   = 0xD300
	piaTop    = 0xD3FF
	anticBase = 0xD400
	anticTop  = 0xD4FF
)

// Chip is the narrow register interface every custom chip exposes to the
// bus. addr is already masked to the chip's own register range.
type Chip interface {
	ReadRegister(addr uint16) byte
	WriteRegister(addr uint16, v byte)
}

// Banking reports the three ROM-visibility flags, re-evaluated by the PIA
// on every port-B write.
type Banking struct {
	OSVisible       bool
	BasicVisible    bool
	SelfTestVisible bool
}

// Bus is the Atari 800 XL system bus. It is the sole owner of RAM; the
// ROM byte slices are treated as immutable and shared freely.
type Bus struct {
	ram [ramSize]byte

	osROM    []byte
	basicROM []byte

	banking Banking

	GTIA  Chip
	Pokey Chip
	PIA   Chip
	Antic Chip
}

// NewBus validates the two ROM images and constructs a bus with RAM
// zeroed. Chip fields must be assigned by the caller before first use;
// this split exists because the chips themselves are constructed with a
// reference back to this bus for DMA-style reads (ANTIC) and the
// container that owns both must break that cycle at wiring time.
func NewBus(osROM, basicROM []byte) (*Bus, error) {
	if len(osROM) != osROMSize {
		return nil, errors.New(errors.InvalidROM, "OS ROM")
	}
	if len(basicROM) != basicROMSize {
		return nil, errors.New(errors.InvalidROM, "BASIC ROM")
	}
	vector := uint16(osROM[0x3FFD])<<8 | uint16(osROM[0x3FFC])
	if vector < osLowBase {
		return nil, errors.New(errors.InvalidROM, "reset vector outside $C000-$FFFF")
	}
	b := &Bus{osROM: osROM, basicROM: basicROM}
	b.banking = Banking{OSVisible: true, BasicVisible: true, SelfTestVisible: false}
	return b, nil
}

// SetBanking applies a freshly re-evaluated banking state. Called by the
// PIA immediately after any write to its port B.
func (b *Bus) SetBanking(banking Banking) {
	b.banking = banking
}

// CurrentBanking returns the currently active ROM-visibility flags.
func (b *Bus) CurrentBanking() Banking {
	return b.banking
}

// RAM exposes the backing array for non-mutating inspection (ANTIC's DMA
// reads go through Read instead, so they see ROM banking). The returned
// slice must not be written to outside the bus.
func (b *Bus) RAM() []byte {
	return b.ram[:]
}

// RandomizePowerOn fills RAM with r's output instead of leaving it at its
// Go zero value, matching real hardware's indeterminate power-on RAM
// contents. Called from system.New when config.RandomPowerOn is set.
func (b *Bus) RandomizePowerOn(r *random.Random) {
	for i := range b.ram {
		b.ram[i] = r.Uint8()
	}
}

// Read implements cpu.Bus.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr >= selfTestBase && addr <= selfTestTop && b.banking.SelfTestVisible:
		return b.osROM[int(addr-selfTestBase)+selfTestOffset]
	case addr >= basicBase && addr <= basicTop && b.banking.BasicVisible:
		return b.basicROM[addr-basicBase]
	case addr >= osLowBase && addr <= osLowTop && b.banking.OSVisible:
		return b.osROM[addr-osLowBase]
	case addr >= osHighBase && addr <= osHighTop && b.banking.OSVisible:
		return b.osROM[addr-osLowBase]
	case addr >= gtiaBase && addr <= gtiaTop:
		return b.readChip(b.GTIA, addr&0x1F)
	case addr >= pokeyBase && addr <= pokeyTop:
		return b.readChip(b.Pokey, addr&0x0F)
	case addr >= piaBase && addr <= piaTop:
		return b.readChip(b.PIA, addr&0x03)
	case addr >= anticBase && addr <= anticTop:
		return b.readChip(b.Antic, addr&0x0F)
	case addr >= 0xD100 && addr <= 0xD1FF, addr >= 0xD500 && addr <= 0xD7FF:
		logger.Logf(logger.Allow, "bus", "open-bus read at $%04X", addr)
		return 0xFF // open bus
	default:
		return b.ram[addr]
	}
}

func (b *Bus) readChip(c Chip, reg uint16) byte {
	if c == nil {
		logger.Logf(logger.Allow, "bus", "read from unwired chip register $%02X", reg)
		return 0xFF
	}
	return c.ReadRegister(reg)
}

// Write implements cpu.Bus. RAM always accepts writes, even under ROM:
// write-under-ROM is required for OS re-entry on the XL/XE.
func (b *Bus) Write(addr uint16, v byte) {
	switch {
	case addr >= gtiaBase && addr <= gtiaTop:
		b.writeChip(b.GTIA, addr&0x1F, v)
	case addr >= pokeyBase && addr <= pokeyTop:
		b.writeChip(b.Pokey, addr&0x0F, v)
	case addr >= piaBase && addr <= piaTop:
		b.writeChip(b.PIA, addr&0x03, v)
	case addr >= anticBase && addr <= anticTop:
		b.writeChip(b.Antic, addr&0x0F, v)
	case addr >= 0xD100 && addr <= 0xD1FF, addr >= 0xD500 && addr <= 0xD7FF:
		logger.Logf(logger.Allow, "bus", "open-bus write $%02X at $%04X absorbed", v, addr)
	default:
		b.ram[addr] = v
	}
}

func (b *Bus) writeChip(c Chip, reg uint16, v byte) {
	if c == nil {
		logger.Logf(logger.Allow, "bus", "write $%02X to unwired chip register $%02X absorbed", v, reg)
		return
	}
	c.WriteRegister(reg, v)
}
