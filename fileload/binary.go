package fileload

import (
	"github.com/retrostack/atari800core/errors"
	"github.com/retrostack/atari800core/hardware/memory"
)

// LoadBinary copies data into bus's RAM starting at loadAddr and points
// pc at loadAddr, the "cartridge image" equivalent of a type-in
// program: no header, no segments, just bytes and a start address.
func LoadBinary(bus *memory.Bus, pc *uint16, data []byte, loadAddr uint16) error {
	if len(data) == 0 {
		return errors.New(errors.FileFormat, "empty binary")
	}
	if int(loadAddr)+len(data) > 0x10000 {
		return errors.New(errors.FileFormat, "binary too large to fit in memory at the given address")
	}
	for i, b := range data {
		bus.Write(loadAddr+uint16(i), b)
	}
	if pc != nil {
		*pc = loadAddr
	}
	return nil
}
