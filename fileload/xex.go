// Package fileload implements the three ways software reaches the
// emulated machine: the Atari DOS executable (XEX) format, a raw binary
// load at a fixed address, and ATR disk-image mount/sector I/O.
// Grounded on original_source/T-HMI-Atari800/src/AtariLoader.cpp, with
// the single-file-driver plumbing replaced by plain in-memory byte
// slices, matching this module's headless, no-filesystem-dependency
// design.
package fileload

import (
	"github.com/retrostack/atari800core/errors"
	"github.com/retrostack/atari800core/hardware/memory"
)

// RUNAD and INITAD are the two zero-page-adjacent vectors the Atari OS
// consults while loading a binary load file.
const (
	runad  = 0x02E0
	initad = 0x02E2
)

// Caller is the subset of *cpu.CPU the loader needs: a JSR-like call
// for INITAD (the final run address is written through LoadXEX's pc
// pointer instead). Kept narrow so fileload doesn't import the cpu
// package.
type Caller interface {
	Call(addr uint16)
}

// LoadXEX parses an Atari DOS executable and writes every segment into
// bus's RAM. If a segment's range covers INITAD and the vector is
// non-zero after the write, call invokes it immediately (as the OS
// would via JSR) and the vector is cleared. After every segment is
// loaded, if RUNAD is non-zero, pc receives it.
//
// Failure modes: a missing FF FF header, a truncated segment, or a
// segment whose end address is before its start, all return a
// FileFormat error. A missing header leaves RAM untouched. Past the
// header every Write happens in place on the live bus, so a later
// failure leaves RUNAD/INITAD cleared and earlier segments loaded,
// matching the original loader's behaviour of aborting where it stands
// rather than rolling back.
func LoadXEX(bus *memory.Bus, call Caller, pc *uint16, data []byte) error {
	r := &cursor{data: data}

	h0, h1, ok := r.readHeaderBytes()
	if !ok || h0 != 0xFF || h1 != 0xFF {
		return errors.New(errors.FileFormat, "missing FF FF XEX header")
	}

	bus.Write(runad, 0)
	bus.Write(runad+1, 0)
	bus.Write(initad, 0)
	bus.Write(initad+1, 0)

	segments := 0
	for !r.eof() {
		start, ok := r.readWord()
		if !ok {
			break
		}
		if start == 0xFFFF {
			start, ok = r.readWord()
			if !ok {
				break
			}
		}

		end, ok := r.readWord()
		if !ok {
			return errors.New(errors.FileFormat, "truncated segment header")
		}
		if end < start {
			return errors.New(errors.FileFormat, "segment end before start")
		}

		size := int(end) - int(start) + 1
		chunk, ok := r.readBytes(size)
		if !ok {
			return errors.New(errors.FileFormat, "segment data overruns file")
		}
		for i, b := range chunk {
			bus.Write(start+uint16(i), b)
		}
		segments++

		if uint32(start) <= initad && uint32(end) >= initad+1 {
			initAddr := uint16(bus.Read(initad)) | uint16(bus.Read(initad+1))<<8
			if initAddr != 0 && call != nil {
				call.Call(initAddr)
			}
			bus.Write(initad, 0)
			bus.Write(initad+1, 0)
		}
	}

	if segments == 0 {
		return errors.New(errors.FileFormat, "no segments loaded")
	}

	if runAddr := uint16(bus.Read(runad)) | uint16(bus.Read(runad+1))<<8; runAddr != 0 && pc != nil {
		*pc = runAddr
	}

	return nil
}

// cursor is a tiny forward-only byte-slice reader; the loader never
// needs to seek backwards.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) eof() bool { return c.pos >= len(c.data) }

func (c *cursor) readHeaderBytes() (byte, byte, bool) {
	if len(c.data)-c.pos < 2 {
		return 0, 0, false
	}
	b0, b1 := c.data[c.pos], c.data[c.pos+1]
	c.pos += 2
	return b0, b1, true
}

func (c *cursor) readWord() (uint16, bool) {
	if len(c.data)-c.pos < 2 {
		return 0, false
	}
	v := uint16(c.data[c.pos]) | uint16(c.data[c.pos+1])<<8
	c.pos += 2
	return v, true
}

func (c *cursor) readBytes(n int) ([]byte, bool) {
	if len(c.data)-c.pos < n {
		return nil, false
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, true
}
