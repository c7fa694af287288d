// Package gtia implements the colour, player/missile graphics, and
// collision-detection half of the display chipset: nine colour registers,
// four players and four missiles with position/size/graphics registers,
// a four-way collision matrix, and the active-low trigger and console
// switch inputs. Grounded on
// original_source/T-HMI-Atari800/src/GTIA.cpp.
package gtia

import "github.com/retrostack/atari800core/config"

// FrameWidth matches the bitmap antic.RenderLine writes into; GTIA
// composites its player/missile graphics onto that same buffer.
const FrameWidth = 320

// colorClocks is the number of 1.79MHz colour-clock positions a
// horizontal position register addresses across a scanline.
const colorClocks = 256

// GTIA holds the chip's full register set.
type GTIA struct {
	hposp [4]byte
	hposm [4]byte
	sizep [4]byte
	sizem byte
	grafp [4]byte
	grafm byte

	colpm [4]byte
	colpf [4]byte
	colbk byte

	prior  byte
	vdelay byte
	gractl byte

	m2pf [4]byte
	p2pf [4]byte
	m2pl [4]byte
	p2pl [4]byte

	trig   [4]byte
	consol byte

	pal bool
}

// NewGTIA creates a GTIA with power-on register defaults.
func NewGTIA(cfg config.Config) *GTIA {
	g := &GTIA{pal: cfg.Region == config.PAL}
	g.Reset()
	return g
}

// Reset restores power-on defaults, matching GTIA.cpp's reset().
func (g *GTIA) Reset() {
	pal := g.pal
	*g = GTIA{pal: pal}
	g.colpm = [4]byte{0x38, 0x58, 0x88, 0xC8}
	g.colpf = [4]byte{0x28, 0x48, 0x94, 0x46}
	g.colbk = 0x00
	g.trig = [4]byte{1, 1, 1, 1}
	g.consol = 0x07
}

// Playfield implements antic.GTIAColors: index 0..3 selects COLPF0..3.
func (g *GTIA) Playfield(index int) byte {
	if index < 0 || index > 3 {
		return 0
	}
	return g.colpf[index]
}

// Background implements antic.GTIAColors.
func (g *GTIA) Background() byte { return g.colbk }

// Prior returns the raw priority-control register.
func (g *GTIA) Prior() byte { return g.prior }

// SetTrigger latches a joystick trigger button, active-low on the wire.
func (g *GTIA) SetTrigger(index int, pressed bool) {
	if index < 0 || index > 3 {
		return
	}
	if pressed {
		g.trig[index] = 0
	} else {
		g.trig[index] = 1
	}
}

// SetConsole latches the START(0)/SELECT(1)/OPTION(2) console switches,
// active-low on the wire.
func (g *GTIA) SetConsole(start, selectKey, option bool) {
	g.setConsoleBit(0, start)
	g.setConsoleBit(1, selectKey)
	g.setConsoleBit(2, option)
}

func (g *GTIA) setConsoleBit(bit int, pressed bool) {
	mask := byte(1 << uint(bit))
	if pressed {
		g.consol &^= mask
	} else {
		g.consol |= mask
	}
}
