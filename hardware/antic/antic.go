// Package antic implements the display-list processor: it walks a
// program stored in RAM to decide each row's graphics mode, rasterises
// playfield pixels into a palette-indexed frame buffer, paces its own DMA
// cycle theft against the CPU's per-scanline budget, and raises display-
// list and vertical-blank interrupts. Grounded on
// original_source/T-HMI-Atari800/src/ANTIC.cpp.
package antic

import "github.com/retrostack/atari800core/config"

// FrameWidth and FrameHeight are the dimensions of the bitmap RenderLine
// writes into, matching the display sink contract.
const (
	FrameWidth  = 320
	FrameHeight = 192
)

// firstVisibleScanline is the ANTIC scanline that corresponds to row 0 of
// the presented bitmap; rows outside [firstVisibleScanline,
// firstVisibleScanline+FrameHeight) are vertical blank or overscan and
// never written to the bitmap.
const firstVisibleScanline = 32

// GTIAColors is the narrow, render-duration-only interface ANTIC uses to
// query playfield and background colour registers. GTIA is never held by
// reference outside a single RenderLine call.
type GTIAColors interface {
	Playfield(index int) byte // 0..3 -> COLPF0..COLPF3
	Background() byte

	// ComposeScanline overlays players/missiles, updates the collision
	// registers, and resolves final priority-driven colour for a
	// playfield-only raster line already filled by RenderLine.
	ComposeScanline(line []byte)
}

// MemReader is the bus-level read used for display-list and screen-data
// DMA; it observes the same ROM/self-test banking a CPU read would.
type MemReader func(addr uint16) byte

// ANTIC is the display-list processor's state, exactly the fields listed
// in spec §3 plus the rasteriser's derived row parameters.
type ANTIC struct {
	dmactl, chactl byte
	dlist          uint16
	hscrol, vscrol byte
	pmbase, chbase byte
	nmien, nmist   byte

	scanline           int
	dlPC               uint16
	memScan            uint16
	modeLinesRemaining int
	currentMode        int
	inDisplayList      bool
	wsyncHalted        bool

	rowInMode    int
	bytesPerRow  int
	charsPerRow  int
	xOffset      int
	hscrolEnable bool
	vscrolEnable bool

	dliPending bool
	vbiPending bool

	dmaCyclesThisScanline int

	frameScanlines int
	readMem        MemReader
}

// NewANTIC creates an ANTIC wired to readMem for display-list and
// screen-data DMA reads.
func NewANTIC(cfg config.Config, readMem MemReader) *ANTIC {
	a := &ANTIC{frameScanlines: cfg.Region.ScanlinesPerFrame(), readMem: readMem}
	a.Reset()
	return a
}

// Reset zeroes all chip state except NMIST, which reads $1F, and the
// display-list flag, which is re-armed; matching power-on and the CPU
// reset operation.
func (a *ANTIC) Reset() {
	*a = ANTIC{frameScanlines: a.frameScanlines, readMem: a.readMem, nmist: 0x1F, inDisplayList: true}
}

// Scanline returns the current 0..frame_scanlines-1 scanline counter.
func (a *ANTIC) Scanline() int { return a.scanline }

// WSYNCHalted reports whether a WSYNC write is holding the CPU.
func (a *ANTIC) WSYNCHalted() bool { return a.wsyncHalted }

// CheckDLI consumes and returns the pending display-list-interrupt flag.
func (a *ANTIC) CheckDLI() bool {
	p := a.dliPending
	a.dliPending = false
	return p
}

// CheckVBI consumes and returns the pending vertical-blank-interrupt flag.
func (a *ANTIC) CheckVBI() bool {
	p := a.vbiPending
	a.vbiPending = false
	return p
}

func (a *ANTIC) dlDMAEnabled() bool { return a.dmactl&dmactlDL != 0 }

func (a *ANTIC) fetchDL() byte {
	b := a.readMem(a.dlPC)
	a.dlPC++
	a.dmaCyclesThisScanline++
	return b
}

// PrepareScanline runs steps 1-3 of the scanline algorithm: vertical-blank
// and DMA-off short circuits, and — if the current mode row has run out of
// lines — the display-list fetch that decides the next row (honouring
// blank-line and jump instructions directly, and LMS/DLI modifier bits).
// It returns the DMA cycle cost incurred, which the caller subtracts from
// the CPU's 114-cycle scanline budget before stepping the CPU.
func (a *ANTIC) PrepareScanline() int {
	a.dmaCyclesThisScanline = 0

	if a.inVerticalBlank() || !a.dlDMAEnabled() || !a.inDisplayList {
		return a.dmaCyclesThisScanline
	}

	for a.modeLinesRemaining == 0 {
		instr := a.fetchDL()

		if instr&modeDLI != 0 && a.nmien&nmiDLI != 0 {
			a.dliPending = true
			a.nmist &^= nmiDLI
		}
		a.hscrolEnable = instr&modeHSCROL != 0
		a.vscrolEnable = instr&modeVSCROL != 0

		mode := instr & 0x0F

		if mode == 0 {
			if instr == 0 {
				// A zero byte with no blank-line count is still one
				// blank line; guards against a runaway DL of zero bytes.
				a.modeLinesRemaining = 1
			} else {
				a.modeLinesRemaining = int((instr>>4)&0x07) + 1
			}
			a.currentMode = 0
			return a.dmaCyclesThisScanline
		}

		if mode == 1 {
			lo := a.fetchDL()
			hi := a.fetchDL()
			a.dlPC = uint16(hi)<<8 | uint16(lo)
			if instr&0x40 != 0 { // JVB: halt DL processing until the next frame's VBI
				a.inDisplayList = false
				a.currentMode = 0
				a.modeLinesRemaining = 1
				if a.nmien&nmiVBI != 0 {
					a.vbiPending = true
					a.nmist &^= nmiVBI
				}
				return a.dmaCyclesThisScanline
			}
			continue
		}

		info := modeTable[mode]
		a.setModeLineParams(int(mode), info)
		a.currentMode = int(mode)
		a.modeLinesRemaining = info.scanlines
		a.rowInMode = 0

		if instr&modeLMS != 0 {
			lo := a.fetchDL()
			hi := a.fetchDL()
			a.memScan = uint16(hi)<<8 | uint16(lo)
		}

		if a.dlDMAEnabled() && a.bytesPerRow > 0 {
			a.dmaCyclesThisScanline += playfieldDMACharge
		}
	}

	return a.dmaCyclesThisScanline
}

// playfieldDMACharge is the approximate, non-byte-accurate cost of
// playfield screen-data DMA for a visible scanline, per spec §4.B.
const playfieldDMACharge = 40

func (a *ANTIC) setModeLineParams(mode int, info modeInfo) {
	width := a.dmactl & dmactlPlayfield
	a.bytesPerRow = info.bytesPerRow
	a.charsPerRow = charsPerRow(info, int(width))
	if width == playfieldNarrow {
		a.xOffset = (FrameWidth - a.charsPerRow*info.pixelsPerByte) / 2
	} else {
		a.xOffset = 0
	}
}

func (a *ANTIC) inVerticalBlank() bool {
	return a.scanline < 8 || a.scanline >= a.frameScanlines-14
}

// RenderLine paints the current scanline into bitmap, a FrameWidth x
// FrameHeight palette-indexed-8-bit buffer, consulting colors for
// playfield and background registers. It is a no-op for scanlines outside
// the bitmap's visible range.
func (a *ANTIC) RenderLine(bitmap []byte, colors GTIAColors) {
	row := a.scanline - firstVisibleScanline
	if row < 0 || row >= FrameHeight {
		return
	}
	line := bitmap[row*FrameWidth : row*FrameWidth+FrameWidth]

	bg := colors.Background()
	for i := range line {
		line[i] = bg
	}

	if !a.inVerticalBlank() && a.dlDMAEnabled() && a.currentMode >= 2 {
		info := modeTable[a.currentMode]
		if info.char {
			a.renderCharRow(line, info, colors)
		} else {
			a.renderBitmapRow(line, info, colors)
		}
	}

	colors.ComposeScanline(line)
}

func (a *ANTIC) renderCharRow(line []byte, info modeInfo, colors GTIAColors) {
	charRow := a.rowInMode
	if info.scanlines > 8 {
		charRow = a.rowInMode * 8 / info.scanlines
	}
	invert := a.chactl&0x02 != 0
	reflect := a.chactl&0x01 != 0
	if reflect {
		charRow = 7 - charRow
	}

	fg := colors.Playfield(1)
	bg := colors.Playfield(2)
	x := a.xOffset
	for col := 0; col < a.charsPerRow && x < FrameWidth; col++ {
		code := a.readMem(a.memScan + uint16(col))
		hi := code&0x80 != 0
		glyph := code & 0x7F
		rowBits := a.readMem(uint16(a.chbase)<<8 + uint16(glyph)*8 + uint16(charRow))
		if hi != invert {
			rowBits = ^rowBits
		}
		for bit := 7; bit >= 0 && x < FrameWidth; bit-- {
			set := rowBits&(1<<uint(bit)) != 0
			px := bg
			if set {
				px = fg
			}
			for rep := 0; rep < info.pixelsPerByte/8 && x < FrameWidth; rep++ {
				line[x] = px
				x++
			}
		}
	}
}

func (a *ANTIC) renderBitmapRow(line []byte, info modeInfo, colors GTIAColors) {
	bpp := info.bitsPerPixel
	if bpp < 1 {
		bpp = 1
	}
	pixelsPerByte := 8 / bpp
	totalPixels := a.charsPerRow * pixelsPerByte
	if totalPixels == 0 {
		return
	}
	colWidth := FrameWidth / totalPixels
	if colWidth < 1 {
		colWidth = 1
	}

	x := a.xOffset
	for col := 0; col < a.charsPerRow && x < FrameWidth; col++ {
		data := a.readMem(a.memScan + uint16(col))
		for shift := 8 - bpp; shift >= 0 && x < FrameWidth; shift -= bpp {
			idx := (data >> uint(shift)) & ((1 << uint(bpp)) - 1)
			var px byte
			if idx == 0 {
				px = colors.Background()
			} else {
				px = colors.Playfield(int(idx) - 1)
			}
			for rep := 0; rep < colWidth && x < FrameWidth; rep++ {
				line[x] = px
				x++
			}
		}
	}
}

// FinishScanline runs step 4's bookkeeping (mode-line countdown and
// memscan advance) and step 5 (WSYNC release, scanline advance, frame
// wrap with VBI). It returns true if this call wrapped the frame.
func (a *ANTIC) FinishScanline() bool {
	if a.currentMode >= 2 {
		info := modeTable[a.currentMode]
		a.rowInMode++
		if !info.char || a.rowInMode >= info.scanlines {
			a.memScan += uint16(a.bytesPerRow)
		}
	}
	if a.modeLinesRemaining > 0 {
		a.modeLinesRemaining--
	}

	a.wsyncHalted = false
	a.scanline++

	if a.scanline >= a.frameScanlines {
		a.scanline = 0
		a.dlPC = a.dlist
		a.inDisplayList = true
		a.modeLinesRemaining = 0
		if a.nmien&nmiVBI != 0 {
			a.vbiPending = true
			a.nmist &^= nmiVBI
		}
		return true
	}
	return false
}
