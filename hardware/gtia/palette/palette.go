// Package palette converts GTIA's raw 8-bit colour-register values
// (4-bit hue in the high nibble, 4-bit luminance in the low nibble) into
// display RGB. ANTIC and GTIA never do this conversion themselves — they
// pass the raw register byte through as a palette index — so a display
// sink calls this package once per presented frame. Grounded on the hue
// table derived from original_source/T-HMI-Atari800/src/GTIA.cpp's
// colour-register semantics; the HSL model and phase/saturation choices
// resolve the Open Question spec §4.C/§9 left unresolved.
package palette

import "github.com/lucasb-eyer/go-colorful"

// saturation is fixed across the whole palette; only hue (from the
// register's top nibble) and luminance (from its bottom nibble) vary.
const saturation = 0.35

// ntscPhase and palPhase are the hue-wheel angles (degrees) given to hue
// code 1, the first chroma step (hue code 0 is grey); each further hue
// code adds 24 degrees. PAL's wheel is rotated 15 degrees from NTSC's,
// standing in for the two standards' colourburst phase difference.
const (
	ntscPhase = 0.0
	palPhase  = 15.0
)

// Table is a precomputed 256-entry RGB palette, indexed directly by a
// GTIA colour-register byte.
type Table [256][3]byte

// Build renders the full 256-entry palette for a television standard.
// pal selects the PAL hue phase offset; false selects NTSC.
func Build(pal bool) *Table {
	phase := ntscPhase
	if pal {
		phase = palPhase
	}

	var t Table
	for v := 0; v < 256; v++ {
		hueCode := (v >> 4) & 0x0F
		lumaCode := v & 0x0F

		luminance := float64(lumaCode) / 15.0
		var c colorful.Color
		if hueCode == 0 {
			// Hue 0 is grey: no chroma, pure luminance.
			c = colorful.Hsl(0, 0, luminance)
		} else {
			hue := phase + float64(hueCode-1)*(360.0/15.0)
			c = colorful.Hsl(hue, saturation, luminance)
		}
		r, g, b := c.Clamped().RGB255()
		t[v] = [3]byte{r, g, b}
	}
	return &t
}

// RGB looks up a colour-register byte's display colour.
func (t *Table) RGB(index byte) (r, g, b byte) {
	c := t[index]
	return c[0], c[1], c[2]
}
