package palette_test

import (
	"testing"

	"github.com/retrostack/atari800core/hardware/gtia/palette"
)

func TestGreyscaleHasNoChromaSpread(t *testing.T) {
	t1 := palette.Build(false)
	r, g, b := t1.RGB(0x00)
	if r != g || g != b {
		t.Fatalf("expected hue 0 / luma 0 to be neutral grey, got (%d,%d,%d)", r, g, b)
	}
	r, g, b = t1.RGB(0x0F)
	if r != g || g != b {
		t.Fatalf("expected hue 0 at max luma to stay neutral grey, got (%d,%d,%d)", r, g, b)
	}
}

func TestNTSCAndPALDiffer(t *testing.T) {
	ntsc := palette.Build(false)
	pal := palette.Build(true)
	rn, gn, bn := ntsc.RGB(0x18)
	rp, gp, bp := pal.RGB(0x18)
	if rn == rp && gn == gp && bn == bp {
		t.Fatalf("expected NTSC and PAL hue phases to differ for a chroma entry")
	}
}

func TestLuminanceBrightensTowardWhite(t *testing.T) {
	table := palette.Build(false)
	r0, g0, b0 := table.RGB(0x40)
	r15, g15, b15 := table.RGB(0x4F)
	sumDark := int(r0) + int(g0) + int(b0)
	sumBright := int(r15) + int(g15) + int(b15)
	if sumBright <= sumDark {
		t.Fatalf("expected max luminance to be brighter than min luminance, got %d vs %d", sumBright, sumDark)
	}
}
