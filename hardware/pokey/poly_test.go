package pokey

import (
	"testing"

	"github.com/retrostack/atari800core/config"
)

// The 9-bit and 17-bit polynomial counters are maximal-length LFSRs: each
// must return to its seed state after exactly 2^n-1 updates, never
// sooner.
func TestPolynomialPeriods(t *testing.T) {
	p := NewPOKEY(config.Default())

	seed17 := p.poly17
	for i := 0; i < 131071-1; i++ {
		p.updatePolynomials()
		if p.poly17 == seed17 {
			t.Fatalf("17-bit polynomial repeated its seed after only %d updates, want 131071", i+1)
		}
	}
	p.updatePolynomials()
	if p.poly17 != seed17 {
		t.Fatalf("expected the 17-bit polynomial to return to its seed after 131071 updates")
	}

	seed9 := p.poly9
	for i := 0; i < 511-1; i++ {
		p.updatePolynomials()
		if p.poly9 == seed9 {
			t.Fatalf("9-bit polynomial repeated its seed after only %d updates, want 511", i+1)
		}
	}
	p.updatePolynomials()
	if p.poly9 != seed9 {
		t.Fatalf("expected the 9-bit polynomial to return to its seed after 511 updates")
	}
}
