package pokey_test

import (
	"testing"

	"github.com/retrostack/atari800core/config"
	"github.com/retrostack/atari800core/hardware/pokey"
)

func newTestPOKEY() *pokey.POKEY {
	cfg := config.Default()
	cfg.SampleRate = 44100
	return pokey.NewPOKEY(cfg)
}

// S6: pressing a key with IRQKeypress enabled raises the pending bit in
// IRQST (active-low: the bit clears).
func TestKeyboardIRQ(t *testing.T) {
	p := newTestPOKEY()
	p.WriteRegister(0x0E, pokey.IRQKeypress) // IRQEN

	if p.CheckIRQ() {
		t.Fatalf("expected no IRQ pending before a key is pressed")
	}

	p.SetKeyCode(0x3F, true)
	if !p.CheckIRQ() {
		t.Fatalf("expected keyboard IRQ pending after a keypress")
	}
	if p.ReadRegister(0x09) != 0x3F { // KBCODE
		t.Fatalf("expected KBCODE readback of the pressed key")
	}

	p.AcknowledgeIRQ(pokey.IRQKeypress)
	if p.CheckIRQ() {
		t.Fatalf("expected IRQ cleared after acknowledgement")
	}
}

func TestSKCTLZeroResets(t *testing.T) {
	p := newTestPOKEY()
	p.WriteRegister(0x01, 0x0F) // AUDC1: full volume tone
	p.WriteRegister(0x0F, 0x00) // SKCTL = 0 -> full reset
	if p.ReadRegister(0x0F) != 0xFF {
		t.Fatalf("expected SKSTAT reset to 0xFF")
	}
}

func TestFillBufferProducesFullFrame(t *testing.T) {
	p := newTestPOKEY()
	p.WriteRegister(0x00, 0x20) // AUDF1
	p.WriteRegister(0x01, 0x0F) // AUDC1: pure tone, full volume

	region := config.NTSC
	for scanline := 0; scanline < region.ScanlinesPerFrame(); scanline++ {
		p.FillBuffer(scanline)
	}
	frame := p.TakeFrame()
	if len(frame) != 44100/60 {
		t.Fatalf("expected %d samples per frame, got %d", 44100/60, len(frame))
	}
}

// Each RANDOM read steps the polynomial counters, and the byte it
// exposes is a lossy view of the 17-bit LFSR's 131071 states, so 512
// reads should turn up a wide spread of values rather than collapsing
// onto a short sub-cycle.
func TestRandomVaries(t *testing.T) {
	p := newTestPOKEY()
	seen := make(map[byte]bool)
	for i := 0; i < 512; i++ {
		seen[p.ReadRegister(0x0A)] = true
	}
	if len(seen) < 32 {
		t.Fatalf("expected RANDOM to take on a wide spread of values, saw only %d distinct", len(seen))
	}
}
