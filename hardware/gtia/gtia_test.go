package gtia_test

import (
	"testing"

	"github.com/retrostack/atari800core/config"
	"github.com/retrostack/atari800core/hardware/gtia"
)

func TestColorRegisterRoundTrip(t *testing.T) {
	g := gtia.NewGTIA(config.Default())
	g.WriteRegister(0x16, 0x2A) // COLPF0
	g.WriteRegister(0x1A, 0x00) // COLBK
	if g.Playfield(0) != 0x2A {
		t.Fatalf("expected COLPF0 readback 0x2A, got %#x", g.Playfield(0))
	}
	if g.Background() != 0x00 {
		t.Fatalf("expected COLBK readback 0x00, got %#x", g.Background())
	}
}

func TestPlayerMissilePlayfieldCollision(t *testing.T) {
	g := gtia.NewGTIA(config.Default())
	g.WriteRegister(0x16, 0x2A) // COLPF0
	g.WriteRegister(0x1A, 0x00) // COLBK

	line := make([]byte, gtia.FrameWidth)
	for i := range line {
		line[i] = 0x2A // entire row lit with COLPF0
	}

	// Player 0 at hpos 0x20, normal size, graphics byte $FF: fully solid.
	g.WriteRegister(0x00, 0x20) // HPOSP0
	g.WriteRegister(0x08, 0x00) // SIZEP0 normal
	g.WriteRegister(0x0D, 0xFF) // GRAFP0

	g.ComposeScanline(line)

	if got := g.ReadRegister(0x04); got&0x01 == 0 { // P0PF
		t.Fatalf("expected player 0 to collide with COLPF0, got %#x", got)
	}
}

func TestTriggerAndConsoleActiveLow(t *testing.T) {
	g := gtia.NewGTIA(config.Default())
	if g.ReadRegister(0x10) != 1 {
		t.Fatalf("expected trigger 0 released (1) at reset")
	}
	g.SetTrigger(0, true)
	if g.ReadRegister(0x10) != 0 {
		t.Fatalf("expected trigger 0 pressed (0)")
	}

	g.SetConsole(true, false, false)
	consol := g.ReadRegister(0x1F)
	if consol&0x01 != 0 {
		t.Fatalf("expected START bit clear when pressed, got %#x", consol)
	}
}

func TestHITCLRResetsCollisions(t *testing.T) {
	g := gtia.NewGTIA(config.Default())
	g.WriteRegister(0x16, 0x2A)
	line := make([]byte, gtia.FrameWidth)
	for i := range line {
		line[i] = 0x2A
	}
	g.WriteRegister(0x00, 0x20)
	g.WriteRegister(0x0D, 0xFF)
	g.ComposeScanline(line)
	if g.ReadRegister(0x04) == 0 {
		t.Fatalf("expected a collision to have been recorded")
	}

	g.WriteRegister(0x1E, 0x00) // HITCLR
	if g.ReadRegister(0x04) != 0 {
		t.Fatalf("expected collisions cleared after HITCLR")
	}
}
