package pia_test

import (
	"testing"

	"github.com/retrostack/atari800core/hardware/memory"
	"github.com/retrostack/atari800core/hardware/pia"
)

// S5 "PIA banking": write $FE to port B (DDR=$FF): OS visible. Write $FF:
// OS not visible.
func TestPIABanking(t *testing.T) {
	var got memory.Banking
	p := pia.NewPIA(func(b memory.Banking) { got = b })

	// Select DDR register (bit2 clear) to program all bits as outputs.
	p.WriteRegister(0x03, 0x00)
	p.WriteRegister(0x01, 0xFF)

	// Back to data register mode, write $FE: bit0 clear -> OS visible.
	p.WriteRegister(0x03, 0x04)
	p.WriteRegister(0x01, 0xFE)
	if !got.OSVisible {
		t.Fatalf("expected OS ROM visible after writing $FE to port B")
	}

	p.WriteRegister(0x01, 0xFF)
	if got.OSVisible {
		t.Fatalf("expected OS ROM not visible after writing $FF to port B")
	}
}

func TestJoystickActiveLow(t *testing.T) {
	p := pia.NewPIA(nil)
	p.SetJoystick1(true, false, false, false, false) // up pressed

	p.WriteRegister(0x02, 0x00) // PACTL: select DDR
	p.WriteRegister(0x00, 0x00) // all four joystick bits as inputs
	p.WriteRegister(0x02, 0x04) // PACTL: select data register

	v := p.ReadRegister(0x00)
	if v&0x01 != 0 {
		t.Fatalf("expected bit0 clear (up pressed, active-low), got $%02x", v)
	}
	if v&0x02 == 0 {
		t.Fatalf("expected bit1 set (down released), got $%02x", v)
	}
}
