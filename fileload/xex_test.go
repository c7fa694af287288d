package fileload_test

import (
	"testing"

	"github.com/retrostack/atari800core/errors"
	"github.com/retrostack/atari800core/fileload"
	"github.com/retrostack/atari800core/hardware/memory"
)

func makeROMs() ([]byte, []byte) {
	os := make([]byte, 0x4000)
	os[0x3FFC], os[0x3FFD] = 0x00, 0xC0
	return os, make([]byte, 0x2000)
}

type fakeCaller struct {
	called []uint16
}

func (f *fakeCaller) Call(addr uint16) { f.called = append(f.called, addr) }

// The round-trip law: loading a segment [a, a+k) leaves RAM bytes in
// that range equal to the input and every other byte unchanged.
func TestLoadXEXRoundTrip(t *testing.T) {
	os, basic := makeROMs()
	bus, _ := memory.NewBus(os, basic)
	bus.Write(0x3000, 0xAA) // a byte outside the segment that must survive

	data := []byte{0xFF, 0xFF, 0x00, 0x60, 0x02, 0x60, 0x11, 0x22, 0x33}
	var pc uint16
	if err := fileload.LoadXEX(bus, nil, &pc, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []byte{0x11, 0x22, 0x33}
	for i, w := range want {
		if got := bus.Read(0x6000 + uint16(i)); got != w {
			t.Fatalf("byte %d: got %#x, want %#x", i, got, w)
		}
	}
	if got := bus.Read(0x3000); got != 0xAA {
		t.Fatalf("expected untouched byte to survive the load, got %#x", got)
	}
}

func TestLoadXEXMultipleSegmentsAndRunAddress(t *testing.T) {
	os, basic := makeROMs()
	bus, _ := memory.NewBus(os, basic)

	data := []byte{
		0xFF, 0xFF,
		0x00, 0x60, 0x01, 0x60, 0xAB, 0xCD,
		0xFF, 0xFF,
		0xE0, 0x02, 0xE1, 0x02, 0x00, 0x70, // writes RUNAD = $7000
	}
	var pc uint16
	if err := fileload.LoadXEX(bus, nil, &pc, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pc != 0x7000 {
		t.Fatalf("expected PC set to RUNAD $7000, got %#x", pc)
	}
}

func TestLoadXEXInvokesInitad(t *testing.T) {
	os, basic := makeROMs()
	bus, _ := memory.NewBus(os, basic)
	caller := &fakeCaller{}

	data := []byte{
		0xFF, 0xFF,
		0xE2, 0x02, 0xE3, 0x02, 0x00, 0x50, // writes INITAD = $5000
	}
	var pc uint16
	if err := fileload.LoadXEX(bus, caller, &pc, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(caller.called) != 1 || caller.called[0] != 0x5000 {
		t.Fatalf("expected a single Call(0x5000), got %v", caller.called)
	}
	if got := bus.Read(0x02E2); got != 0 || bus.Read(0x02E3) != 0 {
		t.Fatalf("expected INITAD cleared after invocation")
	}
}

func TestLoadXEXRejectsMissingHeader(t *testing.T) {
	os, basic := makeROMs()
	bus, _ := memory.NewBus(os, basic)
	var pc uint16
	err := fileload.LoadXEX(bus, nil, &pc, []byte{0x00, 0x60, 0x01, 0x60, 0xAB})
	if !errors.Is(err, errors.FileFormat) {
		t.Fatalf("expected a FileFormat error, got %v", err)
	}
}

func TestLoadXEXRejectsTruncatedSegment(t *testing.T) {
	os, basic := makeROMs()
	bus, _ := memory.NewBus(os, basic)
	var pc uint16
	err := fileload.LoadXEX(bus, nil, &pc, []byte{0xFF, 0xFF, 0x00, 0x60, 0x05, 0x60, 0x11, 0x22})
	if !errors.Is(err, errors.FileFormat) {
		t.Fatalf("expected a FileFormat error for a segment shorter than declared, got %v", err)
	}
}
