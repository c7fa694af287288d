package fileload_test

import (
	"testing"

	"github.com/retrostack/atari800core/errors"
	"github.com/retrostack/atari800core/fileload"
	"github.com/retrostack/atari800core/hardware/memory"
)

func TestLoadBinaryCopiesAndSetsPC(t *testing.T) {
	os, basic := makeROMs()
	bus, _ := memory.NewBus(os, basic)

	var pc uint16
	if err := fileload.LoadBinary(bus, &pc, []byte{0xDE, 0xAD, 0xBE, 0xEF}, 0x4000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pc != 0x4000 {
		t.Fatalf("expected PC = $4000, got %#x", pc)
	}
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	for i, w := range want {
		if got := bus.Read(0x4000 + uint16(i)); got != w {
			t.Fatalf("byte %d: got %#x, want %#x", i, got, w)
		}
	}
}

func TestLoadBinaryRejectsOverrun(t *testing.T) {
	os, basic := makeROMs()
	bus, _ := memory.NewBus(os, basic)

	var pc uint16
	err := fileload.LoadBinary(bus, &pc, make([]byte, 0x2000), 0xF000)
	if !errors.Is(err, errors.FileFormat) {
		t.Fatalf("expected a FileFormat error when the binary overruns the address space, got %v", err)
	}
}
