package errors_test

import (
	"testing"

	"github.com/retrostack/atari800core/errors"
)

func TestErrorMessage(t *testing.T) {
	e := errors.New(errors.InvalidROM, "OS ROM is 12288 bytes, want 16384")
	want := "invalid ROM: OS ROM is 12288 bytes, want 16384"
	if e.Error() != want {
		t.Errorf("got %q, want %q", e.Error(), want)
	}
}

func TestErrorIs(t *testing.T) {
	var err error = errors.New(errors.CPUHalt, 0x1234, 0x02)
	if !errors.Is(err, errors.CPUHalt) {
		t.Errorf("expected err to be CPUHalt")
	}
	if errors.Is(err, errors.FileFormat) {
		t.Errorf("did not expect err to be FileFormat")
	}
}
