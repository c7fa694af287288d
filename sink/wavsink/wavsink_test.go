package wavsink

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCloseWritesNonEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	w := New(path, 44100)

	if err := w.PushSamples([]int16{0, 100, -100, 32767, -32768}); err != nil {
		t.Fatalf("unexpected error pushing samples: %v", err)
	}
	if err := w.PushSamples([]int16{42}); err != nil {
		t.Fatalf("unexpected error pushing samples: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error closing: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected a non-empty WAV file")
	}
}

func TestPushSamplesAccumulates(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "out.wav"), 44100)
	w.PushSamples([]int16{1, 2, 3})
	w.PushSamples([]int16{4, 5})
	if len(w.data) != 5 {
		t.Fatalf("expected 5 accumulated samples, got %d", len(w.data))
	}
}
