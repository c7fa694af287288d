package antic

import (
	"testing"

	"github.com/retrostack/atari800core/config"
)

func newTestANTIC(mem *[65536]byte) *ANTIC {
	cfg := config.Default()
	cfg.Region = config.PAL
	return NewANTIC(cfg, func(addr uint16) byte { return mem[addr] })
}

// A WSYNC write must halt further CPU cycle consumption until the
// scanline finishes, regardless of how many cycles the scanline's DMA
// already charged.
func TestWSYNCHalt(t *testing.T) {
	var mem [65536]byte
	a := newTestANTIC(&mem)
	a.dmactl = 0 // DMA disabled: PrepareScanline charges nothing
	a.scanline = 40

	budget := 114 - a.PrepareScanline()

	cyclesUsed := 30
	a.WriteRegister(regWSYNC, 0)
	if !a.WSYNCHalted() {
		t.Fatalf("expected WSYNC to halt the scanline")
	}

	for cyclesUsed < budget && !a.WSYNCHalted() {
		cyclesUsed++
	}
	if cyclesUsed != 30 {
		t.Fatalf("expected zero cycles consumed after WSYNC, got %d extra", cyclesUsed-30)
	}

	a.FinishScanline()
	if a.WSYNCHalted() {
		t.Fatalf("expected WSYNC release after FinishScanline")
	}
}

// Walking a short display list: 24 blank scanlines (three 0x70
// instructions), then four mode-2 rows (32 scanlines, the first
// carrying an LMS), then a JVB back to the list's own start.
func TestDisplayListWalk(t *testing.T) {
	var mem [65536]byte
	dl := []byte{0x70, 0x70, 0x70, 0x42, 0x40, 0x06, 0x02, 0x02, 0x02, 0x41, 0x00, 0x06}
	copy(mem[0x0600:], dl)

	a := newTestANTIC(&mem)
	a.dmactl = dmactlDL | playfieldStandard
	a.dlist = 0x0600
	a.dlPC = 0x0600
	a.scanline = 20 // past the vertical-blank zone

	var modes [56]int
	for i := range modes {
		a.PrepareScanline()
		modes[i] = a.currentMode
		a.FinishScanline()
	}

	for i := 0; i < 24; i++ {
		if modes[i] != 0 {
			t.Fatalf("scanline %d: expected blank mode 0, got %d", i, modes[i])
		}
	}
	for i := 24; i < 56; i++ {
		if modes[i] != 2 {
			t.Fatalf("scanline %d: expected mode 2, got %d", i, modes[i])
		}
	}

	a.PrepareScanline()
	if a.currentMode != 0 {
		t.Fatalf("expected blank mode after JVB, got %d", a.currentMode)
	}
	if a.inDisplayList {
		t.Fatalf("expected display-list processing to halt after JVB")
	}

	if got := config.PAL.FrameRate(); got != 50.0 {
		t.Fatalf("expected PAL frame rate 50, got %v", got)
	}
}

func TestCheckDLIOneShot(t *testing.T) {
	var mem [65536]byte
	a := newTestANTIC(&mem)
	a.dliPending = true
	if !a.CheckDLI() {
		t.Fatalf("expected pending DLI")
	}
	if a.CheckDLI() {
		t.Fatalf("expected DLI flag to clear after one read")
	}
}
