package fileload_test

import (
	"testing"

	"github.com/retrostack/atari800core/errors"
	"github.com/retrostack/atari800core/fileload"
)

// buildATR constructs a minimal single-density image: 3 boot sectors of
// 128 bytes plus extraSectors more of sectorSize bytes each.
func buildATR(sectorSize, extraSectors int) []byte {
	bootBytes := 3 * 128
	bodyBytes := extraSectors * sectorSize
	imageSize := bootBytes + bodyBytes
	paragraphs := imageSize / 16

	data := make([]byte, 16+imageSize)
	data[0], data[1] = 0x96, 0x02
	data[2] = byte(paragraphs)
	data[3] = byte(paragraphs >> 8)
	data[4] = byte(sectorSize)
	data[5] = byte(sectorSize >> 8)
	data[6] = byte(paragraphs >> 16)
	return data
}

func TestMountATRRejectsBadSignature(t *testing.T) {
	data := buildATR(128, 4)
	data[0] = 0x00
	if _, err := fileload.MountATR(data); !errors.Is(err, errors.FileFormat) {
		t.Fatalf("expected a FileFormat error for a bad signature, got %v", err)
	}
}

func TestATRSectorRoundTrip(t *testing.T) {
	data := buildATR(256, 4)
	atr, err := fileload.MountATR(data)
	if err != nil {
		t.Fatalf("unexpected error mounting: %v", err)
	}
	if got := atr.SectorCount(); got != 7 {
		t.Fatalf("expected 7 sectors (3 boot + 4 body), got %d", got)
	}

	payload := make([]byte, 256)
	for i := range payload {
		payload[i] = byte(i)
	}
	if err := atr.WriteSector(4, payload); err != nil {
		t.Fatalf("unexpected error writing sector 4: %v", err)
	}
	readBack, err := atr.ReadSector(4)
	if err != nil {
		t.Fatalf("unexpected error reading sector 4: %v", err)
	}
	for i := range payload {
		if readBack[i] != payload[i] {
			t.Fatalf("byte %d: got %#x, want %#x", i, readBack[i], payload[i])
		}
	}
}

func TestATRBootSectorsAreAlways128Bytes(t *testing.T) {
	data := buildATR(256, 4)
	atr, _ := fileload.MountATR(data)

	sector, err := atr.ReadSector(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sector) != 128 {
		t.Fatalf("expected boot sector 1 to be 128 bytes even though body sectors are 256, got %d", len(sector))
	}
}

func TestATRRejectsOutOfRangeSector(t *testing.T) {
	data := buildATR(128, 2)
	atr, _ := fileload.MountATR(data)
	if _, err := atr.ReadSector(0); !errors.Is(err, errors.FileFormat) {
		t.Fatalf("expected a FileFormat error for sector 0, got %v", err)
	}
	if _, err := atr.ReadSector(99); !errors.Is(err, errors.FileFormat) {
		t.Fatalf("expected a FileFormat error for an out-of-range sector, got %v", err)
	}
}
