package fileload

import "github.com/retrostack/atari800core/errors"

const (
	atrHeaderSize = 16
	atrBootSectors = 3
	atrBootSectorSize = 128
)

// ATR is a mounted disk image held entirely in memory: sector reads and
// writes slice directly into the backing byte array rather than
// re-opening a file handle per call.
type ATR struct {
	data       []byte
	sectorSize int
	sectors    int
}

// MountATR parses a 16-byte ATR header (signature $96 $02, 16-bit
// sector size, paragraph count with its high byte in header[6]) and
// returns a disk ready for sector I/O. The first three sectors are
// always 128 bytes regardless of the image's configured sector size,
// matching the boot-sector convention every Atari DOS assumes.
func MountATR(data []byte) (*ATR, error) {
	if len(data) < atrHeaderSize {
		return nil, errors.New(errors.FileFormat, "ATR image shorter than its header")
	}
	if data[0] != 0x96 || data[1] != 0x02 {
		return nil, errors.New(errors.FileFormat, "bad ATR signature")
	}

	paragraphs := uint32(data[2]) | uint32(data[3])<<8 | uint32(data[6])<<16
	imageSize := paragraphs * 16
	sectorSize := int(data[4]) | int(data[5])<<8
	if sectorSize <= 0 {
		return nil, errors.New(errors.FileFormat, "ATR sector size must be positive")
	}

	bootSize := uint32(atrBootSectors * atrBootSectorSize)
	var sectors uint32
	if imageSize > bootSize {
		sectors = atrBootSectors + (imageSize-bootSize)/uint32(sectorSize)
	} else {
		sectors = imageSize / atrBootSectorSize
	}

	return &ATR{data: data, sectorSize: sectorSize, sectors: int(sectors)}, nil
}

// SectorCount reports the number of addressable sectors, 1-based like
// the DOS calls that reference them.
func (a *ATR) SectorCount() int { return a.sectors }

func (a *ATR) sectorOffsetAndSize(sector int) (offset, size int, err error) {
	if sector <= 0 || sector > a.sectors {
		return 0, 0, errors.New(errors.FileFormat, "sector out of range")
	}
	offset = atrHeaderSize
	if sector <= atrBootSectors {
		offset += (sector - 1) * atrBootSectorSize
		size = atrBootSectorSize
	} else {
		offset += atrBootSectors*atrBootSectorSize + (sector-atrBootSectors-1)*a.sectorSize
		size = a.sectorSize
	}
	return offset, size, nil
}

// ReadSector returns a copy of sector's bytes, zero-padded if the
// image is shorter than the header claims.
func (a *ATR) ReadSector(sector int) ([]byte, error) {
	offset, size, err := a.sectorOffsetAndSize(sector)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	n := copy(buf, a.data[min(offset, len(a.data)):min(offset+size, len(a.data))])
	_ = n
	return buf, nil
}

// WriteSector overwrites sector's bytes in place in the backing image.
// buf longer than the sector size is truncated; shorter leaves the
// remainder untouched.
func (a *ATR) WriteSector(sector int, buf []byte) error {
	offset, size, err := a.sectorOffsetAndSize(sector)
	if err != nil {
		return err
	}
	if offset+size > len(a.data) {
		return errors.New(errors.FileFormat, "sector extends past end of image")
	}
	n := len(buf)
	if n > size {
		n = size
	}
	copy(a.data[offset:offset+n], buf[:n])
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
