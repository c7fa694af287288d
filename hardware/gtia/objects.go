package gtia

// pmUnit returns the number of colour clocks one graphics bit spans for
// a SIZEPn/SIZEM-coded size value.
func pmUnit(size byte) int {
	switch size & 0x03 {
	case 0x01:
		return 2
	case 0x03:
		return 4
	default:
		return 1
	}
}

// missileSize unpacks the 2-bit size field for missile index from SIZEM.
func (g *GTIA) missileSize(index int) byte {
	return (g.sizem >> uint(index*2)) & 0x03
}

// missileGraphics unpacks the 2-bit graphics field for missile index
// from GRAFM.
func (g *GTIA) missileGraphics(index int) byte {
	return (g.grafm >> uint(index*2)) & 0x03
}

func clockToScreenX(cc int) int {
	return cc * FrameWidth / colorClocks
}

// coverage marks, for one scanline, every colour clock a player or
// missile's graphics bits occupy. Bits 0-3 are players 0-3, bits 4-7 are
// missiles 0-3.
type coverage [colorClocks]byte

func (g *GTIA) paintCoverage(cov *coverage) {
	for i := 0; i < 4; i++ {
		unit := pmUnit(g.sizep[i])
		bits := g.grafp[i]
		for bit := 0; bit < 8; bit++ {
			if bits&(1<<uint(7-bit)) == 0 {
				continue
			}
			start := int(g.hposp[i]) + bit*unit
			for cc := start; cc < start+unit && cc < colorClocks; cc++ {
				if cc >= 0 {
					cov[cc] |= 1 << uint(i)
				}
			}
		}
	}
	for i := 0; i < 4; i++ {
		unit := pmUnit(g.missileSize(i))
		bits := g.missileGraphics(i)
		for bit := 0; bit < 2; bit++ {
			if bits&(1<<uint(1-bit)) == 0 {
				continue
			}
			start := int(g.hposm[i]) + bit*unit
			for cc := start; cc < start+unit && cc < colorClocks; cc++ {
				if cc >= 0 {
					cov[cc] |= 1 << uint(4+i)
				}
			}
		}
	}
}

// ComposeScanline layers this scanline's player and missile graphics
// onto line (already filled by antic.RenderLine with playfield and
// background colours), and accumulates collision bits. line must be
// FrameWidth bytes.
func (g *GTIA) ComposeScanline(line []byte) {
	var cov coverage
	g.paintCoverage(&cov)

	for cc := 0; cc < colorClocks; cc++ {
		mask := cov[cc]
		if mask == 0 {
			continue
		}
		x := clockToScreenX(cc)
		if x < 0 || x >= len(line) {
			continue
		}

		pfValue := line[x]
		playfieldLit := pfValue != g.colbk
		pfBits := g.playfieldBits(pfValue)

		for i := 0; i < 4; i++ {
			if mask&(1<<uint(i)) != 0 && playfieldLit {
				g.p2pf[i] |= pfBits
			}
			if mask&(1<<uint(4+i)) != 0 && playfieldLit {
				g.m2pf[i] |= pfBits
			}
		}
		for a := 0; a < 4; a++ {
			for b := 0; b < 4; b++ {
				if a != b && mask&(1<<uint(a)) != 0 && mask&(1<<uint(b)) != 0 {
					g.p2pl[a] |= 1 << uint(b)
				}
			}
		}
		for m := 0; m < 4; m++ {
			for p := 0; p < 4; p++ {
				if mask&(1<<uint(4+m)) != 0 && mask&(1<<uint(p)) != 0 {
					g.m2pl[m] |= 1 << uint(p)
				}
			}
		}

		if color, ok := g.resolveColor(mask, playfieldLit); ok {
			line[x] = color
		}
	}
}

// playfieldBits reports which COLPFn registers a rendered pixel value
// could have come from, bit-encoded (bit0=COLPF0 .. bit3=COLPF3). Two
// playfield registers holding the same byte value are indistinguishable
// once rendered, so both bits are set in that case.
func (g *GTIA) playfieldBits(pixel byte) byte {
	var bits byte
	for i, c := range g.colpf {
		if c == pixel {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

// resolveColor decides the visible colour at a colour clock covered by
// one or more players/missiles, honouring PRIOR's above/below bits. Lower
// player index wins ties within a priority group; missiles take their
// player's priority.
func (g *GTIA) resolveColor(mask byte, playfieldLit bool) (byte, bool) {
	pfAbove := g.prior&priorPFAbove != 0
	group01Above := g.prior&priorP01Above != 0
	group23Above := g.prior&priorP23Above != 0

	for i := 0; i < 4; i++ {
		objBit := byte(1 << uint(i))
		missBit := byte(1 << uint(4+i))
		if mask&(objBit|missBit) == 0 {
			continue
		}
		above := group01Above
		if i >= 2 {
			above = group23Above
		}
		if playfieldLit && pfAbove && !above {
			continue
		}
		return g.colpm[i], true
	}
	return 0, false
}
