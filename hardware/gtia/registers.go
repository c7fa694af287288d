package gtia

// Write-register offsets (from $D000, masked to &0x1F).
const (
	regHPOSP0 = 0x00
	regHPOSP1 = 0x01
	regHPOSP2 = 0x02
	regHPOSP3 = 0x03
	regHPOSM0 = 0x04
	regHPOSM1 = 0x05
	regHPOSM2 = 0x06
	regHPOSM3 = 0x07
	regSIZEP0 = 0x08
	regSIZEP1 = 0x09
	regSIZEP2 = 0x0A
	regSIZEP3 = 0x0B
	regSIZEM  = 0x0C
	regGRAFP0 = 0x0D
	regGRAFP1 = 0x0E
	regGRAFP2 = 0x0F
	regGRAFP3 = 0x10
	regGRAFM  = 0x11
	regCOLPM0 = 0x12
	regCOLPM1 = 0x13
	regCOLPM2 = 0x14
	regCOLPM3 = 0x15
	regCOLPF0 = 0x16
	regCOLPF1 = 0x17
	regCOLPF2 = 0x18
	regCOLPF3 = 0x19
	regCOLBK  = 0x1A
	regPRIOR  = 0x1B
	regVDELAY = 0x1C
	regGRACTL = 0x1D
	regHITCLR = 0x1E
	regCONSOL = 0x1F
)

// Read-register offsets (collisions and inputs share the write block's
// address space but mean something else entirely).
const (
	regM0PF  = 0x00
	regM1PF  = 0x01
	regM2PF  = 0x02
	regM3PF  = 0x03
	regP0PF  = 0x04
	regP1PF  = 0x05
	regP2PF  = 0x06
	regP3PF  = 0x07
	regM0PL  = 0x08
	regM1PL  = 0x09
	regM2PL  = 0x0A
	regM3PL  = 0x0B
	regP0PL  = 0x0C
	regP1PL  = 0x0D
	regP2PL  = 0x0E
	regP3PL  = 0x0F
	regTRIG0 = 0x10
	regTRIG1 = 0x11
	regTRIG2 = 0x12
	regTRIG3 = 0x13
	regPALNTSC = 0x14
)

// PRIOR register bits.
const (
	priorP01Above = 0x01
	priorP23Above = 0x02
	priorPFAbove  = 0x04
	priorMultic   = 0x20
	priorGTIAMode = 0xC0
)

// ReadRegister implements memory.Chip.
func (g *GTIA) ReadRegister(addr uint16) byte {
	switch addr & 0x1F {
	case regM0PF:
		return g.m2pf[0]
	case regM1PF:
		return g.m2pf[1]
	case regM2PF:
		return g.m2pf[2]
	case regM3PF:
		return g.m2pf[3]
	case regP0PF:
		return g.p2pf[0]
	case regP1PF:
		return g.p2pf[1]
	case regP2PF:
		return g.p2pf[2]
	case regP3PF:
		return g.p2pf[3]
	case regM0PL:
		return g.m2pl[0]
	case regM1PL:
		return g.m2pl[1]
	case regM2PL:
		return g.m2pl[2]
	case regM3PL:
		return g.m2pl[3]
	case regP0PL:
		return g.p2pl[0]
	case regP1PL:
		return g.p2pl[1]
	case regP2PL:
		return g.p2pl[2]
	case regP3PL:
		return g.p2pl[3]
	case regTRIG0:
		return g.trig[0]
	case regTRIG1:
		return g.trig[1]
	case regTRIG2:
		return g.trig[2]
	case regTRIG3:
		return g.trig[3]
	case regPALNTSC:
		if g.pal {
			return 0x01
		}
		return 0x0F
	case regCONSOL:
		return g.consol | 0xF8
	default:
		return 0xFF
	}
}

// WriteRegister implements memory.Chip.
func (g *GTIA) WriteRegister(addr uint16, v byte) {
	switch addr & 0x1F {
	case regHPOSP0:
		g.hposp[0] = v
	case regHPOSP1:
		g.hposp[1] = v
	case regHPOSP2:
		g.hposp[2] = v
	case regHPOSP3:
		g.hposp[3] = v
	case regHPOSM0:
		g.hposm[0] = v
	case regHPOSM1:
		g.hposm[1] = v
	case regHPOSM2:
		g.hposm[2] = v
	case regHPOSM3:
		g.hposm[3] = v
	case regSIZEP0:
		g.sizep[0] = v & 0x03
	case regSIZEP1:
		g.sizep[1] = v & 0x03
	case regSIZEP2:
		g.sizep[2] = v & 0x03
	case regSIZEP3:
		g.sizep[3] = v & 0x03
	case regSIZEM:
		g.sizem = v
	case regGRAFP0:
		g.grafp[0] = v
	case regGRAFP1:
		g.grafp[1] = v
	case regGRAFP2:
		g.grafp[2] = v
	case regGRAFP3:
		g.grafp[3] = v
	case regGRAFM:
		g.grafm = v
	case regCOLPM0:
		g.colpm[0] = v
	case regCOLPM1:
		g.colpm[1] = v
	case regCOLPM2:
		g.colpm[2] = v
	case regCOLPM3:
		g.colpm[3] = v
	case regCOLPF0:
		g.colpf[0] = v
	case regCOLPF1:
		g.colpf[1] = v
	case regCOLPF2:
		g.colpf[2] = v
	case regCOLPF3:
		g.colpf[3] = v
	case regCOLBK:
		g.colbk = v
	case regPRIOR:
		g.prior = v
	case regVDELAY:
		g.vdelay = v
	case regGRACTL:
		g.gractl = v
	case regHITCLR:
		g.clearCollisions()
	case regCONSOL:
		// Bit 3 drives the console speaker; the emulated core has no
		// speaker sink wired to GTIA, so the write is accepted and
		// otherwise ignored.
	}
}

func (g *GTIA) clearCollisions() {
	g.m2pf = [4]byte{}
	g.p2pf = [4]byte{}
	g.m2pl = [4]byte{}
	g.p2pl = [4]byte{}
}
