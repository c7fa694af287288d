package pokey

const (
	regAUDF1  = 0x00
	regAUDC1  = 0x01
	regAUDF2  = 0x02
	regAUDC2  = 0x03
	regAUDF3  = 0x04
	regAUDC3  = 0x05
	regAUDF4  = 0x06
	regAUDC4  = 0x07
	regAUDCTL = 0x08
	regSTIMER = 0x09
	regSKREST = 0x0A
	regPOTGO  = 0x0B
	regSEROUT = 0x0D
	regIRQEN  = 0x0E
	regSKCTL  = 0x0F
)

const (
	regPOT0   = 0x00
	regALLPOT = 0x08
	regKBCODE = 0x09
	regRANDOM = 0x0A
	regSERIN  = 0x0D
	regIRQST  = 0x0E
	regSKSTAT = 0x0F
)

// ReadRegister implements memory.Chip.
func (p *POKEY) ReadRegister(addr uint16) byte {
	a := byte(addr & 0x0F)
	if a <= 0x07 {
		return p.pot[a]
	}
	switch a {
	case regALLPOT:
		return p.allpot
	case regKBCODE:
		return p.kbcode
	case regRANDOM:
		p.updatePolynomials()
		return p.random
	case regSERIN:
		return p.serin
	case regIRQST:
		return p.irqst
	case regSKSTAT:
		return p.skstat
	default:
		return 0xFF
	}
}

// WriteRegister implements memory.Chip.
func (p *POKEY) WriteRegister(addr uint16, v byte) {
	switch addr & 0x0F {
	case regAUDF1:
		p.ch[0].audf = v
		p.updateChannelPeriods()
	case regAUDC1:
		p.ch[0].audc = v
	case regAUDF2:
		p.ch[1].audf = v
		p.updateChannelPeriods()
	case regAUDC2:
		p.ch[1].audc = v
	case regAUDF3:
		p.ch[2].audf = v
		p.updateChannelPeriods()
	case regAUDC3:
		p.ch[2].audc = v
	case regAUDF4:
		p.ch[3].audf = v
		p.updateChannelPeriods()
	case regAUDC4:
		p.ch[3].audc = v
	case regAUDCTL:
		p.audctl = v
		p.poly9Mode = v&audctlPoly9 != 0
		p.ch1At179 = v&audctlCh1_179 != 0
		p.ch3At179 = v&audctlCh3_179 != 0
		p.ch12Joined = v&audctlCh1Ch2 != 0
		p.ch34Joined = v&audctlCh3Ch4 != 0
		p.ch1Highpass = v&audctlCh1HPFilt != 0
		p.ch2Highpass = v&audctlCh2HPFilt != 0
		p.clock15k = v&audctl15KHz != 0
		p.updateChannelPeriods()
	case regSTIMER:
		for i := range p.ch {
			p.ch[i].divider = p.ch[i].period
		}
	case regSKREST:
		p.skstat = 0xFF
	case regPOTGO:
		p.allpot = 0x00
	case regSEROUT:
		p.serout = v
		if p.irqen&IRQSerialOut != 0 {
			p.irqst &^= IRQSerialOut
		}
	case regIRQEN:
		p.irqen = v
		p.irqst |= ^v
	case regSKCTL:
		p.skctl = v
		if v == 0 {
			p.Reset()
		}
	}
}
