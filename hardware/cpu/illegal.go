package cpu

// executeIllegal implements the stable illegal 6502 opcode subset, used
// only when Config.StrictIllegalOpcodes is set. ok is false for any
// opcode not in this subset, letting the caller fall back to generic NOP
// handling.
func (c *CPU) executeIllegal(opcode byte) (int, bool) {
	switch opcode {

	// LAX: LDA+LDX combined
	case 0xA7:
		c.A = c.bus.Read(c.addrZeroPage())
		c.X = c.A
		c.Status.setNZ(c.A)
		return 3, true
	case 0xB7:
		c.A = c.bus.Read(c.addrZeroPageY())
		c.X = c.A
		c.Status.setNZ(c.A)
		return 4, true
	case 0xAF:
		c.A = c.bus.Read(c.addrAbsolute())
		c.X = c.A
		c.Status.setNZ(c.A)
		return 4, true
	case 0xBF:
		addr, crossed := c.addrAbsoluteY()
		c.A = c.bus.Read(addr)
		c.X = c.A
		c.Status.setNZ(c.A)
		return extra(4, crossed), true
	case 0xA3:
		c.A = c.bus.Read(c.addrIndirectX())
		c.X = c.A
		c.Status.setNZ(c.A)
		return 6, true
	case 0xB3:
		addr, crossed := c.addrIndirectY()
		c.A = c.bus.Read(addr)
		c.X = c.A
		c.Status.setNZ(c.A)
		return extra(5, crossed), true

	// SAX: store A&X
	case 0x87:
		c.bus.Write(c.addrZeroPage(), c.A&c.X)
		return 3, true
	case 0x97:
		c.bus.Write(c.addrZeroPageY(), c.A&c.X)
		return 4, true
	case 0x8F:
		c.bus.Write(c.addrAbsolute(), c.A&c.X)
		return 4, true
	case 0x83:
		c.bus.Write(c.addrIndirectX(), c.A&c.X)
		return 6, true

	// DCP: DEC then CMP
	case 0xC7:
		c.illegalDCP(c.addrZeroPage())
		return 5, true
	case 0xD7:
		c.illegalDCP(c.addrZeroPageX())
		return 6, true
	case 0xCF:
		c.illegalDCP(c.addrAbsolute())
		return 6, true
	case 0xDF:
		addr, _ := c.addrAbsoluteX()
		c.illegalDCP(addr)
		return 7, true
	case 0xDB:
		addr, _ := c.addrAbsoluteY()
		c.illegalDCP(addr)
		return 7, true
	case 0xC3:
		c.illegalDCP(c.addrIndirectX())
		return 8, true
	case 0xD3:
		addr, _ := c.addrIndirectY()
		c.illegalDCP(addr)
		return 8, true

	// ISB/ISC: INC then SBC
	case 0xE7:
		c.illegalISB(c.addrZeroPage())
		return 5, true
	case 0xF7:
		c.illegalISB(c.addrZeroPageX())
		return 6, true
	case 0xEF:
		c.illegalISB(c.addrAbsolute())
		return 6, true
	case 0xFF:
		addr, _ := c.addrAbsoluteX()
		c.illegalISB(addr)
		return 7, true
	case 0xFB:
		addr, _ := c.addrAbsoluteY()
		c.illegalISB(addr)
		return 7, true
	case 0xE3:
		c.illegalISB(c.addrIndirectX())
		return 8, true
	case 0xF3:
		addr, _ := c.addrIndirectY()
		c.illegalISB(addr)
		return 8, true

	// SLO: ASL then ORA
	case 0x07:
		c.illegalSLO(c.addrZeroPage())
		return 5, true
	case 0x17:
		c.illegalSLO(c.addrZeroPageX())
		return 6, true
	case 0x0F:
		c.illegalSLO(c.addrAbsolute())
		return 6, true
	case 0x1F:
		addr, _ := c.addrAbsoluteX()
		c.illegalSLO(addr)
		return 7, true
	case 0x1B:
		addr, _ := c.addrAbsoluteY()
		c.illegalSLO(addr)
		return 7, true
	case 0x03:
		c.illegalSLO(c.addrIndirectX())
		return 8, true
	case 0x13:
		addr, _ := c.addrIndirectY()
		c.illegalSLO(addr)
		return 8, true

	// RLA: ROL then AND
	case 0x27:
		c.illegalRLA(c.addrZeroPage())
		return 5, true
	case 0x37:
		c.illegalRLA(c.addrZeroPageX())
		return 6, true
	case 0x2F:
		c.illegalRLA(c.addrAbsolute())
		return 6, true
	case 0x3F:
		addr, _ := c.addrAbsoluteX()
		c.illegalRLA(addr)
		return 7, true
	case 0x3B:
		addr, _ := c.addrAbsoluteY()
		c.illegalRLA(addr)
		return 7, true
	case 0x23:
		c.illegalRLA(c.addrIndirectX())
		return 8, true
	case 0x33:
		addr, _ := c.addrIndirectY()
		c.illegalRLA(addr)
		return 8, true

	// SRE: LSR then EOR
	case 0x47:
		c.illegalSRE(c.addrZeroPage())
		return 5, true
	case 0x57:
		c.illegalSRE(c.addrZeroPageX())
		return 6, true
	case 0x4F:
		c.illegalSRE(c.addrAbsolute())
		return 6, true
	case 0x5F:
		addr, _ := c.addrAbsoluteX()
		c.illegalSRE(addr)
		return 7, true
	case 0x5B:
		addr, _ := c.addrAbsoluteY()
		c.illegalSRE(addr)
		return 7, true
	case 0x43:
		c.illegalSRE(c.addrIndirectX())
		return 8, true
	case 0x53:
		addr, _ := c.addrIndirectY()
		c.illegalSRE(addr)
		return 8, true

	// RRA: ROR then ADC
	case 0x67:
		c.illegalRRA(c.addrZeroPage())
		return 5, true
	case 0x77:
		c.illegalRRA(c.addrZeroPageX())
		return 6, true
	case 0x6F:
		c.illegalRRA(c.addrAbsolute())
		return 6, true
	case 0x7F:
		addr, _ := c.addrAbsoluteX()
		c.illegalRRA(addr)
		return 7, true
	case 0x7B:
		addr, _ := c.addrAbsoluteY()
		c.illegalRRA(addr)
		return 7, true
	case 0x63:
		c.illegalRRA(c.addrIndirectX())
		return 8, true
	case 0x73:
		addr, _ := c.addrIndirectY()
		c.illegalRRA(addr)
		return 8, true

	// ANC: AND #imm, then copy bit 7 into carry as if ASL had run
	case 0x0B, 0x2B:
		c.A &= c.fetchByte()
		c.Status.setNZ(c.A)
		c.Status.Carry = c.A&0x80 != 0
		return 2, true

	// ALR/ASR: AND #imm then LSR A
	case 0x4B:
		c.A &= c.fetchByte()
		c.A = c.lsr(c.A)
		return 2, true

	// ARR: AND #imm then ROR A, with carry/overflow derived from the
	// result's top two bits per the stable illegal-opcode definition.
	case 0x6B:
		c.A &= c.fetchByte()
		c.A = c.ror(c.A)
		c.Status.Carry = c.A&0x40 != 0
		c.Status.Overflow = (c.A>>6)&1 != (c.A>>5)&1
		return 2, true

	// AXS/SBX: X = (A&X) - imm, no borrow in, sets carry/N/Z like CMP.
	case 0xCB:
		v := c.fetchByte()
		ax := c.A & c.X
		c.Status.Carry = ax >= v
		c.X = ax - v
		c.Status.setNZ(c.X)
		return 2, true
	}

	return 0, false
}

func (c *CPU) illegalDCP(addr uint16) {
	v := c.bus.Read(addr) - 1
	c.bus.Write(addr, v)
	c.cmp(c.A, v)
}

func (c *CPU) illegalISB(addr uint16) {
	v := c.bus.Read(addr) + 1
	c.bus.Write(addr, v)
	c.sbc(v)
}

func (c *CPU) illegalSLO(addr uint16) {
	v := c.asl(c.bus.Read(addr))
	c.bus.Write(addr, v)
	c.A |= v
	c.Status.setNZ(c.A)
}

func (c *CPU) illegalRLA(addr uint16) {
	v := c.rol(c.bus.Read(addr))
	c.bus.Write(addr, v)
	c.A &= v
	c.Status.setNZ(c.A)
}

func (c *CPU) illegalSRE(addr uint16) {
	v := c.lsr(c.bus.Read(addr))
	c.bus.Write(addr, v)
	c.A ^= v
	c.Status.setNZ(c.A)
}

func (c *CPU) illegalRRA(addr uint16) {
	v := c.ror(c.bus.Read(addr))
	c.bus.Write(addr, v)
	c.adc(v)
}

// isKnownIllegalOpcode reports whether opcode is one of the byte values
// the 6502 leaves undefined as a useful instruction but which does not
// lock up the bus. These default to a 2-byte, 2-cycle NOP when
// StrictIllegalOpcodes is off, or when strict mode is on but the opcode
// falls outside the stable subset (XAA, AHX, TAS, SHY, SHX, LAS are not
// implemented — too unstable across silicon revisions to be worth
// modelling here).
//
// The twelve genuine "JAM"/KIL opcodes (0x02, 0x12, 0x22, 0x32, 0x42,
// 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2) are deliberately excluded: on
// real hardware they halt the bus, which this module surfaces as
// CPUHalt, giving the documented failure mode in spec §4.A something to
// trigger on.
func isKnownIllegalOpcode(opcode byte) bool {
	switch opcode {
	case 0x03, 0x04, 0x07, 0x0B, 0x0C, 0x0F,
		0x13, 0x14, 0x17, 0x1A, 0x1B, 0x1C, 0x1F,
		0x23, 0x27, 0x2B, 0x2F,
		0x33, 0x34, 0x37, 0x3A, 0x3B, 0x3C, 0x3F,
		0x43, 0x44, 0x47, 0x4B, 0x4F,
		0x53, 0x54, 0x57, 0x5A, 0x5B, 0x5C, 0x5F,
		0x63, 0x64, 0x67, 0x6B, 0x6F,
		0x73, 0x74, 0x77, 0x7A, 0x7B, 0x7C, 0x7F,
		0x80, 0x82, 0x83, 0x87, 0x89, 0x8B, 0x8F,
		0x93, 0x97, 0x9B, 0x9C, 0x9E, 0x9F,
		0xA3, 0xA7, 0xAB, 0xAF,
		0xB3, 0xB7, 0xBB, 0xBF,
		0xC2, 0xC3, 0xC7, 0xCB, 0xCF,
		0xD3, 0xD4, 0xD7, 0xDA, 0xDB, 0xDC, 0xDF,
		0xE2, 0xE3, 0xE7, 0xEB, 0xEF,
		0xF3, 0xF4, 0xF7, 0xFA, 0xFB, 0xFC, 0xFF:
		return true
	}
	return false
}
