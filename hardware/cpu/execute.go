package cpu

// execute decodes and runs the instruction at opcode, returning the
// number of cycles consumed including any conditional page-crossing
// penalty. Addressing modes, page-crossing rules, and interrupt dispatch
// are exactly the ones the instruction set contract describes; unrecognised
// opcodes fall through to the illegal-opcode path.
func (c *CPU) execute(opcode byte) int {
	pcBeforeOperand := c.PC - 1

	switch opcode {

	// ---- load/store ----
	case 0xA9: // LDA #imm
		c.A = c.fetchByte()
		c.Status.setNZ(c.A)
		return 2
	case 0xA5: // LDA zp
		c.A = c.bus.Read(c.addrZeroPage())
		c.Status.setNZ(c.A)
		return 3
	case 0xB5: // LDA zp,X
		c.A = c.bus.Read(c.addrZeroPageX())
		c.Status.setNZ(c.A)
		return 4
	case 0xAD: // LDA abs
		c.A = c.bus.Read(c.addrAbsolute())
		c.Status.setNZ(c.A)
		return 4
	case 0xBD: // LDA abs,X
		addr, crossed := c.addrAbsoluteX()
		c.A = c.bus.Read(addr)
		c.Status.setNZ(c.A)
		return extra(4, crossed)
	case 0xB9: // LDA abs,Y
		addr, crossed := c.addrAbsoluteY()
		c.A = c.bus.Read(addr)
		c.Status.setNZ(c.A)
		return extra(4, crossed)
	case 0xA1: // LDA (ind,X)
		c.A = c.bus.Read(c.addrIndirectX())
		c.Status.setNZ(c.A)
		return 6
	case 0xB1: // LDA (ind),Y
		addr, crossed := c.addrIndirectY()
		c.A = c.bus.Read(addr)
		c.Status.setNZ(c.A)
		return extra(5, crossed)

	case 0xA2: // LDX #imm
		c.X = c.fetchByte()
		c.Status.setNZ(c.X)
		return 2
	case 0xA6:
		c.X = c.bus.Read(c.addrZeroPage())
		c.Status.setNZ(c.X)
		return 3
	case 0xB6:
		c.X = c.bus.Read(c.addrZeroPageY())
		c.Status.setNZ(c.X)
		return 4
	case 0xAE:
		c.X = c.bus.Read(c.addrAbsolute())
		c.Status.setNZ(c.X)
		return 4
	case 0xBE:
		addr, crossed := c.addrAbsoluteY()
		c.X = c.bus.Read(addr)
		c.Status.setNZ(c.X)
		return extra(4, crossed)

	case 0xA0: // LDY #imm
		c.Y = c.fetchByte()
		c.Status.setNZ(c.Y)
		return 2
	case 0xA4:
		c.Y = c.bus.Read(c.addrZeroPage())
		c.Status.setNZ(c.Y)
		return 3
	case 0xB4:
		c.Y = c.bus.Read(c.addrZeroPageX())
		c.Status.setNZ(c.Y)
		return 4
	case 0xAC:
		c.Y = c.bus.Read(c.addrAbsolute())
		c.Status.setNZ(c.Y)
		return 4
	case 0xBC:
		addr, crossed := c.addrAbsoluteX()
		c.Y = c.bus.Read(addr)
		c.Status.setNZ(c.Y)
		return extra(4, crossed)

	case 0x85: // STA zp
		c.bus.Write(c.addrZeroPage(), c.A)
		return 3
	case 0x95:
		c.bus.Write(c.addrZeroPageX(), c.A)
		return 4
	case 0x8D:
		c.bus.Write(c.addrAbsolute(), c.A)
		return 4
	case 0x9D:
		addr, _ := c.addrAbsoluteX()
		c.bus.Write(addr, c.A)
		return 5
	case 0x99:
		addr, _ := c.addrAbsoluteY()
		c.bus.Write(addr, c.A)
		return 5
	case 0x81:
		c.bus.Write(c.addrIndirectX(), c.A)
		return 6
	case 0x91:
		addr, _ := c.addrIndirectY()
		c.bus.Write(addr, c.A)
		return 6

	case 0x86: // STX zp
		c.bus.Write(c.addrZeroPage(), c.X)
		return 3
	case 0x96:
		c.bus.Write(c.addrZeroPageY(), c.X)
		return 4
	case 0x8E:
		c.bus.Write(c.addrAbsolute(), c.X)
		return 4

	case 0x84: // STY zp
		c.bus.Write(c.addrZeroPage(), c.Y)
		return 3
	case 0x94:
		c.bus.Write(c.addrZeroPageX(), c.Y)
		return 4
	case 0x8C:
		c.bus.Write(c.addrAbsolute(), c.Y)
		return 4

	// ---- register transfer ----
	case 0xAA: // TAX
		c.X = c.A
		c.Status.setNZ(c.X)
		return 2
	case 0xA8: // TAY
		c.Y = c.A
		c.Status.setNZ(c.Y)
		return 2
	case 0x8A: // TXA
		c.A = c.X
		c.Status.setNZ(c.A)
		return 2
	case 0x98: // TYA
		c.A = c.Y
		c.Status.setNZ(c.A)
		return 2
	case 0xBA: // TSX
		c.X = c.SP
		c.Status.setNZ(c.X)
		return 2
	case 0x9A: // TXS
		c.SP = c.X
		return 2

	// ---- stack ----
	case 0x48: // PHA
		c.push(c.A)
		return 3
	case 0x08: // PHP
		c.push(c.Status.ToByte(true))
		return 3
	case 0x68: // PLA
		c.A = c.pull()
		c.Status.setNZ(c.A)
		return 4
	case 0x28: // PLP
		c.Status.FromByte(c.pull())
		return 4

	// ---- arithmetic ----
	case 0x69:
		c.adc(c.fetchByte())
		return 2
	case 0x65:
		c.adc(c.bus.Read(c.addrZeroPage()))
		return 3
	case 0x75:
		c.adc(c.bus.Read(c.addrZeroPageX()))
		return 4
	case 0x6D:
		c.adc(c.bus.Read(c.addrAbsolute()))
		return 4
	case 0x7D:
		addr, crossed := c.addrAbsoluteX()
		c.adc(c.bus.Read(addr))
		return extra(4, crossed)
	case 0x79:
		addr, crossed := c.addrAbsoluteY()
		c.adc(c.bus.Read(addr))
		return extra(4, crossed)
	case 0x61:
		c.adc(c.bus.Read(c.addrIndirectX()))
		return 6
	case 0x71:
		addr, crossed := c.addrIndirectY()
		c.adc(c.bus.Read(addr))
		return extra(5, crossed)

	case 0xE9:
		c.sbc(c.fetchByte())
		return 2
	case 0xE5:
		c.sbc(c.bus.Read(c.addrZeroPage()))
		return 3
	case 0xF5:
		c.sbc(c.bus.Read(c.addrZeroPageX()))
		return 4
	case 0xED:
		c.sbc(c.bus.Read(c.addrAbsolute()))
		return 4
	case 0xFD:
		addr, crossed := c.addrAbsoluteX()
		c.sbc(c.bus.Read(addr))
		return extra(4, crossed)
	case 0xF9:
		addr, crossed := c.addrAbsoluteY()
		c.sbc(c.bus.Read(addr))
		return extra(4, crossed)
	case 0xE1:
		c.sbc(c.bus.Read(c.addrIndirectX()))
		return 6
	case 0xF1:
		addr, crossed := c.addrIndirectY()
		c.sbc(c.bus.Read(addr))
		return extra(5, crossed)

	case 0xC9:
		c.cmp(c.A, c.fetchByte())
		return 2
	case 0xC5:
		c.cmp(c.A, c.bus.Read(c.addrZeroPage()))
		return 3
	case 0xD5:
		c.cmp(c.A, c.bus.Read(c.addrZeroPageX()))
		return 4
	case 0xCD:
		c.cmp(c.A, c.bus.Read(c.addrAbsolute()))
		return 4
	case 0xDD:
		addr, crossed := c.addrAbsoluteX()
		c.cmp(c.A, c.bus.Read(addr))
		return extra(4, crossed)
	case 0xD9:
		addr, crossed := c.addrAbsoluteY()
		c.cmp(c.A, c.bus.Read(addr))
		return extra(4, crossed)
	case 0xC1:
		c.cmp(c.A, c.bus.Read(c.addrIndirectX()))
		return 6
	case 0xD1:
		addr, crossed := c.addrIndirectY()
		c.cmp(c.A, c.bus.Read(addr))
		return extra(5, crossed)

	case 0xE0:
		c.cmp(c.X, c.fetchByte())
		return 2
	case 0xE4:
		c.cmp(c.X, c.bus.Read(c.addrZeroPage()))
		return 3
	case 0xEC:
		c.cmp(c.X, c.bus.Read(c.addrAbsolute()))
		return 4

	case 0xC0:
		c.cmp(c.Y, c.fetchByte())
		return 2
	case 0xC4:
		c.cmp(c.Y, c.bus.Read(c.addrZeroPage()))
		return 3
	case 0xCC:
		c.cmp(c.Y, c.bus.Read(c.addrAbsolute()))
		return 4

	// ---- increment/decrement ----
	case 0xE6:
		addr := c.addrZeroPage()
		c.bus.Write(addr, incDec(c, c.bus.Read(addr), 1))
		return 5
	case 0xF6:
		addr := c.addrZeroPageX()
		c.bus.Write(addr, incDec(c, c.bus.Read(addr), 1))
		return 6
	case 0xEE:
		addr := c.addrAbsolute()
		c.bus.Write(addr, incDec(c, c.bus.Read(addr), 1))
		return 6
	case 0xFE:
		addr, _ := c.addrAbsoluteX()
		c.bus.Write(addr, incDec(c, c.bus.Read(addr), 1))
		return 7
	case 0xC6:
		addr := c.addrZeroPage()
		c.bus.Write(addr, incDec(c, c.bus.Read(addr), -1))
		return 5
	case 0xD6:
		addr := c.addrZeroPageX()
		c.bus.Write(addr, incDec(c, c.bus.Read(addr), -1))
		return 6
	case 0xCE:
		addr := c.addrAbsolute()
		c.bus.Write(addr, incDec(c, c.bus.Read(addr), -1))
		return 6
	case 0xDE:
		addr, _ := c.addrAbsoluteX()
		c.bus.Write(addr, incDec(c, c.bus.Read(addr), -1))
		return 7
	case 0xE8:
		c.X++
		c.Status.setNZ(c.X)
		return 2
	case 0xC8:
		c.Y++
		c.Status.setNZ(c.Y)
		return 2
	case 0xCA:
		c.X--
		c.Status.setNZ(c.X)
		return 2
	case 0x88:
		c.Y--
		c.Status.setNZ(c.Y)
		return 2

	// ---- shifts ----
	case 0x0A:
		c.A = c.asl(c.A)
		return 2
	case 0x06:
		addr := c.addrZeroPage()
		c.bus.Write(addr, c.asl(c.bus.Read(addr)))
		return 5
	case 0x16:
		addr := c.addrZeroPageX()
		c.bus.Write(addr, c.asl(c.bus.Read(addr)))
		return 6
	case 0x0E:
		addr := c.addrAbsolute()
		c.bus.Write(addr, c.asl(c.bus.Read(addr)))
		return 6
	case 0x1E:
		addr, _ := c.addrAbsoluteX()
		c.bus.Write(addr, c.asl(c.bus.Read(addr)))
		return 7

	case 0x4A:
		c.A = c.lsr(c.A)
		return 2
	case 0x46:
		addr := c.addrZeroPage()
		c.bus.Write(addr, c.lsr(c.bus.Read(addr)))
		return 5
	case 0x56:
		addr := c.addrZeroPageX()
		c.bus.Write(addr, c.lsr(c.bus.Read(addr)))
		return 6
	case 0x4E:
		addr := c.addrAbsolute()
		c.bus.Write(addr, c.lsr(c.bus.Read(addr)))
		return 6
	case 0x5E:
		addr, _ := c.addrAbsoluteX()
		c.bus.Write(addr, c.lsr(c.bus.Read(addr)))
		return 7

	case 0x2A:
		c.A = c.rol(c.A)
		return 2
	case 0x26:
		addr := c.addrZeroPage()
		c.bus.Write(addr, c.rol(c.bus.Read(addr)))
		return 5
	case 0x36:
		addr := c.addrZeroPageX()
		c.bus.Write(addr, c.rol(c.bus.Read(addr)))
		return 6
	case 0x2E:
		addr := c.addrAbsolute()
		c.bus.Write(addr, c.rol(c.bus.Read(addr)))
		return 6
	case 0x3E:
		addr, _ := c.addrAbsoluteX()
		c.bus.Write(addr, c.rol(c.bus.Read(addr)))
		return 7

	case 0x6A:
		c.A = c.ror(c.A)
		return 2
	case 0x66:
		addr := c.addrZeroPage()
		c.bus.Write(addr, c.ror(c.bus.Read(addr)))
		return 5
	case 0x76:
		addr := c.addrZeroPageX()
		c.bus.Write(addr, c.ror(c.bus.Read(addr)))
		return 6
	case 0x6E:
		addr := c.addrAbsolute()
		c.bus.Write(addr, c.ror(c.bus.Read(addr)))
		return 6
	case 0x7E:
		addr, _ := c.addrAbsoluteX()
		c.bus.Write(addr, c.ror(c.bus.Read(addr)))
		return 7

	// ---- logic ----
	case 0x29:
		c.A &= c.fetchByte()
		c.Status.setNZ(c.A)
		return 2
	case 0x25:
		c.A &= c.bus.Read(c.addrZeroPage())
		c.Status.setNZ(c.A)
		return 3
	case 0x35:
		c.A &= c.bus.Read(c.addrZeroPageX())
		c.Status.setNZ(c.A)
		return 4
	case 0x2D:
		c.A &= c.bus.Read(c.addrAbsolute())
		c.Status.setNZ(c.A)
		return 4
	case 0x3D:
		addr, crossed := c.addrAbsoluteX()
		c.A &= c.bus.Read(addr)
		c.Status.setNZ(c.A)
		return extra(4, crossed)
	case 0x39:
		addr, crossed := c.addrAbsoluteY()
		c.A &= c.bus.Read(addr)
		c.Status.setNZ(c.A)
		return extra(4, crossed)
	case 0x21:
		c.A &= c.bus.Read(c.addrIndirectX())
		c.Status.setNZ(c.A)
		return 6
	case 0x31:
		addr, crossed := c.addrIndirectY()
		c.A &= c.bus.Read(addr)
		c.Status.setNZ(c.A)
		return extra(5, crossed)

	case 0x09:
		c.A |= c.fetchByte()
		c.Status.setNZ(c.A)
		return 2
	case 0x05:
		c.A |= c.bus.Read(c.addrZeroPage())
		c.Status.setNZ(c.A)
		return 3
	case 0x15:
		c.A |= c.bus.Read(c.addrZeroPageX())
		c.Status.setNZ(c.A)
		return 4
	case 0x0D:
		c.A |= c.bus.Read(c.addrAbsolute())
		c.Status.setNZ(c.A)
		return 4
	case 0x1D:
		addr, crossed := c.addrAbsoluteX()
		c.A |= c.bus.Read(addr)
		c.Status.setNZ(c.A)
		return extra(4, crossed)
	case 0x19:
		addr, crossed := c.addrAbsoluteY()
		c.A |= c.bus.Read(addr)
		c.Status.setNZ(c.A)
		return extra(4, crossed)
	case 0x01:
		c.A |= c.bus.Read(c.addrIndirectX())
		c.Status.setNZ(c.A)
		return 6
	case 0x11:
		addr, crossed := c.addrIndirectY()
		c.A |= c.bus.Read(addr)
		c.Status.setNZ(c.A)
		return extra(5, crossed)

	case 0x49:
		c.A ^= c.fetchByte()
		c.Status.setNZ(c.A)
		return 2
	case 0x45:
		c.A ^= c.bus.Read(c.addrZeroPage())
		c.Status.setNZ(c.A)
		return 3
	case 0x55:
		c.A ^= c.bus.Read(c.addrZeroPageX())
		c.Status.setNZ(c.A)
		return 4
	case 0x4D:
		c.A ^= c.bus.Read(c.addrAbsolute())
		c.Status.setNZ(c.A)
		return 4
	case 0x5D:
		addr, crossed := c.addrAbsoluteX()
		c.A ^= c.bus.Read(addr)
		c.Status.setNZ(c.A)
		return extra(4, crossed)
	case 0x59:
		addr, crossed := c.addrAbsoluteY()
		c.A ^= c.bus.Read(addr)
		c.Status.setNZ(c.A)
		return extra(4, crossed)
	case 0x41:
		c.A ^= c.bus.Read(c.addrIndirectX())
		c.Status.setNZ(c.A)
		return 6
	case 0x51:
		addr, crossed := c.addrIndirectY()
		c.A ^= c.bus.Read(addr)
		c.Status.setNZ(c.A)
		return extra(5, crossed)

	case 0x24:
		c.bit(c.bus.Read(c.addrZeroPage()))
		return 3
	case 0x2C:
		c.bit(c.bus.Read(c.addrAbsolute()))
		return 4

	// ---- jumps/calls ----
	case 0x4C:
		c.PC = c.addrAbsolute()
		return 3
	case 0x6C:
		c.PC = c.addrIndirect()
		return 5
	case 0x20: // JSR
		target := c.addrAbsolute()
		ret := c.PC - 1
		c.push(byte(ret >> 8))
		c.push(byte(ret))
		c.PC = target
		return 6
	case 0x60: // RTS
		lo := c.pull()
		hi := c.pull()
		c.PC = (uint16(hi)<<8 | uint16(lo)) + 1
		return 6

	// ---- branches ----
	case 0x10:
		return c.branch(!c.Status.Negative, 2)
	case 0x30:
		return c.branch(c.Status.Negative, 2)
	case 0x50:
		return c.branch(!c.Status.Overflow, 2)
	case 0x70:
		return c.branch(c.Status.Overflow, 2)
	case 0x90:
		return c.branch(!c.Status.Carry, 2)
	case 0xB0:
		return c.branch(c.Status.Carry, 2)
	case 0xD0:
		return c.branch(!c.Status.Zero, 2)
	case 0xF0:
		return c.branch(c.Status.Zero, 2)

	// ---- flags ----
	case 0x18:
		c.Status.Carry = false
		return 2
	case 0xD8:
		c.Status.Decimal = false
		return 2
	case 0x58:
		c.Status.InterruptDisable = false
		return 2
	case 0xB8:
		c.Status.Overflow = false
		return 2
	case 0x38:
		c.Status.Carry = true
		return 2
	case 0xF8:
		c.Status.Decimal = true
		return 2
	case 0x78:
		c.Status.InterruptDisable = true
		return 2

	// ---- system ----
	case 0xEA: // NOP
		return 2
	case 0x00: // BRK
		c.PC++
		c.dispatch(0xFFFE, true)
		return 7
	case 0x40: // RTI
		c.Status.FromByte(c.pull())
		lo := c.pull()
		hi := c.pull()
		c.PC = uint16(hi)<<8 | uint16(lo)
		return 6
	}

	if c.strict {
		if cycles, ok := c.executeIllegal(opcode); ok {
			return cycles
		}
	}

	// Unrecognised (or, in non-strict mode, any illegal) opcode: per
	// spec.md §4.A illegal opcodes default to a 2-byte, 2-cycle NOP rather
	// than halting, unless the opcode is genuinely undefined even as a
	// documented illegal, in which case the CPU halts.
	if isKnownIllegalOpcode(opcode) {
		c.fetchByte() // skip the NOP's operand byte
		return 2
	}
	c.halt(pcBeforeOperand, opcode)
	return 0
}

func extra(base int, crossed bool) int {
	if crossed {
		return base + 1
	}
	return base
}

func incDec(c *CPU, v byte, delta int) byte {
	v = byte(int(v) + delta)
	c.Status.setNZ(v)
	return v
}
