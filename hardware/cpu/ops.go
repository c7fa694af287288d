package cpu

// adc implements ADC including BCD mode. In decimal mode N and Z are set
// from the binary (uncorrected) sum, which matches the NMOS behaviour
// relied on by Atari OS ROM code; V and C come from the BCD-corrected
// result.
func (c *CPU) adc(v byte) {
	if c.Status.Decimal {
		c.adcDecimal(v)
		return
	}
	carry := uint16(0)
	if c.Status.Carry {
		carry = 1
	}
	sum := uint16(c.A) + uint16(v) + carry
	result := byte(sum)
	c.Status.Overflow = (c.A^v)&0x80 == 0 && (c.A^result)&0x80 != 0
	c.Status.Carry = sum > 0xFF
	c.A = result
	c.Status.setNZ(c.A)
}

func (c *CPU) adcDecimal(v byte) {
	carry := byte(0)
	if c.Status.Carry {
		carry = 1
	}
	// N and Z come from the binary sum, not the BCD-corrected result: the
	// Atari OS relies on this NMOS decimal-mode quirk.
	binarySum := byte(uint16(c.A) + uint16(v) + uint16(carry))

	lo := (c.A & 0x0F) + (v & 0x0F) + carry
	hi := (c.A >> 4) + (v >> 4)
	if lo > 9 {
		lo -= 10
		hi++
	}
	if hi > 9 {
		hi -= 10
		c.Status.Carry = true
	} else {
		c.Status.Carry = false
	}
	result := (hi << 4) | (lo & 0x0F)
	c.Status.Overflow = (c.A^v)&0x80 == 0 && (c.A^result)&0x80 != 0
	c.A = result
	c.Status.setNZ(binarySum)
}

func (c *CPU) sbc(v byte) {
	if c.Status.Decimal {
		c.sbcDecimal(v)
		return
	}
	borrow := uint16(0)
	if !c.Status.Carry {
		borrow = 1
	}
	diff := uint16(c.A) - uint16(v) - borrow
	result := byte(diff)
	c.Status.Overflow = (c.A^v)&0x80 != 0 && (c.A^result)&0x80 != 0
	c.Status.Carry = diff < 0x100
	c.A = result
	c.Status.setNZ(c.A)
}

func (c *CPU) sbcDecimal(v byte) {
	borrow := byte(0)
	if !c.Status.Carry {
		borrow = 1
	}
	// N and Z come from the binary difference, not the BCD-corrected
	// result; see adcDecimal.
	binaryDiff := byte(uint16(c.A) - uint16(v) - uint16(borrow))

	lo := int(c.A&0x0F) - int(v&0x0F) - int(borrow)
	hi := int(c.A>>4) - int(v>>4)
	if lo < 0 {
		lo += 10
		hi--
	}
	if hi < 0 {
		hi += 10
		c.Status.Carry = false
	} else {
		c.Status.Carry = true
	}
	result := byte((hi<<4)&0xF0) | byte(lo&0x0F)
	c.Status.Overflow = (c.A^v)&0x80 != 0 && (c.A^result)&0x80 != 0
	c.A = result
	c.Status.setNZ(binaryDiff)
}

func (c *CPU) cmp(reg, v byte) {
	diff := uint16(reg) - uint16(v)
	c.Status.Carry = reg >= v
	c.Status.setNZ(byte(diff))
}

func (c *CPU) asl(v byte) byte {
	c.Status.Carry = v&0x80 != 0
	v <<= 1
	c.Status.setNZ(v)
	return v
}

func (c *CPU) lsr(v byte) byte {
	c.Status.Carry = v&0x01 != 0
	v >>= 1
	c.Status.setNZ(v)
	return v
}

func (c *CPU) rol(v byte) byte {
	carryIn := byte(0)
	if c.Status.Carry {
		carryIn = 1
	}
	c.Status.Carry = v&0x80 != 0
	v = v<<1 | carryIn
	c.Status.setNZ(v)
	return v
}

func (c *CPU) ror(v byte) byte {
	carryIn := byte(0)
	if c.Status.Carry {
		carryIn = 0x80
	}
	c.Status.Carry = v&0x01 != 0
	v = v>>1 | carryIn
	c.Status.setNZ(v)
	return v
}

func (c *CPU) bit(v byte) {
	c.Status.Zero = c.A&v == 0
	c.Status.Negative = v&0x80 != 0
	c.Status.Overflow = v&0x40 != 0
}

func (c *CPU) branch(taken bool, cycles int) int {
	offset := int8(c.fetchByte())
	if !taken {
		return cycles
	}
	origin := c.PC
	c.PC = uint16(int32(c.PC) + int32(offset))
	cycles++
	if !samePage(origin, c.PC) {
		cycles++
	}
	return cycles
}
