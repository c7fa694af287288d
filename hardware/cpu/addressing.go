package cpu

// addrZeroPage, addrZeroPageX, addrZeroPageY read one operand byte and
// return the effective zero-page address, wrapping within the page.
func (c *CPU) addrZeroPage() uint16 {
	return uint16(c.fetchByte())
}

func (c *CPU) addrZeroPageX() uint16 {
	return uint16(byte(c.fetchByte() + c.X))
}

func (c *CPU) addrZeroPageY() uint16 {
	return uint16(byte(c.fetchByte() + c.Y))
}

func (c *CPU) addrAbsolute() uint16 {
	return c.fetchWord()
}

// addrAbsoluteX and addrAbsoluteY return the effective address and whether
// adding the index byte crossed a page boundary (relevant only to the
// read-type instructions that charge a conditional extra cycle for it).
func (c *CPU) addrAbsoluteX() (uint16, bool) {
	base := c.fetchWord()
	eff := base + uint16(c.X)
	return eff, !samePage(base, eff)
}

func (c *CPU) addrAbsoluteY() (uint16, bool) {
	base := c.fetchWord()
	eff := base + uint16(c.Y)
	return eff, !samePage(base, eff)
}

// addrIndirect implements JMP (indirect)'s page-wrap bug: if the pointer
// sits at a page boundary the high byte is fetched from the start of the
// same page rather than the next page.
func (c *CPU) addrIndirect() uint16 {
	ptr := c.fetchWord()
	lo := c.bus.Read(ptr)
	hiAddr := (ptr & 0xFF00) | uint16(byte(ptr)+1)
	hi := c.bus.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) addrIndirectX() uint16 {
	zp := byte(c.fetchByte() + c.X)
	lo := c.bus.Read(uint16(zp))
	hi := c.bus.Read(uint16(byte(zp + 1)))
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) addrIndirectY() (uint16, bool) {
	zp := c.fetchByte()
	lo := c.bus.Read(uint16(zp))
	hi := c.bus.Read(uint16(byte(zp + 1)))
	base := uint16(hi)<<8 | uint16(lo)
	eff := base + uint16(c.Y)
	return eff, !samePage(base, eff)
}
