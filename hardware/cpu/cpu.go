// Package cpu implements the 6502 instruction set used by the Atari 800 XL:
// full documented addressing modes and operations, BCD-aware ADC/SBC, and
// (behind Config.StrictIllegalOpcodes) the stable illegal-opcode subset.
package cpu

import (
	"github.com/retrostack/atari800core/config"
	"github.com/retrostack/atari800core/logger"
)

// Registers holds the CPU's externally visible state. It is deliberately a
// plain struct of plain fields rather than a bit-array abstraction: nothing
// downstream needs to address individual flags as addressable objects.
type Registers struct {
	PC     uint16
	A, X, Y byte
	SP     byte
	Status StatusRegister
}

// CPU decodes and executes the 6502 instruction set against a Bus. It
// raises no errors for guest misbehaviour beyond the single documented
// failure mode: an unrecognised opcode sets Halted.
type CPU struct {
	Registers

	bus    Bus
	strict bool

	Halted bool

	nmiPending bool
	irqLine    bool

	// lastOpcode and lastPC back the CPUHalt error payload.
	lastOpcode byte
	lastPC     uint16
}

// NewCPU creates a CPU wired to bus. Call Reset before stepping.
func NewCPU(bus Bus, cfg config.Config) *CPU {
	return &CPU{bus: bus, strict: cfg.StrictIllegalOpcodes}
}

// Plumb rewires the CPU to a new bus without resetting registers, used when
// the owning container is reconstructed around the same CPU state.
func (c *CPU) Plumb(bus Bus) {
	c.bus = bus
}

// Reset loads the reset vector from $FFFC/$FFFD and puts the CPU into its
// power-on register state. SP is conventionally 0xFD after reset on real
// hardware (three phantom stack pushes during the reset sequence).
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.Status = StatusRegister{InterruptDisable: true}
	c.Halted = false
	c.nmiPending = false
	c.irqLine = false
	lo := c.bus.Read(0xFFFC)
	hi := c.bus.Read(0xFFFD)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// IsHalted reports whether the CPU stopped on an unrecognised opcode.
func (c *CPU) IsHalted() bool {
	return c.Halted
}

// LastHalt returns the program counter and opcode byte that halted the
// CPU, for building an errors.CPUHalt value.
func (c *CPU) LastHalt() (pc uint16, opcode byte) {
	return c.lastPC, c.lastOpcode
}

// RaiseNMI latches an edge-triggered non-maskable interrupt. It is
// serviced at the next instruction boundary regardless of the I flag.
func (c *CPU) RaiseNMI() {
	c.nmiPending = true
}

// RaiseIRQ sets the level of the maskable interrupt line. POKEY (and any
// other IRQ source) calls this with true while a source is unacknowledged
// and false once every source has been acknowledged; the CPU samples the
// line at each instruction boundary and is gated by the I flag.
func (c *CPU) RaiseIRQ(level bool) {
	c.irqLine = level
}

// Call performs a JSR-like subroutine invocation into addr: it pushes a
// return address that an RTS inside the called routine will pop back to
// the instruction boundary Call was issued at, then jumps. Used by the
// file loader to invoke a binary's INITAD routine the way the OS would.
func (c *CPU) Call(addr uint16) {
	ret := c.PC - 1
	c.push(byte(ret >> 8))
	c.push(byte(ret))
	c.PC = addr
}

// Step executes one instruction, servicing a pending interrupt first if
// one is armed, and returns the number of cycles consumed.
func (c *CPU) Step() int {
	if c.Halted {
		return 0
	}

	if c.nmiPending {
		c.nmiPending = false
		c.dispatch(0xFFFA, false)
		return 7
	}
	if c.irqLine && !c.Status.InterruptDisable {
		c.dispatch(0xFFFE, false)
		return 7
	}

	opcode := c.fetchByte()
	return c.execute(opcode)
}

// dispatch pushes PC and status and jumps through the vector at addr,
// setting the I flag. brk selects whether the pushed status has B set
// (BRK/software) or clear (NMI/IRQ/hardware).
func (c *CPU) dispatch(vector uint16, brk bool) {
	c.push(byte(c.PC >> 8))
	c.push(byte(c.PC))
	c.push(c.Status.ToByte(brk))
	c.Status.InterruptDisable = true
	lo := c.bus.Read(vector)
	hi := c.bus.Read(vector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) fetchByte() byte {
	b := c.bus.Read(c.PC)
	c.PC++
	return b
}

func (c *CPU) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) push(v byte) {
	c.bus.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pull() byte {
	c.SP++
	return c.bus.Read(0x0100 | uint16(c.SP))
}

func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}

// halt marks the CPU halted on an unrecognised opcode, per spec: no error
// return, the condition is only observable through IsHalted/LastHalt.
func (c *CPU) halt(pc uint16, opcode byte) {
	logger.Logf(logger.Allow, "cpu", "halted at $%04X on opcode $%02X", pc, opcode)
	c.Halted = true
	c.lastPC = pc
	c.lastOpcode = opcode
}
