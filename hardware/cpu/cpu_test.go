package cpu_test

import (
	"testing"

	"github.com/retrostack/atari800core/config"
	"github.com/retrostack/atari800core/hardware/cpu"
)

// flatBus is a 64KiB RAM-only bus, enough to drive the CPU in isolation.
type flatBus [65536]byte

func (b *flatBus) Read(addr uint16) byte     { return b[addr] }
func (b *flatBus) Write(addr uint16, v byte) { b[addr] = v }

func newCPU(bus *flatBus) *cpu.CPU {
	c := cpu.NewCPU(bus, config.Default())
	bus.Write(0xFFFC, 0x00)
	bus.Write(0xFFFD, 0x06)
	c.Reset()
	return c
}

// S1 "BCD ADC": A = $45, set D, C=0; execute ADC #$38.
func TestBCDADC(t *testing.T) {
	bus := &flatBus{}
	c := newCPU(bus)
	c.A = 0x45
	c.Status.Decimal = true
	c.Status.Carry = false

	bus.Write(0x0600, 0x69) // ADC #imm
	bus.Write(0x0601, 0x38)
	c.PC = 0x0600

	cycles := c.Step()

	if c.A != 0x83 {
		t.Fatalf("A = $%02x, want $83", c.A)
	}
	if c.Status.Carry {
		t.Fatalf("carry set, want clear")
	}
	if c.Status.Zero {
		t.Fatalf("zero set, want clear")
	}
	if c.Status.Negative {
		t.Fatalf("negative set, want clear")
	}
	if cycles != 2 {
		t.Fatalf("cycles = %d, want 2", cycles)
	}
}

// S2 "NMI dispatch": OS vector $FFFA/$FFFB = $40 $50; raise NMI.
func TestNMIDispatch(t *testing.T) {
	bus := &flatBus{}
	c := newCPU(bus)
	bus.Write(0xFFFA, 0x40)
	bus.Write(0xFFFB, 0x50)
	c.PC = 0x1234
	c.Status.InterruptDisable = false
	sp := c.SP

	c.RaiseNMI()
	cycles := c.Step()

	if cycles != 7 {
		t.Fatalf("cycles = %d, want 7", cycles)
	}
	if c.PC != 0x5040 {
		t.Fatalf("PC = $%04x, want $5040", c.PC)
	}
	if !c.Status.InterruptDisable {
		t.Fatalf("I flag clear after NMI dispatch, want set")
	}
	if c.SP != sp-3 {
		t.Fatalf("SP = $%02x, want $%02x (three pushes)", c.SP, sp-3)
	}
	pushedStatus := bus.Read(0x0100 | uint16(c.SP+1))
	if pushedStatus&0x10 != 0 {
		t.Fatalf("B flag set in pushed status, want clear for NMI")
	}
}

// PHA+PLA leaves A and SP unchanged, consuming 3+4 cycles. (PLA sets N
// and Z from the pulled value.)
func TestPHAPLARoundTrip(t *testing.T) {
	bus := &flatBus{}
	c := newCPU(bus)
	c.A = 0x77
	c.Status.Negative = true
	sp := c.SP

	bus.Write(0x0600, 0x48) // PHA
	bus.Write(0x0601, 0x68) // PLA
	c.PC = 0x0600

	n1 := c.Step()
	n2 := c.Step()

	if n1 != 3 || n2 != 4 {
		t.Fatalf("cycles = %d,%d want 3,4", n1, n2)
	}
	if c.A != 0x77 {
		t.Fatalf("A = $%02x, want $77", c.A)
	}
	if c.SP != sp {
		t.Fatalf("SP = $%02x, want $%02x", c.SP, sp)
	}
}

// CPUHalt: an unrecognised (JAM) opcode halts the CPU observably.
func TestHaltOnUnknownOpcode(t *testing.T) {
	bus := &flatBus{}
	c := newCPU(bus)
	bus.Write(0x0600, 0x02) // treated as unknown even in strict mode
	c.PC = 0x0600

	c.Step()

	if !c.IsHalted() {
		t.Fatalf("expected CPU to halt on opcode $02")
	}
}
