// Package system is the main container for the emulated machine: it owns
// the bus, the CPU, and the four custom chips, and drives them through the
// scanline loop. Grounded on the teacher's VCS/Run shape
// (hardware/vcs.go, hardware/run.go): a plain struct of sub-components, a
// constructor that wires them together, and a Run loop taking a
// continueCheck callback for cooperative stop instead of a context.
package system

import (
	"time"

	"github.com/retrostack/atari800core/config"
	"github.com/retrostack/atari800core/fileload"
	"github.com/retrostack/atari800core/hardware/antic"
	"github.com/retrostack/atari800core/hardware/cpu"
	"github.com/retrostack/atari800core/hardware/gtia"
	"github.com/retrostack/atari800core/hardware/memory"
	"github.com/retrostack/atari800core/hardware/pia"
	"github.com/retrostack/atari800core/hardware/pokey"
	"github.com/retrostack/atari800core/logger"
	"github.com/retrostack/atari800core/random"
	"github.com/retrostack/atari800core/sink"
)

// cpuCycleBudget is the number of 6502 cycles available in a scanline
// before ANTIC's DMA theft, matching NTSC/PAL colour-clock timing near
// enough for every mode this core renders.
const cpuCycleBudget = 114

// Machine is the Atari 800 XL: the bus plus the CPU and all four custom
// chips, wired together and stepped one scanline at a time.
type Machine struct {
	cfg config.Config

	Bus   *memory.Bus
	CPU   *cpu.CPU
	Antic *antic.ANTIC
	Gtia  *gtia.GTIA
	Pokey *pokey.POKEY
	PIA   *pia.PIA

	bitmap []byte

	display sink.Display
	audio   sink.Audio

	overflows   int
	framesRun   int
	cycleCarry  int

	frameDeadline time.Duration
}

// New wires a fresh machine around the two ROM images and the sinks the
// host selected at boot. osROM and basicROM are validated the same way
// memory.NewBus validates them.
func New(cfg config.Config, osROM, basicROM []byte, display sink.Display, audio sink.Audio) (*Machine, error) {
	bus, err := memory.NewBus(osROM, basicROM)
	if err != nil {
		return nil, err
	}

	m := &Machine{
		cfg:     cfg,
		Bus:     bus,
		display: display,
		audio:   audio,
		bitmap:  make([]byte, antic.FrameWidth*antic.FrameHeight),
	}

	if cfg.RandomPowerOn {
		var cycle int64
		bus.RandomizePowerOn(random.NewRandom(func() random.Coords {
			cycle++
			return random.Coords{Cycle: cycle}
		}))
	}

	m.Gtia = gtia.NewGTIA(cfg)
	m.Pokey = pokey.NewPOKEY(cfg)
	m.Antic = antic.NewANTIC(cfg, bus.Read)
	m.PIA = pia.NewPIA(bus.SetBanking)

	bus.GTIA = m.Gtia
	bus.Pokey = m.Pokey
	bus.PIA = m.PIA
	bus.Antic = m.Antic

	forcePowerOnBanking(bus)

	m.CPU = cpu.NewCPU(bus, cfg)
	m.CPU.Reset()

	m.frameDeadline = time.Duration(float64(time.Second) / cfg.Region.FrameRate())

	return m, nil
}

// Reset restores power-on state for every chip and the CPU, but leaves
// RAM and ROM contents untouched (matching a real console's reset
// button rather than a cold power cycle).
func (m *Machine) Reset() {
	m.Antic.Reset()
	m.Gtia.Reset()
	m.Pokey.Reset()
	m.PIA.Reset()
	forcePowerOnBanking(m.Bus)
	m.CPU.Reset()
}

// forcePowerOnBanking re-asserts OS/BASIC ROM visible, self-test out,
// independent of whatever the PIA's port B reset value implies. The PIA's
// own power-on port B ($FF) banks OS ROM out under the spec's "bit 0
// clear = OS visible" convention, but the reset vector must still come
// from OS ROM; the console's reset line overrides PORTB banking the same
// way until software writes to port B for the first time.
func forcePowerOnBanking(bus *memory.Bus) {
	bus.SetBanking(memory.Banking{OSVisible: true, BasicVisible: true, SelfTestVisible: false})
}

// SetKey, SetBreakKey, SetConsole and SetJoystick are the four
// input-source calls of sink.Input, wiring directly into POKEY
// (keyboard) and the PIA/GTIA (joystick/console).
func (m *Machine) SetKey(atariKeycode byte, pressed bool) { m.Pokey.SetKeyCode(atariKeycode, pressed) }
func (m *Machine) SetBreakKey(pressed bool)               { m.Pokey.SetBreakKey(pressed) }
func (m *Machine) SetConsole(start, selectKey, option bool) {
	m.Gtia.SetConsole(start, selectKey, option)
}
func (m *Machine) SetJoystick(port int, up, down, left, right, fire bool) {
	if port < 0 || port > 1 {
		return // InputInvalid: ignored, no state change
	}
	if port == 0 {
		m.PIA.SetJoystick1(up, down, left, right, fire)
	} else {
		m.PIA.SetJoystick2(up, down, left, right, fire)
	}
	m.Gtia.SetTrigger(port, fire)
}

// LoadXEX parses and loads an Atari DOS executable, invoking any
// INITAD routine it declares and leaving PC at its RUNAD on success.
func (m *Machine) LoadXEX(data []byte) error {
	return fileload.LoadXEX(m.Bus, m.CPU, &m.CPU.PC, data)
}

// LoadBinary copies data into RAM at loadAddr and sets PC there.
func (m *Machine) LoadBinary(data []byte, loadAddr uint16) error {
	return fileload.LoadBinary(m.Bus, &m.CPU.PC, data, loadAddr)
}

// MountATR parses an ATR disk image for subsequent sector I/O. File-
// load requests including this one are expected to be serviced only
// between frames, per spec §5.
func (m *Machine) MountATR(data []byte) (*fileload.ATR, error) {
	return fileload.MountATR(data)
}

// stepScanline runs one iteration of the scanline loop from spec §5: it
// lets ANTIC steal its DMA cycles, runs the CPU for whatever budget
// remains (checking pending chip interrupts at every instruction
// boundary), rasterises the finished line, accumulates audio, and
// advances ANTIC's scanline counter. It returns true if this scanline
// wrapped the frame.
//
// The CPU's last instruction of a scanline can run past its budget (an
// instruction is never split across scanlines), so any overshoot is
// carried into the next scanline's budget to keep the long-run average
// at 114 cycles/scanline rather than letting every overshoot compound.
func (m *Machine) stepScanline() bool {
	dmaCycles := m.Antic.PrepareScanline()
	budget := cpuCycleBudget - dmaCycles - m.cycleCarry
	runBudget := budget
	if runBudget < 0 {
		runBudget = 0
	}

	cycles := 0
	for cycles < runBudget && !m.Antic.WSYNCHalted() {
		if m.CPU.IsHalted() {
			break // a halted CPU consumes no cycles
		}
		if m.Antic.CheckDLI() || m.Antic.CheckVBI() {
			m.CPU.RaiseNMI()
		}
		m.CPU.RaiseIRQ(m.Pokey.CheckIRQ())
		cycles += m.CPU.Step()
	}

	m.cycleCarry = cycles - budget
	if m.cycleCarry < 0 {
		m.cycleCarry = 0
	}

	m.Antic.RenderLine(m.bitmap, m.Gtia)
	m.Pokey.FillBuffer(m.Antic.Scanline())

	return m.Antic.FinishScanline()
}

// RunFrame runs scanlines until one of them wraps the frame counter,
// then presents the finished bitmap and audio buffer to the sinks.
// Sink overflows are counted and otherwise ignored, per spec §7's
// ExternalSinkOverflow handling: the frame is dropped, the next frame
// starts fresh.
func (m *Machine) RunFrame() {
	for {
		if m.stepScanline() {
			break
		}
	}

	if m.display != nil {
		if err := m.display.PresentBitmap(antic.FrameWidth, antic.FrameHeight, m.bitmap); err != nil {
			m.dropFrame("display", err)
		}
		m.display.PresentBorder(m.Gtia.Background())
	}

	samples := m.Pokey.TakeFrame()
	if m.audio != nil && len(samples) > 0 {
		if err := m.audio.PushSamples(samples); err != nil {
			m.dropFrame("audio", err)
		}
	}
	m.framesRun++
}

// dropFrame records a sink overflow, per spec §7's ExternalSinkOverflow
// handling: the frame is dropped, the counter increments, and the run
// continues on the next frame.
func (m *Machine) dropFrame(sinkName string, err error) {
	m.overflows++
	logger.Logf(logger.Allow, "system", "%s sink overflow, frame dropped: %v", sinkName, err)
}

// Overflows reports the number of sink submissions dropped so far.
func (m *Machine) Overflows() int { return m.overflows }

// FramesRun reports the number of whole frames presented so far.
func (m *Machine) FramesRun() int { return m.framesRun }

// Run drives the machine continuously, pacing itself to the configured
// region's nominal frame rate, until continueCheck returns false. The
// cooperative stop flag is checked at scanline boundaries, matching
// spec §5's cancellation model; a false return mid-frame discards that
// frame's partial audio buffer.
func (m *Machine) Run(continueCheck func() bool) {
	for continueCheck == nil || continueCheck() {
		deadline := time.Now().Add(m.frameDeadline)

		stopped := false
		for {
			if continueCheck != nil && !continueCheck() {
				stopped = true
				break
			}
			if m.stepScanline() {
				break
			}
		}
		if stopped {
			m.Pokey.TakeFrame() // discard the partial buffer
			return
		}

		if m.display != nil {
			if err := m.display.PresentBitmap(antic.FrameWidth, antic.FrameHeight, m.bitmap); err != nil {
				m.dropFrame("display", err)
			}
			m.display.PresentBorder(m.Gtia.Background())
		}
		samples := m.Pokey.TakeFrame()
		if m.audio != nil && len(samples) > 0 {
			if err := m.audio.PushSamples(samples); err != nil {
				m.dropFrame("audio", err)
			}
		}
		m.framesRun++

		if wait := time.Until(deadline); wait > 0 {
			time.Sleep(wait)
		}
	}
}
