// Package pokey implements the audio, keyboard, and serial-adjacent
// chip: four square-wave/noise channels gated by distortion mode, four
// polynomial counters used both for noise generation and RANDOM, timer
// IRQs, and the keyboard latch. Grounded on
// original_source/T-HMI-Atari800/src/POKEY.cpp.
package pokey

import "github.com/retrostack/atari800core/config"

// AUDCTL bits.
const (
	audctlPoly9      = 0x80
	audctlCh1_179    = 0x40
	audctlCh3_179    = 0x20
	audctlCh1Ch2     = 0x10
	audctlCh3Ch4     = 0x08
	audctlCh1HPFilt  = 0x04
	audctlCh2HPFilt  = 0x02
	audctl15KHz      = 0x01
)

// IRQEN/IRQST bits (IRQST is active-low: a clear bit means the interrupt
// is pending).
const (
	IRQTimer1    = 0x01
	IRQTimer2    = 0x02
	IRQTimer4    = 0x04
	IRQSerialOut = 0x08
	IRQSerialIn  = 0x10
	IRQKeypress  = 0x40
	IRQBreak     = 0x80
)

// SKSTAT bits (active-low).
const (
	skstatSerin   = 0x10
	skstatKeydown = 0x04
)

const (
	pokeyFreq  = 1789790
	divider64k = 28
	divider15k = 114
)

// POKEY holds the chip's full state.
type POKEY struct {
	ch [4]channel

	audctl                                                    byte
	poly9Mode, ch1At179, ch3At179, ch12Joined, ch34Joined        bool
	ch1Highpass, ch2Highpass, clock15k                        bool

	poly4, poly5, poly9, poly17 uint32
	polyStep                    int

	irqen, irqst byte

	kbcode     byte
	keyPressed bool
	skctl      byte
	skstat     byte

	pot    [8]byte
	allpot byte

	serout, serin byte
	random        byte

	sampleRate       int
	samplesPerFrame  int
	scanlinesPerFrame int
	samples          []int16
	sampleIdx        int
}

// NewPOKEY creates a POKEY sized for cfg's sample rate and television
// region.
func NewPOKEY(cfg config.Config) *POKEY {
	p := &POKEY{
		sampleRate:        cfg.SampleRate,
		scanlinesPerFrame: cfg.Region.ScanlinesPerFrame(),
	}
	p.samplesPerFrame = int(float64(cfg.SampleRate) / cfg.Region.FrameRate())
	p.samples = make([]int16, p.samplesPerFrame)
	p.Reset()
	return p
}

// Reset restores power-on state, matching POKEY.cpp's reset().
func (p *POKEY) Reset() {
	for i := range p.ch {
		p.ch[i].reset()
	}

	p.audctl = 0
	p.poly9Mode, p.ch1At179, p.ch3At179 = false, false, false
	p.ch12Joined, p.ch34Joined = false, false
	p.ch1Highpass, p.ch2Highpass, p.clock15k = false, false, false

	p.poly4, p.poly5, p.poly9, p.poly17 = 0x0F, 0x1F, 0x1FF, 0x1FFFF
	p.polyStep = 0

	p.irqen = 0
	p.irqst = 0xFF

	p.kbcode = 0xFF
	p.keyPressed = false
	p.skctl = 0
	p.skstat = 0xFF

	for i := range p.pot {
		p.pot[i] = 228
	}
	p.allpot = 0

	p.serout, p.serin = 0, 0
	p.random = 0xFF
	p.sampleIdx = 0
}

func (p *POKEY) updatePolynomials() {
	bit4 := ((p.poly4 >> 3) ^ (p.poly4 >> 2)) & 1
	p.poly4 = ((p.poly4 << 1) | bit4) & 0x0F

	bit5 := ((p.poly5 >> 4) ^ (p.poly5 >> 2)) & 1
	p.poly5 = ((p.poly5 << 1) | bit5) & 0x1F

	bit9 := ((p.poly9 >> 8) ^ (p.poly9 >> 3)) & 1
	p.poly9 = ((p.poly9 << 1) | bit9) & 0x1FF

	bit17 := ((p.poly17 >> 16) ^ (p.poly17 >> 11)) & 1
	p.poly17 = ((p.poly17 << 1) | bit17) & 0x1FFFF

	if p.poly9Mode {
		p.random = byte(p.poly9 ^ (p.poly9 >> 1))
	} else {
		p.random = byte(p.poly17 ^ (p.poly17 >> 1))
	}
}

func (p *POKEY) baseDivisor() uint32 {
	if p.clock15k {
		return divider15k
	}
	return divider64k
}

func (p *POKEY) updateChannelPeriods() {
	baseDiv := p.baseDivisor()

	if p.ch12Joined {
		freq16 := uint32(p.ch[0].audf)<<8 | uint32(p.ch[1].audf)
		if p.ch1At179 {
			p.ch[0].period = freq16 + 1
		} else {
			p.ch[0].period = (freq16 + 1) * baseDiv
		}
		p.ch[1].period = 0
	} else {
		if p.ch1At179 {
			p.ch[0].period = uint32(p.ch[0].audf) + 4
		} else {
			p.ch[0].period = (uint32(p.ch[0].audf) + 1) * baseDiv
		}
		p.ch[1].period = (uint32(p.ch[1].audf) + 1) * baseDiv
	}

	if p.ch34Joined {
		freq16 := uint32(p.ch[2].audf)<<8 | uint32(p.ch[3].audf)
		if p.ch3At179 {
			p.ch[2].period = freq16 + 1
		} else {
			p.ch[2].period = (freq16 + 1) * baseDiv
		}
		p.ch[3].period = 0
	} else {
		if p.ch3At179 {
			p.ch[2].period = uint32(p.ch[2].audf) + 4
		} else {
			p.ch[2].period = (uint32(p.ch[2].audf) + 1) * baseDiv
		}
		p.ch[3].period = (uint32(p.ch[3].audf) + 1) * baseDiv
	}
}

func (p *POKEY) generateSample() int16 {
	var output int32

	p.polyStep++
	if p.polyStep >= 40 {
		p.updatePolynomials()
		p.polyStep = 0
	}

	for i := range p.ch {
		c := &p.ch[i]
		if c.period == 0 {
			continue
		}
		if c.volumeOnly() {
			output += int32(c.volume()) * 2048
			continue
		}
		if c.volume() == 0 {
			continue
		}

		if c.divider > 0 {
			c.divider--
		} else {
			c.divider = c.period
			c.output = !c.output
		}

		finalOutput := p.gateOutput(c)

		var channelOut int16
		if finalOutput {
			channelOut = int16(c.volume()) * 2048
		}
		if (i == 0 && p.ch1Highpass) || (i == 1 && p.ch2Highpass) {
			channelOut -= c.lastOutput
		}
		c.lastOutput = channelOut
		output += int32(channelOut)
	}

	if output > 32767 {
		output = 32767
	}
	if output < -32768 {
		output = -32768
	}
	return int16(output)
}

// gateOutput applies one of the eight distortion modes packed into
// AUDCn bits 4-6, per POKEY's noise-gating table.
func (p *POKEY) gateOutput(c *channel) bool {
	noise17or9 := func() uint32 {
		if p.poly9Mode {
			return p.poly9
		}
		return p.poly17
	}

	switch c.distortion() {
	case 0: // 5-bit and 17/9-bit polynomials both gate
		return c.output && p.poly5&1 != 0 && noise17or9()&1 != 0
	case 1: // 5-bit polynomial
		return c.output && p.poly5&1 != 0
	case 2: // 5-bit and 4-bit polynomials
		return c.output && p.poly5&1 != 0 && p.poly4&1 != 0
	case 3: // 5-bit polynomial
		return c.output && p.poly5&1 != 0
	case 4: // 17/9-bit polynomial only
		return c.output && noise17or9()&1 != 0
	case 5: // pure tone
		return c.output
	case 6: // 4-bit polynomial
		return c.output && p.poly4&1 != 0
	default: // 7: pure tone
		return c.output
	}
}

// FillBuffer extends the internal sample buffer up to the proportion of
// a frame scanline has completed, called once per finished scanline from
// the scanline loop.
func (p *POKEY) FillBuffer(scanline int) {
	target := (scanline + 1) * p.samplesPerFrame / p.scanlinesPerFrame
	if target > p.samplesPerFrame {
		target = p.samplesPerFrame
	}
	for p.sampleIdx < target {
		p.samples[p.sampleIdx] = p.generateSample()
		p.sampleIdx++
	}
}

// TakeFrame returns this frame's accumulated samples and resets the
// buffer for the next frame.
func (p *POKEY) TakeFrame() []int16 {
	out := make([]int16, p.sampleIdx)
	copy(out, p.samples[:p.sampleIdx])
	p.sampleIdx = 0
	return out
}

// CheckIRQ reports whether any enabled interrupt is currently pending.
func (p *POKEY) CheckIRQ() bool {
	return p.irqst&p.irqen != p.irqen
}

// AcknowledgeIRQ clears the given IRQST bits (sets them, since IRQST is
// active-low).
func (p *POKEY) AcknowledgeIRQ(mask byte) {
	p.irqst |= mask
}

// TriggerTimerIRQ raises one of the timer interrupts if enabled.
func (p *POKEY) TriggerTimerIRQ(timer int) {
	var mask byte
	switch timer {
	case 1:
		mask = IRQTimer1
	case 2:
		mask = IRQTimer2
	case 4:
		mask = IRQTimer4
	}
	if p.irqen&mask != 0 {
		p.irqst &^= mask
	}
}

// SetKeyCode latches a keyboard scan code and raises the keypress IRQ if
// enabled.
func (p *POKEY) SetKeyCode(code byte, pressed bool) {
	if pressed {
		p.kbcode = code
		p.keyPressed = true
		p.skstat &^= skstatKeydown
		if p.irqen&IRQKeypress != 0 {
			p.irqst &^= IRQKeypress
		}
	} else {
		p.keyPressed = false
		p.skstat |= skstatKeydown
	}
}

// SetBreakKey raises the break-key IRQ if enabled.
func (p *POKEY) SetBreakKey(pressed bool) {
	if pressed && p.irqen&IRQBreak != 0 {
		p.irqst &^= IRQBreak
	}
}

// SetPaddle latches a potentiometer reading (0-7).
func (p *POKEY) SetPaddle(num int, value byte) {
	if num >= 0 && num < 8 {
		p.pot[num] = value
	}
}
