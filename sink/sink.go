// Package sink defines the narrow, implementation-chosen interfaces the
// emulation core talks to: a display, an audio output, and an input
// source. The core never blocks on any of them — see §5/§6 of the design
// this module implements. Grounded on the teacher's sink-driver trait
// split (one interface per external collaborator, chosen at start-up and
// injected into the core rather than looked up through global state).
package sink

// Display presents a fully rendered frame. PresentBitmap receives a
// palette-indexed-8-bit buffer exactly width*height bytes long; the
// sink is responsible for any palette-to-RGB conversion (see
// hardware/gtia/palette). PresentBorder carries the border colour index
// for frames/implementations that render one.
type Display interface {
	PresentBitmap(width, height int, pixels []byte) error
	PresentBorder(paletteIndex byte)
}

// Audio receives one frame's worth of mono PCM samples at a time. It
// must never block: on overflow it drops the burst and the caller counts
// an ExternalSinkOverflow.
type Audio interface {
	PushSamples(samples []int16) error
}

// Input is driven by keyboard/joystick collaborators running on their
// own goroutines; every method must be safe to call concurrently with
// the emulation loop and must not block.
type Input interface {
	SetKey(atariKeycode byte, pressed bool)
	SetBreakKey(pressed bool)
	SetConsole(start, selectKey, option bool)
	SetJoystick(port int, up, down, left, right, fire bool)
}
