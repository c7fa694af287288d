// Package peripherals drives real input hardware on its own goroutines
// and feeds it into a sink.Input collaborator, matching spec §5's
// "external collaborators run on separate threads" model. Grounded on
// the teacher's hardware/peripherals/sticks/splace.go almost directly:
// same library (github.com/splace/joysticks), same connect-then-select-
// loop shape, retargeted from the teacher's internal peripherals.Event
// channel to a direct sink.Input.SetJoystick call per transition.
package peripherals

import (
	"github.com/splace/joysticks"

	"github.com/retrostack/atari800core/errors"
	"github.com/retrostack/atari800core/sink"
)

// deadzone is the analogue-to-digital threshold each axis must cross
// before a direction is reported, matching the teacher's -0.5/+0.5
// split.
const deadzone = 0.5

// Joystick connects to a real HID joystick and reports its digital
// directions and fire button into input on port, one SetJoystick call
// per state transition, idempotently (repeated identical states are
// still sent; sink.Input's contract requires every call be idempotent,
// not that this driver suppress duplicates).
type Joystick struct {
	port   int
	input  sink.Input
	device *joysticks.HID
	stop   chan struct{}
}

// Connect opens deviceIndex (the OS-assigned controller index,
// typically incrementing from 1 per device attached) and starts feeding
// its events into input on port until Stop is called.
func Connect(deviceIndex, port int, input sink.Input) (*Joystick, error) {
	device := joysticks.Connect(deviceIndex)
	if device == nil {
		return nil, errors.New(errors.InputInvalid, "no joystick HID at that index")
	}

	j := &Joystick{port: port, input: input, device: device, stop: make(chan struct{})}
	go j.run()
	return j, nil
}

// Stop disconnects the event-handling goroutine. The underlying HID
// connection is left to the joysticks library's own lifecycle.
func (j *Joystick) Stop() { close(j.stop) }

func (j *Joystick) run() {
	move := j.device.OnMove(1)
	press := j.device.OnClose(1)
	release := j.device.OnOpen(1)

	go j.device.ParcelOutEvents()

	var up, down, left, right, fire bool

	for {
		select {
		case <-j.stop:
			return
		case ev := <-move:
			c := ev.(joysticks.CoordsEvent)
			up, down, left, right = axesToDirections(c.X, c.Y)
			j.input.SetJoystick(j.port, up, down, left, right, fire)
		case <-press:
			fire = true
			j.input.SetJoystick(j.port, up, down, left, right, fire)
		case <-release:
			fire = false
			j.input.SetJoystick(j.port, up, down, left, right, fire)
		}
	}
}

// axesToDirections maps a pair of analogue stick axes onto the four
// digital directions an Atari joystick port actually has.
func axesToDirections(x, y float32) (up, down, left, right bool) {
	left = x < -deadzone
	right = x > deadzone
	up = y < -deadzone
	down = y > deadzone
	return
}
