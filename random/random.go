// Package random provides a random number generator sensitive to the
// emulation's own timeline. By default each draw mixes a per-process seed
// with the timeline position, so power-on state varies run to run; with
// ZeroSeed set, the same timeline position gives the same draw in every
// run.
package random

import (
	"math/rand"
	"time"
)

// base seed for all random numbers, fixed once per process.
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().UnixNano())
}

// Coords identifies a point in the emulation timeline: frame number,
// scanline within the frame, and CPU cycle within the scanline. Callers
// that do not care about fine-grained variation may leave Scanline and
// Cycle at zero.
type Coords struct {
	Frame    int64
	Scanline int64
	Cycle    int64
}

func coordsSum(c Coords) int64 {
	return c.Frame*312*114 + c.Scanline*114 + c.Cycle
}

// Random generates numbers that vary with the supplied timeline
// coordinates. It is safe to create one per chip that needs randomised
// power-on state.
type Random struct {
	coords func() Coords

	// ZeroSeed forces a seed derived only from coordinates, ignoring the
	// process-wide base seed. Useful where power-on state must be
	// reproducible across processes.
	ZeroSeed bool
}

// NewRandom creates a Random that samples its timeline position by calling
// coords on every draw.
func NewRandom(coords func() Coords) *Random {
	return &Random{coords: coords}
}

func (r *Random) rand() *rand.Rand {
	c := Coords{}
	if r.coords != nil {
		c = r.coords()
	}
	if r.ZeroSeed {
		return rand.New(rand.NewSource(coordsSum(c)))
	}
	return rand.New(rand.NewSource(baseSeed + coordsSum(c)))
}

// Intn returns a random int in [0, n).
func (r *Random) Intn(n int) int {
	return r.rand().Intn(n)
}

// Uint8 returns a random byte, used to randomise power-on RAM contents.
func (r *Random) Uint8() uint8 {
	return uint8(r.rand().Intn(256))
}
