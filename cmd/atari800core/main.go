// Command atari800core is the headless bring-up shell: it loads the two
// ROM images and an optional software image, then runs the machine
// either for a fixed number of frames (for FPS measurement and
// regression capture) or until interrupted. Grounded on the teacher's
// headless.go: a flag-selected mode, a straightforward main with
// os.Exit on failure, and an FPS-measurement loop timed with
// time.Since.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/retrostack/atari800core/config"
	"github.com/retrostack/atari800core/hardware/system"
	"github.com/retrostack/atari800core/peripherals"
	"github.com/retrostack/atari800core/sink"
	"github.com/retrostack/atari800core/sink/wavsink"
)

func main() {
	osROMPath := flag.String("os-rom", "", "path to the 16KiB OS ROM image")
	basicROMPath := flag.String("basic-rom", "", "path to the 8KiB BASIC ROM image")
	loadPath := flag.String("load", "", "path to a .xex, .bin (with -load-addr), or .atr image to load at start")
	loadAddr := flag.Uint("load-addr", 0x2000, "load address for a .bin image")
	pal := flag.Bool("pal", false, "select PAL timing instead of NTSC")
	frames := flag.Int("frames", 0, "run exactly this many frames then exit (0 = run until interrupted)")
	wavPath := flag.String("wav", "", "write captured audio to this WAV file on exit")
	joystickIndex := flag.Int("joystick", 0, "OS-assigned index of a real joystick to connect on port 0 (0 = none)")
	flag.Parse()

	if err := run(*osROMPath, *basicROMPath, *loadPath, uint16(*loadAddr), *pal, *frames, *wavPath, *joystickIndex); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(10)
	}
}

func run(osROMPath, basicROMPath, loadPath string, loadAddr uint16, pal bool, frames int, wavPath string, joystickIndex int) error {
	if osROMPath == "" || basicROMPath == "" {
		return fmt.Errorf("atari800core: -os-rom and -basic-rom are both required")
	}

	osROM, err := os.ReadFile(osROMPath)
	if err != nil {
		return fmt.Errorf("atari800core: reading OS ROM: %w", err)
	}
	basicROM, err := os.ReadFile(basicROMPath)
	if err != nil {
		return fmt.Errorf("atari800core: reading BASIC ROM: %w", err)
	}

	cfg := config.Default()
	if pal {
		cfg.Region = config.PAL
	}

	var audio *wavsink.WavSink
	var audioSink sink.Audio
	if wavPath != "" {
		audio = wavsink.New(wavPath, cfg.SampleRate)
		audioSink = audio
	}

	m, err := system.New(cfg, osROM, basicROM, nullDisplay{}, audioSink)
	if err != nil {
		return fmt.Errorf("atari800core: %w", err)
	}

	if loadPath != "" {
		data, err := os.ReadFile(loadPath)
		if err != nil {
			return fmt.Errorf("atari800core: reading %s: %w", loadPath, err)
		}
		switch strings.ToLower(filepath.Ext(loadPath)) {
		case ".xex":
			err = m.LoadXEX(data)
		case ".atr":
			_, err = m.MountATR(data)
		default:
			err = m.LoadBinary(data, loadAddr)
		}
		if err != nil {
			return fmt.Errorf("atari800core: loading %s: %w", loadPath, err)
		}
	}

	if joystickIndex > 0 {
		stick, err := peripherals.Connect(joystickIndex, 0, m)
		if err != nil {
			return fmt.Errorf("atari800core: connecting joystick: %w", err)
		}
		defer stick.Stop()
	}

	var stopping atomic.Bool
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		stopping.Store(true)
	}()

	start := time.Now()

	if frames > 0 {
		for m.FramesRun() < frames && !stopping.Load() {
			m.RunFrame()
		}
	} else {
		m.Run(func() bool { return !stopping.Load() })
	}

	elapsed := time.Since(start)
	if elapsed > 0 {
		framesRun := m.FramesRun()
		fmt.Printf("%d frames in %s (%.1f fps), %d sink overflows\n", framesRun, elapsed, float64(framesRun)/elapsed.Seconds(), m.Overflows())
	}

	if audio != nil {
		if err := audio.Close(); err != nil {
			return fmt.Errorf("atari800core: writing %s: %w", wavPath, err)
		}
	}

	return nil
}

// nullDisplay discards every frame; a headless run with no GUI still
// needs something that satisfies sink.Display.
type nullDisplay struct{}

func (nullDisplay) PresentBitmap(width, height int, pixels []byte) error { return nil }
func (nullDisplay) PresentBorder(paletteIndex byte)                     {}
