// This file is part of Frameinput.
//
// Frameinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Frameinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Frameinput.  If not, see <https://www.gnu.org/licenses/>.

// The frameinput binary is a small demonstration host for the input
// system. It opens a window, runs the frame loop and prints input state
// as it changes. Useful for eyeballing edge behaviour with real hardware.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/frameinput/frameinput/input"
	"github.com/frameinput/frameinput/logger"
	"github.com/frameinput/frameinput/platform/sdlinput"
	"github.com/frameinput/frameinput/version"

	"github.com/veandco/go-sdl2/sdl"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	echoLog := flag.Bool("log", false, "echo log entries to stderr")
	flag.Parse()

	if *showVersion {
		ver, rev, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, ver, rev)
		os.Exit(0)
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", version.ApplicationName, err)
		os.Exit(1)
	}
}

func run() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	windowSize := input.Vec2i{X: 800, Y: 600}

	window, err := sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(windowSize.X), int32(windowSize.Y),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return err
	}
	defer window.Destroy()

	plt, err := sdlinput.NewSdlInput()
	if err != nil {
		return err
	}

	sys := input.NewSystem(plt)

	sys.AddLifecycleObserver(func(ev input.EventLifecycle) {
		fmt.Printf("lifecycle: %s (frame %d)\n", ev.Notice, sys.FrameCount())
	})

	stopProducers := startProducers(sys)
	defer stopProducers()

	for !sys.ExitRequested() {
		sys.AdvanceFrame(&windowSize)

		spc := sys.GetButton(input.KeyCode(sdl.K_SPACE))
		if spc.WentDown() {
			fmt.Printf("space down (t=%.3f dt=%.3f)\n", sys.Time(), sys.DeltaTime())
		}
		if spc.WentUp() {
			fmt.Printf("space up (t=%.3f dt=%.3f)\n", sys.Time(), sys.DeltaTime())
		}

		mouse := sys.GetPointer(0)
		if sys.GetPointerButton(0).WentDown() {
			fmt.Printf("click at %d,%d\n", mouse.Position.X, mouse.Position.Y)
		}

		pad := sys.GetGamepad(0)
		if pad.GetButton(input.GamepadButtonA).WentDown() {
			fmt.Println("gamepad button A down")
		}

		time.Sleep(16 * time.Millisecond)
	}

	return nil
}
