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

// Package sdlinput is the SDL implementation of the input.Platform
// interface. It converts SDL events into the package input event types,
// exposes the SDL millisecond clock and opens SDL joystick devices on
// rescan.
//
// Application lifecycle events are received through an SDL event filter
// rather than the event queue. On mobile targets SDL delivers them from
// the OS callback context, so the filter stores them in a small guarded
// list which PollEvent() drains ahead of the SDL queue.
package sdlinput

import (
	"sync"

	"github.com/frameinput/frameinput/curated"
	"github.com/frameinput/frameinput/input"
	"github.com/frameinput/frameinput/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// sentinel error returned when an SDL joystick cannot be opened.
const FailedToOpenJoystick = "sdlinput: joystick %d: %v"

// SdlInput implements the input.Platform interface on top of the SDL
// event queue.
type SdlInput struct {
	crit sync.Mutex

	// lifecycle events captured by the event filter, drained by
	// PollEvent() ahead of the SDL queue
	lifecycle []input.Event
}

// NewSdlInput is the preferred method of initialisation for the SdlInput
// type. The SDL joystick and event subsystems are started if they are not
// already running.
func NewSdlInput() (*SdlInput, error) {
	if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK | sdl.INIT_EVENTS); err != nil {
		return nil, curated.Errorf("sdlinput: %v", err)
	}

	// make sure we receive joystick events without having to poll devices
	sdl.JoystickEventState(sdl.ENABLE)

	plt := &SdlInput{}

	// hear about lifecycle events. on mobile targets these arrive from
	// the OS callback context, not the event queue
	sdl.SetEventFilterFunc(plt.filter, nil)

	return plt, nil
}

// filter implements sdl.EventFilterFunc. Lifecycle events are captured,
// everything else stays on the SDL queue for PollEvent().
func (plt *SdlInput) filter(ev sdl.Event, _ interface{}) bool {
	var notice input.Notice

	switch ev.GetType() {
	case sdl.APP_TERMINATING:
		notice = input.NoticeTerminating
	case sdl.APP_LOWMEMORY:
		notice = input.NoticeLowMemory
	case sdl.APP_WILLENTERBACKGROUND:
		notice = input.NoticeWillEnterBackground
	case sdl.APP_DIDENTERBACKGROUND:
		notice = input.NoticeDidEnterBackground
	case sdl.APP_WILLENTERFOREGROUND:
		notice = input.NoticeWillEnterForeground
	case sdl.APP_DIDENTERFOREGROUND:
		notice = input.NoticeDidEnterForeground
	default:
		return true
	}

	plt.crit.Lock()
	defer plt.crit.Unlock()
	plt.lifecycle = append(plt.lifecycle, input.EventLifecycle{Notice: notice})

	return false
}

// PollEvent implements the input.Platform interface.
func (plt *SdlInput) PollEvent() input.Event {
	plt.crit.Lock()
	if len(plt.lifecycle) > 0 {
		ev := plt.lifecycle[0]
		plt.lifecycle = plt.lifecycle[1:]
		plt.crit.Unlock()
		return ev
	}
	plt.crit.Unlock()

	// SDL events with no conversion are skipped rather than ending the
	// drain loop
	for sev := sdl.PollEvent(); sev != nil; sev = sdl.PollEvent() {
		if ev := convert(sev); ev != nil {
			return ev
		}
	}

	return nil
}

// Ticks implements the input.Platform interface.
func (plt *SdlInput) Ticks() uint32 {
	return sdl.GetTicks()
}

// Joysticks implements the input.Platform interface.
func (plt *SdlInput) Joysticks() ([]input.JoystickHandle, error) {
	handles := make([]input.JoystickHandle, 0, sdl.NumJoysticks())

	for i := 0; i < sdl.NumJoysticks(); i++ {
		joy := sdl.JoystickOpen(i)
		if joy == nil {
			return nil, curated.Errorf(FailedToOpenJoystick, i, sdl.GetError())
		}
		logger.Logf("sdlinput", "joystick: %s", joy.Name())
		handles = append(handles, &joystickHandle{joy: joy})
	}

	return handles, nil
}

// convert translates an SDL event into the corresponding input event.
// Returns nil for SDL events the input system has no use for.
func convert(sev sdl.Event) input.Event {
	switch sev := sev.(type) {
	case *sdl.QuitEvent:
		return input.EventQuit{}

	case *sdl.KeyboardEvent:
		return input.EventKeyboard{
			Code: input.KeyCode(sev.Keysym.Sym),
			Down: sev.State == sdl.PRESSED,
		}

	case *sdl.TouchFingerEvent:
		switch sev.Type {
		case sdl.FINGERDOWN:
			return input.EventFingerDown{
				FingerID: int64(sev.FingerID),
				X:        sev.X,
				Y:        sev.Y,
			}
		case sdl.FINGERUP:
			return input.EventFingerUp{
				FingerID: int64(sev.FingerID),
				X:        sev.X,
				Y:        sev.Y,
			}
		case sdl.FINGERMOTION:
			return input.EventFingerMotion{
				FingerID: int64(sev.FingerID),
				X:        sev.X,
				Y:        sev.Y,
				DX:       sev.DX,
				DY:       sev.DY,
			}
		}
		return nil

	case *sdl.MouseButtonEvent:
		return input.EventMouseButton{
			Button: int(sev.Button) - 1,
			Down:   sev.State == sdl.PRESSED,
			X:      int(sev.X),
			Y:      int(sev.Y),
		}

	case *sdl.MouseMotionEvent:
		return input.EventMouseMotion{
			X:    int(sev.X),
			Y:    int(sev.Y),
			RelX: int(sev.XRel),
			RelY: int(sev.YRel),
		}

	case *sdl.WindowEvent:
		if sev.Event == sdl.WINDOWEVENT_RESIZED {
			return input.EventWindowResize{
				Width:  int(sev.Data1),
				Height: int(sev.Data2),
			}
		}
		return nil

	case *sdl.JoyDeviceAddedEvent:
		return input.EventJoystickDevice{Added: true}

	case *sdl.JoyDeviceRemovedEvent:
		return input.EventJoystickDevice{Added: false}

	case *sdl.JoyAxisEvent:
		return input.EventJoystickAxis{
			ID:    input.JoystickID(sev.Which),
			Axis:  int(sev.Axis),
			Value: sev.Value,
		}

	case *sdl.JoyButtonEvent:
		return input.EventJoystickButton{
			ID:     input.JoystickID(sev.Which),
			Button: int(sev.Button),
			Down:   sev.State == sdl.PRESSED,
		}

	case *sdl.JoyHatEvent:
		return input.EventJoystickHat{
			ID:    input.JoystickID(sev.Which),
			Hat:   int(sev.Hat),
			Value: input.HatPosition(sev.Value),
		}
	}

	logger.Logf("sdlinput", "unhandled SDL event (%#x)", sev.GetType())
	return nil
}

// joystickHandle implements the input.JoystickHandle interface.
type joystickHandle struct {
	joy *sdl.Joystick
}

func (h *joystickHandle) InstanceID() input.JoystickID {
	return input.JoystickID(h.joy.InstanceID())
}

func (h *joystickHandle) NumButtons() int {
	return h.joy.NumButtons()
}

func (h *joystickHandle) NumAxes() int {
	return h.joy.NumAxes()
}

func (h *joystickHandle) NumHats() int {
	return h.joy.NumHats()
}

func (h *joystickHandle) Close() error {
	h.joy.Close()
	return nil
}
