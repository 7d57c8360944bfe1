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

package input

import (
	"fmt"

	"github.com/frameinput/frameinput/logger"
)

// number of ticks in one second as returned by Platform.Ticks().
const millisPerSecond = 1000.0

// the synthetic delta for the very first frame, in milliseconds. without
// this the first delta would measure everything since platform init.
const firstFrameTime = 16

// threshold at which an asynchronous motion event registers as a dpad
// direction press.
const gamepadHatThreshold = 0.5

// System aggregates raw platform events into per-frame input state.
//
// All state is owned by the goroutine calling AdvanceFrame(). The only
// entry point callable from other goroutines is PostAsyncEvent(). One
// AdvanceFrame() call fully completes before the next; the function must
// not be re-entered from a lifecycle observer.
type System struct {
	plt Platform

	// sparse button table. entries are created on first reference and
	// never removed
	buttons map[KeyCode]*Button

	// fixed-size pointer table. slot 0 is reserved for the mouse
	pointers []Pointer

	// joysticks are keyed by platform instance id. entries persist even
	// after the physical device has been unplugged, preserving control
	// history if the same id is seen again
	joysticks map[JoystickID]*Joystick

	// gamepads are keyed by the producer's device id. created lazily
	gamepads map[DeviceID]*Gamepad

	// the hand-off buffer for events arriving from other goroutines
	async asyncQueue

	frames     int
	startTicks uint32
	lastTicks  uint32
	frameTime  uint32

	minimized      bool
	minimizedFrame int

	exitRequested bool

	observers []func(EventLifecycle)
}

// NewSystem is the preferred method of initialisation for the System type.
// The initial set of connected joysticks is opened immediately.
func NewSystem(plt Platform) *System {
	s := &System{
		plt:       plt,
		buttons:   make(map[KeyCode]*Button),
		pointers:  make([]Pointer, MaxPointers),
		joysticks: make(map[JoystickID]*Joystick),
		gamepads:  make(map[DeviceID]*Gamepad),
	}

	s.startTicks = plt.Ticks()

	// prime the frame clock so the first delta is firstFrameTime rather
	// than the time since platform init. unsigned arithmetic wraps near
	// zero but the delta subtraction still comes out right
	s.lastTicks = s.startTicks - firstFrameTime

	s.rescanJoysticks()

	return s
}

// AddLifecycleObserver registers a callback for application lifecycle
// events. Observers run synchronously during AdvanceFrame(), in
// registration order, and must not re-enter the System.
func (s *System) AddLifecycleObserver(observer func(EventLifecycle)) {
	s.observers = append(s.observers, observer)
}

// PostAsyncEvent hands a gamepad event to the System from another
// goroutine. The event is folded in at the start of the next
// AdvanceFrame(), before the synchronous platform queue is drained. Never
// blocks. Once the hand-off buffer is full events are dropped.
func (s *System) PostAsyncEvent(device DeviceID, kind AsyncEventKind, code PadKey, x, y float32) {
	s.async.push(AsyncEvent{
		Device: device,
		Kind:   kind,
		Code:   code,
		X:      x,
		Y:      y,
	})
}

// AdvanceFrame folds all pending input into the button, pointer, joystick
// and gamepad tables. Call exactly once per simulation tick, always from
// the same goroutine.
//
// The windowSize argument is read when scaling touch coordinates and is
// updated if a resize event is seen during the frame.
func (s *System) AdvanceFrame(windowSize *Vec2i) {
	// update timing
	millis := s.plt.Ticks()
	s.frameTime = millis - s.lastTicks
	s.lastTicks = millis
	s.frames++

	// reset per-frame input state
	for _, b := range s.buttons {
		b.AdvanceFrame()
	}
	for i := range s.pointers {
		s.pointers[i].Delta = Vec2i{}
	}
	for _, j := range s.joysticks {
		j.AdvanceFrame()
	}
	for _, g := range s.gamepads {
		g.AdvanceFrame()
	}

	// events posted from other goroutines logically predate this frame
	// so they are applied before the synchronous queue is drained
	s.handleAsyncEvents()

	// poll events until the queue is empty
	for ev := s.plt.PollEvent(); ev != nil; ev = s.plt.PollEvent() {
		switch ev := ev.(type) {
		case EventQuit:
			// one-way latch. never cleared by the System
			s.exitRequested = true

		case EventLifecycle:
			s.lifecycle(ev)

		case EventKeyboard:
			s.GetButton(ev.Code).Update(ev.Down)

		case EventFingerDown:
			i := s.findPointer(ev.FingerID)
			s.updateDragPosition(i, ev.X, ev.Y, 0, 0, *windowSize)
			s.GetPointerButton(i).Update(true)

		case EventFingerUp:
			i := s.findPointer(ev.FingerID)
			s.updateDragPosition(i, ev.X, ev.Y, 0, 0, *windowSize)
			s.GetPointerButton(i).Update(false)
			s.releasePointer(i)

		case EventFingerMotion:
			i := s.findPointer(ev.FingerID)
			s.updateDragPosition(i, ev.X, ev.Y, ev.DX, ev.DY, *windowSize)

		case EventMouseButton:
			s.GetPointerButton(ev.Button).Update(ev.Down)
			s.pointers[0].Position = Vec2i{X: ev.X, Y: ev.Y}
			s.pointers[0].InUse = true

		case EventMouseMotion:
			s.pointers[0].Delta = s.pointers[0].Delta.Add(Vec2i{X: ev.RelX, Y: ev.RelY})
			s.pointers[0].Position = Vec2i{X: ev.X, Y: ev.Y}

		case EventWindowResize:
			*windowSize = Vec2i{X: ev.Width, Y: ev.Height}

		case EventJoystickDevice:
			s.rescanJoysticks()

		case EventJoystickAxis:
			// axis data is normalised to a range of [-1, 1]
			s.GetJoystick(ev.ID).GetAxis(ev.Axis).Update(float32(ev.Value) / joystickAxisRange)

		case EventJoystickButton:
			s.GetJoystick(ev.ID).GetButton(ev.Button).Update(ev.Down)

		case EventJoystickHat:
			s.GetJoystick(ev.ID).GetHat(ev.Hat).Update(ev.Value.Vector())

		default:
			logger.Logf("input", "unknown platform event (%T)", ev)
		}
	}
}

// lifecycle updates the minimized state machine and notifies observers.
func (s *System) lifecycle(ev EventLifecycle) {
	switch ev.Notice {
	case NoticeWillEnterBackground:
		s.minimized = true
		s.minimizedFrame = s.frames
	case NoticeDidEnterForeground:
		s.minimized = false
		s.minimizedFrame = s.frames
	}

	for _, observer := range s.observers {
		observer(ev)
	}
}

// handleAsyncEvents folds queued asynchronous gamepad events into the
// gamepad table. The queue is swapped out in one step so producers can
// keep posting while the backlog is processed.
func (s *System) handleAsyncEvents() {
	for _, ev := range s.async.drain() {
		gamepad := s.GetGamepad(ev.Device)

		switch ev.Kind {
		case AsyncKeyDown, AsyncKeyUp:
			button := GamepadButtonFromPadKey(ev.Code)
			if button == GamepadInvalid {
				logger.Logf("input", "unmapped pad key (%d)", ev.Code)
				continue
			}
			gamepad.GetButton(button).Update(ev.Kind == AsyncKeyDown)

		case AsyncMotion:
			gamepad.GetButton(GamepadLeft).Update(ev.X < -gamepadHatThreshold)
			gamepad.GetButton(GamepadRight).Update(ev.X > gamepadHatThreshold)
			gamepad.GetButton(GamepadUp).Update(ev.Y < -gamepadHatThreshold)
			gamepad.GetButton(GamepadDown).Update(ev.Y > gamepadHatThreshold)

		default:
			logger.Logf("input", "unknown async event kind (%d)", ev.Kind)
		}
	}
}

// rescanJoysticks reconciles the joystick table with the set of currently
// connected devices. Existing Joystick entries keep their accumulated
// control state, only the platform handle is refreshed.
func (s *System) rescanJoysticks() {
	for _, j := range s.joysticks {
		if j.handle != nil {
			j.handle.Close()
			j.handle = nil
		}
	}

	handles, err := s.plt.Joysticks()
	if err != nil {
		logger.Logf("input", "joystick rescan: %v", err)
		return
	}

	for _, handle := range handles {
		id := handle.InstanceID()
		j, ok := s.joysticks[id]
		if !ok {
			j = &Joystick{}
			s.joysticks[id] = j
		}
		j.handle = handle
	}
}

// GetButton returns the button for the specified key code, creating it on
// first reference. Buttons are never removed from the table.
func (s *System) GetButton(code KeyCode) *Button {
	b, ok := s.buttons[code]
	if !ok {
		b = &Button{}
		s.buttons[code] = b
	}
	return b
}

// GetJoystick returns the joystick with the specified instance id.
// Referencing an id that has never been connected is a programming error
// and the function panics.
func (s *System) GetJoystick(id JoystickID) *Joystick {
	j, ok := s.joysticks[id]
	if !ok {
		panic(fmt.Sprintf("no joystick with instance id %d", id))
	}
	return j
}

// GetGamepad returns the gamepad for the specified device id, creating it
// on first reference.
func (s *System) GetGamepad(device DeviceID) *Gamepad {
	g, ok := s.gamepads[device]
	if !ok {
		g = &Gamepad{device: device}
		s.gamepads[device] = g
	}
	return g
}

// Time returns the elapsed seconds between the start of the System and the
// most recent AdvanceFrame().
func (s *System) Time() float32 {
	return float32(s.lastTicks-s.startTicks) / millisPerSecond
}

// DeltaTime returns the duration of the last frame in seconds.
func (s *System) DeltaTime() float32 {
	return float32(s.frameTime) / millisPerSecond
}

// FrameCount returns the number of completed AdvanceFrame() calls.
func (s *System) FrameCount() int {
	return s.frames
}

// ExitRequested returns true once the platform has delivered a quit
// event. The flag is never cleared; it is for the host to observe and act
// on.
func (s *System) ExitRequested() bool {
	return s.exitRequested
}

// Minimized returns true while the application is backgrounded.
func (s *System) Minimized() bool {
	return s.minimized
}

// MinimizedFrame returns the frame count at which the minimized state last
// changed.
func (s *System) MinimizedFrame() int {
	return s.minimizedFrame
}
