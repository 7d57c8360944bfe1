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

// KeyCode identifies a key on the keyboard. Values are the platform's raw
// key codes and are always positive. Negative values are reserved for the
// pointer companion buttons.
type KeyCode int32

// JoystickID is the platform-assigned instance id of a connected joystick.
// Instance ids are stable for the lifetime of a connection but a replugged
// device may be assigned a new id.
type JoystickID int32

// Event is a raw event received from the platform. One of the Event*
// types defined in this package.
type Event interface{}

// EventQuit is sent when the user has asked the application to close.
type EventQuit struct{}

// Notice describes an application lifecycle notification from the
// platform. These mostly matter on mobile targets.
type Notice string

// List of defined lifecycle notices.
const (
	NoticeTerminating         Notice = "Terminating"
	NoticeLowMemory           Notice = "LowMemory"
	NoticeWillEnterBackground Notice = "WillEnterBackground"
	NoticeDidEnterBackground  Notice = "DidEnterBackground"
	NoticeWillEnterForeground Notice = "WillEnterForeground"
	NoticeDidEnterForeground  Notice = "DidEnterForeground"
)

// EventLifecycle is sent when the application changes lifecycle state.
type EventLifecycle struct {
	Notice Notice
}

// EventKeyboard is sent for every key down and key up.
type EventKeyboard struct {
	Code KeyCode
	Down bool
}

// EventFingerDown is sent when a touch contact begins. X and Y are
// normalised to the range [0, 1].
type EventFingerDown struct {
	FingerID int64
	X        float32
	Y        float32
}

// EventFingerUp is sent when a touch contact ends.
type EventFingerUp struct {
	FingerID int64
	X        float32
	Y        float32
}

// EventFingerMotion is sent when a touch contact moves. DX and DY are the
// normalised movement since the last finger event.
type EventFingerMotion struct {
	FingerID int64
	X        float32
	Y        float32
	DX       float32
	DY       float32
}

// EventMouseButton is sent for every mouse button down and up. Button is
// zero-based, the left button is button 0.
type EventMouseButton struct {
	Button int
	Down   bool
	X      int
	Y      int
}

// EventMouseMotion is sent when the mouse moves. RelX and RelY are the
// relative movement as reported by the OS, independent of the absolute
// position.
type EventMouseMotion struct {
	X    int
	Y    int
	RelX int
	RelY int
}

// EventWindowResize is sent when the window has been resized.
type EventWindowResize struct {
	Width  int
	Height int
}

// EventJoystickDevice is sent when a joystick has been connected or
// disconnected.
type EventJoystickDevice struct {
	Added bool
}

// EventJoystickAxis is sent when a joystick axis moves. Value is in raw
// device units.
type EventJoystickAxis struct {
	ID    JoystickID
	Axis  int
	Value int16
}

// EventJoystickButton is sent for every joystick button down and up.
type EventJoystickButton struct {
	ID     JoystickID
	Button int
	Down   bool
}

// EventJoystickHat is sent when a joystick hat changes position.
type EventJoystickHat struct {
	ID    JoystickID
	Hat   int
	Value HatPosition
}

// Platform is the connection between the System and the platform event
// pump. The System is the only consumer, all functions are called from the
// frame-advance goroutine.
type Platform interface {
	// PollEvent returns the next pending event, or nil once the queue is
	// empty. The System drains the queue completely every frame.
	PollEvent() Event

	// Ticks returns the platform clock in milliseconds.
	Ticks() uint32

	// Joysticks enumerates and opens every connected joystick. Called on
	// startup and again after every device added/removed event.
	Joysticks() ([]JoystickHandle, error)
}

// JoystickHandle is an opaque handle to an open platform joystick device.
type JoystickHandle interface {
	InstanceID() JoystickID
	NumButtons() int
	NumAxes() int
	NumHats() int
	Close() error
}
