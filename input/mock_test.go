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

package input_test

import (
	"github.com/frameinput/frameinput/input"
)

// mockPlatform is a scripted implementation of the input.Platform
// interface. Tests queue events with push() and control the clock
// directly through the ticks field.
type mockPlatform struct {
	ticks   uint32
	events  []input.Event
	handles []input.JoystickHandle
}

func (plt *mockPlatform) push(events ...input.Event) {
	plt.events = append(plt.events, events...)
}

func (plt *mockPlatform) PollEvent() input.Event {
	if len(plt.events) == 0 {
		return nil
	}
	ev := plt.events[0]
	plt.events = plt.events[1:]
	return ev
}

func (plt *mockPlatform) Ticks() uint32 {
	return plt.ticks
}

func (plt *mockPlatform) Joysticks() ([]input.JoystickHandle, error) {
	return plt.handles, nil
}

// mockJoystick is a scripted implementation of the input.JoystickHandle
// interface.
type mockJoystick struct {
	id      input.JoystickID
	buttons int
	axes    int
	hats    int
	closed  bool
}

func (j *mockJoystick) InstanceID() input.JoystickID {
	return j.id
}

func (j *mockJoystick) NumButtons() int {
	return j.buttons
}

func (j *mockJoystick) NumAxes() int {
	return j.axes
}

func (j *mockJoystick) NumHats() int {
	return j.hats
}

func (j *mockJoystick) Close() error {
	j.closed = true
	return nil
}
