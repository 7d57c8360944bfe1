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

// maximum range (+/-) of values in a raw joystick axis event.
const joystickAxisRange = 32767.0

// Joystick is the accumulated state of one physical joystick device.
//
// Control lists grow on demand to the highest index the device has ever
// sent an event for and never shrink. A Joystick is created the first time
// its instance id is seen and is never removed from the System, even if
// the physical device is unplugged. The platform handle however is
// replaced on every device rescan.
type Joystick struct {
	// handle is nil between the device being removed and the next rescan
	handle JoystickHandle

	buttons []Button
	axes    []Axis
	hats    []Hat
}

// GetButton returns the button at the specified device index, growing the
// button list if the index has not been seen before.
func (j *Joystick) GetButton(index int) *Button {
	for index >= len(j.buttons) {
		j.buttons = append(j.buttons, Button{})
	}
	return &j.buttons[index]
}

// GetAxis returns the axis at the specified device index, growing the axis
// list if the index has not been seen before.
func (j *Joystick) GetAxis(index int) *Axis {
	for index >= len(j.axes) {
		j.axes = append(j.axes, Axis{})
	}
	return &j.axes[index]
}

// GetHat returns the hat at the specified device index, growing the hat
// list if the index has not been seen before.
func (j *Joystick) GetHat(index int) *Hat {
	for index >= len(j.hats) {
		j.hats = append(j.hats, Hat{})
	}
	return &j.hats[index]
}

// AdvanceFrame resets the per-frame state of every control owned by the
// joystick.
func (j *Joystick) AdvanceFrame() {
	for i := range j.buttons {
		j.buttons[i].AdvanceFrame()
	}
	for i := range j.axes {
		j.axes[i].AdvanceFrame()
	}
	for i := range j.hats {
		j.hats[i].AdvanceFrame()
	}
}

// InstanceID returns the platform instance id for the device. Returns -1
// if the device is currently disconnected.
func (j *Joystick) InstanceID() JoystickID {
	if j.handle == nil {
		return -1
	}
	return j.handle.InstanceID()
}

// NumButtons returns the number of buttons the device reports. The value
// is read through the platform handle and is not cached.
func (j *Joystick) NumButtons() int {
	if j.handle == nil {
		return 0
	}
	return j.handle.NumButtons()
}

// NumAxes returns the number of axes the device reports. The value is
// read through the platform handle and is not cached.
func (j *Joystick) NumAxes() int {
	if j.handle == nil {
		return 0
	}
	return j.handle.NumAxes()
}

// NumHats returns the number of hats the device reports. The value is
// read through the platform handle and is not cached.
func (j *Joystick) NumHats() int {
	if j.handle == nil {
		return 0
	}
	return j.handle.NumHats()
}
