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

// Button is the edge-triggered primitive underneath every digital control:
// keyboard keys, mouse buttons, pointer contacts, joystick and gamepad
// buttons.
//
// WentDown() and WentUp() report a level transition for the frame in which
// it happened and for that frame only. AdvanceFrame() must be called
// exactly once per frame, before any Update() for that frame. Several
// Update() calls within one frame accumulate, so a down followed by an up
// within a single frame leaves both transition flags set.
type Button struct {
	isDown   bool
	wentDown bool
	wentUp   bool
}

// AdvanceFrame clears the transition flags ready for the next frame's
// updates. The current level is retained.
func (b *Button) AdvanceFrame() {
	b.wentDown = false
	b.wentUp = false
}

// Update the current level of the button, setting the appropriate
// transition flag if the level has changed.
func (b *Button) Update(down bool) {
	if !b.isDown && down {
		b.wentDown = true
	} else if b.isDown && !down {
		b.wentUp = true
	}
	b.isDown = down
}

// IsDown returns the current level of the button.
func (b *Button) IsDown() bool {
	return b.isDown
}

// WentDown returns true if the button transitioned from up to down during
// the current frame.
func (b *Button) WentDown() bool {
	return b.wentDown
}

// WentUp returns true if the button transitioned from down to up during
// the current frame.
func (b *Button) WentUp() bool {
	return b.wentUp
}

// Axis is the continuous control primitive. Axes have a level but no
// transitions so there is nothing to reset at the frame boundary.
type Axis struct {
	value float32
}

// AdvanceFrame does nothing for an Axis. It exists so that all controls
// can be treated uniformly by the containing device.
func (a *Axis) AdvanceFrame() {
}

// Update stores a new axis value, clamped to the range [-1, 1].
func (a *Axis) Update(v float32) {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	a.value = v
}

// Value returns the current axis value in the range [-1, 1].
func (a *Axis) Value() float32 {
	return a.value
}
