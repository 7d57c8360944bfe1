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

import "fmt"

// DeviceID identifies the device an asynchronous gamepad event originated
// from. The value space is owned by the producer.
type DeviceID int64

// GamepadButton indexes the fixed set of controls on a Gamepad.
type GamepadButton int

// The gamepad control set. This is a closed enum under the control of this
// package, unlike the sparse keyboard code space.
const (
	GamepadUp GamepadButton = iota
	GamepadDown
	GamepadLeft
	GamepadRight
	GamepadButtonA
	GamepadButtonB
	GamepadButtonC
	GamepadNumButtons
)

// GamepadInvalid is returned by GamepadButtonFromPadKey for key codes with
// no gamepad mapping. Callers must skip events that resolve to it.
const GamepadInvalid GamepadButton = -1

// PadKey is the platform-neutral key code space used by asynchronous
// gamepad producers. A producer translates whatever raw codes its platform
// delivers into PadKey values before posting.
type PadKey int

// List of valid PadKey values.
const (
	PadKeyDpadUp PadKey = iota
	PadKeyDpadDown
	PadKeyDpadLeft
	PadKeyDpadRight
	PadKeyDpadCentre
	PadKeyButtonA
	PadKeyButtonB
	PadKeyButtonC
)

// Note that PadKeyDpadCentre maps onto GamepadButtonA. They have the same
// functional purpose and anyone dealing with a gamepad isn't going to want
// to deal with the distinction.
var padKeyMap = []struct {
	key    PadKey
	button GamepadButton
}{
	{PadKeyDpadUp, GamepadUp},
	{PadKeyDpadDown, GamepadDown},
	{PadKeyDpadLeft, GamepadLeft},
	{PadKeyDpadRight, GamepadRight},
	{PadKeyDpadCentre, GamepadButtonA},
	{PadKeyButtonA, GamepadButtonA},
	{PadKeyButtonB, GamepadButtonB},
	{PadKeyButtonC, GamepadButtonC},
}

// GamepadButtonFromPadKey maps a producer key code onto the gamepad
// control set. Returns GamepadInvalid for codes with no mapping.
func GamepadButtonFromPadKey(key PadKey) GamepadButton {
	for _, m := range padKeyMap {
		if m.key == key {
			return m.button
		}
	}
	return GamepadInvalid
}

// Gamepad is the accumulated state of one gamepad device delivering events
// through the asynchronous queue.
type Gamepad struct {
	device  DeviceID
	buttons [GamepadNumButtons]Button
}

// DeviceID returns the id of the device this gamepad receives events from.
func (g *Gamepad) DeviceID() DeviceID {
	return g.device
}

// GetButton returns the button for the specified gamepad control. An index
// outside the control enum is a programming error, not a device condition,
// and the function panics.
func (g *Gamepad) GetButton(index GamepadButton) *Button {
	if index < 0 || index >= GamepadNumButtons {
		panic(fmt.Sprintf("gamepad button index out of range (%d)", index))
	}
	return &g.buttons[index]
}

// AdvanceFrame resets the per-frame state of every button on the gamepad.
func (g *Gamepad) AdvanceFrame() {
	for i := range g.buttons {
		g.buttons[i].AdvanceFrame()
	}
}
