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
	"github.com/frameinput/frameinput/logger"
)

// HatPosition is the raw position of a joystick hat as reported by the
// platform. The bit values match the SDL hat masks so an SDL backend can
// pass the raw value through unchanged.
type HatPosition uint8

// List of valid HatPosition values.
const (
	HatCentred   HatPosition = 0x00
	HatUp        HatPosition = 0x01
	HatRight     HatPosition = 0x02
	HatDown      HatPosition = 0x04
	HatLeft      HatPosition = 0x08
	HatRightUp   HatPosition = HatRight | HatUp
	HatRightDown HatPosition = HatRight | HatDown
	HatLeftUp    HatPosition = HatLeft | HatUp
	HatLeftDown  HatPosition = HatLeft | HatDown
)

// Vector converts the hat position into a unit/zero 2d vector. Screen
// convention applies, up is negative y. Positions outside the nine
// canonical directions convert to the zero vector.
func (h HatPosition) Vector() Vec2 {
	switch h {
	case HatCentred:
		return Vec2{0, 0}
	case HatUp:
		return Vec2{0, -1}
	case HatRightUp:
		return Vec2{1, -1}
	case HatRight:
		return Vec2{1, 0}
	case HatRightDown:
		return Vec2{1, 1}
	case HatDown:
		return Vec2{0, 1}
	case HatLeftDown:
		return Vec2{-1, 1}
	case HatLeft:
		return Vec2{-1, 0}
	case HatLeftUp:
		return Vec2{-1, -1}
	}

	logger.Logf("input", "unknown hat position (%#02x)", uint8(h))
	return Vec2{0, 0}
}

// Hat is the discrete-direction control primitive. Like Axis it is a level
// with no transitions.
type Hat struct {
	value Vec2
}

// AdvanceFrame does nothing for a Hat. It exists so that all controls can
// be treated uniformly by the containing device.
func (h *Hat) AdvanceFrame() {
}

// Update stores a new hat direction.
func (h *Hat) Update(v Vec2) {
	h.value = v
}

// Value returns the current hat direction as a unit/zero vector.
func (h *Hat) Value() Vec2 {
	return h.value
}
