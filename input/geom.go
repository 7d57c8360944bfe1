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

// Vec2 is a 2d vector of float32. Used for hat directions and normalised
// touch coordinates.
type Vec2 struct {
	X float32
	Y float32
}

// Vec2i is a 2d vector of int. Used for pixel positions and deltas.
type Vec2i struct {
	X int
	Y int
}

// Add returns the sum of the two vectors.
func (v Vec2i) Add(w Vec2i) Vec2i {
	return Vec2i{X: v.X + w.X, Y: v.Y + w.Y}
}
