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
	"testing"

	"github.com/frameinput/frameinput/input"
	"github.com/frameinput/frameinput/test"
)

func TestPointerIdentity(t *testing.T) {
	plt := &mockPlatform{ticks: 1000}
	sys := input.NewSystem(plt)
	windowSize := input.Vec2i{X: 100, Y: 100}

	// two contacts with distinct ids. the first one down takes the first
	// free slot
	plt.push(
		input.EventFingerDown{FingerID: 5, X: 0.1, Y: 0.1},
		input.EventFingerDown{FingerID: 7, X: 0.9, Y: 0.9},
	)
	sys.AdvanceFrame(&windowSize)

	test.ExpectSuccess(t, sys.GetPointer(0).InUse)
	test.ExpectEquality(t, sys.GetPointer(0).ID, int64(5))
	test.ExpectSuccess(t, sys.GetPointer(1).InUse)
	test.ExpectEquality(t, sys.GetPointer(1).ID, int64(7))

	// motion for id 7 must resolve to id 7's slot, not the slot that was
	// allocated first
	plt.push(input.EventFingerMotion{FingerID: 7, X: 0.5, Y: 0.5, DX: -0.4, DY: -0.4})
	sys.AdvanceFrame(&windowSize)

	test.ExpectEquality(t, sys.GetPointer(1).Position, input.Vec2i{X: 50, Y: 50})
	test.ExpectEquality(t, sys.GetPointer(1).Delta, input.Vec2i{X: -40, Y: -40})
	test.ExpectEquality(t, sys.GetPointer(0).Position, input.Vec2i{X: 10, Y: 10})

	// releasing id 5 frees its slot for a subsequent distinct contact
	plt.push(input.EventFingerUp{FingerID: 5, X: 0.1, Y: 0.1})
	sys.AdvanceFrame(&windowSize)
	test.ExpectFailure(t, sys.GetPointer(0).InUse)

	plt.push(input.EventFingerDown{FingerID: 9, X: 0.2, Y: 0.2})
	sys.AdvanceFrame(&windowSize)
	test.ExpectSuccess(t, sys.GetPointer(0).InUse)
	test.ExpectEquality(t, sys.GetPointer(0).ID, int64(9))

	// id 7 is undisturbed throughout
	test.ExpectSuccess(t, sys.GetPointer(1).InUse)
	test.ExpectEquality(t, sys.GetPointer(1).ID, int64(7))
}

func TestPointerCompanionButton(t *testing.T) {
	plt := &mockPlatform{ticks: 1000}
	sys := input.NewSystem(plt)
	windowSize := input.Vec2i{X: 100, Y: 100}

	// contact begins and ends within a single frame. the companion
	// button reports both edges even though the slot is already free
	plt.push(
		input.EventFingerDown{FingerID: 3, X: 0.5, Y: 0.5},
		input.EventFingerUp{FingerID: 3, X: 0.5, Y: 0.5},
	)
	sys.AdvanceFrame(&windowSize)

	b := sys.GetPointerButton(0)
	test.ExpectFailure(t, b.IsDown())
	test.ExpectSuccess(t, b.WentDown())
	test.ExpectSuccess(t, b.WentUp())
	test.ExpectFailure(t, sys.GetPointer(0).InUse)
}

func TestMouseSlot(t *testing.T) {
	plt := &mockPlatform{ticks: 1000}
	sys := input.NewSystem(plt)
	windowSize := input.Vec2i{X: 100, Y: 100}

	plt.push(input.EventMouseButton{Button: 0, Down: true, X: 25, Y: 75})
	sys.AdvanceFrame(&windowSize)

	mouse := sys.GetPointer(0)
	test.ExpectSuccess(t, mouse.InUse)
	test.ExpectEquality(t, mouse.Position, input.Vec2i{X: 25, Y: 75})
	test.ExpectSuccess(t, sys.GetPointerButton(0).WentDown())

	// motion accumulates the OS relative deltas, independent of the
	// absolute position
	plt.push(
		input.EventMouseMotion{X: 30, Y: 70, RelX: 5, RelY: -5},
		input.EventMouseMotion{X: 32, Y: 69, RelX: 2, RelY: -1},
	)
	sys.AdvanceFrame(&windowSize)
	test.ExpectEquality(t, mouse.Position, input.Vec2i{X: 32, Y: 69})
	test.ExpectEquality(t, mouse.Delta, input.Vec2i{X: 7, Y: -6})

	// deltas reset at the frame boundary
	sys.AdvanceFrame(&windowSize)
	test.ExpectEquality(t, mouse.Delta, input.Vec2i{})

	// a mouse up does not release the mouse slot
	plt.push(input.EventMouseButton{Button: 0, Down: false, X: 32, Y: 69})
	sys.AdvanceFrame(&windowSize)
	test.ExpectSuccess(t, mouse.InUse)
	test.ExpectSuccess(t, sys.GetPointerButton(0).WentUp())
}
