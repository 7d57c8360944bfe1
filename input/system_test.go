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

func TestFirstFrameDelta(t *testing.T) {
	plt := &mockPlatform{ticks: 1000}
	sys := input.NewSystem(plt)

	// the first frame must report a fixed small delta, not the time
	// since process start
	windowSize := input.Vec2i{X: 100, Y: 100}
	sys.AdvanceFrame(&windowSize)
	test.ExpectEquality(t, sys.DeltaTime(), float32(0.016))
	test.ExpectEquality(t, sys.Time(), float32(0.0))
}

func TestTiming(t *testing.T) {
	plt := &mockPlatform{ticks: 1000}
	sys := input.NewSystem(plt)
	windowSize := input.Vec2i{X: 100, Y: 100}

	sys.AdvanceFrame(&windowSize)

	plt.ticks = 1020
	sys.AdvanceFrame(&windowSize)
	test.ExpectEquality(t, sys.DeltaTime(), float32(0.020))
	test.ExpectEquality(t, sys.Time(), float32(0.020))

	plt.ticks = 5000
	sys.AdvanceFrame(&windowSize)
	test.ExpectEquality(t, sys.Time(), float32(4.0))
	test.ExpectEquality(t, sys.FrameCount(), 3)
}

func TestKeyboardSameFrameDownUp(t *testing.T) {
	plt := &mockPlatform{ticks: 1000}
	sys := input.NewSystem(plt)
	windowSize := input.Vec2i{X: 100, Y: 100}

	// both events arrive within one frame
	plt.push(
		input.EventKeyboard{Code: 'A', Down: true},
		input.EventKeyboard{Code: 'A', Down: false},
	)
	sys.AdvanceFrame(&windowSize)

	b := sys.GetButton('A')
	test.ExpectFailure(t, b.IsDown())
	test.ExpectSuccess(t, b.WentDown())
	test.ExpectSuccess(t, b.WentUp())

	// an empty frame clears both transition flags
	sys.AdvanceFrame(&windowSize)
	test.ExpectFailure(t, b.IsDown())
	test.ExpectFailure(t, b.WentDown())
	test.ExpectFailure(t, b.WentUp())
}

func TestQuitLatch(t *testing.T) {
	plt := &mockPlatform{ticks: 1000}
	sys := input.NewSystem(plt)
	windowSize := input.Vec2i{X: 100, Y: 100}

	test.ExpectFailure(t, sys.ExitRequested())

	plt.push(input.EventQuit{})
	sys.AdvanceFrame(&windowSize)
	test.ExpectSuccess(t, sys.ExitRequested())

	// the latch is one-way. later frames never clear it
	sys.AdvanceFrame(&windowSize)
	test.ExpectSuccess(t, sys.ExitRequested())
}

func TestLifecycle(t *testing.T) {
	plt := &mockPlatform{ticks: 1000}
	sys := input.NewSystem(plt)
	windowSize := input.Vec2i{X: 100, Y: 100}

	var notices []input.Notice
	sys.AddLifecycleObserver(func(ev input.EventLifecycle) {
		notices = append(notices, ev.Notice)
	})
	sys.AddLifecycleObserver(func(ev input.EventLifecycle) {
		notices = append(notices, "second")
	})

	plt.push(input.EventLifecycle{Notice: input.NoticeWillEnterBackground})
	sys.AdvanceFrame(&windowSize)
	test.ExpectSuccess(t, sys.Minimized())
	test.ExpectEquality(t, sys.MinimizedFrame(), 1)

	plt.push(input.EventLifecycle{Notice: input.NoticeDidEnterForeground})
	sys.AdvanceFrame(&windowSize)
	sys.AdvanceFrame(&windowSize)
	test.ExpectFailure(t, sys.Minimized())
	test.ExpectEquality(t, sys.MinimizedFrame(), 2)

	// observers run in registration order for every lifecycle event
	test.DemandEquality(t, len(notices), 4)
	test.ExpectEquality(t, notices[0], input.NoticeWillEnterBackground)
	test.ExpectEquality(t, notices[1], "second")
	test.ExpectEquality(t, notices[2], input.NoticeDidEnterForeground)
	test.ExpectEquality(t, notices[3], "second")
}

func TestWindowResize(t *testing.T) {
	plt := &mockPlatform{ticks: 1000}
	sys := input.NewSystem(plt)
	windowSize := input.Vec2i{X: 100, Y: 100}

	plt.push(input.EventWindowResize{Width: 640, Height: 480})
	sys.AdvanceFrame(&windowSize)
	test.ExpectEquality(t, windowSize, input.Vec2i{X: 640, Y: 480})
}
