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

// Package input aggregates raw platform events into a frame-synchronous
// model that application code can poll once per simulation tick.
//
// It can be thought of as a translation layer between the platform event
// pump and the game loop. The platform delivers events whenever it likes;
// the game loop wants to ask "did this button go down this frame?" and get
// the same answer for the whole frame. The System type resolves the two by
// folding every pending event into its button/pointer/joystick/gamepad
// tables exactly once per call to AdvanceFrame().
//
// The platform implementation in use during development was SDL and so
// there will be a bias towards that system. The core however only ever
// talks to the Platform interface, meaning that tests can drive it with a
// scripted event source.
//
// Events that originate on a different goroutine to the game loop (for
// example, gamepad callbacks delivered by the evdev reader) must never
// touch the tables directly. They are handed over with PostAsyncEvent()
// and folded in at the next frame boundary, before the synchronous
// platform queue is drained.
package input
