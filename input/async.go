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

import "sync"

// AsyncEventKind discriminates asynchronous gamepad events.
type AsyncEventKind int

// List of valid AsyncEventKind values.
const (
	AsyncKeyDown AsyncEventKind = iota
	AsyncKeyUp
	AsyncMotion
)

// AsyncEvent is a gamepad event posted from outside the frame-advance
// goroutine.
type AsyncEvent struct {
	Device DeviceID
	Kind   AsyncEventKind

	// Code is only meaningful for AsyncKeyDown and AsyncKeyUp
	Code PadKey

	// X and Y are only meaningful for AsyncMotion. Range [-1, 1]
	X float32
	Y float32
}

// maximum number of events the asynchronous queue will hold. generous
// relative to what a producer can deliver in one frame. once full, new
// events are dropped until the next drain
const maxAsyncEvents = 100

// asyncQueue is the hand-off buffer between asynchronous producers and the
// frame-advance goroutine. The mutex is held only for the push or for the
// swap in drain(), never while events are being interpreted.
type asyncQueue struct {
	crit   sync.Mutex
	events []AsyncEvent
}

// push appends an event to the queue. Returns false if the queue is full
// and the event has been dropped. Callable from any goroutine and never
// blocks.
func (q *asyncQueue) push(ev AsyncEvent) bool {
	q.crit.Lock()
	defer q.crit.Unlock()

	if len(q.events) >= maxAsyncEvents {
		return false
	}
	q.events = append(q.events, ev)
	return true
}

// drain swaps the queue contents for an empty backlog and returns the
// events in arrival order. The caller processes the returned slice outside
// of the critical section, so producers are never blocked on event
// processing time.
func (q *asyncQueue) drain() []AsyncEvent {
	q.crit.Lock()
	defer q.crit.Unlock()

	events := q.events
	q.events = nil
	return events
}
