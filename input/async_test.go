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
	"testing"

	"github.com/frameinput/frameinput/test"
)

func TestAsyncQueueCapacity(t *testing.T) {
	var q asyncQueue

	// push well past capacity. the first maxAsyncEvents events survive
	// in push order, the rest are dropped
	for i := 0; i < 150; i++ {
		q.push(AsyncEvent{Kind: AsyncKeyDown, Code: PadKey(i)})
	}

	events := q.drain()
	test.DemandEquality(t, len(events), maxAsyncEvents)
	for i, ev := range events {
		test.ExpectEquality(t, ev.Code, PadKey(i), i)
	}

	// the queue is empty after a drain
	test.ExpectEquality(t, len(q.drain()), 0)

	// and accepts new events again
	test.ExpectSuccess(t, q.push(AsyncEvent{Kind: AsyncKeyDown}))
	test.ExpectEquality(t, len(q.drain()), 1)
}

func TestAsyncQueueRefusal(t *testing.T) {
	var q asyncQueue

	for i := 0; i < maxAsyncEvents; i++ {
		test.ExpectSuccess(t, q.push(AsyncEvent{}), i)
	}
	test.ExpectFailure(t, q.push(AsyncEvent{}))
}
