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

// MaxPointers is the number of simultaneous pointer contacts the System
// tracks. Comfortably more than the number of fingers any supported
// hardware can report.
const MaxPointers = 10

// Pointer is one slot in the pointer table: either the mouse (always slot
// 0) or one touch contact. Unifying the two means consuming code does not
// need to care about input modality.
//
// Position and Delta are only meaningful while InUse is true. Releasing a
// slot does not zero them.
type Pointer struct {
	// ID is the externally-assigned touch identifier. Unused for the
	// mouse slot.
	ID int64

	// Position of the contact in window pixels.
	Position Vec2i

	// Delta is the movement accumulated since the last frame boundary.
	Delta Vec2i

	// InUse is true while a contact is held down. The mouse slot is
	// marked in-use by the first mouse button event and stays that way.
	InUse bool
}

// findPointer resolves an external touch id to a slot in the pointer
// table. An in-use slot with a matching id always wins, keeping identity
// stable for the life of a contact. Otherwise the first free slot is
// bound to the id.
//
// The table is fixed-size. Exhaustion means the caller has more
// simultaneous contacts than MaxPointers, which is a breach of the design
// contract, and the function panics.
func (s *System) findPointer(id int64) int {
	for i := range s.pointers {
		if s.pointers[i].InUse && s.pointers[i].ID == id {
			return i
		}
	}
	for i := range s.pointers {
		if !s.pointers[i].InUse {
			s.pointers[i].ID = id
			s.pointers[i].InUse = true
			return i
		}
	}
	panic(fmt.Sprintf("pointer table exhausted (%d contacts)", MaxPointers))
}

// releasePointer marks a slot as free for reuse by a future contact.
func (s *System) releasePointer(i int) {
	s.pointers[i].InUse = false
}

// updateDragPosition converts a normalised finger position into window
// pixels, storing the position and accumulating the delta for the slot.
func (s *System) updateDragPosition(i int, x, y, dx, dy float32, windowSize Vec2i) {
	p := &s.pointers[i]
	p.Position = Vec2i{
		X: int(x * float32(windowSize.X)),
		Y: int(y * float32(windowSize.Y)),
	}
	p.Delta = p.Delta.Add(Vec2i{
		X: int(dx * float32(windowSize.X)),
		Y: int(dy * float32(windowSize.Y)),
	})
}

// GetPointer returns the pointer in the specified slot. Slot 0 is the
// mouse. A slot outside the table is a programming error and the function
// panics.
func (s *System) GetPointer(slot int) *Pointer {
	if slot < 0 || slot >= MaxPointers {
		panic(fmt.Sprintf("pointer slot out of range (%d)", slot))
	}
	return &s.pointers[slot]
}

// GetPointerButton returns the companion button for a pointer slot. The
// button reports the down/up edges of the contact in the slot, including
// the up transition in the frame the contact ended.
func (s *System) GetPointerButton(slot int) *Button {
	if slot < 0 || slot >= MaxPointers {
		panic(fmt.Sprintf("pointer slot out of range (%d)", slot))
	}
	return s.GetButton(pointerKey(slot))
}

// pointer companion buttons live in the sparse button table under reserved
// negative key codes. platform key codes are always positive
const keyPointerBase KeyCode = -1

func pointerKey(slot int) KeyCode {
	return keyPointerBase - KeyCode(slot)
}
