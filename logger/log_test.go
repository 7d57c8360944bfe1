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

package logger_test

import (
	"strings"
	"testing"

	"github.com/frameinput/frameinput/logger"
	"github.com/frameinput/frameinput/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log("test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log("test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatFolding(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log("test", "same detail")
	log.Log("test", "same detail")
	log.Log("test", "same detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: same detail (repeat x3)\n")

	// a different entry breaks the fold
	w.Reset()
	log.Log("test", "different detail")
	log.Log("test", "same detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(),
		"test: same detail (repeat x3)\ntest: different detail\ntest: same detail\n")
}

func TestCap(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log("tag", "one")
	log.Log("tag", "two")
	log.Log("tag", "three")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: two\ntag: three\n")
}
