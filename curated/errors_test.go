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

package curated_test

import (
	"errors"
	"testing"

	"github.com/frameinput/frameinput/curated"
	"github.com/frameinput/frameinput/test"
)

const testError = "test error: %v"
const otherError = "other error: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "detail")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, otherError))

	// plain errors are not curated errors
	p := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Is(p, testError))

	// nor is the nil error
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testError))
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testError, "detail")
	outer := curated.Errorf(otherError, inner)

	test.ExpectSuccess(t, curated.Has(outer, otherError))
	test.ExpectSuccess(t, curated.Has(outer, testError))
	test.ExpectFailure(t, curated.Has(inner, otherError))
}

func TestMessageDeduplication(t *testing.T) {
	inner := curated.Errorf("sdlinput: %v", errors.New("no such device"))
	outer := curated.Errorf("sdlinput: %v", inner)

	// the duplicated message part appears only once
	test.ExpectEquality(t, outer.Error(), "sdlinput: no such device")
}
