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

// Package test contains helper functions to remove common boilerplate to
// make testing easier.
//
// The Expect functions mark the test as failed but allow it to continue.
// The Demand functions stop the test immediately on failure. The Demand
// variants are useful when subsequent test steps would be meaningless, or
// would panic, if the condition does not hold.
//
// ExpectSuccess and ExpectFailure interpret their argument according to
// type: a bool is a success if true; an error is a success if nil. The nil
// type is considered a success, which follows from how errors work in Go
// (nil meaning no error).
//
// All functions accept optional trailing tag values. Tags are printed with
// any failure message and are useful for identifying the failed iteration
// of a table driven test.
package test
