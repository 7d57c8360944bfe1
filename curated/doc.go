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

// Package curated is the error mechanism used throughout the project. A
// curated error keeps hold of the pattern string it was created with,
// meaning that callers can test for a category of error without resorting
// to string comparison of the formatted message.
//
// Creation is through Errorf(), which looks like fmt.Errorf() but stores
// the pattern and arguments rather than formatting immediately:
//
//	return curated.Errorf("sdlinput: %v", err)
//
// The Is() function tests whether an error was created with a specific
// pattern. Has() does the same but walks wrapped curated errors looking
// for the pattern anywhere in the chain.
package curated
