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

//go:build linux

package main

import (
	"github.com/frameinput/frameinput/input"
	"github.com/frameinput/frameinput/logger"
	"github.com/frameinput/frameinput/platform/evdev"
)

// startProducers starts the evdev gamepad reader. The reader is optional,
// the demo still works with SDL input alone.
func startProducers(sys *input.System) func() {
	w, err := evdev.NewWatcher(sys)
	if err != nil {
		logger.Logf("frameinput", "evdev producer not started: %v", err)
		return func() {}
	}
	return w.Close
}
