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

package evdev

import (
	"context"
	"encoding/binary"
	"os"

	"github.com/frameinput/frameinput/input"
)

// event record layout of the Linux joystick interface.
type jsEvent struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// jsEvent type bits.
const (
	jsEventButton = 0x01
	jsEventAxis   = 0x02
	jsEventInit   = 0x80
)

// maximum range (+/-) of a raw axis value.
const axisRange = 32767.0

// device reads joystick records from one open device file and posts them
// as asynchronous gamepad events.
type device struct {
	ctx        context.Context
	cancelFunc context.CancelFunc

	file   *os.File
	id     input.DeviceID
	poster Poster

	// most recent axis values, reposted together on every motion event
	x float32
	y float32
}

func newDevice(ctx context.Context, path string, id input.DeviceID, poster Poster) (*device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	dev := &device{
		file:   f,
		id:     id,
		poster: poster,
	}
	dev.ctx, dev.cancelFunc = context.WithCancel(ctx)

	go dev.read()

	return dev, nil
}

// stop the reader goroutine. the blocking read ends when the file is
// closed.
func (dev *device) stop() {
	dev.cancelFunc()
	dev.file.Close()
}

func (dev *device) read() {
	for {
		var e jsEvent
		if binary.Read(dev.file, binary.LittleEndian, &e) != nil {
			dev.file.Close()
			return
		}

		select {
		case <-dev.ctx.Done():
			dev.file.Close()
			return
		default:
		}

		// synthetic events describing the initial device state are not
		// user input
		if e.Type&jsEventInit != 0 {
			continue
		}

		switch e.Type {
		case jsEventButton:
			kind := input.AsyncKeyUp
			if e.Value != 0 {
				kind = input.AsyncKeyDown
			}
			dev.poster.PostAsyncEvent(dev.id, kind, padKeyForButton(e.Number), 0, 0)

		case jsEventAxis:
			switch e.Number {
			case 0:
				dev.x = float32(e.Value) / axisRange
			case 1:
				dev.y = float32(e.Value) / axisRange
			default:
				continue
			}
			dev.poster.PostAsyncEvent(dev.id, input.AsyncMotion, 0, dev.x, dev.y)
		}
	}
}

// padKeyForButton translates a raw joystick button number into the
// platform-neutral pad key space. Numbers beyond the mapped range resolve
// to an unmapped key, which the input system ignores.
func padKeyForButton(number uint8) input.PadKey {
	return input.PadKeyButtonA + input.PadKey(number)
}
