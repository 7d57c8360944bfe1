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

// Package evdev reads gamepad events directly from the Linux joystick
// interface and posts them to the input system from its own goroutines.
//
// It exists for hosts that run without SDL and as the project's canonical
// out-of-band producer: every event it delivers crosses a goroutine
// boundary and arrives through System.PostAsyncEvent(), exercising the
// same path a mobile platform callback would.
//
// Devices under /dev/input matching js* are opened on startup. Hot-plug
// is handled with an inotify watch on the directory.
package evdev

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"unsafe"

	"github.com/frameinput/frameinput/curated"
	"github.com/frameinput/frameinput/input"
	"github.com/frameinput/frameinput/logger"

	"golang.org/x/sys/unix"
)

const inputPath = "/dev/input"

// sentinel error returned when the watcher cannot be started.
const FailedToStartWatcher = "evdev: %v"

// Poster is the destination for events read from the joystick devices.
// Implemented by input.System.
type Poster interface {
	PostAsyncEvent(device input.DeviceID, kind input.AsyncEventKind, code input.PadKey, x, y float32)
}

// Watcher owns the device reader goroutines and the inotify hot-plug
// watch.
type Watcher struct {
	poster Poster

	ctx        context.Context
	cancelFunc context.CancelFunc

	crit    sync.Mutex
	devices map[string]*device
}

// NewWatcher opens every joystick device currently present and begins
// watching for hot-plug events. The returned Watcher must be closed when
// no longer required.
func NewWatcher(poster Poster) (*Watcher, error) {
	w := &Watcher{
		poster:  poster,
		devices: make(map[string]*device),
	}
	w.ctx, w.cancelFunc = context.WithCancel(context.Background())

	entries, err := os.ReadDir(inputPath)
	if err != nil {
		return nil, curated.Errorf(FailedToStartWatcher, err)
	}
	for _, entry := range entries {
		w.addDevice(entry.Name())
	}

	fd, err := unix.InotifyInit()
	if err != nil {
		w.Close()
		return nil, curated.Errorf(FailedToStartWatcher, err)
	}

	if _, err := unix.InotifyAddWatch(fd, inputPath, unix.IN_CREATE|unix.IN_DELETE); err != nil {
		unix.Close(fd)
		w.Close()
		return nil, curated.Errorf(FailedToStartWatcher, err)
	}

	go w.watch(fd)

	return w, nil
}

// Close stops every device reader and the hot-plug watch.
func (w *Watcher) Close() {
	w.cancelFunc()

	w.crit.Lock()
	defer w.crit.Unlock()
	for name, dev := range w.devices {
		dev.stop()
		delete(w.devices, name)
	}
}

// addDevice starts a reader for the named entry in /dev/input if it is a
// joystick device not already being read.
func (w *Watcher) addDevice(name string) {
	if !strings.HasPrefix(name, "js") {
		return
	}

	id, err := strconv.Atoi(strings.TrimPrefix(name, "js"))
	if err != nil {
		return
	}

	w.crit.Lock()
	defer w.crit.Unlock()

	if _, ok := w.devices[name]; ok {
		return
	}

	dev, err := newDevice(w.ctx, filepath.Join(inputPath, name), input.DeviceID(id), w.poster)
	if err != nil {
		logger.Logf("evdev", "%s: %v", name, err)
		return
	}

	logger.Logf("evdev", "reading gamepad events from %s", name)
	w.devices[name] = dev
}

// removeDevice stops the reader for the named entry, if there is one.
func (w *Watcher) removeDevice(name string) {
	w.crit.Lock()
	defer w.crit.Unlock()

	if dev, ok := w.devices[name]; ok {
		logger.Logf("evdev", "%s removed", name)
		dev.stop()
		delete(w.devices, name)
	}
}

// watch blocks on the inotify descriptor, reconciling the device table as
// entries appear and disappear under /dev/input.
func (w *Watcher) watch(fd int) {
	defer unix.Close(fd)

	buf := make([]byte, 4096)
	for {
		n, err := unix.Read(fd, buf)
		if err != nil {
			if w.ctx.Err() == nil {
				logger.Logf("evdev", "inotify: %v", err)
			}
			return
		}

		offset := 0
		for offset+unix.SizeofInotifyEvent <= n {
			raw := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))

			nameLen := int(raw.Len)
			name := strings.TrimRight(
				string(buf[offset+unix.SizeofInotifyEvent:offset+unix.SizeofInotifyEvent+nameLen]),
				"\x00")

			switch {
			case raw.Mask&unix.IN_CREATE != 0:
				w.addDevice(name)
			case raw.Mask&unix.IN_DELETE != 0:
				w.removeDevice(name)
			}

			offset += unix.SizeofInotifyEvent + nameLen
		}

		select {
		case <-w.ctx.Done():
			return
		default:
		}
	}
}
