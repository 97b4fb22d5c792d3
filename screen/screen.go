// SPDX-License-Identifier: Unlicense OR MIT

/*
Package screen provides the display geometry needed to place a dialog:
the working area of a screen (its bounds minus system-reserved regions
such as taskbars) and the bounds of an owner window.
*/
package screen

import (
	"errors"
	"image"
)

// Source answers geometry queries for the displays of a system.
// Implementations must be safe for concurrent use.
type Source interface {
	// WorkingAreaForWindow returns the working area of the display
	// containing the given window.
	WorkingAreaForWindow(handle uintptr) (image.Rectangle, error)
	// WorkingAreaAtCursor returns the working area of the display
	// containing the pointer.
	WorkingAreaAtCursor() (image.Rectangle, error)
	// WindowRect returns the outer bounds of the given window.
	WindowRect(handle uintptr) (image.Rectangle, error)
}

// ErrNoWindow is reported when a window handle cannot be resolved.
var ErrNoWindow = errors.New("screen: no such window")

// Static is a Source with fixed answers, for tests and headless use.
type Static struct {
	// Area is the working area reported for every query.
	Area image.Rectangle
	// Cursor is the pointer position.
	Cursor image.Point
	// Windows maps window handles to their bounds. Queries for
	// unknown handles fail with ErrNoWindow.
	Windows map[uintptr]image.Rectangle
}

func (s Static) WorkingAreaForWindow(handle uintptr) (image.Rectangle, error) {
	if _, ok := s.Windows[handle]; !ok {
		return image.Rectangle{}, ErrNoWindow
	}
	return s.Area, nil
}

func (s Static) WorkingAreaAtCursor() (image.Rectangle, error) {
	return s.Area, nil
}

func (s Static) WindowRect(handle uintptr) (image.Rectangle, error) {
	r, ok := s.Windows[handle]
	if !ok {
		return image.Rectangle{}, ErrNoWindow
	}
	return r, nil
}
