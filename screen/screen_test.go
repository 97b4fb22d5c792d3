// SPDX-License-Identifier: Unlicense OR MIT

package screen

import (
	"errors"
	"image"
	"testing"
)

func TestStatic(t *testing.T) {
	src := Static{
		Area:   image.Rect(0, 0, 1920, 1040),
		Cursor: image.Pt(500, 500),
		Windows: map[uintptr]image.Rectangle{
			1: image.Rect(100, 100, 700, 500),
		},
	}
	if area, err := src.WorkingAreaAtCursor(); err != nil || area != src.Area {
		t.Errorf("WorkingAreaAtCursor = %v, %v", area, err)
	}
	if area, err := src.WorkingAreaForWindow(1); err != nil || area != src.Area {
		t.Errorf("WorkingAreaForWindow(1) = %v, %v", area, err)
	}
	if r, err := src.WindowRect(1); err != nil || r != image.Rect(100, 100, 700, 500) {
		t.Errorf("WindowRect(1) = %v, %v", r, err)
	}
	if _, err := src.WindowRect(2); !errors.Is(err, ErrNoWindow) {
		t.Errorf("WindowRect(2) err = %v, want ErrNoWindow", err)
	}
	if _, err := src.WorkingAreaForWindow(2); !errors.Is(err, ErrNoWindow) {
		t.Errorf("WorkingAreaForWindow(2) err = %v, want ErrNoWindow", err)
	}
}
