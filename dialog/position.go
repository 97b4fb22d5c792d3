// SPDX-License-Identifier: Unlicense OR MIT

package dialog

import (
	"image"

	"github.com/pringle92/flexdialog/screen"
)

// Place decides where a window of the given size appears on screen.
//
// With a resolvable owner the window is centered over the owner's
// bounds; otherwise it is centered over the screen containing the
// pointer. In both cases the window is moved, edge by edge, to lie
// entirely inside the chosen screen's working area. An absent or
// unresolvable owner is not an error.
func Place(size image.Point, owner uintptr, src screen.Source) image.Point {
	if owner != 0 {
		if or, err := src.WindowRect(owner); err == nil {
			if area, err := src.WorkingAreaForWindow(owner); err == nil {
				return clampToArea(centerOver(size, or), size, area)
			}
		}
	}
	area, err := src.WorkingAreaAtCursor()
	if err != nil {
		// No screen information at all; leave the window at the
		// origin.
		return image.Point{}
	}
	return clampToArea(centerOver(size, area), size, area)
}

func centerOver(size image.Point, r image.Rectangle) image.Point {
	return image.Pt(
		r.Min.X+(r.Dx()-size.X)/2,
		r.Min.Y+(r.Dy()-size.Y)/2,
	)
}

// clampToArea moves pos so the window lies inside area. Each edge is
// clamped independently; the left and top edges win when the window is
// larger than the area.
func clampToArea(pos, size image.Point, area image.Rectangle) image.Point {
	if pos.X+size.X > area.Max.X {
		pos.X = area.Max.X - size.X
	}
	if pos.Y+size.Y > area.Max.Y {
		pos.Y = area.Max.Y - size.Y
	}
	if pos.X < area.Min.X {
		pos.X = area.Min.X
	}
	if pos.Y < area.Min.Y {
		pos.Y = area.Min.Y
	}
	return pos
}
