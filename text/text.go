// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text implements text measurement with word wrapping.

The package answers a single question: given a string, a font and an
available width, what is the minimal box containing the wrapped text?
Measurement is deterministic; equal inputs always produce equal
results.
*/
package text

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Options specify the constraints of a text layout.
type Options struct {
	// MaxWidth is the maximum width in pixels of the laid out text.
	// If zero or negative the width is unlimited.
	MaxWidth int
	// SingleLine specifies that line breaks are ignored; newlines are
	// treated as spaces.
	SingleLine bool
}

// A Line contains the measurements of a line of text.
type Line struct {
	// Width is the advance of the line.
	Width fixed.Int26_6
	// Ascent is the height above the baseline.
	Ascent fixed.Int26_6
	// Descent is the height below the baseline, including
	// the line gap.
	Descent fixed.Int26_6
}

// A Layout contains the measurements of a body of text as
// a list of Lines.
type Layout struct {
	Lines []Line
}

// Dimensions returns the size of the minimal box containing the laid
// out text.
func (l Layout) Dimensions() image.Point {
	var width fixed.Int26_6
	var h int
	if len(l.Lines) > 0 {
		var prevDesc fixed.Int26_6
		for _, ln := range l.Lines {
			h += (prevDesc + ln.Ascent).Ceil()
			prevDesc = ln.Descent
			if ln.Width > width {
				width = ln.Width
			}
		}
		h += l.Lines[len(l.Lines)-1].Descent.Ceil()
	}
	return image.Point{X: width.Ceil(), Y: h}
}
