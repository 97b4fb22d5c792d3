// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font provides types describing font faces and their attributes.
*/
package font

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// A FontFace is a Font and a matching Face.
type FontFace struct {
	Font Font
	Face Face
}

// Font specifies a particular typeface variant and style.
type Font struct {
	Typeface Typeface
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
}

// Face is a loaded font. Implementations must be safe for concurrent
// use and deterministic: equal inputs produce equal results.
type Face interface {
	// GlyphAdvance returns the advance of r at the given size, or
	// false if the face has no glyph for r.
	GlyphAdvance(ppem fixed.Int26_6, r rune) (fixed.Int26_6, bool)
	// Kern returns the kerning adjustment between r0 and r1.
	Kern(ppem fixed.Int26_6, r0, r1 rune) fixed.Int26_6
	// Metrics returns the global font metrics at the given size.
	Metrics(ppem fixed.Int26_6) font.Metrics
}

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

// Style is the font style.
type Style int

const (
	Regular Style = iota
	Italic
)

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case ExtraLight:
		return "ExtraLight"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	case Black:
		return "Black"
	default:
		panic("invalid Weight")
	}
}
