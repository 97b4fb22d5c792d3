// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"image"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/pringle92/flexdialog/font"
	"github.com/pringle92/flexdialog/unit"
)

// Shaper measures text from a set of registered fonts.
//
// If a font matches no registered face, Shaper falls back to the
// closest style and weight of the first registered typeface.
//
// Layout results are cached and re-used if possible. A Shaper is safe
// for concurrent use.
type Shaper struct {
	mu    sync.Mutex
	def   font.Typeface
	faces map[font.Font]font.Face
	cache layoutCache
}

// NewShaper creates a Shaper with the given font collection
// registered, in order.
func NewShaper(collection []font.FontFace) *Shaper {
	s := new(Shaper)
	for _, ff := range collection {
		s.Register(ff.Font, ff.Face)
	}
	return s
}

// Register adds a face for fnt. The first registered face is the
// fallback for unknown typefaces.
func (s *Shaper) Register(fnt font.Font, face font.Face) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.faces == nil {
		s.def = fnt.Typeface
		s.faces = make(map[font.Font]font.Face)
	}
	if fnt.Weight == 0 {
		fnt.Weight = font.Normal
	}
	s.faces[fnt] = face
}

// LayoutString lays out str at the given size, wrapping at
// opts.MaxWidth.
func (s *Shaper) LayoutString(fnt font.Font, ppem fixed.Int26_6, str string, opts Options) Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	face := s.faceForFont(fnt)
	if face == nil {
		return Layout{}
	}
	k := layoutKey{
		ppem:       ppem,
		maxWidth:   opts.MaxWidth,
		singleLine: opts.SingleLine,
		str:        str,
		font:       fnt,
	}
	if l, ok := s.cache.Get(k); ok {
		return l
	}
	l := layoutText(face, ppem, str, opts)
	s.cache.Put(k, l)
	return l
}

// Measure returns the minimal box containing str wrapped within
// maxWidth, in pixels. A maxWidth of zero or less leaves the width
// unlimited.
func (s *Shaper) Measure(metric unit.Metric, fnt font.Font, size unit.Sp, str string, maxWidth int) image.Point {
	ppem := fixed.I(metric.Sp(size))
	return s.LayoutString(fnt, ppem, str, Options{MaxWidth: maxWidth}).Dimensions()
}

// MeasureLine is like Measure for a single unwrapped line.
func (s *Shaper) MeasureLine(metric unit.Metric, fnt font.Font, size unit.Sp, str string) image.Point {
	ppem := fixed.I(metric.Sp(size))
	return s.LayoutString(fnt, ppem, str, Options{SingleLine: true}).Dimensions()
}

// Metrics returns the font metrics for fnt.
func (s *Shaper) Metrics(metric unit.Metric, fnt font.Font, size unit.Sp) xfont.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	face := s.faceForFont(fnt)
	if face == nil {
		return xfont.Metrics{}
	}
	return face.Metrics(fixed.I(metric.Sp(size)))
}

func (s *Shaper) faceForStyle(fnt font.Font) font.Face {
	if face, ok := s.faces[fnt]; ok {
		return face
	}
	{
		fnt := fnt
		fnt.Weight = font.Normal
		if face, ok := s.faces[fnt]; ok {
			return face
		}
	}
	{
		fnt := fnt
		fnt.Style = font.Regular
		if face, ok := s.faces[fnt]; ok {
			return face
		}
	}
	{
		fnt := fnt
		fnt.Style = font.Regular
		fnt.Weight = font.Normal
		if face, ok := s.faces[fnt]; ok {
			return face
		}
	}
	return nil
}

func (s *Shaper) faceForFont(fnt font.Font) font.Face {
	if fnt.Weight == 0 {
		fnt.Weight = font.Normal
	}
	face := s.faceForStyle(fnt)
	if face == nil {
		fnt.Typeface = s.def
		face = s.faceForStyle(fnt)
	}
	return face
}
