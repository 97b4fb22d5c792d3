// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype implements font faces for OpenType files.
package opentype

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a loaded OpenType font. For efficiency, applications should
// construct a Face for any given font file once, reusing it across
// text measurements.
type Face struct {
	font    *sfnt.Font
	hinting font.Hinting

	// sfnt buffers are not safe for concurrent use.
	mu  sync.Mutex
	buf sfnt.Buffer
}

// Parse constructs a Face from source bytes. TTF, OTF and WOFF sources
// supported by sfnt are accepted.
func Parse(src []byte) (*Face, error) {
	fnt, err := sfnt.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("opentype: failed to parse font: %w", err)
	}
	return &Face{
		font:    fnt,
		hinting: font.HintingFull,
	}, nil
}

// GlyphAdvance implements font.Face.
func (f *Face) GlyphAdvance(ppem fixed.Int26_6, r rune) (fixed.Int26_6, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || g == 0 {
		return 0, false
	}
	adv, err := f.font.GlyphAdvance(&f.buf, g, ppem, f.hinting)
	return adv, err == nil
}

// Kern implements font.Face.
func (f *Face) Kern(ppem fixed.Int26_6, r0, r1 rune) fixed.Int26_6 {
	f.mu.Lock()
	defer f.mu.Unlock()
	g0, err := f.font.GlyphIndex(&f.buf, r0)
	if err != nil {
		return 0
	}
	g1, err := f.font.GlyphIndex(&f.buf, r1)
	if err != nil {
		return 0
	}
	adv, err := f.font.Kern(&f.buf, g0, g1, ppem, f.hinting)
	if err != nil {
		return 0
	}
	return adv
}

// Metrics implements font.Face.
func (f *Face) Metrics(ppem fixed.Int26_6) font.Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, _ := f.font.Metrics(&f.buf, ppem, f.hinting)
	return m
}
