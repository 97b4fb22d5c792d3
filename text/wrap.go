// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/image/math/fixed"

	"github.com/pringle92/flexdialog/font"
)

// layoutText wraps str into lines no wider than opts.MaxWidth using
// face metrics at the given size. Lines break at UAX#14 opportunities;
// a chunk wider than the whole line is broken at the last rune that
// fits, keeping at least one rune per line.
func layoutText(face font.Face, ppem fixed.Int26_6, str string, opts Options) Layout {
	m := face.Metrics(ppem)
	ascent := m.Ascent
	// m.Height is equal to m.Ascent + m.Descent + linegap.
	// Compute the descent including the linegap.
	descent := m.Height - m.Ascent

	maxWidth := fixed.Int26_6(math.MaxInt32)
	if opts.MaxWidth > 0 && !opts.SingleLine {
		maxWidth = fixed.I(opts.MaxWidth)
	}
	if opts.SingleLine {
		str = strings.Map(func(r rune) rune {
			if r == '\n' {
				return ' '
			}
			return r
		}, str)
	}

	var lines []Line
	for _, para := range strings.Split(str, "\n") {
		runes := []rune(para)
		lines = append(lines, wrapParagraph(face, ppem, runes, breakAfter(para, runes), maxWidth, ascent, descent)...)
	}
	return Layout{Lines: lines}
}

func wrapParagraph(face font.Face, ppem fixed.Int26_6, runes []rune, breakAfter []bool, maxWidth, ascent, descent fixed.Int26_6) []Line {
	if len(runes) == 0 {
		return []Line{{Ascent: ascent, Descent: descent}}
	}
	var lines []Line
	start := 0
	for start < len(runes) {
		var lineWidth fixed.Int26_6
		// Last rune index after which the line may break, and the
		// line width up to it.
		lastBreak := -1
		var lastBreakWidth fixed.Int26_6
		var prev rune
		end := len(runes)
		endWidth := fixed.Int26_6(0)
		i := start
		for ; i < len(runes); i++ {
			r := runes[i]
			adv, ok := face.GlyphAdvance(ppem, r)
			if !ok {
				adv = 0
			}
			if i > start {
				adv += face.Kern(ppem, prev, r)
			}
			if i > start && lineWidth+adv > maxWidth {
				if lastBreak >= start {
					end = lastBreak + 1
					endWidth = lastBreakWidth
				} else {
					// No break opportunity on the line; break off
					// the overflowing rune.
					end = i
					endWidth = lineWidth
				}
				break
			}
			lineWidth += adv
			if breakAfter[i] {
				lastBreak = i
				lastBreakWidth = lineWidth
			}
			prev = r
		}
		if i == len(runes) {
			endWidth = lineWidth
		}
		lines = append(lines, Line{Width: endWidth, Ascent: ascent, Descent: descent})
		start = end
	}
	return lines
}

// breakAfter reports, for every rune of para, whether a line may break
// after it. Opportunities come from UAX#14 line-break segmentation;
// if segmentation fails to cover the text, breaking after white space
// is used instead.
func breakAfter(para string, runes []rune) []bool {
	after := make([]bool, len(runes))
	if len(runes) == 0 {
		return after
	}
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	seg.Init(strings.NewReader(para))
	pos := 0
	for seg.Next() {
		pos += utf8.RuneCount(seg.Bytes())
		if pos > 0 && pos <= len(after) {
			after[pos-1] = true
		}
	}
	if pos != len(runes) {
		for i, r := range runes {
			after[i] = unicode.IsSpace(r)
		}
	}
	return after
}
