// SPDX-License-Identifier: Unlicense OR MIT

package dialog

import (
	"image"

	"github.com/pringle92/flexdialog/layout"
	"github.com/pringle92/flexdialog/unit"
)

// Constraints bound the dialog size and fix its spacing rules. The
// zero value uses the defaults below; zero fields of a partially
// filled Constraints are replaced by their defaults as well.
//
// The width and height factors are fractions of the working area and
// are clamped into [0.2, 1.0] when written, never when read.
type Constraints struct {
	maxWidthFactor  float32
	maxHeightFactor float32

	// MinSize is the hard lower bound of the window size.
	MinSize image.Point
	// MarginX and MarginY surround the content blocks.
	MarginX unit.Dp
	MarginY unit.Dp
	// Spacing separates stacked content blocks.
	Spacing unit.Dp
	// IconSpacing separates the icon from the blocks beside it.
	IconSpacing unit.Dp
	// ScrollbarWidth is the allowance reserved for a vertical scroll
	// affordance on the message block.
	ScrollbarWidth unit.Dp
	// ChromeHeight is the title bar and border height.
	ChromeHeight unit.Dp
	// CaptionExtra is the window chrome allowance added to the
	// measured caption width.
	CaptionExtra unit.Dp
	// ButtonMargin separates adjacent buttons.
	ButtonMargin unit.Dp
	// PanelPadding surrounds the button row.
	PanelPadding unit.Dp
	// MinTextWidth is the floor of the wrapping width, guarding
	// against degenerate narrow layouts.
	MinTextWidth unit.Dp
	// MinMessageHeight is the floor of the clamped message height.
	MinMessageHeight unit.Dp
}

// Default constraint values, in device independent pixels except the
// dimensionless factors.
const (
	DefaultMaxWidthFactor  = 0.7
	DefaultMaxHeightFactor = 0.9

	defaultMarginX          unit.Dp = 10
	defaultMarginY          unit.Dp = 10
	defaultSpacing          unit.Dp = 6
	defaultIconSpacing      unit.Dp = 8
	defaultScrollbarWidth   unit.Dp = 17
	defaultChromeHeight     unit.Dp = 38
	defaultCaptionExtra     unit.Dp = 80
	defaultButtonMargin     unit.Dp = 6
	defaultPanelPadding     unit.Dp = 10
	defaultMinTextWidth     unit.Dp = 50
	defaultMinMessageHeight unit.Dp = 20
)

// defaultMinSize is the hard lower bound of the window size in dp.
var defaultMinSize = image.Pt(180, 100)

// SetMaxWidthFactor sets the width factor, clamped into [0.2, 1.0].
func (c *Constraints) SetMaxWidthFactor(f float32) {
	c.maxWidthFactor = clampFactor(f)
}

// SetMaxHeightFactor sets the height factor, clamped into [0.2, 1.0].
func (c *Constraints) SetMaxHeightFactor(f float32) {
	c.maxHeightFactor = clampFactor(f)
}

// MaxWidthFactor returns the width factor, or the default if unset.
func (c Constraints) MaxWidthFactor() float32 {
	if c.maxWidthFactor == 0 {
		return DefaultMaxWidthFactor
	}
	return c.maxWidthFactor
}

// MaxHeightFactor returns the height factor, or the default if unset.
func (c Constraints) MaxHeightFactor() float32 {
	if c.maxHeightFactor == 0 {
		return DefaultMaxHeightFactor
	}
	return c.maxHeightFactor
}

func clampFactor(f float32) float32 {
	if f < 0.2 {
		return 0.2
	}
	if f > 1 {
		return 1
	}
	return f
}

func (c Constraints) withDefaults() Constraints {
	if c.MinSize == (image.Point{}) {
		c.MinSize = defaultMinSize
	}
	if c.MarginX == 0 {
		c.MarginX = defaultMarginX
	}
	if c.MarginY == 0 {
		c.MarginY = defaultMarginY
	}
	if c.Spacing == 0 {
		c.Spacing = defaultSpacing
	}
	if c.IconSpacing == 0 {
		c.IconSpacing = defaultIconSpacing
	}
	if c.ScrollbarWidth == 0 {
		c.ScrollbarWidth = defaultScrollbarWidth
	}
	if c.ChromeHeight == 0 {
		c.ChromeHeight = defaultChromeHeight
	}
	if c.CaptionExtra == 0 {
		c.CaptionExtra = defaultCaptionExtra
	}
	if c.ButtonMargin == 0 {
		c.ButtonMargin = defaultButtonMargin
	}
	if c.PanelPadding == 0 {
		c.PanelPadding = defaultPanelPadding
	}
	if c.MinTextWidth == 0 {
		c.MinTextWidth = defaultMinTextWidth
	}
	if c.MinMessageHeight == 0 {
		c.MinMessageHeight = defaultMinMessageHeight
	}
	return c
}

// resolve derives the pixel envelope from the factors and the working
// area. The maximum bounds are floored; the minimum is applied during
// the final clamp, where it wins over a smaller maximum.
func (c Constraints) resolve(metric unit.Metric, workArea image.Rectangle) layout.Constraints {
	return layout.Constraints{
		Min: image.Pt(metric.Dp(unit.Dp(c.MinSize.X)), metric.Dp(unit.Dp(c.MinSize.Y))),
		Max: image.Pt(
			int(float32(workArea.Dx())*c.MaxWidthFactor()),
			int(float32(workArea.Dy())*c.MaxHeightFactor()),
		),
	}
}

// clamp constrains v into [lo, hi] with lo winning a conflict.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
