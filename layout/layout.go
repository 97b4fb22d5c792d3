// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout provides the geometry vocabulary shared by the dialog
solver: constraints and insets. It contains no widget tree; all types
are plain values.
*/
package layout

import (
	"image"

	"github.com/pringle92/flexdialog/unit"
)

// Constraints represent the minimum and maximum size of a layout
// element.
//
// A layout operation is expected to produce a size within Min and Max,
// both inclusive.
type Constraints struct {
	Min, Max image.Point
}

// Exact returns the Constraints with the minimum and maximum size
// set to size.
func Exact(size image.Point) Constraints {
	return Constraints{
		Min: size, Max: size,
	}
}

// Constrain a size so each dimension is in the range [Min;Max].
func (c Constraints) Constrain(size image.Point) image.Point {
	if min := c.Min.X; size.X < min {
		size.X = min
	}
	if min := c.Min.Y; size.Y < min {
		size.Y = min
	}
	if max := c.Max.X; size.X > max {
		size.X = max
	}
	if max := c.Max.Y; size.Y > max {
		size.Y = max
	}
	return size
}

// Inset adds space around an element, expressed in device independent
// pixels.
type Inset struct {
	Top, Bottom, Left, Right unit.Dp
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v unit.Dp) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// Px resolves the inset to integer pixels using metric.
func (in Inset) Px(metric unit.Metric) (top, bottom, left, right int) {
	return metric.Dp(in.Top), metric.Dp(in.Bottom), metric.Dp(in.Left), metric.Dp(in.Right)
}

// Horizontal returns the sum of the left and right insets in pixels.
func (in Inset) Horizontal(metric unit.Metric) int {
	return metric.Dp(in.Left) + metric.Dp(in.Right)
}

// Vertical returns the sum of the top and bottom insets in pixels.
func (in Inset) Vertical(metric unit.Metric) int {
	return metric.Dp(in.Top) + metric.Dp(in.Bottom)
}
