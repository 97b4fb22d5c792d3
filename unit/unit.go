// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

To maintain a constant visual size across displays, always use dps or
sps to define user interfaces. Only use pixels for derived values.
*/
package unit

import "math"

// Dp represents device independent pixels. 1 dp has the same apparent
// size across platforms and display resolutions.
type Dp float32

// Sp is like Dp but for font sizes.
type Sp float32

// Metric converts device independent units to pixels.
type Metric struct {
	// PxPerDp is the device-dependent size of a Dp.
	PxPerDp float32
	// PxPerSp is the device-dependent size of an Sp.
	PxPerSp float32
}

// Dp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Dp(v Dp) int {
	scale := c.PxPerDp
	if scale == 0 {
		scale = 1
	}
	return int(math.Round(float64(scale) * float64(v)))
}

// Sp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Sp(v Sp) int {
	scale := c.PxPerSp
	if scale == 0 {
		scale = 1
	}
	return int(math.Round(float64(scale) * float64(v)))
}

// DpToSp converts v dp to sp.
func (c Metric) DpToSp(v Dp) Sp {
	dppsp := c.PxPerDp
	if dppsp == 0 {
		dppsp = 1
	}
	sppsp := c.PxPerSp
	if sppsp == 0 {
		sppsp = 1
	}
	return Sp(float32(v) * dppsp / sppsp)
}

// SpToDp converts v sp to dp.
func (c Metric) SpToDp(v Sp) Dp {
	dppsp := c.PxPerDp
	if dppsp == 0 {
		dppsp = 1
	}
	sppsp := c.PxPerSp
	if sppsp == 0 {
		sppsp = 1
	}
	return Dp(float32(v) * sppsp / dppsp)
}
