// SPDX-License-Identifier: Unlicense OR MIT

package dialog

import (
	"image"
	"testing"

	"github.com/pringle92/flexdialog/unit"
)

func TestFactorClamping(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{0.5, 0.5},
		{0.2, 0.2},
		{1.0, 1.0},
		{0.05, 0.2},
		{-3, 0.2},
		{1.5, 1.0},
		{100, 1.0},
	}
	for _, tc := range tests {
		var c Constraints
		c.SetMaxWidthFactor(tc.in)
		if got := c.MaxWidthFactor(); got != tc.want {
			t.Errorf("SetMaxWidthFactor(%v): read %v, want %v", tc.in, got, tc.want)
		}
		c.SetMaxHeightFactor(tc.in)
		if got := c.MaxHeightFactor(); got != tc.want {
			t.Errorf("SetMaxHeightFactor(%v): read %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFactorDefaults(t *testing.T) {
	var c Constraints
	if got := c.MaxWidthFactor(); got != DefaultMaxWidthFactor {
		t.Errorf("unset width factor = %v, want %v", got, DefaultMaxWidthFactor)
	}
	if got := c.MaxHeightFactor(); got != DefaultMaxHeightFactor {
		t.Errorf("unset height factor = %v, want %v", got, DefaultMaxHeightFactor)
	}
}

func TestResolveEnvelope(t *testing.T) {
	var c Constraints
	c.SetMaxWidthFactor(0.7)
	c.SetMaxHeightFactor(0.9)
	c = c.withDefaults()
	metric := unit.Metric{PxPerDp: 1, PxPerSp: 1}
	env := c.resolve(metric, image.Rect(0, 0, 1920, 1080))
	if want := image.Pt(1344, 972); env.Max != want {
		t.Errorf("max = %v, want %v", env.Max, want)
	}
	if env.Min != defaultMinSize {
		t.Errorf("min = %v, want %v", env.Min, defaultMinSize)
	}
	// The factors apply to the working area size, not its origin.
	offset := c.resolve(metric, image.Rect(100, 200, 2020, 1280))
	if offset.Max != env.Max {
		t.Errorf("offset working area max = %v, want %v", offset.Max, env.Max)
	}
}

func TestResolveMinimumWins(t *testing.T) {
	var c Constraints
	c.MinSize = image.Pt(400, 300)
	c = c.withDefaults()
	metric := unit.Metric{PxPerDp: 1, PxPerSp: 1}
	env := c.resolve(metric, image.Rect(0, 0, 320, 200))
	// The working area cannot satisfy the minimum; the final clamp
	// must prefer the minimum.
	if w := clamp(1000, env.Min.X, env.Max.X); w != 400 {
		t.Errorf("clamped width = %d, want minimum 400", w)
	}
	if h := clamp(50, env.Min.Y, env.Max.Y); h != 300 {
		t.Errorf("clamped height = %d, want minimum 300", h)
	}
}

func TestWithDefaults(t *testing.T) {
	var c Constraints
	d := c.withDefaults()
	if d.MarginX == 0 || d.MarginY == 0 || d.Spacing == 0 ||
		d.ScrollbarWidth == 0 || d.ChromeHeight == 0 || d.MinSize == (image.Point{}) {
		t.Errorf("defaults not applied: %+v", d)
	}
	// Configured values survive.
	c.MarginX = 24
	if got := c.withDefaults().MarginX; got != 24 {
		t.Errorf("MarginX = %v, want 24", got)
	}
}
