// SPDX-License-Identifier: Unlicense OR MIT

package unit

import "testing"

func TestMetricZeroValue(t *testing.T) {
	// The zero Metric converts 1:1.
	var m Metric
	if px := m.Dp(42); px != 42 {
		t.Errorf("zero Metric: Dp(42) = %d, want 42", px)
	}
	if px := m.Sp(13); px != 13 {
		t.Errorf("zero Metric: Sp(13) = %d, want 13", px)
	}
}

func TestMetricRounding(t *testing.T) {
	m := Metric{PxPerDp: 1.5, PxPerSp: 1.5}
	tests := []struct {
		dp Dp
		px int
	}{
		{0, 0},
		{1, 2},  // 1.5 rounds up
		{2, 3},  // 3.0
		{10, 15},
		{-1, -2},
	}
	for _, tc := range tests {
		if got := m.Dp(tc.dp); got != tc.px {
			t.Errorf("Dp(%v) = %d, want %d", tc.dp, got, tc.px)
		}
	}
}

func TestMetricDpSpConversion(t *testing.T) {
	m := Metric{PxPerDp: 2, PxPerSp: 4}
	if got := m.DpToSp(8); got != 4 {
		t.Errorf("DpToSp(8) = %v, want 4", got)
	}
	if got := m.SpToDp(4); got != 8 {
		t.Errorf("SpToDp(4) = %v, want 8", got)
	}
}
