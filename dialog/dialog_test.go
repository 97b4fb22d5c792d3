// SPDX-License-Identifier: Unlicense OR MIT

package dialog

import (
	"image"
	"testing"
)

func TestBlockVisibility(t *testing.T) {
	tests := []struct {
		name    string
		block   Block
		visible bool
	}{
		{"hidden icon", Icon{}, false},
		{"shown icon", Icon{Show: true}, true},
		{"empty message", Message{}, false},
		{"message", Message{Text: "x"}, true},
		{"empty label", Label{}, false},
		{"label", Label{Text: "x"}, true},
		{"hidden input", Input{}, false},
		{"shown input", Input{Show: true}, true},
		{"hidden progress", Progress{}, false},
		{"shown progress", Progress{Show: true}, true},
	}
	for _, tc := range tests {
		if got := tc.block.Visible(); got != tc.visible {
			t.Errorf("%s: Visible() = %v, want %v", tc.name, got, tc.visible)
		}
	}
}

func TestBlockMeasureDefaults(t *testing.T) {
	m := fakeMeasurer{}
	if got := (Icon{Show: true}).Measure(m, testMetric, 1000); got != image.Pt(32, 32) {
		t.Errorf("default icon size = %v, want (32,32)", got)
	}
	if got := (Icon{Show: true, Size: 48}).Measure(m, testMetric, 1000); got != image.Pt(48, 48) {
		t.Errorf("icon size = %v, want (48,48)", got)
	}
	if got := (Input{Show: true}).Measure(m, testMetric, 1000); got != image.Pt(120, 24) {
		t.Errorf("input size = %v, want (120,24)", got)
	}
	if got := (Progress{Show: true}).Measure(m, testMetric, 1000); got != image.Pt(0, 8) {
		t.Errorf("progress size = %v, want (0,8)", got)
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindIcon:       "Icon",
		KindMessage:    "Message",
		KindInputLabel: "InputLabel",
		KindInput:      "Input",
		KindProgress:   "Progress",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
