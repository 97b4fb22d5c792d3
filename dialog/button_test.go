// SPDX-License-Identifier: Unlicense OR MIT

package dialog

import (
	"image"
	"testing"
)

func TestStandardSets(t *testing.T) {
	tests := []struct {
		name string
		set  Set
		want []SlotButton
	}{
		{"OK", OK(), []SlotButton{
			{Slot3, Button{Text: "OK", Result: ResultOK}},
		}},
		{"OKCancel", OKCancel(), []SlotButton{
			{Slot2, Button{Text: "OK", Result: ResultOK}},
			{Slot3, Button{Text: "Cancel", Result: ResultCancel}},
		}},
		{"YesNo", YesNo(), []SlotButton{
			{Slot2, Button{Text: "Yes", Result: ResultYes}},
			{Slot3, Button{Text: "No", Result: ResultNo}},
		}},
		{"YesNoCancel", YesNoCancel(), []SlotButton{
			{Slot1, Button{Text: "Yes", Result: ResultYes}},
			{Slot2, Button{Text: "No", Result: ResultNo}},
			{Slot3, Button{Text: "Cancel", Result: ResultCancel}},
		}},
		{"RetryCancel", RetryCancel(), []SlotButton{
			{Slot2, Button{Text: "Retry", Result: ResultRetry}},
			{Slot3, Button{Text: "Cancel", Result: ResultCancel}},
		}},
		{"AbortRetryIgnore", AbortRetryIgnore(), []SlotButton{
			{Slot1, Button{Text: "Abort", Result: ResultAbort}},
			{Slot2, Button{Text: "Retry", Result: ResultRetry}},
			{Slot3, Button{Text: "Ignore", Result: ResultIgnore}},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vis := tc.set.Visible()
			if len(vis) != len(tc.want) {
				t.Fatalf("got %d buttons, want %d", len(vis), len(tc.want))
			}
			for i, want := range tc.want {
				got := vis[i]
				if got.Slot != want.Slot || got.Button.Text != want.Button.Text || got.Button.Result != want.Button.Result {
					t.Errorf("button %d = %v/%v/%q, want %v/%v/%q",
						i, got.Slot, got.Button.Result, got.Button.Text,
						want.Slot, want.Button.Result, want.Button.Text)
				}
			}
		})
	}
}

func TestCustomSet(t *testing.T) {
	s := Custom(Button{Text: "One"})
	vis := s.Visible()
	if len(vis) != 1 || vis[0].Slot != Slot3 {
		t.Errorf("single custom button = %+v, want Slot3", vis)
	}
	s = Custom(Button{Text: "A"}, Button{Text: "B"})
	vis = s.Visible()
	if len(vis) != 2 || vis[0].Slot != Slot2 || vis[1].Slot != Slot3 {
		t.Errorf("two custom buttons fill slots 2 and 3, got %+v", vis)
	}
	// A fourth button is dropped.
	s = Custom(Button{Text: "A"}, Button{Text: "B"}, Button{Text: "C"}, Button{Text: "D"})
	if vis := s.Visible(); len(vis) != 3 {
		t.Errorf("got %d buttons, want 3", len(vis))
	}
}

func TestZeroSet(t *testing.T) {
	var s Set
	if vis := s.Visible(); len(vis) != 0 {
		t.Errorf("zero Set has %d buttons", len(vis))
	}
}

func TestSizeButtonsAuto(t *testing.T) {
	set := OKCancel()
	sizes := sizeButtons(fakeMeasurer{}, testMetric, testFont(), 13, set.Visible())
	// "OK" is 2 runes, "Cancel" 6; insets add 20 and 12.
	if sizes[0] != image.Pt(40, 28) {
		t.Errorf("OK size = %v, want (40,28)", sizes[0])
	}
	if sizes[1] != image.Pt(80, 28) {
		t.Errorf("Cancel size = %v, want (80,28)", sizes[1])
	}
}

func TestSizeButtonsSharedHeight(t *testing.T) {
	set := Custom(
		Button{Text: "A", MinHeight: 40},
		Button{Text: "B"},
	)
	sizes := sizeButtons(fakeMeasurer{}, testMetric, testFont(), 13, set.Visible())
	if sizes[0].Y != 40 || sizes[1].Y != 40 {
		t.Errorf("heights = %d, %d, want both 40", sizes[0].Y, sizes[1].Y)
	}
}

func TestSizeButtonsClampDown(t *testing.T) {
	set := Custom(Button{Text: "Go", MinWidth: 120, MinHeight: 30, MaxWidth: 100, MaxHeight: 30})
	sizes := sizeButtons(fakeMeasurer{}, testMetric, testFont(), 13, set.Visible())
	if sizes[0] != image.Pt(100, 30) {
		t.Errorf("size = %v, want (100,30): minimum must lose to maximum", sizes[0])
	}
}

func TestSizeButtonsMinGrowsToFitText(t *testing.T) {
	set := Custom(Button{Text: "A very long button label", MinWidth: 30})
	sizes := sizeButtons(fakeMeasurer{}, testMetric, testFont(), 13, set.Visible())
	// 24 runes at 10px plus insets; the small minimum does not shrink
	// the text.
	if want := 24*10 + 20; sizes[0].X != want {
		t.Errorf("width = %d, want %d", sizes[0].X, want)
	}
}
