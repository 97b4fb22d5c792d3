// SPDX-License-Identifier: Unlicense OR MIT

package dialog

import (
	"image"

	"github.com/pringle92/flexdialog/font"
	"github.com/pringle92/flexdialog/layout"
	"github.com/pringle92/flexdialog/unit"
)

// Result is the action a button stands for.
type Result uint8

const (
	ResultNone Result = iota
	ResultOK
	ResultCancel
	ResultYes
	ResultNo
	ResultAbort
	ResultRetry
	ResultIgnore
)

func (r Result) String() string {
	switch r {
	case ResultNone:
		return "None"
	case ResultOK:
		return "OK"
	case ResultCancel:
		return "Cancel"
	case ResultYes:
		return "Yes"
	case ResultNo:
		return "No"
	case ResultAbort:
		return "Abort"
	case ResultRetry:
		return "Retry"
	case ResultIgnore:
		return "Ignore"
	default:
		panic("unreachable")
	}
}

// Label returns the default button label for r.
func (r Result) Label() string {
	if r == ResultNone {
		return ""
	}
	return r.String()
}

// Slot is a fixed position in the button row. Slot3 is the rightmost
// slot; standard button sets fill slots from the right.
type Slot uint8

const (
	Slot1 Slot = iota
	Slot2
	Slot3
)

func (s Slot) String() string {
	switch s {
	case Slot1:
		return "Slot1"
	case Slot2:
		return "Slot2"
	case Slot3:
		return "Slot3"
	default:
		panic("unreachable")
	}
}

// Button describes one button of the row.
type Button struct {
	Text   string
	Result Result
	// MinWidth and MinHeight override the automatic text-derived
	// size. A zero value means automatic.
	MinWidth  unit.Dp
	MinHeight unit.Dp
	// MaxWidth and MaxHeight bound the resolved size. A configured
	// minimum exceeding a maximum resolves to the maximum.
	MaxWidth  unit.Dp
	MaxHeight unit.Dp
	// OnPress is invoked with Result when the button is activated.
	// It plays no part in layout.
	OnPress func(Result)
}

// Set is the button row. The zero value has no buttons.
type Set struct {
	slots [3]*Button
}

// SlotButton pairs a button with its slot.
type SlotButton struct {
	Slot   Slot
	Button Button
}

// Put assigns a button to a slot, replacing any previous assignment.
func (s *Set) Put(slot Slot, b Button) {
	if b.Text == "" {
		b.Text = b.Result.Label()
	}
	s.slots[slot] = &b
}

// Visible returns the populated slots in slot order.
func (s *Set) Visible() []SlotButton {
	var vis []SlotButton
	for i, b := range s.slots {
		if b != nil {
			vis = append(vis, SlotButton{Slot: Slot(i), Button: *b})
		}
	}
	return vis
}

// OK returns the single-button set.
func OK() Set {
	var s Set
	s.Put(Slot3, Button{Result: ResultOK})
	return s
}

// OKCancel returns the two-button set with OK as the primary action.
func OKCancel() Set {
	var s Set
	s.Put(Slot2, Button{Result: ResultOK})
	s.Put(Slot3, Button{Result: ResultCancel})
	return s
}

// YesNo returns the two-button set with Yes as the primary action.
func YesNo() Set {
	var s Set
	s.Put(Slot2, Button{Result: ResultYes})
	s.Put(Slot3, Button{Result: ResultNo})
	return s
}

// YesNoCancel returns the three-button set.
func YesNoCancel() Set {
	var s Set
	s.Put(Slot1, Button{Result: ResultYes})
	s.Put(Slot2, Button{Result: ResultNo})
	s.Put(Slot3, Button{Result: ResultCancel})
	return s
}

// RetryCancel returns the two-button set with Retry as the primary
// action.
func RetryCancel() Set {
	var s Set
	s.Put(Slot2, Button{Result: ResultRetry})
	s.Put(Slot3, Button{Result: ResultCancel})
	return s
}

// AbortRetryIgnore returns the three-button set.
func AbortRetryIgnore() Set {
	var s Set
	s.Put(Slot1, Button{Result: ResultAbort})
	s.Put(Slot2, Button{Result: ResultRetry})
	s.Put(Slot3, Button{Result: ResultIgnore})
	return s
}

// Custom returns a set with the given buttons filling the rightmost
// slots in order. Buttons beyond the third are dropped.
func Custom(buttons ...Button) Set {
	var s Set
	if len(buttons) > len(s.slots) {
		buttons = buttons[:len(s.slots)]
	}
	first := Slot(len(s.slots) - len(buttons))
	for i, b := range buttons {
		s.Put(first+Slot(i), b)
	}
	return s
}

// buttonInset is the padding between a button's label and its edges.
var buttonInset = layout.Inset{Top: 6, Bottom: 6, Left: 10, Right: 10}

// sizeButtons resolves the size of every visible button. Sizes depend
// only on the configuration and metric, never on position, so the
// measurement and arrangement passes agree. All buttons share the
// height of the tallest, then per-axis maximum overrides are applied;
// a minimum exceeding a maximum resolves to the maximum.
func sizeButtons(m Measurer, metric unit.Metric, fnt font.Font, size unit.Sp, buttons []SlotButton) []image.Point {
	sizes := make([]image.Point, len(buttons))
	shared := 0
	for i, sb := range buttons {
		txt := m.MeasureLine(metric, fnt, size, sb.Button.Text)
		w := txt.X + buttonInset.Horizontal(metric)
		h := txt.Y + buttonInset.Vertical(metric)
		if min := metric.Dp(sb.Button.MinWidth); min > w {
			w = min
		}
		if min := metric.Dp(sb.Button.MinHeight); min > h {
			h = min
		}
		sizes[i] = image.Pt(w, h)
		if h > shared {
			shared = h
		}
	}
	for i, sb := range buttons {
		sizes[i].Y = shared
		if sb.Button.MaxWidth > 0 {
			if max := metric.Dp(sb.Button.MaxWidth); sizes[i].X > max {
				sizes[i].X = max
			}
		}
		if sb.Button.MaxHeight > 0 {
			if max := metric.Dp(sb.Button.MaxHeight); sizes[i].Y > max {
				sizes[i].Y = max
			}
		}
	}
	return sizes
}
