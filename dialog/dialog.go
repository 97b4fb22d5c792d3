// SPDX-License-Identifier: Unlicense OR MIT

/*
Package dialog computes the geometry of a message dialog: given a set
of content blocks (icon, wrapped message text, optional input label and
field, optional progress indicator, a row of up to three buttons and an
optional checkbox) and the constraints of the target screen, it derives
a single consistent window size, the rectangle of every visible element
and the placement of the window itself.

The solver is a pure function of its configuration and the read-only
text measurement and screen collaborators; it holds no state between
invocations and is safe to run concurrently as long as every
invocation owns its configuration.
*/
package dialog

import (
	"image"

	"github.com/pringle92/flexdialog/font"
	"github.com/pringle92/flexdialog/unit"
)

// Measurer measures wrapped text. It must be pure: equal inputs yield
// equal results.
//
// *text.Shaper implements Measurer.
type Measurer interface {
	// Measure returns the minimal box containing str wrapped within
	// maxWidth pixels. A maxWidth of zero or less leaves the width
	// unlimited.
	Measure(metric unit.Metric, fnt font.Font, size unit.Sp, str string, maxWidth int) image.Point
	// MeasureLine is like Measure for a single unwrapped line.
	MeasureLine(metric unit.Metric, fnt font.Font, size unit.Sp, str string) image.Point
}

// Kind identifies a content block of the dialog's top region. The
// declaration order of the non-icon kinds is their fixed vertical
// stacking order.
type Kind uint8

const (
	KindIcon Kind = iota
	KindMessage
	KindInputLabel
	KindInput
	KindProgress
)

func (k Kind) String() string {
	switch k {
	case KindIcon:
		return "Icon"
	case KindMessage:
		return "Message"
	case KindInputLabel:
		return "InputLabel"
	case KindInput:
		return "Input"
	case KindProgress:
		return "Progress"
	default:
		panic("unreachable")
	}
}

// Block is one self-contained visual section of the dialog's top
// region.
type Block interface {
	Kind() Kind
	Visible() bool
	// Measure returns the preferred size of the block within
	// maxWidth pixels.
	Measure(m Measurer, metric unit.Metric, maxWidth int) image.Point
}

// Icon is the dialog icon, placed beside the message, label and input
// blocks.
type Icon struct {
	Show bool
	// Size is the icon's edge length. If zero, 32 dp is used.
	Size unit.Dp
}

func (ic Icon) Kind() Kind    { return KindIcon }
func (ic Icon) Visible() bool { return ic.Show }

func (ic Icon) Measure(m Measurer, metric unit.Metric, maxWidth int) image.Point {
	size := ic.Size
	if size == 0 {
		size = 32
	}
	px := metric.Dp(size)
	return image.Pt(px, px)
}

// Message is the main message text, wrapped to the available width.
type Message struct {
	Text string
	Font font.Font
	// TextSize is the message font size. If zero, 13 sp is used.
	TextSize unit.Sp
}

func (msg Message) Kind() Kind    { return KindMessage }
func (msg Message) Visible() bool { return msg.Text != "" }

func (msg Message) Measure(m Measurer, metric unit.Metric, maxWidth int) image.Point {
	return m.Measure(metric, msg.Font, msg.textSize(), msg.Text, maxWidth)
}

func (msg Message) textSize() unit.Sp {
	if msg.TextSize == 0 {
		return 13
	}
	return msg.TextSize
}

// Label is the single-line caption above the input field.
type Label struct {
	Text string
	Font font.Font
	// TextSize is the label font size. If zero, 13 sp is used.
	TextSize unit.Sp
}

func (l Label) Kind() Kind    { return KindInputLabel }
func (l Label) Visible() bool { return l.Text != "" }

func (l Label) Measure(m Measurer, metric unit.Metric, maxWidth int) image.Point {
	size := l.TextSize
	if size == 0 {
		size = 13
	}
	return m.MeasureLine(metric, l.Font, size, l.Text)
}

// Input is a single-line text entry field. Its height is derived from
// the font, its width stretches to the available content width.
type Input struct {
	Show bool
	Font font.Font
	// TextSize is the entry font size. If zero, 13 sp is used.
	TextSize unit.Sp
	// MinWidth is the natural width of the field. If zero, 120 dp is
	// used.
	MinWidth unit.Dp
}

func (in Input) Kind() Kind    { return KindInput }
func (in Input) Visible() bool { return in.Show }

func (in Input) Measure(m Measurer, metric unit.Metric, maxWidth int) image.Point {
	size := in.TextSize
	if size == 0 {
		size = 13
	}
	minWidth := in.MinWidth
	if minWidth == 0 {
		minWidth = 120
	}
	// The field must fit a line of text plus frame padding.
	sample := m.MeasureLine(metric, in.Font, size, "Mg")
	return image.Pt(metric.Dp(minWidth), sample.Y+metric.Dp(8))
}

// Progress is a horizontal progress indicator spanning the content
// width.
type Progress struct {
	Show bool
	// Height is the bar height. If zero, 8 dp is used.
	Height unit.Dp
}

func (p Progress) Kind() Kind    { return KindProgress }
func (p Progress) Visible() bool { return p.Show }

func (p Progress) Measure(m Measurer, metric unit.Metric, maxWidth int) image.Point {
	height := p.Height
	if height == 0 {
		height = 8
	}
	// The bar stretches; it contributes no natural width.
	return image.Pt(0, metric.Dp(height))
}

// Checkbox is an optional checkbox in the button panel, such as
// "do not ask again". It is visible independent of the buttons.
type Checkbox struct {
	Show bool
	Text string
	Font font.Font
	// TextSize is the checkbox font size. If zero, 13 sp is used.
	TextSize unit.Sp
}

func (c Checkbox) Visible() bool { return c.Show }

func (c Checkbox) measure(m Measurer, metric unit.Metric) image.Point {
	size := c.TextSize
	if size == 0 {
		size = 13
	}
	txt := m.MeasureLine(metric, c.Font, size, c.Text)
	box := metric.Dp(16)
	w := box + metric.Dp(6) + txt.X
	h := txt.Y
	if box > h {
		h = box
	}
	return image.Pt(w, h)
}

// Config is the complete description of a dialog to lay out. The zero
// value is a dialog with no visible content.
type Config struct {
	// Caption is the window title. Its measured width is a lower
	// bound for the window width.
	Caption     string
	CaptionFont font.Font
	// CaptionSize is the title font size. If zero, 13 sp is used.
	CaptionSize unit.Sp

	Icon     Icon
	Message  Message
	Label    Label
	Input    Input
	Progress Progress

	Buttons  Set
	Checkbox Checkbox
	// ButtonFont is the font for button labels and the checkbox.
	ButtonFont font.Font
	// ButtonSize is the button font size. If zero, 13 sp is used.
	ButtonSize unit.Sp

	Constraints Constraints
}

// stack returns the vertically stacked top blocks in their fixed
// order.
func (c *Config) stack() []Block {
	return []Block{c.Message, c.Label, c.Input, c.Progress}
}

func (c *Config) captionSize() unit.Sp {
	if c.CaptionSize == 0 {
		return 13
	}
	return c.CaptionSize
}

func (c *Config) buttonSize() unit.Sp {
	if c.ButtonSize == 0 {
		return 13
	}
	return c.ButtonSize
}
