// SPDX-License-Identifier: Unlicense OR MIT

package dialog

import (
	"image"

	"github.com/pringle92/flexdialog/unit"
)

// Geometry is the computed box model of a dialog.
//
// Element rectangles are in client coordinates: the origin is the top
// left corner of the window's content area, below the title bar.
type Geometry struct {
	// Size is the outer window size, including chrome.
	Size image.Point
	// Blocks holds the rectangles of the visible content blocks in
	// stacking order, the icon first.
	Blocks []BlockRect
	// Buttons holds the button rectangles in right-to-left placement
	// order: the rightmost slot comes first.
	Buttons []ButtonRect
	// Checkbox is the checkbox rectangle, empty when hidden.
	Checkbox image.Rectangle
	// ScrollNeeded reports that the message text does not fit its
	// rectangle and a vertical scroll affordance is required.
	ScrollNeeded bool
}

// BlockRect is the resolved rectangle of a content block.
type BlockRect struct {
	Kind Kind
	Rect image.Rectangle
}

// ButtonRect is the resolved rectangle of a button.
type ButtonRect struct {
	Slot   Slot
	Result Result
	Rect   image.Rectangle
}

// Rect returns the rectangle of the block of the given kind and
// whether it is present.
func (g *Geometry) Rect(k Kind) (image.Rectangle, bool) {
	for _, b := range g.Blocks {
		if b.Kind == k {
			return b.Rect, true
		}
	}
	return image.Rectangle{}, false
}

// Layout computes the dialog geometry for cfg on a screen with the
// given working area. It is a pure function: it does not retain or
// mutate cfg, and equal inputs produce equal geometries.
//
// The solver sizes the dialog in two passes. The first pass measures
// every content block against the constraint envelope and settles the
// window size; the second assigns a rectangle to every visible
// element. Sizes are clamped after all measurement, so a clamp is
// never undone by a later step.
func Layout(cfg Config, m Measurer, metric unit.Metric, workArea image.Rectangle) Geometry {
	cons := cfg.Constraints.withDefaults()
	env := cons.resolve(metric, workArea)

	marginX := metric.Dp(cons.MarginX)
	marginY := metric.Dp(cons.MarginY)
	spacing := metric.Dp(cons.Spacing)
	scrollW := metric.Dp(cons.ScrollbarWidth)
	chromeH := metric.Dp(cons.ChromeHeight)
	pad := metric.Dp(cons.PanelPadding)
	btnMargin := metric.Dp(cons.ButtonMargin)
	minText := metric.Dp(cons.MinTextWidth)

	// Buttons and the checkbox are sized up front; their sizes must
	// not depend on position.
	buttons := cfg.Buttons.Visible()
	btnSizes := sizeButtons(m, metric, cfg.ButtonFont, cfg.buttonSize(), buttons)
	var cbSize image.Point
	if cfg.Checkbox.Visible() {
		cbSize = cfg.Checkbox.measure(m, metric)
	}

	// The button panel collapses entirely when it has no content. The
	// row is as tall as its tallest element; per-button maximum
	// overrides can leave the resolved heights unequal.
	rowH := 0
	for _, sz := range btnSizes {
		if sz.Y > rowH {
			rowH = sz.Y
		}
	}
	if cbSize.Y > rowH {
		rowH = cbSize.Y
	}
	panelH := 0
	if rowH > 0 {
		panelH = pad + rowH + pad
	}

	var iconSize image.Point
	iconOffset := 0
	if cfg.Icon.Visible() {
		iconSize = cfg.Icon.Measure(m, metric, env.Max.X)
		iconOffset = iconSize.X + metric.Dp(cons.IconSpacing)
	}

	// Pass 1: measure at the widest permissible text width.
	availText := env.Max.X - 2*marginX - iconOffset - scrollW
	if availText < minText {
		availText = minText
	}
	_, widest := measureStack(cfg, m, metric, availText, iconOffset)

	formW := widest + 2*marginX
	if len(buttons) > 0 {
		row := 2*pad + (len(buttons)-1)*btnMargin
		for _, sz := range btnSizes {
			row += sz.X
		}
		if cfg.Checkbox.Visible() {
			row += cbSize.X + btnMargin
		}
		if row > formW {
			formW = row
		}
	} else if cfg.Checkbox.Visible() {
		if row := 2*pad + cbSize.X; row > formW {
			formW = row
		}
	}
	if cfg.Caption != "" {
		capW := m.MeasureLine(metric, cfg.CaptionFont, cfg.captionSize(), cfg.Caption).X + metric.Dp(cons.CaptionExtra)
		if capW > formW {
			formW = capW
		}
	}
	formW = clamp(formW, env.Min.X, env.Max.X)

	// The width may have shrunk below the first estimate; re-measure
	// the stack at the final available width and decide whether the
	// message needs a scroll affordance.
	availFinal := formW - 2*marginX - iconOffset - scrollW
	if availFinal < minText {
		availFinal = minText
	}
	stack, _ := measureStack(cfg, m, metric, availFinal, iconOffset)
	stackH := 0
	for i, bs := range stack {
		if i > 0 {
			stackH += spacing
		}
		stackH += bs.size.Y
	}
	topH := 2*marginY + maxInt(stackH, iconSize.Y)
	scroll := topH > env.Max.Y-panelH-chromeH
	if scroll {
		// Keep the wrapping width by growing the window for the
		// scrollbar. The caption contender is not re-validated here.
		formW = clamp(formW+scrollW, env.Min.X, env.Max.X)
	}
	formH := clamp(topH+panelH+chromeH, env.Min.Y, env.Max.Y)

	// Pass 2: arrange.
	geo := Geometry{
		Size:         image.Pt(formW, formH),
		ScrollNeeded: scroll,
	}
	clientH := formH - chromeH
	contentW := formW - 2*marginX

	if cfg.Icon.Visible() {
		geo.Blocks = append(geo.Blocks, BlockRect{
			Kind: KindIcon,
			Rect: image.Rectangle{
				Min: image.Pt(marginX, marginY),
				Max: image.Pt(marginX+iconSize.X, marginY+iconSize.Y),
			},
		})
	}

	// The message absorbs what is left after the other blocks.
	msgBudget := clientH - panelH - 2*marginY
	for i, bs := range stack {
		if i > 0 {
			msgBudget -= spacing
		}
		if bs.block.Kind() != KindMessage {
			msgBudget -= bs.size.Y
		}
	}
	minMsg := metric.Dp(cons.MinMessageHeight)

	y := marginY
	for i, bs := range stack {
		if i > 0 {
			y += spacing
		}
		x := marginX
		w := contentW - iconOffset
		if bs.block.Kind() == KindProgress {
			w = contentW
		} else {
			x += iconOffset
		}
		h := bs.size.Y
		if bs.block.Kind() == KindMessage {
			if h > msgBudget {
				h = msgBudget
			}
			if h < minMsg {
				h = minMsg
			}
		}
		geo.Blocks = append(geo.Blocks, BlockRect{
			Kind: bs.block.Kind(),
			Rect: image.Rectangle{
				Min: image.Pt(x, y),
				Max: image.Pt(x+w, y+h),
			},
		})
		y += h
	}

	panelTop := clientH - panelH
	x := formW - pad
	for i := len(buttons) - 1; i >= 0; i-- {
		sz := btnSizes[i]
		x -= sz.X
		btnY := panelTop + pad + (rowH-sz.Y)/2
		geo.Buttons = append(geo.Buttons, ButtonRect{
			Slot:   buttons[i].Slot,
			Result: buttons[i].Button.Result,
			Rect: image.Rectangle{
				Min: image.Pt(x, btnY),
				Max: image.Pt(x+sz.X, btnY+sz.Y),
			},
		})
		x -= btnMargin
	}

	if cfg.Checkbox.Visible() && panelH > 0 {
		cbX := pad
		var cbY int
		if len(buttons) > 0 {
			// Center against the first visible button.
			first := geo.Buttons[len(geo.Buttons)-1].Rect
			cbY = first.Min.Y + (first.Dy()-cbSize.Y)/2
		} else {
			cbY = panelTop + (panelH-cbSize.Y)/2
		}
		geo.Checkbox = image.Rectangle{
			Min: image.Pt(cbX, cbY),
			Max: image.Pt(cbX+cbSize.X, cbY+cbSize.Y),
		}
	}
	return geo
}

type blockSize struct {
	block Block
	size  image.Point
}

// measureStack measures the visible stacked blocks at the given
// available width. It returns the measurements in stacking order and
// the widest block width including the icon indent.
func measureStack(cfg Config, m Measurer, metric unit.Metric, avail, iconOffset int) ([]blockSize, int) {
	var stack []blockSize
	widest := 0
	for _, b := range cfg.stack() {
		if !b.Visible() {
			continue
		}
		sz := b.Measure(m, metric, avail)
		indent := iconOffset
		if b.Kind() == KindProgress {
			indent = 0
		}
		if w := sz.X + indent; w > widest {
			widest = w
		}
		stack = append(stack, blockSize{block: b, size: sz})
	}
	return stack, widest
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
