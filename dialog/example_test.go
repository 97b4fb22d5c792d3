// SPDX-License-Identifier: Unlicense OR MIT

package dialog_test

import (
	"fmt"
	"image"

	"github.com/pringle92/flexdialog/dialog"
	"github.com/pringle92/flexdialog/font"
	"github.com/pringle92/flexdialog/unit"
)

// fixedMeasurer measures every rune as 10x16 pixels.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureLine(metric unit.Metric, fnt font.Font, size unit.Sp, str string) image.Point {
	return image.Pt(len([]rune(str))*10, 16)
}

func (fixedMeasurer) Measure(metric unit.Metric, fnt font.Font, size unit.Sp, str string, maxWidth int) image.Point {
	n := len([]rune(str))
	if n == 0 {
		return image.Pt(0, 16)
	}
	if maxWidth <= 0 || n*10 <= maxWidth {
		return image.Pt(n*10, 16)
	}
	perLine := maxWidth / 10
	if perLine < 1 {
		perLine = 1
	}
	lines := (n + perLine - 1) / perLine
	return image.Pt(perLine*10, lines*16)
}

func ExampleLayout() {
	var cons dialog.Constraints
	cons.SetMaxWidthFactor(0.7)
	cons.SetMaxHeightFactor(0.9)

	cfg := dialog.Config{
		Caption:     "ccccccccccccccc",
		Message:     dialog.Message{Text: "Done."},
		Buttons:     dialog.OK(),
		Constraints: cons,
	}
	metric := unit.Metric{PxPerDp: 1, PxPerSp: 1}
	geo := dialog.Layout(cfg, fixedMeasurer{}, metric, image.Rect(0, 0, 1920, 1080))

	fmt.Println(geo.Size)
	fmt.Println(geo.Buttons[0].Rect)

	// Output:
	// (230,122)
	// (180,46)-(220,74)
}
