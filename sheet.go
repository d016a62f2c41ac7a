package spritebg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// SheetLayout is a fixed grid of equally sized frame cells.
type SheetLayout struct {
	Columns int
	Rows    int
}

// LayoutForCount picks the sheet grid for a frame count:
// up to 4 frames sit in a single row, up to 8 in a 4×2 grid, up to 16 in
// 4×4, anything larger in 8 columns.
func LayoutForCount(n int) SheetLayout {
	switch {
	case n <= 0:
		return SheetLayout{}
	case n <= 4:
		return SheetLayout{Columns: n, Rows: 1}
	case n <= 8:
		return SheetLayout{Columns: 4, Rows: 2}
	case n <= 16:
		return SheetLayout{Columns: 4, Rows: 4}
	default:
		return SheetLayout{Columns: 8, Rows: (n + 7) / 8}
	}
}

// Assemble lays the frames out on a transparent canvas of
// columns×frameWidth by rows×frameHeight, rows = ceil(len(frames)/columns).
// Frame i lands in cell (i%columns, i/columns) after a Lanczos resize to
// the cell size, pasted with its own alpha so backdrop stays transparent
// canvas. A nil frame leaves its cell empty.
func Assemble(frames []image.Image, columns, frameWidth, frameHeight int) *image.NRGBA {
	if columns < 1 || frameWidth < 1 || frameHeight < 1 {
		return nil
	}
	rows := (len(frames) + columns - 1) / columns
	if rows < 1 {
		rows = 1
	}
	sheet := imaging.New(columns*frameWidth, rows*frameHeight, color.NRGBA{})

	for i, frame := range frames {
		if frame == nil {
			continue
		}
		resized := imaging.Resize(frame, frameWidth, frameHeight, imaging.Lanczos)
		pos := image.Pt((i%columns)*frameWidth, (i/columns)*frameHeight)
		sheet = imaging.Overlay(sheet, resized, pos, 1.0)
	}
	return sheet
}
