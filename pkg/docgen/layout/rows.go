package layout

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned when a row of elements does not fit the canvas.
var ErrOverflow = errors.New("elements overflow canvas")

// RowWidth returns the width consumed by n elements of width w separated by
// spacing.
func RowWidth(n int, w, spacing EMU) EMU {
	if n <= 0 {
		return 0
	}
	return EMU(n)*w + EMU(n-1)*spacing
}

// CenteredRow returns the left edge of each of n elements, centering the row
// horizontally on a canvas of the given width.
func CenteredRow(n int, w, spacing, canvas EMU) ([]EMU, error) {
	total := RowWidth(n, w, spacing)
	if total > canvas {
		return nil, fmt.Errorf("%w: %d elements need %d EMU, canvas is %d", ErrOverflow, n, total, canvas)
	}

	start := (canvas - total) / 2
	xs := make([]EMU, n)
	for i := range xs {
		xs[i] = start + EMU(i)*(w+spacing)
	}
	return xs, nil
}

// GridSpec describes a row-major grid of equally sized cells.
type GridSpec struct {
	Cols     int
	Origin   Rect // X, Y is the first cell's corner; W, H the cell size
	SpacingX EMU
	SpacingY EMU
}

// Cells returns n cells laid out row-major, wrapping after Cols columns.
func (g GridSpec) Cells(n int) []Rect {
	cols := g.Cols
	if cols <= 0 {
		cols = 1
	}

	cells := make([]Rect, n)
	for i := range cells {
		row, col := i/cols, i%cols
		cells[i] = Rect{
			X: g.Origin.X + EMU(col)*(g.Origin.W+g.SpacingX),
			Y: g.Origin.Y + EMU(row)*(g.Origin.H+g.SpacingY),
			W: g.Origin.W,
			H: g.Origin.H,
		}
	}
	return cells
}

// Width returns the horizontal extent of a fully populated grid row.
func (g GridSpec) Width() EMU {
	return RowWidth(g.Cols, g.Origin.W, g.SpacingX)
}

// Stack returns the top edge of n elements of height h stacked vertically
// from y with spacing between them.
func Stack(n int, y, h, spacing EMU) []EMU {
	ys := make([]EMU, n)
	for i := range ys {
		ys[i] = y + EMU(i)*(h+spacing)
	}
	return ys
}

// Timeline returns n points evenly spaced from start to end inclusive.
// A single point sits at start.
func Timeline(n int, start, end EMU) []EMU {
	xs := make([]EMU, n)
	if n == 1 {
		xs[0] = start
		return xs
	}
	for i := range xs {
		xs[i] = start + EMU(float64(end-start)*float64(i)/float64(n-1))
	}
	return xs
}

// PhaseBoxes returns the left edge of n boxes of width w spread so the first
// starts at start and the last ends at end. When the boxes are wider than
// the span the spacing goes negative and neighbours overlap.
func PhaseBoxes(n int, start, end, w EMU) []EMU {
	if n <= 0 {
		return nil
	}

	var spacing EMU
	if n > 1 {
		spacing = (end - start - EMU(n)*w) / EMU(n-1)
	}

	xs := make([]EMU, n)
	for i := range xs {
		xs[i] = start + EMU(i)*(w+spacing)
	}
	return xs
}
