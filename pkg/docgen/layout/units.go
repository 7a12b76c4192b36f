// Package layout provides the coordinate arithmetic used to place shapes on
// slides: unit conversion, proportional bar scaling, and evenly spaced rows,
// grids and timelines.
package layout

import "math"

// EMU is a length in English Metric Units, the coordinate unit of OOXML.
type EMU int64

// EMUPerInch is the number of EMUs in one inch.
const EMUPerInch = 914400

// EMUPerPoint is the number of EMUs in one typographic point.
// 1 inch = 72 points, so 914400 / 72 = 12700.
const EMUPerPoint = 12700

// Inches converts a length in inches to EMU, rounded to the nearest unit.
func Inches(in float64) EMU {
	return EMU(math.Round(in * EMUPerInch))
}

// Points converts a length in points to EMU, rounded to the nearest unit.
func Points(pt float64) EMU {
	return EMU(math.Round(pt * EMUPerPoint))
}

// Rect is an axis-aligned rectangle in EMU.
type Rect struct {
	X, Y, W, H EMU
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() EMU { return r.X + r.W }

// Inset shrinks the rectangle by dx on the left and right and dy on the top
// and bottom.
func (r Rect) Inset(dx, dy EMU) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}
