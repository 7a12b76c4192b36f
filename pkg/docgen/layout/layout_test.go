package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnits(t *testing.T) {
	tests := []struct {
		name     string
		got      EMU
		expected EMU
	}{
		{"one inch", Inches(1), 914400},
		{"ten inches", Inches(10), 9144000},
		{"fractional inch", Inches(0.7), 640080},
		{"one point", Points(1), 12700},
		{"line width", Points(1.5), 19050},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}

}

func TestBarWidths(t *testing.T) {
	maxWidth := Inches(6)
	series := [][]float64{
		{72, 89, 68, 82, 64},
		{91, 68, 78, 84, 59},
		{1},
		{0.5, 0.25, 0},
		{100, 100, 3},
		{-10, 40, 20},
		{50, math.NaN()},
		{math.NaN(), 30, 60},
	}

	for _, values := range series {
		widths, err := BarWidths(values, maxWidth)
		require.NoError(t, err, "values %v", values)
		require.Len(t, widths, len(values))

		max := MaxValue(values)
		for i, w := range widths {
			assert.GreaterOrEqual(t, w, EMU(0), "values %v index %d", values, i)
			assert.LessOrEqual(t, w, maxWidth, "values %v index %d", values, i)
			if values[i] == max {
				assert.Equal(t, maxWidth, w, "max element must span the full width")
			}
		}
	}
}

func TestBarWidthsProportional(t *testing.T) {
	widths, err := BarWidths([]float64{50, 100}, Inches(6))
	require.NoError(t, err)
	assert.Equal(t, Inches(3), widths[0])
	assert.Equal(t, Inches(6), widths[1])
}

func TestBarWidthsNoPositiveMax(t *testing.T) {
	tests := [][]float64{
		nil,
		{0, 0, 0},
		{-5, -1},
	}

	for _, values := range tests {
		_, err := BarWidths(values, Inches(6))
		assert.True(t, errors.Is(err, ErrNoPositiveMax), "values %v: got %v", values, err)
	}

	_, err := BarWidth(10, 0, Inches(6))
	assert.ErrorIs(t, err, ErrNoPositiveMax)

	_, err = BarWidth(10, math.NaN(), Inches(6))
	assert.ErrorIs(t, err, ErrNoPositiveMax)

	_, err = BarWidths([]float64{math.NaN(), math.NaN()}, Inches(6))
	assert.ErrorIs(t, err, ErrNoPositiveMax)

	_, err = BarWidths([]float64{10, math.Inf(1)}, Inches(6))
	assert.ErrorIs(t, err, ErrNoPositiveMax)
}

func TestBarWidthsNaNClampsToZero(t *testing.T) {
	widths, err := BarWidths([]float64{50, math.NaN()}, Inches(6))
	require.NoError(t, err)
	assert.Equal(t, []EMU{Inches(6), 0}, widths)
	assert.Equal(t, 50.0, MaxValue([]float64{math.NaN(), 50, 20}))
}

func TestCenteredRow(t *testing.T) {
	canvas := Inches(10)
	w, spacing := Inches(2.6), Inches(0.25)

	for _, n := range []int{1, 2, 3} {
		xs, err := CenteredRow(n, w, spacing, canvas)
		require.NoError(t, err, "n=%d", n)
		require.Len(t, xs, n)

		total := RowWidth(n, w, spacing)
		assert.Equal(t, EMU(n)*w+EMU(n-1)*spacing, total)
		assert.LessOrEqual(t, total, canvas)
		assert.Equal(t, total, xs[n-1]+w-xs[0], "row must consume exactly the computed width")
		assert.InDelta(t, float64(canvas-(xs[n-1]+w)), float64(xs[0]), 1, "row must be centered")
	}
}

func TestCenteredRowOverflow(t *testing.T) {
	_, err := CenteredRow(5, Inches(2.6), Inches(0.25), Inches(10))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestRowWidth(t *testing.T) {
	assert.Equal(t, EMU(0), RowWidth(0, Inches(1), Inches(1)))
	assert.Equal(t, Inches(1), RowWidth(1, Inches(1), Inches(5)))
	assert.Equal(t, Inches(8.1), RowWidth(3, Inches(2.5), Inches(0.3)))
}

func TestGridCells(t *testing.T) {
	g := GridSpec{
		Cols:     2,
		Origin:   Rect{X: Inches(0.7), Y: Inches(1.8), W: Inches(4.3), H: Inches(2.4)},
		SpacingX: Inches(0.4),
		SpacingY: Inches(0.35),
	}

	cells := g.Cells(4)
	require.Len(t, cells, 4)

	assert.Equal(t, g.Origin, cells[0])
	assert.Equal(t, Inches(0.7)+Inches(4.3)+Inches(0.4), cells[1].X)
	assert.Equal(t, cells[0].Y, cells[1].Y)
	assert.Equal(t, cells[0].X, cells[2].X)
	assert.Equal(t, Inches(1.8)+Inches(2.4)+Inches(0.35), cells[2].Y)
	assert.Equal(t, cells[1].X, cells[3].X)
	assert.Equal(t, cells[2].Y, cells[3].Y)

	assert.Equal(t, Inches(9), g.Width())
	assert.LessOrEqual(t, g.Origin.X+g.Width(), Inches(10))
}

func TestStack(t *testing.T) {
	ys := Stack(3, Inches(1.8), Inches(1.2), Inches(0.25))
	assert.Equal(t, []EMU{Inches(1.8), Inches(1.8) + Inches(1.45), Inches(1.8) + 2*Inches(1.45)}, ys)
}

func TestTimeline(t *testing.T) {
	xs := Timeline(4, Inches(1.5), Inches(8.5))
	require.Len(t, xs, 4)
	assert.Equal(t, Inches(1.5), xs[0])
	assert.Equal(t, Inches(8.5), xs[3])
	for i := 1; i < len(xs); i++ {
		assert.InDelta(t, float64(Inches(7.0/3)), float64(xs[i]-xs[i-1]), 2)
	}

	single := Timeline(1, Inches(1.5), Inches(8.5))
	assert.Equal(t, []EMU{Inches(1.5)}, single)
}

func TestPhaseBoxes(t *testing.T) {
	start, end, w := Inches(1), Inches(9), Inches(2.2)

	xs := PhaseBoxes(4, start, end, w)
	require.Len(t, xs, 4)
	assert.Equal(t, start, xs[0])
	assert.InDelta(t, float64(end), float64(xs[3]+w), 4, "last box must end at the span end")

	assert.Equal(t, []EMU{start}, PhaseBoxes(1, start, end, w))
	assert.Nil(t, PhaseBoxes(0, start, end, w))
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	assert.Equal(t, EMU(110), r.Right())
	assert.Equal(t, Rect{X: 15, Y: 22, W: 90, H: 46}, r.Inset(5, 2))
}
