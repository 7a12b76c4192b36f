package layout

import (
	"errors"
	"math"
)

// ErrNoPositiveMax is returned when bar widths are requested for a series
// whose largest value is zero or negative.
var ErrNoPositiveMax = errors.New("bar series has no positive maximum")

// MaxValue returns the largest value in the series, ignoring NaN.
// It returns 0 for an empty series.
func MaxValue(values []float64) float64 {
	m, seen := 0.0, false
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !seen || v > m {
			m, seen = v, true
		}
	}
	return m
}

// BarWidth scales value against max so that max maps to maxWidth.
// Negative and NaN values clamp to 0 and values above max clamp to
// maxWidth.
func BarWidth(value, max float64, maxWidth EMU) (EMU, error) {
	if !(max > 0) || math.IsInf(max, 1) {
		return 0, ErrNoPositiveMax
	}
	switch {
	case math.IsNaN(value) || value <= 0:
		return 0, nil
	case value >= max:
		return maxWidth, nil
	}
	return EMU(value / max * float64(maxWidth)), nil
}

// BarWidths returns one width per value, scaled so the largest value in the
// series gets exactly maxWidth.
func BarWidths(values []float64, maxWidth EMU) ([]EMU, error) {
	max := MaxValue(values)
	if !(max > 0) || math.IsInf(max, 1) {
		return nil, ErrNoPositiveMax
	}

	widths := make([]EMU, len(values))
	for i, v := range values {
		w, err := BarWidth(v, max, maxWidth)
		if err != nil {
			return nil, err
		}
		widths[i] = w
	}
	return widths, nil
}
