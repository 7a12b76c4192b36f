// Package theme defines the color palettes of the generated decks and the
// value-to-color threshold ramp used by bar charts.
package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque RGB color in RRGGBB hex form.
type Color string

// RGB builds a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("%02X%02X%02X", r, g, b))
}

// ARGB returns the color with a fully opaque alpha prefix, the form the
// presentation writer expects.
func (c Color) ARGB() string {
	return "FF" + string(c)
}

// Hex returns the RRGGBB form.
func (c Color) Hex() string {
	return string(c)
}

// Channels returns the red, green and blue components.
func (c Color) Channels() (r, g, b int) {
	if len(c) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(string(c), 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}

// Survey deck palette (modern professional blue).
var (
	Primary   = RGB(0, 51, 102)
	Secondary = RGB(0, 120, 215)
	Accent    = RGB(255, 195, 0)
	Text      = RGB(51, 51, 51)
	LightBG   = RGB(240, 245, 250)
	Green     = RGB(0, 180, 120)
)

// Investor deck palette.
var (
	Navy    = RGB(20, 33, 61)
	Slate   = RGB(71, 85, 105)
	Emerald = RGB(16, 185, 129)
	Amber   = RGB(251, 191, 36)
	Blue    = RGB(59, 130, 246)
	Rose    = RGB(244, 63, 94)
	Gray50  = RGB(249, 250, 251)
	Gray100 = RGB(243, 244, 246)
	Gray800 = RGB(31, 41, 55)
	White   = RGB(255, 255, 255)
	Black   = RGB(0, 0, 0)
)

// MemoHeading is the section heading color of the memorandum.
var MemoHeading = Navy

var named = map[string]Color{
	"primary":   Primary,
	"secondary": Secondary,
	"accent":    Accent,
	"text":      Text,
	"light_bg":  LightBG,
	"green":     Green,
	"navy":      Navy,
	"slate":     Slate,
	"emerald":   Emerald,
	"amber":     Amber,
	"blue":      Blue,
	"rose":      Rose,
	"gray_50":   Gray50,
	"gray_100":  Gray100,
	"gray_800":  Gray800,
	"white":     White,
	"black":     Black,
}

// Lookup resolves a palette color by name (case-insensitive).
func Lookup(name string) (Color, bool) {
	c, ok := named[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Severity thresholds for bar charts. Both bounds are inclusive.
const (
	SeverityHigh   = 70.0
	SeverityMedium = 50.0
)

// Severity picks a bar color from its value: at or above 70 is ROSE, at or
// above 50 is AMBER, anything lower is EMERALD.
func Severity(value float64) Color {
	switch {
	case value >= SeverityHigh:
		return Rose
	case value >= SeverityMedium:
		return Amber
	default:
		return Emerald
	}
}

// Band names the severity band of a value.
func Band(value float64) string {
	switch {
	case value >= SeverityHigh:
		return "high"
	case value >= SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}

// SurveyPhaseColors cycle across survey roadmap phases.
var SurveyPhaseColors = []Color{Secondary, Accent, Primary, Green}

// InvestorPhaseColors cycle across investor roadmap phases.
var InvestorPhaseColors = []Color{Emerald, Blue, Amber, Rose}

// InsightColors color the four cells of an insight grid.
var InsightColors = []Color{Blue, Emerald, Amber, Rose}

// Cycle returns the i-th color, wrapping around the list.
func Cycle(colors []Color, i int) Color {
	return colors[i%len(colors)]
}
