package slides

import (
	"fmt"
	"strconv"

	"github.com/mem-portfolio/docgen/pkg/docgen/layout"
	"github.com/mem-portfolio/docgen/pkg/docgen/models"
	"github.com/mem-portfolio/docgen/pkg/docgen/theme"
)

// FontFace is the typeface of the investor deck.
const FontFace = "Helvetica Neue"

// Vertical advance of each content block on a modern content slide.
var (
	statRowAdvance   = layout.Inches(1.6)
	textLineAdvance  = layout.Inches(0.4)
	highlightAdvance = layout.Inches(1.2)
	chartAdvance     = layout.Inches(3.5)
)

// Bar chart geometry.
var (
	barHeight   = layout.Inches(0.5)
	barSpacing  = layout.Inches(0.35)
	barTrackX   = layout.Inches(3.5)
	barMaxWidth = layout.Inches(6)
)

func modernHeader(s *Slide, title string) {
	s.Background(theme.White)
	s.Rect(layout.Rect{X: layout.Inches(0.6), Y: layout.Inches(0.7), W: layout.Inches(0.08), H: layout.Inches(0.4)}, theme.Emerald, Outline{})
	s.TextBox(layout.Rect{X: layout.Inches(0.85), Y: layout.Inches(0.65), W: layout.Inches(8.5), H: layout.Inches(0.5)},
		TextStyle{Size: 28, Bold: true, Color: theme.Navy, Font: FontFace}, title)
}

func modernTitleSlide(s *Slide, c models.Slide) error {
	s.Background(theme.White)
	s.Rect(layout.Rect{W: layout.Inches(0.15), H: SlideHeight}, theme.Emerald, Outline{})

	s.TextBox(layout.Rect{X: layout.Inches(1.5), Y: layout.Inches(2.5), W: layout.Inches(7), H: layout.Inches(1.2)},
		TextStyle{Size: 64, Bold: true, Color: theme.Navy, Font: FontFace}, c.Title)
	if c.Subtitle != "" {
		s.TextBox(layout.Rect{X: layout.Inches(1.5), Y: layout.Inches(3.8), W: layout.Inches(7), H: layout.Inches(0.6)},
			TextStyle{Size: 32, Color: theme.Slate, Font: FontFace}, c.Subtitle)
	}
	if c.Tagline != "" {
		s.TextBox(layout.Rect{X: layout.Inches(1.5), Y: layout.Inches(4.5), W: layout.Inches(7), H: layout.Inches(0.5)},
			TextStyle{Size: 20, Color: theme.Slate, Font: FontFace}, c.Tagline)
	}

	s.Oval(layout.Rect{X: layout.Inches(8), Y: layout.Inches(1.2), W: layout.Inches(0.8), H: layout.Inches(0.8)}, theme.Emerald, Outline{})
	return nil
}

func sectionSlide(s *Slide, c models.Slide) error {
	s.Background(theme.Navy)
	s.TextBox(layout.Rect{X: layout.Inches(1), Y: layout.Inches(2), W: layout.Inches(8), H: layout.Inches(1)},
		TextStyle{Size: 120, Bold: true, Color: theme.Emerald, Font: FontFace}, SectionLabel(c.Number))
	s.TextBox(layout.Rect{X: layout.Inches(1), Y: layout.Inches(3.3), W: layout.Inches(8), H: layout.Inches(0.8)},
		TextStyle{Size: 48, Bold: true, Color: theme.White, Font: FontFace}, c.Title)
	s.TextBox(layout.Rect{X: layout.Inches(1), Y: layout.Inches(4.3), W: layout.Inches(8), H: layout.Inches(0.5)},
		TextStyle{Size: 18, Color: theme.Gray100, Font: FontFace}, c.Subtitle)
	return nil
}

// SectionLabel formats a section number with a leading zero, e.g. "03".
func SectionLabel(n int) string {
	return fmt.Sprintf("0%d", n)
}

func modernContentSlide(s *Slide, c models.Slide) error {
	modernHeader(s, c.Title)

	y := layout.Inches(1.5)
	for i, b := range c.Blocks {
		adv, err := drawBlock(s, y, b)
		if err != nil {
			return fmt.Errorf("block %d (%s): %w", i, b.Type, err)
		}
		y += adv
	}
	return nil
}

// drawBlock draws one content block at y and returns how far the next
// block moves down.
func drawBlock(s *Slide, y layout.EMU, b models.Block) (layout.EMU, error) {
	switch b.Type {
	case models.BlockStatRow:
		return statRowAdvance, statRow(s, y, b.Stats)
	case models.BlockText:
		textBlock(s, y, b.Content)
		return textLineAdvance * layout.EMU(len(b.Content)), nil
	case models.BlockHighlight:
		col := theme.Blue
		if b.Color != "" {
			c, ok := theme.Lookup(b.Color)
			if !ok {
				return 0, fmt.Errorf("unknown color %q", b.Color)
			}
			col = c
		}
		highlight(s, y, b.Text, col)
		return highlightAdvance, nil
	case models.BlockChart:
		return chartAdvance, bars(s, y, b.Data)
	default:
		return 0, fmt.Errorf("unknown block type %q", b.Type)
	}
}

func statRow(s *Slide, y layout.EMU, stats []models.Stat) error {
	w := layout.Inches(2.6)
	xs, err := layout.CenteredRow(len(stats), w, layout.Inches(0.25), SlideWidth)
	if err != nil {
		return err
	}

	for i, x := range xs {
		st := stats[i]
		accent := theme.Emerald
		if st.Color != "" {
			c, ok := theme.Lookup(st.Color)
			if !ok {
				return fmt.Errorf("unknown color %q", st.Color)
			}
			accent = c
		}

		s.RoundRect(layout.Rect{X: x, Y: y, W: w, H: layout.Inches(1.4)}, theme.Gray50, Outline{})
		s.Rect(layout.Rect{X: x, Y: y, W: w, H: layout.Inches(0.08)}, accent, Outline{})
		s.TextBox(layout.Rect{X: x, Y: y + layout.Inches(0.3), W: w, H: layout.Inches(0.5)},
			TextStyle{Size: 40, Bold: true, Color: theme.Navy, Font: FontFace, Center: true}, st.Value)
		s.TextBox(layout.Rect{X: x + layout.Inches(0.1), Y: y + layout.Inches(0.85), W: w - layout.Inches(0.2), H: layout.Inches(0.4)},
			TextStyle{Size: 12, Color: theme.Slate, Font: FontFace, Center: true, Wrap: true}, st.Label)
	}
	return nil
}

func textBlock(s *Slide, y layout.EMU, lines []string) {
	s.TextBox(layout.Rect{X: layout.Inches(1), Y: y, W: layout.Inches(8), H: layout.Inches(0.3) * layout.EMU(len(lines))},
		TextStyle{Size: 14, Color: theme.Gray800, Font: FontFace, Wrap: true, SpaceBefore: 6, SpaceAfter: 6}, lines...)
}

func highlight(s *Slide, y layout.EMU, text string, fill theme.Color) {
	s.RoundRect(layout.Rect{X: layout.Inches(1), Y: y, W: layout.Inches(8), H: layout.Inches(1)}, fill, Outline{})
	s.TextBox(layout.Rect{X: layout.Inches(1.3), Y: y + layout.Inches(0.15), W: layout.Inches(7.4), H: layout.Inches(0.7)},
		TextStyle{Size: 18, Bold: true, Color: theme.White, Font: FontFace, Wrap: true, Middle: true}, text)
}

func barChartSlide(s *Slide, c models.Slide) error {
	modernHeader(s, c.Title)

	top := layout.Inches(1.8)
	if c.Subtitle != "" {
		s.TextBox(layout.Rect{X: layout.Inches(0.85), Y: layout.Inches(1.1), W: layout.Inches(8.5), H: layout.Inches(0.3)},
			TextStyle{Size: 14, Color: theme.Slate, Font: FontFace}, c.Subtitle)
		top = layout.Inches(2.2)
	}
	return bars(s, top, c.Bars)
}

// bars draws a horizontal bar chart starting at y: a label column, a gray
// track, a value bar scaled to the largest value and colored by severity,
// and a percentage label just past the bar.
func bars(s *Slide, y layout.EMU, data []models.Bar) error {
	values := make([]float64, len(data))
	for i, b := range data {
		values[i] = b.Value
	}
	widths, err := layout.BarWidths(values, barMaxWidth)
	if err != nil {
		return err
	}

	inner := barHeight - layout.Inches(0.2)
	for i, rowY := range layout.Stack(len(data), y, barHeight, barSpacing) {
		b := data[i]
		s.TextBox(layout.Rect{X: layout.Inches(0.8), Y: rowY, W: layout.Inches(2.5), H: barHeight},
			TextStyle{Size: 13, Color: theme.Gray800, Font: FontFace, Wrap: true, Middle: true}, b.Label)

		s.RoundRect(layout.Rect{X: barTrackX, Y: rowY + layout.Inches(0.1), W: barMaxWidth, H: inner}, theme.Gray100, Outline{})
		bar := layout.Rect{X: barTrackX, Y: rowY + layout.Inches(0.1), W: widths[i], H: inner}
		s.RoundRect(bar, theme.Severity(b.Value), Outline{})

		s.TextBox(layout.Rect{X: bar.Right() + layout.Inches(0.1), Y: rowY, W: layout.Inches(0.6), H: barHeight},
			TextStyle{Size: 16, Bold: true, Color: theme.Navy, Font: FontFace, Middle: true}, Percent(b.Value))
	}
	return nil
}

// Percent formats a bar value as shown next to the bar, e.g. "72%".
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func insightGridSlide(s *Slide, c models.Slide) error {
	modernHeader(s, c.Title)

	grid := layout.GridSpec{
		Cols:     2,
		Origin:   layout.Rect{X: layout.Inches(0.7), Y: layout.Inches(1.8), W: layout.Inches(4.3), H: layout.Inches(2.4)},
		SpacingX: layout.Inches(0.4),
		SpacingY: layout.Inches(0.35),
	}
	if len(c.Insights) > len(theme.InsightColors) {
		return fmt.Errorf("%w: %d insights, grid holds %d", layout.ErrOverflow, len(c.Insights), len(theme.InsightColors))
	}

	for i, cell := range grid.Cells(len(c.Insights)) {
		in := c.Insights[i]
		col := theme.InsightColors[i]

		s.RoundRect(cell, theme.Gray50, Outline{Color: col, Width: 3})
		icon := layout.Rect{X: cell.X + layout.Inches(0.25), Y: cell.Y + layout.Inches(0.25), W: layout.Inches(0.6), H: layout.Inches(0.6)}
		s.Oval(icon, col, Outline{})
		s.TextBox(icon, TextStyle{Size: 20, Bold: true, Color: theme.White, Center: true, Middle: true}, in.Icon)

		s.TextBox(layout.Rect{X: cell.X + layout.Inches(0.25), Y: cell.Y + layout.Inches(1), W: cell.W - layout.Inches(0.5), H: layout.Inches(0.4)},
			TextStyle{Size: 16, Bold: true, Color: theme.Navy, Font: FontFace, Wrap: true}, in.Heading)
		s.TextBox(layout.Rect{X: cell.X + layout.Inches(0.25), Y: cell.Y + layout.Inches(1.45), W: cell.W - layout.Inches(0.5), H: layout.Inches(0.8)},
			TextStyle{Size: 12, Color: theme.Slate, Font: FontFace, Wrap: true}, in.Description)
	}
	return nil
}

func modernRoadmapSlide(s *Slide, c models.Slide) error {
	modernHeader(s, c.Title)

	lineY := layout.Inches(2.5)
	start, end := layout.Inches(1.5), layout.Inches(8.5)
	s.Connector(start, lineY, end, lineY, Outline{Color: theme.Gray100, Width: 3})

	for i, x := range layout.Timeline(len(c.Phases), start, end) {
		phase := c.Phases[i]
		col := theme.Cycle(theme.InvestorPhaseColors, i)

		s.Oval(layout.Rect{X: x - layout.Inches(0.2), Y: lineY - layout.Inches(0.2), W: layout.Inches(0.4), H: layout.Inches(0.4)},
			col, Outline{Color: theme.White, Width: 3})
		s.TextBox(layout.Rect{X: x - layout.Inches(0.7), Y: lineY - layout.Inches(0.8), W: layout.Inches(1.4), H: layout.Inches(0.4)},
			TextStyle{Size: 13, Bold: true, Color: col, Font: FontFace, Center: true, Wrap: true}, phase.Name)
		s.TextBox(layout.Rect{X: x - layout.Inches(0.8), Y: lineY + layout.Inches(0.4), W: layout.Inches(1.6), H: layout.Inches(3)},
			TextStyle{Size: 10, Color: theme.Gray800, Font: FontFace, Wrap: true, SpaceBefore: 4}, bullets(phase.Items)...)
	}
	return nil
}
