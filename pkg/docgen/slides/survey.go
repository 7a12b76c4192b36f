package slides

import (
	"strconv"

	"github.com/mem-portfolio/docgen/pkg/docgen/layout"
	"github.com/mem-portfolio/docgen/pkg/docgen/models"
	"github.com/mem-portfolio/docgen/pkg/docgen/theme"
)

// Professional blue slides share a 1.2in header band with a 36pt title.
var (
	headerBand = layout.Rect{W: SlideWidth, H: layout.Inches(1.2)}
	headerText = layout.Rect{X: layout.Inches(0.5), Y: layout.Inches(0.3), W: layout.Inches(9), H: layout.Inches(0.6)}
)

func surveyHeader(s *Slide, title string, band, text theme.Color) {
	s.Background(theme.White)
	s.Rect(headerBand, band, Outline{})
	s.TextBox(headerText, TextStyle{Size: 36, Bold: true, Color: text}, title)
}

func titleSlide(s *Slide, c models.Slide) error {
	s.Background(theme.Primary)
	s.RoundRect(layout.Rect{X: layout.Inches(0.5), Y: layout.Inches(2), W: layout.Inches(9), H: layout.Inches(4)}, theme.Secondary, Outline{})
	s.TextBox(layout.Rect{X: layout.Inches(1), Y: layout.Inches(2.5), W: layout.Inches(8), H: layout.Inches(1.5)},
		TextStyle{Size: 54, Bold: true, Color: theme.White, Center: true}, c.Title)
	s.TextBox(layout.Rect{X: layout.Inches(1), Y: layout.Inches(4.2), W: layout.Inches(8), H: layout.Inches(1)},
		TextStyle{Size: 24, Color: theme.Accent, Center: true}, c.Subtitle)
	return nil
}

func contentSlide(s *Slide, c models.Slide) error {
	surveyHeader(s, c.Title, theme.Primary, theme.White)

	stats := layout.GridSpec{
		Cols:     3,
		Origin:   layout.Rect{X: layout.Inches(0.7), Y: layout.Inches(1.8), W: layout.Inches(2.5), H: layout.Inches(1.5)},
		SpacingX: layout.Inches(0.3),
		SpacingY: layout.Inches(0.3),
	}
	for i, cell := range stats.Cells(len(c.Stats)) {
		st := c.Stats[i]
		s.RoundRect(cell, theme.LightBG, Outline{Color: theme.Secondary, Width: 2})
		s.TextBox(layout.Rect{X: cell.X, Y: cell.Y + layout.Inches(0.2), W: cell.W, H: layout.Inches(0.6)},
			TextStyle{Size: 42, Bold: true, Color: theme.Secondary, Center: true}, st.Value)
		s.TextBox(layout.Rect{X: cell.X, Y: cell.Y + layout.Inches(0.85), W: cell.W, H: layout.Inches(0.5)},
			TextStyle{Size: 14, Color: theme.Text, Center: true, Wrap: true}, st.Label)
	}

	top := layout.Inches(1.8)
	if len(c.Stats) > 0 {
		top = layout.Inches(5.3)
	}
	s.TextBox(layout.Rect{X: layout.Inches(0.7), Y: top, W: layout.Inches(8.6), H: layout.Inches(5)},
		TextStyle{Size: 16, Color: theme.Text, Wrap: true, SpaceBefore: 8}, c.Lines...)
	return nil
}

func findingsSlide(s *Slide, c models.Slide) error {
	surveyHeader(s, c.Title, theme.Primary, theme.White)

	boxH := layout.Inches(1.2)
	for i, y := range layout.Stack(len(c.Findings), layout.Inches(1.8), boxH, layout.Inches(0.25)) {
		circle := layout.Rect{X: layout.Inches(0.7), Y: y + layout.Inches(0.35), W: layout.Inches(0.5), H: layout.Inches(0.5)}
		s.Oval(circle, theme.Accent, Outline{})
		s.TextBox(circle, TextStyle{Size: 20, Bold: true, Color: theme.Primary, Center: true, Middle: true}, strconv.Itoa(i+1))

		box := layout.Rect{X: layout.Inches(1.4), Y: y, W: layout.Inches(8), H: boxH}
		s.RoundRect(box, theme.LightBG, Outline{Color: theme.Secondary, Width: 1.5})
		s.TextBox(box.Inset(layout.Inches(0.2), layout.Inches(0.1)),
			TextStyle{Size: 16, Color: theme.Text, Wrap: true, Middle: true}, c.Findings[i])
	}
	return nil
}

func recommendationsSlide(s *Slide, c models.Slide) error {
	surveyHeader(s, c.Title, theme.Accent, theme.Primary)

	grid := layout.GridSpec{
		Cols:     2,
		Origin:   layout.Rect{X: layout.Inches(0.5), Y: layout.Inches(1.8), W: layout.Inches(4.3), H: layout.Inches(2.8)},
		SpacingX: layout.Inches(0.4),
		SpacingY: layout.Inches(0.3),
	}
	for i, cell := range grid.Cells(len(c.Recommendations)) {
		rec := c.Recommendations[i]
		s.RoundRect(cell, theme.Secondary, Outline{})
		s.TextBox(layout.Rect{X: cell.X + layout.Inches(0.2), Y: cell.Y + layout.Inches(0.2), W: cell.W - layout.Inches(0.4), H: layout.Inches(0.6)},
			TextStyle{Size: 18, Bold: true, Color: theme.Accent, Wrap: true}, rec.Title)
		s.TextBox(layout.Rect{X: cell.X + layout.Inches(0.2), Y: cell.Y + layout.Inches(0.9), W: cell.W - layout.Inches(0.4), H: cell.H - layout.Inches(1.1)},
			TextStyle{Size: 14, Color: theme.White, Wrap: true}, rec.Description)
	}
	return nil
}

func roadmapSlide(s *Slide, c models.Slide) error {
	surveyHeader(s, c.Title, theme.Primary, theme.White)

	lineY := layout.Inches(3.5)
	s.Connector(layout.Inches(1), lineY, layout.Inches(9), lineY, Outline{Color: theme.Secondary, Width: 4})

	boxW := layout.Inches(2.2)
	for i, x := range layout.PhaseBoxes(len(c.Phases), layout.Inches(1), layout.Inches(9), boxW) {
		phase := c.Phases[i]
		col := theme.Cycle(theme.SurveyPhaseColors, i)

		s.Oval(layout.Rect{X: x + boxW/2 - layout.Inches(0.15), Y: layout.Inches(3.35), W: layout.Inches(0.3), H: layout.Inches(0.3)}, col, Outline{})
		s.RoundRect(layout.Rect{X: x, Y: layout.Inches(4.2), W: boxW, H: layout.Inches(2.8)}, theme.LightBG, Outline{Color: col, Width: 3})
		s.TextBox(layout.Rect{X: x + layout.Inches(0.1), Y: layout.Inches(4.3), W: boxW - layout.Inches(0.2), H: layout.Inches(0.5)},
			TextStyle{Size: 16, Bold: true, Color: col, Center: true, Wrap: true}, phase.Name)
		s.TextBox(layout.Rect{X: x + layout.Inches(0.15), Y: layout.Inches(4.9), W: boxW - layout.Inches(0.3), H: layout.Inches(2)},
			TextStyle{Size: 11, Color: theme.Text, Wrap: true, SpaceBefore: 4}, bullets(phase.Items)...)
	}
	return nil
}

func bullets(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = "• " + item
	}
	return out
}
