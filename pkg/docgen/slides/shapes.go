package slides

import (
	"math"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/mem-portfolio/docgen/pkg/docgen/layout"
	"github.com/mem-portfolio/docgen/pkg/docgen/theme"
)

// Slide draws shapes onto one slide. Shapes stay in draw order; later
// shapes paint over earlier ones.
type Slide struct {
	slide  *ppt.Slide
	shapes int
}

// Shapes returns the number of shapes drawn so far.
func (s *Slide) Shapes() int {
	return s.shapes
}

// Outline is the border of a shape. The zero value draws no border.
type Outline struct {
	Color theme.Color
	// Width in points.
	Width float64
}

func color(c theme.Color) ppt.Color {
	return ppt.NewColor(c.ARGB())
}

func (s *Slide) autoShape(kind ppt.AutoShapeType, r layout.Rect, fill theme.Color, line Outline) *ppt.AutoShape {
	a := ppt.NewAutoShape().SetAutoShapeType(kind)
	a.SetOffsetX(int64(r.X)).SetOffsetY(int64(r.Y)).SetWidth(int64(r.W)).SetHeight(int64(r.H))
	a.SetSolidFill(color(fill))

	b := a.GetBorder()
	if line.Width > 0 {
		b.Style = ppt.BorderSolid
		b.Width = int(math.Round(line.Width))
		b.Color = color(line.Color)
	} else {
		b.Style = ppt.BorderNone
	}

	s.slide.AddShape(a)
	s.shapes++
	return a
}

// Rect draws a filled rectangle.
func (s *Slide) Rect(r layout.Rect, fill theme.Color, line Outline) *ppt.AutoShape {
	return s.autoShape(ppt.AutoShapeRectangle, r, fill, line)
}

// RoundRect draws a filled rounded rectangle.
func (s *Slide) RoundRect(r layout.Rect, fill theme.Color, line Outline) *ppt.AutoShape {
	return s.autoShape(ppt.AutoShapeRoundedRect, r, fill, line)
}

// Oval draws a filled ellipse inscribed in r.
func (s *Slide) Oval(r layout.Rect, fill theme.Color, line Outline) *ppt.AutoShape {
	return s.autoShape(ppt.AutoShapeEllipse, r, fill, line)
}

// Background fills the whole slide.
func (s *Slide) Background(fill theme.Color) *ppt.AutoShape {
	return s.Rect(Canvas, fill, Outline{})
}

// Connector draws a straight line from (x1, y1) to (x2, y2). Only
// left-to-right and top-to-bottom lines are drawn.
func (s *Slide) Connector(x1, y1, x2, y2 layout.EMU, line Outline) *ppt.LineShape {
	l := ppt.NewLineShape().
		SetLineStyle(ppt.BorderSolid).
		SetLineWidth(int(math.Round(line.Width))).
		SetLineColor(color(line.Color))
	l.SetOffsetX(int64(x1)).SetOffsetY(int64(y1)).SetWidth(int64(x2 - x1)).SetHeight(int64(y2 - y1))

	s.slide.AddShape(l)
	s.shapes++
	return l
}

// TextStyle formats every paragraph of a text box.
type TextStyle struct {
	// Size in points.
	Size  int
	Bold  bool
	Color theme.Color
	// Font is the typeface name; empty keeps the theme font.
	Font   string
	Center bool
	// Middle anchors the text vertically in the box.
	Middle bool
	Wrap   bool
	// Paragraph spacing in points.
	SpaceBefore int
	SpaceAfter  int
}

// TextBox draws a text box with one paragraph per line. A line holding
// newlines is split into several paragraphs.
func (s *Slide) TextBox(r layout.Rect, st TextStyle, lines ...string) *ppt.RichTextShape {
	t := s.slide.CreateRichTextShape()
	t.SetOffsetX(int64(r.X)).SetOffsetY(int64(r.Y))
	t.SetWidth(int64(r.W)).SetHeight(int64(r.H))
	t.SetWordWrap(st.Wrap)
	if st.Middle {
		t.SetTextAnchor(ppt.TextAnchorMiddle)
	}

	var paras []string
	for _, line := range lines {
		paras = append(paras, strings.Split(line, "\n")...)
	}

	for i, text := range paras {
		p := t.GetActiveParagraph()
		if i > 0 {
			p = t.CreateParagraph()
		}
		if st.Center {
			p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
		}
		if st.SpaceBefore > 0 {
			p.SetSpaceBefore(st.SpaceBefore)
		}
		if st.SpaceAfter > 0 {
			p.SetSpaceAfter(st.SpaceAfter)
		}

		font := p.CreateTextRun(text).GetFont()
		font.SetSize(st.Size).SetBold(st.Bold).SetColor(color(st.Color))
		if st.Font != "" {
			font.Name = st.Font
		}
	}

	s.shapes++
	return t
}

// Text returns the text of every text box on the slide, one entry per
// paragraph, in draw order.
func (s *Slide) Text() []string {
	return shapeText(s.slide.GetShapes())
}

func shapeText(shapes []ppt.Shape) []string {
	var out []string
	for _, shape := range shapes {
		rts, ok := shape.(*ppt.RichTextShape)
		if !ok {
			continue
		}
		for _, para := range rts.GetParagraphs() {
			var text string
			for _, elem := range para.GetElements() {
				if run, ok := elem.(*ppt.TextRun); ok {
					text += run.GetText()
				}
			}
			if text != "" {
				out = append(out, text)
			}
		}
	}
	return out
}
