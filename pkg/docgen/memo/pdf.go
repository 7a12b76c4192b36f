package memo

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/mem-portfolio/docgen/pkg/docgen/theme"
)

// Page margins in millimetres (1in top and bottom, 1.25in sides).
const (
	marginVertical   = 25.4
	marginHorizontal = 31.75
)

// blankRowHeight is the height of an empty paragraph, in millimetres.
const blankRowHeight = 4

func pdfText(p Paragraph) props.Text {
	t := props.Text{Size: 11, Bottom: 2}

	switch p.Kind {
	case KindTitle:
		t.Size = 16
		t.Style = fontstyle.Bold
		t.Align = align.Center
	case KindHeading:
		t.Size = 12
		t.Style = fontstyle.Bold
		r, g, b := theme.MemoHeading.Channels()
		t.Color = &props.Color{Red: r, Green: g, Blue: b}
	case KindSubheading:
		t.Size = 12
		t.Style = fontstyle.BoldItalic
		t.Top = 2
	case KindNumbered, KindBullet:
		t.Left = 6
	case KindSignatureName:
		t.Style = fontstyle.Bold
	case KindHeader:
		t.Bottom = 0
	}
	if p.SpaceAfter > 0 {
		t.Bottom = p.SpaceAfter * 25.4 / 72
	}
	return t
}

// PDF writes the memo as a PDF. Runs are flattened to one style per
// paragraph; only the paragraph kind decides weight.
func (d *Document) PDF() ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithTopMargin(marginVertical).
		WithLeftMargin(marginHorizontal).
		WithRightMargin(marginHorizontal).
		WithBottomMargin(marginVertical).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   11,
		}).
		Build()

	m := maroto.New(cfg)
	for _, p := range d.Paragraphs {
		if p.Kind == KindBlank {
			m.AddRow(blankRowHeight)
			continue
		}
		m.AddAutoRow(col.New(12).Add(text.New(p.Text(), pdfText(p))))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}
