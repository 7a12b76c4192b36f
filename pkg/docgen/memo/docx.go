package memo

import (
	"fmt"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"github.com/mem-portfolio/docgen/pkg/docgen/theme"
)

// twips per point; paragraph spacing and indents are given in twips.
const twipsPerPoint = 20

// listIndent indents numbered and bulleted items, in twips.
const listIndent = 360

// docxStyle returns the paragraph style and base font of a paragraph.
func docxStyle(p Paragraph) (*style.ParagraphStyle, style.FontStyle) {
	ps := &style.ParagraphStyle{SpaceAfter: 120}
	fs := style.FontStyle{Size: 11}

	switch p.Kind {
	case KindTitle:
		ps.Alignment = style.AlignCenter
		fs.Size = 16
	case KindHeader:
		ps.SpaceAfter = 0
	case KindHeading:
		fs.Size = 12
		fs.Color = theme.MemoHeading.Hex()
	case KindNumbered, KindBullet:
		ps.Indent = listIndent
	case KindSignatureName, KindSignatureTitle, KindClosing, KindRule:
		ps.SpaceAfter = 0
	}
	if p.SpaceAfter > 0 {
		ps.SpaceAfter = int(p.SpaceAfter * twipsPerPoint)
	}
	return ps, fs
}

func font(base style.FontStyle, bold bool) *style.FontStyle {
	f := base
	f.Bold = bold
	return &f
}

// DOCX writes the memo as a Word document.
func (d *Document) DOCX() ([]byte, error) {
	doc := goword.New()
	doc.Properties.Title = d.Title
	doc.Properties.Creator = d.Author
	doc.Properties.Description = d.Subject

	sec := doc.AddSection()
	for _, p := range d.Paragraphs {
		switch p.Kind {
		case KindBlank:
			sec.AddTextBreak(1)
			continue
		case KindSubheading:
			sec.AddTitle(p.Text(), 3)
			continue
		}

		ps, fs := docxStyle(p)
		if len(p.Runs) == 1 {
			sec.AddText(p.Runs[0].Text, font(fs, p.Runs[0].Bold), ps)
			continue
		}
		run := sec.AddTextRun(ps)
		for _, r := range p.Runs {
			run.AddText(r.Text, font(fs, r.Bold))
		}
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to save DOCX: %w", err)
	}
	return data, nil
}
