// Package memo lays out the financing memorandum and writes it as a Word
// document or a PDF.
package memo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mem-portfolio/docgen/pkg/docgen/models"
)

// DateLayout formats the DATE header line, e.g. "March 05, 2024".
const DateLayout = "January 02, 2006"

// ParagraphsPerPage is the rough page length used for the page estimate.
const ParagraphsPerPage = 35

// Kind is the role of a paragraph in the memo flow. Writers pick fonts and
// spacing from it.
type Kind int

const (
	KindBlank Kind = iota
	KindTitle
	KindHeader
	KindRule
	KindHeading
	KindSubheading
	KindBody
	KindNumbered
	KindBullet
	KindClosing
	KindSignatureName
	KindSignatureTitle
)

var kindNames = [...]string{
	"blank", "title", "header", "rule", "heading", "subheading", "body",
	"numbered", "bullet", "closing", "signature_name", "signature_title",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Run is a span of text with uniform weight.
type Run struct {
	Text string
	Bold bool
}

// Paragraph is one paragraph of the memo.
type Paragraph struct {
	Kind Kind
	Runs []Run
	// SpaceAfter overrides the writer's default spacing, in points.
	SpaceAfter float64
}

// Text joins the paragraph's runs.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Rule lengths of the separator under the header and the signature line.
const (
	headerRuleWidth    = 80
	signatureRuleWidth = 40
)

// Flow turns memo content into the ordered paragraphs of the document.
// Numbered lists restart at 1 for every list block.
func Flow(m models.Memo, date time.Time) []Paragraph {
	paras, _ := flow(context.Background(), m, date)
	return paras
}

// flow is Flow with ctx checked before each section.
func flow(ctx context.Context, m models.Memo, date time.Time) ([]Paragraph, error) {
	paras := []Paragraph{
		{Kind: KindTitle, Runs: []Run{{Text: m.Title, Bold: true}}},
		{Kind: KindBlank},
	}

	for _, h := range m.Header {
		value := h.Value
		if h.Date {
			value = date.Format(DateLayout)
		}
		paras = append(paras, Paragraph{Kind: KindHeader, Runs: []Run{{Text: h.Label, Bold: true}, {Text: value}}})
	}
	paras = append(paras, Paragraph{Kind: KindRule, Runs: []Run{{Text: strings.Repeat("_", headerRuleWidth)}}})

	for _, sec := range m.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		paras = append(paras,
			Paragraph{Kind: KindBlank},
			Paragraph{Kind: KindHeading, Runs: []Run{{Text: sec.Heading, Bold: true}}},
		)
		for _, b := range sec.Blocks {
			paras = append(paras, blockParagraphs(b)...)
		}
	}

	sig := m.Signature
	paras = append(paras,
		Paragraph{Kind: KindBlank},
		Paragraph{Kind: KindBlank},
		Paragraph{Kind: KindClosing, Runs: []Run{{Text: sig.Closing}}},
		Paragraph{Kind: KindBlank},
		Paragraph{Kind: KindBlank},
		Paragraph{Kind: KindRule, Runs: []Run{{Text: strings.Repeat("_", signatureRuleWidth)}}},
		Paragraph{Kind: KindSignatureName, Runs: []Run{{Text: sig.Name, Bold: true}}},
		Paragraph{Kind: KindSignatureTitle, Runs: []Run{{Text: sig.Title}}},
	)
	return paras, nil
}

func blockParagraphs(b models.MemoBlock) []Paragraph {
	switch b.Type {
	case models.MemoParagraph:
		return []Paragraph{{Kind: KindBody, Runs: []Run{{Text: b.Text}}, SpaceAfter: b.SpaceAfter}}
	case models.MemoSubheading:
		return []Paragraph{{Kind: KindSubheading, Runs: []Run{{Text: b.Text, Bold: true}}}}
	case models.MemoNumbered, models.MemoBullets:
		paras := make([]Paragraph, 0, len(b.Items))
		for i, item := range b.Items {
			p := Paragraph{Kind: KindBullet}
			marker := "• "
			if b.Type == models.MemoNumbered {
				p.Kind = KindNumbered
				marker = fmt.Sprintf("%d. ", i+1)
			}
			p.Runs = append(p.Runs, Run{Text: marker})
			if item.Lead != "" {
				p.Runs = append(p.Runs, Run{Text: item.Lead, Bold: true})
			}
			p.Runs = append(p.Runs, Run{Text: item.Body})
			paras = append(paras, p)
		}
		return paras
	}
	return nil
}

// Pages estimates the page count the way the confirmation line reports it.
func Pages(paragraphs int) int {
	return paragraphs / ParagraphsPerPage
}
