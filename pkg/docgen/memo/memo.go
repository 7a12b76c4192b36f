package memo

import (
	"context"
	"strings"
	"time"

	"github.com/mem-portfolio/docgen/pkg/docgen/models"
)

// Document is a laid-out memo ready to be written.
type Document struct {
	Title   string
	Author  string
	Subject string
	// Paragraphs in document order, blank spacers included.
	Paragraphs []Paragraph
}

// New lays out content for the given date. ctx is checked before each
// section is laid out.
func New(ctx context.Context, content models.Memo, date time.Time) (*Document, error) {
	paras, err := flow(ctx, content, date)
	if err != nil {
		return nil, err
	}

	d := &Document{
		Title:      content.Title,
		Author:     content.Signature.Name,
		Paragraphs: paras,
	}
	for _, h := range content.Header {
		if strings.HasPrefix(strings.TrimSpace(h.Label), "RE") {
			d.Subject = h.Value
		}
	}
	return d, nil
}

// Pages estimates the printed length from the paragraph count.
func (d *Document) Pages() int {
	return Pages(len(d.Paragraphs))
}

// Headings returns the section headings in order.
func (d *Document) Headings() []string {
	var out []string
	for _, p := range d.Paragraphs {
		if p.Kind == KindHeading {
			out = append(out, p.Text())
		}
	}
	return out
}
