// Package slides renders deck content onto GoPPT presentations.
package slides

import (
	"bytes"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/mem-portfolio/docgen/pkg/docgen/layout"
)

// Slide dimensions of every generated deck (4:3).
var (
	SlideWidth  = layout.Inches(10)
	SlideHeight = layout.Inches(7.5)
)

// Canvas is the full slide area.
var Canvas = layout.Rect{W: SlideWidth, H: SlideHeight}

// Deck owns a presentation until it is written.
type Deck struct {
	pres  *ppt.Presentation
	count int
}

// NewDeck creates an empty 10in x 7.5in presentation.
func NewDeck(title, creator string) *Deck {
	p := ppt.New()
	p.GetDocumentProperties().Title = title
	p.GetDocumentProperties().Creator = creator

	l := p.GetLayout()
	l.CX = int64(SlideWidth)
	l.CY = int64(SlideHeight)

	return &Deck{pres: p}
}

// NewSlide appends a blank slide. A new presentation already holds one
// empty slide, which the first call reuses.
func (d *Deck) NewSlide() *Slide {
	var s *ppt.Slide
	if d.count == 0 {
		s = d.pres.GetActiveSlide()
	} else {
		s = d.pres.CreateSlide()
	}
	d.count++
	return &Slide{slide: s}
}

// Len returns the number of slides added so far.
func (d *Deck) Len() int {
	return d.count
}

// Bytes serializes the presentation as .pptx.
func (d *Deck) Bytes() ([]byte, error) {
	w, err := ppt.NewWriter(d.pres, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}
	return buf.Bytes(), nil
}
