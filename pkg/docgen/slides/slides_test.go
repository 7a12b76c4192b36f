package slides

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsawler/tabula/pptx"

	"github.com/mem-portfolio/docgen/pkg/docgen/content"
	"github.com/mem-portfolio/docgen/pkg/docgen/layout"
	"github.com/mem-portfolio/docgen/pkg/docgen/models"
)

func TestRenderEmbeddedDecks(t *testing.T) {
	src := content.Source{}
	survey, err := src.SurveyDeck()
	require.NoError(t, err)
	investor, err := src.InvestorDeck()
	require.NoError(t, err)

	tests := []struct {
		name   string
		deck   models.Deck
		slides int
		texts  []string
	}{
		{"survey", survey, 12, []string{"Life Insurance Customer Experience Study", "Implementation Roadmap"}},
		{"investor", investor, 14, []string{"Customer Pain Points", "03", "72%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Render(context.Background(), tt.deck, "test", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.slides, d.Len())

			path := filepath.Join(t.TempDir(), tt.name+".pptx")
			data, err := d.Bytes()
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(path, data, 0o644))

			pres, err := (&ppt.PPTXReader{}).Read(path)
			require.NoError(t, err)
			assert.Len(t, pres.GetAllSlides(), tt.slides)

			r, err := pptx.Open(path)
			require.NoError(t, err)
			defer r.Close()
			assert.Equal(t, tt.slides, r.SlideCount())

			text, err := r.Text()
			require.NoError(t, err)
			for _, want := range tt.texts {
				assert.Contains(t, text, want)
			}
		})
	}
}

func TestNewSlideReusesFirstSlide(t *testing.T) {
	d := NewDeck("t", "c")
	assert.Equal(t, 0, d.Len())

	d.NewSlide()
	d.NewSlide()
	assert.Equal(t, 2, d.Len())

	data, err := d.Bytes()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "two.pptx")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	pres, err := (&ppt.PPTXReader{}).Read(path)
	require.NoError(t, err)
	assert.Len(t, pres.GetAllSlides(), 2)
}

func TestFindingsSlideShapes(t *testing.T) {
	d := NewDeck("t", "c")
	s := d.NewSlide()
	err := findingsSlide(s, models.Slide{
		Kind:     models.KindFindings,
		Title:    "Findings",
		Findings: []string{"one", "two", "three"},
	})
	require.NoError(t, err)

	// Background, header band, title, then circle, number, box and text
	// for each finding.
	assert.Equal(t, 3+4*3, s.Shapes())
	assert.Equal(t, []string{"Findings", "1", "one", "2", "two", "3", "three"}, s.Text())
}

func TestTextBoxSplitsNewlines(t *testing.T) {
	s := NewDeck("t", "c").NewSlide()
	s.TextBox(layout.Rect{W: layout.Inches(2), H: layout.Inches(1)}, TextStyle{Size: 12}, "Phase 1\nMonth 1-3", "next")
	assert.Equal(t, []string{"Phase 1", "Month 1-3", "next"}, s.Text())
}

func TestModernContentBlocks(t *testing.T) {
	s := NewDeck("t", "c").NewSlide()
	err := modernContentSlide(s, models.Slide{
		Kind:  models.KindModernContent,
		Title: "Blocks",
		Blocks: []models.Block{
			{Type: models.BlockStatRow, Stats: []models.Stat{{Value: "1", Label: "a", Color: "rose"}}},
			{Type: models.BlockText, Content: []string{"x", "y"}},
			{Type: models.BlockHighlight, Text: "h"},
			{Type: models.BlockChart, Data: []models.Bar{{Label: "p", Value: 80}, {Label: "q", Value: 40}}},
		},
	})
	require.NoError(t, err)

	text := strings.Join(s.Text(), "|")
	assert.Contains(t, text, "Blocks")
	assert.Contains(t, text, "80%")
	assert.Contains(t, text, "40%")
}

func TestDrawBlockAdvance(t *testing.T) {
	tests := []struct {
		name  string
		block models.Block
		want  layout.EMU
	}{
		{"stat row", models.Block{Type: models.BlockStatRow, Stats: []models.Stat{{Value: "1", Label: "a"}}}, layout.Inches(1.6)},
		{"text", models.Block{Type: models.BlockText, Content: []string{"a", "b", "c"}}, layout.Inches(0.4) * 3},
		{"highlight", models.Block{Type: models.BlockHighlight, Text: "h", Color: "amber"}, layout.Inches(1.2)},
		{"chart", models.Block{Type: models.BlockChart, Data: []models.Bar{{Label: "a", Value: 1}}}, layout.Inches(3.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDeck("t", "c").NewSlide()
			got, err := drawBlock(s, layout.Inches(1.5), tt.block)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDrawBlockErrors(t *testing.T) {
	s := NewDeck("t", "c").NewSlide()

	_, err := drawBlock(s, 0, models.Block{Type: models.BlockHighlight, Text: "h", Color: "mauve"})
	assert.ErrorContains(t, err, "mauve")

	_, err = drawBlock(s, 0, models.Block{Type: "table"})
	assert.ErrorContains(t, err, "unknown block type")

	_, err = drawBlock(s, 0, models.Block{Type: models.BlockChart, Data: []models.Bar{{Label: "a", Value: 0}}})
	assert.ErrorIs(t, err, layout.ErrNoPositiveMax)

	four := make([]models.Stat, 4)
	_, err = drawBlock(s, 0, models.Block{Type: models.BlockStatRow, Stats: four})
	assert.ErrorIs(t, err, layout.ErrOverflow)
}

func TestRenderErrors(t *testing.T) {
	zeros := models.Deck{Name: "bad", Slides: []models.Slide{
		{Kind: models.KindModernTitle},
		{Kind: models.KindBarChart, Title: "Zeros", Bars: []models.Bar{{Label: "a", Value: 0}}},
	}}
	_, err := Render(context.Background(), zeros, "test", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, layout.ErrNoPositiveMax)

	var se *SlideError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Index)
	assert.Contains(t, err.Error(), `slide 2 (bar_chart "Zeros")`)

	unknown := models.Deck{Slides: []models.Slide{{Kind: "carousel", Title: "x"}}}
	_, err = Render(context.Background(), unknown, "test", nil)
	assert.ErrorContains(t, err, "unknown slide kind")
}

func TestRenderCancelled(t *testing.T) {
	deck, err := content.Source{}.SurveyDeck()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Render(ctx, deck, "test", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "01", SectionLabel(1))
	assert.Equal(t, "72%", Percent(72))
	assert.Equal(t, "12.5%", Percent(12.5))
}
