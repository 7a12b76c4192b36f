package memo

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsawler/tabula/docx"

	"github.com/mem-portfolio/docgen/pkg/docgen/content"
	"github.com/mem-portfolio/docgen/pkg/docgen/models"
)

var buildDate = time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)

func embeddedMemo(t *testing.T) models.Memo {
	t.Helper()
	m, err := content.Source{}.Memo()
	require.NoError(t, err)
	return m
}

func TestFlowEmbeddedMemo(t *testing.T) {
	paras := Flow(embeddedMemo(t), buildDate)

	assert.Len(t, paras, 131)
	assert.Equal(t, 3, Pages(len(paras)))

	assert.Equal(t, KindTitle, paras[0].Kind)
	assert.Equal(t, "MEMORANDUM", paras[0].Text())
	assert.Equal(t, KindBlank, paras[1].Kind)

	date := paras[4]
	assert.Equal(t, KindHeader, date.Kind)
	assert.Equal(t, "DATE: March 05, 2024", date.Text())
	require.Len(t, date.Runs, 2)
	assert.True(t, date.Runs[0].Bold)
	assert.False(t, date.Runs[1].Bold)

	last := paras[len(paras)-1]
	assert.Equal(t, KindSignatureTitle, last.Kind)
	assert.Equal(t, "Venture Capital Specialist", last.Text())
}

func TestFlowLists(t *testing.T) {
	m := models.Memo{
		Title: "T",
		Sections: []models.MemoSection{{
			Heading: "H",
			Blocks: []models.MemoBlock{
				{Type: models.MemoNumbered, Items: []models.MemoItem{{Lead: "A: ", Body: "a"}, {Body: "b"}}},
				{Type: models.MemoParagraph, Text: "between", SpaceAfter: 12},
				{Type: models.MemoNumbered, Items: []models.MemoItem{{Body: "c"}}},
				{Type: models.MemoBullets, Items: []models.MemoItem{{Lead: "Key: ", Body: "d"}}},
			},
		}},
	}

	var got []Paragraph
	for _, p := range Flow(m, buildDate) {
		switch p.Kind {
		case KindNumbered, KindBullet, KindBody:
			got = append(got, p)
		}
	}

	require.Len(t, got, 5)
	assert.Equal(t, "1. A: a", got[0].Text())
	assert.True(t, got[0].Runs[1].Bold)
	assert.Equal(t, "2. b", got[1].Text())
	assert.Len(t, got[1].Runs, 2)
	assert.Equal(t, 12.0, got[2].SpaceAfter)
	assert.Equal(t, "1. c", got[3].Text())
	assert.Equal(t, KindBullet, got[4].Kind)
	assert.Equal(t, "• Key: d", got[4].Text())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "heading", KindHeading.String())
	assert.Equal(t, "signature_title", KindSignatureTitle.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestNew(t *testing.T) {
	d, err := New(context.Background(), embeddedMemo(t), buildDate)
	require.NoError(t, err)

	assert.Equal(t, "MEMORANDUM", d.Title)
	assert.Equal(t, "Founding Team Member", d.Author)
	assert.Contains(t, d.Subject, "Seed Stage Venture Capital Financing Offer")
	assert.Equal(t, 3, d.Pages())

	headings := d.Headings()
	require.Len(t, headings, 7)
	assert.Equal(t, "EXECUTIVE SUMMARY", headings[0])
	assert.Equal(t, "VI. CONCLUSION", headings[6])
}

func TestNewCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(ctx, embeddedMemo(t), buildDate)
	assert.ErrorIs(t, err, context.Canceled)
}

// cancelAfter reports cancellation once Err has been called n times.
type cancelAfter struct {
	context.Context
	n, calls int
}

func (c *cancelAfter) Err() error {
	c.calls++
	if c.calls > c.n {
		return context.Canceled
	}
	return nil
}

func TestNewCancelledMidFlow(t *testing.T) {
	m := embeddedMemo(t)
	require.Greater(t, len(m.Sections), 2)

	ctx := &cancelAfter{Context: context.Background(), n: 2}
	_, err := New(ctx, m, buildDate)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, ctx.calls)

	ctx = &cancelAfter{Context: context.Background(), n: len(m.Sections)}
	_, err = New(ctx, m, buildDate)
	require.NoError(t, err)
	assert.Equal(t, len(m.Sections), ctx.calls)
}

func TestDOCX(t *testing.T) {
	d, err := New(context.Background(), embeddedMemo(t), buildDate)
	require.NoError(t, err)

	data, err := d.DOCX()
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("PK")), "docx is a zip archive")

	path := filepath.Join(t.TempDir(), "memo.docx")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	r, err := docx.Open(path)
	require.NoError(t, err)
	defer r.Close()

	text, err := r.Text()
	require.NoError(t, err)
	for _, want := range []string{
		"MEMORANDUM",
		"March 05, 2024",
		"EXECUTIVE SUMMARY",
		"A. Venture Finance Fundamentals",
		"Respectfully submitted,",
	} {
		assert.Contains(t, text, want)
	}
}

func TestDocxStyle(t *testing.T) {
	ps, fs := docxStyle(Paragraph{Kind: KindTitle})
	assert.EqualValues(t, 16, fs.Size)
	assert.EqualValues(t, 120, ps.SpaceAfter)

	_, fs = docxStyle(Paragraph{Kind: KindHeading})
	assert.Equal(t, "14213D", fs.Color)

	ps, _ = docxStyle(Paragraph{Kind: KindBody, SpaceAfter: 12})
	assert.EqualValues(t, 240, ps.SpaceAfter)

	ps, _ = docxStyle(Paragraph{Kind: KindBullet})
	assert.EqualValues(t, listIndent, ps.Indent)
}

func TestPDF(t *testing.T) {
	d, err := New(context.Background(), embeddedMemo(t), buildDate)
	require.NoError(t, err)

	data, err := d.PDF()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPDFText(t *testing.T) {
	txt := pdfText(Paragraph{Kind: KindHeading})
	require.NotNil(t, txt.Color)
	assert.Equal(t, 20, txt.Color.Red)

	txt = pdfText(Paragraph{Kind: KindBody, SpaceAfter: 72})
	assert.InDelta(t, 25.4, txt.Bottom, 1e-9)
}
