package appendix

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mem-portfolio/docgen/pkg/docgen/content"
	"github.com/mem-portfolio/docgen/pkg/docgen/models"
)

func TestInvestorAppendix(t *testing.T) {
	deck, err := content.Source{}.InvestorDeck()
	require.NoError(t, err)

	data, rows, err := Bytes(deck)
	require.NoError(t, err)
	assert.Equal(t, 10, rows)

	path := filepath.Join(t.TempDir(), "appendix.xlsx")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, got, rows+1)
	assert.Equal(t, Columns, got[0][:len(Columns)])

	first := got[1]
	assert.Equal(t, "Critical Gap: Policy Comprehension", first[0])
	assert.Equal(t, "Cannot explain coverage confidently", first[1])
	v, err := strconv.ParseFloat(first[2], 64)
	require.NoError(t, err)
	assert.Equal(t, 72.0, v)
	assert.Equal(t, "high", first[3])

	last := got[len(got)-1]
	assert.Equal(t, "Provider Engagement Deficit", last[0])
	assert.Equal(t, "medium", last[3])
}

func TestWorkbookBands(t *testing.T) {
	deck := models.Deck{Slides: []models.Slide{{
		Kind:  models.KindModernContent,
		Title: "Inline",
		Blocks: []models.Block{{
			Type: models.BlockChart,
			Data: []models.Bar{{Label: "a", Value: 70}, {Label: "b", Value: 49.9}},
		}},
	}}}

	data, rows, err := Bytes(deck)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.NotEmpty(t, data)
}

func TestNoSeries(t *testing.T) {
	deck, err := content.Source{}.SurveyDeck()
	require.NoError(t, err)

	_, _, err = Workbook(deck)
	assert.ErrorIs(t, err, ErrNoSeries)

	data, _, err := Bytes(deck)
	assert.ErrorIs(t, err, ErrNoSeries)
	assert.Nil(t, data)
}
