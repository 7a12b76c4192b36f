package survey

import (
	"fmt"
	"strings"
)

// InflationFactor scales the interviewed respondents up to the panel size
// quoted in the deck.
const InflationFactor = 40

// Summary holds the figures derived from the survey table.
type Summary struct {
	Respondents int
	// CoverageColumn is the header of the column read for coverage, empty
	// when no header mentions insurance.
	CoverageColumn string
	Covered        int
	// CoverageRate is Covered as a whole percentage of Respondents,
	// rounded down.
	CoverageRate int
	Panel        int
}

// Summarize counts respondents and yes-answers in the first column whose
// header mentions insurance.
func (t *Table) Summarize() Summary {
	s := Summary{
		Respondents: len(t.Rows),
		Panel:       len(t.Rows) * InflationFactor,
	}

	for _, h := range t.Header {
		if strings.Contains(strings.ToLower(h), "insurance") {
			s.CoverageColumn = h
			break
		}
	}
	if s.CoverageColumn == "" {
		return s
	}

	for _, v := range t.Column(s.CoverageColumn) {
		if isYes(v) {
			s.Covered++
		}
	}
	if s.Respondents > 0 {
		s.CoverageRate = s.Covered * 100 / s.Respondents
	}
	return s
}

func isYes(v interface{}) bool {
	switch x := v.(type) {
	case int64:
		return x == 1
	case float64:
		return x == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "yes", "y", "true", "x":
			return true
		}
	}
	return false
}

// Lines renders the summary as confirmation lines.
func (s Summary) Lines() []string {
	lines := []string{fmt.Sprintf("Survey respondents: %d (panel %d)", s.Respondents, s.Panel)}
	if s.CoverageColumn != "" {
		lines = append(lines, fmt.Sprintf("Coverage: %d of %d (%d%%) from %q",
			s.Covered, s.Respondents, s.CoverageRate, s.CoverageColumn))
	}
	return lines
}
