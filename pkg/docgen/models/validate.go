package models

import (
	"errors"
	"fmt"
	"math"

	"github.com/mem-portfolio/docgen/pkg/docgen/theme"
)

// ValidationError reports one problem found in content.
type ValidationError struct {
	// Path locates the offending field, e.g. "slides[3].blocks[0]".
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func invalid(path, format string, args ...interface{}) error {
	return &ValidationError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks that every slide carries the fields its kind needs.
// All problems are reported together.
func (d Deck) Validate() error {
	var errs []error
	if len(d.Slides) == 0 {
		errs = append(errs, invalid("slides", "deck has no slides"))
	}
	for i, s := range d.Slides {
		errs = append(errs, s.validate(fmt.Sprintf("slides[%d]", i))...)
	}
	return errors.Join(errs...)
}

func (s Slide) validate(path string) []error {
	var errs []error
	if s.Title == "" && s.Kind != KindModernTitle {
		errs = append(errs, invalid(path, "missing title"))
	}

	switch s.Kind {
	case KindTitle, KindModernTitle:
	case KindContent:
		if len(s.Stats) > 3 {
			errs = append(errs, invalid(path, "content slide holds at most 3 stats, got %d", len(s.Stats)))
		}
	case KindFindings:
		if len(s.Findings) == 0 {
			errs = append(errs, invalid(path, "findings slide has no findings"))
		}
	case KindRecommendations:
		if len(s.Recommendations) == 0 {
			errs = append(errs, invalid(path, "recommendations slide has no recommendations"))
		}
	case KindRoadmap, KindModernRoadmap:
		if len(s.Phases) == 0 {
			errs = append(errs, invalid(path, "roadmap has no phases"))
		}
	case KindSection:
		if s.Number <= 0 {
			errs = append(errs, invalid(path, "section number must be positive"))
		}
	case KindModernContent:
		for j, b := range s.Blocks {
			errs = append(errs, b.validate(fmt.Sprintf("%s.blocks[%d]", path, j))...)
		}
	case KindBarChart:
		errs = append(errs, validateBars(path+".bars", s.Bars)...)
	case KindInsightGrid:
		if n := len(s.Insights); n == 0 || n > len(theme.InsightColors) {
			errs = append(errs, invalid(path, "insight grid needs 1-%d insights, got %d", len(theme.InsightColors), n))
		}
	default:
		errs = append(errs, invalid(path, "unknown slide kind %q", s.Kind))
	}

	for j, st := range s.Stats {
		errs = append(errs, st.validate(fmt.Sprintf("%s.stats[%d]", path, j))...)
	}
	return errs
}

func (b Block) validate(path string) []error {
	var errs []error
	switch b.Type {
	case BlockStatRow:
		if len(b.Stats) == 0 {
			errs = append(errs, invalid(path, "stat_row has no stats"))
		}
		for j, st := range b.Stats {
			errs = append(errs, st.validate(fmt.Sprintf("%s.stats[%d]", path, j))...)
		}
	case BlockText:
		if len(b.Content) == 0 {
			errs = append(errs, invalid(path, "text block has no content"))
		}
	case BlockHighlight:
		if b.Text == "" {
			errs = append(errs, invalid(path, "highlight has no text"))
		}
		if b.Color != "" {
			if _, ok := theme.Lookup(b.Color); !ok {
				errs = append(errs, invalid(path, "unknown color %q", b.Color))
			}
		}
	case BlockChart:
		errs = append(errs, validateBars(path+".data", b.Data)...)
	default:
		errs = append(errs, invalid(path, "unknown block type %q", b.Type))
	}
	return errs
}

func (st Stat) validate(path string) []error {
	if st.Color == "" {
		return nil
	}
	if _, ok := theme.Lookup(st.Color); !ok {
		return []error{invalid(path, "unknown color %q", st.Color)}
	}
	return nil
}

func validateBars(path string, bars []Bar) []error {
	if len(bars) == 0 {
		return []error{invalid(path, "chart has no bars")}
	}
	var max float64
	var errs []error
	for i, b := range bars {
		if math.IsNaN(b.Value) || math.IsInf(b.Value, 0) {
			errs = append(errs, invalid(fmt.Sprintf("%s[%d]", path, i), "value must be a finite number"))
			continue
		}
		if b.Value > max {
			max = b.Value
		}
	}
	if len(errs) > 0 {
		return errs
	}
	if max <= 0 {
		return []error{invalid(path, "chart needs at least one positive value")}
	}
	return nil
}

// Validate checks the memo for empty sections and unknown block types.
func (m Memo) Validate() error {
	var errs []error
	if m.Title == "" {
		errs = append(errs, invalid("title", "memo has no title"))
	}
	for i, sec := range m.Sections {
		path := fmt.Sprintf("sections[%d]", i)
		if sec.Heading == "" {
			errs = append(errs, invalid(path, "missing heading"))
		}
		for j, b := range sec.Blocks {
			bp := fmt.Sprintf("%s.blocks[%d]", path, j)
			switch b.Type {
			case MemoParagraph, MemoSubheading:
				if b.Text == "" {
					errs = append(errs, invalid(bp, "%s has no text", b.Type))
				}
			case MemoNumbered, MemoBullets:
				if len(b.Items) == 0 {
					errs = append(errs, invalid(bp, "%s list has no items", b.Type))
				}
			default:
				errs = append(errs, invalid(bp, "unknown block type %q", b.Type))
			}
		}
	}
	return errors.Join(errs...)
}

// Series returns every bar series in the deck together with the title of the
// slide that shows it, in slide order.
func (d Deck) Series() []Series {
	var out []Series
	for _, s := range d.Slides {
		if len(s.Bars) > 0 {
			out = append(out, Series{Slide: s.Title, Bars: s.Bars})
		}
		for _, b := range s.Blocks {
			if b.Type == BlockChart {
				out = append(out, Series{Slide: s.Title, Bars: b.Data})
			}
		}
	}
	return out
}

// Series is a bar series and the slide it belongs to.
type Series struct {
	Slide string
	Bars  []Bar
}
