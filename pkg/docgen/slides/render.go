package slides

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mem-portfolio/docgen/pkg/docgen/models"
)

type builder func(*Slide, models.Slide) error

var builders = map[models.SlideKind]builder{
	models.KindTitle:           titleSlide,
	models.KindContent:         contentSlide,
	models.KindFindings:        findingsSlide,
	models.KindRecommendations: recommendationsSlide,
	models.KindRoadmap:         roadmapSlide,

	models.KindModernTitle:   modernTitleSlide,
	models.KindSection:       sectionSlide,
	models.KindModernContent: modernContentSlide,
	models.KindBarChart:      barChartSlide,
	models.KindInsightGrid:   insightGridSlide,
	models.KindModernRoadmap: modernRoadmapSlide,
}

// SlideError reports a slide that could not be drawn.
type SlideError struct {
	Index int
	Kind  models.SlideKind
	Title string
	Err   error
}

func (e *SlideError) Error() string {
	return fmt.Sprintf("slide %d (%s %q): %v", e.Index+1, e.Kind, e.Title, e.Err)
}

func (e *SlideError) Unwrap() error {
	return e.Err
}

// Render draws every slide of content onto a new deck, one slide per entry.
// ctx is checked before each slide.
func Render(ctx context.Context, content models.Deck, creator string, logger *zap.Logger) (*Deck, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	d := NewDeck(content.Title, creator)
	for i, c := range content.Slides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		build, ok := builders[c.Kind]
		if !ok {
			return nil, &SlideError{Index: i, Kind: c.Kind, Title: c.Title, Err: fmt.Errorf("unknown slide kind")}
		}

		s := d.NewSlide()
		if err := build(s, c); err != nil {
			return nil, &SlideError{Index: i, Kind: c.Kind, Title: c.Title, Err: err}
		}
		logger.Debug("slide rendered",
			zap.String("deck", content.Name),
			zap.Int("index", i+1),
			zap.String("kind", string(c.Kind)),
			zap.Int("shapes", s.Shapes()))
	}
	return d, nil
}
