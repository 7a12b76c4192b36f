package docgen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mem-portfolio/docgen/pkg/docgen/appendix"
	"github.com/mem-portfolio/docgen/pkg/docgen/memo"
	"github.com/mem-portfolio/docgen/pkg/docgen/models"
	"github.com/mem-portfolio/docgen/pkg/docgen/slides"
	"github.com/mem-portfolio/docgen/pkg/docgen/survey"
)

// Artifact names one of the generated files.
type Artifact string

const (
	ArtifactMemo         Artifact = "memo"
	ArtifactSurveyDeck   Artifact = "survey-deck"
	ArtifactInvestorDeck Artifact = "investor-deck"
)

// Result describes a written artifact.
type Result struct {
	Artifact Artifact
	Path     string
	// Count is the slide count of a deck or the estimated page count of the
	// memo.
	Count int
	// Extra lists additional files written alongside Path.
	Extra []string
	// Lines are the confirmation lines reported to the user.
	Lines []string
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func contentError(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidContent, err)
}

// BuildMemo writes the financing memorandum, and its PDF rendition when
// opts.PDF is set.
func BuildMemo(ctx context.Context, opts Options) (*Result, error) {
	log := opts.Log().With(zap.String("artifact", string(ArtifactMemo)))

	m, err := opts.Content().Memo()
	if err != nil {
		return nil, NewBuildError(ArtifactMemo, StageContent, contentError(err))
	}

	doc, err := memo.New(ctx, m, opts.Clock()())
	if err != nil {
		return nil, NewBuildError(ArtifactMemo, StageRender, err)
	}
	data, err := doc.DOCX()
	if err != nil {
		return nil, NewBuildError(ArtifactMemo, StageRender, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, NewBuildError(ArtifactMemo, StageWrite, err)
	}
	path := opts.MemoOutput()
	if err := writeFile(path, data); err != nil {
		return nil, NewBuildError(ArtifactMemo, StageWrite, err)
	}
	log.Info("memorandum written",
		zap.String("path", path),
		zap.Int("paragraphs", len(doc.Paragraphs)),
		zap.Int("pages", doc.Pages()))

	res := &Result{
		Artifact: ArtifactMemo,
		Path:     path,
		Count:    doc.Pages(),
		Lines: []string{
			fmt.Sprintf("Memorandum created successfully: %s", path),
			fmt.Sprintf("Total pages: ~%d pages", doc.Pages()),
			"Document includes comprehensive analysis and recommendations",
		},
	}

	if opts.PDF {
		pdf, err := doc.PDF()
		if err != nil {
			return nil, NewBuildError(ArtifactMemo, StageRender, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, NewBuildError(ArtifactMemo, StageWrite, err)
		}
		pdfPath := opts.PDFOutput()
		if err := writeFile(pdfPath, pdf); err != nil {
			return nil, NewBuildError(ArtifactMemo, StageWrite, err)
		}
		log.Info("memorandum PDF written", zap.String("path", pdfPath))
		res.Extra = append(res.Extra, pdfPath)
		res.Lines = append(res.Lines, fmt.Sprintf("PDF rendition: %s", pdfPath))
	}
	return res, nil
}

// ReadSurvey opens the survey workbook named by opts and summarizes it.
func ReadSurvey(opts Options) (survey.Summary, error) {
	path := opts.SurveyInput()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return survey.Summary{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	t, err := survey.Open(path, opts.Sheet)
	if err != nil {
		return survey.Summary{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return t.Summarize(), nil
}

// BuildSurveyDeck reads the survey workbook, then writes the survey
// presentation.
func BuildSurveyDeck(ctx context.Context, opts Options) (*Result, error) {
	log := opts.Log().With(zap.String("artifact", string(ArtifactSurveyDeck)))

	sum, err := ReadSurvey(opts)
	if err != nil {
		return nil, NewBuildError(ArtifactSurveyDeck, StageInput, err)
	}
	log.Info("survey read",
		zap.String("path", opts.SurveyInput()),
		zap.Int("respondents", sum.Respondents),
		zap.Int("covered", sum.Covered),
		zap.Int("coverage_rate", sum.CoverageRate),
		zap.Int("panel", sum.Panel))

	deck, err := opts.Content().SurveyDeck()
	if err != nil {
		return nil, NewBuildError(ArtifactSurveyDeck, StageContent, contentError(err))
	}

	path := opts.SurveyDeckOutput()
	n, err := writeDeck(ctx, opts, deck, path, ArtifactSurveyDeck)
	if err != nil {
		return nil, err
	}

	lines := []string{
		fmt.Sprintf("Presentation created successfully: %s", path),
		fmt.Sprintf("Total slides: %d", n),
		fmt.Sprintf("Theme: %s", deck.Design),
	}
	lines = append(lines, deck.Notes...)
	lines = append(lines, sum.Lines()...)

	return &Result{Artifact: ArtifactSurveyDeck, Path: path, Count: n, Lines: lines}, nil
}

// BuildInvestorDeck writes the investor deck, and the chart data appendix
// when opts.AppendixPath is set.
func BuildInvestorDeck(ctx context.Context, opts Options) (*Result, error) {
	log := opts.Log().With(zap.String("artifact", string(ArtifactInvestorDeck)))

	deck, err := opts.Content().InvestorDeck()
	if err != nil {
		return nil, NewBuildError(ArtifactInvestorDeck, StageContent, contentError(err))
	}

	path := opts.InvestorDeckOutput()
	n, err := writeDeck(ctx, opts, deck, path, ArtifactInvestorDeck)
	if err != nil {
		return nil, err
	}

	res := &Result{Artifact: ArtifactInvestorDeck, Path: path, Count: n}
	res.Lines = []string{
		"Investor-grade presentation created successfully",
		fmt.Sprintf("File: %s", path),
		fmt.Sprintf("Total slides: %d", n),
		fmt.Sprintf("Design: %s", deck.Design),
	}
	res.Lines = append(res.Lines, deck.Notes...)

	if opts.AppendixPath != "" {
		data, rows, err := appendix.Bytes(deck)
		if err != nil {
			return nil, NewBuildError(ArtifactInvestorDeck, StageRender, err)
		}
		if err := writeFile(opts.AppendixPath, data); err != nil {
			return nil, NewBuildError(ArtifactInvestorDeck, StageWrite, err)
		}
		log.Info("appendix written", zap.String("path", opts.AppendixPath), zap.Int("rows", rows))
		res.Extra = append(res.Extra, opts.AppendixPath)
		res.Lines = append(res.Lines, fmt.Sprintf("Appendix: %s (%d rows)", opts.AppendixPath, rows))
	}
	return res, nil
}

func writeDeck(ctx context.Context, opts Options, content models.Deck, path string, artifact Artifact) (int, error) {
	log := opts.Log().With(zap.String("artifact", string(artifact)))

	d, err := slides.Render(ctx, content, opts.creator(), log)
	if err != nil {
		return 0, NewBuildError(artifact, StageRender, err)
	}
	data, err := d.Bytes()
	if err != nil {
		return 0, NewBuildError(artifact, StageRender, err)
	}
	if err := ctx.Err(); err != nil {
		return 0, NewBuildError(artifact, StageWrite, err)
	}
	if err := writeFile(path, data); err != nil {
		return 0, NewBuildError(artifact, StageWrite, err)
	}
	log.Info("presentation written", zap.String("path", path), zap.Int("slides", d.Len()))
	return d.Len(), nil
}

// BuildAll builds the memo, the survey deck and the investor deck in that
// order, stopping at the first failure.
func BuildAll(ctx context.Context, opts Options) ([]*Result, error) {
	builds := []func(context.Context, Options) (*Result, error){
		BuildMemo,
		BuildSurveyDeck,
		BuildInvestorDeck,
	}

	results := make([]*Result, 0, len(builds))
	for _, build := range builds {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := build(ctx, opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
