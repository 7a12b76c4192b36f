// Package docgen builds the financing memorandum, the survey presentation
// and the investor deck.
package docgen

import (
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mem-portfolio/docgen/pkg/docgen/content"
)

// Default file names, relative to Options.OutputDir.
const (
	DefaultMemoFile         = "MEM_Inc_VC_Financing_Memorandum.docx"
	DefaultSurveyDeckFile   = "PPM_Survey_Presentation.pptx"
	DefaultInvestorDeckFile = "PPM_Survey_Investor_Deck.pptx"
	DefaultSurveyFile       = "Question for PPM survey.xlsx"
)

// DefaultCreator is written to the document properties.
const DefaultCreator = "MEM, Inc."

// Options configures the builders.
type Options struct {
	// OutputDir holds every output whose path is not set explicitly.
	OutputDir string
	// MemoPath, SurveyDeckPath and InvestorDeckPath override the default
	// output file of each artifact.
	MemoPath         string
	SurveyDeckPath   string
	InvestorDeckPath string
	// SurveyPath is the survey workbook read before the survey deck.
	SurveyPath string
	// Sheet is the survey worksheet. Empty selects Sheet1.
	Sheet string
	// ContentDir holds content files overriding the embedded ones.
	ContentDir string
	// PDF also writes the memo as a PDF next to the document.
	PDF bool
	// AppendixPath, when set, receives the investor deck chart data.
	AppendixPath string
	// Creator is written to the document properties.
	Creator string
	// Now supplies the memo date. If nil, time.Now is used.
	Now func() time.Time
	// Logger receives progress logs. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	return Options{
		OutputDir:  ".",
		SurveyPath: DefaultSurveyFile,
		Creator:    DefaultCreator,
	}
}

func (o Options) output(path, name string) string {
	if path != "" {
		return path
	}
	return filepath.Join(o.OutputDir, name)
}

// MemoOutput returns the memo document path.
func (o Options) MemoOutput() string {
	return o.output(o.MemoPath, DefaultMemoFile)
}

// PDFOutput returns the memo PDF path: the memo path with a .pdf extension.
func (o Options) PDFOutput() string {
	p := o.MemoOutput()
	return strings.TrimSuffix(p, filepath.Ext(p)) + ".pdf"
}

// SurveyDeckOutput returns the survey presentation path.
func (o Options) SurveyDeckOutput() string {
	return o.output(o.SurveyDeckPath, DefaultSurveyDeckFile)
}

// InvestorDeckOutput returns the investor deck path.
func (o Options) InvestorDeckOutput() string {
	return o.output(o.InvestorDeckPath, DefaultInvestorDeckFile)
}

// SurveyInput returns the survey workbook path.
func (o Options) SurveyInput() string {
	if o.SurveyPath != "" {
		return o.SurveyPath
	}
	return DefaultSurveyFile
}

// Clock returns the configured time source.
func (o Options) Clock() func() time.Time {
	if o.Now != nil {
		return o.Now
	}
	return time.Now
}

// Log returns the configured logger.
func (o Options) Log() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// Content returns the content source.
func (o Options) Content() content.Source {
	return content.Source{Dir: o.ContentDir}
}

func (o Options) creator() string {
	if o.Creator != "" {
		return o.Creator
	}
	return DefaultCreator
}
