// Package content holds the text of the memorandum and the two decks as
// embedded YAML and loads it, optionally from an override directory.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mem-portfolio/docgen/pkg/docgen/models"
)

//go:embed data/*.yaml
var embedded embed.FS

// File names inside the embedded data directory and any override directory.
const (
	MemoFile         = "memo.yaml"
	SurveyDeckFile   = "survey_deck.yaml"
	InvestorDeckFile = "investor_deck.yaml"
)

// Source resolves content files. A file present in Dir wins over the
// embedded copy of the same name; the zero value reads embedded content only.
type Source struct {
	Dir string
}

// Memo loads and validates the memorandum content.
func (s Source) Memo() (models.Memo, error) {
	var m models.Memo
	if err := s.decode(MemoFile, &m); err != nil {
		return models.Memo{}, err
	}
	if err := m.Validate(); err != nil {
		return models.Memo{}, fmt.Errorf("%s: %w", MemoFile, err)
	}
	return m, nil
}

// SurveyDeck loads and validates the survey presentation content.
func (s Source) SurveyDeck() (models.Deck, error) {
	return s.deck(SurveyDeckFile)
}

// InvestorDeck loads and validates the investor deck content.
func (s Source) InvestorDeck() (models.Deck, error) {
	return s.deck(InvestorDeckFile)
}

func (s Source) deck(name string) (models.Deck, error) {
	var d models.Deck
	if err := s.decode(name, &d); err != nil {
		return models.Deck{}, err
	}
	if err := d.Validate(); err != nil {
		return models.Deck{}, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

// Origin reports where name would be read from: the override path, or
// "embedded".
func (s Source) Origin(name string) string {
	if p, ok := s.override(name); ok {
		return p
	}
	return "embedded"
}

func (s Source) override(name string) (string, bool) {
	if s.Dir == "" {
		return "", false
	}
	p := filepath.Join(s.Dir, name)
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}

func (s Source) read(name string) ([]byte, error) {
	if p, ok := s.override(name); ok {
		return os.ReadFile(p)
	}
	return embedded.ReadFile("data/" + name)
}

func (s Source) decode(name string, out interface{}) error {
	data, err := s.read(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// Names lists the embedded content files.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(embedded, "data")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// Export writes the embedded content files into dir so they can be edited
// and passed back as an override directory. Existing files are kept unless
// overwrite is set.
func Export(dir string, overwrite bool) ([]string, error) {
	names, err := Names()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	var written []string
	for _, name := range names {
		dst := filepath.Join(dir, name)
		if _, err := os.Stat(dst); err == nil && !overwrite {
			continue
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return written, err
		}
		data, err := embedded.ReadFile("data/" + name)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", dst, err)
		}
		written = append(written, dst)
	}
	return written, nil
}
