package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mem-portfolio/docgen/pkg/docgen/content"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInvestorDeckCommand(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "deck.pptx")
	appendixPath := filepath.Join(dir, "data.xlsx")

	out, err := execute(t, "investor-deck", "-o", output, "--appendix", appendixPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "✓ Investor-grade presentation created successfully", lines[0])
	assert.Contains(t, out, "✓ File: "+output)
	assert.Contains(t, out, "✓ Total slides: 14")
	assert.FileExists(t, output)
	assert.FileExists(t, appendixPath)
}

func TestSurveyDeckMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "survey-deck", "-i", filepath.Join(dir, "nope.xlsx"), "-o", filepath.Join(dir, "s.pptx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
	assert.NoFileExists(t, filepath.Join(dir, "s.pptx"))
}

func TestContentCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "content", "export", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, content.MemoFile))

	out, err = execute(t, "content", "list", "--content", dir)
	require.NoError(t, err)
	assert.Contains(t, out, content.MemoFile+"\t"+filepath.Join(dir, content.MemoFile))

	out, err = execute(t, "content", "list")
	require.NoError(t, err)
	assert.Contains(t, out, content.SurveyDeckFile+"\tembedded")
}

func TestUnknownArgs(t *testing.T) {
	_, err := execute(t, "memo", "extra")
	assert.Error(t, err)
}
