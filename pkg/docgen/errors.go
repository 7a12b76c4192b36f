package docgen

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidContent indicates a content file could not be read, parsed or
// validated.
var ErrInvalidContent = errors.New("invalid content")

// Build stages reported in BuildError.
const (
	StageContent = "content"
	StageInput   = "input"
	StageRender  = "render"
	StageWrite   = "write"
)

// BuildError represents a failure while building one artifact.
type BuildError struct {
	Artifact Artifact
	Stage    string // "content", "input", "render", "write"
	Err      error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build error in %s (%s): %v", e.Artifact, e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(artifact Artifact, stage string, err error) *BuildError {
	return &BuildError{
		Artifact: artifact,
		Stage:    stage,
		Err:      err,
	}
}
