package workflow

import (
	"errors"
	"fmt"
)

// ErrNotEnoughSamples is returned when template creation finds fewer than
// two sample documents
var ErrNotEnoughSamples = errors.New("template creation needs two sample documents")

// Stages at which a document can fail
const (
	StageValidate = "validate"
	StageOpen     = "open"
	StageExtract  = "extract"
)

// DocumentError reports a document that could not be processed
type DocumentError struct {
	Path  string
	Stage string
	Err   error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Path, e.Stage, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
