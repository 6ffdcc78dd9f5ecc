package pipeline

import (
	"errors"
	"fmt"
)

// Stage names a pipeline step for failure attribution.
type Stage string

const (
	StageNormalize  Stage = "normalize"
	StageTempo      Stage = "tempo"
	StageReconcile  Stage = "reconcile"
	StageSynthesize Stage = "synthesize"
	StageExport     Stage = "export"
)

var (
	// ErrDecode reports an input that cannot be parsed as audio.
	ErrDecode = errors.New("cannot decode input")
	// ErrEncode reports an export that could not be written.
	ErrEncode = errors.New("cannot encode output")
)

// StageError is a pair-local failure: it never aborts the batch.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
