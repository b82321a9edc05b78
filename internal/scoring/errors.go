package scoring

import (
	"errors"
	"fmt"
)

// ErrNoMatch matches every NoMatchError via errors.Is.
var ErrNoMatch = errors.New("no matching materials")

// Stage names the filter that emptied the candidate set.
type Stage string

const (
	StageCategory  Stage = "category"
	StageFragility Stage = "fragility"
)

// NoMatchError means no recommendation is possible for the request. It is a
// legitimate outcome, not an infrastructure failure.
type NoMatchError struct {
	Stage Stage
	Value string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no materials satisfy %s %q", e.Stage, e.Value)
}

func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}
