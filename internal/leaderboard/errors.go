package leaderboard

import (
	"errors"
	"fmt"
)

// ErrTableNotFound is returned (wrapped in a ParseError) when the document
// has no leaderboard table.
var ErrTableNotFound = errors.New("leaderboard table not found")

// ParseError is a pipeline-fatal failure to turn the document into results.
type ParseError struct {
	Stage string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("leaderboard: %s: %s", e.Stage, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
