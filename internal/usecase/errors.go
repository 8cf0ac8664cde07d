package usecase

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrPlayerNotFound        = errors.New("player not found")
	ErrLookupFailed          = errors.New("lookup failed")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// PlayerNotFoundError lists every name that did not resolve, with close
// matches from the directory keyed by the missing name.
type PlayerNotFoundError struct {
	Missing     []string
	Suggestions map[string][]string
}

func (e *PlayerNotFoundError) Error() string {
	if e == nil || len(e.Missing) == 0 {
		return ErrPlayerNotFound.Error()
	}
	return ErrPlayerNotFound.Error() + ": " + strings.Join(e.Missing, ", ")
}

func (e *PlayerNotFoundError) Unwrap() error {
	return ErrPlayerNotFound
}
