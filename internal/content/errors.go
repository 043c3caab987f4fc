package content

import (
	"errors"
	"strings"
)

var (
	ErrNotFound       = errors.New("content file not found")
	ErrInvalidContent = errors.New("invalid content")
)

// ValidationError lists every problem found in a content file.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Problems) == 0 {
		return ErrInvalidContent.Error()
	}
	return ErrInvalidContent.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidContent
}
