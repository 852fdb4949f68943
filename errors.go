package skipscan

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is matched by every error reporting a missing text or pattern.
var ErrEmptyInput = errors.New("skipscan: empty input")

// EmptyInputError reports that a required argument was empty.
type EmptyInputError struct {
	// Arg names the offending argument, "text" or "pattern".
	Arg string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("skipscan: %s must not be empty", e.Arg)
}

// Is makes errors.Is(err, ErrEmptyInput) hold.
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

func validate(text, pattern string) error {
	if len(text) == 0 {
		return &EmptyInputError{Arg: "text"}
	}
	if len(pattern) == 0 {
		return &EmptyInputError{Arg: "pattern"}
	}
	return nil
}
