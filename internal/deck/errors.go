package deck

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is returned when a cards file has no playable cards
	ErrEmptyTable = errors.New("cards file contains no playable cards")

	// ErrInvalidDuration matches any *InvalidDurationError
	ErrInvalidDuration = errors.New("invalid card duration")

	// ErrArenaTooLarge matches any *AllocationError
	ErrArenaTooLarge = errors.New("cards file too large to load")

	// ErrIndexOutOfRange is returned by table accessors for a bad card index
	ErrIndexOutOfRange = errors.New("card index out of range")

	// ErrReleased is returned by table accessors after Release
	ErrReleased = errors.New("card table has been released")
)

// InvalidDurationError reports a card line whose time field is zero or not a number
type InvalidDurationError struct {
	Line   int    // 1-based line number in the cards file
	Prompt string // Prompt text of the offending card
	Field  string // Raw text found after the delimiter
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("line %d: invalid time %q for card %q", e.Line, e.Field, e.Prompt)
}

func (e *InvalidDurationError) Is(target error) bool {
	return target == ErrInvalidDuration
}

// AllocationError reports that the prompt arena for a file would exceed the allowed size
type AllocationError struct {
	Lines  int
	Stride int
	Limit  int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("prompt arena for %d lines of width %d exceeds limit of %d bytes",
		e.Lines, e.Stride, e.Limit)
}

func (e *AllocationError) Is(target error) bool {
	return target == ErrArenaTooLarge
}

// IOError wraps a failure reading or rewinding the cards stream
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("error during %s of cards file: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
