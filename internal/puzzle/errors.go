package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrQuit signals that the player asked to leave from a bucket prompt.
	// It unwinds every pending prompt and ends the program.
	ErrQuit = errors.New("puzzle: quit requested")

	// ErrInvalidInput is wrapped by every InputError
	ErrInvalidInput = errors.New("puzzle: invalid input")
)

// InputError describes an unrecognized token typed at a prompt
type InputError struct {
	Prompt PromptKind
	Input  string
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("puzzle: invalid %s input %q", e.Prompt, e.Input)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// Message returns the line shown to the player for this error
func (e *InputError) Message() string {
	if e.Prompt == PromptAction {
		return MsgInvalidAction
	}
	return MsgInvalidBucket
}

// PromptKind identifies which prompt rejected an input
type PromptKind string

const (
	PromptAction PromptKind = "action"
	PromptBucket PromptKind = "bucket"
)
