package puzzle

import (
	"strings"

	"github.com/clive/buckets/internal/model"
)

// Action is one of the top-level commands
type Action int

const (
	ActionFill Action = iota
	ActionEmpty
	ActionPour
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionFill:
		return "fill"
	case ActionEmpty:
		return "empty"
	case ActionPour:
		return "pour"
	case ActionQuit:
		return "quit"
	}
	return "unknown"
}

// Prompts and messages shown to the player
const (
	PromptActionText   = "(F)ill the bucket, (E)mpty the bucket, (P)our one bucket into another, or (Q)uit: "
	PromptFillText     = "Select a bucket (8, 5, 3, or QUIT): "
	PromptEmptyText    = "Select a bucket to empty (8, 5, 3, or QUIT): "
	PromptPourFromText = "Select the bucket to pour from (8, 5, 3, or QUIT): "
	PromptPourIntoText = "Select the bucket to pour into (8, 5, 3, or QUIT): "
	MsgInvalidAction   = "Invalid choice. Please enter F, E, P, or Q."
	MsgInvalidBucket   = "Invalid input. Please enter 8, 5, or 3."
	MsgWin             = "Congratulations! You got exactly 4 liters of water!"
	MsgGoodbye         = "Goodbye!"
	quitToken          = "quit"
)

// ParseAction maps a single letter (f, e, p, q; any case) to an Action.
// Surrounding whitespace is ignored.
func ParseAction(input string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "f":
		return ActionFill, nil
	case "e":
		return ActionEmpty, nil
	case "p":
		return ActionPour, nil
	case "q":
		return ActionQuit, nil
	}
	return 0, &InputError{Prompt: PromptAction, Input: input}
}

// ParseChoice resolves a bucket identifier typed at a bucket prompt.
// It returns ErrQuit for "quit" in any case and an *InputError for anything
// that is not a bucket identifier.
func ParseChoice(set *model.Set, input string) (*model.Bucket, error) {
	choice := strings.TrimSpace(input)
	if b, ok := set.Lookup(choice); ok {
		return b, nil
	}
	if strings.EqualFold(choice, quitToken) {
		return nil, ErrQuit
	}
	return nil, &InputError{Prompt: PromptBucket, Input: input}
}
