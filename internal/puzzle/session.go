package puzzle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/clive/buckets/internal/model"
)

// State is the session loop state
type State int

const (
	StateRunning State = iota
	StateWon
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// Session runs the line-oriented puzzle over a reader and a writer
type Session struct {
	id     string
	set    *model.Set
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger

	state State
	moves int
}

// NewSession creates a session with three empty buckets
func NewSession(in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		set:    model.NewSet(),
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger.With("session_id", id),
		state:  StateRunning,
	}
}

// ID returns the session identifier used in logs
func (s *Session) ID() string {
	return s.id
}

// Set returns the buckets owned by the session
func (s *Session) Set() *model.Set {
	return s.set
}

// State returns the current loop state
func (s *Session) State() State {
	return s.state
}

// Moves returns how many actions have been applied
func (s *Session) Moves() int {
	return s.moves
}

// Run renders the buckets and applies actions until the puzzle is solved or
// the player quits.
//
// Quitting at the action prompt returns StateQuit and a nil error. Typing
// "quit" at a bucket prompt, or closing the input, returns ErrQuit: callers
// should end the program without further output.
func (s *Session) Run(ctx context.Context) (State, error) {
	s.logger.Debug("session started", "buckets", s.set.String())
	for s.state == StateRunning {
		if err := ctx.Err(); err != nil {
			return s.state, err
		}
		if err := s.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				s.state = StateQuit
				s.logger.Info("session aborted", "moves", s.moves, "buckets", s.set.String(), "total", s.set.Total())
			}
			return s.state, err
		}
	}
	s.logger.Info("session finished", "state", s.state.String(), "moves", s.moves, "buckets", s.set.String(), "total", s.set.Total())
	return s.state, nil
}

// step runs one iteration of the loop: render, check for a win, then read and
// apply one action.
func (s *Session) step() error {
	if err := Render(s.out, s.set); err != nil {
		return fmt.Errorf("render buckets: %w", err)
	}
	if s.set.Solved() {
		fmt.Fprintln(s.out, MsgWin)
		s.state = StateWon
		return nil
	}

	line, err := s.readLine(PromptActionText)
	if err != nil {
		return err
	}
	action, err := ParseAction(line)
	if err != nil {
		s.reportInvalid(err)
		return nil
	}

	switch action {
	case ActionFill:
		b, err := s.selectBucket(PromptFillText)
		if err != nil {
			return err
		}
		b.Fill()
	case ActionEmpty:
		b, err := s.selectBucket(PromptEmptyText)
		if err != nil {
			return err
		}
		b.Empty()
	case ActionPour:
		from, err := s.selectBucket(PromptPourFromText)
		if err != nil {
			return err
		}
		to, err := s.selectBucket(PromptPourIntoText)
		if err != nil {
			return err
		}
		moved := from.PourInto(to)
		s.logger.Debug("poured", "from", from.Capacity(), "to", to.Capacity(), "amount", moved)
	case ActionQuit:
		fmt.Fprintln(s.out, MsgGoodbye)
		s.state = StateQuit
		return nil
	}

	s.moves++
	s.logger.Debug("move applied", "action", action.String(), "move", s.moves, "buckets", s.set.String())
	return nil
}

// selectBucket prompts until a bucket identifier is typed. "quit" prints the
// farewell and returns ErrQuit.
func (s *Session) selectBucket(prompt string) (*model.Bucket, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return nil, err
		}
		b, err := ParseChoice(s.set, line)
		switch {
		case err == nil:
			return b, nil
		case errors.Is(err, ErrQuit):
			fmt.Fprintln(s.out, MsgGoodbye)
			return nil, ErrQuit
		default:
			s.reportInvalid(err)
		}
	}
}

// readLine writes the prompt and reads one line of any length. End of input
// is treated as a request to quit.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, MsgGoodbye)
			return "", ErrQuit
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) reportInvalid(err error) {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		s.logger.Debug("invalid input", "prompt", string(inputErr.Prompt), "input", inputErr.Input)
		fmt.Fprintln(s.out, inputErr.Message())
		return
	}
	fmt.Fprintln(s.out, err)
}
