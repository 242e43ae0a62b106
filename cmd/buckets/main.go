package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clive/buckets/internal/config"
	"github.com/clive/buckets/internal/puzzle"
	"github.com/clive/buckets/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error loading config: %v", err)
	}

	switch cfg.UI {
	case config.UITUI:
		err = runTUI(cfg)
	default:
		err = runPlain(cfg)
	}
	if err != nil {
		config.Exitf("Error running puzzle: %v", err)
	}
}

// runPlain plays the line-oriented puzzle on stdin and stdout
func runPlain(cfg *config.Config) error {
	logger, closeLog, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	return playPlain(context.Background(), os.Stdin, os.Stdout, logger)
}

// playPlain runs one line-oriented session. A quit typed at a bucket prompt
// ends the program normally, like a win or a quit at the action prompt.
func playPlain(ctx context.Context, in io.Reader, out io.Writer, logger *slog.Logger) error {
	session := puzzle.NewSession(in, out, logger)
	if _, err := session.Run(ctx); err != nil && !errors.Is(err, puzzle.ErrQuit) {
		return err
	}
	return nil
}

// runTUI plays the puzzle full screen. Logs are dropped unless a log file is
// configured, since stderr shares the terminal.
func runTUI(cfg *config.Config) error {
	logger, closeLog, err := cfg.NewLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	p := tea.NewProgram(
		tui.NewRootModel(cfg, logger),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(tui.Model); ok {
		fmt.Print(m.Summary())
	}
	return nil
}
