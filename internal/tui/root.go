package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/clive/buckets/internal/config"
	"github.com/clive/buckets/internal/model"
	"github.com/clive/buckets/internal/puzzle"
)

// phase is the prompt the model is waiting on
type phase int

const (
	phaseAction   phase = iota // (F)ill, (E)mpty, (P)our or (Q)uit
	phaseFill                  // bucket to fill
	phaseEmpty                 // bucket to empty
	phasePourFrom              // bucket to pour from
	phasePourTo                // bucket to pour into
	phaseDone                  // won, quit or aborted
)

// Outcome is how the program ended
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeQuit    // q at the action prompt
	OutcomeAborted // quit at a bucket prompt, or ctrl+c
)

const debugPanelWidth = 40

// Model is the root Bubble Tea model
type Model struct {
	// Terminal dimensions
	width  int
	height int

	id       string
	set      *model.Set
	phase    phase
	pourFrom *model.Bucket
	moves    int
	outcome  Outcome

	// Last status line and whether it reports an error
	status    string
	statusErr bool

	input  textinput.Model
	keys   KeyMap
	help   help.Model
	debug  DebugPanel
	logger *slog.Logger
}

// NewRootModel creates the model with three empty buckets
func NewRootModel(cfg *config.Config, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "f, e, p or q"
	ti.PlaceholderStyle = DimStyle
	ti.CharLimit = 16
	ti.Width = 20
	ti.Focus()

	id := uuid.NewString()
	return Model{
		id:     id,
		set:    model.NewSet(),
		phase:  phaseAction,
		input:  ti,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		debug:  NewDebugPanel(cfg.Debug),
		logger: logger.With("session_id", id, "ui", string(config.UITUI)),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Outcome reports how the program ended
func (m Model) Outcome() Outcome {
	return m.outcome
}

// Set returns the buckets
func (m Model) Set() *model.Set {
	return m.set
}

// Moves returns how many actions have been applied
func (m Model) Moves() int {
	return m.moves
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.phase == phaseDone {
			return m, tea.Quit
		}
		switch {
		case key.Matches(msg, m.keys.Interrupt):
			return m.finish(OutcomeAborted, puzzle.MsgGoodbye)
		case key.Matches(msg, m.keys.Submit):
			value := m.input.Value()
			m.input.Reset()
			return m.submit(value)
		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit applies one line of input to the current prompt
func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	m.status, m.statusErr = "", false

	if m.phase == phaseAction {
		action, err := puzzle.ParseAction(value)
		if err != nil {
			return m.reject(err), nil
		}
		switch action {
		case puzzle.ActionFill:
			m.phase = phaseFill
		case puzzle.ActionEmpty:
			m.phase = phaseEmpty
		case puzzle.ActionPour:
			m.phase = phasePourFrom
		case puzzle.ActionQuit:
			return m.finish(OutcomeQuit, puzzle.MsgGoodbye)
		}
		m.input.Placeholder = strings.Join(m.set.IDs(), ", ") + " or quit"
		return m, nil
	}

	b, err := puzzle.ParseChoice(m.set, value)
	if errors.Is(err, puzzle.ErrQuit) {
		return m.finish(OutcomeAborted, puzzle.MsgGoodbye)
	}
	if err != nil {
		return m.reject(err), nil
	}

	switch m.phase {
	case phaseFill:
		b.Fill()
		m.debug.AddEvent("fill", b.String())
	case phaseEmpty:
		b.Empty()
		m.debug.AddEvent("empty", b.String())
	case phasePourFrom:
		m.pourFrom = b
		m.phase = phasePourTo
		return m, nil
	case phasePourTo:
		moved := m.pourFrom.PourInto(b)
		m.debug.AddEvent("pour", fmt.Sprintf("%d -> %d (%dL)", m.pourFrom.Capacity(), b.Capacity(), moved))
		m.pourFrom = nil
	}

	m.moves++
	m.phase = phaseAction
	m.input.Placeholder = "f, e, p or q"
	m.logger.Debug("move applied", "move", m.moves, "buckets", m.set.String())

	if m.set.Solved() {
		return m.finish(OutcomeWon, puzzle.MsgWin)
	}
	return m, nil
}

func (m Model) reject(err error) Model {
	var inputErr *puzzle.InputError
	if errors.As(err, &inputErr) {
		m.status = inputErr.Message()
		m.debug.AddEvent("invalid", fmt.Sprintf("%s %q", inputErr.Prompt, inputErr.Input))
	} else {
		m.status = err.Error()
	}
	m.statusErr = true
	return m
}

func (m Model) finish(outcome Outcome, message string) (tea.Model, tea.Cmd) {
	m.outcome = outcome
	m.phase = phaseDone
	m.status, m.statusErr = message, false
	m.input.Blur()
	m.logger.Info("session finished", "outcome", outcome.String(), "moves", m.moves, "buckets", m.set.String())
	return m, tea.Quit
}

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeQuit:
		return "quit"
	case OutcomeAborted:
		return "aborted"
	}
	return "unknown"
}

// prompt returns the text shown before the input for the current phase
func (m Model) prompt() string {
	switch m.phase {
	case phaseAction:
		return puzzle.PromptActionText
	case phaseFill:
		return puzzle.PromptFillText
	case phaseEmpty:
		return puzzle.PromptEmptyText
	case phasePourFrom:
		return puzzle.PromptPourFromText
	case phasePourTo:
		return puzzle.PromptPourIntoText
	}
	return ""
}

func (m Model) View() string {
	var sections []string
	sections = append(sections,
		HeaderStyle.Render("Bucket Puzzle"),
		m.renderDiagram(),
		LevelsStyle.Render(fmt.Sprintf("%s   moves: %d", m.set.String(), m.moves)),
	)

	if m.phase != phaseDone {
		sections = append(sections, InputPromptStyle.Render(m.prompt())+m.input.View())
	}
	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}
	if m.phase != phaseDone {
		sections = append(sections, HelpPanelStyle.Render(m.help.View(m.keys)))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if !m.debug.IsEnabled() {
		return body
	}
	height := max(m.height, lipgloss.Height(body))
	return lipgloss.JoinHorizontal(lipgloss.Top, body, m.debug.Render(debugPanelWidth, height))
}

// renderDiagram draws the shared ASCII diagram with the water cells colored
func (m Model) renderDiagram() string {
	diagram := strings.TrimRight(puzzle.Diagram(m.set), "\n")
	water := strings.Repeat(puzzle.WaterCell, puzzle.CellWidth)
	diagram = strings.ReplaceAll(diagram, "|"+water+"|", "|"+WaterStyle.Render(water)+"|")
	return DiagramStyle.Render(diagram)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	switch {
	case m.statusErr:
		return ErrorStyle.Render(m.status)
	case m.outcome == OutcomeWon:
		return SuccessStyle.Render(m.status)
	default:
		return FarewellStyle.Render(m.status)
	}
}

// Summary is printed after the program exits: the final diagram and the
// closing message.
func (m Model) Summary() string {
	var sb strings.Builder
	sb.WriteString(puzzle.Diagram(m.set))
	if m.status != "" && !m.statusErr {
		sb.WriteString("\n" + m.status + "\n")
	}
	return sb.String()
}
