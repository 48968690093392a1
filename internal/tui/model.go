// Package tui implements the interactive organizer console.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/laulijun/udo/internal/domain"
	"github.com/laulijun/udo/internal/engine"
	"github.com/laulijun/udo/internal/parser"
)

// daysAhead is how far the upcoming panel looks past today.
const daysAhead = 3

// Model is the bubbletea model for the console.
type Model struct {
	parser *parser.Parser
	engine *engine.Engine
	clock  domain.Clock

	input  textinput.Model
	help   help.Model
	keys   KeyMap
	styles Styles

	feedback    string
	feedbackErr bool
	listing     []domain.Item
	hasListing  bool

	width    int
	quitting bool
}

// New creates a console model over a loaded engine.
func New(p *parser.Parser, e *engine.Engine, clock domain.Clock) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "add buy milk by 21/05/2024"
	input.Focus()

	return Model{
		parser: p,
		engine: e,
		clock:  clock,
		input:  input,
		help:   help.New(),
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			// Same as typing "exit": items are saved first.
			m.engine.Execute(&domain.Intent{Command: domain.CmdExit, Status: domain.ParseSuccess})
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses and executes the typed command.
func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return m, nil
	}
	m.input.Reset()

	res := m.engine.Execute(m.parser.Parse(raw))
	m.feedback, m.feedbackErr = feedbackFor(res)

	m.hasListing = false
	if res.Command == domain.CmdList && res.Exec == domain.ExecSuccess {
		m.listing = res.Items
		m.hasListing = true
	}

	if res.Command == domain.CmdExit && res.Exec == domain.ExecSuccess {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// feedbackFor renders one status line for an executed command.
func feedbackFor(res *domain.Result) (msg string, isErr bool) {
	if res.Parse == domain.ParseFail {
		return fmt.Sprintf("could not understand the %s command", res.Command), true
	}
	if res.Exec == domain.ExecFail {
		return fmt.Sprintf("%s failed", res.Command), true
	}

	switch {
	case res.Command.IsAdd():
		return fmt.Sprintf("added %s %d: %s", res.Item.Type, res.Item.ID, res.Item.Title), false
	case res.Command == domain.CmdDelete:
		return fmt.Sprintf("deleted %s %d: %s", res.Item.Type, res.Item.ID, res.Item.Title), false
	case res.Command == domain.CmdEdit:
		return fmt.Sprintf("edited %s %d: %s", res.Item.Type, res.Item.ID, res.Item.Title), false
	case res.Command == domain.CmdList:
		return fmt.Sprintf("%d items", len(res.Items)), false
	case res.Command == domain.CmdSave:
		return "saved", false
	case res.Command == domain.CmdExit:
		return "bye", false
	default:
		return fmt.Sprintf("%s done", res.Command), false
	}
}
