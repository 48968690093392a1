// Package cli provides the command-line interface for udo.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/laulijun/udo/internal/app"
	"github.com/laulijun/udo/internal/tui"
)

// launchTUIFunc launches the interactive console, overridable in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for udo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "udo",
		Short: "Personal organizer driven by free-text commands",
		Long: `udo keeps your events, tasks and plans in one place.

Items are described in plain text: dates as d/m/y, times as h:mm
with am/pm, tags with a leading '#'. For example:

  add team standup #work from 9:00am to 9:30am on 20/05/2024
  add buy milk by 21/05/2024
  list #work

Running udo without arguments opens the interactive console.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddCommand(
		newDoCommand(c),
		newListCommand(c),
	)

	return root
}

// launchTUI starts the interactive console backed by the engine.
func launchTUI(c *app.Container) error {
	if err := c.Engine.Load(); err != nil {
		return err
	}
	model := tui.New(c.Parser, c.Engine, c.Clock)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
