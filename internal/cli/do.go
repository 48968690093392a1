package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/laulijun/udo/internal/app"
	"github.com/laulijun/udo/internal/domain"
)

// newDoCommand creates the do command for one-shot execution.
func newDoCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "do <command...>",
		Short: "Run a single organizer command and exit",
		Long: `Run one free-text organizer command without opening the console.

Examples:
  udo do add buy milk by 21/05/2024
  udo do "add standup #work from 9:00am to 9:30am on 20/05/2024"
  udo do delete 3
  udo do undo`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Engine.Load(); err != nil {
				return err
			}

			raw := strings.Join(args, " ")
			res := c.Engine.Execute(c.Parser.Parse(raw))
			PrintResult(cmd.OutOrStdout(), res)

			// One-shot runs persist mutations immediately; the console
			// equivalent waits for an explicit save or exit.
			if res.Exec == domain.ExecSuccess && mutating(res.Command) {
				save := c.Engine.Execute(&domain.Intent{
					Command: domain.CmdSave,
					Status:  domain.ParseSuccess,
				})
				if save.Exec == domain.ExecFail {
					PrintResult(cmd.OutOrStdout(), save)
				}
			}
			return nil
		},
	}
}

// mutating reports whether a command changes stored items.
func mutating(cmd domain.Command) bool {
	return cmd.IsAdd() || cmd == domain.CmdDelete || cmd == domain.CmdEdit
}
