package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/laulijun/udo/internal/app"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List stored items",
		Long: `List stored items, newest day last.

Examples:
  udo list              items for today
  udo list all          everything
  udo list #work        items tagged work
  udo list 20/05/2024   items for one day
  udo list 20/05/2024 22/05/2024
                        items inside a range`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Engine.Load(); err != nil {
				return err
			}

			// Bare "udo list" shows today.
			raw := "list day"
			if len(args) > 0 {
				raw = "list " + strings.Join(args, " ")
			}
			res := c.Engine.Execute(c.Parser.Parse(raw))
			PrintResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
