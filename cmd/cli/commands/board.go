package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftbridge/swapboard/pkg/tui"
)

// BoardCmd creates the board command, which launches the interactive swap board
func BoardCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "board <shifts|dayoffs>",
		Short: "Open the interactive swap board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind tui.BoardKind
			switch args[0] {
			case "shifts":
				kind = tui.ShiftBoard
			case "dayoffs":
				kind = tui.DayOffBoard
			default:
				return fmt.Errorf("unknown board %q, use shifts or dayoffs", args[0])
			}

			sess, api, err := app.RequireSession()
			if err != nil {
				return fail(err)
			}

			return tui.Run(app.Ctx, kind, api, app.Logger, sess.Employee)
		},
	}
}
