package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Clear(); err != nil {
				return fail(err)
			}
			fmt.Println("✓ Signed out")
			return nil
		},
	}
}
