package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ForgotPasswordCmd creates the forgotPassword command
func ForgotPasswordCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "forgotPassword <email>",
		Short: "Start a password reset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.API.ForgotPassword(app.Ctx, args[0]); err != nil {
				return fail(err)
			}
			fmt.Printf("✓ If an account exists for %s, a reset token has been emailed\n", args[0])
			return nil
		},
	}
}
