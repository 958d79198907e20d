package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ResetPasswordCmd creates the resetPassword command
func ResetPasswordCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "resetPassword <token>",
		Short: "Complete a password reset with the emailed token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := promptLine("New password: ")
			if err != nil {
				return err
			}
			if len(password) < 8 {
				return fail(fmt.Errorf("password must be at least 8 characters"))
			}

			if err := app.API.ResetPassword(app.Ctx, args[0], password); err != nil {
				return fail(err)
			}
			fmt.Println("✓ Password updated - you can now log in")
			return nil
		},
	}
}
