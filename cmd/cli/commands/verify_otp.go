package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VerifyOtpCmd creates the verifyOtp command
func VerifyOtpCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "verifyOtp <email> <code>",
		Short: "Verify the one-time code emailed during registration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.API.VerifyOTP(app.Ctx, args[0], args[1]); err != nil {
				return fail(err)
			}
			fmt.Println("✓ Account verified - you can now log in")
			return nil
		},
	}
}
