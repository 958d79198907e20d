package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ResendOtpCmd creates the resendOtp command
func ResendOtpCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "resendOtp <email>",
		Short: "Request a fresh verification code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.API.ResendOTP(app.Ctx, args[0]); err != nil {
				return fail(err)
			}
			fmt.Printf("✓ A new code is on its way to %s\n", args[0])
			return nil
		},
	}
}
