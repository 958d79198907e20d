package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shiftbridge/swapboard/pkg/session"
)

// LoginCmd creates the login command
func LoginCmd(app *AppContext) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in as an employee and store the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]

			if password == "" {
				entered, err := promptLine("Password: ")
				if err != nil {
					return err
				}
				password = entered
			}

			app.Logger.Debug("login command", zap.String("email", email))

			result, err := app.API.LoginEmployee(app.Ctx, email, password)
			if err != nil {
				return fail(err)
			}

			sess := &session.Session{Token: result.Token, Employee: result.Employee}
			if err := app.Sessions.Save(sess); err != nil {
				return fail(err)
			}

			fmt.Printf("\n✓ Signed in as %s (%s)\n", result.Employee.FullName, result.Employee.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")

	return cmd
}
