package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// WhoamiCmd creates the whoami command
func WhoamiCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := app.RequireSession()
			if err != nil {
				return fail(err)
			}
			fmt.Printf("%s (%s)\n", sess.Employee.FullName, sess.Employee.Email)
			return nil
		},
	}
}
