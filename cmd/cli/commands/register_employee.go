package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftbridge/swapboard/pkg/clients/apiclient"
)

// RegisterEmployeeCmd creates the registerEmployee command
func RegisterEmployeeCmd(app *AppContext) *cobra.Command {
	var reg apiclient.EmployeeRegistration

	cmd := &cobra.Command{
		Use:   "registerEmployee",
		Short: "Register an employee account under a company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if reg.Password == "" {
				entered, err := promptLine("Password: ")
				if err != nil {
					return err
				}
				reg.Password = entered
			}

			if err := validate.Struct(reg); err != nil {
				return fail(fmt.Errorf("registration details are incomplete or invalid: %w", err))
			}

			if err := app.API.RegisterEmployee(app.Ctx, reg); err != nil {
				return fail(err)
			}

			fmt.Printf("\n✓ Account created. Check %s for a verification code, then run 'swapboard verifyOtp %s <code>'.\n", reg.Email, reg.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.FullName, "name", "", "Your full name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&reg.Password, "password", "", "Password (prompted when omitted)")
	cmd.Flags().StringVar(&reg.CompanyCode, "company-code", "", "Company invite code")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("company-code")

	return cmd
}
