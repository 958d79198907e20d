package commands

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/shiftbridge/swapboard/pkg/clients/apiclient"
)

var validate = validator.New()

// RegisterCompanyCmd creates the registerCompany command
func RegisterCompanyCmd(app *AppContext) *cobra.Command {
	var reg apiclient.CompanyRegistration

	cmd := &cobra.Command{
		Use:   "registerCompany",
		Short: "Register a new company account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if reg.Password == "" {
				entered, err := promptLine("Password: ")
				if err != nil {
					return err
				}
				reg.Password = entered
			}

			// Validate locally before any network call
			if err := validate.Struct(reg); err != nil {
				return fail(fmt.Errorf("registration details are incomplete or invalid: %w", err))
			}

			if err := app.API.RegisterCompany(app.Ctx, reg); err != nil {
				return fail(err)
			}

			fmt.Printf("\n✓ Company registered. Check %s for a verification code, then run 'swapboard verifyOtp %s <code>'.\n", reg.Email, reg.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.CompanyName, "company", "", "Company name")
	cmd.Flags().StringVar(&reg.FullName, "name", "", "Your full name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&reg.Password, "password", "", "Password (prompted when omitted)")
	cmd.MarkFlagRequired("company")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}
