package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shiftbridge/swapboard/cmd/cli/commands"
	"github.com/shiftbridge/swapboard/internal/config"
	"github.com/shiftbridge/swapboard/pkg/clients/apiclient"
	"github.com/shiftbridge/swapboard/pkg/session"
	"github.com/shiftbridge/swapboard/pkg/utils/logging"
)

var (
	verbose bool
	app     = &commands.AppContext{}
	cancel  context.CancelFunc
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "swapboard",
		Short: "ShiftBridge swap board - browse and negotiate shift and day-off swaps",
		Long: `A terminal client for the ShiftBridge scheduling API.

Sign in once with 'login', then browse open swap requests from colleagues,
filter and sort them, and submit counter-offers or day-off match proposals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
			if cancel != nil {
				cancel()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose console logging")

	rootCmd.AddCommand(commands.LoginCmd(app))
	rootCmd.AddCommand(commands.LogoutCmd(app))
	rootCmd.AddCommand(commands.WhoamiCmd(app))
	rootCmd.AddCommand(commands.RegisterCompanyCmd(app))
	rootCmd.AddCommand(commands.RegisterEmployeeCmd(app))
	rootCmd.AddCommand(commands.VerifyOtpCmd(app))
	rootCmd.AddCommand(commands.ResendOtpCmd(app))
	rootCmd.AddCommand(commands.ForgotPasswordCmd(app))
	rootCmd.AddCommand(commands.ResetPasswordCmd(app))
	rootCmd.AddCommand(commands.ListShiftSwapsCmd(app))
	rootCmd.AddCommand(commands.ListDayOffSwapsCmd(app))
	rootCmd.AddCommand(commands.OfferSwapCmd(app))
	rootCmd.AddCommand(commands.ProposeMatchCmd(app))
	rootCmd.AddCommand(commands.BoardCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, session store, and API client. The
// context is cancelled on interrupt so in-flight requests are aborted
// rather than left to finish against a dead UI.
func initApp() error {
	var err error

	app.Logger, err = logging.InitLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app.Logger.Debug("Loading configuration")
	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded", zap.String("api_base_url", app.Cfg.APIBaseURL))

	app.Sessions, err = session.NewStore(app.Cfg.SessionFile)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	app.API = apiclient.New(app.Cfg, app.Logger)

	return nil
}
