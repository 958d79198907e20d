package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shiftbridge/swapboard/pkg/core/services"
)

// ProposeMatchCmd creates the proposeMatch command
func ProposeMatchCmd(app *AppContext) *cobra.Command {
	var (
		shiftStart    string
		shiftEnd      string
		overtimeStart string
		overtimeEnd   string
	)

	cmd := &cobra.Command{
		Use:   "proposeMatch <request_id> <your_day_off>",
		Short: "Propose a day-off match against an open swap request",
		Long: `Propose a day-off match against an open swap request.

Your day off must fall on exactly the day the requester asked for;
the optional shift window describes the shift you would take in return.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID := args[0]

			sess, api, err := app.RequireSession()
			if err != nil {
				return fail(err)
			}

			input := services.MatchProposalInput{}
			if input.OriginalDayOff, err = parseWhen(args[1]); err != nil {
				return fail(err)
			}
			if input.ShiftStart, err = parseOptionalWhen(shiftStart); err != nil {
				return fail(err)
			}
			if input.ShiftEnd, err = parseOptionalWhen(shiftEnd); err != nil {
				return fail(err)
			}
			if input.OvertimeStart, err = parseOptionalWhen(overtimeStart); err != nil {
				return fail(err)
			}
			if input.OvertimeEnd, err = parseOptionalWhen(overtimeEnd); err != nil {
				return fail(err)
			}

			app.Logger.Debug("proposeMatch command", zap.String("request_id", requestID))

			board, err := services.LoadDayOffBoard(app.Ctx, api, app.Logger, sess.Employee)
			if err != nil {
				return fail(err)
			}

			for _, req := range board {
				if req.ID != requestID {
					continue
				}
				if err := services.SubmitMatchProposal(app.Ctx, api, app.Logger, sess.Employee, req, input, time.Now()); err != nil {
					return fail(err)
				}
				fmt.Printf("\n✓ Match proposal sent to %s\n", req.Requester.FullName)
				return nil
			}

			return fail(fmt.Errorf("no open request with id %s", requestID))
		},
	}

	cmd.Flags().StringVar(&shiftStart, "shift-start", "", "Optional shift start you would take")
	cmd.Flags().StringVar(&shiftEnd, "shift-end", "", "Optional shift end you would take")
	cmd.Flags().StringVar(&overtimeStart, "overtime-start", "", "Optional overtime start")
	cmd.Flags().StringVar(&overtimeEnd, "overtime-end", "", "Optional overtime end")

	return cmd
}
