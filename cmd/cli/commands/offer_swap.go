package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shiftbridge/swapboard/pkg/core/services"
)

// OfferSwapCmd creates the offerSwap command
func OfferSwapCmd(app *AppContext) *cobra.Command {
	var (
		overtimeStart string
		overtimeEnd   string
	)

	cmd := &cobra.Command{
		Use:   "offerSwap <request_id> <shift_start> <shift_end>",
		Short: "Submit a counter-offer against an open shift swap request",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID := args[0]

			sess, api, err := app.RequireSession()
			if err != nil {
				return fail(err)
			}

			input := services.CounterOfferInput{}
			if input.ShiftStart, err = parseWhen(args[1]); err != nil {
				return fail(err)
			}
			if input.ShiftEnd, err = parseWhen(args[2]); err != nil {
				return fail(err)
			}
			if input.OvertimeStart, err = parseOptionalWhen(overtimeStart); err != nil {
				return fail(err)
			}
			if input.OvertimeEnd, err = parseOptionalWhen(overtimeEnd); err != nil {
				return fail(err)
			}

			app.Logger.Debug("offerSwap command", zap.String("request_id", requestID))

			// The composer gates on the live request state, so fetch the board first
			board, err := services.LoadShiftBoard(app.Ctx, api, app.Logger, sess.Employee)
			if err != nil {
				return fail(err)
			}

			for _, req := range board {
				if req.ID != requestID {
					continue
				}
				if err := services.SubmitCounterOffer(app.Ctx, api, app.Logger, sess.Employee, req, input, time.Now()); err != nil {
					return fail(err)
				}
				fmt.Printf("\n✓ Counter-offer sent to %s\n", req.Requester.FullName)
				return nil
			}

			return fail(fmt.Errorf("no open request with id %s", requestID))
		},
	}

	cmd.Flags().StringVar(&overtimeStart, "overtime-start", "", "Optional overtime start")
	cmd.Flags().StringVar(&overtimeEnd, "overtime-end", "", "Optional overtime end")

	return cmd
}
