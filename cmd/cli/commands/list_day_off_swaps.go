package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shiftbridge/swapboard/pkg/core/model"
	"github.com/shiftbridge/swapboard/pkg/core/services"
)

// ListDayOffSwapsCmd creates the listDayOffSwaps command
func ListDayOffSwapsCmd(app *AppContext) *cobra.Command {
	var (
		search    string
		showAll   bool
		sortBy    string
		fromFlag  string
		toFlag    string
		dateField string
	)

	cmd := &cobra.Command{
		Use:   "listDayOffSwaps",
		Short: "List open day-off swap requests from colleagues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, api, err := app.RequireSession()
			if err != nil {
				return fail(err)
			}

			filter, err := buildFilter(search, showAll, sortBy, fromFlag, toFlag, dateField)
			if err != nil {
				return fail(err)
			}

			app.Logger.Debug("listDayOffSwaps command", zap.String("search", search))

			board, err := services.LoadDayOffBoard(app.Ctx, api, app.Logger, sess.Employee)
			if err != nil {
				return fail(err)
			}

			now := time.Now()
			visible := services.FilterDayOffRequests(board, filter, now)

			fmt.Printf("\n%d day-off swap requests (%d after filters):\n\n", len(board), len(visible))
			for _, req := range visible {
				printDayOffRequest(req, sess.Employee, now)
			}
			if len(visible) == 0 {
				fmt.Println("  Nothing matches the current filters.")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Match reason or requester name")
	cmd.Flags().BoolVar(&showAll, "all", false, "Include closed, claimed, and past requests")
	cmd.Flags().StringVar(&sortBy, "sort", "newest", "Sort order: newest, oldest, urgent")
	cmd.Flags().StringVar(&fromFlag, "from", "", "Lower bound for the date filter")
	cmd.Flags().StringVar(&toFlag, "to", "", "Upper bound for the date filter")
	cmd.Flags().StringVar(&dateField, "date-field", "requested", "Which date to filter on: requested, original, either")

	return cmd
}

func printDayOffRequest(req model.DayOffSwapRequest, me model.Employee, now time.Time) {
	urgency := services.ClassifyUrgency(req.RequestedDayOff.Time, now)
	fmt.Printf("%s%s%s  %s  %s\n", colorBold, req.Requester.FullName, colorReset, urgencyTag(urgency), req.ID)
	fmt.Printf("  %s\n", req.Reason)
	fmt.Printf("  %swants off %s · offers their %s · status %s · %d proposals%s\n",
		colorDim,
		req.RequestedDayOff.Format("2006-01-02"),
		req.OriginalDayOff.Format("2006-01-02"),
		req.Status,
		len(req.Matches),
		colorReset)
	if req.ReceiverID != nil && *req.ReceiverID != "" {
		fmt.Printf("  %s✗ already claimed%s\n", colorRed, colorReset)
	}
	if services.HasAlreadyMatched(req, me) {
		fmt.Printf("  %s✓ you already have a proposal pending%s\n", colorYellow, colorReset)
	}
	fmt.Println()
}
