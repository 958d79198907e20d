package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shiftbridge/swapboard/pkg/core/model"
	"github.com/shiftbridge/swapboard/pkg/core/services"
)

// ANSI color codes shared by the list commands
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// ListShiftSwapsCmd creates the listShiftSwaps command
func ListShiftSwapsCmd(app *AppContext) *cobra.Command {
	var (
		search   string
		showAll  bool
		sortBy   string
		fromFlag string
		toFlag   string
	)

	cmd := &cobra.Command{
		Use:   "listShiftSwaps",
		Short: "List open shift swap requests from colleagues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, api, err := app.RequireSession()
			if err != nil {
				return fail(err)
			}

			filter, err := buildFilter(search, showAll, sortBy, fromFlag, toFlag, "")
			if err != nil {
				return fail(err)
			}

			app.Logger.Debug("listShiftSwaps command", zap.String("search", search))

			board, err := services.LoadShiftBoard(app.Ctx, api, app.Logger, sess.Employee)
			if err != nil {
				return fail(err)
			}

			now := time.Now()
			visible := services.FilterShiftRequests(board, filter, now)

			fmt.Printf("\n%d shift swap requests (%d after filters):\n\n", len(board), len(visible))
			for _, req := range visible {
				printShiftRequest(req, sess.Employee, now)
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
	cmd.Flags().StringVar(&fromFlag, "from", "", "Only shifts starting on or after this date")
	cmd.Flags().StringVar(&toFlag, "to", "", "Only shifts starting on or before this date")

	return cmd
}

func printShiftRequest(req model.ShiftSwapRequest, me model.Employee, now time.Time) {
	urgency := services.ClassifyUrgency(req.ShiftStart.Time, now)
	fmt.Printf("%s%s%s  %s  %s\n", colorBold, req.Requester.FullName, colorReset, urgencyTag(urgency), req.ID)
	fmt.Printf("  %s\n", req.Reason)
	fmt.Printf("  %sshift %s → %s · status %s · %d offers%s\n",
		colorDim,
		req.ShiftStart.Format("2006-01-02 15:04"),
		req.ShiftEnd.Format("2006-01-02 15:04"),
		req.Status,
		len(req.NegotiationHistory),
		colorReset)
	if services.HasAlreadyOffered(req, me) {
		fmt.Printf("  %s✓ you already have an offer pending%s\n", colorYellow, colorReset)
	}
	fmt.Println()
}

func urgencyTag(u services.Urgency) string {
	switch u {
	case services.UrgencyUrgent:
		return colorRed + "[URGENT]" + colorReset
	case services.UrgencySoon:
		return colorYellow + "[SOON]" + colorReset
	default:
		return colorGreen + "[OPEN]" + colorReset
	}
}

// buildFilter converts list-command flags into a BoardFilter
func buildFilter(search string, showAll bool, sortBy, fromFlag, toFlag, dateField string) (services.BoardFilter, error) {
	filter := services.BoardFilter{
		Search:       search,
		Availability: services.AvailabilityOpen,
		DateField:    services.DateFieldRequested,
	}
	if showAll {
		filter.Availability = services.AvailabilityAll
	}

	switch sortBy {
	case "newest", "":
		filter.SortBy = services.SortNewest
	case "oldest":
		filter.SortBy = services.SortOldest
	case "urgent":
		filter.SortBy = services.SortUrgent
	default:
		return filter, fmt.Errorf("unknown sort order %q, use newest, oldest, or urgent", sortBy)
	}

	switch dateField {
	case "", "requested":
		filter.DateField = services.DateFieldRequested
	case "original":
		filter.DateField = services.DateFieldOriginal
	case "either":
		filter.DateField = services.DateFieldEither
	default:
		return filter, fmt.Errorf("unknown date field %q, use requested, original, or either", dateField)
	}

	var err error
	if filter.DateFrom, err = parseOptionalWhen(fromFlag); err != nil {
		return filter, err
	}
	if filter.DateTo, err = parseOptionalWhen(toFlag); err != nil {
		return filter, err
	}

	return filter, nil
}
