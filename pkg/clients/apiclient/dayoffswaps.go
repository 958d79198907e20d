package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shiftbridge/swapboard/pkg/core/model"
)

// ListDayOffSwapRequests fetches every day-off swap request visible to the
// signed-in employee's company
func (c *Client) ListDayOffSwapRequests(ctx context.Context) ([]model.DayOffSwapRequest, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/day-off-swap-requests/", nil, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var requests []model.DayOffSwapRequest
	if err := json.Unmarshal(raw, &requests); err == nil {
		return requests, nil
	}

	var wrapper struct {
		Requests []model.DayOffSwapRequest `json:"requests"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to decode day-off swap request list: %w", err)
	}
	return wrapper.Requests, nil
}

// MatchProposalPayload is the match proposal submission body. The day-off
// is a bare calendar date; the optional shift window uses ISO-8601 timestamps.
type MatchProposalPayload struct {
	RequestID      string `json:"requestId"`
	OriginalDayOff string `json:"originalDayOff"`
	ShiftStartDate string `json:"shiftStartDate,omitempty"`
	ShiftEndDate   string `json:"shiftEndDate,omitempty"`
	OvertimeStart  string `json:"overtimeStart,omitempty"`
	OvertimeEnd    string `json:"overtimeEnd,omitempty"`
}

// SubmitMatchProposal submits a day-off match proposal against an open request
func (c *Client) SubmitMatchProposal(ctx context.Context, payload MatchProposalPayload) error {
	return c.do(ctx, http.MethodPost, "/api/day-off-swap-requests/match", payload, nil)
}
