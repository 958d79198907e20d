package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shiftbridge/swapboard/pkg/core/model"
)

// ListShiftSwapRequests fetches every open shift swap request visible to
// the signed-in employee's company. The data field arrives either as a
// bare array or wrapped in {"requests": [...]}.
func (c *Client) ListShiftSwapRequests(ctx context.Context) ([]model.ShiftSwapRequest, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/shift-swap-requests/", nil, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var requests []model.ShiftSwapRequest
	if err := json.Unmarshal(raw, &requests); err == nil {
		return requests, nil
	}

	var wrapper struct {
		Requests []model.ShiftSwapRequest `json:"requests"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to decode shift swap request list: %w", err)
	}
	return wrapper.Requests, nil
}

// CounterOfferPayload is the counter-offer submission body. Timestamps are
// ISO-8601 strings; optional overtime bounds are omitted when empty.
type CounterOfferPayload struct {
	RequestID      string `json:"requestId"`
	ShiftStartDate string `json:"shiftStartDate"`
	ShiftEndDate   string `json:"shiftEndDate"`
	OvertimeStart  string `json:"overtimeStart,omitempty"`
	OvertimeEnd    string `json:"overtimeEnd,omitempty"`
}

// SubmitCounterOffer submits a counter-offer against an open shift swap request
func (c *Client) SubmitCounterOffer(ctx context.Context, payload CounterOfferPayload) error {
	return c.do(ctx, http.MethodPost, "/api/shift-swap-requests/counter-offer", payload, nil)
}
