package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shiftbridge/swapboard/pkg/clients/apiclient"
	"github.com/shiftbridge/swapboard/pkg/core/model"
)

const dayOffDateLayout = "2006-01-02"

// swapWindowDays is how far ahead a proposed shift may be scheduled,
// counted from tomorrow
const swapWindowDays = 10

// ValidationError is a client-side rejection raised before anything is
// sent to the network. Field names the offending input; Message is shown
// to the user verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateSwapWindow checks a proposed shift window: both bounds must fall
// between tomorrow and ten days after tomorrow (whole days), and the end
// must be strictly after the start.
func ValidateSwapWindow(start, end, now time.Time) *ValidationError {
	if start.IsZero() {
		return &ValidationError{Field: "shiftStartDate", Message: "shift start is required"}
	}
	if end.IsZero() {
		return &ValidationError{Field: "shiftEndDate", Message: "shift end is required"}
	}

	earliest := startOfDay(now).AddDate(0, 0, 1)
	latest := endOfDay(earliest.AddDate(0, 0, swapWindowDays))

	if start.Before(earliest) {
		return &ValidationError{Field: "shiftStartDate", Message: "shift must start tomorrow or later"}
	}
	if start.After(latest) {
		return &ValidationError{Field: "shiftStartDate", Message: fmt.Sprintf("shift must start within the next %d days", swapWindowDays+1)}
	}
	if !end.After(start) {
		return &ValidationError{Field: "shiftEndDate", Message: "shift end must be after shift start"}
	}
	if end.After(latest) {
		return &ValidationError{Field: "shiftEndDate", Message: fmt.Sprintf("shift must end within the next %d days", swapWindowDays+1)}
	}

	return nil
}

// validateOvertime checks an optional overtime window: both bounds present
// or both absent, end after start
func validateOvertime(start, end time.Time) *ValidationError {
	if start.IsZero() && end.IsZero() {
		return nil
	}
	if start.IsZero() || end.IsZero() {
		return &ValidationError{Field: "overtime", Message: "overtime needs both a start and an end"}
	}
	if !end.After(start) {
		return &ValidationError{Field: "overtime", Message: "overtime end must be after overtime start"}
	}
	return nil
}

// CounterOfferInput is the user-entered counter-offer form
type CounterOfferInput struct {
	ShiftStart    time.Time
	ShiftEnd      time.Time
	OvertimeStart time.Time
	OvertimeEnd   time.Time
}

// OfferSubmitter defines the API operation needed to submit a counter-offer
type OfferSubmitter interface {
	SubmitCounterOffer(ctx context.Context, payload apiclient.CounterOfferPayload) error
}

// SubmitCounterOffer validates and submits a shift counter-offer. All
// client-side gates run before anything touches the network; failures come
// back as *ValidationError. Server rejections pass through typed from the
// API client.
func SubmitCounterOffer(
	ctx context.Context,
	api OfferSubmitter,
	logger *zap.Logger,
	me model.Employee,
	req model.ShiftSwapRequest,
	input CounterOfferInput,
	now time.Time,
) error {
	if sameEmployee(req.Requester.ID, me) {
		return &ValidationError{Field: "request", Message: "you cannot offer on your own request"}
	}
	if HasAlreadyOffered(req, me) {
		return &ValidationError{Field: "request", Message: "you already have an open offer on this request"}
	}
	if !CanOfferOnShift(req, me, now) {
		return &ValidationError{Field: "request", Message: "this request is no longer open for offers"}
	}

	if err := ValidateSwapWindow(input.ShiftStart, input.ShiftEnd, now); err != nil {
		return err
	}
	if err := validateOvertime(input.OvertimeStart, input.OvertimeEnd); err != nil {
		return err
	}

	payload := apiclient.CounterOfferPayload{
		RequestID:      req.ID,
		ShiftStartDate: input.ShiftStart.Format(time.RFC3339),
		ShiftEndDate:   input.ShiftEnd.Format(time.RFC3339),
	}
	if !input.OvertimeStart.IsZero() {
		payload.OvertimeStart = input.OvertimeStart.Format(time.RFC3339)
		payload.OvertimeEnd = input.OvertimeEnd.Format(time.RFC3339)
	}

	logger.Info("Submitting counter-offer",
		zap.String("request_id", req.ID),
		zap.Time("shift_start", input.ShiftStart),
		zap.Time("shift_end", input.ShiftEnd))

	if err := api.SubmitCounterOffer(ctx, payload); err != nil {
		return err
	}

	logger.Info("Counter-offer submitted", zap.String("request_id", req.ID))
	return nil
}

// MatchProposalInput is the user-entered day-off match form. The shift and
// overtime windows are optional.
type MatchProposalInput struct {
	OriginalDayOff time.Time
	ShiftStart     time.Time
	ShiftEnd       time.Time
	OvertimeStart  time.Time
	OvertimeEnd    time.Time
}

// MatchSubmitter defines the API operation needed to submit a match proposal
type MatchSubmitter interface {
	SubmitMatchProposal(ctx context.Context, payload apiclient.MatchProposalPayload) error
}

// SubmitMatchProposal validates and submits a day-off match proposal. The
// proposer's day off must be in the future and fall on the exact calendar
// day the requester asked for.
func SubmitMatchProposal(
	ctx context.Context,
	api MatchSubmitter,
	logger *zap.Logger,
	me model.Employee,
	req model.DayOffSwapRequest,
	input MatchProposalInput,
	now time.Time,
) error {
	if sameEmployee(req.Requester.ID, me) {
		return &ValidationError{Field: "request", Message: "you cannot match your own request"}
	}
	if HasAlreadyMatched(req, me) {
		return &ValidationError{Field: "request", Message: "you already have an open match proposal on this request"}
	}
	if !CanMatchDayOff(req, me, now) {
		return &ValidationError{Field: "request", Message: "this request is no longer open for matches"}
	}

	if input.OriginalDayOff.IsZero() {
		return &ValidationError{Field: "originalDayOff", Message: "your day off is required"}
	}
	if !input.OriginalDayOff.After(now) {
		return &ValidationError{Field: "originalDayOff", Message: "your day off must be in the future"}
	}
	if !model.SameDay(input.OriginalDayOff, req.RequestedDayOff.Time) {
		return &ValidationError{
			Field: "originalDayOff",
			Message: fmt.Sprintf("your day off must fall on the requested day (%s)",
				req.RequestedDayOff.Format(dayOffDateLayout)),
		}
	}

	if !input.ShiftStart.IsZero() || !input.ShiftEnd.IsZero() {
		if err := ValidateSwapWindow(input.ShiftStart, input.ShiftEnd, now); err != nil {
			return err
		}
	}
	if err := validateOvertime(input.OvertimeStart, input.OvertimeEnd); err != nil {
		return err
	}

	payload := apiclient.MatchProposalPayload{
		RequestID:      req.ID,
		OriginalDayOff: input.OriginalDayOff.Format(dayOffDateLayout),
	}
	if !input.ShiftStart.IsZero() {
		payload.ShiftStartDate = input.ShiftStart.Format(time.RFC3339)
		payload.ShiftEndDate = input.ShiftEnd.Format(time.RFC3339)
	}
	if !input.OvertimeStart.IsZero() {
		payload.OvertimeStart = input.OvertimeStart.Format(time.RFC3339)
		payload.OvertimeEnd = input.OvertimeEnd.Format(time.RFC3339)
	}

	logger.Info("Submitting match proposal",
		zap.String("request_id", req.ID),
		zap.Time("original_day_off", input.OriginalDayOff))

	if err := api.SubmitMatchProposal(ctx, payload); err != nil {
		return err
	}

	logger.Info("Match proposal submitted", zap.String("request_id", req.ID))
	return nil
}
