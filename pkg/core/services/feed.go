package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shiftbridge/swapboard/pkg/core/model"
)

// ShiftBoardClient defines the API operations needed to load the shift swap board
type ShiftBoardClient interface {
	ListShiftSwapRequests(ctx context.Context) ([]model.ShiftSwapRequest, error)
}

// DayOffBoardClient defines the API operations needed to load the day-off swap board
type DayOffBoardClient interface {
	ListDayOffSwapRequests(ctx context.Context) ([]model.DayOffSwapRequest, error)
}

// LoadShiftBoard fetches the shift swap feed and drops the signed-in
// employee's own requests. The result replaces any previous snapshot
// wholesale; there is no merging or pagination.
func LoadShiftBoard(ctx context.Context, client ShiftBoardClient, logger *zap.Logger, me model.Employee) ([]model.ShiftSwapRequest, error) {
	logger.Debug("Loading shift swap board", zap.String("employee_id", me.ID))

	requests, err := client.ListShiftSwapRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift swap requests: %w", err)
	}

	board := make([]model.ShiftSwapRequest, 0, len(requests))
	for _, req := range requests {
		if sameEmployee(req.Requester.ID, me) {
			continue
		}
		board = append(board, req)
	}

	logger.Debug("Shift swap board loaded",
		zap.Int("fetched", len(requests)),
		zap.Int("shown", len(board)))

	return board, nil
}

// LoadDayOffBoard fetches the day-off swap feed and drops the signed-in
// employee's own requests
func LoadDayOffBoard(ctx context.Context, client DayOffBoardClient, logger *zap.Logger, me model.Employee) ([]model.DayOffSwapRequest, error) {
	logger.Debug("Loading day-off swap board", zap.String("employee_id", me.ID))

	requests, err := client.ListDayOffSwapRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load day-off swap requests: %w", err)
	}

	board := make([]model.DayOffSwapRequest, 0, len(requests))
	for _, req := range requests {
		if sameEmployee(req.Requester.ID, me) {
			continue
		}
		board = append(board, req)
	}

	logger.Debug("Day-off swap board loaded",
		zap.Int("fetched", len(requests)),
		zap.Int("shown", len(board)))

	return board, nil
}
