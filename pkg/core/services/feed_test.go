package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shiftbridge/swapboard/pkg/core/model"
)

type stubBoardClient struct {
	shiftRequests  []model.ShiftSwapRequest
	dayOffRequests []model.DayOffSwapRequest
	err            error
}

func (s *stubBoardClient) ListShiftSwapRequests(_ context.Context) ([]model.ShiftSwapRequest, error) {
	return s.shiftRequests, s.err
}

func (s *stubBoardClient) ListDayOffSwapRequests(_ context.Context) ([]model.DayOffSwapRequest, error) {
	return s.dayOffRequests, s.err
}

func TestLoadShiftBoard_ExcludesOwnRequests(t *testing.T) {
	mine := shiftReq("mine", "Me", "my own", testNow.Add(24*time.Hour), testNow, model.ShiftSwapPending)
	mine.Requester = me
	client := &stubBoardClient{shiftRequests: []model.ShiftSwapRequest{
		shiftReq("r1", "Alice", "dentist", testNow.Add(24*time.Hour), testNow, model.ShiftSwapPending),
		mine,
		shiftReq("r2", "Bob", "vacation", testNow.Add(48*time.Hour), testNow, model.ShiftSwapPending),
	}}

	board, err := LoadShiftBoard(context.Background(), client, zap.NewNop(), me)

	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "r1", board[0].ID)
	assert.Equal(t, "r2", board[1].ID)
}

func TestLoadShiftBoard_KeepsAnonymousRequests(t *testing.T) {
	// A request with no requester id cannot be proven to be ours
	anonymous := shiftReq("anon", "", "who knows", testNow.Add(24*time.Hour), testNow, model.ShiftSwapPending)
	anonymous.Requester = model.Employee{}
	client := &stubBoardClient{shiftRequests: []model.ShiftSwapRequest{anonymous}}

	board, err := LoadShiftBoard(context.Background(), client, zap.NewNop(), me)

	require.NoError(t, err)
	assert.Len(t, board, 1)
}

func TestLoadShiftBoard_PropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	client := &stubBoardClient{err: wantErr}

	board, err := LoadShiftBoard(context.Background(), client, zap.NewNop(), me)

	require.ErrorIs(t, err, wantErr)
	assert.Nil(t, board)
}

func TestLoadDayOffBoard_ExcludesOwnRequests(t *testing.T) {
	tomorrow := day(2025, 6, 2)
	mine := dayOffReq("mine", "Me", "my own", tomorrow, tomorrow, testNow)
	mine.Requester = me
	client := &stubBoardClient{dayOffRequests: []model.DayOffSwapRequest{
		dayOffReq("r1", "Alice", "wedding", tomorrow, tomorrow, testNow),
		mine,
	}}

	board, err := LoadDayOffBoard(context.Background(), client, zap.NewNop(), me)

	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, "r1", board[0].ID)
}
