package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbridge/swapboard/pkg/core/model"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func ts(t time.Time) model.Timestamp {
	return model.Timestamp{Time: t}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func shiftReq(id, requester, reason string, start, created time.Time, status model.ShiftSwapStatus) model.ShiftSwapRequest {
	return model.ShiftSwapRequest{
		ID:         id,
		Requester:  model.Employee{ID: requester + "-id", FullName: requester},
		Reason:     reason,
		ShiftStart: ts(start),
		ShiftEnd:   ts(start.Add(8 * time.Hour)),
		Status:     status,
		CreatedAt:  ts(created),
	}
}

func dayOffReq(id, requester, reason string, requested, original, created time.Time) model.DayOffSwapRequest {
	return model.DayOffSwapRequest{
		ID:              id,
		Requester:       model.Employee{ID: requester + "-id", FullName: requester},
		Reason:          reason,
		RequestedDayOff: ts(requested),
		OriginalDayOff:  ts(original),
		Status:          model.DayOffSwapPending,
		CreatedAt:       ts(created),
	}
}

func TestFilterShiftRequests_Idempotent(t *testing.T) {
	requests := []model.ShiftSwapRequest{
		shiftReq("r1", "Alice", "dentist", testNow.Add(24*time.Hour), testNow.Add(-time.Hour), model.ShiftSwapPending),
		shiftReq("r2", "Bob", "vacation", testNow.Add(48*time.Hour), testNow.Add(-2*time.Hour), model.ShiftSwapPending),
		shiftReq("r3", "Carol", "family visit", testNow.Add(72*time.Hour), testNow.Add(-3*time.Hour), model.ShiftSwapOffersReceived),
	}
	filter := BoardFilter{Availability: AvailabilityOpen, SortBy: SortUrgent}

	first := FilterShiftRequests(requests, filter, testNow)
	second := FilterShiftRequests(requests, filter, testNow)

	assert.Equal(t, first, second)
	// Input untouched
	assert.Equal(t, "r1", requests[0].ID)
}

func TestFilterShiftRequests_AvailabilityExcludesClosedAndPast(t *testing.T) {
	requests := []model.ShiftSwapRequest{
		shiftReq("open", "Alice", "open one", testNow.Add(24*time.Hour), testNow, model.ShiftSwapPending),
		shiftReq("past", "Bob", "already started", testNow.Add(-time.Hour), testNow, model.ShiftSwapPending),
		shiftReq("closed", "Carol", "approved already", testNow.Add(24*time.Hour), testNow, model.ShiftSwapApproved),
	}

	out := FilterShiftRequests(requests, BoardFilter{Availability: AvailabilityOpen}, testNow)

	require.Len(t, out, 1)
	assert.Equal(t, "open", out[0].ID)
}

func TestFilterShiftRequests_AllKeepsEverything(t *testing.T) {
	requests := []model.ShiftSwapRequest{
		shiftReq("past", "Bob", "already started", testNow.Add(-time.Hour), testNow, model.ShiftSwapPending),
		shiftReq("closed", "Carol", "approved already", testNow.Add(24*time.Hour), testNow, model.ShiftSwapRejected),
	}

	out := FilterShiftRequests(requests, BoardFilter{Availability: AvailabilityAll}, testNow)
	assert.Len(t, out, 2)
}

func TestFilterShiftRequests_Search(t *testing.T) {
	requests := []model.ShiftSwapRequest{
		shiftReq("r1", "Alice Smith", "summer vacation cover", testNow.Add(24*time.Hour), testNow, model.ShiftSwapPending),
		shiftReq("r2", "Bob Jones", "dentist appointment", testNow.Add(24*time.Hour), testNow, model.ShiftSwapPending),
	}

	byReason := FilterShiftRequests(requests, BoardFilter{Search: "VACATION"}, testNow)
	require.Len(t, byReason, 1)
	assert.Equal(t, "r1", byReason[0].ID)

	byName := FilterShiftRequests(requests, BoardFilter{Search: "jones"}, testNow)
	require.Len(t, byName, 1)
	assert.Equal(t, "r2", byName[0].ID)

	all := FilterShiftRequests(requests, BoardFilter{Search: "  "}, testNow)
	assert.Len(t, all, 2)
}

func TestFilterShiftRequests_DateWindow(t *testing.T) {
	requests := []model.ShiftSwapRequest{
		shiftReq("early", "Alice", "a", day(2025, 6, 3), testNow, model.ShiftSwapPending),
		shiftReq("inside", "Bob", "b", day(2025, 6, 5).Add(9*time.Hour), testNow, model.ShiftSwapPending),
		shiftReq("edge", "Carol", "c", day(2025, 6, 7).Add(23*time.Hour), testNow, model.ShiftSwapPending),
		shiftReq("late", "Dave", "d", day(2025, 6, 8), testNow, model.ShiftSwapPending),
	}

	out := FilterShiftRequests(requests, BoardFilter{
		DateFrom: day(2025, 6, 5),
		DateTo:   day(2025, 6, 7),
	}, testNow)

	require.Len(t, out, 2)
	assert.Equal(t, "inside", out[0].ID)
	assert.Equal(t, "edge", out[1].ID) // upper bound is inclusive through end of day
}

func TestFilterShiftRequests_MalformedDateNeverMatchesWindow(t *testing.T) {
	broken := shiftReq("broken", "Alice", "a", time.Time{}, testNow, model.ShiftSwapPending)

	withWindow := FilterShiftRequests([]model.ShiftSwapRequest{broken}, BoardFilter{DateFrom: day(2025, 6, 1)}, testNow)
	assert.Empty(t, withWindow)

	noWindow := FilterShiftRequests([]model.ShiftSwapRequest{broken}, BoardFilter{}, testNow)
	assert.Len(t, noWindow, 1)
}

func TestFilterShiftRequests_Sorting(t *testing.T) {
	requests := []model.ShiftSwapRequest{
		shiftReq("b", "Bob", "b", testNow.Add(72*time.Hour), testNow.Add(-2*time.Hour), model.ShiftSwapPending),
		shiftReq("a", "Alice", "a", testNow.Add(96*time.Hour), testNow.Add(-time.Hour), model.ShiftSwapPending),
		shiftReq("c", "Carol", "c", testNow.Add(24*time.Hour), testNow.Add(-3*time.Hour), model.ShiftSwapPending),
	}

	newest := FilterShiftRequests(requests, BoardFilter{SortBy: SortNewest}, testNow)
	assert.Equal(t, []string{"a", "b", "c"}, ids(newest))

	oldest := FilterShiftRequests(requests, BoardFilter{SortBy: SortOldest}, testNow)
	assert.Equal(t, []string{"c", "b", "a"}, ids(oldest))

	urgent := FilterShiftRequests(requests, BoardFilter{SortBy: SortUrgent}, testNow)
	assert.Equal(t, []string{"c", "b", "a"}, ids(urgent))
}

func ids(requests []model.ShiftSwapRequest) []string {
	out := make([]string, len(requests))
	for i, r := range requests {
		out[i] = r.ID
	}
	return out
}

func TestFilterDayOffRequests_AvailabilityTomorrowVsYesterday(t *testing.T) {
	tomorrow := day(2025, 6, 2)
	yesterday := day(2025, 5, 31)

	included := dayOffReq("ok", "Alice", "wedding", tomorrow, tomorrow, testNow)
	out := FilterDayOffRequests([]model.DayOffSwapRequest{included}, BoardFilter{Availability: AvailabilityOpen}, testNow)
	require.Len(t, out, 1)

	excluded := dayOffReq("past", "Alice", "wedding", yesterday, tomorrow, testNow)
	out = FilterDayOffRequests([]model.DayOffSwapRequest{excluded}, BoardFilter{Availability: AvailabilityOpen}, testNow)
	assert.Empty(t, out)
}

func TestFilterDayOffRequests_AvailabilityExcludesClaimed(t *testing.T) {
	tomorrow := day(2025, 6, 2)
	claimed := dayOffReq("claimed", "Alice", "wedding", tomorrow, tomorrow, testNow)
	receiver := "bob-id"
	claimed.ReceiverID = &receiver

	out := FilterDayOffRequests([]model.DayOffSwapRequest{claimed}, BoardFilter{Availability: AvailabilityOpen}, testNow)
	assert.Empty(t, out)

	out = FilterDayOffRequests([]model.DayOffSwapRequest{claimed}, BoardFilter{Availability: AvailabilityAll}, testNow)
	assert.Len(t, out, 1)
}

func TestFilterDayOffRequests_DateFieldEither(t *testing.T) {
	requests := []model.DayOffSwapRequest{
		dayOffReq("byRequested", "Alice", "a", day(2025, 6, 10), day(2025, 7, 1), testNow),
		dayOffReq("byOriginal", "Bob", "b", day(2025, 7, 1), day(2025, 6, 11), testNow),
		dayOffReq("neither", "Carol", "c", day(2025, 7, 1), day(2025, 7, 2), testNow),
	}
	window := BoardFilter{DateFrom: day(2025, 6, 9), DateTo: day(2025, 6, 12)}

	window.DateField = DateFieldRequested
	assert.Len(t, FilterDayOffRequests(requests, window, testNow), 1)

	window.DateField = DateFieldOriginal
	assert.Len(t, FilterDayOffRequests(requests, window, testNow), 1)

	window.DateField = DateFieldEither
	out := FilterDayOffRequests(requests, window, testNow)
	require.Len(t, out, 2)
	assert.Equal(t, "byRequested", out[0].ID)
	assert.Equal(t, "byOriginal", out[1].ID)
}
