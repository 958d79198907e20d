package services

import (
	"sort"
	"strings"
	"time"

	"github.com/shiftbridge/swapboard/pkg/core/model"
)

// Availability selects between showing everything and only requests that
// can still be acted on
type Availability string

const (
	AvailabilityAll  Availability = "all"
	AvailabilityOpen Availability = "available"
)

// SortOrder is the board sort mode
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
	SortUrgent SortOrder = "urgent"
)

// DateField selects which date a day-off board's date-range filter matches against
type DateField string

const (
	DateFieldRequested DateField = "requested"
	DateFieldOriginal  DateField = "original"
	DateFieldEither    DateField = "either"
)

// BoardFilter is the full filter state of a swap board. Zero values mean
// "no constraint" (empty search, unset date bounds).
type BoardFilter struct {
	Search       string
	Availability Availability
	SortBy       SortOrder
	DateFrom     time.Time
	DateTo       time.Time
	DateField    DateField
}

// FilterShiftRequests applies the board filter to a shift swap list and
// returns a new, sorted slice. Pure: the input slice is never mutated and
// identical inputs produce identical output.
func FilterShiftRequests(requests []model.ShiftSwapRequest, f BoardFilter, now time.Time) []model.ShiftSwapRequest {
	out := make([]model.ShiftSwapRequest, 0, len(requests))
	for _, req := range requests {
		if f.Availability == AvailabilityOpen && !shiftRequestAvailable(req, now) {
			continue
		}
		if !matchesSearch(f.Search, req.Reason, req.Requester.FullName) {
			continue
		}
		if !inDateWindow(req.ShiftStart.Time, f.DateFrom, f.DateTo) {
			continue
		}
		out = append(out, req)
	}

	switch f.SortBy {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt.Time)
		})
	case SortUrgent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ShiftStart.Before(out[j].ShiftStart.Time)
		})
	default: // newest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt.Time)
		})
	}

	return out
}

// FilterDayOffRequests applies the board filter to a day-off swap list.
// Same contract as FilterShiftRequests; the date-range filter matches
// against the requested day, the original day, or either.
func FilterDayOffRequests(requests []model.DayOffSwapRequest, f BoardFilter, now time.Time) []model.DayOffSwapRequest {
	out := make([]model.DayOffSwapRequest, 0, len(requests))
	for _, req := range requests {
		if f.Availability == AvailabilityOpen && !dayOffRequestAvailable(req, now) {
			continue
		}
		if !matchesSearch(f.Search, req.Reason, req.Requester.FullName) {
			continue
		}
		if !dayOffInWindow(req, f) {
			continue
		}
		out = append(out, req)
	}

	switch f.SortBy {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt.Time)
		})
	case SortUrgent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RequestedDayOff.Before(out[j].RequestedDayOff.Time)
		})
	default: // newest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt.Time)
		})
	}

	return out
}

// shiftRequestAvailable: still open and the shift has not started yet
func shiftRequestAvailable(req model.ShiftSwapRequest, now time.Time) bool {
	return req.Status.IsOpen() && req.ShiftStart.After(now)
}

// dayOffRequestAvailable: still open, both days in the future, and not
// already claimed by a receiver
func dayOffRequestAvailable(req model.DayOffSwapRequest, now time.Time) bool {
	if !req.Status.IsOpen() {
		return false
	}
	if !req.RequestedDayOff.After(now) || !req.OriginalDayOff.After(now) {
		return false
	}
	return req.ReceiverID == nil || *req.ReceiverID == ""
}

// matchesSearch: case-insensitive substring match on reason or requester
// name; empty search matches everything
func matchesSearch(term, reason, requesterName string) bool {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(reason), term) ||
		strings.Contains(strings.ToLower(requesterName), term)
}

// inDateWindow checks t against an optional [from, to] window. The upper
// bound is inclusive through the end of its day. A zero t never matches a
// set window (malformed server dates fall out of filtered views).
func inDateWindow(t, from, to time.Time) bool {
	if from.IsZero() && to.IsZero() {
		return true
	}
	if t.IsZero() {
		return false
	}
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(endOfDay(to)) {
		return false
	}
	return true
}

func dayOffInWindow(req model.DayOffSwapRequest, f BoardFilter) bool {
	switch f.DateField {
	case DateFieldOriginal:
		return inDateWindow(req.OriginalDayOff.Time, f.DateFrom, f.DateTo)
	case DateFieldEither:
		return inDateWindow(req.RequestedDayOff.Time, f.DateFrom, f.DateTo) ||
			inDateWindow(req.OriginalDayOff.Time, f.DateFrom, f.DateTo)
	default:
		return inDateWindow(req.RequestedDayOff.Time, f.DateFrom, f.DateTo)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
