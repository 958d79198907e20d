package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shiftbridge/swapboard/pkg/core/model"
)

var me = model.Employee{ID: "me-id", FullName: "Me Myself"}

func TestCanOfferOnShift(t *testing.T) {
	open := shiftReq("r1", "Alice", "dentist", testNow.Add(24*time.Hour), testNow, model.ShiftSwapPending)

	t.Run("open future request", func(t *testing.T) {
		assert.True(t, CanOfferOnShift(open, me, testNow))
	})

	t.Run("own request", func(t *testing.T) {
		mine := open
		mine.Requester = me
		assert.False(t, CanOfferOnShift(mine, me, testNow))
	})

	t.Run("closed request", func(t *testing.T) {
		closed := open
		closed.Status = model.ShiftSwapApproved
		assert.False(t, CanOfferOnShift(closed, me, testNow))
	})

	t.Run("claimed request", func(t *testing.T) {
		claimed := open
		receiver := "someone-else"
		claimed.ReceiverID = &receiver
		assert.False(t, CanOfferOnShift(claimed, me, testNow))
	})

	t.Run("empty receiver id does not claim", func(t *testing.T) {
		unclaimed := open
		empty := ""
		unclaimed.ReceiverID = &empty
		assert.True(t, CanOfferOnShift(unclaimed, me, testNow))
	})

	t.Run("shift already started", func(t *testing.T) {
		started := open
		started.ShiftStart = ts(testNow.Add(-time.Minute))
		assert.False(t, CanOfferOnShift(started, me, testNow))
	})
}

func TestCanMatchDayOff(t *testing.T) {
	tomorrow := day(2025, 6, 2)
	open := dayOffReq("r1", "Alice", "wedding", tomorrow, tomorrow, testNow)

	t.Run("open future request", func(t *testing.T) {
		assert.True(t, CanMatchDayOff(open, me, testNow))
	})

	t.Run("requested day in the past", func(t *testing.T) {
		past := open
		past.RequestedDayOff = ts(day(2025, 5, 31))
		assert.False(t, CanMatchDayOff(past, me, testNow))
	})

	t.Run("original day in the past", func(t *testing.T) {
		past := open
		past.OriginalDayOff = ts(day(2025, 5, 31))
		assert.False(t, CanMatchDayOff(past, me, testNow))
	})

	t.Run("resolved request", func(t *testing.T) {
		resolved := open
		resolved.Status = model.DayOffSwapMatched
		assert.False(t, CanMatchDayOff(resolved, me, testNow))
	})
}

func TestHasAlreadyOffered(t *testing.T) {
	req := shiftReq("r1", "Alice", "dentist", testNow.Add(24*time.Hour), testNow, model.ShiftSwapPending)

	t.Run("no history", func(t *testing.T) {
		assert.False(t, HasAlreadyOffered(req, me))
	})

	t.Run("open offer by me", func(t *testing.T) {
		withMine := req
		withMine.NegotiationHistory = []model.Offer{
			{OfferedBy: model.Employee{ID: "me-id"}, Status: model.OfferOffered},
		}
		assert.True(t, HasAlreadyOffered(withMine, me))
	})

	t.Run("rejected offer by me does not count", func(t *testing.T) {
		withRejected := req
		withRejected.NegotiationHistory = []model.Offer{
			{OfferedBy: model.Employee{ID: "me-id"}, Status: model.OfferRejected},
		}
		assert.False(t, HasAlreadyOffered(withRejected, me))
	})

	t.Run("offer by someone else", func(t *testing.T) {
		other := req
		other.NegotiationHistory = []model.Offer{
			{OfferedBy: model.Employee{ID: "bob-id"}, Status: model.OfferOffered},
		}
		assert.False(t, HasAlreadyOffered(other, me))
	})

	t.Run("history entry without author id", func(t *testing.T) {
		anonymous := req
		anonymous.NegotiationHistory = []model.Offer{
			{OfferedBy: model.Employee{}, Status: model.OfferOffered},
		}
		assert.False(t, HasAlreadyOffered(anonymous, me))
	})
}

func TestHasAlreadyMatched(t *testing.T) {
	tomorrow := day(2025, 6, 2)
	req := dayOffReq("r1", "Alice", "wedding", tomorrow, tomorrow, testNow)

	t.Run("open proposal by me", func(t *testing.T) {
		withMine := req
		withMine.Matches = []model.MatchProposal{
			{MatchedBy: model.Employee{ID: "me-id"}, Status: model.MatchProposed},
		}
		assert.True(t, HasAlreadyMatched(withMine, me))
	})

	t.Run("withdrawn proposal does not count", func(t *testing.T) {
		withdrawn := req
		withdrawn.Matches = []model.MatchProposal{
			{MatchedBy: model.Employee{ID: "me-id"}, Status: model.MatchRejected},
		}
		assert.False(t, HasAlreadyMatched(withdrawn, me))
	})

	t.Run("proposal without author id", func(t *testing.T) {
		anonymous := req
		anonymous.Matches = []model.MatchProposal{
			{MatchedBy: model.Employee{}, Status: model.MatchProposed},
		}
		assert.False(t, HasAlreadyMatched(anonymous, me))
	})
}

func TestClassifyUrgency(t *testing.T) {
	assert.Equal(t, UrgencyUrgent, ClassifyUrgency(testNow.Add(12*time.Hour), testNow))
	assert.Equal(t, UrgencyUrgent, ClassifyUrgency(testNow.Add(48*time.Hour), testNow))
	assert.Equal(t, UrgencySoon, ClassifyUrgency(testNow.Add(72*time.Hour), testNow))
	assert.Equal(t, UrgencySoon, ClassifyUrgency(testNow.Add(120*time.Hour), testNow))
	assert.Equal(t, UrgencyAvailable, ClassifyUrgency(testNow.Add(121*time.Hour), testNow))
}
