package services

import (
	"time"

	"github.com/shiftbridge/swapboard/pkg/core/model"
)

// sameEmployee compares an embedded author id against the signed-in
// employee. Missing ids on either side compare unequal, so a request whose
// history entries omit author ids is treated as having no prior proposal.
func sameEmployee(id string, me model.Employee) bool {
	return id != "" && id == me.ID
}

// CanOfferOnShift reports whether the signed-in employee may counter-offer
// on the request: not self-authored, still open, not yet claimed, and the
// shift has not started
func CanOfferOnShift(req model.ShiftSwapRequest, me model.Employee, now time.Time) bool {
	if sameEmployee(req.Requester.ID, me) {
		return false
	}
	if !req.Status.IsOpen() {
		return false
	}
	if req.ReceiverID != nil && *req.ReceiverID != "" {
		return false
	}
	return req.ShiftStart.After(now)
}

// CanMatchDayOff reports whether the signed-in employee may propose a match
// on the request: not self-authored, still open, not yet claimed, and both
// days still in the future
func CanMatchDayOff(req model.DayOffSwapRequest, me model.Employee, now time.Time) bool {
	if sameEmployee(req.Requester.ID, me) {
		return false
	}
	if !req.Status.IsOpen() {
		return false
	}
	if req.ReceiverID != nil && *req.ReceiverID != "" {
		return false
	}
	return req.RequestedDayOff.After(now) && req.OriginalDayOff.After(now)
}

// HasAlreadyOffered reports whether the signed-in employee already has a
// counter-offer in "offered" state on the request
func HasAlreadyOffered(req model.ShiftSwapRequest, me model.Employee) bool {
	for _, offer := range req.NegotiationHistory {
		if sameEmployee(offer.OfferedBy.ID, me) && offer.Status == model.OfferOffered {
			return true
		}
	}
	return false
}

// HasAlreadyMatched reports whether the signed-in employee already has a
// match proposal in "proposed" state on the request
func HasAlreadyMatched(req model.DayOffSwapRequest, me model.Employee) bool {
	for _, match := range req.Matches {
		if sameEmployee(match.MatchedBy.ID, me) && match.Status == model.MatchProposed {
			return true
		}
	}
	return false
}
