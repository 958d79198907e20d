package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// ShiftSwapStatus is the lifecycle status of a shift swap request
type ShiftSwapStatus string

const (
	ShiftSwapPending        ShiftSwapStatus = "pending"
	ShiftSwapOffersReceived ShiftSwapStatus = "offers_received"
	ShiftSwapApproved       ShiftSwapStatus = "approved"
	ShiftSwapRejected       ShiftSwapStatus = "rejected"
)

// IsOpen reports whether the request can still receive counter-offers
func (s ShiftSwapStatus) IsOpen() bool {
	return s == ShiftSwapPending || s == ShiftSwapOffersReceived
}

// DayOffSwapStatus is the lifecycle status of a day-off swap request
type DayOffSwapStatus string

const (
	DayOffSwapPending  DayOffSwapStatus = "pending"
	DayOffSwapMatched  DayOffSwapStatus = "matched"
	DayOffSwapApproved DayOffSwapStatus = "approved"
	DayOffSwapRejected DayOffSwapStatus = "rejected"
)

// IsOpen reports whether the request can still receive match proposals
func (s DayOffSwapStatus) IsOpen() bool {
	return s == DayOffSwapPending
}

// OfferStatus is the status of a single counter-offer in a negotiation
type OfferStatus string

const (
	OfferOffered  OfferStatus = "offered"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

// MatchStatus is the status of a single day-off match proposal
type MatchStatus string

const (
	MatchProposed MatchStatus = "proposed"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
)

// Employee is the local projection of an employee identity. The API embeds
// it either as an object (with mongo-style "_id") or as a bare id string.
type Employee struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (e *Employee) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		// Bare id reference, no embedded profile
		return json.Unmarshal(trimmed, &e.ID)
	}

	var raw struct {
		ID       string `json:"id"`
		MongoID  string `json:"_id"`
		FullName string `json:"fullName"`
		Email    string `json:"email"`
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	e.ID = raw.ID
	if e.ID == "" {
		e.ID = raw.MongoID
	}
	e.FullName = raw.FullName
	e.Email = raw.Email
	return nil
}

// Timestamp wraps time.Time to absorb the API's mixed date formats: full
// RFC 3339 timestamps for shift windows and bare calendar dates for day-off
// fields. Unparseable or null values decode to the zero time instead of
// failing the whole board payload; filters treat zero times as never matching.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	t.Time = time.Time{}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// SameDay reports whether two times fall on the same calendar day
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Offer is a colleague's counter-offer against a shift swap request
type Offer struct {
	OfferedBy     Employee    `json:"offeredBy"`
	ShiftStart    Timestamp   `json:"shiftStartDate"`
	ShiftEnd      Timestamp   `json:"shiftEndDate"`
	OvertimeStart *Timestamp  `json:"overtimeStart,omitempty"`
	OvertimeEnd   *Timestamp  `json:"overtimeEnd,omitempty"`
	Status        OfferStatus `json:"status"`
	OfferedAt     Timestamp   `json:"offeredAt"`
}

// MatchProposal is a colleague's day-off exchange proposal
type MatchProposal struct {
	MatchedBy      Employee    `json:"matchedBy"`
	OriginalDayOff Timestamp   `json:"originalDayOff"`
	ShiftStart     *Timestamp  `json:"shiftStartDate,omitempty"`
	ShiftEnd       *Timestamp  `json:"shiftEndDate,omitempty"`
	OvertimeStart  *Timestamp  `json:"overtimeStart,omitempty"`
	OvertimeEnd    *Timestamp  `json:"overtimeEnd,omitempty"`
	Status         MatchStatus `json:"status"`
	MatchedAt      Timestamp   `json:"matchedAt"`
}

// ShiftSwapRequest is a server-owned shift swap request as listed on the board
type ShiftSwapRequest struct {
	ID                 string          `json:"id"`
	Requester          Employee        `json:"requesterUserId"`
	Reason             string          `json:"reason"`
	ShiftStart         Timestamp       `json:"shiftStartDate"`
	ShiftEnd           Timestamp       `json:"shiftEndDate"`
	OvertimeStart      *Timestamp      `json:"overtimeStart,omitempty"`
	OvertimeEnd        *Timestamp      `json:"overtimeEnd,omitempty"`
	Status             ShiftSwapStatus `json:"status"`
	ReceiverID         *string         `json:"receiverUserId,omitempty"`
	NegotiationHistory []Offer         `json:"negotiationHistory"`
	CreatedAt          Timestamp       `json:"createdAt"`
}

func (r *ShiftSwapRequest) UnmarshalJSON(data []byte) error {
	type alias ShiftSwapRequest
	aux := struct {
		*alias
		MongoID string `json:"_id"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = aux.MongoID
	}
	return nil
}

// DayOffSwapRequest is a server-owned day-off swap request
type DayOffSwapRequest struct {
	ID              string           `json:"id"`
	Requester       Employee         `json:"requesterUserId"`
	Reason          string           `json:"reason"`
	OriginalDayOff  Timestamp        `json:"originalDayOff"`
	RequestedDayOff Timestamp        `json:"requestedDayOff"`
	Status          DayOffSwapStatus `json:"status"`
	ReceiverID      *string          `json:"receiverUserId,omitempty"`
	Matches         []MatchProposal  `json:"matches"`
	CreatedAt       Timestamp        `json:"createdAt"`
}

func (r *DayOffSwapRequest) UnmarshalJSON(data []byte) error {
	type alias DayOffSwapRequest
	aux := struct {
		*alias
		MongoID string `json:"_id"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = aux.MongoID
	}
	return nil
}
