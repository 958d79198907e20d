package services

import "time"

// Urgency is a presentational classification of how soon a request's
// relevant date is. It never gates any action.
type Urgency string

const (
	UrgencyUrgent    Urgency = "Urgent"
	UrgencySoon      Urgency = "Soon"
	UrgencyAvailable Urgency = "Available"
)

const (
	urgentWithin = 48 * time.Hour
	soonWithin   = 120 * time.Hour
)

// ClassifyUrgency buckets the time remaining until the relevant date:
// under 48h is Urgent, under 120h is Soon, otherwise Available.
func ClassifyUrgency(relevant, now time.Time) Urgency {
	until := relevant.Sub(now)
	switch {
	case until <= urgentWithin:
		return UrgencyUrgent
	case until <= soonWithin:
		return UrgencySoon
	default:
		return UrgencyAvailable
	}
}
