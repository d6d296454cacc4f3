package booking

import (
	"strings"
	"time"
)

// Booking is a snapshot of a calendar booking as held by the booking store.
// EventDate and the time fields are kept as stored so that malformed legacy
// values reach the conflict detector and can be degraded there.
type Booking struct {
	ID           int64
	ClientName   string
	Status       Status
	EventDate    string
	EventTime    *string
	EventEndTime *string
	Venue        string
	VenueAddress string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (b Booking) Date() (Date, error) {
	return ParseDate(b.EventDate)
}

func (b Booking) Interval() (Interval, []error) {
	return NewInterval(b.EventTime, b.EventEndTime)
}

// TimeLabel is the display form of the booking's time range.
func (b Booking) TimeLabel() string {
	start := trimmed(b.EventTime)
	end := trimmed(b.EventEndTime)
	switch {
	case start == "" && end == "":
		return "Time not set"
	case start == "":
		return "? - " + end
	case end == "":
		return start
	default:
		return start + " - " + end
	}
}

func trimmed(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
