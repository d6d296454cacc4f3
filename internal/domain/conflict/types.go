package conflict

import (
	"gigbook/internal/domain/booking"
)

type Severity string

const (
	SeverityHard     Severity = "hard"
	SeveritySoft     Severity = "soft"
	SeverityResolved Severity = "resolved"
)

func (s Severity) String() string {
	return string(s)
}

func (s Severity) rank() int {
	switch s {
	case SeverityHard:
		return 3
	case SeveritySoft:
		return 2
	case SeverityResolved:
		return 1
	default:
		return 0
	}
}

// Reason records which detection rule produced the severity.
type Reason string

const (
	ReasonTimeOverlap      Reason = "time_overlap"
	ReasonMissingStartTime Reason = "missing_start_time"
	ReasonMissingEndTime   Reason = "missing_end_time"
	ReasonSameDay          Reason = "same_day"
)

// Conflict is one direction of a conflicting pair. The presentation fields
// describe the opposing booking.
type Conflict struct {
	BookingID      int64
	WithBookingID  int64
	Date           string
	Severity       Severity
	Reason         Reason
	OverlapMinutes *int
	Message        string
	Time           string
	ClientName     string
	Status         booking.Status
}

// Map holds the conflicts of every booking that has at least one. A booking
// with no conflicts is absent.
type Map map[int64][]Conflict

func (m Map) For(bookingID int64) []Conflict {
	return m[bookingID]
}

func (m Map) Has(bookingID int64) bool {
	_, ok := m[bookingID]
	return ok
}

// Group is a connected set of conflicting bookings on one date. Its booking-id
// set is the key matched against stored resolutions.
type Group struct {
	Date       string
	BookingIDs BookingIDSet
	Severity   Severity
	HasHard    bool
	Resolved   bool
}

func (g Group) Contains(bookingID int64) bool {
	return g.BookingIDs.Contains(bookingID)
}

// IsSoftOnly reports whether every conflicting pair in the group is soft or
// already resolved.
func (g Group) IsSoftOnly() bool {
	return !g.HasHard
}

// Report is the full result of one detection run.
type Report struct {
	Conflicts Map
	Groups    []Group
	// Skipped lists bookings excluded from evaluation, such as those with an unparseable date.
	Skipped []int64
}

// GroupOf returns the group containing the booking, if any.
func (r Report) GroupOf(bookingID int64) (Group, bool) {
	for _, g := range r.Groups {
		if g.Contains(bookingID) {
			return g, true
		}
	}
	return Group{}, false
}

// GroupFor returns the group whose booking-id set equals ids exactly.
func (r Report) GroupFor(ids BookingIDSet) (Group, bool) {
	for _, g := range r.Groups {
		if g.BookingIDs.Equal(ids) {
			return g, true
		}
	}
	return Group{}, false
}
