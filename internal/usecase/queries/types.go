package queries

import (
	"time"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"
	"gigbook/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.ErrBookingNotFound
)

// BookingView represents read-optimized booking data with its conflict summary
type BookingView struct {
	ID               int64          `json:"id"`
	ClientName       string         `json:"client_name"`
	Status           booking.Status `json:"status"`
	EventDate        string         `json:"event_date"`
	EventTime        *string        `json:"event_time,omitempty"`
	EventEndTime     *string        `json:"event_end_time,omitempty"`
	Venue            string         `json:"venue,omitempty"`
	VenueAddress     string         `json:"venue_address,omitempty"`
	TimeLabel        string         `json:"time_label"`
	NeedsAction      bool           `json:"needs_action"`
	ConflictCount    int            `json:"conflict_count"`
	ConflictSeverity string         `json:"conflict_severity,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type BookingFilter struct {
	Date        *booking.Date
	NeedsAction *bool
}

func (f BookingFilter) matches(b booking.Booking) bool {
	if f.NeedsAction != nil && b.Status.NeedsAction() != *f.NeedsAction {
		return false
	}
	if f.Date != nil {
		d, err := b.Date()
		if err != nil || d != *f.Date {
			return false
		}
	}
	return true
}

func newBookingView(b booking.Booking, conflicts []conflict.Conflict) *BookingView {
	v := &BookingView{
		ID:            b.ID,
		ClientName:    b.ClientName,
		Status:        b.Status,
		EventDate:     b.EventDate,
		EventTime:     b.EventTime,
		EventEndTime:  b.EventEndTime,
		Venue:         b.Venue,
		VenueAddress:  b.VenueAddress,
		TimeLabel:     b.TimeLabel(),
		NeedsAction:   b.Status.NeedsAction(),
		ConflictCount: len(conflicts),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	v.ConflictSeverity = highestSeverity(conflicts)
	return v
}

func highestSeverity(conflicts []conflict.Conflict) string {
	var highest conflict.Severity
	for _, c := range conflicts {
		switch {
		case c.Severity == conflict.SeverityHard:
			return conflict.SeverityHard.String()
		case c.Severity == conflict.SeveritySoft:
			highest = conflict.SeveritySoft
		case highest == "":
			highest = c.Severity
		}
	}
	return highest.String()
}
