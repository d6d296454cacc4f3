package request

import (
	"strings"

	"gigbook/internal/domain/booking"
	"gigbook/internal/pkg/errs"
	"gigbook/internal/usecase/queries"
)

type ListBookingsQuery struct {
	Date        string `form:"date"`
	NeedsAction *bool  `form:"needs_action"`
}

func (q ListBookingsQuery) ToFilter() (queries.BookingFilter, error) {
	filter := queries.BookingFilter{NeedsAction: q.NeedsAction}
	if strings.TrimSpace(q.Date) != "" {
		date, err := booking.ParseDate(q.Date)
		if err != nil {
			return queries.BookingFilter{}, errs.Mark(err, errs.ErrDomainValidation)
		}
		filter.Date = &date
	}
	return filter, nil
}

// PatchBookingRequest updates only the fields present. For event_time and
// event_end_time an empty string clears the value.
type PatchBookingRequest struct {
	ClientName   *string `json:"client_name" binding:"omitempty,max=200"`
	Status       *string `json:"status"`
	EventTime    *string `json:"event_time"`
	EventEndTime *string `json:"event_end_time"`
	Venue        *string `json:"venue" binding:"omitempty,max=200"`
	VenueAddress *string `json:"venue_address" binding:"omitempty,max=500"`
}

func (r PatchBookingRequest) ToPatch() booking.Patch {
	p := booking.Patch{
		ClientName:   r.ClientName,
		EventTime:    r.EventTime,
		EventEndTime: r.EventEndTime,
		Venue:        r.Venue,
		VenueAddress: r.VenueAddress,
	}
	if r.Status != nil {
		status := booking.Status(strings.TrimSpace(*r.Status))
		p.Status = &status
	}
	return p
}
