package response

import (
	"time"

	"gigbook/internal/domain/booking"
	"gigbook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID               int64     `json:"id"`
	ClientName       string    `json:"client_name"`
	Status           string    `json:"status"`
	EventDate        string    `json:"event_date"`
	EventTime        *string   `json:"event_time"`
	EventEndTime     *string   `json:"event_end_time"`
	Venue            string    `json:"venue,omitempty"`
	VenueAddress     string    `json:"venue_address,omitempty"`
	TimeLabel        string    `json:"time_label"`
	NeedsAction      bool      `json:"needs_action"`
	ConflictCount    int       `json:"conflict_count"`
	ConflictSeverity string    `json:"conflict_severity,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	_ = copier.Copy(res, v)
	res.Status = v.Status.String()
	return res
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

// FromBooking renders a freshly written booking, before conflicts are recomputed.
func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		ClientName:   b.ClientName,
		Status:       b.Status.String(),
		EventDate:    b.EventDate,
		EventTime:    b.EventTime,
		EventEndTime: b.EventEndTime,
		Venue:        b.Venue,
		VenueAddress: b.VenueAddress,
		TimeLabel:    b.TimeLabel(),
		NeedsAction:  b.Status.NeedsAction(),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
