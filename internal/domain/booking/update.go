package booking

import (
	"strings"
	"time"

	"gigbook/internal/pkg/errs"
	"gigbook/internal/pkg/patch"
)

var (
	ErrInvalidStatus     = errs.New("invalid booking status")
	ErrClientNameMissing = errs.New("client name is required")
)

// Patch carries the updatable fields of a booking. Nil leaves a field alone;
// for the optional time fields an empty string clears the value.
type Patch struct {
	ClientName   *string
	Status       *Status
	EventTime    *string
	EventEndTime *string
	Venue        *string
	VenueAddress *string
}

func (p Patch) TouchesTimes() bool {
	return p.EventTime != nil || p.EventEndTime != nil
}

// Apply validates the patch strictly and returns the updated booking. Unlike
// detection, writes reject malformed times instead of degrading them.
func (b Booking) Apply(p Patch, now time.Time) (Booking, error) {
	next := b

	if p.ClientName != nil {
		name := strings.TrimSpace(*p.ClientName)
		if name == "" {
			return Booking{}, ErrClientNameMissing
		}
		next.ClientName = name
	}
	if p.Status != nil {
		if !p.Status.IsValid() {
			return Booking{}, ErrInvalidStatus
		}
		next.Status = *p.Status
	}

	eventTime, err := normalizeTime(p.EventTime)
	if err != nil {
		return Booking{}, err
	}
	eventEndTime, err := normalizeTime(p.EventEndTime)
	if err != nil {
		return Booking{}, err
	}
	next.EventTime = patch.Optional(eventTime, b.EventTime)
	next.EventEndTime = patch.Optional(eventEndTime, b.EventEndTime)

	next.Venue = strings.TrimSpace(patch.Coalesce(p.Venue, b.Venue))
	next.VenueAddress = strings.TrimSpace(patch.Coalesce(p.VenueAddress, b.VenueAddress))
	next.UpdatedAt = now

	return next, nil
}

// normalizeTime rewrites a submitted time into canonical HH:MM, keeping the
// empty string as the clear marker.
func normalizeTime(v *string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	raw := strings.TrimSpace(*v)
	if raw == "" {
		return &raw, nil
	}
	m, err := ToMinutes(raw)
	if err != nil {
		return nil, err
	}
	canonical := FormatMinutes(m)
	return &canonical, nil
}
