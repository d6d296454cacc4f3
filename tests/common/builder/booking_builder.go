//go:build unit || e2e

package builder

import (
	"time"

	"gigbook/internal/domain/booking"
	reqdto "gigbook/internal/handler/dto/request"
	"gigbook/internal/usecase/queries"
)

type BookingBuilder struct {
	ID           int64
	ClientName   string
	Status       booking.Status
	EventDate    string
	EventTime    *string
	EventEndTime *string
	Venue        string
	VenueAddress string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	start, end := "19:00", "22:00"
	return &BookingBuilder{
		ID:           1,
		ClientName:   "Test Client",
		Status:       booking.StatusConfirmed,
		EventDate:    "2025-06-01",
		EventTime:    &start,
		EventEndTime: &end,
		Venue:        "The Old Hall",
		VenueAddress: "1 High Street",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithClient(name string) *BookingBuilder {
	b.ClientName = name
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) On(date string) *BookingBuilder {
	b.EventDate = date
	return b
}

// At sets the start and end times. An empty string leaves the field null.
func (b *BookingBuilder) At(start, end string) *BookingBuilder {
	b.EventTime = optional(start)
	b.EventEndTime = optional(end)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() booking.Booking {
	return booking.Booking{
		ID:           b.ID,
		ClientName:   b.ClientName,
		Status:       b.Status,
		EventDate:    b.EventDate,
		EventTime:    copyPtr(b.EventTime),
		EventEndTime: copyPtr(b.EventEndTime),
		Venue:        b.Venue,
		VenueAddress: b.VenueAddress,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	d := b.BuildDomain()
	return &queries.BookingView{
		ID:           d.ID,
		ClientName:   d.ClientName,
		Status:       d.Status,
		EventDate:    d.EventDate,
		EventTime:    d.EventTime,
		EventEndTime: d.EventEndTime,
		Venue:        d.Venue,
		VenueAddress: d.VenueAddress,
		TimeLabel:    d.TimeLabel(),
		NeedsAction:  d.Status.NeedsAction(),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildPatchRequestDTO() reqdto.PatchBookingRequest {
	status := b.Status.String()
	return reqdto.PatchBookingRequest{
		ClientName:   &b.ClientName,
		Status:       &status,
		EventTime:    copyPtr(b.EventTime),
		EventEndTime: copyPtr(b.EventEndTime),
		Venue:        &b.Venue,
		VenueAddress: &b.VenueAddress,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
