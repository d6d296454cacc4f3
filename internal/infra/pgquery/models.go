package pgquery

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Booking struct {
	ID           int64
	ClientName   string
	Status       string
	EventDate    pgtype.Date
	EventTime    pgtype.Text
	EventEndTime pgtype.Text
	Venue        pgtype.Text
	VenueAddress pgtype.Text
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type ConflictResolution struct {
	ID           pgtype.UUID
	BookingIds   []int64
	ConflictDate pgtype.Date
	Notes        pgtype.Text
	CreatedAt    pgtype.Timestamptz
}

type UpdateBookingParams struct {
	ID           int64
	ClientName   string
	Status       string
	EventTime    pgtype.Text
	EventEndTime pgtype.Text
	Venue        pgtype.Text
	VenueAddress pgtype.Text
	UpdatedAt    pgtype.Timestamptz
}

type CreateResolutionParams struct {
	ID           pgtype.UUID
	BookingIds   []int64
	ConflictDate pgtype.Date
	Notes        pgtype.Text
	CreatedAt    pgtype.Timestamptz
}
