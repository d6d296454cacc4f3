package pgquery

import (
	"context"

	"gigbook/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

const bookingColumns = `id, client_name, status, event_date, event_time, event_end_time, venue, venue_address, created_at, updated_at`

const listBookings = `SELECT ` + bookingColumns + `
FROM bookings
ORDER BY event_date, id`

func (q *Queries) ListBookings(ctx context.Context, dbtx db.DBTX) ([]Booking, error) {
	rows, err := dbtx.Query(ctx, listBookings)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

const listBookingsByDate = `SELECT ` + bookingColumns + `
FROM bookings
WHERE event_date = $1
ORDER BY id`

func (q *Queries) ListBookingsByDate(ctx context.Context, dbtx db.DBTX, eventDate pgtype.Date) ([]Booking, error) {
	rows, err := dbtx.Query(ctx, listBookingsByDate, eventDate)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

const getBookingByID = `SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, dbtx db.DBTX, id int64) (Booking, error) {
	return scanBooking(dbtx.QueryRow(ctx, getBookingByID, id))
}

const updateBooking = `UPDATE bookings
SET client_name = $2,
    status = $3,
    event_time = $4,
    event_end_time = $5,
    venue = $6,
    venue_address = $7,
    updated_at = $8
WHERE id = $1
RETURNING ` + bookingColumns

func (q *Queries) UpdateBooking(ctx context.Context, dbtx db.DBTX, arg UpdateBookingParams) (Booking, error) {
	row := dbtx.QueryRow(ctx, updateBooking,
		arg.ID,
		arg.ClientName,
		arg.Status,
		arg.EventTime,
		arg.EventEndTime,
		arg.Venue,
		arg.VenueAddress,
		arg.UpdatedAt,
	)
	return scanBooking(row)
}

const deleteBooking = `DELETE FROM bookings WHERE id = $1`

func (q *Queries) DeleteBooking(ctx context.Context, dbtx db.DBTX, id int64) (int64, error) {
	tag, err := dbtx.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.ClientName,
		&b.Status,
		&b.EventDate,
		&b.EventTime,
		&b.EventEndTime,
		&b.Venue,
		&b.VenueAddress,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

func collectBookings(rows pgx.Rows) ([]Booking, error) {
	defer rows.Close()
	var items []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
