package readstore

import (
	"context"

	"gigbook/internal/domain/booking"
	"gigbook/internal/infra"
	"gigbook/internal/infra/db"
	"gigbook/internal/infra/pgquery"
	"gigbook/internal/infra/repository/converter"
	"gigbook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	ListBookings(ctx context.Context, dbtx db.DBTX) ([]pgquery.Booking, error)
	ListBookingsByDate(ctx context.Context, dbtx db.DBTX, eventDate pgtype.Date) ([]pgquery.Booking, error)
	GetBookingByID(ctx context.Context, dbtx db.DBTX, id int64) (pgquery.Booking, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      db.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db db.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) List(ctx context.Context) ([]booking.Booking, error) {
	rows, err := r.queries.ListBookings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *BookingReadStore) ListByDate(ctx context.Context, date booking.Date) ([]booking.Booking, error) {
	pd, err := pgconv.DateStringToPgtype(date.String())
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking date filter", err)
	}
	rows, err := r.queries.ListBookingsByDate(ctx, r.db, pd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by date", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	b := converter.BookingFromRow(row)
	return &b, nil
}
