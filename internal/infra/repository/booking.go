package repository

import (
	"context"

	"gigbook/internal/domain/booking"
	"gigbook/internal/infra"
	"gigbook/internal/infra/db"
	"gigbook/internal/infra/pgquery"
	"gigbook/internal/infra/repository/converter"
	"gigbook/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	UpdateBooking(ctx context.Context, dbtx db.DBTX, arg pgquery.UpdateBookingParams) (pgquery.Booking, error)
	DeleteBooking(ctx context.Context, dbtx db.DBTX, id int64) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      db.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db db.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Update writes every mutable field. Concurrent writers are last-write-wins.
func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b booking.Booking) (*booking.Booking, error) {
	row, err := r.queries.UpdateBooking(ctx, r.conn(tx), converter.BookingToUpdateParams(b))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update booking", err)
	}
	updated := converter.BookingFromRow(row)
	return &updated, nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	affected, err := r.queries.DeleteBooking(ctx, r.conn(tx), id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) conn(tx db.DBTX) db.DBTX {
	if tx != nil {
		return tx
	}
	return r.db
}
