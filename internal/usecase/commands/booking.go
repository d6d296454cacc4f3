package commands

import (
	"context"

	"gigbook/internal/domain/booking"
	"gigbook/internal/infra"
	"gigbook/internal/pkg/clock"
	"gigbook/internal/pkg/errs"
	"gigbook/internal/usecase/shared"
)

var (
	ErrBookingNotFound  = errs.ErrBookingNotFound
	ErrResolutionStore  = shared.ErrResolutionStore
	ErrMutationConflict = shared.ErrMutationConflict
)

type BookingCommands interface {
	Update(ctx context.Context, id int64, patch booking.Patch) (*booking.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.ConflictCache
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, cache shared.ConflictCache, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *bookingCommandsImpl) Update(ctx context.Context, id int64, patch booking.Patch) (*booking.Booking, error) {
	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var terr error
		updated, terr = updateBooking(ctx, tx, id, patch, uc.clock)
		return terr
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	return updated, nil
}

func (uc *bookingCommandsImpl) Delete(ctx context.Context, id int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Bookings().Delete(ctx, tx.DB(), id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrBookingNotFound)
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx)
	return nil
}

// updateBooking reads, patches and writes one booking inside tx. A booking that
// disappears between the read and the write is a concurrent mutation.
func updateBooking(ctx context.Context, tx shared.Tx, id int64, patch booking.Patch, clk clock.Clock) (*booking.Booking, error) {
	current, err := tx.Reads().BookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := current.Apply(patch, clk.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	updated, err := tx.Bookings().Update(ctx, tx.DB(), next)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrMutationConflict)
		}
		return nil, err
	}
	return updated, nil
}
