package queries

import (
	"context"

	"gigbook/internal/domain/conflict"
	"gigbook/internal/infra"
	"gigbook/internal/usecase/shared"
)

type BookingQueries interface {
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
	GetByID(ctx context.Context, id int64) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store    shared.BookingReadStore
	loader   *shared.SnapshotLoader
	detector *conflict.Detector
}

func NewBookingQueries(store shared.BookingReadStore, loader *shared.SnapshotLoader, detector *conflict.Detector) BookingQueries {
	return &bookingQueriesImpl{store: store, loader: loader, detector: detector}
}

// List filters after detection so conflict counts always reflect the whole calendar.
func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) ([]*BookingView, error) {
	snap, err := q.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	conflicts := q.detector.Detect(snap.Bookings, snap.Index())

	views := make([]*BookingView, 0, len(snap.Bookings))
	for _, b := range snap.Bookings {
		if !filter.matches(b) {
			continue
		}
		views = append(views, newBookingView(b, conflicts.For(b.ID)))
	}
	return views, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	snap, err := q.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	conflicts := q.detector.Detect(snap.Bookings, snap.Index())
	return newBookingView(*b, conflicts.For(b.ID)), nil
}
