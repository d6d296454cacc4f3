package queries

import (
	"context"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"
	"gigbook/internal/infra"
	"gigbook/internal/usecase/shared"
)

type ConflictQueries interface {
	// DetectAll returns the conflict map of the whole calendar.
	DetectAll(ctx context.Context) (conflict.Map, error)
	// ForBooking returns the conflicts of one booking, empty when it has none.
	ForBooking(ctx context.Context, id int64) ([]conflict.Conflict, error)
	// Groups lists conflict groups, optionally for a single date.
	Groups(ctx context.Context, date *booking.Date) ([]conflict.Group, error)
	Resolutions(ctx context.Context) ([]*conflict.Resolution, error)
}

type conflictQueriesImpl struct {
	store    shared.BookingReadStore
	loader   *shared.SnapshotLoader
	detector *conflict.Detector
}

func NewConflictQueries(store shared.BookingReadStore, loader *shared.SnapshotLoader, detector *conflict.Detector) ConflictQueries {
	return &conflictQueriesImpl{store: store, loader: loader, detector: detector}
}

func (q *conflictQueriesImpl) DetectAll(ctx context.Context) (conflict.Map, error) {
	snap, err := q.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return q.detector.Detect(snap.Bookings, snap.Index()), nil
}

func (q *conflictQueriesImpl) ForBooking(ctx context.Context, id int64) ([]conflict.Conflict, error) {
	snap, err := q.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for _, b := range snap.Bookings {
		if b.ID == id {
			found = true
			break
		}
	}
	if !found {
		// the cached snapshot may predate the booking
		if _, err := q.store.FindByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, err
		}
	}

	conflicts := q.detector.Detect(snap.Bookings, snap.Index()).For(id)
	if conflicts == nil {
		conflicts = []conflict.Conflict{}
	}
	return conflicts, nil
}

// Groups evaluates only the requested date when one is given.
func (q *conflictQueriesImpl) Groups(ctx context.Context, date *booking.Date) ([]conflict.Group, error) {
	snap, err := q.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	bookings := snap.Bookings
	if date != nil {
		bookings, err = q.store.ListByDate(ctx, *date)
		if err != nil {
			return nil, err
		}
	}

	groups := q.detector.Analyze(bookings, snap.Index()).Groups
	if groups == nil {
		groups = []conflict.Group{}
	}
	return groups, nil
}

func (q *conflictQueriesImpl) Resolutions(ctx context.Context) ([]*conflict.Resolution, error) {
	snap, err := q.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Resolutions, nil
}
