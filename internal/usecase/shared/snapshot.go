package shared

import (
	"context"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"
	"gigbook/internal/pkg/errs"
)

// Snapshot is the input of one detection run.
type Snapshot struct {
	Bookings    []booking.Booking
	Resolutions []*conflict.Resolution
}

func (s Snapshot) Index() *conflict.ResolutionIndex {
	return conflict.NewResolutionIndex(s.Resolutions)
}

// SnapshotLoader reads bookings and resolutions through the cache.
type SnapshotLoader struct {
	bookings    BookingReadStore
	resolutions ResolutionReadStore
	cache       ConflictCache
}

func NewSnapshotLoader(bookings BookingReadStore, resolutions ResolutionReadStore, cache ConflictCache) *SnapshotLoader {
	return &SnapshotLoader{bookings: bookings, resolutions: resolutions, cache: cache}
}

func (l *SnapshotLoader) Load(ctx context.Context) (Snapshot, error) {
	bookings, ok := l.cache.GetBookings(ctx)
	if !ok {
		var err error
		bookings, err = l.bookings.List(ctx)
		if err != nil {
			return Snapshot{}, err
		}
		l.cache.SetBookings(ctx, bookings)
	}

	resolutions, ok := l.cache.GetResolutions(ctx)
	if !ok {
		var err error
		resolutions, err = l.resolutions.List(ctx)
		if err != nil {
			return Snapshot{}, errs.Mark(err, ErrResolutionStore)
		}
		l.cache.SetResolutions(ctx, resolutions)
	}

	return Snapshot{Bookings: bookings, Resolutions: resolutions}, nil
}

// LoadTx reads a fresh snapshot inside a transaction, bypassing the cache.
func LoadTx(ctx context.Context, reads CommandReads) (Snapshot, error) {
	bookings, err := reads.AllBookings(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	resolutions, err := reads.AllResolutions(ctx)
	if err != nil {
		return Snapshot{}, errs.Mark(err, ErrResolutionStore)
	}
	return Snapshot{Bookings: bookings, Resolutions: resolutions}, nil
}
