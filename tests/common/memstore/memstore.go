//go:build unit || e2e

// Package memstore is an in-memory UnitOfWork and read store for use case tests.
// Transactions work on a copy of the data that replaces the original only on
// success.
package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"
	"gigbook/internal/infra"
	"gigbook/internal/infra/db"
	"gigbook/internal/pkg/errs"
	"gigbook/internal/usecase/shared"
)

type Faults struct {
	ListResolutions  error
	CreateResolution error
	UpdateBooking    error
	DeleteBooking    error
	// VanishOnWrite makes writes report the booking as gone, as if another
	// actor deleted it after the snapshot was read.
	VanishOnWrite bool
}

type state struct {
	bookings    map[int64]booking.Booking
	resolutions []*conflict.Resolution
}

func (s state) clone() state {
	c := state{bookings: make(map[int64]booking.Booking, len(s.bookings)), resolutions: slices.Clone(s.resolutions)}
	for id, b := range s.bookings {
		c.bookings[id] = b
	}
	return c
}

func (s state) sorted() []booking.Booking {
	out := make([]booking.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b booking.Booking) int {
		if c := cmp.Compare(a.EventDate, b.EventDate); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

type Store struct {
	mu      sync.Mutex
	current state
	Faults  Faults
	Commits int
}

func New(bookings ...booking.Booking) *Store {
	s := &Store{current: state{bookings: map[int64]booking.Booking{}}}
	for _, b := range bookings {
		s.current.bookings[b.ID] = b
	}
	return s
}

func (s *Store) AddResolution(r *conflict.Resolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.resolutions = append(s.current.resolutions, r)
}

func (s *Store) Bookings() []booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.sorted()
}

func (s *Store) Booking(id int64) (booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.current.bookings[id]
	return b, ok
}

func (s *Store) StoredResolutions() []*conflict.Resolution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.current.resolutions)
}

// UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	working := s.current.clone()
	s.mu.Unlock()

	tx := &memTx{store: s, state: &working}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = working
	s.Commits++
	s.mu.Unlock()
	return nil
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

// Read stores

func (s *Store) List(ctx context.Context) ([]booking.Booking, error) {
	return s.Bookings(), nil
}

func (s *Store) ListByDate(ctx context.Context, date booking.Date) ([]booking.Booking, error) {
	var out []booking.Booking
	for _, b := range s.Bookings() {
		if d, err := b.Date(); err == nil && d == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	b, ok := s.Booking(id)
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return &b, nil
}

// ResolutionReads adapts the store to shared.ResolutionReadStore.
func (s *Store) ResolutionReads() shared.ResolutionReadStore {
	return resolutionReads{s}
}

type resolutionReads struct{ s *Store }

func (r resolutionReads) List(ctx context.Context) ([]*conflict.Resolution, error) {
	if err := r.s.Faults.ListResolutions; err != nil {
		return nil, infra.WrapRepoErr("failed to list conflict resolutions", err)
	}
	return r.s.StoredResolutions(), nil
}

type memTx struct {
	store *Store
	state *state
}

func (t *memTx) Bookings() shared.BookingRepository       { return (*txBookings)(t) }
func (t *memTx) Resolutions() shared.ResolutionRepository { return (*txResolutions)(t) }
func (t *memTx) Reads() shared.CommandReads               { return (*txReads)(t) }
func (t *memTx) DB() db.DBTX                              { return nil }

type txBookings memTx

func (t *txBookings) Update(ctx context.Context, _ db.DBTX, b booking.Booking) (*booking.Booking, error) {
	if err := t.store.Faults.UpdateBooking; err != nil {
		return nil, infra.WrapRepoErr("failed to update booking", err)
	}
	if _, ok := t.state.bookings[b.ID]; !ok || t.store.Faults.VanishOnWrite {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	t.state.bookings[b.ID] = b
	return &b, nil
}

func (t *txBookings) Delete(ctx context.Context, _ db.DBTX, id int64) error {
	if err := t.store.Faults.DeleteBooking; err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if _, ok := t.state.bookings[id]; !ok || t.store.Faults.VanishOnWrite {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	delete(t.state.bookings, id)
	return nil
}

type txResolutions memTx

func (t *txResolutions) Create(ctx context.Context, _ db.DBTX, r *conflict.Resolution) (*conflict.Resolution, error) {
	if err := t.store.Faults.CreateResolution; err != nil {
		return nil, infra.WrapRepoErr("failed to create conflict resolution", err)
	}
	t.state.resolutions = append(t.state.resolutions, r)
	return r, nil
}

type txReads memTx

func (t *txReads) AllBookings(ctx context.Context) ([]booking.Booking, error) {
	return t.state.sorted(), nil
}

func (t *txReads) BookingByID(ctx context.Context, id int64) (*booking.Booking, error) {
	b, ok := t.state.bookings[id]
	if !ok {
		return nil, errs.Mark(infra.WrapRepoErr("booking not found", nil, infra.KindNotFound), errs.ErrBookingNotFound)
	}
	return &b, nil
}

func (t *txReads) AllResolutions(ctx context.Context) ([]*conflict.Resolution, error) {
	if err := t.store.Faults.ListResolutions; err != nil {
		return nil, infra.WrapRepoErr("failed to list conflict resolutions", err)
	}
	return slices.Clone(t.state.resolutions), nil
}

// Cache records invalidations and can hold a stale snapshot.
type Cache struct {
	mu            sync.Mutex
	bookings      []booking.Booking
	resolutions   []*conflict.Resolution
	hasBookings   bool
	hasResolution bool
	Invalidations int
}

func (c *Cache) GetBookings(context.Context) ([]booking.Booking, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bookings, c.hasBookings
}

func (c *Cache) SetBookings(_ context.Context, bookings []booking.Booking) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bookings, c.hasBookings = bookings, true
}

func (c *Cache) GetResolutions(context.Context) ([]*conflict.Resolution, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolutions, c.hasResolution
}

func (c *Cache) SetResolutions(_ context.Context, resolutions []*conflict.Resolution) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolutions, c.hasResolution = resolutions, true
}

func (c *Cache) Invalidate(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bookings, c.resolutions = nil, nil
	c.hasBookings, c.hasResolution = false, false
	c.Invalidations++
}
