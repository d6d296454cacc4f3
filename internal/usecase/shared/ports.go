package shared

import (
	"context"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"
	"gigbook/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Resolutions() ResolutionRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads reads through the transaction so a command sees its own writes.
type CommandReads interface {
	AllBookings(ctx context.Context) ([]booking.Booking, error)
	BookingByID(ctx context.Context, id int64) (*booking.Booking, error)
	AllResolutions(ctx context.Context) ([]*conflict.Resolution, error)
}

type BookingRepository interface {
	Update(ctx context.Context, tx db.DBTX, b booking.Booking) (*booking.Booking, error)
	Delete(ctx context.Context, tx db.DBTX, id int64) error
}

type ResolutionRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *conflict.Resolution) (*conflict.Resolution, error)
}

type BookingReadStore interface {
	List(ctx context.Context) ([]booking.Booking, error)
	ListByDate(ctx context.Context, date booking.Date) ([]booking.Booking, error)
	FindByID(ctx context.Context, id int64) (*booking.Booking, error)
}

type ResolutionReadStore interface {
	List(ctx context.Context) ([]*conflict.Resolution, error)
}

// ConflictCache is an advisory cache of the inputs to detection. Failures are
// reported as misses; detection results themselves are never cached.
type ConflictCache interface {
	GetBookings(ctx context.Context) ([]booking.Booking, bool)
	SetBookings(ctx context.Context, bookings []booking.Booking)
	GetResolutions(ctx context.Context) ([]*conflict.Resolution, bool)
	SetResolutions(ctx context.Context, resolutions []*conflict.Resolution)
	Invalidate(ctx context.Context)
}
