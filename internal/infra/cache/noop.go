package cache

import (
	"context"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"
)

// NoopCache always misses. It is used when no Redis address is configured.
type NoopCache struct{}

func NewNoopCache() NoopCache {
	return NoopCache{}
}

func (NoopCache) GetBookings(context.Context) ([]booking.Booking, bool) { return nil, false }

func (NoopCache) SetBookings(context.Context, []booking.Booking) {}

func (NoopCache) GetResolutions(context.Context) ([]*conflict.Resolution, bool) { return nil, false }

func (NoopCache) SetResolutions(context.Context, []*conflict.Resolution) {}

func (NoopCache) Invalidate(context.Context) {}
