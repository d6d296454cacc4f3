//go:build unit

package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"
	"gigbook/internal/infra/cache"
	"gigbook/internal/pkg/config"
	"gigbook/tests/common/builder"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*cache.RedisConflictCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	cfg := config.NewTestConfig().Cache
	cfg.RedisAddr = srv.Addr()

	client := cache.NewRedisClient(cfg)
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return cache.NewRedisConflictCache(client, cfg, logger), srv
}

func TestRedisConflictCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on empty cache", func(t *testing.T) {
		c, _ := newCache(t)
		_, ok := c.GetBookings(ctx)
		assert.False(t, ok)
		_, ok = c.GetResolutions(ctx)
		assert.False(t, ok)
	})

	t.Run("bookings round trip", func(t *testing.T) {
		c, srv := newCache(t)
		want := []booking.Booking{
			builder.NewBookingBuilder().WithID(1).BuildDomain(),
			builder.NewBookingBuilder().WithID(2).At("", "").BuildDomain(),
		}

		c.SetBookings(ctx, want)
		got, ok := c.GetBookings(ctx)

		require.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, want[0].EventTime, got[0].EventTime)
		assert.Nil(t, got[1].EventTime)
		assert.True(t, want[0].CreatedAt.Equal(got[0].CreatedAt))
		assert.True(t, srv.Exists("gigbook-test:bookings"))
	})

	t.Run("resolutions round trip", func(t *testing.T) {
		c, _ := newCache(t)
		notes := "same venue"
		res, err := conflict.NewResolution([]int64{3, 1}, booking.NewDate(2025, time.June, 1), &notes, time.Now())
		require.NoError(t, err)

		c.SetResolutions(ctx, []*conflict.Resolution{res})
		got, ok := c.GetResolutions(ctx)

		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, res.ID(), got[0].ID())
		assert.True(t, res.BookingIDs().Equal(got[0].BookingIDs()))
		assert.Equal(t, "2025-06-01", got[0].ConflictDate().String())
		assert.Equal(t, "same venue", *got[0].Notes())
	})

	t.Run("entries expire", func(t *testing.T) {
		c, srv := newCache(t)
		c.SetBookings(ctx, []booking.Booking{builder.NewBookingBuilder().BuildDomain()})

		srv.FastForward(2 * time.Second)

		_, ok := c.GetBookings(ctx)
		assert.False(t, ok)
	})

	t.Run("invalidate drops both snapshots", func(t *testing.T) {
		c, srv := newCache(t)
		c.SetBookings(ctx, []booking.Booking{builder.NewBookingBuilder().BuildDomain()})
		c.SetResolutions(ctx, nil)

		c.Invalidate(ctx)

		assert.False(t, srv.Exists("gigbook-test:bookings"))
		assert.False(t, srv.Exists("gigbook-test:resolutions"))
	})

	t.Run("corrupt entry is a miss", func(t *testing.T) {
		c, srv := newCache(t)
		require.NoError(t, srv.Set("gigbook-test:bookings", "{not json"))

		_, ok := c.GetBookings(ctx)
		assert.False(t, ok)
	})

	t.Run("unreachable redis is a miss", func(t *testing.T) {
		c, srv := newCache(t)
		srv.Close()

		c.SetBookings(ctx, []booking.Booking{builder.NewBookingBuilder().BuildDomain()})
		_, ok := c.GetBookings(ctx)
		assert.False(t, ok)
		c.Invalidate(ctx)
	})
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNoopCache()
	c.SetBookings(ctx, []booking.Booking{builder.NewBookingBuilder().BuildDomain()})
	_, ok := c.GetBookings(ctx)
	assert.False(t, ok)
}
