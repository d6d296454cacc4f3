//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"gigbook/internal/domain/booking"
	"gigbook/internal/pkg/clock"
	"gigbook/internal/pkg/errs"
	"gigbook/internal/usecase/commands"
	"gigbook/tests/common/memstore"
	"gigbook/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCommands_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		patch   booking.Patch
		faults  memstore.Faults
		wantErr error
		check   func(t *testing.T, b booking.Booking)
	}{
		{
			name:  "normalizes times",
			patch: booking.Patch{EventTime: str("9:05"), EventEndTime: str("23:30:00")},
			check: func(t *testing.T, b booking.Booking) {
				assert.Equal(t, "09:05", *b.EventTime)
				assert.Equal(t, "23:30", *b.EventEndTime)
			},
		},
		{
			name:  "empty string clears end time",
			patch: booking.Patch{EventEndTime: str("")},
			check: func(t *testing.T, b booking.Booking) {
				assert.Nil(t, b.EventEndTime)
				assert.Equal(t, "19:00", *b.EventTime)
			},
		},
		{
			name:    "blank client name",
			patch:   booking.Patch{ClientName: str("  ")},
			wantErr: errs.ErrDomainValidation,
		},
		{
			name:    "booking gone at write time",
			patch:   booking.Patch{Venue: str("Arms")},
			faults:  memstore.Faults{VanishOnWrite: true},
			wantErr: commands.ErrMutationConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New(bk(1, "19:00", "22:00"))
			store.Faults = tt.faults
			cache := &memstore.Cache{}
			uc := commands.NewBookingCommands(store, cache, clock.NewMockClock(now))

			got, err := uc.Update(ctx, 1, tt.patch)
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, err, tt.wantErr)
				assert.Zero(t, cache.Invalidations)
				return
			}
			require.NoError(t, err)
			tt.check(t, *got)

			stored, _ := store.Booking(1)
			assert.Equal(t, *got, stored)
			assert.Equal(t, 1, cache.Invalidations)
		})
	}

	t.Run("unknown booking", func(t *testing.T) {
		uc := commands.NewBookingCommands(memstore.New(), &memstore.Cache{}, clock.NewMockClock(now))

		_, err := uc.Update(ctx, 5, booking.Patch{Venue: str("Arms")})
		testutil.AssertErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestBookingCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store := memstore.New(bk(1, "19:00", "22:00"))
		cache := &memstore.Cache{}
		uc := commands.NewBookingCommands(store, cache, clock.NewMockClock(now))

		require.NoError(t, uc.Delete(ctx, 1))
		assert.Empty(t, store.Bookings())
		assert.Equal(t, 1, cache.Invalidations)
	})

	t.Run("not found", func(t *testing.T) {
		uc := commands.NewBookingCommands(memstore.New(), &memstore.Cache{}, clock.NewMockClock(now))

		testutil.AssertErrorIs(t, uc.Delete(ctx, 1), commands.ErrBookingNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		store := memstore.New(bk(1, "19:00", "22:00"))
		store.Faults.DeleteBooking = errors.New("timeout")
		cache := &memstore.Cache{}
		uc := commands.NewBookingCommands(store, cache, clock.NewMockClock(now))

		err := uc.Delete(ctx, 1)
		require.Error(t, err)
		assert.False(t, errs.Is(err, commands.ErrBookingNotFound))
		assert.Len(t, store.Bookings(), 1)
		assert.Zero(t, cache.Invalidations)
	})
}
