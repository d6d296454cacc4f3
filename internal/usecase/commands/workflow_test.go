//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"
	"gigbook/internal/pkg/clock"
	"gigbook/internal/pkg/errs"
	"gigbook/internal/usecase/commands"
	"gigbook/tests/common/builder"
	"gigbook/tests/common/memstore"
	"gigbook/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

func bk(id int64, start, end string) booking.Booking {
	return builder.NewBookingBuilder().WithID(id).At(start, end).BuildDomain()
}

func str(s string) *string { return &s }

type fixture struct {
	store    *memstore.Store
	cache    *memstore.Cache
	workflow commands.ConflictWorkflow
}

func newFixture(bookings ...booking.Booking) *fixture {
	store := memstore.New(bookings...)
	cache := &memstore.Cache{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{
		store:    store,
		cache:    cache,
		workflow: commands.NewConflictWorkflow(store, cache, conflict.NewDetector(logger), clock.NewMockClock(now), logger),
	}
}

func TestConflictWorkflow_EditTimes(t *testing.T) {
	ctx := context.Background()

	t.Run("moving a booking clears the hard conflict", func(t *testing.T) {
		f := newFixture(bk(1, "19:00", "22:00"), bk(2, "20:00", "23:00"))

		res, err := f.workflow.EditTimes(ctx, commands.EditTimesRequest{BookingID: 2, EventTime: str("13:00"), EventEndTime: str("15:00")})
		require.NoError(t, err)

		assert.Equal(t, conflict.StateEditedTimes, res.State)
		assert.Equal(t, []int64{1, 2}, res.Group.BookingIDs.IDs())
		require.Len(t, res.Conflicts.For(2), 1)
		assert.Equal(t, conflict.SeveritySoft, res.Conflicts.For(2)[0].Severity)

		stored, ok := f.store.Booking(2)
		require.True(t, ok)
		assert.Equal(t, "13:00", *stored.EventTime)
		assert.Equal(t, now, stored.UpdatedAt)
		assert.Equal(t, 1, f.cache.Invalidations)
	})

	t.Run("times are required", func(t *testing.T) {
		f := newFixture(bk(1, "19:00", "22:00"), bk(2, "20:00", "23:00"))

		_, err := f.workflow.EditTimes(ctx, commands.EditTimesRequest{BookingID: 2})
		testutil.AssertErrorIs(t, err, commands.ErrNoTimesGiven)
		testutil.AssertErrorIs(t, err, errs.ErrDomainValidation)
		assert.Zero(t, f.cache.Invalidations)
	})

	t.Run("malformed time is rejected before writing", func(t *testing.T) {
		f := newFixture(bk(1, "19:00", "22:00"), bk(2, "20:00", "23:00"))

		_, err := f.workflow.EditTimes(ctx, commands.EditTimesRequest{BookingID: 2, EventTime: str("25:99")})
		testutil.AssertErrorIs(t, err, errs.ErrDomainValidation)

		stored, _ := f.store.Booking(2)
		assert.Equal(t, "20:00", *stored.EventTime)
		assert.Zero(t, f.store.Commits)
	})

	t.Run("booking outside every group", func(t *testing.T) {
		f := newFixture(bk(1, "19:00", "22:00"), builder.NewBookingBuilder().WithID(2).On("2025-06-02").BuildDomain())

		_, err := f.workflow.EditTimes(ctx, commands.EditTimesRequest{BookingID: 2, EventTime: str("10:00")})
		testutil.AssertErrorIs(t, err, conflict.ErrNotInConflict)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(bk(1, "19:00", "22:00"), bk(2, "20:00", "23:00"))

		_, err := f.workflow.EditTimes(ctx, commands.EditTimesRequest{BookingID: 99, EventTime: str("10:00")})
		testutil.AssertErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("booking removed by another actor", func(t *testing.T) {
		f := newFixture(bk(1, "19:00", "22:00"), bk(2, "20:00", "23:00"))
		f.store.Faults.VanishOnWrite = true

		_, err := f.workflow.EditTimes(ctx, commands.EditTimesRequest{BookingID: 2, EventTime: str("10:00")})
		testutil.AssertErrorIs(t, err, commands.ErrMutationConflict)
		assert.Zero(t, f.cache.Invalidations)
	})
}

func TestConflictWorkflow_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the booking", func(t *testing.T) {
		f := newFixture(bk(1, "19:00", ""), bk(2, "20:00", "23:00"))

		res, err := f.workflow.Reject(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, conflict.StateRejected, res.State)
		assert.Empty(t, res.Conflicts)
		_, ok := f.store.Booking(1)
		assert.False(t, ok)
		assert.Equal(t, 1, f.cache.Invalidations)
	})

	t.Run("delete failure keeps data and cache", func(t *testing.T) {
		f := newFixture(bk(1, "19:00", "22:00"), bk(2, "20:00", "23:00"))
		f.store.Faults.DeleteBooking = errors.New("connection reset")

		_, err := f.workflow.Reject(ctx, 1)
		require.Error(t, err)

		assert.Len(t, f.store.Bookings(), 2)
		assert.Zero(t, f.cache.Invalidations)
	})
}

func TestConflictWorkflow_MarkResolved(t *testing.T) {
	ctx := context.Background()

	t.Run("soft group becomes resolved", func(t *testing.T) {
		f := newFixture(bk(1, "09:00", "10:00"), bk(2, "14:00", "15:00"))

		res, err := f.workflow.MarkResolved(ctx, commands.MarkResolvedRequest{BookingIDs: []int64{2, 1}, Notes: str("  same venue  ")})
		require.NoError(t, err)

		assert.Equal(t, conflict.StateResolved, res.State)
		require.NotNil(t, res.Resolution)
		assert.Equal(t, "same venue", *res.Resolution.Notes())
		assert.Equal(t, now, res.Resolution.CreatedAt())
		assert.Equal(t, conflict.SeverityResolved, res.Conflicts.For(1)[0].Severity)
		assert.Equal(t, conflict.SeverityResolved, res.Conflicts.For(2)[0].Severity)
		assert.Len(t, f.store.StoredResolutions(), 1)
		assert.Equal(t, 1, f.cache.Invalidations)
	})

	t.Run("resolving twice stores one record", func(t *testing.T) {
		f := newFixture(bk(1, "09:00", "10:00"), bk(2, "14:00", "15:00"))

		_, err := f.workflow.MarkResolved(ctx, commands.MarkResolvedRequest{BookingIDs: []int64{1, 2}})
		require.NoError(t, err)
		res, err := f.workflow.MarkResolved(ctx, commands.MarkResolvedRequest{BookingIDs: []int64{1, 2}})
		require.NoError(t, err)

		assert.Nil(t, res.Resolution)
		assert.Len(t, f.store.StoredResolutions(), 1)
	})

	t.Run("hard conflict cannot be resolved", func(t *testing.T) {
		f := newFixture(bk(1, "19:00", "22:00"), bk(2, "20:00", "23:00"))

		_, err := f.workflow.MarkResolved(ctx, commands.MarkResolvedRequest{BookingIDs: []int64{1, 2}})
		testutil.AssertErrorIs(t, err, conflict.ErrHardConflictNotResolvable)
		assert.Empty(t, f.store.StoredResolutions())
	})

	t.Run("ids must match a whole group", func(t *testing.T) {
		f := newFixture(bk(1, "09:00", "10:00"), bk(2, "14:00", "15:00"), bk(3, "17:00", "18:00"))

		_, err := f.workflow.MarkResolved(ctx, commands.MarkResolvedRequest{BookingIDs: []int64{1, 2}})
		testutil.AssertErrorIs(t, err, conflict.ErrGroupMismatch)
	})

	t.Run("needs two bookings", func(t *testing.T) {
		f := newFixture(bk(1, "09:00", "10:00"), bk(2, "14:00", "15:00"))

		_, err := f.workflow.MarkResolved(ctx, commands.MarkResolvedRequest{BookingIDs: []int64{1, 1}})
		testutil.AssertErrorIs(t, err, conflict.ErrResolutionTooSmall)
		testutil.AssertErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("store failure leaves the group soft", func(t *testing.T) {
		f := newFixture(bk(1, "09:00", "10:00"), bk(2, "14:00", "15:00"))
		f.store.Faults.CreateResolution = errors.New("disk full")

		_, err := f.workflow.MarkResolved(ctx, commands.MarkResolvedRequest{BookingIDs: []int64{1, 2}})
		testutil.AssertErrorIs(t, err, commands.ErrResolutionStore)
		assert.Empty(t, f.store.StoredResolutions())
		assert.Zero(t, f.cache.Invalidations)

		report := conflict.NewDetector(nil).Analyze(f.store.Bookings(), conflict.NewResolutionIndex(f.store.StoredResolutions()))
		require.Len(t, report.Groups, 1)
		assert.Equal(t, conflict.SeveritySoft, report.Groups[0].Severity)
	})
}

func TestConflictWorkflow_KeepOne(t *testing.T) {
	ctx := context.Background()
	calendar := func() []booking.Booking {
		return []booking.Booking{bk(1, "19:00", "22:00"), bk(2, "20:00", "23:00"), bk(3, "21:00", "")}
	}

	t.Run("every loser disposed", func(t *testing.T) {
		f := newFixture(calendar()...)

		res, err := f.workflow.KeepOne(ctx, commands.KeepOneRequest{
			KeepBookingID: 1,
			Losers: []commands.LoserDisposal{
				{BookingID: 2, Action: commands.LoserReject},
				{BookingID: 3, Action: commands.LoserEdit, EventTime: str("08:00"), EventEndTime: str("09:00")},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, conflict.StateEditedTimes, res.State)
		require.Len(t, res.Transitions, 3)
		assert.Equal(t, conflict.StateKeptOne, res.Transitions[0].To)
		_, ok := f.store.Booking(2)
		assert.False(t, ok)
		require.Len(t, res.Conflicts.For(1), 1)
		assert.Equal(t, conflict.SeveritySoft, res.Conflicts.For(1)[0].Severity)
		assert.Equal(t, 1, f.cache.Invalidations)
	})

	t.Run("pending losers roll back", func(t *testing.T) {
		f := newFixture(calendar()...)

		_, err := f.workflow.KeepOne(ctx, commands.KeepOneRequest{
			KeepBookingID: 1,
			Losers:        []commands.LoserDisposal{{BookingID: 2, Action: commands.LoserReject}},
		})
		testutil.AssertErrorIs(t, err, conflict.ErrLosersPending)
		assert.Len(t, f.store.Bookings(), 3)
		assert.Zero(t, f.cache.Invalidations)
	})

	t.Run("kept booking cannot be a loser", func(t *testing.T) {
		f := newFixture(calendar()...)

		_, err := f.workflow.KeepOne(ctx, commands.KeepOneRequest{
			KeepBookingID: 1,
			Losers: []commands.LoserDisposal{
				{BookingID: 1, Action: commands.LoserReject},
			},
		})
		testutil.AssertErrorIs(t, err, conflict.ErrInvalidTransition)
	})

	t.Run("unknown loser action", func(t *testing.T) {
		f := newFixture(calendar()...)

		_, err := f.workflow.KeepOne(ctx, commands.KeepOneRequest{
			KeepBookingID: 1,
			Losers:        []commands.LoserDisposal{{BookingID: 2, Action: "archive"}},
		})
		testutil.AssertErrorIs(t, err, commands.ErrInvalidLoserAction)
		assert.Zero(t, f.store.Commits)
	})
}
