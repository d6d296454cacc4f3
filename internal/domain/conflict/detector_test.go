//go:build unit

package conflict_test

import (
	"io"
	"log/slog"
	"testing"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"
	"gigbook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = "2025-06-01"

func newDetector() *conflict.Detector {
	return conflict.NewDetector(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func bk(id int64, start, end string) booking.Booking {
	return builder.NewBookingBuilder().WithID(id).On(day).At(start, end).BuildDomain()
}

func resolution(t *testing.T, ids ...int64) *conflict.Resolution {
	t.Helper()
	date, err := booking.ParseDate(day)
	require.NoError(t, err)
	r, err := conflict.NewResolution(ids, date, nil, fixedNow)
	require.NoError(t, err)
	return r
}

func interval(t *testing.T, start, end string) booking.Interval {
	t.Helper()
	iv, warnings := bk(0, start, end).Interval()
	require.Empty(t, warnings)
	return iv
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		a, b     booking.Interval
		ok       bool
		severity conflict.Severity
		reason   conflict.Reason
		overlap  *int
	}{
		{
			name:     "overlap is hard with minutes",
			a:        interval(t, "09:00", "10:00"),
			b:        interval(t, "09:30", "10:30"),
			ok:       true,
			severity: conflict.SeverityHard,
			reason:   conflict.ReasonTimeOverlap,
			overlap:  intPtr(30),
		},
		{
			name:     "disjoint is soft",
			a:        interval(t, "09:00", "10:00"),
			b:        interval(t, "14:00", "15:00"),
			ok:       true,
			severity: conflict.SeveritySoft,
			reason:   conflict.ReasonSameDay,
		},
		{
			name: "touching is no conflict",
			a:    interval(t, "16:00", "18:00"),
			b:    interval(t, "18:00", "20:00"),
		},
		{
			name:     "missing start is hard",
			a:        interval(t, "", ""),
			b:        interval(t, "09:00", "10:00"),
			ok:       true,
			severity: conflict.SeverityHard,
			reason:   conflict.ReasonMissingStartTime,
		},
		{
			name:     "missing start wins over missing end",
			a:        interval(t, "", "10:00"),
			b:        interval(t, "09:00", ""),
			ok:       true,
			severity: conflict.SeverityHard,
			reason:   conflict.ReasonMissingStartTime,
		},
		{
			name:     "open start against bounded is hard",
			a:        interval(t, "08:00", ""),
			b:        interval(t, "20:00", "23:00"),
			ok:       true,
			severity: conflict.SeverityHard,
			reason:   conflict.ReasonMissingEndTime,
		},
		{
			name:     "both open start is hard",
			a:        interval(t, "08:00", ""),
			b:        interval(t, "20:00", ""),
			ok:       true,
			severity: conflict.SeverityHard,
			reason:   conflict.ReasonMissingEndTime,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, order := range [][2]booking.Interval{{c.a, c.b}, {c.b, c.a}} {
				got, ok := conflict.Classify(order[0], order[1])
				require.Equal(t, c.ok, ok)
				if !ok {
					continue
				}
				assert.Equal(t, c.severity, got.Severity)
				assert.Equal(t, c.reason, got.Reason)
				assert.Equal(t, c.overlap, got.OverlapMinutes)
			}
		})
	}
}

func TestDetectConflicts_Scenarios(t *testing.T) {
	t.Run("overlapping times are hard with overlap minutes", func(t *testing.T) {
		got := conflict.DetectConflicts([]booking.Booking{bk(1, "09:00", "10:00"), bk(2, "09:30", "10:30")}, nil)

		require.Len(t, got.For(1), 1)
		c := got.For(1)[0]
		assert.Equal(t, int64(2), c.WithBookingID)
		assert.Equal(t, conflict.SeverityHard, c.Severity)
		require.NotNil(t, c.OverlapMinutes)
		assert.Equal(t, 30, *c.OverlapMinutes)
		assert.Equal(t, "09:30 - 10:30", c.Time)
	})

	t.Run("same day without overlap is soft", func(t *testing.T) {
		got := conflict.DetectConflicts([]booking.Booking{bk(1, "09:00", "10:00"), bk(2, "14:00", "15:00")}, nil)

		require.Len(t, got.For(1), 1)
		assert.Equal(t, conflict.SeveritySoft, got.For(1)[0].Severity)
		assert.Nil(t, got.For(1)[0].OverlapMinutes)
	})

	t.Run("matching resolution reports resolved", func(t *testing.T) {
		got := conflict.DetectConflicts(
			[]booking.Booking{bk(1, "09:00", "10:00"), bk(2, "14:00", "15:00")},
			[]*conflict.Resolution{resolution(t, 2, 1)},
		)

		assert.Equal(t, conflict.SeverityResolved, got.For(1)[0].Severity)
		assert.Equal(t, conflict.SeverityResolved, got.For(2)[0].Severity)
	})

	t.Run("missing time is hard", func(t *testing.T) {
		got := conflict.DetectConflicts([]booking.Booking{bk(1, "", ""), bk(2, "09:00", "10:00")}, nil)

		assert.Equal(t, conflict.SeverityHard, got.For(1)[0].Severity)
		assert.Equal(t, conflict.ReasonMissingStartTime, got.For(1)[0].Reason)
		assert.Equal(t, "Time not set", got.For(2)[0].Time)
	})

	t.Run("back to back bookings do not conflict", func(t *testing.T) {
		got := conflict.DetectConflicts([]booking.Booking{bk(1, "16:00", "18:00"), bk(2, "18:00", "21:00")}, nil)

		assert.Empty(t, got)
		assert.False(t, got.Has(1))
		assert.False(t, got.Has(2))
	})

	t.Run("three mutual overlaps", func(t *testing.T) {
		got := conflict.DetectConflicts([]booking.Booking{
			bk(1, "19:00", "22:00"),
			bk(2, "20:00", "23:00"),
			bk(3, "21:00", "21:30"),
		}, nil)

		assert.Equal(t, []int64{2, 3}, withIDs(got.For(1)))
		assert.Equal(t, []int64{1, 3}, withIDs(got.For(2)))
		assert.Equal(t, []int64{1, 2}, withIDs(got.For(3)))
	})
}

func TestDetector_FailSoft(t *testing.T) {
	t.Run("malformed date excludes only that booking", func(t *testing.T) {
		bad := builder.NewBookingBuilder().WithID(9).On("not-a-date").BuildDomain()
		report := newDetector().Analyze([]booking.Booking{bad, bk(1, "09:00", "10:00"), bk(2, "09:30", "11:00")}, nil)

		assert.Equal(t, []int64{9}, report.Skipped)
		assert.False(t, report.Conflicts.Has(9))
		assert.True(t, report.Conflicts.Has(1))
	})

	t.Run("malformed time is treated as missing", func(t *testing.T) {
		odd := bk(1, "half past seven", "22:00")
		got := newDetector().Detect([]booking.Booking{odd, bk(2, "08:00", "09:00")}, nil)

		require.Len(t, got.For(2), 1)
		assert.Equal(t, conflict.SeverityHard, got.For(2)[0].Severity)
		assert.Equal(t, conflict.ReasonMissingStartTime, got.For(2)[0].Reason)
	})

	t.Run("duplicate id is evaluated once", func(t *testing.T) {
		got := newDetector().Detect([]booking.Booking{bk(1, "09:00", "10:00"), bk(1, "09:00", "10:00"), bk(2, "09:30", "10:30")}, nil)

		assert.Len(t, got.For(1), 1)
		assert.Len(t, got.For(2), 1)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, newDetector().Detect(nil, nil))
	})
}

func withIDs(cs []conflict.Conflict) []int64 {
	ids := make([]int64, len(cs))
	for i, c := range cs {
		ids[i] = c.WithBookingID
	}
	return ids
}

func intPtr(v int) *int { return &v }
