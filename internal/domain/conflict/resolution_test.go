//go:build unit

package conflict_test

import (
	"strings"
	"testing"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingIDSet(t *testing.T) {
	s := conflict.NewBookingIDSet(12, 3, 7, 3)

	assert.Equal(t, []int64{3, 7, 12}, s.IDs())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "3,7,12", s.Key())
	assert.True(t, s.Contains(7))
	assert.False(t, s.Contains(8))

	assert.True(t, s.Equal(conflict.NewBookingIDSet(7, 12, 3)))
	assert.False(t, s.Equal(conflict.NewBookingIDSet(3, 7)))
	assert.False(t, s.Equal(conflict.NewBookingIDSet(3, 7, 12, 13)))

	// digit concatenation must not collide
	assert.NotEqual(t, conflict.NewBookingIDSet(1, 23).Key(), conflict.NewBookingIDSet(12, 3).Key())

	ids := s.IDs()
	ids[0] = 99
	assert.Equal(t, []int64{3, 7, 12}, s.IDs())
}

func TestNewResolution(t *testing.T) {
	date := booking.NewDate(2025, 6, 1)

	t.Run("valid", func(t *testing.T) {
		notes := "  travel is fine  "
		r, err := conflict.NewResolution([]int64{2, 1}, date, &notes, fixedNow)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, []int64{1, 2}, r.BookingIDs().IDs())
		assert.Equal(t, date, r.ConflictDate())
		require.NotNil(t, r.Notes())
		assert.Equal(t, "travel is fine", *r.Notes())
		assert.Equal(t, fixedNow, r.CreatedAt())
	})

	t.Run("blank notes become nil", func(t *testing.T) {
		blank := "   "
		r, err := conflict.NewResolution([]int64{1, 2}, date, &blank, fixedNow)
		require.NoError(t, err)
		assert.Nil(t, r.Notes())
	})

	cases := []struct {
		name  string
		ids   []int64
		date  booking.Date
		notes string
		errIs error
	}{
		{name: "single booking", ids: []int64{1}, date: date, errIs: conflict.ErrResolutionTooSmall},
		{name: "duplicate ids collapse", ids: []int64{4, 4}, date: date, errIs: conflict.ErrResolutionTooSmall},
		{name: "no date", ids: []int64{1, 2}, errIs: conflict.ErrResolutionDate},
		{name: "notes too long", ids: []int64{1, 2}, date: date, notes: strings.Repeat("a", conflict.MaxNotesLength+1), errIs: conflict.ErrNotesTooLong},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			notes := c.notes
			r, err := conflict.NewResolution(c.ids, c.date, &notes, fixedNow)
			require.ErrorIs(t, err, c.errIs)
			assert.Nil(t, r)
		})
	}
}

func TestResolutionIndex(t *testing.T) {
	index := conflict.NewResolutionIndex([]*conflict.Resolution{
		resolution(t, 1, 2),
		resolution(t, 2, 1),
		nil,
		resolution(t, 5, 6, 7),
	})

	assert.True(t, index.IsResolved(conflict.NewBookingIDSet(2, 1)))
	assert.True(t, index.IsResolved(conflict.NewBookingIDSet(7, 6, 5)))
	assert.False(t, index.IsResolved(conflict.NewBookingIDSet(1, 2, 3)))
	assert.False(t, index.IsResolved(conflict.NewBookingIDSet(5, 6)))
	assert.False(t, index.IsResolved(conflict.NewBookingIDSet()))

	var empty *conflict.ResolutionIndex
	assert.False(t, empty.IsResolved(conflict.NewBookingIDSet(1, 2)))
}
