//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gigbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("civil date", func(t *testing.T) {
		d, err := booking.ParseDate("2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-01", d.String())
		assert.Equal(t, booking.NewDate(2025, time.June, 1), d)
	})

	t.Run("timestamp keeps its own offset", func(t *testing.T) {
		d, err := booking.ParseDate("2025-06-01T23:30:00-05:00")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-01", d.String())
	})

	t.Run("malformed", func(t *testing.T) {
		for _, in := range []string{"", "   ", "01/06/2025", "2025-13-01", "2025-02-30", "tomorrow"} {
			_, err := booking.ParseDate(in)
			assert.ErrorIs(t, err, booking.ErrMalformedDate, in)
		}
	})

	t.Run("ordering", func(t *testing.T) {
		a := booking.NewDate(2025, time.June, 1)
		b := booking.NewDate(2025, time.June, 2)
		assert.True(t, a.Before(b))
		assert.False(t, b.Before(a))
		assert.False(t, a.Before(a))
		assert.True(t, booking.Date{}.IsZero())
		assert.False(t, a.IsZero())
	})
}
