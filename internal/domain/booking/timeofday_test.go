//go:build unit

package booking_test

import (
	"testing"

	"gigbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
		errIs error
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:30", want: 570},
		{name: "single digit hour", input: "9:05", want: 545},
		{name: "last minute of day", input: "23:59", want: 1439},
		{name: "seconds are ignored", input: "18:00:45", want: 1080},
		{name: "surrounding whitespace", input: " 14:15 ", want: 855},
		{name: "hour out of range", input: "24:00", errIs: booking.ErrMalformedTime},
		{name: "minute out of range", input: "12:60", errIs: booking.ErrMalformedTime},
		{name: "single digit minute", input: "12:5", errIs: booking.ErrMalformedTime},
		{name: "no separator", input: "1200", errIs: booking.ErrMalformedTime},
		{name: "letters", input: "ab:cd", errIs: booking.ErrMalformedTime},
		{name: "twelve hour clock", input: "7pm", errIs: booking.ErrMalformedTime},
		{name: "empty", input: "", errIs: booking.ErrMalformedTime},
		{name: "negative", input: "-1:00", errIs: booking.ErrMalformedTime},
		{name: "bad seconds", input: "10:00:99", errIs: booking.ErrMalformedTime},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := booking.ToMinutes(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", booking.FormatMinutes(0))
	assert.Equal(t, "09:05", booking.FormatMinutes(545))
	assert.Equal(t, "01:30", booking.FormatMinutes(booking.MinutesPerDay+90))
	assert.Equal(t, "23:00", booking.FormatMinutes(-60))
}
