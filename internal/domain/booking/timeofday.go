package booking

import (
	"fmt"
	"strings"

	"gigbook/internal/pkg/errs"
)

const MinutesPerDay = 24 * 60

var ErrMalformedTime = errs.New("malformed time of day")

// ToMinutes parses a 24-hour HH:MM value into minutes after midnight.
// A trailing :SS component is accepted and ignored.
func ToMinutes(hhmm string) (int, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, errs.Wrap(ErrMalformedTime, fmt.Sprintf("%q", hhmm))
	}

	hours, ok := parseDigits(parts[0], 1, 2)
	if !ok || hours > 23 {
		return 0, errs.Wrap(ErrMalformedTime, fmt.Sprintf("%q: hour out of range", hhmm))
	}
	minutes, ok := parseDigits(parts[1], 2, 2)
	if !ok || minutes > 59 {
		return 0, errs.Wrap(ErrMalformedTime, fmt.Sprintf("%q: minute out of range", hhmm))
	}
	if len(parts) == 3 {
		if seconds, ok := parseDigits(parts[2], 2, 2); !ok || seconds > 59 {
			return 0, errs.Wrap(ErrMalformedTime, fmt.Sprintf("%q: second out of range", hhmm))
		}
	}

	return hours*60 + minutes, nil
}

// FormatMinutes renders minutes after midnight as HH:MM, wrapping past midnight.
func FormatMinutes(m int) string {
	m %= MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func parseDigits(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
