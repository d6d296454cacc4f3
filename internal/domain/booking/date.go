package booking

import (
	"fmt"
	"strings"
	"time"

	"gigbook/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

var ErrMalformedDate = errs.New("malformed event date")

// Date is a time-zone-naive calendar date.
type Date struct {
	year  int
	month time.Month
	day   int
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp. For timestamps the
// calendar date is taken in the timestamp's own offset.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, errs.Wrap(ErrMalformedDate, "empty date")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return dateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return dateOf(t), nil
	}
	return Date{}, errs.Wrap(ErrMalformedDate, fmt.Sprintf("%q", s))
}

func NewDate(year int, month time.Month, day int) Date {
	return dateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func dateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}
