package booking

import "strings"

type IntervalKind int

const (
	// IntervalUnknown has no usable start time.
	IntervalUnknown IntervalKind = iota
	// IntervalOpenStart has a start time but no usable end time.
	IntervalOpenStart
	// IntervalBounded has both start and end.
	IntervalBounded
)

func (k IntervalKind) String() string {
	switch k {
	case IntervalOpenStart:
		return "open_start"
	case IntervalBounded:
		return "bounded"
	default:
		return "unknown"
	}
}

// Interval is a half-open [Start, End) range in minutes after midnight of the
// event date. End may exceed MinutesPerDay when an engagement runs past midnight.
type Interval struct {
	Kind  IntervalKind
	Start int
	End   int
}

// NewInterval builds the interval state for a start/end pair. Malformed values
// are folded into a missing time and reported back as warnings.
func NewInterval(start, end *string) (Interval, []error) {
	var warnings []error

	startMin, hasStart, err := optionalMinutes(start)
	if err != nil {
		warnings = append(warnings, err)
	}
	endMin, hasEnd, err := optionalMinutes(end)
	if err != nil {
		warnings = append(warnings, err)
	}

	switch {
	case !hasStart:
		return Interval{Kind: IntervalUnknown}, warnings
	case !hasEnd || endMin == startMin:
		return Interval{Kind: IntervalOpenStart, Start: startMin}, warnings
	case endMin < startMin:
		endMin += MinutesPerDay
	}

	return Interval{Kind: IntervalBounded, Start: startMin, End: endMin}, warnings
}

func (i Interval) IsBounded() bool {
	return i.Kind == IntervalBounded
}

// Overlaps reports start1 < end2 && end1 > start2. Both intervals must be bounded.
func (i Interval) Overlaps(other Interval) bool {
	if !i.IsBounded() || !other.IsBounded() {
		return false
	}
	return i.Start < other.End && i.End > other.Start
}

// OverlapMinutes is the size of the intersection, zero when disjoint or unbounded.
func (i Interval) OverlapMinutes(other Interval) int {
	if !i.Overlaps(other) {
		return 0
	}
	return min(i.End, other.End) - max(i.Start, other.Start)
}

// Touches reports back-to-back intervals where one ends exactly as the other starts.
func (i Interval) Touches(other Interval) bool {
	if !i.IsBounded() || !other.IsBounded() {
		return false
	}
	return i.End == other.Start || other.End == i.Start
}

func optionalMinutes(v *string) (int, bool, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return 0, false, nil
	}
	m, err := ToMinutes(*v)
	if err != nil {
		return 0, false, err
	}
	return m, true, nil
}
