package conflict

import (
	"fmt"
	"log/slog"

	"gigbook/internal/domain/booking"
)

// Classification is the verdict for one same-date pair before resolutions are applied.
type Classification struct {
	Severity       Severity
	Reason         Reason
	OverlapMinutes *int
}

// Classify compares the intervals of two bookings on the same date. The second
// result is false when the pair does not conflict, which only happens for
// bounded intervals that touch end to start.
func Classify(a, b booking.Interval) (Classification, bool) {
	switch {
	case a.Kind == booking.IntervalUnknown || b.Kind == booking.IntervalUnknown:
		return Classification{Severity: SeverityHard, Reason: ReasonMissingStartTime}, true
	case !a.IsBounded() || !b.IsBounded():
		return Classification{Severity: SeverityHard, Reason: ReasonMissingEndTime}, true
	case a.Overlaps(b):
		minutes := a.OverlapMinutes(b)
		return Classification{Severity: SeverityHard, Reason: ReasonTimeOverlap, OverlapMinutes: &minutes}, true
	case a.Touches(b):
		return Classification{}, false
	default:
		return Classification{Severity: SeveritySoft, Reason: ReasonSameDay}, true
	}
}

// Detector runs conflict detection over booking snapshots. It holds no state
// between runs apart from its logger.
type Detector struct {
	logger *slog.Logger
}

func NewDetector(logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{logger: logger.With("component", "conflict_detector")}
}

// Detect returns the conflict map for the given bookings.
func (d *Detector) Detect(bookings []booking.Booking, lookup ResolutionLookup) Map {
	return d.Analyze(bookings, lookup).Conflicts
}

// DetectConflicts is the package-level entry point for callers without their
// own Detector.
func DetectConflicts(bookings []booking.Booking, resolutions []*Resolution) Map {
	return NewDetector(nil).Detect(bookings, NewResolutionIndex(resolutions))
}

func describe(c Classification, other booking.Booking) string {
	name := other.ClientName
	if name == "" {
		name = fmt.Sprintf("booking #%d", other.ID)
	}
	switch c.Severity {
	case SeverityResolved:
		return fmt.Sprintf("Same day as %s (marked as resolved)", name)
	case SeveritySoft:
		return fmt.Sprintf("Same day as %s, times do not overlap", name)
	}
	switch c.Reason {
	case ReasonTimeOverlap:
		return fmt.Sprintf("Overlaps with %s by %d minutes", name, *c.OverlapMinutes)
	case ReasonMissingEndTime:
		return fmt.Sprintf("Same day as %s, end time missing so overlap cannot be ruled out", name)
	default:
		return fmt.Sprintf("Same day as %s, start time missing so overlap cannot be ruled out", name)
	}
}
