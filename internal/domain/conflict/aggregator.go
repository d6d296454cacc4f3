package conflict

import (
	"cmp"
	"log/slog"
	"slices"

	"gigbook/internal/domain/booking"
)

type candidate struct {
	booking  booking.Booking
	interval booking.Interval
}

type pair struct {
	a, b  int
	class Classification
}

// Analyze buckets bookings by date, classifies every pair inside a bucket and
// groups conflicting bookings into connected components. A soft pair is
// downgraded to resolved only when its component's id set has a matching
// resolution.
func (d *Detector) Analyze(bookings []booking.Booking, lookup ResolutionLookup) Report {
	buckets, skipped := d.bucket(bookings)

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	slices.Sort(dates)

	report := Report{Conflicts: Map{}, Skipped: skipped}
	for _, date := range dates {
		d.analyzeDate(date, buckets[date], lookup, &report)
	}

	for id := range report.Conflicts {
		slices.SortFunc(report.Conflicts[id], func(x, y Conflict) int {
			return cmp.Compare(x.WithBookingID, y.WithBookingID)
		})
	}
	return report
}

func (d *Detector) bucket(bookings []booking.Booking) (map[string][]candidate, []int64) {
	buckets := make(map[string][]candidate)
	seen := make(map[int64]struct{}, len(bookings))
	var skipped []int64

	for _, b := range bookings {
		if _, dup := seen[b.ID]; dup {
			d.logger.Warn("duplicate booking id in detection input, keeping first", slog.Int64("booking_id", b.ID))
			continue
		}
		seen[b.ID] = struct{}{}

		date, err := b.Date()
		if err != nil {
			d.logger.Warn("excluding booking with malformed event date",
				slog.Int64("booking_id", b.ID),
				slog.String("event_date", b.EventDate),
				slog.String("error", err.Error()))
			skipped = append(skipped, b.ID)
			continue
		}

		interval, warnings := b.Interval()
		for _, w := range warnings {
			d.logger.Warn("treating malformed time as missing",
				slog.Int64("booking_id", b.ID),
				slog.String("error", w.Error()))
		}

		key := date.String()
		buckets[key] = append(buckets[key], candidate{booking: b, interval: interval})
	}

	for key := range buckets {
		slices.SortFunc(buckets[key], func(x, y candidate) int {
			return cmp.Compare(x.booking.ID, y.booking.ID)
		})
	}
	slices.Sort(skipped)
	return buckets, skipped
}

func (d *Detector) analyzeDate(date string, members []candidate, lookup ResolutionLookup, report *Report) {
	if len(members) < 2 {
		return
	}

	var pairs []pair
	uf := newUnionFind(len(members))
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			class, ok := Classify(members[i].interval, members[j].interval)
			if !ok {
				continue
			}
			pairs = append(pairs, pair{a: i, b: j, class: class})
			uf.union(i, j)
		}
	}
	if len(pairs) == 0 {
		return
	}

	groups := make(map[int]*Group)
	var order []int
	for i := range members {
		root := uf.find(i)
		g, ok := groups[root]
		if !ok {
			g = &Group{Date: date}
			groups[root] = g
			order = append(order, root)
		}
		g.BookingIDs = NewBookingIDSet(append(g.BookingIDs.IDs(), members[i].booking.ID)...)
	}

	resolved := make(map[int]bool, len(groups))
	for root, g := range groups {
		if g.BookingIDs.Len() < 2 {
			continue
		}
		resolved[root] = lookup != nil && lookup.IsResolved(g.BookingIDs)
	}

	for _, p := range pairs {
		root := uf.find(p.a)
		g := groups[root]

		class := p.class
		if class.Severity == SeveritySoft && resolved[root] {
			class.Severity = SeverityResolved
		}
		if class.Severity == SeverityHard {
			g.HasHard = true
		}
		if class.Severity.rank() > g.Severity.rank() {
			g.Severity = class.Severity
		}

		a, b := members[p.a].booking, members[p.b].booking
		report.Conflicts[a.ID] = append(report.Conflicts[a.ID], newConflict(a, b, date, class))
		report.Conflicts[b.ID] = append(report.Conflicts[b.ID], newConflict(b, a, date, class))
	}

	for _, root := range order {
		g := groups[root]
		if g.BookingIDs.Len() < 2 {
			continue
		}
		g.Resolved = g.Severity == SeverityResolved
		report.Groups = append(report.Groups, *g)
	}
}

func newConflict(self, other booking.Booking, date string, class Classification) Conflict {
	var overlap *int
	if class.OverlapMinutes != nil {
		v := *class.OverlapMinutes
		overlap = &v
	}
	return Conflict{
		BookingID:      self.ID,
		WithBookingID:  other.ID,
		Date:           date,
		Severity:       class.Severity,
		Reason:         class.Reason,
		OverlapMinutes: overlap,
		Message:        describe(class, other),
		Time:           other.TimeLabel(),
		ClientName:     other.ClientName,
		Status:         other.Status,
	}
}

type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return u.parent[i]
}

// union keeps the smaller index as root so component order follows booking id order.
func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
}
