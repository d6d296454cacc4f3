package conflict

import (
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"gigbook/internal/domain/booking"
	"gigbook/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxNotesLength = 2000

var (
	ErrResolutionTooSmall = errs.New("a resolution needs at least two bookings")
	ErrNotesTooLong       = errs.New("resolution notes too long")
	ErrResolutionDate     = errs.New("resolution date is required")
)

// BookingIDSet is an order-independent set of booking ids, held sorted.
type BookingIDSet struct {
	ids []int64
}

func NewBookingIDSet(ids ...int64) BookingIDSet {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return BookingIDSet{ids: slices.Compact(sorted)}
}

func (s BookingIDSet) IDs() []int64 {
	return slices.Clone(s.ids)
}

func (s BookingIDSet) Len() int {
	return len(s.ids)
}

func (s BookingIDSet) Contains(id int64) bool {
	_, found := slices.BinarySearch(s.ids, id)
	return found
}

// Equal is exact set equality: same cardinality, same members.
func (s BookingIDSet) Equal(other BookingIDSet) bool {
	return slices.Equal(s.ids, other.ids)
}

// Key is the canonical sorted-tuple form, e.g. "3,7,12".
func (s BookingIDSet) Key() string {
	parts := make([]string, len(s.ids))
	for i, id := range s.ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func (s BookingIDSet) String() string {
	return "{" + s.Key() + "}"
}

// Resolution records a user's acceptance of a soft conflict group.
type Resolution struct {
	id           uuid.UUID
	bookingIDs   BookingIDSet
	conflictDate booking.Date
	notes        *string
	createdAt    time.Time
}

func NewResolution(bookingIDs []int64, conflictDate booking.Date, notes *string, now time.Time) (*Resolution, error) {
	set := NewBookingIDSet(bookingIDs...)
	if set.Len() < 2 {
		return nil, ErrResolutionTooSmall
	}
	if conflictDate.IsZero() {
		return nil, ErrResolutionDate
	}

	var cleaned *string
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		if utf8.RuneCountInString(trimmed) > MaxNotesLength {
			return nil, ErrNotesTooLong
		}
		if trimmed != "" {
			cleaned = &trimmed
		}
	}

	return &Resolution{
		id:           uuid.New(),
		bookingIDs:   set,
		conflictDate: conflictDate,
		notes:        cleaned,
		createdAt:    now,
	}, nil
}

func ReconstructResolution(id uuid.UUID, bookingIDs []int64, conflictDate booking.Date, notes *string, createdAt time.Time) *Resolution {
	return &Resolution{
		id:           id,
		bookingIDs:   NewBookingIDSet(bookingIDs...),
		conflictDate: conflictDate,
		notes:        notes,
		createdAt:    createdAt,
	}
}

func (r *Resolution) ID() uuid.UUID              { return r.id }
func (r *Resolution) BookingIDs() BookingIDSet   { return r.bookingIDs }
func (r *Resolution) ConflictDate() booking.Date { return r.conflictDate }
func (r *Resolution) Notes() *string             { return r.notes }
func (r *Resolution) CreatedAt() time.Time       { return r.createdAt }

// ResolutionLookup answers whether a booking-id set has been accepted as resolved.
type ResolutionLookup interface {
	IsResolved(ids BookingIDSet) bool
}

// ResolutionIndex is a ResolutionLookup over a list of stored resolutions.
// Duplicate records for the same set are harmless.
type ResolutionIndex struct {
	keys map[string]struct{}
}

func NewResolutionIndex(resolutions []*Resolution) *ResolutionIndex {
	keys := make(map[string]struct{}, len(resolutions))
	for _, r := range resolutions {
		if r == nil {
			continue
		}
		keys[r.bookingIDs.Key()] = struct{}{}
	}
	return &ResolutionIndex{keys: keys}
}

func (x *ResolutionIndex) IsResolved(ids BookingIDSet) bool {
	if x == nil || ids.Len() == 0 {
		return false
	}
	_, ok := x.keys[ids.Key()]
	return ok
}
