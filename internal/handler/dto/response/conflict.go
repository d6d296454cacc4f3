package response

import (
	"time"

	"gigbook/internal/domain/conflict"
	"gigbook/internal/usecase/commands"
)

type ConflictResponse struct {
	BookingID      int64  `json:"booking_id"`
	WithBookingID  int64  `json:"with_booking_id"`
	Date           string `json:"date"`
	Severity       string `json:"severity"`
	Reason         string `json:"reason"`
	OverlapMinutes *int   `json:"overlap_minutes,omitempty"`
	Message        string `json:"message"`
	Time           string `json:"time"`
	ClientName     string `json:"client_name"`
	Status         string `json:"status"`
}

func FromConflicts(cs []conflict.Conflict) []ConflictResponse {
	res := make([]ConflictResponse, len(cs))
	for i, c := range cs {
		res[i] = ConflictResponse{
			BookingID:      c.BookingID,
			WithBookingID:  c.WithBookingID,
			Date:           c.Date,
			Severity:       c.Severity.String(),
			Reason:         string(c.Reason),
			OverlapMinutes: c.OverlapMinutes,
			Message:        c.Message,
			Time:           c.Time,
			ClientName:     c.ClientName,
			Status:         c.Status.String(),
		}
	}
	return res
}

// ConflictMapResponse is keyed by booking id. Bookings without conflicts are absent.
type ConflictMapResponse map[int64][]ConflictResponse

func FromConflictMap(m conflict.Map) ConflictMapResponse {
	res := make(ConflictMapResponse, len(m))
	for id, cs := range m {
		res[id] = FromConflicts(cs)
	}
	return res
}

type GroupResponse struct {
	Date       string  `json:"date"`
	BookingIDs []int64 `json:"booking_ids"`
	Severity   string  `json:"severity"`
	HasHard    bool    `json:"has_hard"`
	Resolved   bool    `json:"resolved"`
}

func FromGroup(g conflict.Group) GroupResponse {
	return GroupResponse{
		Date:       g.Date,
		BookingIDs: g.BookingIDs.IDs(),
		Severity:   g.Severity.String(),
		HasHard:    g.HasHard,
		Resolved:   g.Resolved,
	}
}

func FromGroups(gs []conflict.Group) []GroupResponse {
	res := make([]GroupResponse, len(gs))
	for i, g := range gs {
		res[i] = FromGroup(g)
	}
	return res
}

type ResolutionResponse struct {
	ID           string    `json:"id"`
	BookingIDs   []int64   `json:"booking_ids"`
	ConflictDate string    `json:"conflict_date"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromResolution(r *conflict.Resolution) *ResolutionResponse {
	if r == nil {
		return nil
	}
	return &ResolutionResponse{
		ID:           r.ID().String(),
		BookingIDs:   r.BookingIDs().IDs(),
		ConflictDate: r.ConflictDate().String(),
		Notes:        r.Notes(),
		CreatedAt:    r.CreatedAt(),
	}
}

func FromResolutions(rs []*conflict.Resolution) []*ResolutionResponse {
	res := make([]*ResolutionResponse, len(rs))
	for i, r := range rs {
		res[i] = FromResolution(r)
	}
	return res
}

type TransitionResponse struct {
	From      string `json:"from"`
	To        string `json:"to"`
	BookingID int64  `json:"booking_id,omitempty"`
}

type WorkflowResponse struct {
	State       string               `json:"state"`
	Group       GroupResponse        `json:"group"`
	Transitions []TransitionResponse `json:"transitions"`
	Resolution  *ResolutionResponse  `json:"resolution,omitempty"`
	Conflicts   ConflictMapResponse  `json:"conflicts"`
}

func FromWorkflowResult(r *commands.WorkflowResult) *WorkflowResponse {
	transitions := make([]TransitionResponse, len(r.Transitions))
	for i, t := range r.Transitions {
		transitions[i] = TransitionResponse{From: t.From.String(), To: t.To.String(), BookingID: t.BookingID}
	}
	return &WorkflowResponse{
		State:       r.State.String(),
		Group:       FromGroup(r.Group),
		Transitions: transitions,
		Resolution:  FromResolution(r.Resolution),
		Conflicts:   FromConflictMap(r.Conflicts),
	}
}
