package conflict

import (
	"fmt"
	"slices"

	"gigbook/internal/pkg/errs"
)

type State string

const (
	StateDetected    State = "detected"
	StateEditedTimes State = "edited_times"
	StateRejected    State = "rejected"
	StateResolved    State = "resolved"
	StateKeptOne     State = "kept_one"
)

func (s State) String() string {
	return string(s)
}

var (
	ErrInvalidTransition         = errs.New("invalid conflict workflow transition")
	ErrHardConflictNotResolvable = errs.New("hard conflicts cannot be marked resolved")
	ErrNotInConflict             = errs.New("booking is not part of a conflict group")
	ErrGroupMismatch             = errs.New("booking ids do not match a current conflict group")
	ErrLosersPending             = errs.New("losing bookings must be edited or rejected")
)

// Workflow tracks how one conflict group is being disposed of. It only plans
// transitions; callers perform the mutation and discard the workflow if it fails.
type Workflow struct {
	group   Group
	state   State
	kept    int64
	pending []int64
	history []Transition
}

type Transition struct {
	From      State
	To        State
	BookingID int64
}

func NewWorkflow(group Group) *Workflow {
	return &Workflow{group: group, state: StateDetected}
}

func (w *Workflow) State() State         { return w.state }
func (w *Workflow) Group() Group         { return w.group }
func (w *Workflow) KeptBookingID() int64 { return w.kept }

func (w *Workflow) History() []Transition {
	return slices.Clone(w.history)
}

// Pending lists losing bookings still waiting for an edit or rejection after KeepOne.
func (w *Workflow) Pending() []int64 {
	return slices.Clone(w.pending)
}

// EditTimes plans a time edit on a member booking.
func (w *Workflow) EditTimes(bookingID int64) error {
	return w.dispose(bookingID, StateEditedTimes)
}

// Reject plans the deletion of a member booking.
func (w *Workflow) Reject(bookingID int64) error {
	return w.dispose(bookingID, StateRejected)
}

// Resolve plans the acceptance of the whole group. Only groups without hard
// pairs qualify.
func (w *Workflow) Resolve() error {
	if w.state != StateDetected {
		return w.invalid(StateResolved)
	}
	if !w.group.IsSoftOnly() {
		return ErrHardConflictNotResolvable
	}
	w.move(StateResolved, 0)
	return nil
}

// KeepOne marks one member as authoritative. It changes nothing by itself; every
// other member must then be edited or rejected.
func (w *Workflow) KeepOne(bookingID int64) error {
	if w.state != StateDetected {
		return w.invalid(StateKeptOne)
	}
	if !w.group.Contains(bookingID) {
		return errs.Wrap(ErrNotInConflict, fmt.Sprintf("booking %d", bookingID))
	}
	w.kept = bookingID
	w.pending = slices.DeleteFunc(w.group.BookingIDs.IDs(), func(id int64) bool { return id == bookingID })
	w.move(StateKeptOne, bookingID)
	return nil
}

// Complete reports whether the workflow has reached a state that changes data.
func (w *Workflow) Complete() error {
	switch w.state {
	case StateEditedTimes, StateRejected, StateResolved:
		return nil
	case StateKeptOne:
		return errs.Wrap(ErrLosersPending, fmt.Sprintf("pending %v", w.pending))
	default:
		return w.invalid(w.state)
	}
}

func (w *Workflow) dispose(bookingID int64, to State) error {
	if !w.group.Contains(bookingID) {
		return errs.Wrap(ErrNotInConflict, fmt.Sprintf("booking %d", bookingID))
	}

	switch w.state {
	case StateDetected:
		w.move(to, bookingID)
		return nil
	case StateKeptOne:
		if bookingID == w.kept {
			return errs.Wrap(ErrInvalidTransition, "the kept booking cannot be disposed of")
		}
		idx := slices.Index(w.pending, bookingID)
		if idx < 0 {
			return errs.Wrap(ErrInvalidTransition, fmt.Sprintf("booking %d already handled", bookingID))
		}
		w.pending = slices.Delete(w.pending, idx, idx+1)
		if len(w.pending) == 0 {
			w.move(to, bookingID)
			return nil
		}
		w.history = append(w.history, Transition{From: w.state, To: to, BookingID: bookingID})
		return nil
	default:
		return w.invalid(to)
	}
}

func (w *Workflow) move(to State, bookingID int64) {
	w.history = append(w.history, Transition{From: w.state, To: to, BookingID: bookingID})
	w.state = to
}

func (w *Workflow) invalid(to State) error {
	return errs.Wrap(ErrInvalidTransition, fmt.Sprintf("%s -> %s", w.state, to))
}
