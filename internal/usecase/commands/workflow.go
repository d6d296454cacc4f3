package commands

import (
	"context"
	"fmt"
	"log/slog"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"
	"gigbook/internal/infra"
	"gigbook/internal/pkg/clock"
	"gigbook/internal/pkg/errs"
	"gigbook/internal/usecase/shared"
)

var (
	ErrInvalidLoserAction = errs.New("loser action must be reject or edit")
	ErrNoTimesGiven       = errs.New("at least one of event_time or event_end_time is required")
)

type LoserAction string

const (
	LoserReject LoserAction = "reject"
	LoserEdit   LoserAction = "edit"
)

type EditTimesRequest struct {
	BookingID    int64
	EventTime    *string
	EventEndTime *string
}

type MarkResolvedRequest struct {
	BookingIDs []int64
	Notes      *string
}

type LoserDisposal struct {
	BookingID    int64
	Action       LoserAction
	EventTime    *string
	EventEndTime *string
}

type KeepOneRequest struct {
	KeepBookingID int64
	Losers        []LoserDisposal
}

// WorkflowResult reports the final state and the conflict map recomputed from
// the committed data.
type WorkflowResult struct {
	State       conflict.State
	Group       conflict.Group
	Transitions []conflict.Transition
	Resolution  *conflict.Resolution
	Conflicts   conflict.Map
}

type ConflictWorkflow interface {
	EditTimes(ctx context.Context, req EditTimesRequest) (*WorkflowResult, error)
	Reject(ctx context.Context, bookingID int64) (*WorkflowResult, error)
	MarkResolved(ctx context.Context, req MarkResolvedRequest) (*WorkflowResult, error)
	KeepOne(ctx context.Context, req KeepOneRequest) (*WorkflowResult, error)
}

type conflictWorkflowImpl struct {
	uow      shared.UnitOfWork
	cache    shared.ConflictCache
	detector *conflict.Detector
	clock    clock.Clock
	logger   *slog.Logger
}

func NewConflictWorkflow(uow shared.UnitOfWork, cache shared.ConflictCache, detector *conflict.Detector, clk clock.Clock, logger *slog.Logger) ConflictWorkflow {
	return &conflictWorkflowImpl{
		uow:      uow,
		cache:    cache,
		detector: detector,
		clock:    clk,
		logger:   logger.With("component", "conflict_workflow"),
	}
}

func (uc *conflictWorkflowImpl) EditTimes(ctx context.Context, req EditTimesRequest) (*WorkflowResult, error) {
	if req.EventTime == nil && req.EventEndTime == nil {
		return nil, errs.Mark(ErrNoTimesGiven, errs.ErrDomainValidation)
	}

	return uc.run(ctx, "edit_times", func(ctx context.Context, tx shared.Tx, report conflict.Report) (*conflict.Workflow, *conflict.Resolution, error) {
		w, err := uc.workflowFor(ctx, tx, report, req.BookingID)
		if err != nil {
			return nil, nil, err
		}
		if err := w.EditTimes(req.BookingID); err != nil {
			return nil, nil, err
		}
		if err := uc.editTimes(ctx, tx, req.BookingID, req.EventTime, req.EventEndTime); err != nil {
			return nil, nil, err
		}
		return w, nil, nil
	})
}

func (uc *conflictWorkflowImpl) Reject(ctx context.Context, bookingID int64) (*WorkflowResult, error) {
	return uc.run(ctx, "reject", func(ctx context.Context, tx shared.Tx, report conflict.Report) (*conflict.Workflow, *conflict.Resolution, error) {
		w, err := uc.workflowFor(ctx, tx, report, bookingID)
		if err != nil {
			return nil, nil, err
		}
		if err := w.Reject(bookingID); err != nil {
			return nil, nil, err
		}
		if err := reject(ctx, tx, bookingID); err != nil {
			return nil, nil, err
		}
		return w, nil, nil
	})
}

func (uc *conflictWorkflowImpl) MarkResolved(ctx context.Context, req MarkResolvedRequest) (*WorkflowResult, error) {
	ids := conflict.NewBookingIDSet(req.BookingIDs...)
	if ids.Len() < 2 {
		return nil, errs.Mark(conflict.ErrResolutionTooSmall, errs.ErrDomainValidation)
	}

	return uc.run(ctx, "mark_resolved", func(ctx context.Context, tx shared.Tx, report conflict.Report) (*conflict.Workflow, *conflict.Resolution, error) {
		group, ok := report.GroupFor(ids)
		if !ok {
			return nil, nil, errs.Wrap(conflict.ErrGroupMismatch, ids.String())
		}

		w := conflict.NewWorkflow(group)
		if err := w.Resolve(); err != nil {
			return nil, nil, err
		}
		if group.Resolved {
			// already accepted; another record would only duplicate it
			return w, nil, nil
		}

		date, err := booking.ParseDate(group.Date)
		if err != nil {
			return nil, nil, err
		}
		res, err := conflict.NewResolution(ids.IDs(), date, req.Notes, uc.clock.Now())
		if err != nil {
			return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		created, err := tx.Resolutions().Create(ctx, tx.DB(), res)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrResolutionStore)
		}
		return w, created, nil
	})
}

func (uc *conflictWorkflowImpl) KeepOne(ctx context.Context, req KeepOneRequest) (*WorkflowResult, error) {
	for _, l := range req.Losers {
		if l.Action != LoserReject && l.Action != LoserEdit {
			return nil, errs.Mark(errs.Wrap(ErrInvalidLoserAction, string(l.Action)), errs.ErrDomainValidation)
		}
		if l.Action == LoserEdit && l.EventTime == nil && l.EventEndTime == nil {
			return nil, errs.Mark(errs.Wrap(ErrNoTimesGiven, fmt.Sprintf("booking %d", l.BookingID)), errs.ErrDomainValidation)
		}
	}

	return uc.run(ctx, "keep_one", func(ctx context.Context, tx shared.Tx, report conflict.Report) (*conflict.Workflow, *conflict.Resolution, error) {
		w, err := uc.workflowFor(ctx, tx, report, req.KeepBookingID)
		if err != nil {
			return nil, nil, err
		}
		if err := w.KeepOne(req.KeepBookingID); err != nil {
			return nil, nil, err
		}

		for _, l := range req.Losers {
			switch l.Action {
			case LoserEdit:
				if err := w.EditTimes(l.BookingID); err != nil {
					return nil, nil, err
				}
				if err := uc.editTimes(ctx, tx, l.BookingID, l.EventTime, l.EventEndTime); err != nil {
					return nil, nil, err
				}
			case LoserReject:
				if err := w.Reject(l.BookingID); err != nil {
					return nil, nil, err
				}
				if err := reject(ctx, tx, l.BookingID); err != nil {
					return nil, nil, err
				}
			}
		}

		if err := w.Complete(); err != nil {
			return nil, nil, err
		}
		return w, nil, nil
	})
}

type planFunc func(ctx context.Context, tx shared.Tx, report conflict.Report) (*conflict.Workflow, *conflict.Resolution, error)

// run detects on a fresh snapshot inside one transaction, lets plan transition
// and mutate, then recomputes conflicts from the written data before commit.
// The cache is invalidated only after a successful commit.
func (uc *conflictWorkflowImpl) run(ctx context.Context, action string, plan planFunc) (*WorkflowResult, error) {
	var result *WorkflowResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		before, err := shared.LoadTx(ctx, tx.Reads())
		if err != nil {
			return err
		}
		report := uc.detector.Analyze(before.Bookings, before.Index())

		w, created, err := plan(ctx, tx, report)
		if err != nil {
			return err
		}

		after, err := shared.LoadTx(ctx, tx.Reads())
		if err != nil {
			return err
		}
		result = &WorkflowResult{
			State:       w.State(),
			Group:       w.Group(),
			Transitions: w.History(),
			Resolution:  created,
			Conflicts:   uc.detector.Detect(after.Bookings, after.Index()),
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("conflict workflow failed",
			slog.String("action", action),
			slog.String("error", err.Error()))
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	uc.logger.Info("conflict workflow applied",
		slog.String("action", action),
		slog.String("state", result.State.String()),
		slog.String("group", result.Group.BookingIDs.String()))
	return result, nil
}

// workflowFor starts a workflow on the live group containing bookingID.
func (uc *conflictWorkflowImpl) workflowFor(ctx context.Context, tx shared.Tx, report conflict.Report, bookingID int64) (*conflict.Workflow, error) {
	group, ok := report.GroupOf(bookingID)
	if ok {
		return conflict.NewWorkflow(group), nil
	}
	if _, err := tx.Reads().BookingByID(ctx, bookingID); err != nil {
		return nil, err
	}
	return nil, errs.Wrap(conflict.ErrNotInConflict, fmt.Sprintf("booking %d", bookingID))
}

func (uc *conflictWorkflowImpl) editTimes(ctx context.Context, tx shared.Tx, id int64, start, end *string) error {
	_, err := updateBooking(ctx, tx, id, booking.Patch{EventTime: start, EventEndTime: end}, uc.clock)
	if errs.Is(err, ErrBookingNotFound) {
		// seen in the snapshot, gone now
		return errs.Mark(err, ErrMutationConflict)
	}
	return err
}

func reject(ctx context.Context, tx shared.Tx, id int64) error {
	if err := tx.Bookings().Delete(ctx, tx.DB(), id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrMutationConflict)
		}
		return err
	}
	return nil
}
