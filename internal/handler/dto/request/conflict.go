package request

import (
	"gigbook/internal/usecase/commands"
)

type GroupsQuery struct {
	Date string `form:"date"`
}

type EditTimesRequest struct {
	BookingID    int64   `json:"booking_id" binding:"required,gt=0"`
	EventTime    *string `json:"event_time"`
	EventEndTime *string `json:"event_end_time"`
}

func (r EditTimesRequest) ToCommand() commands.EditTimesRequest {
	return commands.EditTimesRequest{
		BookingID:    r.BookingID,
		EventTime:    r.EventTime,
		EventEndTime: r.EventEndTime,
	}
}

type RejectRequest struct {
	BookingID int64 `json:"booking_id" binding:"required,gt=0"`
}

type MarkResolvedRequest struct {
	BookingIDs []int64 `json:"booking_ids" binding:"required,min=2,dive,gt=0"`
	Notes      *string `json:"notes" binding:"omitempty,max=2000"`
}

func (r MarkResolvedRequest) ToCommand() commands.MarkResolvedRequest {
	return commands.MarkResolvedRequest{BookingIDs: r.BookingIDs, Notes: r.Notes}
}

type LoserRequest struct {
	BookingID    int64   `json:"booking_id" binding:"required,gt=0"`
	Action       string  `json:"action" binding:"required,oneof=reject edit"`
	EventTime    *string `json:"event_time"`
	EventEndTime *string `json:"event_end_time"`
}

type KeepOneRequest struct {
	KeepBookingID int64          `json:"keep_booking_id" binding:"required,gt=0"`
	Losers        []LoserRequest `json:"losers" binding:"required,min=1,dive"`
}

func (r KeepOneRequest) ToCommand() commands.KeepOneRequest {
	losers := make([]commands.LoserDisposal, len(r.Losers))
	for i, l := range r.Losers {
		losers[i] = commands.LoserDisposal{
			BookingID:    l.BookingID,
			Action:       commands.LoserAction(l.Action),
			EventTime:    l.EventTime,
			EventEndTime: l.EventEndTime,
		}
	}
	return commands.KeepOneRequest{KeepBookingID: r.KeepBookingID, Losers: losers}
}
