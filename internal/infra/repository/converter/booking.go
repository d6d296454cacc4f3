package converter

import (
	"gigbook/internal/domain/booking"
	"gigbook/internal/infra/pgquery"
	"gigbook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingFromRow(row pgquery.Booking) booking.Booking {
	return booking.Booking{
		ID:           row.ID,
		ClientName:   row.ClientName,
		Status:       booking.Status(row.Status),
		EventDate:    pgconv.DateStringFromPgtype(row.EventDate),
		EventTime:    pgconv.StringPtrFromPgtype(row.EventTime),
		EventEndTime: pgconv.StringPtrFromPgtype(row.EventEndTime),
		Venue:        textOrEmpty(row.Venue),
		VenueAddress: textOrEmpty(row.VenueAddress),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func BookingsFromRows(rows []pgquery.Booking) []booking.Booking {
	result := make([]booking.Booking, len(rows))
	for i, row := range rows {
		result[i] = BookingFromRow(row)
	}
	return result
}

func BookingToUpdateParams(b booking.Booking) pgquery.UpdateBookingParams {
	return pgquery.UpdateBookingParams{
		ID:           b.ID,
		ClientName:   b.ClientName,
		Status:       b.Status.String(),
		EventTime:    pgconv.StringPtrToPgtype(b.EventTime),
		EventEndTime: pgconv.StringPtrToPgtype(b.EventEndTime),
		Venue:        textOrNull(b.Venue),
		VenueAddress: textOrNull(b.VenueAddress),
		UpdatedAt:    pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func textOrEmpty(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

func textOrNull(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
