package converter

import (
	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"
	"gigbook/internal/infra/pgquery"
	"gigbook/internal/pkg/pgconv"
)

func ResolutionFromRow(row pgquery.ConflictResolution) (*conflict.Resolution, error) {
	date, err := booking.ParseDate(pgconv.DateStringFromPgtype(row.ConflictDate))
	if err != nil {
		return nil, err
	}
	return conflict.ReconstructResolution(
		pgconv.UUIDFromPgtype(row.ID),
		row.BookingIds,
		date,
		pgconv.StringPtrFromPgtype(row.Notes),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func ResolutionToCreateParams(r *conflict.Resolution) (pgquery.CreateResolutionParams, error) {
	date, err := pgconv.DateStringToPgtype(r.ConflictDate().String())
	if err != nil {
		return pgquery.CreateResolutionParams{}, err
	}
	return pgquery.CreateResolutionParams{
		ID:           pgconv.UUIDToPgtype(r.ID()),
		BookingIds:   r.BookingIDs().IDs(),
		ConflictDate: date,
		Notes:        pgconv.StringPtrToPgtype(r.Notes()),
		CreatedAt:    pgconv.TimeToPgtype(r.CreatedAt()),
	}, nil
}
