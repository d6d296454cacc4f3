package pgquery

import (
	"context"

	"gigbook/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

const resolutionColumns = `id, booking_ids, conflict_date, notes, created_at`

const listResolutions = `SELECT ` + resolutionColumns + `
FROM conflict_resolutions
ORDER BY created_at, id`

func (q *Queries) ListResolutions(ctx context.Context, dbtx db.DBTX) ([]ConflictResolution, error) {
	rows, err := dbtx.Query(ctx, listResolutions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ConflictResolution
	for rows.Next() {
		r, err := scanResolution(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createResolution = `INSERT INTO conflict_resolutions (id, booking_ids, conflict_date, notes, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + resolutionColumns

func (q *Queries) CreateResolution(ctx context.Context, dbtx db.DBTX, arg CreateResolutionParams) (ConflictResolution, error) {
	row := dbtx.QueryRow(ctx, createResolution,
		arg.ID,
		arg.BookingIds,
		arg.ConflictDate,
		arg.Notes,
		arg.CreatedAt,
	)
	return scanResolution(row)
}

func scanResolution(row pgx.Row) (ConflictResolution, error) {
	var r ConflictResolution
	err := row.Scan(
		&r.ID,
		&r.BookingIds,
		&r.ConflictDate,
		&r.Notes,
		&r.CreatedAt,
	)
	return r, err
}
