package repository

import (
	"context"

	"gigbook/internal/domain/conflict"
	"gigbook/internal/infra"
	"gigbook/internal/infra/db"
	"gigbook/internal/infra/pgquery"
	"gigbook/internal/infra/repository/converter"
)

type ResolutionWriteQueries interface {
	CreateResolution(ctx context.Context, dbtx db.DBTX, arg pgquery.CreateResolutionParams) (pgquery.ConflictResolution, error)
}

type ResolutionRepository struct {
	queries ResolutionWriteQueries
	db      db.DBTX
}

func NewResolutionRepository(queries ResolutionWriteQueries, db db.DBTX) *ResolutionRepository {
	return &ResolutionRepository{
		queries: queries,
		db:      db,
	}
}

// Create stores the resolution. Duplicate sets are allowed.
func (r *ResolutionRepository) Create(ctx context.Context, tx db.DBTX, res *conflict.Resolution) (*conflict.Resolution, error) {
	params, err := converter.ResolutionToCreateParams(res)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid conflict resolution", err)
	}
	if tx == nil {
		tx = r.db
	}
	row, err := r.queries.CreateResolution(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create conflict resolution", err)
	}
	created, err := converter.ResolutionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("created conflict resolution is corrupt", err)
	}
	return created, nil
}
