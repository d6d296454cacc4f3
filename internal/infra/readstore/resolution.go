package readstore

import (
	"context"

	"gigbook/internal/domain/conflict"
	"gigbook/internal/infra"
	"gigbook/internal/infra/db"
	"gigbook/internal/infra/pgquery"
	"gigbook/internal/infra/repository/converter"
)

type ResolutionReadQueries interface {
	ListResolutions(ctx context.Context, dbtx db.DBTX) ([]pgquery.ConflictResolution, error)
}

type ResolutionReadStore struct {
	queries ResolutionReadQueries
	db      db.DBTX
}

func NewResolutionReadStore(queries ResolutionReadQueries, db db.DBTX) *ResolutionReadStore {
	return &ResolutionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResolutionReadStore) List(ctx context.Context) ([]*conflict.Resolution, error) {
	rows, err := r.queries.ListResolutions(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conflict resolutions", err)
	}

	result := make([]*conflict.Resolution, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ResolutionFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("stored conflict resolution is corrupt", err)
		}
		result = append(result, res)
	}
	return result, nil
}
