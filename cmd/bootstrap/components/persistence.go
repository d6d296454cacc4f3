package components

import (
	"gigbook/internal/infra/db"
	"gigbook/internal/infra/pgquery"
	"gigbook/internal/infra/readstore"
	"gigbook/internal/infra/uow"
	"gigbook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(shared.BookingReadStore)),
		),
		// Resolution
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.ResolutionReadQueries)),
		),
		fx.Annotate(
			readstore.NewResolutionReadStore,
			fx.As(new(shared.ResolutionReadStore)),
		),
	),
)

// Repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
