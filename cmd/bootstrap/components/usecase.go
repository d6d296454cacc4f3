package components

import (
	"gigbook/internal/domain/conflict"
	"gigbook/internal/pkg/clock"
	"gigbook/internal/usecase/commands"
	"gigbook/internal/usecase/queries"
	"gigbook/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	conflict.NewDetector,
	shared.NewSnapshotLoader,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewConflictWorkflow,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewConflictQueries,
	),
)
