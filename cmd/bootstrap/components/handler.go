package components

import (
	"gigbook/internal/handler"
	"gigbook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewConflictHandler,
	),
	fx.Invoke(handler.NewRouter),
)
