package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gigbook/internal/handler/api"
	"gigbook/internal/handler/middleware"
	"gigbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, bookingHandler *api.BookingHandler, conflictHandler *api.ConflictHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookingHandler, conflictHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, conflictHandler *api.ConflictHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Delete},
				{Method: http.MethodGet, Path: "/:id/conflicts", Handler: bookingHandler.Conflicts},
			})
		}

		conflicts := apiGroup.Group("/conflicts")
		{
			addRoutes(conflicts, []route{
				{Method: http.MethodGet, Path: "", Handler: conflictHandler.DetectAll},
				{Method: http.MethodGet, Path: "/groups", Handler: conflictHandler.Groups},
				{Method: http.MethodGet, Path: "/resolutions", Handler: conflictHandler.Resolutions},
				{Method: http.MethodPost, Path: "/resolutions", Handler: conflictHandler.MarkResolved},
				{Method: http.MethodPost, Path: "/edit-times", Handler: conflictHandler.EditTimes},
				{Method: http.MethodPost, Path: "/reject", Handler: conflictHandler.Reject},
				{Method: http.MethodPost, Path: "/keep-one", Handler: conflictHandler.KeepOne},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
