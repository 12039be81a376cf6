package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"studio-booking/internal/handler/api"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	wizardHandler *api.WizardHandler,
	authMiddleware *middleware.AuthMiddleware,
	confirmLimiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, wizardHandler, authMiddleware, confirmLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, wizardHandler *api.WizardHandler, authMiddleware *middleware.AuthMiddleware, confirmLimiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		sessions := apiGroup.Group("/booking-sessions")
		sessions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(sessions, []route{
				{Method: http.MethodPost, Path: "", Handler: wizardHandler.Open},
				{Method: http.MethodGet, Path: "/:id", Handler: wizardHandler.Get},
				{Method: http.MethodPut, Path: "/:id/source", Handler: wizardHandler.SelectSource},
				{Method: http.MethodPost, Path: "/:id/continue", Handler: wizardHandler.Continue},
				{Method: http.MethodPost, Path: "/:id/back", Handler: wizardHandler.Back},
				{Method: http.MethodPut, Path: "/:id/policy", Handler: wizardHandler.AcceptPolicy},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: wizardHandler.Confirm, Mw: []gin.HandlerFunc{confirmLimiter.Middleware()}},
				{Method: http.MethodPost, Path: "/:id/add-ons/toggle", Handler: wizardHandler.ToggleAddOn},
				{Method: http.MethodPost, Path: "/:id/add-ons/attach", Handler: wizardHandler.AttachAddOns},
				{Method: http.MethodPost, Path: "/:id/add-ons/skip", Handler: wizardHandler.SkipAddOns},
				{Method: http.MethodPost, Path: "/:id/calendar", Handler: wizardHandler.AddToCalendar},
				{Method: http.MethodPost, Path: "/:id/invite", Handler: wizardHandler.InviteFriend},
				{Method: http.MethodPost, Path: "/:id/done", Handler: wizardHandler.Done},
				{Method: http.MethodPost, Path: "/:id/close", Handler: wizardHandler.Close},
				{Method: http.MethodPost, Path: "/:id/close/finish", Handler: wizardHandler.FinishClose},
				{Method: http.MethodPost, Path: "/:id/reopen", Handler: wizardHandler.Reopen},
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
