package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/spyojana/subsidy-portal/internal/infra/config"
	"github.com/spyojana/subsidy-portal/internal/transport/http/handlers"
	"github.com/spyojana/subsidy-portal/internal/transport/http/middleware"
	"github.com/spyojana/subsidy-portal/internal/usecase"
)

// ServiceSet groups the services the HTTP layer depends on.
type ServiceSet struct {
	Auth        *usecase.AuthService
	Submissions *usecase.SubmissionService
	Settings    *usecase.SettingsService
}

// Dependencies encapsulates the objects required to register routes.
type Dependencies struct {
	Config   *config.AppConfig
	Logger   *zap.Logger
	Services ServiceSet
	Metrics  *middleware.HTTPMetrics
}

// Register configures the gin engine with routes and middleware.
func Register(deps Dependencies) *gin.Engine {
	if deps.Config != nil && deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))
	if deps.Config != nil {
		r.Use(middleware.CORS(deps.Config.CORS.AllowedOrigins))
	}
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Handler())
	}

	authMiddleware := middleware.RequireAuth(deps.Services.Auth)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		healthHandler := handlers.NewHealthHandler()
		api.GET("/health", healthHandler.Status)

		authHandler := handlers.NewAuthHandler(deps.Services.Auth)
		authHandler.RegisterRoutes(api.Group("/auth"))

		applicationHandler := handlers.NewApplicationHandler(deps.Services.Submissions)
		applications := api.Group("/applications")
		applications.POST("", applicationHandler.Create)
		applications.GET("", authMiddleware, applicationHandler.List)
		applications.GET("/:id", authMiddleware, applicationHandler.Get)
		applications.PATCH("/:id/status", authMiddleware, applicationHandler.UpdateStatus)

		pumpHandler := handlers.NewPumpApplicationHandler(deps.Services.Submissions)
		pumps := api.Group("/pump-applications")
		pumps.POST("", pumpHandler.Create)
		pumps.GET("", authMiddleware, pumpHandler.List)
		pumps.GET("/:id", authMiddleware, pumpHandler.Get)
		pumps.PATCH("/:id/status", authMiddleware, pumpHandler.UpdateStatus)

		settingsHandler := handlers.NewSettingsHandler(deps.Services.Settings)
		settings := api.Group("/settings")
		settings.Use(authMiddleware)
		settingsHandler.RegisterRoutes(settings)
	}

	return r
}
