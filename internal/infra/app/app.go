package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spyojana/subsidy-portal/internal/infra/config"
	"github.com/spyojana/subsidy-portal/internal/infra/database"
	"github.com/spyojana/subsidy-portal/internal/infra/logger"
	"github.com/spyojana/subsidy-portal/internal/infra/security"
	postgresrepo "github.com/spyojana/subsidy-portal/internal/repository/postgres"
	"github.com/spyojana/subsidy-portal/internal/transport/http/middleware"
	"github.com/spyojana/subsidy-portal/internal/transport/http/routes"
	"github.com/spyojana/subsidy-portal/internal/usecase"
)

// Application bundles the wired portal backend.
type Application struct {
	cfg    *config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	pool   *pgxpool.Pool
}

// New wires configuration, storage, services, and the HTTP surface.
func New(ctx context.Context, cfg *config.AppConfig) (*Application, error) {
	log, err := logger.New(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	if cfg.Postgres.Migrate {
		if err := database.Migrate(cfg.Postgres, log); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	pool, err := database.NewPostgresPool(ctx, cfg.Postgres, log)
	if err != nil {
		return nil, fmt.Errorf("init postgres: %w", err)
	}

	tokens, err := security.NewTokenManager(cfg.JWT.Secret, cfg.App.Name, cfg.JWT.TokenTTL)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("init token manager: %w", err)
	}

	repos := postgresrepo.NewRepositories(pool)

	authService, err := usecase.NewAuthService(repos.Users, tokens, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("init auth service: %w", err)
	}

	submissionService, err := usecase.NewSubmissionService(repos.Applications, repos.PumpApplications, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("init submission service: %w", err)
	}

	settingsService, err := usecase.NewSettingsService(repos.Users, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("init settings service: %w", err)
	}

	metrics, err := middleware.NewHTTPMetrics(middleware.HTTPMetricsOptions{})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("init http metrics: %w", err)
	}

	engine := routes.Register(routes.Dependencies{
		Config:  cfg,
		Logger:  log,
		Metrics: metrics,
		Services: routes.ServiceSet{
			Auth:        authService,
			Submissions: submissionService,
			Settings:    settingsService,
		},
	})

	return &Application{
		cfg:    cfg,
		engine: engine,
		logger: log,
		pool:   pool,
	}, nil
}

// Run serves HTTP traffic until the context is cancelled, then shuts down
// gracefully.
func (a *Application) Run(ctx context.Context) error {
	defer func() {
		_ = a.logger.Sync()
	}()
	defer a.pool.Close()

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.cfg.App.Host, a.cfg.App.Port),
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	a.logger.Info("starting subsidy portal API",
		zap.String("env", a.cfg.App.Env),
		zap.String("address", srv.Addr),
	)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- fmt.Errorf("run server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		a.logger.Info("server stopped")
		return nil
	case err := <-serverErrCh:
		return err
	}
}
