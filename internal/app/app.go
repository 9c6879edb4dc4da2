package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/homefax/homefax-backend/internal/adapter/postgres"
	assignmentrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/assignment"
	auditrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/audit"
	communityrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/communityupdate"
	propertyrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/property"
	renovationrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/renovation"
	reportrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/report"
	tokenrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/token"
	userrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/user"
	authpkg "github.com/homefax/homefax-backend/internal/auth"
	"github.com/homefax/homefax-backend/internal/config"
	adminsvc "github.com/homefax/homefax-backend/internal/service/admin"
	authsvc "github.com/homefax/homefax-backend/internal/service/auth"
	communitysvc "github.com/homefax/homefax-backend/internal/service/community"
	contractorsvc "github.com/homefax/homefax-backend/internal/service/contractor"
	propertysvc "github.com/homefax/homefax-backend/internal/service/property"
	reportsvc "github.com/homefax/homefax-backend/internal/service/report"
	usersvc "github.com/homefax/homefax-backend/internal/service/user"
	"github.com/homefax/homefax-backend/internal/transport/middleware"
	"github.com/homefax/homefax-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and HTTP handlers, and runs
// the server until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	properties := propertyrepo.New(pool)
	reports := reportrepo.New(pool)
	updates := communityrepo.New(pool)
	renovations := renovationrepo.New(pool)
	assignments := assignmentrepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwtManager := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := authpkg.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	authService := authsvc.NewService(logger, users, tokens, audit, tx, jwtManager, hasher, cfg.Auth)
	userService := usersvc.NewService(logger, users, audit, tx)
	propertyService := propertysvc.NewService(logger, properties, audit, tx)
	reportService := reportsvc.NewService(logger, reports, audit, tx)
	communityService := communitysvc.NewService(logger, updates, audit, tx)
	contractorService := contractorsvc.NewService(logger, renovations, assignments, audit, tx)
	adminService := adminsvc.NewService(logger, reports, updates, properties, users, renovations, audit, tx)

	limiter := middleware.NewRateLimiter(cfg.Rate.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Cfg:        cfg,
		Log:        logger,
		Validator:  authService,
		Limiter:    limiter,
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Auth:       rest.NewAuthHandler(authService, logger),
		Users:      rest.NewUserHandler(userService, logger),
		Properties: rest.NewPropertyHandler(propertyService, logger),
		Reports:    rest.NewReportHandler(reportService, logger),
		Community:  rest.NewCommunityHandler(communityService, logger),
		Contractor: rest.NewContractorHandler(contractorService, logger),
		Admin:      rest.NewAdminHandler(adminService, reportService, communityService, logger),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      http.TimeoutHandler(router, cfg.Server.RequestTimeout, `{"error": "request timed out"}`),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
