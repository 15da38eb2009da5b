package app

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/recoverylock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recoverylock-backend/internal/adapter/postgres/device"
	"github.com/heartmarshall/recoverylock-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/recoverylock-backend/internal/adapter/postgres/migrations"
	"github.com/heartmarshall/recoverylock-backend/internal/auth"
	"github.com/heartmarshall/recoverylock-backend/internal/config"
	"github.com/heartmarshall/recoverylock-backend/internal/metrics"
	"github.com/heartmarshall/recoverylock-backend/internal/service/checkin"
	"github.com/heartmarshall/recoverylock-backend/internal/service/reflection"
	"github.com/heartmarshall/recoverylock-backend/internal/service/theme"
	"github.com/heartmarshall/recoverylock-backend/internal/transport/middleware"
	"github.com/heartmarshall/recoverylock-backend/internal/transport/rest"
)

// App holds the wired components of the HTTP service.
type App struct {
	Handler    http.Handler
	Reflection *reflection.Service
	Metrics    *metrics.Metrics

	pool    *pgxpool.Pool
	limiter *middleware.RateLimiter
}

// Close releases the database pool and stops background goroutines.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

// Build wires every component from cfg. History endpoints are mounted only
// when a database is configured.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{Metrics: metrics.New()}

	var opts []reflection.Option
	if cfg.Metrics.Enabled {
		opts = append(opts, reflection.WithMetrics(a.Metrics))
	}
	refl, err := NewReflectionService(ctx, cfg, logger, opts...)
	if err != nil {
		return nil, err
	}
	a.Reflection = refl

	var checkins *checkin.Service
	var tokens *auth.JWTManager
	if cfg.Database.Enabled() {
		pool, err := OpenDatabase(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		a.pool = pool

		tokens = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.DeviceTokenTTL)
		checkins = checkin.NewService(logger, history.New(pool), device.New(pool), refl, tokens, cfg.Theme.Location())
	} else {
		logger.Info("no database configured, history endpoints disabled")
	}

	a.limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	a.Handler = a.routes(cfg, logger, checkins, tokens)
	return a, nil
}

func (a *App) routes(cfg *config.Config, logger *slog.Logger, checkins *checkin.Service, tokens *auth.JWTManager) http.Handler {
	mux := http.NewServeMux()
	limit := a.limiter.Limit(cfg.RateLimit.GeneratePerMinute, cfg.RateLimit.Burst)

	var health *rest.HealthHandler
	if a.pool != nil {
		health = rest.NewHealthHandler(a.pool, a.Reflection, BuildVersion())
	} else {
		health = rest.NewHealthHandler(nil, a.Reflection, BuildVersion())
	}
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	generate := rest.NewGenerateHandler(a.Reflection, logger, cfg.Server.MaxBodyBytes)
	mux.Handle("POST /generate", limit(http.HandlerFunc(generate.Generate)))

	th := rest.NewThemeHandler(theme.NewScheduler(time.Now, cfg.Theme.Location()))
	mux.HandleFunc("GET /theme", th.Theme)
	mux.HandleFunc("GET /wisdom", th.Wisdom)

	if checkins != nil {
		authed := middleware.Auth(tokens)
		devices := rest.NewDeviceHandler(checkins, logger)
		ch := rest.NewCheckInHandler(checkins, logger, cfg.Server.MaxBodyBytes)

		mux.Handle("POST /devices", limit(http.HandlerFunc(devices.Register)))
		mux.Handle("POST /checkins", limit(authed(http.HandlerFunc(ch.Record))))
		mux.Handle("GET /checkins", authed(http.HandlerFunc(ch.List)))
		mux.Handle("GET /checkins/stats", authed(http.HandlerFunc(ch.Stats)))
	}

	var observe middleware.Middleware
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, a.Metrics.Handler())
		observe = middleware.Metrics(a.Metrics)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		// Innermost so it sees the pattern the mux matched.
		observe,
	)(mux)
}

// OpenDatabase connects the pool and, when enabled, applies pending migrations.
func OpenDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		applied, err := Migrate(ctx, cfg.DSN)
		if err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("database migrated", slog.Any("applied", applied))
	}
	return pool, nil
}

// Migrate applies pending migrations over a short-lived database/sql handle.
func Migrate(ctx context.Context, dsn string) ([]int64, error) {
	db, err := OpenSQL(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return migrations.Up(ctx, db)
}

// OpenSQL opens and pings a database/sql handle for migrations.
func OpenSQL(ctx context.Context, dsn string) (*sql.DB, error) {
	return postgres.NewDB(ctx, dsn)
}
