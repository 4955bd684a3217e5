package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/daniilsolovey/newshub/config"
	"github.com/daniilsolovey/newshub/internal/content"
	"github.com/daniilsolovey/newshub/internal/db"
	"github.com/daniilsolovey/newshub/internal/i18n"
	"github.com/daniilsolovey/newshub/internal/metrics"
	"github.com/daniilsolovey/newshub/internal/newsportal"
	"github.com/daniilsolovey/newshub/internal/rest"
	"github.com/daniilsolovey/newshub/internal/rpc"
	"github.com/daniilsolovey/newshub/internal/site"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	rpcPath     = "/rpc"
	metricsPath = "/metrics"
)

type App struct {
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
	Metrics *metrics.Metrics

	repo *db.Repository
}

// New loads the content store from the configured source and builds the
// HTTP server around it.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	var (
		store *content.Store
		repo  *db.Repository
		err   error
	)

	switch cfg.Content.Source {
	case config.SourcePostgres:
		repo, err = connect(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}

		store, err = repo.Snapshot(ctx)
		if err != nil {
			repo.Close()
			return nil, fmt.Errorf("load content from postgres: %w", err)
		}
	default:
		store, err = content.NewSeedStore(time.Now())
		if err != nil {
			return nil, fmt.Errorf("build seed store: %w", err)
		}
	}

	a, err := NewWithStore(cfg, store, logger)
	if err != nil {
		if repo != nil {
			repo.Close()
		}
		return nil, err
	}
	a.repo = repo

	logger.Info("content store loaded", "source", cfg.Content.Source, "articles", store.Len())

	return a, nil
}

// NewWithStore builds the HTTP server over an already loaded store.
func NewWithStore(cfg config.Config, store *content.Store, logger *slog.Logger) (*App, error) {
	m := metrics.New()
	m.SetStoreSize(store.Len())

	manager := newsportal.NewManager(store, cfg.Content.Latency)
	resolver := i18n.NewResolver(i18n.EmbeddedLoader, logger)

	s, err := site.New(manager, resolver, m, logger, site.Options{
		BaseURL:      cfg.App.BaseURL,
		SiteName:     cfg.App.SiteName,
		PageSize:     cfg.App.PageSize,
		RelatedLimit: cfg.App.RelatedLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("create site: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.ErrorHandler

	e.Pre(site.LocaleGuard())
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(m.Middleware())

	s.Register(e)
	rest.NewArticleHandler(manager, logger, cfg.App.PageSize, cfg.App.RelatedLimit).RegisterRoutes(e)

	rpcServer := rpc.New(logger, manager, m, cfg.App.RelatedLimit)
	e.Any(rpcPath, echo.WrapHandler(rpcServer))
	e.GET(metricsPath, echo.WrapHandler(m.Handler()))

	return &App{
		Logger:  logger,
		Echo:    e,
		Config:  cfg,
		Metrics: m,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	addr := net.JoinHostPort(a.Config.App.Host, strconv.Itoa(a.Config.App.Port))
	a.Logger.Info("starting http server", "addr", addr)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	if a.repo != nil {
		if cerr := a.repo.Close(); cerr != nil {
			a.Logger.Error("failed to close database", "error", cerr)
		}
	}

	return err
}

func connect(ctx context.Context, cfg config.Database, logger *slog.Logger) (*db.Repository, error) {
	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, cfg.URL); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	conn := pg.Connect(opts)
	if cfg.LogQueries {
		conn.AddQueryHook(db.NewQueryHook(logger))
	}

	repo := db.New(conn)
	if err := repo.Ping(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := db.EnsureTablesExist(ctx, conn); err != nil {
		repo.Close()
		return nil, err
	}

	return repo, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
			}

			switch {
			case v.Status >= http.StatusInternalServerError:
				logger.ErrorContext(c.Request().Context(), "HTTP request", append(attrs, "error", v.Error)...)
				return nil
			case v.Error != nil:
				attrs = append(attrs, "error", v.Error)
			}

			logger.InfoContext(c.Request().Context(), "HTTP request", attrs...)
			return nil
		},
	})
}
