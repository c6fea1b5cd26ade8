// Package server wires configuration, storage, services, and the HTTP API
// into a runnable application.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/healthsync/internal/logging"
	"github.com/dmitrijs2005/healthsync/internal/server/auth"
	"github.com/dmitrijs2005/healthsync/internal/server/config"
	"github.com/dmitrijs2005/healthsync/internal/server/httpapi"
	"github.com/dmitrijs2005/healthsync/internal/server/metrics"
	"github.com/dmitrijs2005/healthsync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/healthsync/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/healthsync/internal/server/services"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const storePingTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	redis  *redis.Client
	api    *httpapi.Server
}

// NewApp opens the configured store, failing when it is unreachable, and
// builds the services on top of it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	if c.UsesDefaultSecret() {
		logger.Warn(ctx, "JWT_SECRET is not set, signing tokens with the development secret")
	}

	repos, err := openRepositories(ctx, c)
	if err != nil {
		return nil, err
	}

	app := &App{config: c, logger: logger, repos: repos}

	var registry tokens.Registry = repos.Tokens()
	if c.RedisAddr != "" {
		registry = app.withTokenCache(ctx, registry)
	}

	issuer := auth.NewIssuer([]byte(c.SecretKey), c.Issuer, c.AccessTokenValidityDuration, c.RefreshTokenValidityDuration)

	app.api = httpapi.NewServer(
		services.NewSessionService(repos, issuer, auth.NewBcryptHasher(bcrypt.DefaultCost), logger),
		services.NewAuthorizer(registry, issuer, logger),
		services.NewRecordService(repos.Records(), logger),
		metrics.New(),
		logger,
	)

	return app, nil
}

func openRepositories(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	switch c.Store {
	case config.StoreMemory:
		return repomanager.NewMemoryRepositoryManager(), nil
	case config.StorePostgres:
		m, err := repomanager.NewPostgresRepositoryManager(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, storePingTimeout)
		defer cancel()
		if err := m.Ping(pingCtx); err != nil {
			_ = m.Close()
			return nil, fmt.Errorf("store unreachable: %w", err)
		}

		if err := m.RunMigrations(ctx); err != nil {
			_ = m.Close()
			return nil, fmt.Errorf("migrations failed: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown store %q", c.Store)
	}
}

// withTokenCache puts a Redis read-through cache in front of registry. An
// unreachable Redis leaves the registry uncached.
func (app *App) withTokenCache(ctx context.Context, registry tokens.Registry) tokens.Registry {
	client := redis.NewClient(&redis.Options{Addr: app.config.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		app.logger.Warn(ctx, "redis unavailable, token cache disabled", "addr", app.config.RedisAddr, "error", err)
		_ = client.Close()
		return registry
	}
	app.redis = client
	return tokens.NewCachedRegistry(registry, tokens.NewRedisCache(client), app.logger)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// releases the store and cache connections.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "store", app.config.Store)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup
	var runErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.api.Run(ctx, app.config.HTTPAddr, app.config.ShutdownTimeout); err != nil {
			app.logger.Error(ctx, err.Error())
			runErr = err
			cancelFunc()
		}
	}()

	wg.Wait()

	app.close(ctx)
	return runErr
}

func (app *App) close(ctx context.Context) {
	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "close store", "error", err)
	}
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error(ctx, "close redis", "error", err)
		}
	}
}
