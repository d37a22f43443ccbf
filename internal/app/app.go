package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/rdmgray/eplpal/internal/config"
	"github.com/rdmgray/eplpal/internal/infrastructure/namemap"
	repocache "github.com/rdmgray/eplpal/internal/infrastructure/repository/cache"
	"github.com/rdmgray/eplpal/internal/interfaces/httpapi"
	"github.com/rdmgray/eplpal/internal/observability"
	"github.com/rdmgray/eplpal/internal/platform/cache"
	"github.com/rdmgray/eplpal/internal/platform/fanout"
	"github.com/rdmgray/eplpal/internal/platform/logging"
	"github.com/rdmgray/eplpal/internal/platform/resilience"
	"github.com/rdmgray/eplpal/internal/usecase"
)

// NewHTTPServer wires stores, services and the router. The returned cleanup
// closes store connections, the cache backend and the fan-out pool.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	closers := []func(){func() {
		if err := st.Close(); err != nil {
			logger.Error("close stores", "error", err)
		}
	}}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if count, err := st.counter.Count(ctx); err != nil {
		logger.Warn("count fixtures at startup", "error", err)
	} else {
		logger.Info("fixtures store ready", "driver", cfg.StoreDriver, "fixtures", count)
	}

	names, err := namemap.Load(cfg.TeamNameMapPath)
	if err != nil {
		cleanup()
		return nil, nil, errors.Wrap(err, "load team name map")
	}

	if cfg.CacheEnabled {
		store, err := newCacheStore(ctx, cfg, logger)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := store.Close(); err != nil {
				logger.Error("close cache", "error", err)
			}
		})
		st.fixtures = repocache.NewFixtureRepository(st.fixtures, store)
		st.teams = repocache.NewTeamRepository(st.teams, store)
		st.bets = repocache.NewBetRepository(st.bets, store)
	}

	runner, err := fanout.NewRunner(cfg.FanoutWorkers, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	closers = append(closers, runner.Release)

	var joinMetrics usecase.JoinMetrics
	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		reg := observability.NewMetricsRegistry()
		jm, err := observability.NewJoinMetrics(reg)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		joinMetrics = jm
		metricsHandler = observability.MetricsHandler(reg)
	}

	oddsSvc := usecase.NewOddsService(st.fixtures, st.odds, names, runner, joinMetrics, logger)
	fixtureSvc := usecase.NewFixtureService(st.fixtures, st.teams, oddsSvc)
	teamSvc := usecase.NewTeamService(st.teams)
	betSvc := usecase.NewBetService(st.bets, st.fixtures, runner, joinMetrics, logger)

	handler := httpapi.NewHandler(fixtureSvc, oddsSvc, teamSvc, betSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		ServiceName:        cfg.ServiceName,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MetricsHandler:     metricsHandler,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func newCacheStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (*cache.Store, error) {
	var backend cache.Backend
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		redisBackend, err := cache.NewRedisBackend(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		backend = cache.NewBreakerBackend(redisBackend, resilience.CircuitBreakerConfig{
			Enabled:          cfg.CacheCircuitEnabled,
			FailureThreshold: cfg.CacheCircuitFailures,
			OpenTimeout:      cfg.CacheCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.CacheCircuitHalfOpenMax,
		}, logger)
	default:
		backend = cache.NewMemoryBackend()
	}
	return cache.NewStore(backend, cfg.CacheTTL, logger), nil
}
