package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexidex/internal/config"
	"github.com/kailas-cloud/lexidex/internal/db"
	dbBolt "github.com/kailas-cloud/lexidex/internal/db/bolt"
	dbRedis "github.com/kailas-cloud/lexidex/internal/db/redis"
	"github.com/kailas-cloud/lexidex/internal/db/sqlite"
	logpkg "github.com/kailas-cloud/lexidex/internal/logger"
	"github.com/kailas-cloud/lexidex/internal/metrics"
	"github.com/kailas-cloud/lexidex/internal/repository/dictionary"
	"github.com/kailas-cloud/lexidex/internal/repository/morphcache"
	chiTransport "github.com/kailas-cloud/lexidex/internal/transport/chi"
	"github.com/kailas-cloud/lexidex/internal/transport/morpheus"
	entryuc "github.com/kailas-cloud/lexidex/internal/usecase/entry"
	healthuc "github.com/kailas-cloud/lexidex/internal/usecase/health"
	lookupuc "github.com/kailas-cloud/lexidex/internal/usecase/lookup"
	"github.com/kailas-cloud/lexidex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting lexidex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_file", cfg.Database.FilePath),
		zap.String("db_version", cfg.Database.Version),
		zap.String("cache_driver", cfg.Cache.Driver),
	)

	ctx := context.Background()

	store, err := sqlite.Open(ctx, sqlite.Config{
		FilePath: cfg.Database.FilePath,
		MmapSize: cfg.Database.MmapSize,
	})
	if err != nil {
		logger.Fatal("Failed to open dictionary", zap.Error(err))
	}
	defer func() { _ = store.Close() }()
	logger.Info("Dictionary opened", zap.String("table", cfg.Database.Table))

	cache := openCache(ctx, cfg.Cache, logger)
	if cache != nil {
		defer cache.Close()
		logger.Info("Connected to morphology cache", zap.String("driver", cfg.Cache.Driver))
	}

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterLookupMetrics()

	selector, err := cfg.Query.Selector()
	if err != nil {
		logger.Fatal("Invalid field configuration", zap.Error(err))
	}

	// Analyzer chain: cruncher -> cache. A missing installation disables it
	// without failing startup.
	analyzerClient := morpheus.New(morpheus.Config{
		BinaryPath:  cfg.Morpheus.BinaryPath,
		StemlibPath: cfg.Morpheus.StemlibPath,
		Timeout:     cfg.Morpheus.LookupTimeout(),
	}, nil, logger)

	// Pass nil interfaces (not typed nil pointers!) when a part is disabled.
	var analyzer lookupuc.Analyzer
	var analyzerChecker healthuc.AnalyzerChecker
	if analyzerClient.Available() {
		analyzer, analyzerChecker = analyzerClient, analyzerClient
		if cache != nil {
			analyzer = morphcache.New(analyzerClient, cache, cfg.Cache.TTL(), metrics.MorphologyCacheTotal, logger)
		}
	} else {
		logger.Warn("Morphological analyzer disabled",
			zap.String("binary_path", cfg.Morpheus.BinaryPath),
			zap.String("stemlib_path", cfg.Morpheus.StemlibPath),
		)
	}

	var cachePinger healthuc.DBPinger
	if cache != nil {
		cachePinger = cache
	}

	repo := dictionary.New(store, cfg.Database.Table)
	lookupSvc := lookupuc.New(repo, analyzer, lookupuc.Config{
		Version: cfg.Database.Version,
		MaxRows: cfg.Query.MaxRows,
	})
	entrySvc := entryuc.New(repo, cfg.Database.Version)
	healthSvc := healthuc.New(store, analyzerChecker, cachePinger)

	server := chiTransport.NewServer(lookupSvc, entrySvc, healthSvc, selector, logger)
	r := chiTransport.NewRouter(server, chiTransport.RouterConfig{
		APIKeys:    cfg.Auth.APIKeys,
		CORSOrigin: cfg.HTTP.CORSOrigin,
		Logger:     logger,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// openCache returns the morphology cache, or nil when caching is off or the
// backend cannot be reached. Lookups work without it.
func openCache(ctx context.Context, cfg config.CacheConfig, logger *zap.Logger) db.Cache {
	cache, err := dialCache(ctx, cfg)
	if err != nil {
		logger.Warn("Morphology cache unavailable, continuing without it",
			zap.String("driver", cfg.Driver), zap.Error(err))
		return nil
	}
	return cache
}

func dialCache(ctx context.Context, cfg config.CacheConfig) (db.Cache, error) {
	switch cfg.Driver {
	case config.CacheNone, "":
		return nil, nil
	case config.CacheBolt:
		s, err := dbBolt.NewStore(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("bolt cache: %w", err)
		}
		return s, nil
	case config.CacheRedis, config.CacheValkey:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
		if err != nil {
			return nil, fmt.Errorf("%s cache: %w", cfg.Driver, err)
		}
		if err := s.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
			s.Close()
			return nil, fmt.Errorf("%s cache not ready: %w", cfg.Driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}
