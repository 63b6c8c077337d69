package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/yndnr/memohalo-go/internal/core/service"
	"github.com/yndnr/memohalo-go/internal/infra/buildinfo"
	"github.com/yndnr/memohalo-go/internal/infra/confloader"
	"github.com/yndnr/memohalo-go/internal/infra/shutdown"
	"github.com/yndnr/memohalo-go/internal/server/config"
	"github.com/yndnr/memohalo-go/internal/server/httpserver"
	"github.com/yndnr/memohalo-go/internal/server/httpserver/handler"
	"github.com/yndnr/memohalo-go/internal/storage"
	"github.com/yndnr/memohalo-go/internal/telemetry/logger"
	"github.com/yndnr/memohalo-go/internal/telemetry/metric"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("memohalo-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	info := buildinfo.Get()
	log.Info("starting memohalo-server",
		"version", info.Version,
		"commit", info.Commit,
		"config", *configFile)
	log.Debug("effective configuration", "config", config.Sanitize(cfg))

	engine, err := initStorage(cfg, log)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	identities := service.NewIdentityService(engine.Identities)
	sessions := service.NewSessionService(engine.Sessions)
	memos := service.NewMemoService(engine.Memos)

	stats := func(ctx context.Context) (metric.StoreStats, error) {
		s, err := engine.Stats(ctx)
		if err != nil {
			return metric.StoreStats{}, err
		}
		return metric.StoreStats{Identities: s.Identities, Sessions: s.Sessions, Memos: s.Memos}, nil
	}

	var metrics *metric.Registry
	if cfg.Metrics.Enabled {
		metrics = metric.NewRegistry()
		metrics.MustRegister(metric.NewCollector(stats))
		if engine.KV != nil {
			engine.KV.RegisterMetrics(metrics.Registerer())
		}
	}

	cookies := &handler.Cookies{
		Name:   cfg.Session.CookieName,
		Secret: cfg.Session.CookieSecret,
		Secure: cfg.Session.CookieSecure,
	}
	h := handler.New(handler.Config{
		Identities:        identities,
		Sessions:          sessions,
		Memos:             memos,
		Cookies:           cookies,
		MinPasswordLength: cfg.Security.MinPasswordLength,
		Metrics:           metrics,
		Stats:             stats,
		Logger:            log,
	})

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Handler:         h,
		Sessions:        sessions,
		Cookies:         cookies,
		Metrics:         metrics,
		SignInRateLimit: cfg.Security.SignInRateLimit,
		SignInBurst:     cfg.Security.SignInBurst,
		Logger:          log,
	})

	srv := httpserver.New(httpserver.Config{
		Addr:              cfg.Server.HTTP.Addr,
		ReadHeaderTimeout: cfg.Server.HTTP.ReadHeaderTimeout,
		TLSCertFile:       cfg.Server.HTTP.TLSCertFile,
		TLSKeyFile:        cfg.Server.HTTP.TLSKeyFile,
		Logger:            log,
	}, router)

	// Hooks run in reverse order: HTTP first, then watcher, then storage.
	sd := shutdown.NewHandler(shutdownTimeout, log)
	sd.OnShutdown("storage", func(context.Context) error {
		return engine.Close()
	})

	if *configFile != "" {
		watcher, err := watchConfig(*configFile, log)
		if err != nil {
			log.Warn("config watcher disabled", "error", err)
		} else {
			sd.OnShutdown("config-watcher", func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	sd.OnShutdown("http", srv.Shutdown)

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Error("http server error", "error", err)
			sd.Trigger()
		}
	}()

	log.Info("server started, press Ctrl+C to stop")
	if err := sd.Wait(context.Background()); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// initLogger builds the process logger and installs it as the slog
// default. Components take the *slog.Logger.
func initLogger(cfg *config.ServerConfig) (*slog.Logger, error) {
	l, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}
	log := logger.Slog(l)
	slog.SetDefault(log)
	return log, nil
}

func initStorage(cfg *config.ServerConfig, log *slog.Logger) (*storage.Engine, error) {
	storageCfg := storage.DefaultConfig()
	storageCfg.IdentityEngine = cfg.Storage.IdentityEngine
	storageCfg.SeedMemo = cfg.Memo.Seed
	storageCfg.Logger = log
	if cfg.Storage.BadgerCacheSize > 0 {
		storageCfg.Badger.CacheSize = cfg.Storage.BadgerCacheSize
	}
	return storage.New(storageCfg)
}

// watchConfig re-reads the config file on change and applies log.level.
// Other settings need a restart.
func watchConfig(path string, log *slog.Logger) (*confloader.Watcher, error) {
	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}
	if err := w.Watch(path); err != nil {
		w.Stop()
		return nil, err
	}

	w.OnChange(func(string) {
		cfg, err := config.Load(path)
		if err != nil {
			log.Warn("ignoring invalid config change", "error", err)
			return
		}
		if cfg.Log.Level != logger.GetLevel() {
			logger.SetLevel(cfg.Log.Level)
			log.Info("log level changed", "level", cfg.Log.Level)
		}
	})
	w.StartAsync()
	return w, nil
}
