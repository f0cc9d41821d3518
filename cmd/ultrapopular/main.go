package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"ultrapopular/internal/catalog"
	"ultrapopular/internal/config"
	"ultrapopular/internal/http/handlers"
	"ultrapopular/internal/link"
	applog "ultrapopular/internal/log"
	"ultrapopular/internal/metrics"
	"ultrapopular/internal/repos"
	"ultrapopular/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		applog.Error(nil, "config.dotenv", err, nil)
	}
	cfg, err := config.Load()
	if err != nil {
		applog.Error(nil, "config.load", err, nil)
		os.Exit(1)
	}

	// Optional file logging
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			applog.Error(nil, "log.file", err, map[string]any{"path": cfg.LogFile})
		} else {
			defer f.Close()
			out = io.MultiWriter(os.Stdout, f)
		}
	}
	applog.Init(applog.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: out})

	var (
		products catalog.Products
		stores   catalog.Directory
		closers  []io.Closer
	)
	switch cfg.CatalogSource {
	case config.CatalogStatic:
		static := catalog.NewSeeded()
		products, stores = static, static
	default:
		db, err := repos.OpenDB(cfg.DBDSN)
		if err != nil {
			applog.Error(nil, "db.open", err, map[string]any{"dsn": cfg.DBDSN})
			os.Exit(1)
		}
		closers = append(closers, db)
		products, stores = repos.NewProductRepo(db), repos.NewStoreRepo(db)
	}

	sessions, err := session.NewStore(cfg.SessionMax, cfg.SessionTTL)
	if err != nil {
		applog.Error(nil, "session.store", err, nil)
		os.Exit(1)
	}
	links, err := link.New(cfg.LinkBaseURL)
	if err != nil {
		applog.Error(nil, "link.base", err, nil)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	orderMetrics := metrics.NewOrderMetrics(reg)

	deps := handlers.NewDeps(products, stores, sessions, links, orderMetrics)
	app := handlers.NewApp(cfg, deps, handlers.AppOptions{Gatherer: reg, AccessLog: out})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		applog.Info(nil, "server.start", map[string]any{"addr": cfg.Addr(), "catalog": cfg.CatalogSource})
		listenErr <- app.Listen(cfg.Addr())
	}()

	var runErr error
	select {
	case runErr = <-listenErr:
	case <-ctx.Done():
		applog.Info(nil, "server.stop", nil)
		runErr = app.ShutdownWithTimeout(10 * time.Second)
	}
	for _, c := range closers {
		runErr = multierr.Append(runErr, c.Close())
	}
	if runErr != nil {
		applog.Error(nil, "server.exit", runErr, nil)
		os.Exit(1)
	}
}
