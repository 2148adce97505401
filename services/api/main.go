package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/argo"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/config"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/dashboard"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/db"
	httpserver "github.com/02loveslollipop/floatchat-dashboard/services/api/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var store *db.Store
	if cfg.DatabaseURL != "" {
		store, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("db connection error: %v", err)
		}
		defer store.Close()
	}

	catalog, err := loadCatalog(ctx, cfg, store)
	if err != nil {
		logger.Fatalf("catalog error: %v", err)
	}
	if cfg.CatalogChronological {
		catalog = catalog.Chronological()
	}
	logger.WithFields(logrus.Fields{
		"source":  cfg.CatalogSource(),
		"records": catalog.Len(),
		"floats":  len(catalog.FloatIDs()),
	}).Info("catalog loaded")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := httpserver.NewMetrics(reg)

	syncer := dashboard.NewSynchronizer(catalog, cfg.Palette)
	session, err := dashboard.NewSession(syncer, cfg.DefaultParameter,
		dashboard.WithObserver(metrics.ObservePass),
		dashboard.WithLogger(logger),
	)
	if err != nil {
		logger.Fatalf("session error: %v", err)
	}

	srv := httpserver.New(cfg, session, store, metrics, logger)
	logger.Infof("REST API listening on %s", cfg.ListenAddr())

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}

func loadCatalog(ctx context.Context, cfg config.Config, store *db.Store) (*argo.Catalog, error) {
	switch cfg.CatalogSource() {
	case "postgres":
		return store.LoadCatalog(ctx)
	case "file":
		return argo.LoadCatalogFile(cfg.CatalogPath)
	default:
		return argo.MockCatalog(), nil
	}
}
