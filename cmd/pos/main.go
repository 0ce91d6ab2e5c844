package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Skotchmaster/salon_pos/internal/config"
	"github.com/Skotchmaster/salon_pos/internal/httpserver"
	"github.com/Skotchmaster/salon_pos/internal/mykafka"
	"github.com/Skotchmaster/salon_pos/internal/repo"
	"github.com/Skotchmaster/salon_pos/internal/search"
	"github.com/Skotchmaster/salon_pos/internal/service"
	pkgdb "github.com/Skotchmaster/salon_pos/pkg/db"
	"github.com/Skotchmaster/salon_pos/pkg/logging"
	"github.com/Skotchmaster/salon_pos/pkg/tokens"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("report time zone", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		cancel()
		logger.Error("db open failed", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}

	r := repo.New(db)
	if err := r.AutoMigrate(ctx); err != nil {
		cancel()
		logger.Error("db migrate failed", "error", err)
		os.Exit(1)
	}

	tm := tokens.NewManager([]byte(cfg.JWTSecret), cfg.TokenTTL)
	authSvc := &service.AuthService{Repo: r, Tokens: tm}
	if created, err := authSvc.SeedAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		cancel()
		logger.Error("seed admin failed", "error", err)
		os.Exit(1)
	} else if created {
		logger.Warn("default admin account created, change its password", "username", cfg.AdminUsername)
	}

	catalogSvc := &service.CatalogService{Repo: r}
	if cfg.ESURL != "" {
		idx, err := search.Connect(ctx, search.Config{
			URL:      cfg.ESURL,
			User:     cfg.ESUser,
			Password: cfg.ESPassword,
			Index:    cfg.ESIndex,
		})
		if err != nil {
			logger.Warn("elasticsearch unavailable, product search uses the database", "error", err)
		} else {
			catalogSvc.Index = idx
		}
	}
	cancel()

	producer := mykafka.NewProducer(cfg.KafkaBrokers)
	if !producer.Enabled() {
		logger.Info("kafka brokers not configured, events are dropped")
	}

	e := httpserver.NewEcho(logger, cfg.CORSOrigins)
	httpserver.Register(e, &httpserver.Deps{
		Auth:    &httpserver.AuthHTTP{Svc: authSvc},
		Catalog: &httpserver.CatalogHTTP{Svc: catalogSvc, Producer: producer},
		Sale:    &httpserver.SaleHTTP{Svc: &service.SaleService{Repo: r, Index: catalogSvc.Index}, Producer: producer},
		Ledger:  &httpserver.LedgerHTTP{Svc: &service.LedgerService{Repo: r, Loc: loc}, Producer: producer},
		Health:  &httpserver.HealthHTTP{DB: db},
		Tokens:  tm,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("pos listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	if err := producer.Close(); err != nil {
		logger.Error("kafka close failed", "error", err)
	}
	if err := pkgdb.Close(db); err != nil {
		logger.Error("db close failed", "error", err)
	}

	logger.Info("pos stopped")
}
