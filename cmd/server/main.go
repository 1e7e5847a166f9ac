package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Skotchmaster/golden_sneaker/internal/config"
	"github.com/Skotchmaster/golden_sneaker/internal/db"
	"github.com/Skotchmaster/golden_sneaker/internal/events"
	"github.com/Skotchmaster/golden_sneaker/internal/httpserver"
	"github.com/Skotchmaster/golden_sneaker/internal/logging"
	"github.com/Skotchmaster/golden_sneaker/internal/repo"
	"github.com/Skotchmaster/golden_sneaker/internal/service"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, db.MySQL(cfg.DSN()), logger)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	publisher, err := events.New(cfg.KafkaBrokers)
	if err != nil {
		log.Fatalf("kafka producer: %v", err)
	}

	rp := &repo.GormRepo{DB: gdb}
	e := httpserver.NewRouter(&httpserver.Deps{
		DB:             gdb,
		Logger:         logger,
		ProductHandler: &httpserver.ProductHTTP{Svc: &service.ProductService{Repo: rp, Events: publisher}},
		CartHandler:    &httpserver.CartHTTP{Svc: &service.CartService{Repo: rp, Events: publisher}},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "mysql_host", cfg.MySQLHost, "mysql_db", cfg.MySQLDB)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	if err := db.Close(gdb); err != nil {
		logger.Error("db close error", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
