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

	"greencart/internal/catalog"
	"greencart/internal/config"
	"greencart/internal/server"
	"greencart/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	var provider catalog.Provider
	if cfg.RemoteEnabled() {
		provider = catalog.NewClient(cfg)
	}
	interval := time.Duration(cfg.CatalogRefreshIntervalMs) * time.Millisecond
	index := catalog.NewIndex(provider, interval)

	srv := server.New(cfg, index, db)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		must(err)
	}
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
