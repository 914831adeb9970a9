// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/fridaybar/backend/internal/config"
	"github.com/fridaybar/backend/internal/handlers"
	"github.com/fridaybar/backend/internal/lobby"
	"github.com/fridaybar/backend/internal/notify"
	"github.com/fridaybar/backend/internal/store"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("postgres init failed: %v", err)
		}
		defer pg.Close()
		st = pg
		logger.Info("using postgres store")
	} else {
		st = store.NewMemory()
		logger.Warn("DATABASE_URL not set, using in-memory store")
	}

	hub := notify.NewHub()
	var notifier notify.Notifier = hub
	if cfg.RedisAddr != "" {
		bridge, err := notify.NewRedisBridge(ctx, hub, cfg.RedisAddr, cfg.RedisDB, logger)
		if err != nil {
			logger.Fatalf("redis init failed: %v", err)
		}
		notifier = bridge
		logger.Infof("snapshot fan-out bridged via redis at %s", cfg.RedisAddr)
	}

	srv := handlers.NewServer(st, notifier, logger, lobby.Config{
		PlaceholderPlayers: cfg.PlaceholderPlayers,
	})

	// expired-lobby sweep
	go srv.Lobbies.RunCleanup(ctx, cfg.CleanupInterval)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", server.Addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		logger.Fatalf("server exited: %v", err)
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warnf("shutdown error: %v", err)
		}
	}
}
