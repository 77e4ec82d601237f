// cmd/api/main.go

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/byonar/Rep-Rakbank-POC-Kafka-Bronze-Webhook-APIKey/config"
	"github.com/byonar/Rep-Rakbank-POC-Kafka-Bronze-Webhook-APIKey/internal/api"
	"github.com/byonar/Rep-Rakbank-POC-Kafka-Bronze-Webhook-APIKey/internal/store"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadAPIConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	if cfg.WebhookToken == "" {
		// Keep serving so /health stays reachable; every protected route
		// answers 500 until the secret is set.
		log.Error("[SECURITY] WEBHOOK_TOKEN not configured in environment")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	txLog := store.NewTransactionLog()
	router := api.NewRouter(log, txLog, cfg.WebhookToken)

	g, ctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.API_PORT),
		Handler: router,
	}

	g.Go(func() error {
		log.Infof("Webhook API listening on port %s", cfg.API_PORT)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	g.Go(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-quit:
			log.Infof("Received shutdown signal: %v", sig)
			cancel()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer shutdownCancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("graceful shutdown failed: %v", err)
			}

			return nil
		}
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Runtime error: %v", err)
	}

	log.Info("Server stopped cleanly")
}
