package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/stockwise/console-gateway/shared/audit"
	"github.com/stockwise/console-gateway/shared/client"
	"github.com/stockwise/console-gateway/shared/config"
	"github.com/stockwise/console-gateway/shared/middleware"
	"github.com/stockwise/console-gateway/shared/session"
)

// app bundles the gateway's long-lived dependencies; handlers hang off it.
type app struct {
	cfg      *config.Config
	api      *client.Client
	sessions *session.Manager
	guard    *middleware.SessionAuth
	audit    *audit.Publisher
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables")
	}

	cfg := config.Load()
	api := client.New(cfg.BackendBaseURL)

	// Prefer Redis for sessions; fall back to in-memory when unavailable so a
	// missing Redis never blocks local development.
	var store session.Store
	if addr := cfg.RedisAddr(); addr != "" {
		redisStore, err := session.NewRedisStore(addr)
		if err != nil {
			logrus.Warnf("Failed to connect to Redis, using in-memory sessions: %v", err)
			store = session.NewMemoryStore()
		} else {
			store = redisStore
		}
	} else {
		store = session.NewMemoryStore()
	}

	sessions := session.NewManager(api, store, cfg.SessionSecret, cfg.SessionTTL)

	var auditPub *audit.Publisher
	if cfg.KafkaBroker != "" {
		auditPub = audit.NewPublisher(cfg.KafkaBroker, cfg.AuditTopic)
	} else {
		logrus.Warn("No Kafka broker configured, audit trail disabled")
	}

	a := &app{
		cfg:      cfg,
		api:      api,
		sessions: sessions,
		guard:    middleware.NewSessionAuth(sessions),
		audit:    auditPub,
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: a.buildRouter(),
	}

	go func() {
		logrus.Infof("Console gateway starting on port %s (backend %s)", cfg.Port, cfg.BackendBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start gateway: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down gateway")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Forced shutdown: %v", err)
	}
	if err := auditPub.Close(); err != nil {
		logrus.Errorf("Failed to close audit publisher: %v", err)
	}
}
