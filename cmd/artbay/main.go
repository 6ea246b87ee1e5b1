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

	"github.com/artbay/backend/internal/adapter/events/nats"
	"github.com/artbay/backend/internal/app"
	"github.com/artbay/backend/internal/bootstrap"
	"github.com/artbay/backend/internal/config"
	"github.com/artbay/backend/internal/pkg/logger"
	transport "github.com/artbay/backend/internal/transport/http"
)

func main() {
	_ = godotenv.Load()

	log := logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := bootstrap.InitTracing(ctx, cfg.OTLPEndpoint)
	if err != nil {
		log.Error("init tracing", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	container, err := app.NewContainer(ctx, cfg)
	if err != nil {
		log.Error("build container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	events, err := nats.NewClient(cfg.NATSURL)
	if err != nil {
		log.Error("connect event bus", "url", cfg.NATSURL, "error", err)
		os.Exit(1)
	}

	if _, err := events.SubscribeOfferCreated(cfg.OfferSubject, container.SvcNotifier); err != nil {
		log.Error("subscribe offer events", "subject", cfg.OfferSubject, "error", err)
		os.Exit(1)
	}
	log.Info("subscribed to offer events", "subject", cfg.OfferSubject)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: transport.NewRouter(container.SvcPayments),
	}

	go func() {
		log.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	if err := events.Drain(); err != nil {
		log.Error("drain event connection", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "error", err)
	}
}
