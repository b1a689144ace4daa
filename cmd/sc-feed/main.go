package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/config"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/feed"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/log"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/publisher"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/repository"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/service"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/storage/shopify"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running feed application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	time.Local = time.UTC

	type Config struct {
		Log     config.Log
		Shopify config.Shopify
		Feed    config.Feed
		Otel    config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// stdout may carry the feed itself
	logger := log.NewSlogLoggerWithWriter(cfg.Log, os.Stderr)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(context.WithoutCancel(ctx)); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	shopifyClient, err := shopify.NewClient(cfg.Shopify, logger)
	if err != nil {
		return fmt.Errorf("error creating shopify client: %w", err)
	}

	feedService := service.NewFeedService(
		feed.NewOptions(cfg.Feed, cfg.Shopify),
		logger,
		repository.NewProductRepository(shopifyClient),
	)

	if cfg.Feed.OutputPath != "" {
		if err := publisher.NewService(cfg.Feed, logger, feedService).Publish(ctx); err != nil {
			return fmt.Errorf("error publishing feed: %w", err)
		}
		return nil
	}

	out, err := feedService.GenerateFeed(ctx)
	if err != nil {
		return fmt.Errorf("error generating feed: %w", err)
	}

	if _, err := os.Stdout.Write(out); err != nil {
		return fmt.Errorf("error writing feed to stdout: %w", err)
	}

	return nil
}
