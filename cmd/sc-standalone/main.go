package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	apicontract "github.com/tuanvumaihuynh/supplier-catalog/api-contract"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/config"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/event"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/feed"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/http"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/log"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/repository"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/service"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/storage/mq"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/storage/shopify"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/telemetry"
	"github.com/tuanvumaihuynh/supplier-catalog/pkg/cmdutil"
	"github.com/tuanvumaihuynh/supplier-catalog/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running standalone application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log     config.Log
		HTTP    config.HTTP
		Shopify config.Shopify
		Catalog config.Catalog
		Feed    config.Feed
		Kafka   config.Kafka
		Otel    config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	contract, err := apicontract.Load(ctx)
	if err != nil {
		return fmt.Errorf("error loading api contract: %w", err)
	}

	loc, err := cfg.Catalog.Location()
	if err != nil {
		return fmt.Errorf("error loading catalog timezone: %w", err)
	}

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	shopifyClient, err := shopify.NewClient(cfg.Shopify, logger)
	if err != nil {
		return fmt.Errorf("error creating shopify client: %w", err)
	}

	var producer mq.Producer = mq.NopProducer{Logger: logger}
	if cfg.Kafka.Enabled() {
		kafkaProducer, err := mq.NewKafkaProducer(ctx, cfg.Kafka)
		if err != nil {
			return fmt.Errorf("error creating kafka producer: %w", err)
		}
		defer kafkaProducer.Close()

		producer = kafkaProducer
	} else {
		logger.WarnContext(ctx, "no kafka addresses configured, status change events are dropped")
	}

	productRepository := repository.NewProductRepository(shopifyClient)

	productService := service.NewProductService(
		cfg.Catalog,
		loc,
		logger,
		validator.MustNewDefaultValidator(),
		productRepository,
		producer,
	)
	feedService := service.NewFeedService(feed.NewOptions(cfg.Feed, cfg.Shopify), logger, productRepository)

	interruptChan := cmdutil.InterruptChan()
	var wg sync.WaitGroup

	if cfg.Kafka.Enabled() {
		kafkaConsumer, err := mq.NewKafkaConsumer(ctx, cfg.Kafka, logger)
		if err != nil {
			return fmt.Errorf("error creating kafka consumer: %w", err)
		}

		wg.Go(func() {
			svc := event.New(logger, kafkaConsumer)
			cleanup, err := svc.Run(ctx)
			if err != nil {
				panic(fmt.Errorf("error running event service: %w", err))
			}
			logger.InfoContext(ctx, "event service started")

			<-interruptChan

			logger.InfoContext(ctx, "event service is shutting down")
			cleanup()

			logger.InfoContext(ctx, "event service is stopped")
		})
	}

	wg.Go(func() {
		svc := http.New(cfg.HTTP, logger, contract, productService, feedService)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running http service: %w", err))
		}

		logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

		<-interruptChan

		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
		}

		logger.InfoContext(ctx, "http service is stopped")
	})

	wg.Wait()

	return nil
}
