package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/storage/mq"
)

// Service consumes catalog events. It keeps an audit log of status changes.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger.With(slog.String("service", "event")),
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) handlers() map[string]mq.HandlerFunc {
	return map[string]mq.HandlerFunc{
		TopicProductStatusChanged: jsonHandler(s.handleProductStatusChangedEvent),
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	handlers := s.handlers()
	for _, topic := range slices.Sorted(maps.Keys(handlers)) {
		if err := s.mqConsumer.RegisterHandler(topic, handlers[topic]); err != nil {
			return nil, fmt.Errorf("register %s handler: %w", topic, err)
		}
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	return CleanupFunc(mqCleanup), nil
}

// jsonHandler decodes the payload into T before calling fn.
func jsonHandler[T any](fn func(ctx context.Context, ev T) error) mq.HandlerFunc {
	return func(ctx context.Context, msg mq.Message) error {
		var ev T
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			return fmt.Errorf("unmarshal %s payload: %w", msg.Topic, err)
		}

		if err := fn(ctx, ev); err != nil {
			return fmt.Errorf("handle %s: %w", msg.Topic, err)
		}

		return nil
	}
}
