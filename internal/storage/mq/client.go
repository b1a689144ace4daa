package mq

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/config"
)

const pingTimeout = 5 * time.Second

func clientOpts(ctx context.Context, cfg config.Kafka) []kgo.Opt {
	return []kgo.Opt{
		kgo.SeedBrokers(cfg.Addresses...),
		kgo.ClientID(cfg.ClientID),
		kgo.AllowAutoTopicCreation(),
		kgo.WithContext(ctx),
		kgo.WithHooks(newKotel().Hooks()...),
	}
}

// newClient creates a client and checks that a broker answers.
func newClient(ctx context.Context, cfg config.Kafka, extra ...kgo.Opt) (*kgo.Client, error) {
	cl, err := kgo.NewClient(append(clientOpts(ctx, cfg), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, pingTimeout)
	defer pingCancel()
	if err := cl.Ping(pingCtx); err != nil {
		cl.Close()
		return nil, fmt.Errorf("ping kafka: %w", err)
	}

	return cl, nil
}
