package mq

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/config"
)

type ProduceMsg struct {
	Topic        string
	Headers      map[string]string
	Payload      []byte
	PartitionKey *string
}

type Producer interface {
	// Produce sends msgs as one batch and waits for every acknowledgement.
	Produce(ctx context.Context, msgs ...ProduceMsg) error
}

var (
	_ Producer = (*KafkaProducer)(nil)
	_ Producer = NopProducer{}
)

type KafkaProducer struct {
	cl *kgo.Client
}

func NewKafkaProducer(ctx context.Context, cfg config.Kafka) (*KafkaProducer, error) {
	cl, err := newClient(ctx, cfg, kgo.ProducerLinger(0))
	if err != nil {
		return nil, err
	}

	return &KafkaProducer{cl: cl}, nil
}

// Produce sends msgs and waits for the broker acknowledgements or ctx to end.
// The records are in flight together, so a batch costs one round trip.
func (p *KafkaProducer) Produce(ctx context.Context, msgs ...ProduceMsg) error {
	if len(msgs) == 0 {
		return nil
	}

	ctx, span := tracer.Start(ctx, "KafkaProducer.Produce",
		trace.WithAttributes(
			attribute.String("messaging.destination", msgs[0].Topic),
			attribute.Int("messaging.batch.message_count", len(msgs)),
		),
	)
	defer span.End()

	records := make([]*kgo.Record, 0, len(msgs))
	for _, msg := range msgs {
		records = append(records, buildProduceRecord(msg))
	}

	if err := p.cl.ProduceSync(ctx, records...).FirstErr(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to produce messages")
		return fmt.Errorf("produce to %s: %w", msgs[0].Topic, err)
	}

	return nil
}

func (p *KafkaProducer) Close() {
	p.cl.Close()
}

func buildProduceRecord(msg ProduceMsg) *kgo.Record {
	// sorted so identical messages produce identical records
	headers := make([]kgo.RecordHeader, 0, len(msg.Headers))
	for _, k := range slices.Sorted(maps.Keys(msg.Headers)) {
		headers = append(headers, kgo.RecordHeader{
			Key:   k,
			Value: []byte(msg.Headers[k]),
		})
	}

	r := &kgo.Record{
		Topic:   msg.Topic,
		Value:   msg.Payload,
		Headers: headers,
	}

	if msg.PartitionKey != nil {
		r.Key = []byte(*msg.PartitionKey)
	}

	return r
}

// NopProducer drops every message. It stands in when no broker is configured.
type NopProducer struct {
	Logger *slog.Logger
}

func (p NopProducer) Produce(ctx context.Context, msgs ...ProduceMsg) error {
	if p.Logger == nil {
		return nil
	}
	for _, msg := range msgs {
		p.Logger.DebugContext(ctx, "message dropped, no broker configured",
			slog.String("topic", msg.Topic),
		)
	}
	return nil
}
