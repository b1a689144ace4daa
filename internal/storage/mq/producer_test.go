package mq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/supplier-catalog/pkg/ptr"
)

func TestBuildProduceRecord(t *testing.T) {
	t.Run("Should copy topic, payload, key and headers", func(t *testing.T) {
		rec := buildProduceRecord(ProduceMsg{
			Topic:        "product.status_changed",
			Headers:      map[string]string{"X-Correlation-ID": "abc"},
			Payload:      []byte(`{"product_id":1}`),
			PartitionKey: ptr.New("1"),
		})

		assert.Equal(t, "product.status_changed", rec.Topic)
		assert.Equal(t, []byte(`{"product_id":1}`), rec.Value)
		assert.Equal(t, []byte("1"), rec.Key)
		if assert.Len(t, rec.Headers, 1) {
			assert.Equal(t, "X-Correlation-ID", rec.Headers[0].Key)
			assert.Equal(t, []byte("abc"), rec.Headers[0].Value)
		}
	})

	t.Run("Should leave the key empty without partition key", func(t *testing.T) {
		rec := buildProduceRecord(ProduceMsg{Topic: "t"})

		assert.Nil(t, rec.Key)
		assert.Empty(t, rec.Headers)
	})
}

func TestBuildProduceRecord_HeaderOrder(t *testing.T) {
	rec := buildProduceRecord(ProduceMsg{
		Topic: "t",
		Headers: map[string]string{
			"traceparent":      "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
			"X-Correlation-ID": "abc",
			"baggage":          "k=v",
		},
	})

	keys := make([]string, 0, len(rec.Headers))
	for _, h := range rec.Headers {
		keys = append(keys, h.Key)
	}
	assert.Equal(t, []string{"X-Correlation-ID", "baggage", "traceparent"}, keys)
}

func TestNopProducer(t *testing.T) {
	assert.NoError(t, NopProducer{}.Produce(context.Background(), ProduceMsg{Topic: "t"}))
	assert.NoError(t, NopProducer{}.Produce(context.Background()))
}
