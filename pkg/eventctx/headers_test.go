package eventctx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/tuanvumaihuynh/supplier-catalog/pkg/correlationid"
	"github.com/tuanvumaihuynh/supplier-catalog/pkg/eventctx"
)

func TestHeaders(t *testing.T) {
	t.Run("Should carry the correlation id through headers", func(t *testing.T) {
		ctx := correlationid.NewContext(context.Background(), "corr-1")

		headers := eventctx.BuildHeaders(ctx)
		assert.Equal(t, "corr-1", headers[correlationid.Header])

		out := eventctx.ExtractContextFromHeaders(context.Background(), headers)
		id, ok := correlationid.FromContext(out)
		assert.True(t, ok)
		assert.Equal(t, "corr-1", id)
	})

	t.Run("Should omit the correlation id when absent", func(t *testing.T) {
		headers := eventctx.BuildHeaders(context.Background())

		_, ok := headers[correlationid.Header]
		assert.False(t, ok)
	})

	t.Run("Should flatten record headers", func(t *testing.T) {
		rec := &kgo.Record{Headers: []kgo.RecordHeader{
			{Key: correlationid.Header, Value: []byte("a")},
			{Key: "traceparent", Value: []byte("00-x")},
			{Key: correlationid.Header, Value: []byte("b")},
		}}

		headers := eventctx.RecordHeaders(rec)
		assert.Equal(t, map[string]string{correlationid.Header: "b", "traceparent": "00-x"}, headers)
	})
}
