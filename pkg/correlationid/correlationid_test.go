package correlationid_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/supplier-catalog/pkg/correlationid"
)

func TestCorrelationID(t *testing.T) {
	t.Run("Should round-trip through the context", func(t *testing.T) {
		ctx := correlationid.NewContext(context.Background(), "abc-123")

		id, ok := correlationid.FromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "abc-123", id)
	})

	t.Run("Should report a missing id", func(t *testing.T) {
		_, ok := correlationid.FromContext(context.Background())
		assert.False(t, ok)

		_, ok = correlationid.FromContext(correlationid.NewContext(context.Background(), ""))
		assert.False(t, ok)
	})

	t.Run("Should generate uuids", func(t *testing.T) {
		_, err := uuid.Parse(correlationid.New())
		require.NoError(t, err)
	})
}
