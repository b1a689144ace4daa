package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/feed"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/model"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/service"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/storage/shopify"
)

var feedOptions = feed.Options{
	Title:            "Product Feed",
	StorefrontDomain: "wellbeing.com",
	Currency:         "BDT",
	Condition:        "new",
	ShippingWeight:   "0.0 kg",
}

func TestFeedService_GenerateFeed(t *testing.T) {
	t.Run("Should render active products", func(t *testing.T) {
		repo := &fakeProductRepo{products: []model.Product{{
			ID:       1,
			Title:    "Tea & Honey",
			Handle:   "tea-honey",
			Variants: []model.Variant{{ID: 10, Price: "300.00"}},
		}}}
		svc := service.NewFeedService(feedOptions, discardLogger, repo)

		out, err := svc.GenerateFeed(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, repo.activeCalls)
		assert.Empty(t, repo.vendors)
		assert.Contains(t, string(out), "<title>Tea &amp; Honey</title>")
		assert.Contains(t, string(out), "<total_items>1</total_items>")
	})

	t.Run("Should return nothing when the catalog cannot be fetched", func(t *testing.T) {
		tests := []struct {
			name    string
			repoErr error
			want    error
		}{
			{
				name:    "upstream status",
				repoErr: &shopify.StatusError{Op: "list products", StatusCode: 500},
				want:    apperr.UpstreamRequestFailedErr,
			},
			{
				name:    "unreachable",
				repoErr: fmt.Errorf("%w: list products: %w", shopify.ErrUnavailable, fmt.Errorf("dial tcp: refused")),
				want:    apperr.UpstreamUnavailableErr,
			},
			{
				name:    "timeout",
				repoErr: fmt.Errorf("%w: list products: %w", shopify.ErrUnavailable, context.DeadlineExceeded),
				want:    apperr.UpstreamTimeoutErr,
			},
			{
				name:    "undecodable body",
				repoErr: fmt.Errorf("%w: decode products", shopify.ErrInvalidResponse),
				want:    apperr.UpstreamInvalidResponseErr,
			},
			{
				name:    "page limit",
				repoErr: fmt.Errorf("%w: stopped after 200 pages", shopify.ErrTooManyPages),
				want:    apperr.UpstreamRequestFailedErr,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := service.NewFeedService(feedOptions, discardLogger, &fakeProductRepo{listErr: tt.repoErr})

				out, err := svc.GenerateFeed(context.Background())
				assert.Nil(t, out)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}
