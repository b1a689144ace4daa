package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/model"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/repository"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/storage/shopify"
	"github.com/tuanvumaihuynh/supplier-catalog/pkg/ptr"
)

type fakeClient struct {
	filters  []shopify.ListProductsFilter
	products []shopify.Product
	updated  shopify.Product
	err      error
}

func (c *fakeClient) ListProducts(_ context.Context, filter shopify.ListProductsFilter) ([]shopify.Product, error) {
	c.filters = append(c.filters, filter)
	return c.products, c.err
}

func (c *fakeClient) UpdateProductStatus(_ context.Context, id int64, status string) (shopify.Product, error) {
	if c.err != nil {
		return shopify.Product{}, c.err
	}
	p := c.updated
	p.ID = id
	p.Status = status
	return p, nil
}

func TestProductRepository(t *testing.T) {
	upstream := shopify.Product{
		ID:        1,
		Title:     "Green Tea",
		BodyHTML:  "<p>Leaves</p>",
		Handle:    "green-tea",
		Vendor:    "Wellbeing",
		Status:    "active",
		UpdatedAt: "2024-03-05T10:00:00+06:00",
		Variants: []shopify.Variant{{
			ID:                  11,
			Price:               "450.00",
			CompareAtPrice:      ptr.New("500.00"),
			InventoryQuantity:   0,
			InventoryManagement: ptr.New("shopify"),
			SKU:                 ptr.New("GT-1"),
		}, {
			ID:    12,
			Price: "900.00",
		}},
		Images: []shopify.Image{{Src: "https://cdn/gt.jpg"}},
	}

	t.Run("Should list by vendor and convert products", func(t *testing.T) {
		client := &fakeClient{products: []shopify.Product{upstream}}
		repo := repository.NewProductRepository(client)

		products, err := repo.ListProductsByVendor(context.Background(), "Wellbeing")
		require.NoError(t, err)
		require.Len(t, products, 1)

		assert.Equal(t, []shopify.ListProductsFilter{{Vendor: "Wellbeing"}}, client.filters)

		p := products[0]
		assert.Equal(t, model.ProductStatusActive, p.Status)
		assert.True(t, p.UpdatedAt.Equal(time.Date(2024, 3, 5, 4, 0, 0, 0, time.UTC)))
		assert.Equal(t, model.Variant{
			ID:                  11,
			Price:               "450.00",
			CompareAtPrice:      "500.00",
			InventoryManagement: "shopify",
			SKU:                 "GT-1",
		}, p.Variants[0])
		assert.Equal(t, model.Variant{ID: 12, Price: "900.00"}, p.Variants[1])
		assert.Equal(t, "https://cdn/gt.jpg", p.FirstImageSrc())
	})

	t.Run("Should list active products", func(t *testing.T) {
		client := &fakeClient{}
		repo := repository.NewProductRepository(client)

		products, err := repo.ListActiveProducts(context.Background())
		require.NoError(t, err)
		assert.Empty(t, products)
		assert.Equal(t, []shopify.ListProductsFilter{{Status: "active"}}, client.filters)
	})

	t.Run("Should propagate upstream failures", func(t *testing.T) {
		upstreamErr := &shopify.StatusError{Op: "list products", StatusCode: 503}
		repo := repository.NewProductRepository(&fakeClient{err: upstreamErr})

		products, err := repo.ListActiveProducts(context.Background())
		assert.Nil(t, products)
		assert.ErrorIs(t, err, shopify.ErrRequestFailed)

		_, err = repo.UpdateProductStatus(context.Background(), 1, model.ProductStatusDraft)
		var statusErr *shopify.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, 503, statusErr.StatusCode)
	})

	t.Run("Should return the updated product", func(t *testing.T) {
		repo := repository.NewProductRepository(&fakeClient{updated: upstream})

		p, err := repo.UpdateProductStatus(context.Background(), 1, model.ProductStatusDraft)
		require.NoError(t, err)
		assert.Equal(t, model.ProductStatusDraft, p.Status)
	})

	t.Run("Should reject malformed timestamps", func(t *testing.T) {
		bad := upstream
		bad.UpdatedAt = "yesterday"
		repo := repository.NewProductRepository(&fakeClient{products: []shopify.Product{bad}})

		_, err := repo.ListActiveProducts(context.Background())
		assert.Error(t, err)
	})
}
