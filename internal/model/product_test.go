package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/model"
)

func TestProductStatusValidate(t *testing.T) {
	assert.NoError(t, model.ProductStatusActive.Validate())
	assert.NoError(t, model.ProductStatusDraft.Validate())

	for _, s := range []model.ProductStatus{"archived", "", "Active", "DRAFT"} {
		err := s.Validate()
		assert.ErrorIs(t, err, model.ErrInvalidProductStatus, "status %q", s)
	}
}

func TestVariantInStock(t *testing.T) {
	tests := []struct {
		name    string
		variant model.Variant
		want    bool
	}{
		{name: "untracked negative quantity", variant: model.Variant{InventoryQuantity: -5}, want: true},
		{name: "untracked zero quantity", variant: model.Variant{InventoryQuantity: 0}, want: true},
		{name: "other management mode at zero", variant: model.Variant{InventoryManagement: "amazon_marketplace_web"}, want: true},
		{name: "tracked zero quantity", variant: model.Variant{InventoryManagement: model.TrackedInventory}, want: false},
		{name: "shopify wire value at zero", variant: model.Variant{InventoryManagement: "shopify"}, want: false},
		{name: "tracked positive quantity", variant: model.Variant{InventoryManagement: model.TrackedInventory, InventoryQuantity: 3}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.variant.InStock())
		})
	}
}

func TestVariantPrices(t *testing.T) {
	t.Run("Should prefer the compare-at price as regular price", func(t *testing.T) {
		v := model.Variant{Price: "450.00", CompareAtPrice: "600.00"}
		assert.Equal(t, "600.00", v.RegularPrice())
	})

	t.Run("Should fall back to price", func(t *testing.T) {
		v := model.Variant{Price: "450.00"}
		assert.Equal(t, "450.00", v.RegularPrice())
	})

	t.Run("Should parse prices as decimals", func(t *testing.T) {
		assert.True(t, decimal.RequireFromString("499.99").Equal(model.Variant{Price: "499.99"}.PriceDecimal()))
		assert.True(t, model.Variant{Price: ""}.PriceDecimal().IsZero())
		assert.True(t, model.Variant{Price: "n/a"}.PriceDecimal().IsZero())
	})
}

func TestProductAccessorsWithoutVariants(t *testing.T) {
	var p model.Product

	assert.Equal(t, model.Variant{}, p.FirstVariant())
	assert.Equal(t, "", p.FirstImageSrc())
	assert.Equal(t, "", p.DisplayPrice())
	assert.True(t, p.FirstVariant().InStock())

	p.Variants = []model.Variant{{ID: 7, Price: "10"}, {ID: 8, Price: "20"}}
	p.Images = []model.Image{{Src: "https://cdn/a.jpg"}, {Src: "https://cdn/b.jpg"}}
	assert.Equal(t, int64(7), p.FirstVariant().ID)
	assert.Equal(t, "10", p.DisplayPrice())
	assert.Equal(t, "https://cdn/a.jpg", p.FirstImageSrc())
}
