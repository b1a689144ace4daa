package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/model"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/storage/shopify"
)

type ProductRepository interface {
	ListProductsByVendor(ctx context.Context, vendor string) ([]model.Product, error)
	ListActiveProducts(ctx context.Context) ([]model.Product, error)
	UpdateProductStatus(ctx context.Context, id int64, status model.ProductStatus) (model.Product, error)
}

type productRepository struct {
	client shopify.Client
}

func NewProductRepository(client shopify.Client) ProductRepository {
	return &productRepository{
		client: client,
	}
}

func (r productRepository) ListProductsByVendor(ctx context.Context, vendor string) ([]model.Product, error) {
	products, err := r.client.ListProducts(ctx, shopify.ListProductsFilter{Vendor: vendor})
	if err != nil {
		return nil, fmt.Errorf("list products by vendor: %w", err)
	}

	return shopifyProductsToModelProducts(products)
}

func (r productRepository) ListActiveProducts(ctx context.Context) ([]model.Product, error) {
	products, err := r.client.ListProducts(ctx, shopify.ListProductsFilter{Status: string(model.ProductStatusActive)})
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}

	return shopifyProductsToModelProducts(products)
}

func (r productRepository) UpdateProductStatus(ctx context.Context, id int64, status model.ProductStatus) (model.Product, error) {
	product, err := r.client.UpdateProductStatus(ctx, id, string(status))
	if err != nil {
		return model.Product{}, fmt.Errorf("update product status: %w", err)
	}

	modelProduct, err := shopifyProductToModelProduct(product)
	if err != nil {
		return model.Product{}, fmt.Errorf("convert product to model product: %w", err)
	}

	return modelProduct, nil
}

func shopifyProductsToModelProducts(products []shopify.Product) ([]model.Product, error) {
	modelProducts := make([]model.Product, 0, len(products))
	for _, product := range products {
		modelProduct, err := shopifyProductToModelProduct(product)
		if err != nil {
			return nil, fmt.Errorf("convert product to model product: %w", err)
		}
		modelProducts = append(modelProducts, modelProduct)
	}

	return modelProducts, nil
}

func shopifyProductToModelProduct(product shopify.Product) (model.Product, error) {
	var updatedAt time.Time
	if product.UpdatedAt != "" {
		t, err := time.Parse(time.RFC3339, product.UpdatedAt)
		if err != nil {
			return model.Product{}, fmt.Errorf("parse updated_at of product %d: %w", product.ID, err)
		}
		updatedAt = t
	}

	variants := make([]model.Variant, 0, len(product.Variants))
	for _, v := range product.Variants {
		variants = append(variants, model.Variant{
			ID:                  v.ID,
			Price:               v.Price,
			CompareAtPrice:      deref(v.CompareAtPrice),
			InventoryQuantity:   v.InventoryQuantity,
			InventoryManagement: deref(v.InventoryManagement),
			SKU:                 deref(v.SKU),
		})
	}

	images := make([]model.Image, 0, len(product.Images))
	for _, img := range product.Images {
		images = append(images, model.Image{Src: img.Src})
	}

	return model.Product{
		ID:          product.ID,
		Title:       product.Title,
		BodyHTML:    product.BodyHTML,
		Handle:      product.Handle,
		Vendor:      product.Vendor,
		ProductType: product.ProductType,
		Tags:        product.Tags,
		Status:      model.ProductStatus(product.Status),
		UpdatedAt:   updatedAt,
		Variants:    variants,
		Images:      images,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
