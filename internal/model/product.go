package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TrackedInventory is the variant inventory_management value meaning Shopify
// itself counts the stock. Only then does inventory_quantity decide availability.
const TrackedInventory = "shopify"

var ErrInvalidProductStatus = errors.New("invalid product status")

// ProductStatus is the storefront visibility of a product.
type ProductStatus string

const (
	ProductStatusActive ProductStatus = "active"
	ProductStatusDraft  ProductStatus = "draft"
)

// Validate accepts only the statuses a supplier may set.
func (s ProductStatus) Validate() error {
	switch s {
	case ProductStatusActive, ProductStatusDraft:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidProductStatus, string(s))
	}
}

type Product struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	BodyHTML    string        `json:"body_html"`
	Handle      string        `json:"handle"`
	Vendor      string        `json:"vendor"`
	ProductType string        `json:"product_type"`
	Tags        string        `json:"tags"`
	Status      ProductStatus `json:"status"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Variants    []Variant     `json:"variants"`
	Images      []Image       `json:"images"`
}

// FirstVariant returns the first variant, or the zero Variant when the product has none.
func (p Product) FirstVariant() Variant {
	if len(p.Variants) == 0 {
		return Variant{}
	}
	return p.Variants[0]
}

// FirstImageSrc returns the source of the first image, or "".
func (p Product) FirstImageSrc() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].Src
}

// DisplayPrice is the first variant's price.
func (p Product) DisplayPrice() string {
	return p.FirstVariant().Price
}

// Variant fields that are optional upstream are empty strings when absent.
type Variant struct {
	ID                  int64  `json:"id"`
	Price               string `json:"price"`
	CompareAtPrice      string `json:"compare_at_price"`
	InventoryQuantity   int    `json:"inventory_quantity"`
	InventoryManagement string `json:"inventory_management"`
	SKU                 string `json:"sku"`
}

// InStock reports availability: only a tracked variant with exactly zero
// units is out of stock. Untracked variants are in stock at any quantity.
func (v Variant) InStock() bool {
	return v.InventoryManagement != TrackedInventory || v.InventoryQuantity != 0
}

// RegularPrice is the compare-at price when set, otherwise the price.
func (v Variant) RegularPrice() string {
	if v.CompareAtPrice != "" {
		return v.CompareAtPrice
	}
	return v.Price
}

// PriceDecimal parses Price. Empty or malformed prices count as zero.
func (v Variant) PriceDecimal() decimal.Decimal {
	d, err := decimal.NewFromString(v.Price)
	if err != nil {
		return decimal.Zero
	}
	return d
}

type Image struct {
	Src string `json:"src"`
}
