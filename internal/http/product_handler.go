package http

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/catalog"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/http/apierr"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/http/gen"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/model"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/service"
	"github.com/tuanvumaihuynh/supplier-catalog/pkg/ptr"
)

type productHandler struct {
	productSvc service.ProductService
}

func newProductHandler(productSvc service.ProductService) *productHandler {
	return &productHandler{
		productSvc: productSvc,
	}
}

func (h *productHandler) ListProducts(ctx context.Context, request gen.ListProductsRequestObject) (gen.ListProductsResponseObject, error) {
	products, err := h.productSvc.ListVendorProducts(ctx, deref(request.Params.Vendor))
	if err != nil {
		return nil, fmt.Errorf("product service list vendor products: %w", err)
	}

	return gen.ListProducts200JSONResponse{
		Success:  true,
		Count:    len(products),
		Products: productsToResponse(products),
	}, nil
}

func (h *productHandler) GetProductOverview(ctx context.Context, request gen.GetProductOverviewRequestObject) (gen.GetProductOverviewResponseObject, error) {
	params := service.GetProductOverviewParams{
		Vendor: deref(request.Params.Vendor),
		Search: deref(request.Params.Q),
	}
	if request.Params.Filter != nil {
		params.Filter = catalog.Filter(*request.Params.Filter)
	}
	if request.Params.Page != nil {
		params.Page = *request.Params.Page
	}

	overview, err := h.productSvc.GetProductOverview(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("product service get product overview: %w", err)
	}

	c := overview.Counts
	return gen.GetProductOverview200JSONResponse{
		Success:    true,
		Products:   productsToResponse(overview.Products),
		Matched:    overview.Matched,
		Page:       overview.Page,
		PageSize:   overview.PageSize,
		TotalPages: overview.TotalPages,
		Counts: gen.OverviewCounts{
			All:        c.All,
			Active:     c.Active,
			Draft:      c.Draft,
			Under500:   c.Under500,
			N500to1000: c.From500To1000,
			Today:      c.Today,
			Yesterday:  c.Yesterday,
			Thisweek:   c.ThisWeek,
		},
	}, nil
}

func (h *productHandler) UpdateProductStatus(ctx context.Context, request gen.UpdateProductStatusRequestObject) (gen.UpdateProductStatusResponseObject, error) {
	params := service.UpdateProductStatusParams{
		ID:     request.Id,
		Status: model.ProductStatus(request.Body.Status),
	}
	product, err := h.productSvc.UpdateProductStatus(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("product service update product status: %w", err)
	}

	return gen.UpdateProductStatus200JSONResponse{
		Success: true,
		Product: productToResponse(product),
	}, nil
}

func (h *productHandler) BulkUpdateProductStatus(ctx context.Context, request gen.BulkUpdateProductStatusRequestObject) (gen.BulkUpdateProductStatusResponseObject, error) {
	params := service.BulkUpdateProductStatusParams{
		IDs:    request.Body.Ids,
		Status: model.ProductStatus(request.Body.Status),
	}
	res, err := h.productSvc.BulkUpdateProductStatus(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("product service bulk update product status: %w", err)
	}

	results := make([]gen.BulkUpdateItemResult, 0, len(res.Items))
	for _, item := range res.Items {
		r := gen.BulkUpdateItemResult{
			Id:      item.ID,
			Success: item.Err == nil,
		}
		if item.Err != nil {
			errRes := apierr.New(item.Err)
			r.Error = ptr.New(errRes.Error)
			r.Code = ptr.New(errRes.Code)
		} else if item.Product != nil {
			r.Product = ptr.New(productToResponse(*item.Product))
		}
		results = append(results, r)
	}

	return gen.BulkUpdateProductStatus200JSONResponse{
		Success:   res.Outcome == service.BulkUpdateOutcomeSuccess,
		Outcome:   gen.BulkUpdateOutcome(res.Outcome),
		Succeeded: res.Succeeded,
		Failed:    res.Failed,
		Results:   results,
	}, nil
}

func productsToResponse(products []model.Product) []gen.Product {
	items := make([]gen.Product, 0, len(products))
	for _, product := range products {
		items = append(items, productToResponse(product))
	}
	return items
}

func productToResponse(product model.Product) gen.Product {
	variants := make([]gen.Variant, 0, len(product.Variants))
	for _, v := range product.Variants {
		variants = append(variants, gen.Variant{
			Id:                  v.ID,
			Price:               v.Price,
			CompareAtPrice:      optional(v.CompareAtPrice),
			InventoryQuantity:   v.InventoryQuantity,
			InventoryManagement: optional(v.InventoryManagement),
			Sku:                 optional(v.SKU),
		})
	}

	images := make([]gen.Image, 0, len(product.Images))
	for _, img := range product.Images {
		images = append(images, gen.Image{Src: img.Src})
	}

	return gen.Product{
		Id:          product.ID,
		Title:       product.Title,
		BodyHtml:    product.BodyHTML,
		Handle:      product.Handle,
		Vendor:      product.Vendor,
		ProductType: product.ProductType,
		Tags:        product.Tags,
		Status:      gen.ProductStatus(product.Status),
		UpdatedAt:   product.UpdatedAt,
		Variants:    variants,
		Images:      images,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return ptr.New(s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
