package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/config"
)

const (
	// PageLimit is the page size requested from the listing endpoint.
	PageLimit = 250

	accessTokenHeader = "X-Shopify-Access-Token"
	maxResponseSize   = 32 << 20 // 32 MB
)

// ListProductsFilter selects products by vendor or by status. Empty fields are not sent.
type ListProductsFilter struct {
	Vendor string
	Status string
}

func (f ListProductsFilter) query() url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(PageLimit))
	if f.Vendor != "" {
		q.Set("vendor", f.Vendor)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	return q
}

type Client interface {
	// ListProducts returns every product matching filter across all pages, in
	// upstream order. Any failed page fails the whole listing.
	ListProducts(ctx context.Context, filter ListProductsFilter) ([]Product, error)
	// UpdateProductStatus sets the status of one product and returns the updated resource.
	UpdateProductStatus(ctx context.Context, id int64, status string) (Product, error)
}

var _ Client = (*HTTPClient)(nil)

type HTTPClient struct {
	cfg        config.Shopify
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an Admin REST API client for the configured store.
func NewClient(cfg config.Shopify, logger *slog.Logger) (*HTTPClient, error) {
	baseURL, err := url.Parse(cfg.AdminAPIURL())
	if err != nil {
		return nil, fmt.Errorf("parse admin api url: %w", err)
	}
	if baseURL.Host == "" {
		return nil, fmt.Errorf("admin api url %q has no host", cfg.AdminAPIURL())
	}

	return &HTTPClient{
		cfg:     cfg,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger.With(slog.String("storage", "shopify")),
	}, nil
}

func (c *HTTPClient) ListProducts(ctx context.Context, filter ListProductsFilter) ([]Product, error) {
	ctx, span := tracer.Start(ctx, "shopify.ListProducts", trace.WithAttributes(
		attribute.String("shopify.vendor", filter.Vendor),
		attribute.String("shopify.status", filter.Status),
	))
	defer span.End()

	cursor := firstPage(c.endpoint("products.json") + "?" + filter.query().Encode())
	products := make([]Product, 0, PageLimit)
	pages := 0

	for !cursor.Done() {
		if c.cfg.MaxPages > 0 && pages >= c.cfg.MaxPages {
			err := fmt.Errorf("%w: stopped after %d pages", ErrTooManyPages, pages)
			span.RecordError(err)
			span.SetStatus(codes.Error, "page limit reached")
			return nil, err
		}

		page, next, err := c.fetchPage(ctx, cursor)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch page")
			return nil, fmt.Errorf("fetch page %d: %w", pages+1, err)
		}

		products = append(products, page...)
		pages++
		cursor = next
	}

	span.SetAttributes(
		attribute.Int("shopify.pages", pages),
		attribute.Int("shopify.products", len(products)),
	)
	c.logger.DebugContext(ctx, "listed products",
		slog.Int("pages", pages),
		slog.Int("count", len(products)),
	)

	return products, nil
}

func (c *HTTPClient) fetchPage(ctx context.Context, cursor PageCursor) ([]Product, PageCursor, error) {
	body, header, err := c.do(ctx, "list products", http.MethodGet, cursor.String(), nil)
	if err != nil {
		return nil, PageCursor{}, err
	}

	var res productsResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, PageCursor{}, fmt.Errorf("%w: decode products: %w", ErrInvalidResponse, err)
	}

	next := NextPageCursor(header.Get("Link"))
	if !next.Done() && !next.sameHost(c.baseURL.Host) {
		return nil, PageCursor{}, fmt.Errorf("%w: %s", ErrForeignNextLink, next)
	}

	return res.Products, next, nil
}

func (c *HTTPClient) UpdateProductStatus(ctx context.Context, id int64, status string) (Product, error) {
	if id <= 0 {
		return Product{}, fmt.Errorf("%w: %d", ErrInvalidProductID, id)
	}

	ctx, span := tracer.Start(ctx, "shopify.UpdateProductStatus", trace.WithAttributes(
		attribute.Int64("shopify.product_id", id),
		attribute.String("shopify.status", status),
	))
	defer span.End()

	payload, err := json.Marshal(updateProductRequest{
		Product: updateProductFields{ID: id, Status: status},
	})
	if err != nil {
		return Product{}, fmt.Errorf("marshal update request: %w", err)
	}

	u := c.endpoint("products", strconv.FormatInt(id, 10)+".json")
	body, _, err := c.do(ctx, "update product", http.MethodPut, u, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to update product")
		return Product{}, err
	}

	var res productResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return Product{}, fmt.Errorf("%w: decode product: %w", ErrInvalidResponse, err)
	}

	return res.Product, nil
}

func (c *HTTPClient) endpoint(elem ...string) string {
	return c.baseURL.JoinPath(elem...).String()
}

// do sends one request and returns the body of a 2xx response.
func (c *HTTPClient) do(ctx context.Context, op, method, target string, payload []byte) ([]byte, http.Header, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set(accessTokenHeader, c.cfg.AccessToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		//nolint:errcheck
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		c.logger.WarnContext(ctx, "upstream request failed",
			slog.String("op", op),
			slog.String("method", method),
			slog.Int("status", resp.StatusCode),
		)
		return nil, nil, &StatusError{Op: op, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	if len(body) > maxResponseSize {
		return nil, nil, fmt.Errorf("%w: %s: response larger than %d bytes", ErrInvalidResponse, op, maxResponseSize)
	}

	return body, resp.Header, nil
}
