package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/catalog"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/config"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/event"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/model"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/repository"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/storage/mq"
	"github.com/tuanvumaihuynh/supplier-catalog/pkg/eventctx"
	"github.com/tuanvumaihuynh/supplier-catalog/pkg/ptr"
	"github.com/tuanvumaihuynh/supplier-catalog/pkg/validator"
)

const (
	publishTimeout = 5 * time.Second

	// MaxBulkUpdateIDs bounds one bulk status update request.
	MaxBulkUpdateIDs = 100
)

type GetProductOverviewParams struct {
	Vendor string
	Filter catalog.Filter `validate:"enum"`
	Search string         `validate:"max=200"`
	Page   int            `validate:"gte=0"`
}

type UpdateProductStatusParams struct {
	ID     int64               `validate:"gt=0"`
	Status model.ProductStatus `validate:"required,enum"`
}

type BulkUpdateProductStatusParams struct {
	IDs    []int64             `validate:"required,min=1,max=100,unique,dive,gt=0"`
	Status model.ProductStatus `validate:"required,enum"`
}

type BulkUpdateOutcome string

const (
	BulkUpdateOutcomeSuccess BulkUpdateOutcome = "success"
	BulkUpdateOutcomePartial BulkUpdateOutcome = "partial"
	BulkUpdateOutcomeFailed  BulkUpdateOutcome = "failed"
)

// BulkUpdateItemResult is the outcome of one id. Exactly one of Product and Err is set.
type BulkUpdateItemResult struct {
	ID      int64
	Product *model.Product
	Err     error
}

type BulkUpdateResult struct {
	Outcome   BulkUpdateOutcome
	Items     []BulkUpdateItemResult
	Succeeded int
	Failed    int
}

type ProductService interface {
	// ListVendorProducts returns every product of vendor, or of the default
	// vendor when vendor is empty.
	ListVendorProducts(ctx context.Context, vendor string) ([]model.Product, error)
	GetProductOverview(ctx context.Context, params GetProductOverviewParams) (catalog.Overview, error)
	UpdateProductStatus(ctx context.Context, params UpdateProductStatusParams) (model.Product, error)
	// BulkUpdateProductStatus applies one status to many products, one at a
	// time in the given order. Applied updates are kept when later ones fail.
	BulkUpdateProductStatus(ctx context.Context, params BulkUpdateProductStatusParams) (BulkUpdateResult, error)
}

type ProductServiceOption func(*productService)

// WithClock overrides the time source used for overview day filters and events.
func WithClock(now func() time.Time) ProductServiceOption {
	return func(s *productService) {
		s.now = now
	}
}

type productService struct {
	cfg         config.Catalog
	loc         *time.Location
	logger      *slog.Logger
	validator   validator.Validator
	productRepo repository.ProductRepository
	producer    mq.Producer
	now         func() time.Time
}

func NewProductService(
	cfg config.Catalog,
	loc *time.Location,
	logger *slog.Logger,
	validator validator.Validator,
	productRepo repository.ProductRepository,
	producer mq.Producer,
	opts ...ProductServiceOption,
) ProductService {
	s := &productService{
		cfg:         cfg,
		loc:         loc,
		logger:      logger.With(slog.String("service", "product")),
		validator:   validator,
		productRepo: productRepo,
		producer:    producer,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *productService) vendorOrDefault(vendor string) string {
	if vendor == "" {
		return s.cfg.DefaultVendor
	}
	return vendor
}

func (s *productService) ListVendorProducts(ctx context.Context, vendor string) ([]model.Product, error) {
	products, err := s.productRepo.ListProductsByVendor(ctx, s.vendorOrDefault(vendor))
	if err != nil {
		return nil, fmt.Errorf("product repository list products by vendor: %w", upstreamError(err))
	}

	return products, nil
}

func (s *productService) GetProductOverview(ctx context.Context, params GetProductOverviewParams) (catalog.Overview, error) {
	if params.Filter == "" {
		params.Filter = catalog.FilterAll
	}
	if err := s.validator.Validate(params); err != nil {
		return catalog.Overview{}, fmt.Errorf("validate params: %w", err)
	}

	products, err := s.productRepo.ListProductsByVendor(ctx, s.vendorOrDefault(params.Vendor))
	if err != nil {
		return catalog.Overview{}, fmt.Errorf("product repository list products by vendor: %w", upstreamError(err))
	}

	return catalog.BuildOverview(products, catalog.Query{
		Filter:   params.Filter,
		Search:   params.Search,
		Page:     params.Page,
		PageSize: s.cfg.PageSize,
	}, s.now().In(s.loc)), nil
}

func (s *productService) UpdateProductStatus(ctx context.Context, params UpdateProductStatusParams) (model.Product, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, fmt.Errorf("validate params: %w", err)
	}

	product, err := s.updateProductStatus(ctx, params.ID, params.Status)
	if err != nil {
		return model.Product{}, err
	}

	s.publishStatusChanged(ctx, product)

	return product, nil
}

func (s *productService) BulkUpdateProductStatus(ctx context.Context, params BulkUpdateProductStatusParams) (BulkUpdateResult, error) {
	if err := s.validator.Validate(params); err != nil {
		return BulkUpdateResult{}, fmt.Errorf("validate params: %w", err)
	}

	res := BulkUpdateResult{
		Items: make([]BulkUpdateItemResult, 0, len(params.IDs)),
	}
	updated := make([]model.Product, 0, len(params.IDs))
	for _, id := range params.IDs {
		item := BulkUpdateItemResult{ID: id}

		product, err := s.updateProductStatus(ctx, id, params.Status)
		if err != nil {
			item.Err = err
			res.Failed++
		} else {
			item.Product = ptr.New(product)
			res.Succeeded++
			updated = append(updated, product)
		}

		res.Items = append(res.Items, item)
	}

	s.publishStatusChanged(ctx, updated...)

	switch {
	case res.Failed == 0:
		res.Outcome = BulkUpdateOutcomeSuccess
	case res.Succeeded == 0:
		res.Outcome = BulkUpdateOutcomeFailed
	default:
		res.Outcome = BulkUpdateOutcomePartial
	}

	s.logger.InfoContext(ctx, "bulk status update finished",
		slog.String("status", string(params.Status)),
		slog.String("outcome", string(res.Outcome)),
		slog.Int("succeeded", res.Succeeded),
		slog.Int("failed", res.Failed),
	)

	return res, nil
}

func (s *productService) updateProductStatus(ctx context.Context, id int64, status model.ProductStatus) (model.Product, error) {
	product, err := s.productRepo.UpdateProductStatus(ctx, id, status)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository update product status: %w", upstreamError(err))
	}

	return product, nil
}

// publishStatusChanged sends one event per product in a single batch bounded
// by publishTimeout. It never fails the updates, which are already applied upstream.
func (s *productService) publishStatusChanged(ctx context.Context, products ...model.Product) {
	if len(products) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	headers := eventctx.BuildHeaders(ctx)
	changedAt := s.now().UTC()
	msgs := make([]mq.ProduceMsg, 0, len(products))
	for _, product := range products {
		payload, err := json.Marshal(event.ProductStatusChangedEvent{
			ProductID: product.ID,
			Title:     product.Title,
			Vendor:    product.Vendor,
			Status:    string(product.Status),
			ChangedAt: changedAt,
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "marshal product status changed event",
				slog.Int64("product_id", product.ID),
				slog.Any("error", err),
			)
			continue
		}

		msgs = append(msgs, mq.ProduceMsg{
			Topic:        event.TopicProductStatusChanged,
			Headers:      headers,
			Payload:      payload,
			PartitionKey: ptr.New(strconv.FormatInt(product.ID, 10)),
		})
	}

	if err := s.producer.Produce(ctx, msgs...); err != nil {
		s.logger.WarnContext(ctx, "publish product status changed events",
			slog.Int("count", len(msgs)),
			slog.Any("error", err),
		)
	}
}
