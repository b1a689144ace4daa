package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/feed"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/repository"
)

type FeedService interface {
	// GenerateFeed renders the feed of every active product. No bytes are
	// returned unless the whole catalog was fetched and rendered.
	GenerateFeed(ctx context.Context) ([]byte, error)
}

type feedService struct {
	opts        feed.Options
	logger      *slog.Logger
	productRepo repository.ProductRepository
}

func NewFeedService(
	opts feed.Options,
	logger *slog.Logger,
	productRepo repository.ProductRepository,
) FeedService {
	return &feedService{
		opts:        opts,
		logger:      logger.With(slog.String("service", "feed")),
		productRepo: productRepo,
	}
}

func (s *feedService) GenerateFeed(ctx context.Context) ([]byte, error) {
	products, err := s.productRepo.ListActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list active products: %w", upstreamError(err))
	}

	out, err := feed.Render(products, s.opts)
	if err != nil {
		return nil, fmt.Errorf("render feed: %w", apperr.FeedRenderFailedErr.WrapParent(err))
	}

	s.logger.DebugContext(ctx, "feed generated",
		slog.Int("items", len(products)),
		slog.Int("bytes", len(out)),
	)

	return out, nil
}
