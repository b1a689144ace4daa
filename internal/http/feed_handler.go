package http

import (
	"bytes"
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/http/gen"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/service"
)

const feedCacheControl = "no-store, no-cache, must-revalidate, max-age=0"

type feedHandler struct {
	feedSvc service.FeedService
}

func newFeedHandler(feedSvc service.FeedService) *feedHandler {
	return &feedHandler{
		feedSvc: feedSvc,
	}
}

func (h *feedHandler) GetFeed(ctx context.Context, _ gen.GetFeedRequestObject) (gen.GetFeedResponseObject, error) {
	out, err := h.feedSvc.GenerateFeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("feed service generate feed: %w", err)
	}

	return gen.GetFeed200ApplicationxmlResponse{
		Body:          bytes.NewReader(out),
		ContentLength: int64(len(out)),
		Headers: gen.GetFeed200ResponseHeaders{
			CacheControl: feedCacheControl,
		},
	}, nil
}
