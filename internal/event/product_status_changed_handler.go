package event

import (
	"context"
	"log/slog"
	"time"
)

const TopicProductStatusChanged = "product.status_changed"

type ProductStatusChangedEvent struct {
	ProductID int64     `json:"product_id"`
	Title     string    `json:"title"`
	Vendor    string    `json:"vendor"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}

func (s *Service) handleProductStatusChangedEvent(ctx context.Context, ev ProductStatusChangedEvent) error {
	s.logger.InfoContext(ctx, "product status changed",
		slog.Int64("product_id", ev.ProductID),
		slog.String("title", ev.Title),
		slog.String("vendor", ev.Vendor),
		slog.String("status", ev.Status),
		slog.Time("changed_at", ev.ChangedAt),
	)
	return nil
}
