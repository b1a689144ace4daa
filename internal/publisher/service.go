package publisher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/config"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/service"
)

var ErrNoOutputPath = errors.New("feed output path is not configured")

// Service writes the rendered feed to the configured output path.
type Service struct {
	cfg     config.Feed
	logger  *slog.Logger
	feedSvc service.FeedService
}

func NewService(
	cfg config.Feed,
	logger *slog.Logger,
	feedSvc service.FeedService,
) *Service {
	return &Service{
		cfg:     cfg,
		logger:  logger.With(slog.String("service", "publisher")),
		feedSvc: feedSvc,
	}
}

// Publish renders the feed and replaces the output file with it. A failed
// render leaves the previous file untouched.
func (s *Service) Publish(ctx context.Context) error {
	if s.cfg.OutputPath == "" {
		return ErrNoOutputPath
	}

	out, err := s.feedSvc.GenerateFeed(ctx)
	if err != nil {
		return fmt.Errorf("feed service generate feed: %w", err)
	}

	if err := WriteFile(s.cfg.OutputPath, out); err != nil {
		return fmt.Errorf("write feed to %s: %w", s.cfg.OutputPath, err)
	}

	s.logger.InfoContext(ctx, "feed published",
		slog.String("path", s.cfg.OutputPath),
		slog.Int("bytes", len(out)),
	)

	return nil
}

// WriteFile replaces path with data through a temp file in the same directory.
func WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
