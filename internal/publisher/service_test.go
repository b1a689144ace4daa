package publisher_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/config"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/publisher"
)

type fakeFeedService struct {
	out   []byte
	err   error
	calls atomic.Int32
}

func (f *fakeFeedService) GenerateFeed(context.Context) ([]byte, error) {
	f.calls.Add(1)
	return f.out, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Publish(t *testing.T) {
	t.Run("Should write the feed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feed.xml")
		feedSvc := &fakeFeedService{out: []byte("<rss/>")}
		svc := publisher.NewService(config.Feed{OutputPath: path}, discardLogger(), feedSvc)

		require.NoError(t, svc.Publish(context.Background()))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<rss/>", string(got))
	})

	t.Run("Should keep the previous file on failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feed.xml")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
		feedSvc := &fakeFeedService{err: errors.New("upstream down")}
		svc := publisher.NewService(config.Feed{OutputPath: path}, discardLogger(), feedSvc)

		assert.Error(t, svc.Publish(context.Background()))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "old", string(got))
	})

	t.Run("Should require an output path", func(t *testing.T) {
		feedSvc := &fakeFeedService{}
		svc := publisher.NewService(config.Feed{}, discardLogger(), feedSvc)

		assert.ErrorIs(t, svc.Publish(context.Background()), publisher.ErrNoOutputPath)
		assert.Zero(t, feedSvc.calls.Load())
	})
}

func TestWriteFile(t *testing.T) {
	t.Run("Should replace the file without leftovers", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "feed.xml")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

		require.NoError(t, publisher.WriteFile(path, []byte("<rss/>")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<rss/>", string(got))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Should fail for a missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "feed.xml")

		assert.Error(t, publisher.WriteFile(path, []byte("<rss/>")))
	})
}
