package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/model"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/storage/mq"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var fixedNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type fakeProductRepo struct {
	mu sync.Mutex

	products   []model.Product
	listErr    error
	updateErrs map[int64]error

	vendors     []string
	activeCalls int
	updateCalls []int64
}

func (r *fakeProductRepo) ListProductsByVendor(_ context.Context, vendor string) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vendors = append(r.vendors, vendor)
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.products, nil
}

func (r *fakeProductRepo) ListActiveProducts(context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activeCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.products, nil
}

func (r *fakeProductRepo) UpdateProductStatus(_ context.Context, id int64, status model.ProductStatus) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.updateCalls = append(r.updateCalls, id)
	if err := r.updateErrs[id]; err != nil {
		return model.Product{}, err
	}
	return model.Product{ID: id, Title: "Product", Vendor: "Wellbeing", Status: status}, nil
}

type fakeProducer struct {
	mu    sync.Mutex
	msgs  []mq.ProduceMsg
	calls int
	err   error
}

func (p *fakeProducer) Produce(_ context.Context, msgs ...mq.ProduceMsg) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	p.msgs = append(p.msgs, msgs...)
	return p.err
}

var errBroker = errors.New("broker down")
