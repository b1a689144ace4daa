// Package catalog answers dashboard queries over a fetched product snapshot.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/model"
)

const DefaultPageSize = 50

var ErrInvalidFilter = errors.New("invalid filter")

var (
	lowPriceLimit  = decimal.NewFromInt(500)
	highPriceLimit = decimal.NewFromInt(1000)
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterDraft     Filter = "draft"
	FilterUnder500  Filter = "under500"
	Filter500To1000 Filter = "500to1000"
	FilterToday     Filter = "today"
	FilterYesterday Filter = "yesterday"
	FilterThisWeek  Filter = "thisweek"
)

func (f Filter) Validate() error {
	switch f {
	case FilterAll, FilterActive, FilterDraft, FilterUnder500, Filter500To1000,
		FilterToday, FilterYesterday, FilterThisWeek:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFilter, string(f))
	}
}

type Query struct {
	Filter Filter
	// Search matches title or first variant SKU, case-insensitively.
	Search string
	// Page is 1-based and clamped into range.
	Page     int
	PageSize int
}

type Counts struct {
	All           int
	Active        int
	Draft         int
	Under500      int
	From500To1000 int
	Today         int
	Yesterday     int
	ThisWeek      int
}

type Overview struct {
	Products   []model.Product
	Matched    int
	Page       int
	PageSize   int
	TotalPages int
	Counts     Counts
}

// window holds the day boundaries of now in its location.
type window struct {
	today     time.Time
	yesterday time.Time
	weekStart time.Time
}

func newWindow(now time.Time) window {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return window{
		today:     today,
		yesterday: today.AddDate(0, 0, -1),
		weekStart: today.AddDate(0, 0, -7),
	}
}

func (w window) match(f Filter, p model.Product) bool {
	switch f {
	case FilterActive:
		return p.Status == model.ProductStatusActive
	case FilterDraft:
		return p.Status == model.ProductStatusDraft
	case FilterUnder500:
		return p.FirstVariant().PriceDecimal().LessThan(lowPriceLimit)
	case Filter500To1000:
		price := p.FirstVariant().PriceDecimal()
		return price.GreaterThanOrEqual(lowPriceLimit) && price.LessThanOrEqual(highPriceLimit)
	case FilterToday:
		return !p.UpdatedAt.Before(w.today)
	case FilterYesterday:
		return !p.UpdatedAt.Before(w.yesterday) && p.UpdatedAt.Before(w.today)
	case FilterThisWeek:
		return !p.UpdatedAt.Before(w.weekStart)
	default:
		return true
	}
}

func matchSearch(p model.Product, search string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.FirstVariant().SKU), search)
}

// BuildOverview filters, searches, sorts (most recently updated first) and
// pages products. Day filters are relative to midnight of now in now's location.
// Counts are taken over the whole snapshot, ignoring the query.
func BuildOverview(products []model.Product, q Query, now time.Time) Overview {
	w := newWindow(now)
	search := strings.TrimSpace(q.Search)

	matched := make([]model.Product, 0, len(products))
	for _, p := range products {
		if w.match(q.Filter, p) && matchSearch(p, search) {
			matched = append(matched, p)
		}
	}

	slices.SortStableFunc(matched, func(a, b model.Product) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := (len(matched) + pageSize - 1) / pageSize
	page := min(max(q.Page, 1), max(totalPages, 1))

	start := min((page-1)*pageSize, len(matched))
	end := min(start+pageSize, len(matched))

	return Overview{
		Products:   matched[start:end],
		Matched:    len(matched),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Counts:     count(products, w),
	}
}

func count(products []model.Product, w window) Counts {
	c := Counts{All: len(products)}
	for _, p := range products {
		if w.match(FilterActive, p) {
			c.Active++
		}
		if w.match(FilterDraft, p) {
			c.Draft++
		}
		if w.match(FilterUnder500, p) {
			c.Under500++
		}
		if w.match(Filter500To1000, p) {
			c.From500To1000++
		}
		if w.match(FilterToday, p) {
			c.Today++
		}
		if w.match(FilterYesterday, p) {
			c.Yesterday++
		}
		if w.match(FilterThisWeek, p) {
			c.ThisWeek++
		}
	}
	return c
}
