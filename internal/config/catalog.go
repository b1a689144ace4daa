package config

import (
	"fmt"
	"time"
)

type Catalog struct {
	DefaultVendor string `env:"CATALOG_DEFAULT_VENDOR" envDefault:"Wellbeing"`
	PageSize      int    `env:"CATALOG_PAGE_SIZE" envDefault:"50"`
	Timezone      string `env:"CATALOG_TIMEZONE" envDefault:"UTC"`
}

// Location resolves Timezone. Day-based overview filters start at midnight in it.
func (c Catalog) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", c.Timezone, err)
	}
	return loc, nil
}
