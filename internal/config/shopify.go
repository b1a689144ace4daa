package config

import (
	"fmt"
	"strings"
	"time"
)

const myshopifySuffix = ".myshopify.com"

type Shopify struct {
	StoreDomain    string        `env:"SHOPIFY_STORE_DOMAIN,required"`
	LiveDomain     string        `env:"SHOPIFY_STORE_DOMAIN_LIVE"`
	AccessToken    string        `env:"SHOPIFY_ACCESS_TOKEN,required,unset"`
	APIVersion     string        `env:"SHOPIFY_API_VERSION" envDefault:"2023-07"`
	Scheme         string        `env:"SHOPIFY_SCHEME" envDefault:"https"`
	MaxPages       int           `env:"SHOPIFY_MAX_PAGES" envDefault:"200"`
	RequestTimeout time.Duration `env:"SHOPIFY_REQUEST_TIMEOUT" envDefault:"30s"`
}

// AdminAPIURL returns the versioned Admin REST API root, without trailing slash.
func (s Shopify) AdminAPIURL() string {
	return fmt.Sprintf("%s://%s/admin/api/%s", s.Scheme, s.StoreDomain, s.APIVersion)
}

// StorefrontDomain returns the public storefront domain. When no live domain
// is configured, the myshopify suffix of the store domain becomes ".com".
func (s Shopify) StorefrontDomain() string {
	if s.LiveDomain != "" {
		return s.LiveDomain
	}
	return strings.Replace(s.StoreDomain, myshopifySuffix, ".com", 1)
}
