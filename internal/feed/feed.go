// Package feed renders an advertising product feed: RSS 2.0 extended with the
// Google merchant ("g:") namespace, one item per product.
package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/config"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/model"
)

const GoogleNamespace = "http://base.google.com/ns/1.0"

const (
	availabilityInStock    = "in stock"
	availabilityOutOfStock = "out of stock"
)

type Options struct {
	Title       string
	Description string
	// StorefrontDomain is the public domain product links point to.
	StorefrontDomain string
	Currency         string
	Condition        string
	ShippingWeight   string
}

type Document struct {
	XMLName  xml.Name `xml:"rss"`
	Version  string   `xml:"version,attr"`
	GoogleNS string   `xml:"xmlns:g,attr"`
	Channel  Channel  `xml:"channel"`
}

type Channel struct {
	Title       Text   `xml:"title"`
	Link        Text   `xml:"link"`
	Description Text   `xml:"description"`
	TotalItems  int    `xml:"total_items"`
	Items       []Item `xml:"item"`
}

// Item is one feed entry. Placeholder fields are always emitted, empty when unknown.
type Item struct {
	Title                 Text `xml:"title"`
	Link                  Text `xml:"link"`
	Description           Text `xml:"description"`
	GoogleProductCategory Text `xml:"g:google_product_category"`
	ItemGroupID           Text `xml:"g:item_group_id"`
	ID                    Text `xml:"g:id"`
	Condition             Text `xml:"g:condition"`
	Price                 Text `xml:"g:price"`
	SalePrice             Text `xml:"g:sale_price"`
	Availability          Text `xml:"g:availability"`
	ImageLink             Text `xml:"g:image_link"`
	GTIN                  Text `xml:"g:gtin"`
	Brand                 Text `xml:"g:brand"`
	MPN                   Text `xml:"g:mpn"`
	ProductType           Text `xml:"g:product_type"`
	AgeGroup              Text `xml:"g:age_group"`
	Gender                Text `xml:"g:gender"`
	CustomLabel0          Text `xml:"g:custom_label_0"`
	CustomLabel1          Text `xml:"g:custom_label_1"`
	CustomLabel2          Text `xml:"g:custom_label_2"`
	CustomLabel3          Text `xml:"g:custom_label_3"`
	CustomLabel4          Text `xml:"g:custom_label_4"`
	ShippingWeight        Text `xml:"g:shipping_weight"`
}

func NewOptions(feedCfg config.Feed, shopifyCfg config.Shopify) Options {
	return Options{
		Title:            feedCfg.Title,
		Description:      feedCfg.Description,
		StorefrontDomain: shopifyCfg.StorefrontDomain(),
		Currency:         feedCfg.Currency,
		Condition:        feedCfg.Condition,
		ShippingWeight:   feedCfg.ShippingWeight,
	}
}

// Build maps products to a feed document in input order.
func Build(products []model.Product, opts Options) Document {
	items := make([]Item, 0, len(products))
	for _, p := range products {
		items = append(items, NewItem(p, opts))
	}

	return Document{
		Version:  "2.0",
		GoogleNS: GoogleNamespace,
		Channel: Channel{
			Title:       Text(opts.Title),
			Link:        Text("https://" + opts.StorefrontDomain),
			Description: Text(opts.Description),
			TotalItems:  len(products),
			Items:       items,
		},
	}
}

// NewItem builds the entry of a product from its first variant. A product
// without variants yields an entry built from the zero Variant.
func NewItem(p model.Product, opts Options) Item {
	v := p.FirstVariant()

	body := p.BodyHTML
	if body == "" {
		body = p.Title
	}

	availability := availabilityOutOfStock
	if v.InStock() {
		availability = availabilityInStock
	}

	return Item{
		Title:          Text(p.Title),
		Link:           Text(productURL(opts.StorefrontDomain, p.Handle, v.ID)),
		Description:    Text(StripHTML(body)),
		ItemGroupID:    Text(strconv.FormatInt(p.ID, 10)),
		ID:             Text(strconv.FormatInt(v.ID, 10)),
		Condition:      Text(opts.Condition),
		Price:          Text(formatPrice(v.RegularPrice(), opts.Currency)),
		SalePrice:      Text(formatPrice(v.Price, opts.Currency)),
		Availability:   Text(availability),
		ImageLink:      Text(p.FirstImageSrc()),
		Brand:          Text(p.Vendor),
		MPN:            Text(v.SKU),
		ShippingWeight: Text(opts.ShippingWeight),
	}
}

// Render serializes the feed of products. The document is produced in full
// before it is returned; on error no bytes are returned.
func Render(products []model.Product, opts Options) ([]byte, error) {
	doc := Build(products, opts)

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal feed: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(xml.Header) + len(out) + 1)
	buf.WriteString(xml.Header)
	buf.Write(out)
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func productURL(domain, handle string, variantID int64) string {
	u := url.URL{
		Scheme:   "https",
		Host:     domain,
		Path:     "/products/" + handle,
		RawQuery: "variant=" + strconv.FormatInt(variantID, 10),
	}
	return u.String()
}

func formatPrice(price, currency string) string {
	if price == "" {
		return ""
	}
	return price + " " + currency
}
