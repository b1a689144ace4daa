package feed_test

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/config"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/feed"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/model"
)

var testOptions = feed.Options{
	Title:            "Product Feed",
	Description:      "Active products feed for Facebook Catalog",
	StorefrontDomain: "wellbeing.com",
	Currency:         "BDT",
	Condition:        "new",
	ShippingWeight:   "0.0 kg",
}

type parsedDocument struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel struct {
		Title       string       `xml:"title"`
		Link        string       `xml:"link"`
		Description string       `xml:"description"`
		TotalItems  int          `xml:"total_items"`
		Items       []parsedItem `xml:"item"`
	} `xml:"channel"`
}

type parsedItem struct {
	Title          string  `xml:"title"`
	Link           string  `xml:"link"`
	Description    string  `xml:"description"`
	ItemGroupID    string  `xml:"http://base.google.com/ns/1.0 item_group_id"`
	ID             string  `xml:"http://base.google.com/ns/1.0 id"`
	Condition      string  `xml:"http://base.google.com/ns/1.0 condition"`
	Price          string  `xml:"http://base.google.com/ns/1.0 price"`
	SalePrice      string  `xml:"http://base.google.com/ns/1.0 sale_price"`
	Availability   string  `xml:"http://base.google.com/ns/1.0 availability"`
	ImageLink      string  `xml:"http://base.google.com/ns/1.0 image_link"`
	Brand          string  `xml:"http://base.google.com/ns/1.0 brand"`
	MPN            string  `xml:"http://base.google.com/ns/1.0 mpn"`
	GTIN           *string `xml:"http://base.google.com/ns/1.0 gtin"`
	CustomLabel4   *string `xml:"http://base.google.com/ns/1.0 custom_label_4"`
	ShippingWeight string  `xml:"http://base.google.com/ns/1.0 shipping_weight"`
}

func renderAndParse(t *testing.T, products []model.Product) (string, parsedDocument) {
	t.Helper()

	out, err := feed.Render(products, testOptions)
	require.NoError(t, err)

	var doc parsedDocument
	require.NoError(t, xml.Unmarshal(out, &doc))

	return string(out), doc
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "Soft cotton", want: "Soft cotton"},
		{name: "tags become spaces", in: "<p>Soft</p><p>cotton</p>", want: "Soft cotton"},
		{name: "whitespace collapses", in: "  Soft \n\t cotton  ", want: "Soft cotton"},
		{name: "attributes", in: `<a href="/x">link</a> text`, want: "link text"},
		{name: "no-break spaces collapse", in: "a\u00a0\u00a0 b", want: "a b"},
		{name: "unicode separators", in: "\ufeffa\u2028\u2029\vb\u00a0", want: "a b"},
		{name: "only tags", in: "<br/><hr>", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feed.StripHTML(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, feed.StripHTML(got))
		})
	}
}

func TestEscapeXML(t *testing.T) {
	t.Run("Should escape all special characters", func(t *testing.T) {
		assert.Equal(t, "Baby &amp; Toddler &quot;Soft&quot; Shoes", feed.EscapeXML(`Baby & Toddler "Soft" Shoes`))
		assert.Equal(t, "&lt;b&gt;Tom&apos;s&lt;/b&gt;", feed.EscapeXML("<b>Tom's</b>"))
		assert.Equal(t, "&amp;amp;", feed.EscapeXML("&amp;"))
	})

	t.Run("Should round-trip through an XML parser", func(t *testing.T) {
		inputs := []string{
			`Baby & Toddler "Soft" Shoes`,
			"<script>alert('x')</script>",
			"a && b << c >> 'd' \"e\"",
			"&amp; already escaped",
			"বাংলা & English",
		}

		for _, in := range inputs {
			var decoded struct {
				V string `xml:"v"`
			}
			doc := "<doc><v>" + feed.EscapeXML(in) + "</v></doc>"
			require.NoError(t, xml.Unmarshal([]byte(doc), &decoded), in)
			assert.Equal(t, in, decoded.V)
		}
	})
}

func TestText_MarshalXML(t *testing.T) {
	out, err := xml.Marshal(struct {
		XMLName xml.Name  `xml:"doc"`
		V       feed.Text `xml:"v"`
	}{V: feed.Text("Tom's \"A\" & B\x00\x0b")})
	require.NoError(t, err)

	assert.Equal(t, "<doc><v>Tom&apos;s &quot;A&quot; &amp; B</v></doc>", string(out))
}

func TestRender(t *testing.T) {
	t.Run("Should render an empty feed", func(t *testing.T) {
		out, doc := renderAndParse(t, nil)

		assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
		assert.Contains(t, out, `<rss version="2.0" xmlns:g="http://base.google.com/ns/1.0">`)
		assert.Contains(t, out, "<total_items>0</total_items>")
		assert.NotContains(t, out, "<item>")

		assert.Equal(t, "2.0", doc.Version)
		assert.Equal(t, "Product Feed", doc.Channel.Title)
		assert.Equal(t, "https://wellbeing.com", doc.Channel.Link)
		assert.Equal(t, "Active products feed for Facebook Catalog", doc.Channel.Description)
		assert.Empty(t, doc.Channel.Items)
	})

	t.Run("Should map a product to an item", func(t *testing.T) {
		products := []model.Product{{
			ID:       7,
			Title:    `Baby & Toddler "Soft" Shoes`,
			BodyHTML: "<p>Comfy <b>shoes</b></p>\n<p>for kids</p>",
			Handle:   "baby-shoes",
			Vendor:   "Wellbeing",
			Status:   model.ProductStatusActive,
			Variants: []model.Variant{{
				ID:                  70,
				Price:               "450.00",
				CompareAtPrice:      "500.00",
				InventoryQuantity:   3,
				InventoryManagement: model.TrackedInventory,
				SKU:                 "BTS-01",
			}, {
				ID:    71,
				Price: "999.00",
			}},
			Images: []model.Image{{Src: "https://cdn.example.com/shoes.jpg"}, {Src: "https://cdn.example.com/other.jpg"}},
		}}

		out, doc := renderAndParse(t, products)

		assert.Contains(t, out, "<title>Baby &amp; Toddler &quot;Soft&quot; Shoes</title>")
		assert.Contains(t, out, "<total_items>1</total_items>")
		assert.Contains(t, out, "<g:google_product_category></g:google_product_category>")

		require.Len(t, doc.Channel.Items, 1)
		item := doc.Channel.Items[0]
		assert.Equal(t, `Baby & Toddler "Soft" Shoes`, item.Title)
		assert.Equal(t, "https://wellbeing.com/products/baby-shoes?variant=70", item.Link)
		assert.Equal(t, "Comfy shoes for kids", item.Description)
		assert.Equal(t, "7", item.ItemGroupID)
		assert.Equal(t, "70", item.ID)
		assert.Equal(t, "new", item.Condition)
		assert.Equal(t, "500.00 BDT", item.Price)
		assert.Equal(t, "450.00 BDT", item.SalePrice)
		assert.Equal(t, "in stock", item.Availability)
		assert.Equal(t, "https://cdn.example.com/shoes.jpg", item.ImageLink)
		assert.Equal(t, "Wellbeing", item.Brand)
		assert.Equal(t, "BTS-01", item.MPN)
		assert.Equal(t, "0.0 kg", item.ShippingWeight)
		require.NotNil(t, item.GTIN)
		assert.Empty(t, *item.GTIN)
		require.NotNil(t, item.CustomLabel4)
		assert.Empty(t, *item.CustomLabel4)
	})

	t.Run("Should fall back to the title and the sale price", func(t *testing.T) {
		products := []model.Product{{
			ID:       8,
			Title:    "Green <Tea>",
			Handle:   "green-tea",
			Variants: []model.Variant{{ID: 80, Price: "120.00"}},
		}}

		_, doc := renderAndParse(t, products)

		require.Len(t, doc.Channel.Items, 1)
		item := doc.Channel.Items[0]
		assert.Equal(t, "Green", item.Description)
		assert.Equal(t, "120.00 BDT", item.Price)
		assert.Equal(t, "120.00 BDT", item.SalePrice)
		assert.Empty(t, item.ImageLink)
		assert.Empty(t, item.MPN)
	})

	t.Run("Should report availability", func(t *testing.T) {
		tests := []struct {
			name    string
			variant model.Variant
			want    string
		}{
			{name: "untracked negative", variant: model.Variant{InventoryQuantity: -5}, want: "in stock"},
			{name: "untracked zero", variant: model.Variant{}, want: "in stock"},
			{name: "tracked zero", variant: model.Variant{InventoryManagement: model.TrackedInventory}, want: "out of stock"},
			{name: "tracked positive", variant: model.Variant{InventoryManagement: model.TrackedInventory, InventoryQuantity: 2}, want: "in stock"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				item := feed.NewItem(model.Product{Variants: []model.Variant{tt.variant}}, testOptions)
				assert.Equal(t, feed.Text(tt.want), item.Availability)
			})
		}
	})

	t.Run("Should render a product without variants", func(t *testing.T) {
		_, doc := renderAndParse(t, []model.Product{{ID: 9, Title: "Gift card", Handle: "gift"}})

		assert.Equal(t, 1, doc.Channel.TotalItems)
		require.Len(t, doc.Channel.Items, 1)
		item := doc.Channel.Items[0]
		assert.Equal(t, "9", item.ItemGroupID)
		assert.Equal(t, "0", item.ID)
		assert.Equal(t, "in stock", item.Availability)
		assert.Empty(t, item.Price)
	})

	t.Run("Should render identical bytes for identical input", func(t *testing.T) {
		products := []model.Product{{ID: 1, Title: "A", Variants: []model.Variant{{ID: 2, Price: "1.00"}}}}

		first, err := feed.Render(products, testOptions)
		require.NoError(t, err)
		second, err := feed.Render(products, testOptions)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestNewOptions(t *testing.T) {
	feedCfg := config.Feed{
		Title:          "Product Feed",
		Description:    "desc",
		Currency:       "BDT",
		Condition:      "new",
		ShippingWeight: "0.0 kg",
	}

	t.Run("Should prefer the live domain", func(t *testing.T) {
		opts := feed.NewOptions(feedCfg, config.Shopify{
			StoreDomain: "wellbeing.myshopify.com",
			LiveDomain:  "shop.wellbeing.com.bd",
		})
		assert.Equal(t, "shop.wellbeing.com.bd", opts.StorefrontDomain)
		assert.Equal(t, "BDT", opts.Currency)
	})

	t.Run("Should derive the storefront from the store domain", func(t *testing.T) {
		opts := feed.NewOptions(feedCfg, config.Shopify{StoreDomain: "wellbeing.myshopify.com"})
		assert.Equal(t, "wellbeing.com", opts.StorefrontDomain)
	})
}
