package shopify

// Product is the Admin REST API product resource, limited to the fields this
// service reads.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	BodyHTML    string    `json:"body_html"`
	Handle      string    `json:"handle"`
	Vendor      string    `json:"vendor"`
	ProductType string    `json:"product_type"`
	Status      string    `json:"status"`
	Tags        string    `json:"tags"`
	UpdatedAt   string    `json:"updated_at"`
	Variants    []Variant `json:"variants"`
	Images      []Image   `json:"images"`
}

type Variant struct {
	ID                  int64   `json:"id"`
	Price               string  `json:"price"`
	CompareAtPrice      *string `json:"compare_at_price"`
	InventoryQuantity   int     `json:"inventory_quantity"`
	InventoryManagement *string `json:"inventory_management"`
	SKU                 *string `json:"sku"`
}

type Image struct {
	Src string `json:"src"`
}

type productsResponse struct {
	Products []Product `json:"products"`
}

type productResponse struct {
	Product Product `json:"product"`
}

type updateProductRequest struct {
	Product updateProductFields `json:"product"`
}

type updateProductFields struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
