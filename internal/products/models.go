package products

import "time"

// Product is a catalog entry as returned by the pipeline API. The dashboard
// is read-only: products are never created or mutated here.
type Product struct {
	ASIN      string    `json:"asin"`
	Title     string    `json:"title"`
	Brand     string    `json:"brand,omitempty"`
	Category  string    `json:"category,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// LatestOffer is nil for products the ingestor has not priced yet.
	LatestOffer *Offer `json:"latest_offer,omitempty"`

	// Sparkline is only populated on the detail endpoint, ordered by time.
	Sparkline []OfferSnapshot `json:"sparkline,omitempty"`
}

// Offer is the most recent priced availability snapshot for a product.
type Offer struct {
	Price        *float64  `json:"price"` // nullable
	Currency     string    `json:"currency"`
	Availability string    `json:"availability"`
	Seller       string    `json:"seller"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// OfferSnapshot is one historical point in a product's price history.
type OfferSnapshot struct {
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	Availability string    `json:"availability"`
	ChangeType   string    `json:"change_type,omitempty"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// ListResponse is the envelope of GET /products.
type ListResponse struct {
	Products []Product `json:"products"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}
