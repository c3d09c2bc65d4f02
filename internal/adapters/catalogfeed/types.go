// Package catalogfeed imports supplier catalog feeds into the store catalog.
//
// Suppliers export their frame and lens assortment as a JSON feed. The feed
// uses string-typed prices ("$45.00", "45.00") which are normalized during
// parsing; imported entries are upserted by SKU so a re-run of the same feed
// is idempotent.
package catalogfeed

// Feed is the top-level supplier feed document.
type Feed struct {
	Supplier  string         `json:"supplier"`
	Products  []FeedProduct  `json:"products"`
	LensTypes []FeedLensType `json:"lens_types,omitempty"`
}

// FeedProduct is one product entry in the feed.
type FeedProduct struct {
	SKU               string        `json:"sku"`
	Name              string        `json:"name"`
	Description       string        `json:"description,omitempty"`
	BasePrice         string        `json:"base_price"`
	ImagePath         string        `json:"image_path,omitempty"`
	OffersLensOptions bool          `json:"offers_lens_options"`
	DisplayOrder      int           `json:"display_order,omitempty"`
	Variants          []FeedVariant `json:"variants,omitempty"`
}

// FeedVariant is one variant entry of a feed product.
type FeedVariant struct {
	SKU             string `json:"sku"`
	Name            string `json:"name"`
	PriceAdjustment string `json:"price_adjustment,omitempty"`
	Stock           int    `json:"stock"`
	DisplayOrder    int    `json:"display_order,omitempty"`
}

// FeedLensType is one lens treatment entry in the feed.
type FeedLensType struct {
	SKU             string `json:"sku"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	PriceAdjustment string `json:"price_adjustment,omitempty"`
	DisplayOrder    int    `json:"display_order,omitempty"`
}
