package models

import "go.mongodb.org/mongo-driver/bson"

// RawProduct is a product document exactly as the scrapers left it in the
// store. No field is guaranteed to be present, typed consistently, or even
// spelled consistently (legacy key aliases coexist across records), so raw
// documents are kept as untyped BSON maps and every read goes through the
// catalog normalizer.
type RawProduct = bson.M

// Product is the normalized, presentation-ready record served to the
// storefront. Pointer fields are null in JSON when the source document had
// nothing usable; list fields always serialize as arrays.
type Product struct {
	ID string `json:"id"`

	ProductLink  *string `json:"product_link"`
	ProductImage *string `json:"product_image"`

	BrandName          *string `json:"brand_name"`
	ProductName        *string `json:"product_name"`
	ProductDescription *string `json:"product_description"`

	ProductCategory    *string `json:"product_category"`
	ProductSubCategory *string `json:"product_sub_category"`
	ProductGender      *string `json:"product_gender"`

	OriginalPrice *float64 `json:"original_price"`
	SalePrice     *float64 `json:"sale_price"`
	Discount      *int     `json:"discount"`
	DiscountValue *float64 `json:"discount_value"`
	DiscPct       *string  `json:"disc_pct"`

	ProductColor    []string `json:"product_color"`
	ProductMaterial *string  `json:"product_material"`
	ProductOccasion *string  `json:"product_occasion"`
	AvailableSizes  []string `json:"available_sizes"`

	SearchTags    *string `json:"search_tags"`
	Currency      *string `json:"currency"`
	ScrapedAt     *string `json:"scraped_at"`
	WishlistState bool    `json:"wishlist_state"`
}
