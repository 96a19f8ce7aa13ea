package catalog

import (
	"strconv"

	"github.com/halfsy-shop/halfsy-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transform converts one raw store document into its canonical storefront
// form. It returns nil when the record is excluded: a product is only
// customer-visible with valid dual pricing, i.e. both an original and a sale
// price that actually differ. Malformed individual fields degrade to nil or
// zero values; only the pricing predicate drops the whole record.
func Transform(raw models.RawProduct) *models.Product {
	original, okOrig := ParseCurrencyAmount(ResolveAlias(raw, "original_price", "price_original"))
	sale, okSale := ParseCurrencyAmount(ResolveAlias(raw, "sale_price", "price_final"))

	if !okOrig || !okSale {
		return nil
	}
	// Identical prices mean no markdown; the record is not a deal.
	if priceKey(original) == priceKey(sale) {
		return nil
	}

	p := &models.Product{
		ID: documentID(raw),

		ProductLink:  optString(raw["product_link"]),
		ProductImage: optString(raw["product_image"]),

		BrandName:          applyCase(optString(raw["brand_name"]), AllCaps),
		ProductCategory:    applyCase(optString(raw["product_category"]), AllCaps),
		ProductSubCategory: applyCase(optString(raw["product_sub_category"]), TitleCase),
		ProductGender:      applyCase(optString(raw["product_gender"]), TitleCase),
		ProductName:        applyCase(optString(raw["product_name"]), TitleCase),
		ProductDescription: applyCase(optString(raw["product_description"]), TitleCase),

		OriginalPrice: &original,
		SalePrice:     &sale,
		Discount:      optInt(raw["discount"]),
		DiscPct:       optString(raw["disc_pct"]),

		ProductMaterial: optString(raw["product_material"]),
		ProductOccasion: optString(ResolveAlias(raw, "product_occasion", "occasion")),

		SearchTags: optString(raw["search_tags"]),
		Currency:   optString(raw["currency"]),
		ScrapedAt:  optString(raw["scraped_at"]),
	}

	p.DiscountValue = discountValue(raw, original, sale)

	p.ProductColor = NormalizeColors(ResolveAlias(raw, "product_color", "color"))
	if p.ProductColor == nil {
		p.ProductColor = []string{}
	}
	p.AvailableSizes = NormalizeSizes(raw["available_sizes"])
	if p.AvailableSizes == nil {
		p.AvailableSizes = []string{}
	}

	if b, ok := raw["wishlist_state"].(bool); ok {
		p.WishlistState = b
	}

	return p
}

// discountValue prefers the store-provided value and otherwise computes
// original − sale. Non-numeric leftovers fall back to nil.
func discountValue(raw models.RawProduct, original, sale float64) *float64 {
	if v, ok := raw["discount_value"]; ok {
		if f, ok := ParseCurrencyAmount(v); ok {
			return &f
		}
	}
	d := original - sale
	return &d
}

// priceKey is the canonical string form used for the dual-price equality
// check, so "100" and "100.00" compare equal.
func priceKey(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// documentID renders the store's native identifier as a string. Documents
// fetched through the raw pipeline carry an ObjectID under _id; seed data
// and legacy exports sometimes carry a plain "id" string instead.
func documentID(raw models.RawProduct) string {
	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		return oid.Hex()
	}
	if v, ok := raw["_id"]; ok && v != nil {
		return Stringify(v)
	}
	if v, ok := raw["id"]; ok && v != nil {
		return Stringify(v)
	}
	return ""
}

func optString(v any) *string {
	if v == nil {
		return nil
	}
	s := Stringify(v)
	return &s
}

func optInt(v any) *int {
	f, ok := ParseCurrencyAmount(v)
	if !ok {
		return nil
	}
	n := int(f)
	return &n
}

func applyCase(s *string, fn func(string) string) *string {
	if s == nil {
		return nil
	}
	out := fn(*s)
	return &out
}
