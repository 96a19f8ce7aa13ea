package models

// FilterCriteria is the structured query a single storefront request boils
// down to. It is built once by the HTTP layer and consumed once by the
// catalog query builder; facet values arrive in slug form (lower-case,
// hyphen-joined).
type FilterCriteria struct {
	Categories []string
	Brands     []string
	Occasions  []string
	Gender     string

	PriceMin *float64
	PriceMax *float64

	Query  string
	SortBy string

	Limit int64
	Skip  int64
}

// FilterOption is a single selectable facet value with its document count.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count,omitempty"`
}

// FilterGroup is one facet (category, brand, occasion, price).
type FilterGroup struct {
	Title       string         `json:"title"`
	Options     []FilterOption `json:"options"`
	MultiSelect bool           `json:"multiSelect"`
}

type SortOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PriceRange is a fixed price bucket offered in the filter UI. Nil bounds
// are open-ended.
type PriceRange struct {
	Label string   `json:"label"`
	Value string   `json:"value"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
}

// FilterMetadata is everything the storefront needs to render its filter
// panel: live facet counts plus the fixed price buckets and sort options.
type FilterMetadata struct {
	Categories  []FilterGroup `json:"categories"`
	PriceRanges []PriceRange  `json:"priceRanges"`
	SortOptions []SortOption  `json:"sortOptions"`
}

func f64(v float64) *float64 { return &v }

// SortOptions is the fixed list of sort keys the storefront exposes.
var SortOptions = []SortOption{
	{Label: "Featured", Value: "featured"},
	{Label: "Price: Low to High", Value: "price-asc"},
	{Label: "Price: High to Low", Value: "price-desc"},
	{Label: "Discount: High to Low", Value: "discount-desc"},
	{Label: "Newest", Value: "newest"},
	{Label: "Name: A to Z", Value: "name-asc"},
	{Label: "Name: Z to A", Value: "name-desc"},
}

// PriceRanges is the fixed list of price buckets offered in the filter UI.
var PriceRanges = []PriceRange{
	{Label: "Under $500", Value: "under-500", Min: nil, Max: f64(500)},
	{Label: "$500 - $1000", Value: "500-1000", Min: f64(500), Max: f64(1000)},
	{Label: "$1000 - $5000", Value: "1000-5000", Min: f64(1000), Max: f64(5000)},
	{Label: "$5000 - $10000", Value: "5000-10000", Min: f64(5000), Max: f64(10000)},
	{Label: "Over $10000", Value: "over-10000", Min: f64(10000), Max: nil},
}

// Filter group titles as rendered by the frontend.
const (
	FilterTitleCategory = "CATEGORY"
	FilterTitleBrand    = "BRAND"
	FilterTitleOccasion = "OCCASION"
	FilterTitlePrice    = "PRICE"
)
