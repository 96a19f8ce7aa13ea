package catalog

import (
	"regexp"
	"strings"

	"github.com/halfsy-shop/halfsy-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Brand-priority ranks are grouped into buckets of this size so that a
// handful of neighbouring brands rank equally and recency decides between
// them.
const brandBucketSize = 5

// unrankedBucket sorts brands missing from the priority list after every
// ranked bucket.
const unrankedBucket = 1 << 20

// Computed fields added by aggregation plans. Prefixed so they can never
// collide with scraped fields, and stripped again by the plan's projection.
const (
	fieldDealAmount  = "hs_deal_amount"
	fieldDiscountPct = "hs_discount_pct"
	fieldBrandRank   = "hs_brand_rank"
	fieldBrandBucket = "hs_brand_bucket"
)

// Plan is a backend-agnostic description of one catalog query: a filter
// predicate, an optional stored-field sort, and optional extra aggregation
// stages for sorts on computed values. Search carries the full-text stage
// tried before the regex fallback.
type Plan struct {
	Filter bson.M
	Sort   bson.D

	// Stages holds $addFields/$sort stages that run after the filter match
	// when the sort key must be computed server-side.
	Stages mongo.Pipeline

	// Project strips plan-internal computed fields from the page.
	Project bson.M

	// Search, when set, is a full-text search stage that replaces the plain
	// filter match as the pipeline entry point.
	Search bson.D
}

// NeedsPipeline reports whether the plan can only run as an aggregation.
func (p Plan) NeedsPipeline() bool {
	return len(p.Stages) > 0 || p.Search != nil
}

// VisibleFilter is the standing precondition for customer-visible products:
// a non-empty image URL that actually points somewhere. Every listing plan
// ANDs this in; only the internal raw by-id lookup skips it.
func VisibleFilter() bson.M {
	return bson.M{"product_image": bson.M{
		"$exists": true,
		"$type":   "string",
		"$regex":  primitive.Regex{Pattern: "^http"},
	}}
}

// BuildListingPlan translates filter criteria into a plan for the generic
// listing and filter endpoints.
func BuildListingPlan(c models.FilterCriteria) Plan {
	plan := Plan{Filter: andAll(criteriaConditions(c))}

	sort, stages, project := sortSpec(c.SortBy)
	plan.Sort = sort
	plan.Stages = stages
	plan.Project = project
	return plan
}

// BuildSearchPlans returns the fuzzy full-text plan and the regex fallback
// used when the search index is unavailable. Both carry the same facet,
// gender and price predicates and the same pagination contract; only the
// entry stage and ordering differ (relevance vs natural order).
func BuildSearchPlans(c models.FilterCriteria) (primary, fallback Plan) {
	conds := criteriaConditions(c)

	primary = Plan{
		Filter: andAll(conds),
		Search: searchStage(c.Query),
	}

	q := regexp.QuoteMeta(strings.TrimSpace(c.Query))
	re := primitive.Regex{Pattern: q, Options: "i"}
	textMatch := bson.M{"$or": []bson.M{
		{"product_name": re},
		{"product_description": re},
		{"brand_name": re},
		{"product_category": re},
		{"search_tags": re},
	}}
	fallback = Plan{Filter: andAll(append(conds, textMatch))}
	return primary, fallback
}

// BuildDealsPlan selects genuinely marked-down products (numeric dual
// pricing with sale below original), optionally restricted to an allow-listed
// brand set, ordered by absolute discount amount descending.
func BuildDealsPlan(allowBrands, excludedKeywords []string) Plan {
	conds := []bson.M{
		VisibleFilter(),
		{"$expr": bson.M{"$and": bson.A{
			bson.M{"$isNumber": "$original_price"},
			bson.M{"$isNumber": "$sale_price"},
			bson.M{"$lt": bson.A{"$sale_price", "$original_price"}},
		}}},
	}
	if len(allowBrands) > 0 {
		conds = append(conds, exactAnyField([]string{"brand_name"}, allowBrands))
	}
	if excl := excludeKeywords(excludedKeywords); excl != nil {
		conds = append(conds, excl)
	}

	return Plan{
		Filter: andAll(conds),
		Stages: mongo.Pipeline{
			{{Key: "$addFields", Value: bson.M{
				fieldDealAmount: bson.M{"$subtract": bson.A{"$original_price", "$sale_price"}},
			}}},
			{{Key: "$sort", Value: bson.D{
				{Key: fieldDealAmount, Value: -1},
				{Key: "_id", Value: 1},
			}}},
		},
		Project: bson.M{fieldDealAmount: 0},
	}
}

// BuildBrandPriorityPlan orders the listing by the merchandising team's
// brand ranking: rank buckets ascending, then freshest scrape first.
// Deterministic for a fixed brand list and data snapshot.
func BuildBrandPriorityPlan(brandOrder, excludedKeywords []string) Plan {
	upper := make([]string, len(brandOrder))
	for i, b := range brandOrder {
		upper[i] = strings.ToUpper(b)
	}

	conds := []bson.M{VisibleFilter()}
	if excl := excludeKeywords(excludedKeywords); excl != nil {
		conds = append(conds, excl)
	}

	return Plan{
		Filter: andAll(conds),
		Stages: mongo.Pipeline{
			{{Key: "$addFields", Value: bson.M{
				fieldBrandRank: bson.M{"$indexOfArray": bson.A{
					upper,
					bson.M{"$toUpper": bson.M{"$ifNull": bson.A{"$brand_name", ""}}},
				}},
			}}},
			{{Key: "$addFields", Value: bson.M{
				fieldBrandBucket: bson.M{"$cond": bson.A{
					bson.M{"$lt": bson.A{"$" + fieldBrandRank, 0}},
					unrankedBucket,
					bson.M{"$floor": bson.M{"$divide": bson.A{"$" + fieldBrandRank, brandBucketSize}}},
				}},
			}}},
			{{Key: "$sort", Value: bson.D{
				{Key: fieldBrandBucket, Value: 1},
				{Key: "scraped_at", Value: -1},
				{Key: "_id", Value: 1},
			}}},
		},
		Project: bson.M{fieldBrandRank: 0, fieldBrandBucket: 0},
	}
}

// BuildCuratedPlan matches visible products of one curated brand keyword
// (substring, case-insensitive).
func BuildCuratedPlan(brandKeyword string, excludedKeywords []string) Plan {
	conds := []bson.M{
		VisibleFilter(),
		{"brand_name": primitive.Regex{Pattern: regexp.QuoteMeta(brandKeyword), Options: "i"}},
	}
	if excl := excludeKeywords(excludedKeywords); excl != nil {
		conds = append(conds, excl)
	}
	return Plan{Filter: andAll(conds)}
}

// criteriaConditions assembles the shared predicate list: image visibility,
// facet slugs, gender, and price range.
func criteriaConditions(c models.FilterCriteria) []bson.M {
	conds := []bson.M{VisibleFilter()}

	if len(c.Categories) > 0 {
		conds = append(conds, slugAnyField([]string{"product_category"}, c.Categories))
	}
	if len(c.Brands) > 0 {
		conds = append(conds, slugAnyField([]string{"brand_name"}, c.Brands))
	}
	if len(c.Occasions) > 0 {
		// Occasion still lives under a legacy key in older scrapes.
		conds = append(conds, slugAnyField([]string{"product_occasion", "occasion"}, c.Occasions))
	}
	if g := genderFilter(c.Gender); g != nil {
		conds = append(conds, g)
	}
	if pr := priceFilter(c.PriceMin, c.PriceMax); pr != nil {
		conds = append(conds, pr)
	}
	return conds
}

// SlugPattern expands a request slug back into a case-insensitive pattern
// over the stored human-readable value: each hyphen matches any run of
// space, hyphen, ampersand, or apostrophe. Single-letter tokens come from
// slugified possessives ("Men's" becomes "men-s") and are optional, so
// "men-s-shoes" matches "Men's Shoes", "Men & Shoes", and "Men - Shoes".
func SlugPattern(slug string) string {
	const sep = `['&\s-]+`

	var b strings.Builder
	b.WriteString("^")
	first := true
	for _, p := range strings.Split(strings.ToLower(strings.TrimSpace(slug)), "-") {
		if p == "" {
			continue
		}
		quoted := regexp.QuoteMeta(p)
		switch {
		case first:
			b.WriteString(quoted)
			first = false
		case len(p) == 1:
			b.WriteString("(?:" + sep + quoted + ")?")
		default:
			b.WriteString(sep + quoted)
		}
	}
	b.WriteString("$")
	return b.String()
}

// Slugify is the inverse direction, used when facet values are handed out
// to the filter UI: lower-case with every non-alphanumeric run collapsed to
// a single hyphen.
func Slugify(value string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(value) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// slugAnyField ORs slug patterns across the given values and field aliases.
func slugAnyField(fields, slugs []string) bson.M {
	var or []bson.M
	for _, slug := range slugs {
		re := primitive.Regex{Pattern: SlugPattern(slug), Options: "i"}
		for _, f := range fields {
			or = append(or, bson.M{f: re})
		}
	}
	if len(or) == 1 {
		return or[0]
	}
	return bson.M{"$or": or}
}

// exactAnyField ORs case-insensitive exact matches across values and fields.
func exactAnyField(fields, values []string) bson.M {
	var or []bson.M
	for _, v := range values {
		re := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(v) + "$", Options: "i"}
		for _, f := range fields {
			or = append(or, bson.M{f: re})
		}
	}
	if len(or) == 1 {
		return or[0]
	}
	return bson.M{"$or": or}
}

// genderFilter matches the requested gender token case-insensitively.
// Binary gender requests also include unisex and unknown stock, so a "men"
// page carries unisex accessories too.
func genderFilter(gender string) bson.M {
	g := strings.TrimSpace(strings.ToLower(gender))
	if g == "" {
		return nil
	}

	pattern := "^" + regexp.QuoteMeta(g) + "$"
	switch g {
	case "men", "women", "male", "female":
		pattern = "^(?:" + regexp.QuoteMeta(g) + "|unisex|unknown)$"
	}
	return bson.M{"product_gender": primitive.Regex{Pattern: pattern, Options: "i"}}
}

// priceFilter bounds the price actually paid. Both bounds inclusive, either
// optional.
func priceFilter(min, max *float64) bson.M {
	if min == nil && max == nil {
		return nil
	}
	bounds := bson.M{}
	if min != nil {
		bounds["$gte"] = *min
	}
	if max != nil {
		bounds["$lte"] = *max
	}
	return bson.M{"sale_price": bounds}
}

// excludeKeywords removes products whose name contains a blocked
// merchandising keyword.
func excludeKeywords(keywords []string) bson.M {
	if len(keywords) == 0 {
		return nil
	}
	var nor []bson.M
	for _, k := range keywords {
		nor = append(nor, bson.M{
			"product_name": primitive.Regex{Pattern: regexp.QuoteMeta(k), Options: "i"},
		})
	}
	return bson.M{"$nor": nor}
}

// sortSpec maps a requested sort key to either a stored-field sort or the
// aggregation stages for a computed one. Unrecognized keys and "featured"
// keep natural storage order. Every explicit sort gets an _id tie-break so
// pages stay stable across calls.
func sortSpec(key string) (bson.D, mongo.Pipeline, bson.M) {
	switch key {
	case "price-asc":
		return bson.D{
			{Key: "sale_price", Value: 1},
			{Key: "original_price", Value: 1},
			{Key: "_id", Value: 1},
		}, nil, nil
	case "price-desc":
		return bson.D{
			{Key: "sale_price", Value: -1},
			{Key: "original_price", Value: -1},
			{Key: "_id", Value: 1},
		}, nil, nil
	case "name-asc":
		return bson.D{{Key: "product_name", Value: 1}, {Key: "_id", Value: 1}}, nil, nil
	case "name-desc":
		return bson.D{{Key: "product_name", Value: -1}, {Key: "_id", Value: 1}}, nil, nil
	case "newest":
		return bson.D{{Key: "scraped_at", Value: -1}, {Key: "_id", Value: 1}}, nil, nil
	case "discount-desc":
		stages := mongo.Pipeline{
			{{Key: "$addFields", Value: bson.M{fieldDiscountPct: discountPctExpr()}}},
			{{Key: "$sort", Value: bson.D{
				{Key: fieldDiscountPct, Value: -1},
				{Key: "_id", Value: 1},
			}}},
		}
		return nil, stages, bson.M{fieldDiscountPct: 0}
	default:
		// "featured" and unknown keys: natural storage order.
		return nil, nil, nil
	}
}

// discountPctExpr computes (original − sale) / original × 100 server-side,
// parking records without numeric dual pricing at the bottom.
func discountPctExpr() bson.M {
	return bson.M{"$cond": bson.A{
		bson.M{"$and": bson.A{
			bson.M{"$isNumber": "$original_price"},
			bson.M{"$isNumber": "$sale_price"},
			bson.M{"$gt": bson.A{"$original_price", 0}},
		}},
		bson.M{"$multiply": bson.A{
			bson.M{"$divide": bson.A{
				bson.M{"$subtract": bson.A{"$original_price", "$sale_price"}},
				"$original_price",
			}},
			100,
		}},
		-1,
	}}
}

// searchStage is the fuzzy full-text entry stage. Relies on the store's
// search index; any error here is the executor's cue to fall back to the
// regex plan.
func searchStage(query string) bson.D {
	return bson.D{{Key: "$search", Value: bson.D{
		{Key: "index", Value: "default"},
		{Key: "text", Value: bson.D{
			{Key: "query", Value: query},
			{Key: "path", Value: bson.D{{Key: "wildcard", Value: "*"}}},
			{Key: "fuzzy", Value: bson.D{{Key: "maxEdits", Value: 2}}},
		}},
	}}}
}

func andAll(conds []bson.M) bson.M {
	switch len(conds) {
	case 0:
		return bson.M{}
	case 1:
		return conds[0]
	default:
		return bson.M{"$and": conds}
	}
}
