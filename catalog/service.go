package catalog

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MetadataCache caches the computed filter metadata between requests. A nil
// cache disables caching.
type MetadataCache interface {
	Get(ctx context.Context) (*models.FilterMetadata, bool)
	Set(ctx context.Context, meta *models.FilterMetadata)
}

// Service orchestrates the per-endpoint pipelines: build plan, execute,
// transform, drop excluded records. It owns no process-global state; the
// store handle and merchandising lists are injected at construction.
type Service struct {
	store Store
	merch config.Merchandising
	cache MetadataCache

	// newRand supplies a fresh source per request for the intentionally
	// non-deterministic orderings (curated, price-bucket shuffle).
	newRand func() *rand.Rand
}

func NewService(store Store, merch config.Merchandising, cache MetadataCache) *Service {
	return &Service{
		store: store,
		merch: merch,
		cache: cache,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// List returns the generic storefront listing. Within each fixed price
// bucket the page order is shuffled fresh on every call, so the landing
// grid rotates; callers must not expect cursor-stable pagination here.
func (s *Service) List(ctx context.Context, limit, skip int64) (int64, []models.Product, error) {
	plan := BuildListingPlan(models.FilterCriteria{})
	total, page, err := Execute(ctx, s.store, plan, skip, limit)
	if err != nil {
		return 0, nil, err
	}

	products := transformAll(page)
	s.shuffleWithinPriceBuckets(products)
	return total, products, nil
}

// Filter runs the full criteria set: facets, gender, price range, and sort.
func (s *Service) Filter(ctx context.Context, c models.FilterCriteria) (int64, []models.Product, error) {
	plan := BuildListingPlan(c)
	total, page, err := Execute(ctx, s.store, plan, c.Skip, c.Limit)
	if err != nil {
		return 0, nil, err
	}
	return total, transformAll(page), nil
}

// Search runs the fuzzy full-text plan and falls back to the regex plan
// when the search backend is unavailable. The caller only ever sees a
// result set; a failed search index is not an error, just unscored results.
func (s *Service) Search(ctx context.Context, c models.FilterCriteria) (int64, []models.Product, error) {
	if strings.TrimSpace(c.Query) == "" {
		return 0, nil, ErrEmptyQuery
	}

	primary, fallback := BuildSearchPlans(c)

	total, page, err := Execute(ctx, s.store, primary, c.Skip, c.Limit)
	if err != nil {
		log.Printf("⚠️  full-text search unavailable, using regex fallback: %v", err)
		total, page, err = Execute(ctx, s.store, fallback, c.Skip, c.Limit)
		if err != nil {
			return 0, nil, err
		}
	}
	return total, transformAll(page), nil
}

// TopDeals returns the biggest absolute markdowns across all brands.
func (s *Service) TopDeals(ctx context.Context, limit int64) (int64, []models.Product, error) {
	plan := BuildDealsPlan(nil, s.merch.ExcludedKeywords)
	total, page, err := Execute(ctx, s.store, plan, 0, limit)
	if err != nil {
		return 0, nil, err
	}
	return total, transformAll(page), nil
}

// BestDeals is TopDeals restricted to the merchandising allow-list.
func (s *Service) BestDeals(ctx context.Context, limit, skip int64) (int64, []models.Product, error) {
	plan := BuildDealsPlan(s.merch.DealBrands, s.merch.ExcludedKeywords)
	total, page, err := Execute(ctx, s.store, plan, skip, limit)
	if err != nil {
		return 0, nil, err
	}
	return total, transformAll(page), nil
}

// Latest orders by scrape recency.
func (s *Service) Latest(ctx context.Context, limit, skip int64) (int64, []models.Product, error) {
	plan := BuildListingPlan(models.FilterCriteria{SortBy: "newest"})
	total, page, err := Execute(ctx, s.store, plan, skip, limit)
	if err != nil {
		return 0, nil, err
	}
	return total, transformAll(page), nil
}

// CustomSort applies the merchandising brand-priority ordering.
func (s *Service) CustomSort(ctx context.Context, limit, skip int64) (int64, []models.Product, error) {
	plan := BuildBrandPriorityPlan(s.merch.BrandPriority, s.merch.ExcludedKeywords)
	total, page, err := Execute(ctx, s.store, plan, skip, limit)
	if err != nil {
		return 0, nil, err
	}
	return total, transformAll(page), nil
}

// GetByID looks a product up by its store identifier. The image-visibility
// filter does not apply here, but the dual-pricing predicate still does: a
// record the transformer excludes is not found as far as customers are
// concerned.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Product, error) {
	filter := bson.M{"id": id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		filter = bson.M{"_id": oid}
	}

	raw, err := s.store.FindOne(ctx, filter)
	if err != nil {
		return nil, err
	}

	p := Transform(raw)
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// GetByLinks is an order-preserving batch lookup keyed by the natural
// product_link key, used to hydrate favourites and bags. Links without a
// visible (dual-priced) product are silently skipped.
func (s *Service) GetByLinks(ctx context.Context, links []string) ([]models.Product, error) {
	if len(links) == 0 {
		return []models.Product{}, nil
	}

	page, err := s.store.Find(ctx, bson.M{"product_link": bson.M{"$in": links}}, nil, 0, 0)
	if err != nil {
		return nil, err
	}

	byLink := make(map[string]models.Product, len(page))
	for _, raw := range page {
		p := Transform(raw)
		if p == nil || p.ProductLink == nil {
			continue
		}
		if _, dup := byLink[*p.ProductLink]; !dup {
			byLink[*p.ProductLink] = *p
		}
	}

	out := make([]models.Product, 0, len(links))
	for _, link := range links {
		if p, ok := byLink[link]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetCurated unions the matches of every curated brand keyword, dedupes by
// id, and shuffles with a fresh seed, so each visit gets a different spread
// of the same brands.
func (s *Service) GetCurated(ctx context.Context, limit int64) (int64, []models.Product, error) {
	seen := make(map[string]struct{})
	products := make([]models.Product, 0)

	for _, keyword := range s.merch.CuratedBrands {
		plan := BuildCuratedPlan(keyword, s.merch.ExcludedKeywords)
		_, page, err := Execute(ctx, s.store, plan, 0, 0)
		if err != nil {
			return 0, nil, err
		}
		for _, raw := range page {
			p := Transform(raw)
			if p == nil {
				continue
			}
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			products = append(products, *p)
		}
	}

	rng := s.newRand()
	rng.Shuffle(len(products), func(i, j int) {
		products[i], products[j] = products[j], products[i]
	})

	total := int64(len(products))
	if limit > 0 && int64(len(products)) > limit {
		products = products[:limit]
	}
	return total, products, nil
}

// FilterMetadata aggregates live facet counts for category, brand, and
// occasion plus the fixed price buckets and sort options. Cached between
// requests when a cache is configured.
func (s *Service) FilterMetadata(ctx context.Context) (*models.FilterMetadata, error) {
	if s.cache != nil {
		if meta, ok := s.cache.Get(ctx); ok {
			return meta, nil
		}
	}

	categories, err := s.facetGroup(ctx, models.FilterTitleCategory, "$product_category")
	if err != nil {
		return nil, err
	}
	brands, err := s.facetGroup(ctx, models.FilterTitleBrand, "$brand_name")
	if err != nil {
		return nil, err
	}
	occasions, err := s.facetGroup(ctx, models.FilterTitleOccasion,
		bson.M{"$ifNull": bson.A{"$product_occasion", "$occasion"}})
	if err != nil {
		return nil, err
	}

	meta := &models.FilterMetadata{
		Categories:  []models.FilterGroup{categories, brands, occasions},
		PriceRanges: models.PriceRanges,
		SortOptions: models.SortOptions,
	}

	if s.cache != nil {
		s.cache.Set(ctx, meta)
	}
	return meta, nil
}

// facetGroup counts visible documents per distinct value of one facet field.
func (s *Service) facetGroup(ctx context.Context, title string, fieldExpr any) (models.FilterGroup, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: VisibleFilter()}},
		{{Key: "$group", Value: bson.M{
			"_id":   fieldExpr,
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}

	rows, err := s.store.Aggregate(ctx, pipeline)
	if err != nil {
		return models.FilterGroup{}, err
	}

	options := make([]models.FilterOption, 0, len(rows))
	for _, row := range rows {
		label, ok := row["_id"].(string)
		if !ok || strings.TrimSpace(label) == "" {
			continue
		}
		count, _ := ParseCurrencyAmount(row["count"])
		options = append(options, models.FilterOption{
			Label: label,
			Value: Slugify(label),
			Count: int(count),
		})
	}

	return models.FilterGroup{Title: title, Options: options, MultiSelect: true}, nil
}

// shuffleWithinPriceBuckets reorders a page so products stay grouped by the
// fixed price buckets (cheapest bucket first) but rotate within each bucket.
func (s *Service) shuffleWithinPriceBuckets(products []models.Product) {
	buckets := make([][]models.Product, len(models.PriceRanges)+1)
	for _, p := range products {
		i := priceBucketIndex(p.SalePrice)
		buckets[i] = append(buckets[i], p)
	}

	rng := s.newRand()
	pos := 0
	for _, bucket := range buckets {
		rng.Shuffle(len(bucket), func(i, j int) {
			bucket[i], bucket[j] = bucket[j], bucket[i]
		})
		for _, p := range bucket {
			products[pos] = p
			pos++
		}
	}
}

// priceBucketIndex places a sale price into the first matching fixed price
// range; records without one land in the trailing bucket.
func priceBucketIndex(sale *float64) int {
	if sale == nil {
		return len(models.PriceRanges)
	}
	for i, r := range models.PriceRanges {
		if r.Min != nil && *sale < *r.Min {
			continue
		}
		if r.Max != nil && *sale > *r.Max {
			continue
		}
		return i
	}
	return len(models.PriceRanges)
}

func transformAll(page []models.RawProduct) []models.Product {
	out := make([]models.Product, 0, len(page))
	for _, raw := range page {
		if p := Transform(raw); p != nil {
			out = append(out, *p)
		}
	}
	return out
}
