package catalog

import (
	"regexp"
	"testing"

	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func matchSlug(t *testing.T, slug, stored string) bool {
	t.Helper()
	re, err := regexp.Compile("(?i)" + SlugPattern(slug))
	require.NoError(t, err)
	return re.MatchString(stored)
}

func TestSlugPattern(t *testing.T) {
	assert.True(t, matchSlug(t, "men-s-shoes", "Men's Shoes"))
	assert.True(t, matchSlug(t, "men-s-shoes", "Men & Shoes"))
	assert.True(t, matchSlug(t, "men-s-shoes", "Men - Shoes"))
	assert.True(t, matchSlug(t, "men-s-shoes", "men s shoes"))
	assert.True(t, matchSlug(t, "tom-ford", "Tom Ford"))
	assert.True(t, matchSlug(t, "tom-ford", "TOM FORD"))

	// Possessive letters are optional, but only as whole separated tokens.
	assert.False(t, matchSlug(t, "men-s-shoes", "Mens Shoes"))

	// Anchored: no substring matches.
	assert.False(t, matchSlug(t, "shoes", "Men's Shoes"))
	assert.False(t, matchSlug(t, "men-s-shoes", "Women's Shoes"))

	// Doubled hyphens from hand-typed slugs collapse cleanly.
	assert.True(t, matchSlug(t, "tom--ford", "Tom Ford"))
}

func TestSlugifyRoundTrip(t *testing.T) {
	cases := map[string]string{
		"Men's Shoes": "men-s-shoes",
		"Tom Ford":    "tom-ford",
		"Bags & Accessories": "bags-accessories",
		"  Outdoor  ": "outdoor",
	}
	for label, want := range cases {
		got := Slugify(label)
		assert.Equal(t, want, got)
		// Every slug handed to the UI must match its own source value.
		assert.True(t, matchSlug(t, got, label))
	}
}

func TestVisibleFilter(t *testing.T) {
	f := VisibleFilter()
	img, ok := f["product_image"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, true, img["$exists"])
	assert.Equal(t, "string", img["$type"])
	assert.Equal(t, primitive.Regex{Pattern: "^http"}, img["$regex"])
}

func TestGenderFilter(t *testing.T) {
	t.Run("blank is no filter", func(t *testing.T) {
		assert.Nil(t, genderFilter(""))
		assert.Nil(t, genderFilter("   "))
	})

	matches := func(filter bson.M, stored string) bool {
		re := filter["product_gender"].(primitive.Regex)
		return regexp.MustCompile("(?i)" + re.Pattern).MatchString(stored)
	}

	t.Run("binary gender includes unisex and unknown", func(t *testing.T) {
		f := genderFilter("Men")
		require.NotNil(t, f)
		assert.True(t, matches(f, "men"))
		assert.True(t, matches(f, "Unisex"))
		assert.True(t, matches(f, "unknown"))
		assert.False(t, matches(f, "women"))
	})

	t.Run("non-binary token matches exactly", func(t *testing.T) {
		f := genderFilter("kids")
		require.NotNil(t, f)
		assert.True(t, matches(f, "Kids"))
		assert.False(t, matches(f, "unisex"))
	})
}

func TestPriceFilter(t *testing.T) {
	assert.Nil(t, priceFilter(nil, nil))

	min, max := 500.0, 1000.0
	f := priceFilter(&min, &max)
	require.NotNil(t, f)
	bounds := f["sale_price"].(bson.M)
	assert.Equal(t, 500.0, bounds["$gte"])
	assert.Equal(t, 1000.0, bounds["$lte"])

	f = priceFilter(nil, &max)
	bounds = f["sale_price"].(bson.M)
	_, hasMin := bounds["$gte"]
	assert.False(t, hasMin)
	assert.Equal(t, 1000.0, bounds["$lte"])
}

func TestSortSpec(t *testing.T) {
	t.Run("price asc with tie breaks", func(t *testing.T) {
		sort, stages, project := sortSpec("price-asc")
		assert.Nil(t, stages)
		assert.Nil(t, project)
		require.Len(t, sort, 3)
		assert.Equal(t, "sale_price", sort[0].Key)
		assert.Equal(t, 1, sort[0].Value)
		assert.Equal(t, "original_price", sort[1].Key)
		assert.Equal(t, "_id", sort[2].Key)
	})

	t.Run("every explicit sort ends on _id", func(t *testing.T) {
		for _, key := range []string{"price-asc", "price-desc", "name-asc", "name-desc", "newest"} {
			sort, _, _ := sortSpec(key)
			require.NotEmpty(t, sort, key)
			assert.Equal(t, "_id", sort[len(sort)-1].Key, key)
		}
	})

	t.Run("discount sort is computed", func(t *testing.T) {
		sort, stages, project := sortSpec("discount-desc")
		assert.Nil(t, sort)
		require.Len(t, stages, 2)
		assert.Equal(t, bson.M{fieldDiscountPct: 0}, project)
	})

	t.Run("featured and unknown keep natural order", func(t *testing.T) {
		for _, key := range []string{"featured", "", "bogus"} {
			sort, stages, project := sortSpec(key)
			assert.Nil(t, sort, key)
			assert.Nil(t, stages, key)
			assert.Nil(t, project, key)
		}
	})
}

func TestBuildListingPlan(t *testing.T) {
	t.Run("empty criteria still filter visibility", func(t *testing.T) {
		plan := BuildListingPlan(models.FilterCriteria{})
		assert.Equal(t, VisibleFilter(), plan.Filter)
		assert.False(t, plan.NeedsPipeline())
	})

	t.Run("criteria are ANDed", func(t *testing.T) {
		min := 100.0
		plan := BuildListingPlan(models.FilterCriteria{
			Categories: []string{"shoes"},
			Gender:     "women",
			PriceMin:   &min,
		})
		conds, ok := plan.Filter["$and"].([]bson.M)
		require.True(t, ok)
		assert.Len(t, conds, 4)
	})

	t.Run("discount sort makes it a pipeline plan", func(t *testing.T) {
		plan := BuildListingPlan(models.FilterCriteria{SortBy: "discount-desc"})
		assert.True(t, plan.NeedsPipeline())
	})
}

func TestBuildSearchPlans(t *testing.T) {
	primary, fallback := BuildSearchPlans(models.FilterCriteria{Query: "denim (slim)"})

	require.NotNil(t, primary.Search)
	assert.True(t, primary.NeedsPipeline())
	assert.Nil(t, fallback.Search)

	// Fallback ORs a literal substring regex over the text fields; regex
	// metacharacters in the query must be escaped.
	conds := fallback.Filter["$and"].([]bson.M)
	textMatch := conds[len(conds)-1]
	or := textMatch["$or"].([]bson.M)
	require.Len(t, or, 5)
	re := or[0]["product_name"].(primitive.Regex)
	assert.Equal(t, regexp.QuoteMeta("denim (slim)"), re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestBuildDealsPlan(t *testing.T) {
	plan := BuildDealsPlan([]string{"nike"}, []string{"gift card"})

	assert.True(t, plan.NeedsPipeline())
	require.Len(t, plan.Stages, 2)
	assert.Equal(t, bson.M{fieldDealAmount: 0}, plan.Project)

	sortStage := plan.Stages[1]
	assert.Equal(t, "$sort", sortStage[0].Key)
	sort := sortStage[0].Value.(bson.D)
	assert.Equal(t, fieldDealAmount, sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
	assert.Equal(t, "_id", sort[1].Key)
}

func TestBuildBrandPriorityPlan(t *testing.T) {
	plan := BuildBrandPriorityPlan([]string{"gucci", "prada"}, nil)

	assert.True(t, plan.NeedsPipeline())
	require.Len(t, plan.Stages, 3)
	assert.Equal(t, bson.M{fieldBrandRank: 0, fieldBrandBucket: 0}, plan.Project)

	// Rank lookup happens against upper-cased brand names.
	addRank := plan.Stages[0][0].Value.(bson.M)
	idx := addRank[fieldBrandRank].(bson.M)["$indexOfArray"].(bson.A)
	assert.Equal(t, []string{"GUCCI", "PRADA"}, idx[0])

	sort := plan.Stages[2][0].Value.(bson.D)
	assert.Equal(t, fieldBrandBucket, sort[0].Key)
	assert.Equal(t, 1, sort[0].Value)
	assert.Equal(t, "scraped_at", sort[1].Key)
	assert.Equal(t, -1, sort[1].Value)
	assert.Equal(t, "_id", sort[2].Key)
}

func TestExcludeKeywords(t *testing.T) {
	assert.Nil(t, excludeKeywords(nil))

	f := excludeKeywords([]string{"gift card", "sample"})
	nor := f["$nor"].([]bson.M)
	require.Len(t, nor, 2)
	re := nor[0]["product_name"].(primitive.Regex)
	assert.Equal(t, "gift card", re.Pattern)
	assert.Equal(t, "i", re.Options)
}
