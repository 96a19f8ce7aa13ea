package catalog

import (
	"testing"

	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func rawFixture() models.RawProduct {
	return models.RawProduct{
		"_id":            primitive.NewObjectID(),
		"product_link":   "https://shop.example.com/p/aurora-runner",
		"product_image":  "https://cdn.example.com/img/aurora-runner.jpg",
		"brand_name":     "nike",
		"product_name":   "aurora runner low-top sneaker",
		"original_price": "100",
		"sale_price":     "60",
	}
}

func TestTransformDualPricePredicate(t *testing.T) {
	t.Run("valid markdown passes", func(t *testing.T) {
		p := Transform(rawFixture())
		require.NotNil(t, p)
		assert.Equal(t, 100.0, *p.OriginalPrice)
		assert.Equal(t, 60.0, *p.SalePrice)
	})

	t.Run("equal prices excluded", func(t *testing.T) {
		raw := rawFixture()
		raw["sale_price"] = "100"
		assert.Nil(t, Transform(raw))
	})

	t.Run("equal after formatting differences", func(t *testing.T) {
		raw := rawFixture()
		raw["original_price"] = "100"
		raw["sale_price"] = "100.00"
		assert.Nil(t, Transform(raw))
	})

	t.Run("missing sale price excluded", func(t *testing.T) {
		raw := rawFixture()
		delete(raw, "sale_price")
		assert.Nil(t, Transform(raw))
	})

	t.Run("unparseable original excluded", func(t *testing.T) {
		raw := rawFixture()
		raw["original_price"] = "call for price"
		assert.Nil(t, Transform(raw))
	})

	t.Run("legacy price keys resolve", func(t *testing.T) {
		raw := rawFixture()
		delete(raw, "original_price")
		delete(raw, "sale_price")
		raw["price_original"] = "$395.00"
		raw["price_final"] = "$236.99"
		p := Transform(raw)
		require.NotNil(t, p)
		assert.Equal(t, 395.0, *p.OriginalPrice)
		assert.Equal(t, 236.99, *p.SalePrice)
	})
}

func TestTransformDiscountValue(t *testing.T) {
	t.Run("computed from prices", func(t *testing.T) {
		p := Transform(rawFixture())
		require.NotNil(t, p)
		require.NotNil(t, p.DiscountValue)
		assert.InDelta(t, 40.0, *p.DiscountValue, 1e-9)
	})

	t.Run("stored value wins", func(t *testing.T) {
		raw := rawFixture()
		raw["discount_value"] = 55.01
		p := Transform(raw)
		require.NotNil(t, p)
		assert.InDelta(t, 55.01, *p.DiscountValue, 1e-9)
	})
}

func TestTransformCasing(t *testing.T) {
	raw := rawFixture()
	raw["product_category"] = "shoes"
	raw["product_sub_category"] = "low-top sneakers"
	raw["product_gender"] = "men"

	p := Transform(raw)
	require.NotNil(t, p)
	assert.Equal(t, "NIKE", *p.BrandName)
	assert.Equal(t, "SHOES", *p.ProductCategory)
	assert.Equal(t, "Low-Top Sneakers", *p.ProductSubCategory)
	assert.Equal(t, "Men", *p.ProductGender)
	assert.Equal(t, "Aurora Runner Low-Top Sneaker", *p.ProductName)
}

func TestTransformDefaults(t *testing.T) {
	p := Transform(rawFixture())
	require.NotNil(t, p)

	// Absent list fields come back as empty lists, not null.
	assert.Equal(t, []string{}, p.ProductColor)
	assert.Equal(t, []string{}, p.AvailableSizes)

	assert.Nil(t, p.ProductDescription)
	assert.Nil(t, p.Discount)
	assert.False(t, p.WishlistState)
}

func TestTransformListFields(t *testing.T) {
	raw := rawFixture()
	raw["color"] = primitive.A{" Red ", "blue"}
	raw["available_sizes"] = "7, 8, see all sizes, 9"

	p := Transform(raw)
	require.NotNil(t, p)
	assert.Equal(t, []string{"Red", "blue"}, p.ProductColor)
	assert.Equal(t, []string{"7", "8", "9"}, p.AvailableSizes)
}

func TestTransformSearchTags(t *testing.T) {
	raw := rawFixture()
	raw["search_tags"] = primitive.A{"running", "mesh"}

	p := Transform(raw)
	require.NotNil(t, p)
	require.NotNil(t, p.SearchTags)
	assert.Equal(t, "running, mesh", *p.SearchTags)
}

func TestTransformDocumentID(t *testing.T) {
	t.Run("object id", func(t *testing.T) {
		oid := primitive.NewObjectID()
		raw := rawFixture()
		raw["_id"] = oid
		p := Transform(raw)
		require.NotNil(t, p)
		assert.Equal(t, oid.Hex(), p.ID)
	})

	t.Run("plain id fallback", func(t *testing.T) {
		raw := rawFixture()
		delete(raw, "_id")
		raw["id"] = "legacy-42"
		p := Transform(raw)
		require.NotNil(t, p)
		assert.Equal(t, "legacy-42", p.ID)
	})
}
