package ecommerce_routes

import (
	store_filter "github.com/halfsy-shop/halfsy-backend/controllers/ecommerce/filter_controller"
	store_product "github.com/halfsy-shop/halfsy-backend/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", store_product.GetProducts)
		products.GET("/filter", store_product.FilterProducts)
		products.GET("/search", store_product.SearchProducts)
		products.GET("/top-deals", store_product.GetTopDeals)
		products.GET("/best-deals", store_product.GetBestDeals)
		products.GET("/latest", store_product.GetLatestProducts)
		products.GET("/featured", store_product.GetFeaturedProducts)
		products.GET("/curated", store_product.GetCuratedProducts)
		products.POST("/by-links", store_product.GetProductsByLinks)

		// Registered last so the fixed paths above win.
		products.GET("/:id", store_product.GetProductByID)
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)
}
