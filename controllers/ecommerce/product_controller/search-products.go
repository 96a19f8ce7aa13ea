package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/halfsy-shop/halfsy-backend/catalog"
	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/gin-gonic/gin"
)

// SearchProducts godoc
// @Summary Search storefront products
// @Description Fuzzy full-text search across all product text fields, combined with the standard filters. Falls back to substring matching when the search index is unavailable.
// @Tags Storefront - Products
// @Produce json
// @Param q query string true "Search query"
// @Param category query []string false "Category slugs (repeatable)"
// @Param brand query []string false "Brand slugs (repeatable)"
// @Param gender query string false "Gender"
// @Param price_min query number false "Minimum sale price (inclusive)"
// @Param price_max query number false "Maximum sale price (inclusive)"
// @Param limit query int false "Items per page" default(20)
// @Param skip query int false "Zero-based offset" default(0)
// @Success 200 {object} models.ApiResponse "Search results"
// @Failure 400 {object} models.ApiResponse "Missing search query"
// @Router /store/products/search [get]
func SearchProducts(c *gin.Context) {
	criteria := parseCriteria(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	total, products, err := svc.Search(ctx, criteria)
	if err != nil {
		if !errors.Is(err, catalog.ErrEmptyQuery) {
			log.Printf("ERROR in SearchProducts: %v", err)
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Search results", products, criteria.Limit, criteria.Skip, total))
}
