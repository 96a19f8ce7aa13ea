package product_controller

import (
	"log"
	"net/http"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/gin-gonic/gin"
)

// FilterProducts godoc
// @Summary Filter storefront products
// @Description Filter by category, brand, occasion (repeatable slugs), gender, price range, with optional sorting.
// @Tags Storefront - Products
// @Produce json
// @Param category query []string false "Category slugs (repeatable)"
// @Param brand query []string false "Brand slugs (repeatable)"
// @Param occasion query []string false "Occasion slugs (repeatable)"
// @Param gender query string false "Gender"
// @Param price_min query number false "Minimum sale price (inclusive)"
// @Param price_max query number false "Maximum sale price (inclusive)"
// @Param sort query string false "Sort key (featured, price-asc, price-desc, discount-desc, newest, name-asc, name-desc)" default(featured)
// @Param limit query int false "Items per page" default(20)
// @Param skip query int false "Zero-based offset" default(0)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/filter [get]
func FilterProducts(c *gin.Context) {
	criteria := parseCriteria(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	total, products, err := svc.Filter(ctx, criteria)
	if err != nil {
		log.Printf("ERROR in FilterProducts: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products, criteria.Limit, criteria.Skip, total))
}
