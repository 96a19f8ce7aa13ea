package product_controller

import (
	"log"
	"net/http"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/gin-gonic/gin"
)

// GetFeaturedProducts godoc
// @Summary Featured products
// @Description Listing ordered by the merchandising team's brand-priority ranking, freshest scrape first within each rank bucket.
// @Tags Storefront - Products
// @Produce json
// @Param limit query int false "Items per page" default(20)
// @Param skip query int false "Zero-based offset" default(0)
// @Success 200 {object} models.ApiResponse "Featured products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/featured [get]
func GetFeaturedProducts(c *gin.Context) {
	limit, skip := parsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	total, products, err := svc.CustomSort(ctx, limit, skip)
	if err != nil {
		log.Printf("ERROR in GetFeaturedProducts: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Featured products fetched successfully", products, limit, skip, total))
}
