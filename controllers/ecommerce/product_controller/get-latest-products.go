package product_controller

import (
	"log"
	"net/http"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/gin-gonic/gin"
)

// GetLatestProducts godoc
// @Summary Latest products
// @Description Visible products ordered by scrape recency.
// @Tags Storefront - Products
// @Produce json
// @Param limit query int false "Items per page" default(20)
// @Param skip query int false "Zero-based offset" default(0)
// @Success 200 {object} models.ApiResponse "Latest products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/latest [get]
func GetLatestProducts(c *gin.Context) {
	limit, skip := parsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	total, products, err := svc.Latest(ctx, limit, skip)
	if err != nil {
		log.Printf("ERROR in GetLatestProducts: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Latest products fetched successfully", products, limit, skip, total))
}
