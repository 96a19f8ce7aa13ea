package product_controller

import (
	"log"
	"net/http"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/gin-gonic/gin"
)

// GetBestDeals godoc
// @Summary Best deals
// @Description The biggest markdowns within the merchandising brand allow-list, paginated.
// @Tags Storefront - Products
// @Produce json
// @Param limit query int false "Items per page" default(20)
// @Param skip query int false "Zero-based offset" default(0)
// @Success 200 {object} models.ApiResponse "Best deals fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/best-deals [get]
func GetBestDeals(c *gin.Context) {
	limit, skip := parsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	total, products, err := svc.BestDeals(ctx, limit, skip)
	if err != nil {
		log.Printf("ERROR in GetBestDeals: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Best deals fetched successfully", products, limit, skip, total))
}
