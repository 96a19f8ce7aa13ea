package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/gin-gonic/gin"
)

// GetTopDeals godoc
// @Summary Top deals
// @Description The biggest absolute markdowns across all brands.
// @Tags Storefront - Products
// @Produce json
// @Param limit query int false "Number of deals" default(4)
// @Success 200 {object} models.ApiResponse "Top deals fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/top-deals [get]
func GetTopDeals(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "4"), 10, 64)
	if limit < 1 || limit > 100 {
		limit = 4
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	total, products, err := svc.TopDeals(ctx, limit)
	if err != nil {
		log.Printf("ERROR in GetTopDeals: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Top deals fetched successfully", products, limit, 0, total))
}
