package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCuratedProducts godoc
// @Summary Curated products
// @Description Union of the curated brand keywords, deduplicated, in a fresh random order per request.
// @Tags Storefront - Products
// @Produce json
// @Param limit query int false "Number of products" default(20)
// @Success 200 {object} models.ApiResponse "Curated products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/curated [get]
func GetCuratedProducts(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	total, products, err := svc.GetCurated(ctx, limit)
	if err != nil {
		log.Printf("ERROR in GetCuratedProducts: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Curated products fetched successfully", products, limit, 0, total))
}
