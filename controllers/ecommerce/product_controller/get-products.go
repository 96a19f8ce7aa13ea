package product_controller

import (
	"log"
	"net/http"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary List storefront products
// @Description Retrieve the generic product listing. Order rotates within fixed price buckets on every call.
// @Tags Storefront - Products
// @Produce json
// @Param limit query int false "Items per page" default(20)
// @Param skip query int false "Zero-based offset" default(0)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	limit, skip := parsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	total, products, err := svc.List(ctx, limit, skip)
	if err != nil {
		log.Printf("ERROR in GetProducts: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products, limit, skip, total))
}
