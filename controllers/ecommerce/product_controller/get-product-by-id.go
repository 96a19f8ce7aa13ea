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

// GetProductByID godoc
// @Summary Get a single product
// @Description Look a product up by its store identifier. Records without valid dual pricing are reported as not found.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := svc.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			log.Printf("ERROR in GetProductByID: %v", err)
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
