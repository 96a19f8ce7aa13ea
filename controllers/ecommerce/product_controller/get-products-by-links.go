package product_controller

import (
	"log"
	"net/http"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/gin-gonic/gin"
)

type byLinksRequest struct {
	Links []string `json:"links" binding:"required"`
}

// GetProductsByLinks godoc
// @Summary Batch lookup by product link
// @Description Order-preserving batch lookup keyed by product_link, used to hydrate favourites and bags.
// @Tags Storefront - Products
// @Accept json
// @Produce json
// @Param request body byLinksRequest true "Product links"
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Router /store/products/by-links [post]
func GetProductsByLinks(c *gin.Context) {
	var req byLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Request body must contain a 'links' array"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := svc.GetByLinks(ctx, req.Links)
	if err != nil {
		log.Printf("ERROR in GetProductsByLinks: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
}
