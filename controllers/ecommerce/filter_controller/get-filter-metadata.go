package filter_controller

import (
	"log"
	"net/http"

	"github.com/halfsy-shop/halfsy-backend/catalog"
	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/gin-gonic/gin"
)

var svc *catalog.Service

// Init injects the catalog service.
func Init(s *catalog.Service) {
	svc = s
}

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns live facet counts for category, brand, and occasion plus the fixed price buckets and sort options.
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	metadata, err := svc.FilterMetadata(ctx)
	if err != nil {
		log.Printf("ERROR in GetFilterMetadata: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
