package product_controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/halfsy-shop/halfsy-backend/catalog"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/gin-gonic/gin"
)

var svc *catalog.Service

// Init injects the catalog service. Called once from main before the routes
// are registered.
func Init(s *catalog.Service) {
	svc = s
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (limit, skip int64) {
	limit, _ = strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	skip, _ = strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)

	if limit < 1 || limit > 100 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}
	return limit, skip
}

// parseCriteria decodes the repeatable facet params plus gender, price
// bounds, free-text query, and sort key into one FilterCriteria.
func parseCriteria(c *gin.Context) models.FilterCriteria {
	limit, skip := parsePagination(c)

	criteria := models.FilterCriteria{
		Categories: c.QueryArray("category"),
		Brands:     c.QueryArray("brand"),
		Occasions:  c.QueryArray("occasion"),
		Gender:     c.Query("gender"),
		Query:      c.Query("q"),
		SortBy:     c.DefaultQuery("sort", "featured"),
		Limit:      limit,
		Skip:       skip,
	}

	if v := c.Query("price_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.PriceMin = &f
		}
	}
	if v := c.Query("price_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.PriceMax = &f
		}
	}

	return criteria
}

// respondServiceError maps catalog errors to client responses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
	case errors.Is(err, catalog.ErrEmptyQuery):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Search query is required"))
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
	}
}
