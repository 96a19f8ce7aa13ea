package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

type ApiResponse struct {
	Message         string       `json:"message"`
	Data            any          `json:"data,omitempty"`
	Error           bool         `json:"error,omitempty"`
	Meta            *Pagination  `json:"meta,omitempty"`
	Rate            *RateLimiter `json:"rate_limit,omitempty"`
	RequestedEntity string       `json:"requested_entity,omitempty"`
}

// Pagination uses skip/limit semantics to match the store's paging. HasMore
// is always (skip + limit) < total, where total is the true filtered count.
type Pagination struct {
	Limit   int64 `json:"limit" example:"20"`
	Skip    int64 `json:"skip" example:"0"`
	Total   int64 `json:"total" example:"42"`
	HasMore bool  `json:"has_more" example:"true"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Rate:            getRateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

func PaginatedResponse(c *gin.Context, message string, data any, limit, skip, total int64) ApiResponse {
	return ApiResponse{
		Message: message,
		Data:    data,
		Meta: &Pagination{
			Limit:   limit,
			Skip:    skip,
			Total:   total,
			HasMore: (skip + limit) < total,
		},
		Rate:            getRateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		Rate:            getRateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}
