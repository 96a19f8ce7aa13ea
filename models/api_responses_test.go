package models

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/store/products", nil)
	return c
}

func TestPaginatedResponseHasMore(t *testing.T) {
	c := testContext(t)

	cases := []struct {
		name               string
		limit, skip, total int64
		hasMore            bool
	}{
		{"first page of many", 20, 0, 42, true},
		{"middle page", 20, 20, 42, true},
		{"last partial page", 20, 40, 42, false},
		{"exact fit", 20, 20, 40, false},
		{"empty result", 20, 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := PaginatedResponse(c, "ok", nil, tc.limit, tc.skip, tc.total)
			require.NotNil(t, resp.Meta)
			assert.Equal(t, tc.hasMore, resp.Meta.HasMore)
			assert.Equal(t, tc.total, resp.Meta.Total)
		})
	}
}

func TestErrorResponse(t *testing.T) {
	c := testContext(t)
	resp := ErrorResponse(c, "boom")
	assert.True(t, resp.Error)
	assert.Equal(t, "boom", resp.Message)
}

func TestRateLimitEcho(t *testing.T) {
	c := testContext(t)
	rl := &RateLimiter{Limit: 300, Remaining: 299}
	c.Set("rateLimiter", rl)

	resp := SuccessResponse(c, "ok", nil)
	require.NotNil(t, resp.Rate)
	assert.Equal(t, 299, resp.Rate.Remaining)
}
