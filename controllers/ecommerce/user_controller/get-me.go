package user_controller

import (
	"log"
	"net/http"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/middleware"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMe godoc
// @Summary Get the authenticated user
// @Tags Storefront - Users
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.User}
// @Failure 404 {object} models.ApiResponse "User not found"
// @Router /user/me [get]
func GetMe(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, err := getUserByID(ctx, userID)
	if err != nil {
		log.Printf("ERROR in GetMe: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch user"))
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "User fetched", user))
}
