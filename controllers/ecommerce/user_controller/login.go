package user_controller

import (
	"log"
	"net/http"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/halfsy-shop/halfsy-backend/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Login godoc
// @Summary Login with email and password
// @Tags Storefront - Users
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Router /users/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, err := getUserByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("ERROR in Login: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	// Uniform message regardless of which check failed, so the endpoint
	// does not leak which emails exist.
	if user == nil || user.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Name)
	if err != nil {
		log.Printf("ERROR in Login: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", models.AuthResponse{
		Token: token,
		User:  *user,
	}))
}
