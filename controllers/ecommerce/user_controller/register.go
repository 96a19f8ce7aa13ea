package user_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/halfsy-shop/halfsy-backend/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Register godoc
// @Summary Register with email and password
// @Tags Storefront - Users
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Email already registered"
// @Router /users/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name, email, and a password of at least 8 characters are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	existing, err := getUserByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("ERROR in Register: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register"))
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "User with this email already exists"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("ERROR in Register: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register"))
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		Favourites:   []string{},
		Bag:          []string{},
	}

	if _, err := config.UsersCollection.InsertOne(ctx, user); err != nil {
		log.Printf("ERROR in Register: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register"))
		return
	}

	created, err := getUserByEmail(ctx, req.Email)
	if err != nil || created == nil {
		log.Printf("ERROR in Register: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register"))
		return
	}

	token, err := utils.GenerateJWT(created.ID.Hex(), created.Email, created.Name)
	if err != nil {
		log.Printf("ERROR in Register: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Registered successfully", models.AuthResponse{
		Token: token,
		User:  *created,
	}))
}
