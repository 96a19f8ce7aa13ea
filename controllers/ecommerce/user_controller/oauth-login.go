package user_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/halfsy-shop/halfsy-backend/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OAuthLogin godoc
// @Summary Login or register via Google profile
// @Description Upserts the account keyed by google_id: existing accounts get their name and avatar refreshed, new ones are created with empty favourites and bag.
// @Tags Storefront - Users
// @Accept json
// @Produce json
// @Param request body models.OAuthLoginRequest true "Verified Google profile"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Missing google_id"
// @Router /users/oauth-login [post]
func OAuthLogin(c *gin.Context) {
	var req models.OAuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "google_id is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	filter := bson.M{"google_id": req.GoogleID}
	update := bson.M{
		"$set": bson.M{
			"name":   req.Name,
			"email":  req.Email,
			"avatar": req.Avatar,
		},
		"$setOnInsert": bson.M{
			"google_id":  req.GoogleID,
			"created_at": time.Now().UTC(),
			"favourites": []string{},
			"bag":        []string{},
		},
	}

	var user models.User
	err := config.UsersCollection.FindOneAndUpdate(
		ctx, filter, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		log.Printf("ERROR in OAuthLogin: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Name)
	if err != nil {
		log.Printf("ERROR in OAuthLogin: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", models.AuthResponse{
		Token: token,
		User:  user,
	}))
}
