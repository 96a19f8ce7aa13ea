package user_controller

import (
	"log"
	"net/http"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/middleware"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// AddToBag godoc
// @Summary Add a product to the bag
// @Tags Storefront - Users
// @Produce json
// @Param key query string true "Product link key"
// @Success 200 {object} models.ApiResponse
// @Router /user/bag [post]
func AddToBag(c *gin.Context) {
	updateBag(c, "$addToSet", "Added to bag")
}

// RemoveFromBag godoc
// @Summary Remove a product from the bag
// @Tags Storefront - Users
// @Produce json
// @Param key query string true "Product link key"
// @Success 200 {object} models.ApiResponse
// @Router /user/bag [delete]
func RemoveFromBag(c *gin.Context) {
	updateBag(c, "$pull", "Removed from bag")
}

type syncBagRequest struct {
	Bag []string `json:"bag" binding:"required"`
}

// SyncBag godoc
// @Summary Replace the entire bag
// @Description Used after a guest session is merged into an account.
// @Tags Storefront - Users
// @Accept json
// @Produce json
// @Param request body syncBagRequest true "Full bag contents"
// @Success 200 {object} models.ApiResponse
// @Router /user/bag [put]
func SyncBag(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req syncBagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Request body must contain a 'bag' array"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	_, err := config.UsersCollection.UpdateOne(ctx, userIDFilter(userID),
		bson.M{"$set": bson.M{"bag": req.Bag}})
	if err != nil {
		log.Printf("ERROR in SyncBag: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to sync bag"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Bag synced", gin.H{"bag": req.Bag}))
}

// GetBag godoc
// @Summary Get bag contents
// @Description Returns the user's bag hydrated into full product records, in bag order.
// @Tags Storefront - Users
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /user/bag [get]
func GetBag(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, err := getUserByID(ctx, userID)
	if err != nil {
		log.Printf("ERROR in GetBag: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch bag"))
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}

	products, err := catalogSvc.GetByLinks(ctx, user.Bag)
	if err != nil {
		log.Printf("ERROR in GetBag: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch bag"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Bag fetched", products))
}

func updateBag(c *gin.Context, op, message string) {
	userID, _ := middleware.GetUserIDFromContext(c)

	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Query parameter 'key' is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	_, err := config.UsersCollection.UpdateOne(ctx, userIDFilter(userID),
		bson.M{op: bson.M{"bag": key}})
	if err != nil {
		log.Printf("ERROR updating bag: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update bag"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, nil))
}
