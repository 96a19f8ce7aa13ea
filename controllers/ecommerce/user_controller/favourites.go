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

// Favourites and bags are keyed by product_link, the natural key that
// survives rescrapes, rather than by store ids that change on every import.

// AddFavourite godoc
// @Summary Add a product to favourites
// @Tags Storefront - Users
// @Produce json
// @Param key query string true "Product link key"
// @Success 200 {object} models.ApiResponse
// @Router /user/favourites [post]
func AddFavourite(c *gin.Context) {
	updateFavourites(c, "$addToSet", "Added to favourites")
}

// RemoveFavourite godoc
// @Summary Remove a product from favourites
// @Tags Storefront - Users
// @Produce json
// @Param key query string true "Product link key"
// @Success 200 {object} models.ApiResponse
// @Router /user/favourites [delete]
func RemoveFavourite(c *gin.Context) {
	updateFavourites(c, "$pull", "Removed from favourites")
}

// GetFavourites godoc
// @Summary Get favourited products
// @Description Returns the user's favourites hydrated into full product records, preserving the order they were added in.
// @Tags Storefront - Users
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /user/favourites [get]
func GetFavourites(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, err := getUserByID(ctx, userID)
	if err != nil {
		log.Printf("ERROR in GetFavourites: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch favourites"))
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}

	products, err := catalogSvc.GetByLinks(ctx, user.Favourites)
	if err != nil {
		log.Printf("ERROR in GetFavourites: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch favourites"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favourites fetched", products))
}

func updateFavourites(c *gin.Context, op, message string) {
	userID, _ := middleware.GetUserIDFromContext(c)
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Query parameter 'key' is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	_, err := config.UsersCollection.UpdateOne(ctx, userIDFilter(userID),
		bson.M{op: bson.M{"favourites": key}})
	if err != nil {
		log.Printf("ERROR updating favourites: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update favourites"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, nil))
}
