package contact_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/halfsy-shop/halfsy-backend/services"
	"github.com/gin-gonic/gin"
)

var mailer *services.ResendClient

// Init injects the notification mailer. A nil mailer disables notification
// emails but messages are still stored.
func Init(m *services.ResendClient) {
	mailer = m
}

// SubmitMessage godoc
// @Summary Submit a contact-form message
// @Description Persists the message and notifies the shop operator by email. Email delivery is best-effort; the submission succeeds either way.
// @Tags Storefront - Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact message"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid message"
// @Router /contact [post]
func SubmitMessage(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A valid email and a message are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	msg := models.ContactMessage{
		Email:     req.Email,
		Message:   req.Message,
		Timestamp: time.Now().UTC(),
	}

	if _, err := config.MessagesCollection.InsertOne(ctx, msg); err != nil {
		log.Printf("ERROR in SubmitMessage: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit message"))
		return
	}

	// Notify the operator without holding the request open.
	if mailer != nil {
		go func(email, message string) {
			if err := mailer.SendContactNotification(email, message); err != nil {
				log.Printf("⚠️  contact notification email failed: %v", err)
			}
		}(req.Email, req.Message)
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Message received", nil))
}
