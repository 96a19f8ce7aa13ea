package ecommerce_routes

import (
	"github.com/halfsy-shop/halfsy-backend/controllers/ecommerce/contact_controller"
	"github.com/gin-gonic/gin"
)

// SetupContactRoutes wires the contact form endpoint.
func SetupContactRoutes(router *gin.RouterGroup) {
	router.POST("/contact", contact_controller.SubmitMessage)
}
