package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage is a contact-form submission persisted to the messages
// collection.
type ContactMessage struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Message   string             `json:"message" bson:"message"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}

type ContactRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
