package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a storefront account. Password hash is set only for email/password
// accounts; google_id only for OAuth accounts. Favourites and bag hold
// product_link keys.
type User struct {
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password_hash,omitempty"`

	GoogleID string `json:"google_id,omitempty" bson:"google_id,omitempty"`
	Avatar   string `json:"avatar,omitempty" bson:"avatar,omitempty"`

	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	Favourites []string  `json:"favourites" bson:"favourites"`
	Bag        []string  `json:"bag" bson:"bag"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OAuthLoginRequest is the already-verified profile the frontend posts after
// a Google sign-in.
type OAuthLoginRequest struct {
	GoogleID string `json:"google_id" binding:"required"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
