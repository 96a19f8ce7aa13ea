package user_controller

import (
	"context"

	"github.com/halfsy-shop/halfsy-backend/catalog"
	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var catalogSvc *catalog.Service

// Init injects the catalog service used to hydrate favourites and bags.
func Init(s *catalog.Service) {
	catalogSvc = s
}

// userIDFilter matches a user document by id. Old exports carry string ids,
// so fall back to the raw value when it is not a valid ObjectID.
func userIDFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}

func getUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := config.UsersCollection.FindOne(ctx, userIDFilter(id)).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func getUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := config.UsersCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
