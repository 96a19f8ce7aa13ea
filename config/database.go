package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	MongoClient *mongo.Client
	DB          *mongo.Database

	ProductsCollection *mongo.Collection
	UsersCollection    *mongo.Collection
	MessagesCollection *mongo.Collection
)

// InitDB connects to MongoDB and pings it before the server starts taking
// traffic. Call CloseDB on shutdown.
func InitDB() {
	uri := getEnv("MONGODB_URI", "mongodb://localhost:27017")
	dbName := getEnv("DATABASE_NAME", "halfsy")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("❌ Unable to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("❌ MongoDB ping failed: %v", err)
	}

	MongoClient = client
	DB = client.Database(dbName)

	ProductsCollection = DB.Collection("products")
	UsersCollection = DB.Collection("users")
	MessagesCollection = DB.Collection("messages")

	log.Println("✅ Connected to MongoDB")
}

func CloseDB() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Printf("⚠️  MongoDB disconnect failed: %v", err)
		return
	}
	log.Println("✅ MongoDB connection closed")
}

// WithTimeout returns a context with a 10s deadline for a single store call.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
