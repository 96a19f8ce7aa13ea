package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	filter_cache "github.com/halfsy-shop/halfsy-backend/cache"
	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main loads scraped product fixtures into the catalog collection.
// Usage: go run cmd/seed/main.go -file seed/products.json
// This is a standalone CLI tool, not part of the main application.
func main() {
	file := flag.String("file", "seed/products.json", "JSON array of scraped product documents")
	drop := flag.Bool("drop", false, "drop the products collection before inserting")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("HALFSY - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	// Scraper output is not uniform: prices may be strings, sizes may be a
	// comma-joined string, legacy documents use old field names. Insert the
	// documents as-is; the read path normalizes them.
	var docs []bson.M
	if err := json.Unmarshal(data, &docs); err != nil {
		log.Fatalf("Failed to parse %s: %v", *file, err)
	}
	log.Printf("✓ Parsed %d documents", len(docs))

	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	if *drop {
		if err := config.ProductsCollection.Drop(ctx); err != nil {
			log.Fatalf("Failed to drop products collection: %v", err)
		}
		log.Println("✓ Dropped existing products collection")
	}

	payload := make([]interface{}, len(docs))
	for i, d := range docs {
		payload[i] = d
	}
	res, err := config.ProductsCollection.InsertMany(ctx, payload, options.InsertMany().SetOrdered(false))
	if err != nil {
		log.Fatalf("Insert failed: %v", err)
	}

	// Facet counts changed, so the cached filter metadata is stale.
	config.ConnectRedis()
	filter_cache.NewRedisCache(config.RedisClient).Invalidate(ctx)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("✅ Inserted %d products\n", len(res.InsertedIDs))
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the API server: go run main.go")
	fmt.Println("2. Browse the catalog at GET /api/v1/store/products")
	fmt.Println()

	config.CloseDB()
	config.CloseRedis()
}
