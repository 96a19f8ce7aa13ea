package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	filter_cache "github.com/halfsy-shop/halfsy-backend/cache"
	"github.com/halfsy-shop/halfsy-backend/catalog"
	"github.com/halfsy-shop/halfsy-backend/config"
	"github.com/halfsy-shop/halfsy-backend/controllers/ecommerce/contact_controller"
	"github.com/halfsy-shop/halfsy-backend/controllers/ecommerce/filter_controller"
	"github.com/halfsy-shop/halfsy-backend/controllers/ecommerce/product_controller"
	"github.com/halfsy-shop/halfsy-backend/controllers/ecommerce/user_controller"
	"github.com/halfsy-shop/halfsy-backend/middleware"
	"github.com/halfsy-shop/halfsy-backend/routes/ecommerce_routes"
	"github.com/halfsy-shop/halfsy-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// Merchandising lists (brand priority, deal brands, curated sections)
	merch := config.LoadMerchandising()

	store := catalog.NewMongoStore(config.ProductsCollection)
	metaCache := filter_cache.NewRedisCache(config.RedisClient)
	svc := catalog.NewService(store, merch, metaCache)

	product_controller.Init(svc)
	filter_controller.Init(svc)
	user_controller.Init(svc)
	contact_controller.Init(services.NewResendClient())
	log.Println("✅ Catalog service initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://halfsy.shop"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(300, time.Minute))

	ecommerce_routes.SetupStorefrontRoutes(api)
	ecommerce_routes.SetupUserRoutes(api)
	ecommerce_routes.SetupContactRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Close connections on shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("⚠️ Shutting down")
		config.CloseDB()
		config.CloseRedis()
		os.Exit(0)
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
