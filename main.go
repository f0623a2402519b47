package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tastebite/tastebite-api/config"
	"github.com/tastebite/tastebite-api/controllers"
	"github.com/tastebite/tastebite-api/middleware"
	"github.com/tastebite/tastebite-api/models"
	"github.com/tastebite/tastebite-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting Tastebite API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.FoodItem{},
		&models.Coupon{},
		&models.Order{},
		&models.OrderItem{},
		&models.Rating{},
		&models.Wishlist{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// First-run bootstrap: default admin and sample catalog
	if err := config.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Image storage: local disk by default, S3 when configured
	if cfg.StorageBackend == "s3" {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		services.InitS3ImageService(s3Service)
		log.Printf("Image storage: S3 bucket %s", cfg.AWSS3Bucket)
	} else {
		services.InitLocalImageService(cfg.UploadDir)
		log.Printf("Image storage: local directory %s", cfg.UploadDir)
	}

	router := setupRouter()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with all API routes registered
func setupRouter() *gin.Engine {
	router := gin.Default()

	// The separate client application is served from another origin
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/create-first-admin", controllers.CreateFirstAdmin)
		}

		users := api.Group("/users")
		{
			users.GET("/me", middleware.AuthRequired(), controllers.GetMyProfile)
			users.GET("/:id", controllers.GetUserProfile)
			users.PUT("/:id", controllers.UpdateUserProfile)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", controllers.GetCategories)
			categories.POST("", controllers.CreateCategory)
			categories.PUT("/:id", controllers.UpdateCategory)
			categories.DELETE("/:id", controllers.DeleteCategory)
		}

		food := api.Group("/food")
		{
			food.GET("", controllers.GetFood)
			food.GET("/search", controllers.SearchFood)
			food.GET("/category/:id", controllers.GetFoodByCategory)
			food.GET("/top-rated", controllers.GetTopRatedFood)
			food.POST("", controllers.CreateFood)
			food.PUT("/:id", controllers.UpdateFood)
			food.DELETE("/:id", controllers.DeleteFood)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", controllers.CreateOrder)
			orders.GET("", controllers.GetAllOrders)
			orders.GET("/user/:userId", controllers.GetUserOrders)
			orders.PUT("/:id/status", controllers.UpdateOrderStatus)
		}

		ratings := api.Group("/ratings")
		{
			ratings.GET("/food/:foodItemId", controllers.GetFoodRatings)
			ratings.POST("", controllers.SubmitRating)
		}

		wishlist := api.Group("/wishlist")
		{
			wishlist.GET("/user/:userId", controllers.GetUserWishlist)
			wishlist.POST("", controllers.AddToWishlist)
			wishlist.DELETE("/user/:userId/item/:foodItemId", controllers.RemoveFromWishlist)
		}

		coupons := api.Group("/coupons")
		{
			coupons.GET("", controllers.GetCoupons)
			coupons.POST("/validate", controllers.ValidateCoupon)
			coupons.POST("", controllers.CreateCoupon)
			coupons.PUT("/:id", controllers.UpdateCoupon)
		}

		api.POST("/upload/image", controllers.UploadImage)
		api.GET("/uploads/:filename", controllers.GetUploadedImage)

		reports := api.Group("/reports")
		{
			reports.GET("/dashboard", controllers.GetDashboardStats)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tastebite API is running",
	})
}
