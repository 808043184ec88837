package main

import (
	"log"
	"net/http"

	"github.com/citifix/citifix-backend/internal/config"
	"github.com/citifix/citifix-backend/internal/database"
	"github.com/citifix/citifix-backend/internal/handler"
	"github.com/citifix/citifix-backend/internal/middleware"
	"github.com/citifix/citifix-backend/internal/repository"
	"github.com/citifix/citifix-backend/internal/service"
	"github.com/citifix/citifix-backend/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to connect database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}
	logger.Log.Info("Database migration completed")

	// Redis backs the IP rate limiter; the limiter fails open if it is down
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Log.Fatal("Invalid REDIS_URL", zap.Error(err))
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	complaintService := service.NewComplaintService(complaintRepo)
	leaderboardService := service.NewLeaderboardService(userRepo)
	adminService := service.NewAdminService(complaintRepo, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	adminHandler := handler.NewAdminHandler(adminService)

	rateLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimiterConfig{
		MaxRequests: cfg.RateLimitMaxRequests,
		Window:      cfg.RateLimitWindow,
		BlockTime:   cfg.RateLimitBlockTime,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("Panic recovered in handler", zap.Any("panic", recovered))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("Authorization")
	corsConfig.AddAllowMethods(http.MethodPatch)
	router.Use(cors.New(corsConfig))
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.IsProduction()))
	router.Use(rateLimiter.Middleware())

	// Liveness check
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend running successfully")
	})

	// Public routes
	router.POST("/api/auth/register", authHandler.Register)
	router.POST("/api/auth/login", authHandler.Login)
	router.GET("/api/complaints", complaintHandler.List)
	router.GET("/api/complaints/:id", complaintHandler.GetByID)
	router.GET("/api/leaderboard", leaderboardHandler.Get)

	// Protected routes (require JWT)
	protected := router.Group("/api/complaints")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("", complaintHandler.Create)
		protected.PUT("/:id", complaintHandler.Update)
		protected.DELETE("/:id", complaintHandler.Delete)
		protected.GET("/user/my-complaints", complaintHandler.MyComplaints)
	}

	// Admin routes (require JWT + ADMIN role)
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminMiddleware())
	{
		admin.GET("/analytics", adminHandler.Analytics)
		admin.GET("/complaints", adminHandler.ListComplaints)
		admin.PATCH("/complaints/:id/status", adminHandler.UpdateStatus)
		admin.GET("/users", adminHandler.ListUsers)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	logger.Log.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(cfg.ServerPort); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
