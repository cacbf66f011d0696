package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	inkwellHTTP "inkwell/internal/controller/http"
	"inkwell/internal/repo/persistent"
	"inkwell/internal/usecase"
	"inkwell/pkg/cache"
	"inkwell/pkg/config"
	"inkwell/pkg/jwt"
	"inkwell/pkg/logger"
	"inkwell/pkg/middleware"
	"inkwell/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "inkwell/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	blogRepo := persistent.NewBlogRepository(db)
	requestRepo := persistent.NewAuthorRequestRepository(db)

	countsCache := cache.NewCountsCache(redisClient, 10*time.Minute)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, requestRepo, jwtService, log)
	blogUseCase := usecase.NewBlogUseCase(blogRepo, countsCache, s3Client, log)
	adminUseCase := usecase.NewAdminUseCase(userRepo, blogRepo, requestRepo, log)

	// Initialize HTTP handlers
	authHandler := inkwellHTTP.NewAuthHandler(authUseCase)
	blogHandler := inkwellHTTP.NewBlogHandler(blogUseCase)
	adminHandler := inkwellHTTP.NewAdminHandler(adminUseCase)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(redisClient, log, 100, time.Minute))

	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.AuthMiddleware(jwtService), authHandler.Me)
		auth.POST("/author-request", middleware.AuthMiddleware(jwtService), authHandler.SubmitAuthorRequest)
	}

	blogs := api.Group("/blogs")
	{
		// Public reads
		blogs.GET("", blogHandler.ListBlogs)
		blogs.GET("/:id", blogHandler.GetBlog)
		blogs.GET("/category/:category", blogHandler.ListByCategory)
		blogs.GET("/author/:author_id", blogHandler.ListByAuthor)
		blogs.GET("/:id/comments", blogHandler.ListComments)
		blogs.GET("/categories/counts", blogHandler.CategoryCounts)

		// Authenticated writes
		authed := blogs.Group("")
		authed.Use(middleware.AuthMiddleware(jwtService))
		{
			authed.POST("/create", blogHandler.CreateBlog)
			authed.PUT("/:id", blogHandler.UpdateBlog)
			authed.DELETE("/:id", blogHandler.DeleteBlog)
			authed.POST("/:id/like", blogHandler.LikeBlog)
			authed.POST("/:id/comment", blogHandler.AddComment)
			authed.POST("/upload", blogHandler.UploadImage)
		}
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtService))
	admin.Use(middleware.AdminOnly())
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.POST("/users", adminHandler.CreateUser)
		admin.PUT("/users/:id", adminHandler.UpdateUser)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
		admin.GET("/author-requests", adminHandler.ListAuthorRequests)
		admin.PUT("/author-requests/:id/approve", adminHandler.ApproveAuthorRequest)
		admin.GET("/stats", adminHandler.Stats)
		admin.GET("/posts", adminHandler.ListBlogs)
		admin.GET("/authors", adminHandler.ListAuthors)
		admin.PUT("/authors/:id/convert-to-user", adminHandler.DemoteAuthor)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Inkwell API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Inkwell API exited")
}
