package main

import (
	"net/http"
	"os"

	"blog-cms/config"
	"blog-cms/handlers"
	"blog-cms/helper"
	"blog-cms/imagehost"
	"blog-cms/logger"
	"blog-cms/markdown"
	"blog-cms/middleware"
	"blog-cms/repositories"
	"blog-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	log := logger.New()

	db, err := config.InitDB()
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	httpHelper := helper.NewHTTPHelper()
	images := imagehost.NewClient(os.Getenv("IMAGE_API_URL"), os.Getenv("IMAGE_API_KEY"))
	renderer := markdown.NewRenderer()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, commentRepo, log)
	commentService := services.NewCommentService(commentRepo, articleRepo, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, renderer, httpHelper)
	commentHandler := handlers.NewCommentHandler(commentService)
	imageHandler := handlers.NewImageHandler(images, log, httpHelper)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
			}

			// Comments
			protected.POST("/comments", commentHandler.SubmitComment)

			// Images
			imagesGroup := protected.Group("/images")
			{
				imagesGroup.POST("", imageHandler.UploadImage)
				imagesGroup.DELETE("/:id", imageHandler.DeleteImage)
			}
		}

		// Public article routes
		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:id", articleHandler.GetPublicArticle)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("server starting")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
