package routes

import (
	"time"

	"sanad/handlers"
	"sanad/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Sanad API is running",
			"time":    time.Now().Unix(),
		})
	})

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With", "X-Completion-Key"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.RateLimitMiddleware())

	// Public routes (no auth required)
	router.POST("/api/signup", handlers.Signup)
	router.POST("/api/login", handlers.Login)
	router.POST("/api/anonymous", handlers.AnonymousLogin)
	router.GET("/api/vapid-public-key", handlers.GetVapidPublicKey)

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware())

	// Identity & profile
	protected.GET("/me/identity", handlers.GetIdentity)
	protected.GET("/me", handlers.GetMyProfile)
	protected.PUT("/me", handlers.UpdateProfile)
	protected.POST("/me/avatar", handlers.UploadAvatar)
	protected.GET("/user/:id", handlers.GetUser)

	// Posts
	protected.POST("/posts", handlers.CreatePost)
	protected.GET("/posts", handlers.ListPosts)
	protected.GET("/posts/all", handlers.ListAllPosts)
	protected.GET("/posts/completed", handlers.ListCompleted)
	protected.GET("/my/posts", handlers.ListMyPosts)
	protected.GET("/posts/:id", handlers.GetPost)
	protected.GET("/posts/:id/preview", handlers.PostPreview)
	protected.DELETE("/posts/:id", handlers.DeletePost)
	protected.POST("/posts/:id/like", handlers.ToggleLike)
	protected.POST("/posts/:id/complete", handlers.MarkCompleted)

	// Replies
	protected.GET("/posts/:id/replies", handlers.ListReplies)
	protected.POST("/posts/:id/replies", handlers.CreateReply)

	// Image upload
	protected.POST("/upload-image", handlers.UploadPostImage)

	// Chat assistant; each turn costs a completion call, so these carry
	// their own per-user limit on top of the global one
	chat := protected.Group("/chat")
	chat.Use(middleware.CompletionRateLimit(20, time.Minute))
	chat.POST("/message", handlers.ChatMessage)
	chat.POST("/extract", handlers.ChatExtract)
	chat.POST("/submit", handlers.SubmitDraft)
	chat.POST("/draft-preview", handlers.DraftPreview)

	// Push subscriptions
	protected.POST("/subscribe", handlers.SubscribePush)
	protected.DELETE("/subscribe", handlers.UnsubscribePush)

	// Mock data
	protected.POST("/mock-data/import", handlers.ImportMockData)
	protected.POST("/mock-data/clear", handlers.ClearMockData)
	protected.GET("/mock-data/status", handlers.MockDataStatus)

	// Catch-all for undefined API routes
	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
