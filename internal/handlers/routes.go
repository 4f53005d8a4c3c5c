package handlers

import (
	"github.com/alimgiray/blogposts/internal/services"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the posts API, the health check and the JSON 404 handler.
func SetupRoutes(router *gin.Engine, postService *services.PostService) {
	postHandler := NewPostHandler(postService)
	healthHandler := NewHealthHandler(postService)
	notFoundHandler := NewNotFoundHandler()

	posts := router.Group("/posts")
	{
		posts.GET("", postHandler.ListPosts)
		posts.POST("", postHandler.CreatePost)
		posts.GET("/export", postHandler.ExportPosts)
		posts.GET("/:id", postHandler.GetPost)
		posts.PUT("/:id", postHandler.UpdatePost)
		posts.DELETE("/:id", postHandler.DeletePost)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	router.NoRoute(notFoundHandler.NotFound)
}
