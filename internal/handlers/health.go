package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/alimgiray/blogposts/internal/services"
	"github.com/alimgiray/blogposts/pkg/logger"
	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	postService *services.PostService
}

func NewHealthHandler(postService *services.PostService) *HealthHandler {
	return &HealthHandler{
		postService: postService,
	}
}

// HealthCheck reports whether the post store answers a ping
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.postService.Ping(ctx); err != nil {
		logger.WithError(err).Warn("Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
