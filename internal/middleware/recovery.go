package middleware

import (
	"net/http"

	"github.com/alimgiray/blogposts/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a JSON 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithField("panic", err).
					WithField("path", c.Request.URL.Path).
					Error("Panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()

		c.Next()
	}
}
