package handlers

import (
	"errors"
	"net/http"

	"github.com/alimgiray/blogposts/internal/models"
	"github.com/alimgiray/blogposts/internal/services"
	"github.com/alimgiray/blogposts/pkg/logger"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// ListPosts returns every post
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ToViews(posts))
}

// GetPost returns a single post
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post.ToView())
}

// CreatePost creates a post from a JSON body
func (h *PostHandler) CreatePost(c *gin.Context) {
	var request models.CreatePostRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post.ToView())
}

// UpdatePost applies a partial update and answers 204
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID := c.Param("id")
	if postID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post ID is required"})
		return
	}

	var request models.UpdatePostRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.postService.UpdatePost(c.Request.Context(), postID, request); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeletePost deletes a post and answers 204, also for unknown ids
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportPosts downloads all posts as an xlsx workbook
func (h *PostHandler) ExportPosts(c *gin.Context) {
	f, err := h.postService.ExportPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="posts.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// respondError maps service errors to status codes. Unexpected errors are logged and hidden.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, models.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	default:
		logger.WithError(err).WithField("path", c.Request.URL.Path).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
