package services

import (
	"context"
	"time"

	"github.com/alimgiray/blogposts/internal/models"
	"github.com/alimgiray/blogposts/internal/repositories"
	"github.com/alimgiray/blogposts/pkg/logger"
)

type PostService struct {
	postRepo repositories.PostRepository
	now      func() time.Time
}

func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		now:      time.Now,
	}
}

// ListPosts returns every stored post
func (s *PostService) ListPosts(ctx context.Context) ([]*models.BlogPost, error) {
	return s.postRepo.GetAll(ctx)
}

// GetPostByID retrieves a post by ID
func (s *PostService) GetPostByID(ctx context.Context, id string) (*models.BlogPost, error) {
	if id == "" {
		return nil, models.ErrPostIDRequired
	}
	return s.postRepo.GetByID(ctx, id)
}

// CreatePost validates the request, stamps the creation time and stores the post
func (s *PostService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, models.NewValidationError(err)
	}

	post := models.NewBlogPost(req.Title, req.Content, req.Author.ToAuthor(), s.now())
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	logger.WithField("post_id", post.ID).Info("Post created")
	return post, nil
}

// UpdatePost applies the supplied fields to the post with the given id.
// A body id, when present, must match the path id.
func (s *PostService) UpdatePost(ctx context.Context, id string, req models.UpdatePostRequest) error {
	if id == "" {
		return models.ErrPostIDRequired
	}
	if req.ID != nil && *req.ID != id {
		return models.ErrIDMismatch
	}
	if err := req.Validate(); err != nil {
		return models.NewValidationError(err)
	}

	update := req.ToUpdate()
	if update.IsEmpty() {
		return models.ErrNoUpdatableFields
	}

	if err := s.postRepo.Update(ctx, id, update); err != nil {
		return err
	}

	logger.WithField("post_id", id).Info("Post updated")
	return nil
}

// DeletePost deletes a post by ID. Deleting an unknown id succeeds.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	if id == "" {
		return models.ErrPostIDRequired
	}

	deleted, err := s.postRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if deleted {
		logger.WithField("post_id", id).Info("Post deleted")
	} else {
		logger.WithField("post_id", id).Debug("Delete requested for unknown post")
	}
	return nil
}

// Ping checks that the post store is reachable
func (s *PostService) Ping(ctx context.Context) error {
	return s.postRepo.Ping(ctx)
}
