package repositories

import (
	"context"

	"github.com/alimgiray/blogposts/internal/models"
)

// PostRepository is implemented by every post store backend.
type PostRepository interface {
	// Create inserts the post and sets its ID.
	Create(ctx context.Context, post *models.BlogPost) error

	// GetByID returns models.ErrPostNotFound for unknown or malformed ids.
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)

	GetAll(ctx context.Context) ([]*models.BlogPost, error)

	Count(ctx context.Context) (int64, error)

	// Update sets only the non-nil fields of update. Returns models.ErrPostNotFound
	// when no post has the id.
	Update(ctx context.Context, id string, update models.PostUpdate) error

	// Delete reports whether a post was removed.
	Delete(ctx context.Context, id string) (bool, error)

	Ping(ctx context.Context) error
}
