package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alimgiray/blogposts/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func generatePost(i int) *models.BlogPost {
	return models.NewBlogPost(
		fmt.Sprintf("title %d", i),
		fmt.Sprintf("content of post number %d", i),
		models.Author{FirstName: fmt.Sprintf("First%d", i), LastName: fmt.Sprintf("Last%d", i)},
		time.Now(),
	)
}

// runPostRepositoryTests exercises behaviour every PostRepository must share.
// newRepo must return an empty repository.
func runPostRepositoryTests(t *testing.T, newRepo func(t *testing.T) PostRepository, missingID string) {
	ctx := context.Background()

	t.Run("Create assigns id and round-trips fields", func(t *testing.T) {
		repo := newRepo(t)
		post := generatePost(1)

		require.NoError(t, repo.Create(ctx, post))
		assert.NotEmpty(t, post.ID)

		stored, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, post.ID, stored.ID)
		assert.Equal(t, post.Title, stored.Title)
		assert.Equal(t, post.Content, stored.Content)
		assert.Equal(t, post.Author, stored.Author)
		assert.True(t, post.Created.Equal(stored.Created), "created %v != %v", post.Created, stored.Created)
	})

	t.Run("Ids are unique", func(t *testing.T) {
		repo := newRepo(t)
		seen := map[string]bool{}
		for i := 0; i < 5; i++ {
			post := generatePost(i)
			require.NoError(t, repo.Create(ctx, post))
			assert.False(t, seen[post.ID], "duplicate id %s", post.ID)
			seen[post.ID] = true
		}
	})

	t.Run("GetAll returns every post and matches Count", func(t *testing.T) {
		repo := newRepo(t)

		posts, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, posts)

		for i := 0; i < 10; i++ {
			require.NoError(t, repo.Create(ctx, generatePost(i)))
		}

		posts, err = repo.GetAll(ctx)
		require.NoError(t, err)
		count, err := repo.Count(ctx)
		require.NoError(t, err)

		assert.Len(t, posts, 10)
		assert.Equal(t, int64(len(posts)), count)
	})

	t.Run("GetAll orders by created", func(t *testing.T) {
		repo := newRepo(t)
		base := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

		// Inserted out of order. The .1s and .12s offsets misorder if created is kept as variable-width text.
		offsets := []time.Duration{3 * time.Hour, 100 * time.Millisecond, 120 * time.Millisecond, 0}
		for i, offset := range offsets {
			post := generatePost(i)
			post.Created = base.Add(offset)
			require.NoError(t, repo.Create(ctx, post))
		}

		posts, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, posts, len(offsets))

		expected := []time.Duration{0, 100 * time.Millisecond, 120 * time.Millisecond, 3 * time.Hour}
		for i, offset := range expected {
			assert.True(t, base.Add(offset).Equal(posts[i].Created), "position %d: got %v", i, posts[i].Created)
		}
	})

	t.Run("GetByID unknown and malformed ids", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetByID(ctx, missingID)
		assert.ErrorIs(t, err, models.ErrPostNotFound)

		_, err = repo.GetByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, models.ErrPostNotFound)
	})

	t.Run("Update changes only supplied fields", func(t *testing.T) {
		repo := newRepo(t)
		post := generatePost(1)
		require.NoError(t, repo.Create(ctx, post))

		require.NoError(t, repo.Update(ctx, post.ID, models.PostUpdate{Title: strPtr("T2")}))

		stored, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "T2", stored.Title)
		assert.Equal(t, post.Content, stored.Content)
		assert.Equal(t, post.Author, stored.Author)
		assert.Equal(t, post.ID, stored.ID)
		assert.True(t, post.Created.Equal(stored.Created))
	})

	t.Run("Update replaces the whole author", func(t *testing.T) {
		repo := newRepo(t)
		post := generatePost(1)
		require.NoError(t, repo.Create(ctx, post))

		author := models.Author{FirstName: "X", LastName: "Y"}
		require.NoError(t, repo.Update(ctx, post.ID, models.PostUpdate{Author: &author, Content: strPtr("new")}))

		stored, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, author, stored.Author)
		assert.Equal(t, "new", stored.Content)
		assert.Equal(t, post.Title, stored.Title)
	})

	t.Run("Update unknown id", func(t *testing.T) {
		repo := newRepo(t)
		err := repo.Update(ctx, missingID, models.PostUpdate{Title: strPtr("T2")})
		assert.ErrorIs(t, err, models.ErrPostNotFound)
	})

	t.Run("Update without fields", func(t *testing.T) {
		repo := newRepo(t)
		post := generatePost(1)
		require.NoError(t, repo.Create(ctx, post))

		err := repo.Update(ctx, post.ID, models.PostUpdate{})
		assert.ErrorIs(t, err, models.ErrNoUpdatableFields)
	})

	t.Run("Delete removes the post", func(t *testing.T) {
		repo := newRepo(t)
		post := generatePost(1)
		require.NoError(t, repo.Create(ctx, post))

		deleted, err := repo.Delete(ctx, post.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, post.ID)
		assert.ErrorIs(t, err, models.ErrPostNotFound)

		deleted, err = repo.Delete(ctx, post.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Delete malformed id", func(t *testing.T) {
		repo := newRepo(t)
		deleted, err := repo.Delete(ctx, "not-an-id")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Ping", func(t *testing.T) {
		repo := newRepo(t)
		assert.NoError(t, repo.Ping(ctx))
	})
}
