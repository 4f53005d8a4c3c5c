package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestAuthorDisplayName(t *testing.T) {
	testCases := []struct {
		name     string
		author   Author
		expected string
	}{
		{name: "Simple names", author: Author{FirstName: "X", LastName: "Y"}, expected: "X Y"},
		{name: "Multi word last name", author: Author{FirstName: "Ada", LastName: "King Lovelace"}, expected: "Ada King Lovelace"},
		{name: "Names are not trimmed", author: Author{FirstName: " Jo", LastName: "Doe "}, expected: " Jo Doe "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.author.DisplayName())
		})
	}
}

func TestNewBlogPostNormalizesCreated(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	created := time.Date(2026, 10, 19, 11, 30, 0, 123456789, loc)

	post := NewBlogPost("A", "B", Author{FirstName: "X", LastName: "Y"}, created)

	assert.Empty(t, post.ID, "id is assigned by the store")
	assert.Equal(t, time.UTC, post.Created.Location())
	assert.Equal(t, time.Date(2026, 10, 19, 8, 30, 0, 123000000, time.UTC), post.Created)
}

func TestToView(t *testing.T) {
	post := &BlogPost{
		ID:      "5f1d7a",
		Title:   "A",
		Content: "B",
		Author:  Author{FirstName: "X", LastName: "Y"},
		Created: time.Date(2026, 10, 19, 8, 30, 0, 123000000, time.UTC),
	}

	view := post.ToView()

	assert.Equal(t, PostView{
		ID:      "5f1d7a",
		Title:   "A",
		Content: "B",
		Author:  "X Y",
		Created: "2026-10-19T08:30:00.123Z",
	}, view)

	parsed, err := time.Parse(time.RFC3339, view.Created)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(post.Created))
}

func TestToViewsNeverNil(t *testing.T) {
	views := ToViews(nil)
	assert.NotNil(t, views)
	assert.Len(t, views, 0)
}

func TestCreatePostRequestValidate(t *testing.T) {
	valid := CreatePostRequest{
		Title:   "A",
		Content: "B",
		Author:  &AuthorRequest{FirstName: "X", LastName: "Y"},
	}
	assert.NoError(t, valid.Validate())

	testCases := []struct {
		name    string
		request CreatePostRequest
		field   string
	}{
		{
			name:    "Missing title",
			request: CreatePostRequest{Content: "B", Author: &AuthorRequest{FirstName: "X", LastName: "Y"}},
			field:   "title",
		},
		{
			name:    "Blank content",
			request: CreatePostRequest{Title: "A", Content: "   ", Author: &AuthorRequest{FirstName: "X", LastName: "Y"}},
			field:   "content",
		},
		{
			name:    "Missing author",
			request: CreatePostRequest{Title: "A", Content: "B"},
			field:   "author",
		},
		{
			name:    "Partial author",
			request: CreatePostRequest{Title: "A", Content: "B", Author: &AuthorRequest{FirstName: "X"}},
			field:   "author",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			require.Error(t, err)

			vErr := NewValidationError(err)
			assert.Equal(t, tc.field, vErr.Field)
			assert.NotEmpty(t, vErr.Message)
		})
	}
}

func TestUpdatePostRequest(t *testing.T) {
	t.Run("Empty request is valid but has no updates", func(t *testing.T) {
		request := UpdatePostRequest{}
		assert.NoError(t, request.Validate())
		assert.True(t, request.ToUpdate().IsEmpty())
	})

	t.Run("Body id is not an update", func(t *testing.T) {
		request := UpdatePostRequest{ID: strPtr("abc")}
		assert.NoError(t, request.Validate())
		assert.True(t, request.ToUpdate().IsEmpty())
	})

	t.Run("Title only", func(t *testing.T) {
		request := UpdatePostRequest{Title: strPtr("T2")}
		require.NoError(t, request.Validate())

		update := request.ToUpdate()
		require.NotNil(t, update.Title)
		assert.Equal(t, "T2", *update.Title)
		assert.Nil(t, update.Content)
		assert.Nil(t, update.Author)
	})

	t.Run("Empty title is rejected", func(t *testing.T) {
		request := UpdatePostRequest{Title: strPtr("")}
		assert.Error(t, request.Validate())
	})

	t.Run("Blank content is rejected", func(t *testing.T) {
		request := UpdatePostRequest{Content: strPtr(" \t")}
		assert.Error(t, request.Validate())
	})

	t.Run("Partial author is rejected", func(t *testing.T) {
		request := UpdatePostRequest{Author: &AuthorRequest{LastName: "Y"}}
		err := request.Validate()
		require.Error(t, err)
		assert.Equal(t, "author", NewValidationError(err).Field)
	})

	t.Run("Full author", func(t *testing.T) {
		request := UpdatePostRequest{Author: &AuthorRequest{FirstName: "X", LastName: "Y"}}
		require.NoError(t, request.Validate())
		assert.Equal(t, &Author{FirstName: "X", LastName: "Y"}, request.ToUpdate().Author)
	})
}
