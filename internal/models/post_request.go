package models

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var notBlank = regexp.MustCompile(`\S`)

type AuthorRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Validate requires both names so an author is never stored half-filled.
func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Match(notBlank).Error("first name must not be blank"),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Match(notBlank).Error("last name must not be blank"),
		),
	)
}

func (r AuthorRequest) ToAuthor() Author {
	return Author{FirstName: r.FirstName, LastName: r.LastName}
}

// CreatePostRequest is the body of POST /posts
type CreatePostRequest struct {
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Author  *AuthorRequest `json:"author"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Match(notBlank).Error("title must not be blank"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Match(notBlank).Error("content must not be blank"),
		),
		validation.Field(&r.Author, validation.Required.Error("author is required")),
	)
}

// UpdatePostRequest is the body of PUT /posts/:id. Every field is optional.
type UpdatePostRequest struct {
	ID      *string        `json:"id"`
	Title   *string        `json:"title"`
	Content *string        `json:"content"`
	Author  *AuthorRequest `json:"author"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title must not be empty"),
			validation.Match(notBlank).Error("title must not be blank"),
		),
		validation.Field(&r.Content,
			validation.NilOrNotEmpty.Error("content must not be empty"),
			validation.Match(notBlank).Error("content must not be blank"),
		),
		validation.Field(&r.Author),
	)
}

// ToUpdate keeps only the updatable fields. The body id is never written.
func (r UpdatePostRequest) ToUpdate() PostUpdate {
	update := PostUpdate{
		Title:   r.Title,
		Content: r.Content,
	}
	if r.Author != nil {
		author := r.Author.ToAuthor()
		update.Author = &author
	}
	return update
}
