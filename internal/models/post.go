package models

import (
	"time"
)

// CreatedLayout is the wire format of a post's created timestamp.
const CreatedLayout = "2006-01-02T15:04:05.000Z07:00"

type Author struct {
	FirstName string
	LastName  string
}

// DisplayName joins the author's names as "{firstName} {lastName}".
func (a Author) DisplayName() string {
	return a.FirstName + " " + a.LastName
}

// BlogPost is the stored form of a post.
type BlogPost struct {
	ID      string
	Title   string
	Content string
	Author  Author
	Created time.Time
}

// PostView is the public JSON representation of a post.
type PostView struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Created string `json:"created"`
}

// PostUpdate carries the fields of a partial update. Nil fields are left untouched.
type PostUpdate struct {
	Title   *string
	Content *string
	Author  *Author
}

func (u PostUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Author == nil
}

// NewBlogPost builds a post ready for insertion. The id is assigned by the store.
func NewBlogPost(title, content string, author Author, created time.Time) *BlogPost {
	return &BlogPost{
		Title:   title,
		Content: content,
		Author:  author,
		Created: created.UTC().Truncate(time.Millisecond),
	}
}

// ToView maps a stored post to its public representation.
func (p *BlogPost) ToView() PostView {
	return PostView{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Author:  p.Author.DisplayName(),
		Created: p.Created.UTC().Format(CreatedLayout),
	}
}

// ToViews maps posts to views. It never returns nil so an empty list encodes as [].
func ToViews(posts []*BlogPost) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, post.ToView())
	}
	return views
}
