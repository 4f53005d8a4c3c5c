package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alimgiray/blogposts/internal/models"
	"github.com/google/uuid"
)

// sqlitePostDocument is the JSON document kept in posts.document.
// Created uses the fixed-width models.CreatedLayout so it sorts as text.
type sqlitePostDocument struct {
	Title   string               `json:"title"`
	Content string               `json:"content"`
	Author  sqliteAuthorDocument `json:"author"`
	Created string               `json:"created"`
}

type sqliteAuthorDocument struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SQLitePostRepository stores each post as a JSON document in SQLite.
type SQLitePostRepository struct {
	db *sql.DB
}

func NewSQLitePostRepository(db *sql.DB) *SQLitePostRepository {
	return &SQLitePostRepository{
		db: db,
	}
}

// Create creates a new post
func (r *SQLitePostRepository) Create(ctx context.Context, post *models.BlogPost) error {
	document, err := json.Marshal(sqlitePostDocument{
		Title:   post.Title,
		Content: post.Content,
		Author: sqliteAuthorDocument{
			FirstName: post.Author.FirstName,
			LastName:  post.Author.LastName,
		},
		Created: post.Created.UTC().Format(models.CreatedLayout),
	})
	if err != nil {
		return fmt.Errorf("encode post: %w", err)
	}

	id := uuid.New().String()
	query := `INSERT INTO posts (id, document) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, id, string(document)); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	post.ID = id
	return nil
}

// GetByID retrieves a post by ID
func (r *SQLitePostRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	query := `SELECT id, document FROM posts WHERE id = ?`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}

	return post, nil
}

// GetAll retrieves all posts, oldest first
func (r *SQLitePostRepository) GetAll(ctx context.Context) ([]*models.BlogPost, error) {
	query := `SELECT id, document FROM posts ORDER BY json_extract(document, '$.created'), rowid`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("list posts: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

// Count returns the number of stored posts
func (r *SQLitePostRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// Update patches the supplied fields inside the stored document
func (r *SQLitePostRepository) Update(ctx context.Context, id string, update models.PostUpdate) error {
	if update.IsEmpty() {
		return models.ErrNoUpdatableFields
	}

	var paths []string
	var args []interface{}

	if update.Title != nil {
		paths = append(paths, "'$.title', ?")
		args = append(args, *update.Title)
	}
	if update.Content != nil {
		paths = append(paths, "'$.content', ?")
		args = append(args, *update.Content)
	}
	if update.Author != nil {
		author, err := json.Marshal(sqliteAuthorDocument{
			FirstName: update.Author.FirstName,
			LastName:  update.Author.LastName,
		})
		if err != nil {
			return fmt.Errorf("encode author: %w", err)
		}
		paths = append(paths, "'$.author', json(?)")
		args = append(args, string(author))
	}

	query := `UPDATE posts SET document = json_set(document, ` + strings.Join(paths, ", ") + `) WHERE id = ?`
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update post %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update post %s: %w", id, err)
	}
	if affected == 0 {
		return models.ErrPostNotFound
	}

	return nil
}

// Delete deletes a post by ID
func (r *SQLitePostRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete post %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete post %s: %w", id, err)
	}

	return affected > 0, nil
}

func (r *SQLitePostRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*models.BlogPost, error) {
	var id, raw string
	if err := row.Scan(&id, &raw); err != nil {
		return nil, err
	}

	var document sqlitePostDocument
	if err := json.Unmarshal([]byte(raw), &document); err != nil {
		return nil, fmt.Errorf("decode post %s: %w", id, err)
	}

	created, err := time.Parse(models.CreatedLayout, document.Created)
	if err != nil {
		return nil, fmt.Errorf("decode post %s created: %w", id, err)
	}

	return &models.BlogPost{
		ID:      id,
		Title:   document.Title,
		Content: document.Content,
		Author: models.Author{
			FirstName: document.Author.FirstName,
			LastName:  document.Author.LastName,
		},
		Created: created.UTC(),
	}, nil
}
