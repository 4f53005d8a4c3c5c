package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alimgiray/blogposts/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const postsCollection = "posts"

// mongoPostDocument is the MongoDB object for post persistence
type mongoPostDocument struct {
	ID      primitive.ObjectID  `bson:"_id,omitempty"`
	Title   string              `bson:"title"`
	Content string              `bson:"content"`
	Author  mongoAuthorDocument `bson:"author"`
	Created time.Time           `bson:"created"`
}

type mongoAuthorDocument struct {
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
}

type MongoPostRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewMongoPostRepository(client *mongo.Client, dbName string) *MongoPostRepository {
	return &MongoPostRepository{
		client:     client,
		collection: client.Database(dbName).Collection(postsCollection),
	}
}

// Create inserts a post and takes the ObjectID generated for it
func (r *MongoPostRepository) Create(ctx context.Context, post *models.BlogPost) error {
	document := mongoPostDocument{
		Title:   post.Title,
		Content: post.Content,
		Author: mongoAuthorDocument{
			FirstName: post.Author.FirstName,
			LastName:  post.Author.LastName,
		},
		Created: post.Created,
	}

	result, err := r.collection.InsertOne(ctx, document)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("insert post: unexpected id type %T", result.InsertedID)
	}

	post.ID = id.Hex()
	return nil
}

// GetByID retrieves a post by ID
func (r *MongoPostRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrPostNotFound
	}

	var document mongoPostDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}

	return document.toModel(), nil
}

// GetAll retrieves all posts, oldest first
func (r *MongoPostRepository) GetAll(ctx context.Context) ([]*models.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	var documents []mongoPostDocument
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]*models.BlogPost, 0, len(documents))
	for i := range documents {
		posts = append(posts, documents[i].toModel())
	}

	return posts, nil
}

func (r *MongoPostRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// Update applies $set with only the supplied fields
func (r *MongoPostRepository) Update(ctx context.Context, id string, update models.PostUpdate) error {
	if update.IsEmpty() {
		return models.ErrNoUpdatableFields
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrPostNotFound
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Author != nil {
		set["author"] = mongoAuthorDocument{
			FirstName: update.Author.FirstName,
			LastName:  update.Author.LastName,
		}
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update post %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return models.ErrPostNotFound
	}

	return nil
}

// Delete deletes a post by ID. A malformed id matches nothing.
func (r *MongoPostRepository) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, fmt.Errorf("delete post %s: %w", id, err)
	}

	return result.DeletedCount > 0, nil
}

func (r *MongoPostRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the created index backing the sort in GetAll
func (r *MongoPostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created", Value: 1}},
		Options: options.Index().SetName("created_1"),
	})
	if err != nil {
		return fmt.Errorf("create posts index: %w", err)
	}
	return nil
}

func (d *mongoPostDocument) toModel() *models.BlogPost {
	return &models.BlogPost{
		ID:      d.ID.Hex(),
		Title:   d.Title,
		Content: d.Content,
		Author: models.Author{
			FirstName: d.Author.FirstName,
			LastName:  d.Author.LastName,
		},
		Created: d.Created.UTC(),
	}
}
