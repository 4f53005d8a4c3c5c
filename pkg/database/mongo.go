package database

import (
	"context"
	"time"

	"github.com/alimgiray/blogposts/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const (
	mongoConnectTimeout = 10 * time.Second
	mongoPingTimeout    = 2 * time.Second
)

// OpenMongo connects to MongoDB at uri and verifies the connection with a ping.
func OpenMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetWriteConcern(writeconcern.Journaled())

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, mongoPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("MongoDB connected")
	return client, nil
}

// CloseMongo disconnects the client, waiting at most timeout.
func CloseMongo(client *mongo.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return client.Disconnect(ctx)
}
