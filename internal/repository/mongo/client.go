package mongo

import (
	"context"
	"fmt"

	"github.com/rmaulana/llama-chat/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client wraps the MongoDB client and the application database
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewClient connects to MongoDB and verifies the connection
func NewClient(ctx context.Context, cfg config.MongoConfig) (*Client, error) {
	clientOpts := options.Client().ApplyURI(cfg.URI)
	if cfg.Timeout > 0 {
		clientOpts.SetConnectTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Ping verifies the connection is still alive
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

// Close disconnects from MongoDB
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// Database returns the application database handle
func (c *Client) Database() *mongo.Database {
	return c.db
}
