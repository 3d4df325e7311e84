// Package docdb defines the document database interface.
package docdb

import (
	"context"
	"time"

	"github.com/contactiq/insight-service/internal/domain/models"
)

// Type represents the type of document database.
type Type string

const (
	// TypeMongoDB represents a MongoDB database.
	TypeMongoDB Type = "mongodb"
)

// InteractionsCollection defines operations on the customer
// sentiment-history collection.
type InteractionsCollection interface {
	// Add inserts a new customer interaction.
	Add(ctx context.Context, interaction *models.CustomerInteraction) error

	// AddMany inserts a batch of customer interactions.
	AddMany(ctx context.Context, interactions []*models.CustomerInteraction) error

	// ListByCustomer returns all interactions for a customer that occurred
	// at or after the given time, ordered by occurredAt ascending.
	ListByCustomer(ctx context.Context, customerID string, since time.Time) ([]models.CustomerInteraction, error)

	// CountByCustomer returns the number of stored interactions for a customer.
	CountByCustomer(ctx context.Context, customerID string) (int64, error)

	// DeleteByCustomer removes all interactions for a customer.
	// Returns the number of documents deleted.
	DeleteByCustomer(ctx context.Context, customerID string) (int64, error)

	// EnsureIndexes creates the indexes the collection needs.
	EnsureIndexes(ctx context.Context) error
}

// Client defines the interface for document database clients.
type Client interface {
	// Interactions returns the customer-interactions collection.
	Interactions() InteractionsCollection

	// Ping checks if the database connection is alive.
	Ping(ctx context.Context) error

	// EnsureIndexes creates indexes on all collections.
	EnsureIndexes(ctx context.Context) error

	// Close closes the database connection.
	Close(ctx context.Context) error
}
