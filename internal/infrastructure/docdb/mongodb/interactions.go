package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/contactiq/insight-service/internal/domain/models"
)

// InteractionsCollectionName is the name of the interactions collection.
const InteractionsCollectionName = "customer_interactions"

// InteractionsCollection implements docdb.InteractionsCollection for MongoDB.
type InteractionsCollection struct {
	collection *mongo.Collection
}

// NewInteractionsCollection creates a new interactions collection wrapper.
func NewInteractionsCollection(db *mongo.Database) *InteractionsCollection {
	return &InteractionsCollection{
		collection: db.Collection(InteractionsCollectionName),
	}
}

// Add inserts a new customer interaction.
func (c *InteractionsCollection) Add(ctx context.Context, interaction *models.CustomerInteraction) error {
	if interaction.ID == "" {
		return fmt.Errorf("interaction ID is required")
	}
	if interaction.CustomerID == "" {
		return fmt.Errorf("customer ID is required")
	}

	if _, err := c.collection.InsertOne(ctx, interaction); err != nil {
		return fmt.Errorf("failed to insert interaction: %w", err)
	}
	return nil
}

// AddMany inserts a batch of customer interactions.
func (c *InteractionsCollection) AddMany(ctx context.Context, interactions []*models.CustomerInteraction) error {
	if len(interactions) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(interactions))
	for _, interaction := range interactions {
		if interaction.ID == "" {
			return fmt.Errorf("interaction ID is required")
		}
		docs = append(docs, interaction)
	}

	if _, err := c.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert interactions: %w", err)
	}
	return nil
}

// ListByCustomer returns interactions for a customer at or after the given
// time, ordered by occurredAt ascending.
func (c *InteractionsCollection) ListByCustomer(ctx context.Context, customerID string, since time.Time) ([]models.CustomerInteraction, error) {
	filter := bson.M{
		"customerId": customerID,
		"occurredAt": bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.D{{Key: "occurredAt", Value: 1}})

	cursor, err := c.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	defer cursor.Close(ctx)

	var interactions []models.CustomerInteraction
	if err := cursor.All(ctx, &interactions); err != nil {
		return nil, fmt.Errorf("failed to decode interactions: %w", err)
	}
	return interactions, nil
}

// CountByCustomer returns the number of stored interactions for a customer.
func (c *InteractionsCollection) CountByCustomer(ctx context.Context, customerID string) (int64, error) {
	count, err := c.collection.CountDocuments(ctx, bson.M{"customerId": customerID})
	if err != nil {
		return 0, fmt.Errorf("failed to count interactions: %w", err)
	}
	return count, nil
}

// DeleteByCustomer removes all interactions for a customer.
func (c *InteractionsCollection) DeleteByCustomer(ctx context.Context, customerID string) (int64, error) {
	result, err := c.collection.DeleteMany(ctx, bson.M{"customerId": customerID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete interactions: %w", err)
	}
	return result.DeletedCount, nil
}

// EnsureIndexes creates the customerId+occurredAt index.
func (c *InteractionsCollection) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: "customerId", Value: 1},
			{Key: "occurredAt", Value: -1},
		},
	}
	if _, err := c.collection.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("failed to create interactions index: %w", err)
	}
	return nil
}
