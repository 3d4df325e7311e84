package models

import "time"

// CustomerInteraction is one historical touchpoint for a customer,
// stored in the sentiment-history collection.
type CustomerInteraction struct {
	ID         string         `json:"id" bson:"_id"`
	CustomerID string         `json:"customerId" bson:"customerId"`
	Channel    string         `json:"channel" bson:"channel"`
	Sentiment  SentimentValue `json:"sentiment" bson:"sentiment"`
	Confidence int            `json:"confidence" bson:"confidence"`
	Summary    string         `json:"summary" bson:"summary"`
	OccurredAt time.Time      `json:"occurredAt" bson:"occurredAt"`
}

// SentimentSummary aggregates a customer's interactions over a window.
type SentimentSummary struct {
	Total         int            `json:"total"`
	Positive      int            `json:"positive"`
	Neutral       int            `json:"neutral"`
	Negative      int            `json:"negative"`
	AvgConfidence int            `json:"avgConfidence"`
	Trend         SentimentTrend `json:"trend"`
}

// CustomerSentimentHistory is the payload served by the sentiment-history
// endpoint: the raw interactions plus the computed summary.
type CustomerSentimentHistory struct {
	CustomerID   string                `json:"customerId"`
	Days         int                   `json:"days"`
	Interactions []CustomerInteraction `json:"interactions"`
	Summary      SentimentSummary      `json:"summary"`
}
