// Package history serves customer sentiment history for the historical
// visualization. The data is a seeded mock set, unrelated to the live
// scoring engine.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contactiq/insight-service/internal/core/docdb"
	domainerrors "github.com/contactiq/insight-service/internal/domain/errors"
	"github.com/contactiq/insight-service/internal/domain/models"
)

// DefaultDays is the lookback window when the caller doesn't specify one.
const DefaultDays = 30

// Service reads and seeds the sentiment-history collection.
type Service struct {
	docDBClient docdb.Client
	now         func() time.Time
}

// NewService creates a new history service.
func NewService(docDBClient docdb.Client) (*Service, error) {
	if docDBClient == nil {
		return nil, fmt.Errorf("docdb client is required")
	}
	return &Service{
		docDBClient: docDBClient,
		now:         time.Now,
	}, nil
}

// GetCustomerHistory returns the customer's interactions within the
// window plus a computed summary.
func (s *Service) GetCustomerHistory(ctx context.Context, customerID string, days int) (*models.CustomerSentimentHistory, error) {
	if customerID == "" {
		return nil, domainerrors.NewValidationError("customer ID is required", "")
	}
	if days <= 0 {
		days = DefaultDays
	}

	since := s.now().UTC().AddDate(0, 0, -days)
	interactions, err := s.docDBClient.Interactions().ListByCustomer(ctx, customerID, since)
	if err != nil {
		return nil, domainerrors.NewInternalError("failed to load customer history", err)
	}
	if len(interactions) == 0 {
		return nil, domainerrors.NewNotFoundError("customer history", customerID)
	}

	return &models.CustomerSentimentHistory{
		CustomerID:   customerID,
		Days:         days,
		Interactions: interactions,
		Summary:      summarize(interactions),
	}, nil
}

// SeedSamples inserts a deterministic mock interaction history for the
// demo customer, replacing whatever was there.
func (s *Service) SeedSamples(ctx context.Context, customerID string) (int, error) {
	if customerID == "" {
		return 0, domainerrors.NewValidationError("customer ID is required", "")
	}

	collection := s.docDBClient.Interactions()
	if _, err := collection.DeleteByCustomer(ctx, customerID); err != nil {
		return 0, domainerrors.NewInternalError("failed to clear customer history", err)
	}

	samples := sampleInteractions(customerID, s.now().UTC())
	if err := collection.AddMany(ctx, samples); err != nil {
		return 0, domainerrors.NewInternalError("failed to seed customer history", err)
	}
	return len(samples), nil
}

// summarize computes per-sentiment counts, average confidence and the
// dominant trend over the window.
func summarize(interactions []models.CustomerInteraction) models.SentimentSummary {
	summary := models.SentimentSummary{
		Total: len(interactions),
		Trend: models.TrendStable,
	}

	confidenceSum := 0
	for _, i := range interactions {
		confidenceSum += i.Confidence
		switch i.Sentiment {
		case models.SentimentPositive:
			summary.Positive++
		case models.SentimentNegative:
			summary.Negative++
		default:
			summary.Neutral++
		}
	}
	summary.AvgConfidence = confidenceSum / len(interactions)

	// Trend: compare the polarity of the last interaction against the
	// mean of the preceding ones, mirroring the live analyzer's window.
	if len(interactions) >= 3 {
		var sum float64
		preceding := interactions[:len(interactions)-1]
		for _, i := range preceding {
			sum += i.Sentiment.Polarity()
		}
		mean := sum / float64(len(preceding))
		last := interactions[len(interactions)-1].Sentiment.Polarity()
		switch {
		case last > mean+0.3:
			summary.Trend = models.TrendImproving
		case last < mean-0.3:
			summary.Trend = models.TrendDeclining
		}
	}

	return summary
}

// sampleInteractions builds the fixed demo history, spread over the
// last three weeks.
func sampleInteractions(customerID string, now time.Time) []*models.CustomerInteraction {
	fixtures := []struct {
		daysAgo    int
		channel    string
		sentiment  models.SentimentValue
		confidence int
		summary    string
	}{
		{21, "phone", models.SentimentPositive, 78, "Onboarding call, setup completed"},
		{17, "chat", models.SentimentNeutral, 55, "Asked about invoice line items"},
		{12, "chat", models.SentimentNegative, 71, "Reported dropped calls in queue"},
		{9, "phone", models.SentimentNegative, 82, "Follow-up on unresolved queue issue"},
		{5, "email", models.SentimentNeutral, 50, "Requested plan comparison"},
		{2, "chat", models.SentimentNegative, 75, "Threatened to cancel over billing"},
	}

	interactions := make([]*models.CustomerInteraction, 0, len(fixtures))
	for _, f := range fixtures {
		interactions = append(interactions, &models.CustomerInteraction{
			ID:         "int_" + uuid.New().String(),
			CustomerID: customerID,
			Channel:    f.channel,
			Sentiment:  f.sentiment,
			Confidence: f.confidence,
			Summary:    f.summary,
			OccurredAt: now.AddDate(0, 0, -f.daysAgo),
		})
	}
	return interactions
}
