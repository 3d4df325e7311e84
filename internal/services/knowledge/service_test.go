package knowledge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactiq/insight-service/internal/services/intent"
	"github.com/contactiq/insight-service/internal/services/knowledge"
)

func newService() *knowledge.Service {
	return knowledge.NewService(intent.NewClassifier(), knowledge.NewRanker(knowledge.DedupKeepFirst))
}

func TestSearch_TopicCandidatesRankedFirst(t *testing.T) {
	// Arrange
	service := newService()

	// Act
	results := service.Search("the queue hold time is too long", 0)

	// Assert
	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 4)
	assert.Equal(t, "Queue Management", results[0].Category)
}

func TestSearch_TopKTruncates(t *testing.T) {
	// Arrange
	service := newService()

	// Act
	results := service.Search("the queue hold time is too long", 2)

	// Assert
	assert.Len(t, results, 2)
}

func TestSearch_NoTopicFallsBackToGeneralCards(t *testing.T) {
	// Arrange
	service := newService()

	// Act
	results := service.Search("good morning", 0)

	// Assert
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.NotEmpty(t, r.Title)
	}
}

func TestGetStats(t *testing.T) {
	// Arrange
	service := newService()

	// Act
	stats := service.GetStats()

	// Assert
	assert.Equal(t, len(service.GetDocuments()), stats.Documents)
	assert.Equal(t, 5, stats.Topics)
	assert.NotEmpty(t, stats.Categories)
}

func TestLoadSamples_ReportsCatalogSize(t *testing.T) {
	// Arrange
	service := newService()

	// Act
	loaded := service.LoadSamples()

	// Assert
	assert.Equal(t, len(service.GetDocuments()), loaded)
	assert.Greater(t, loaded, 0)
}
