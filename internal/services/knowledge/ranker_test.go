package knowledge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactiq/insight-service/internal/domain/models"
	"github.com/contactiq/insight-service/internal/services/knowledge"
)

func TestRank_DedupKeepFirst(t *testing.T) {
	// Arrange - near-identical titles collide; keep-first keeps the
	// earlier card even when the later one scores higher
	ranker := knowledge.NewRanker(knowledge.DedupKeepFirst)
	cards := []models.KnowledgeCard{
		{Title: "Configure Queue Settings", Category: "Queue Management", Relevance: 0.60},
		{Title: "Configure Queue Setting", Category: "Queue Management", Relevance: 0.90},
	}

	// Act
	ranked := ranker.Rank(cards, "", "", "")

	// Assert
	require.Len(t, ranked, 1)
	assert.Equal(t, "Configure Queue Settings", ranked[0].Title)
}

func TestRank_DedupKeepHighest(t *testing.T) {
	// Arrange
	ranker := knowledge.NewRanker(knowledge.DedupKeepHighest)
	cards := []models.KnowledgeCard{
		{Title: "Configure Queue Settings", Category: "Queue Management", Relevance: 0.60},
		{Title: "Configure Queue Setting", Category: "Queue Management", Relevance: 0.90},
	}

	// Act
	ranked := ranker.Rank(cards, "", "", "")

	// Assert
	require.Len(t, ranked, 1)
	assert.Equal(t, "Configure Queue Setting", ranked[0].Title)
}

func TestRank_DistinctTitlesSurvive(t *testing.T) {
	// Arrange
	ranker := knowledge.NewRanker(knowledge.DedupKeepFirst)
	cards := []models.KnowledgeCard{
		{Title: "Configure Queue Settings", Category: "Queue Management", Relevance: 0.72},
		{Title: "Reduce Customer Hold Times", Category: "Queue Management", Relevance: 0.65},
	}

	// Act
	ranked := ranker.Rank(cards, "", "", "")

	// Assert
	assert.Len(t, ranked, 2)
}

func TestRank_TopicAndIntentBoosts(t *testing.T) {
	// Arrange - category matches both the topic and the intent's wanted
	// category, so both boosts apply
	ranker := knowledge.NewRanker(knowledge.DedupKeepFirst)
	cards := []models.KnowledgeCard{
		{Title: "Understand Your Invoice", Category: "billing", Relevance: 0.50},
	}

	// Act
	ranked := ranker.Rank(cards, "Billing & Plans", "Billing Inquiry", "")

	// Assert
	require.Len(t, ranked, 1)
	assert.InDelta(t, 0.68, ranked[0].Relevance, 1e-9)
}

func TestRank_KeywordBoostSkipsShortWords(t *testing.T) {
	// Arrange - "queue" (5 chars) boosts, "the" (3 chars) does not
	ranker := knowledge.NewRanker(knowledge.DedupKeepFirst)
	cards := []models.KnowledgeCard{
		{Title: "Configure Queue Settings", Category: "Queue Management", Relevance: 0.50},
	}

	// Act
	ranked := ranker.Rank(cards, "", "", "the queue")

	// Assert
	require.Len(t, ranked, 1)
	assert.InDelta(t, 0.55, ranked[0].Relevance, 1e-9)
}

func TestRank_RelevanceCapped(t *testing.T) {
	// Arrange
	ranker := knowledge.NewRanker(knowledge.DedupKeepFirst)
	cards := []models.KnowledgeCard{
		{Title: "Understand Your Invoice", Category: "billing", Relevance: 0.95},
	}

	// Act
	ranked := ranker.Rank(cards, "Billing & Plans", "Billing Inquiry", "invoice charges")

	// Assert
	require.Len(t, ranked, 1)
	assert.InDelta(t, 0.99, ranked[0].Relevance, 1e-9)
}

func TestRank_SortedAndBounded(t *testing.T) {
	// Arrange - six distinct cards, only four survive
	ranker := knowledge.NewRanker(knowledge.DedupKeepFirst)
	cards := []models.KnowledgeCard{
		{Title: "Alpha Guide", Category: "product", Relevance: 0.40},
		{Title: "Beta Walkthrough", Category: "product", Relevance: 0.80},
		{Title: "Gamma Reference", Category: "product", Relevance: 0.60},
		{Title: "Delta Overview", Category: "product", Relevance: 0.70},
		{Title: "Epsilon Primer", Category: "product", Relevance: 0.50},
		{Title: "Zeta Handbook", Category: "product", Relevance: 0.30},
	}

	// Act
	ranked := ranker.Rank(cards, "", "", "")

	// Assert
	require.Len(t, ranked, 4)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Relevance, ranked[i].Relevance)
	}
	assert.Equal(t, "Beta Walkthrough", ranked[0].Title)
}

func TestRank_EmptyInput(t *testing.T) {
	// Arrange
	ranker := knowledge.NewRanker(knowledge.DedupKeepFirst)

	// Act
	ranked := ranker.Rank(nil, "Queue Management", "Technical Support", "queue broken")

	// Assert
	assert.Empty(t, ranked)
}

func TestNewRanker_EmptyPolicyDefaultsToKeepFirst(t *testing.T) {
	// Arrange
	ranker := knowledge.NewRanker("")
	cards := []models.KnowledgeCard{
		{Title: "Configure Queue Settings", Category: "Queue Management", Relevance: 0.60},
		{Title: "Configure Queue Setting", Category: "Queue Management", Relevance: 0.90},
	}

	// Act
	ranked := ranker.Rank(cards, "", "", "")

	// Assert
	require.Len(t, ranked, 1)
	assert.Equal(t, "Configure Queue Settings", ranked[0].Title)
}
