package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactiq/insight-service/internal/domain/models"
	"github.com/contactiq/insight-service/internal/services/pii"
	"github.com/contactiq/insight-service/internal/services/routing"
)

func newAnalyzer() *routing.Analyzer {
	return routing.NewAnalyzer(pii.NewDetector())
}

func TestRoute_SimpleBankingQuery_SLM(t *testing.T) {
	// Arrange
	analyzer := newAnalyzer()

	// Act
	decision := analyzer.Route("What are the wire transfer fees?", 0)

	// Assert
	assert.Equal(t, models.TargetSLM, decision.Decision)
	assert.Equal(t, models.ComplexitySimple, decision.Complexity)
	assert.Empty(t, decision.PIIDetected)
	assert.Equal(t, 39, decision.SLMScore)
	assert.Equal(t, 6, decision.LLMScore)
	assert.Equal(t, 83, decision.Confidence)
	assert.Len(t, decision.Factors, 8)
}

func TestRoute_ComplexQueryWithPII_ForcedLLM(t *testing.T) {
	// Arrange - PII alone favors local, but complex queries carrying PII
	// still go to the larger model
	analyzer := newAnalyzer()

	// Act
	decision := analyzer.Route("My SSN is 123-45-6789, please compare the trade-offs of these plans", 0)

	// Assert
	assert.Equal(t, models.TargetLLM, decision.Decision)
	assert.Equal(t, models.ComplexityComplex, decision.Complexity)
	require.NotEmpty(t, decision.PIIDetected)
	assert.Equal(t, models.PIITypeSSN, decision.PIIDetected[0].Type)
}

func TestRoute_PIIWithoutComplexity_SLM(t *testing.T) {
	// Arrange
	analyzer := newAnalyzer()

	// Act
	decision := analyzer.Route("My SSN is 123-45-6789, what is my balance?", 0)

	// Assert
	assert.Equal(t, models.TargetSLM, decision.Decision)
	require.NotEmpty(t, decision.PIIDetected)
}

func TestRoute_ComplexAnalyticalQuery_LLM(t *testing.T) {
	// Arrange
	analyzer := newAnalyzer()

	// Act
	decision := analyzer.Route("Compare the pros and cons of these regulation compliance strategies and recommend one, assuming our audit is next month", 0)

	// Assert
	assert.Equal(t, models.TargetLLM, decision.Decision)
	assert.Equal(t, models.ComplexityComplex, decision.Complexity)
}

func TestRoute_EmptyQuery_BaselineDecision(t *testing.T) {
	// Arrange
	analyzer := newAnalyzer()

	// Act
	decision := analyzer.Route("", 0)

	// Assert - empty input degrades to baseline scores, never panics
	assert.Equal(t, models.ComplexitySimple, decision.Complexity)
	assert.Len(t, decision.Factors, 8)
	assert.NotEmpty(t, decision.Decision)
}

func TestRoute_TieGoesToSLM(t *testing.T) {
	// Arrange
	analyzer := newAnalyzer()

	// Act
	decision := analyzer.Route("What are the wire transfer fees?", 0)

	// Assert
	assert.GreaterOrEqual(t, decision.SLMScore, decision.LLMScore)
	assert.Equal(t, models.TargetSLM, decision.Decision)
}

func TestRoute_LongConversationShiftsContextFactor(t *testing.T) {
	// Arrange
	analyzer := newAnalyzer()

	// Act
	short := analyzer.Route("What is my balance?", 0)
	long := analyzer.Route("What is my balance?", 25)

	// Assert - the context factor flips toward the larger model
	shortContext := factorByName(t, short.Factors, "context window")
	longContext := factorByName(t, long.Factors, "context window")
	assert.Equal(t, models.TargetSLM, shortContext.Favors)
	assert.Equal(t, models.TargetLLM, longContext.Favors)
	assert.Greater(t, long.LLMScore, short.LLMScore)
}

func TestRoute_ConfidenceBounded(t *testing.T) {
	// Arrange
	analyzer := newAnalyzer()

	queries := []string{
		"",
		"What are the wire transfer fees?",
		"Compare and analyze the trade-offs of every plan, explain step by step",
		"something about stuff, not sure",
	}

	// Act / Assert
	for _, q := range queries {
		decision := analyzer.Route(q, 0)
		assert.GreaterOrEqual(t, decision.Confidence, 50, "query: %q", q)
		assert.LessOrEqual(t, decision.Confidence, 98, "query: %q", q)
	}
}

func factorByName(t *testing.T, factors []models.RoutingFactor, name string) models.RoutingFactor {
	t.Helper()
	for _, f := range factors {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("factor %q not found", name)
	return models.RoutingFactor{}
}
