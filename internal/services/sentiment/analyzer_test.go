package sentiment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactiq/insight-service/internal/domain/models"
	"github.com/contactiq/insight-service/internal/services/sentiment"
)

// fixedClock returns a clock pinned to a known instant.
func fixedClock() func() time.Time {
	instant := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	return func() time.Time { return instant }
}

func TestAnalyze_EmptyMessage_NeutralDefaults(t *testing.T) {
	// Arrange
	analyzer := sentiment.NewAnalyzer()

	// Act
	result := analyzer.Analyze("", nil, nil, 0)

	// Assert
	assert.Equal(t, models.SentimentNeutral, result.Value)
	assert.Equal(t, 50, result.Confidence)
	assert.Equal(t, models.UrgencyLow, result.Urgency)
	assert.Equal(t, models.TrendStable, result.Trend)
	assert.Empty(t, result.Indicators)
	assert.Nil(t, result.EscalationAlert)
	require.Len(t, result.History, 1)
}

func TestAnalyze_QuestionOnly_NeutralFortyFive(t *testing.T) {
	// Arrange
	analyzer := sentiment.NewAnalyzer()

	// Act
	result := analyzer.Analyze("What are your business hours?", nil, nil, 0)

	// Assert
	assert.Equal(t, models.SentimentNeutral, result.Value)
	assert.Equal(t, 45, result.Confidence)
	assert.Equal(t, models.UrgencyLow, result.Urgency)
}

func TestAnalyze_QuestionWithNegativeKeyword_NotNeutral(t *testing.T) {
	// Arrange - the question override only applies without keyword signal
	analyzer := sentiment.NewAnalyzer()

	// Act
	result := analyzer.Analyze("Why is my account still broken?", nil, nil, 0)

	// Assert
	assert.Equal(t, models.SentimentNegative, result.Value)
}

func TestAnalyze_StrongNegativeWithEmphasis(t *testing.T) {
	// Arrange
	analyzer := sentiment.NewAnalyzer()

	// Act
	result := analyzer.Analyze("I'm VERY frustrated, this is ridiculous!!!", nil, nil, 2)

	// Assert
	assert.Equal(t, models.SentimentNegative, result.Value)
	assert.Equal(t, 95, result.Confidence)
	assert.Equal(t, models.UrgencyCritical, result.Urgency)
	assert.Contains(t, result.Indicators, "this is ridiculous")
	assert.Contains(t, result.Indicators, "frustrated")
	assert.Contains(t, result.Indicators, "emphasis")
	assert.Contains(t, result.Indicators, "excessive punctuation")

	require.NotNil(t, result.EscalationAlert)
	assert.Equal(t, models.AlertCritical, result.EscalationAlert.Type)
	assert.NotEmpty(t, result.EscalationAlert.SuggestedAction)
}

func TestAnalyze_Positive(t *testing.T) {
	// Arrange
	analyzer := sentiment.NewAnalyzer()

	// Act
	result := analyzer.Analyze("Thank you so much, that's great!", nil, nil, 1)

	// Assert
	assert.Equal(t, models.SentimentPositive, result.Value)
	assert.Equal(t, models.UrgencyLow, result.Urgency)
	assert.Nil(t, result.EscalationAlert)
	assert.Contains(t, result.Indicators, "thank you")
}

func TestAnalyze_AllCapsRaisedVoice(t *testing.T) {
	// Arrange
	analyzer := sentiment.NewAnalyzer()

	// Act
	result := analyzer.Analyze("THIS IS NOT WORKING AT ALL", nil, nil, 0)

	// Assert
	assert.Equal(t, models.SentimentNegative, result.Value)
	assert.Contains(t, result.Indicators, "raised voice")
	assert.Equal(t, models.UrgencyMedium, result.Urgency)
}

func TestAnalyze_ShortMessageDampensConfidence(t *testing.T) {
	// Arrange - "broken" alone scores 2, raw confidence 76, dampened by 0.7
	analyzer := sentiment.NewAnalyzer()

	// Act
	result := analyzer.Analyze("broken", nil, nil, 0)

	// Assert
	assert.Equal(t, models.SentimentNegative, result.Value)
	assert.Equal(t, 53, result.Confidence)
}

func TestAnalyze_MixedSignalsDampenConfidence(t *testing.T) {
	// Arrange - positive and negative signal in one message
	analyzer := sentiment.NewAnalyzer()

	// Act
	result := analyzer.Analyze("thanks, but this is terrible", nil, nil, 0)

	// Assert
	assert.Equal(t, models.SentimentNegative, result.Value)
	assert.Equal(t, 67, result.Confidence)
}

func TestAnalyze_HistoryOnlyContext_ClampsToFloor(t *testing.T) {
	// Arrange - no indicators surface for history-only matches, so both
	// the short-message and no-indicator dampeners apply
	analyzer := sentiment.NewAnalyzer()

	// Act
	result := analyzer.Analyze("okay", []string{"the dashboard is not working"}, nil, 0)

	// Assert
	assert.Equal(t, models.SentimentNegative, result.Value)
	assert.Equal(t, 30, result.Confidence)
	assert.Empty(t, result.Indicators)
}

func TestAnalyze_ConfidenceStaysInRange(t *testing.T) {
	analyzer := sentiment.NewAnalyzer()

	messages := []string{
		"",
		"hi",
		"broken",
		"this is the worst, terrible, horrible, unacceptable service ever!!!",
		"thank you, great, perfect, excellent, wonderful",
		"I guess it's fine, whatever",
		"URGENT: production is down and we are losing money RIGHT NOW!!!",
		"can you help?",
	}

	for _, msg := range messages {
		result := analyzer.Analyze(msg, nil, nil, 0)
		assert.GreaterOrEqual(t, result.Confidence, 30, "message: %q", msg)
		assert.LessOrEqual(t, result.Confidence, 95, "message: %q", msg)
	}
}

func TestAnalyze_LoyaltyMentionBumpsUrgency(t *testing.T) {
	// Arrange - loyalty alone scores below the medium threshold
	analyzer := sentiment.NewAnalyzer()

	// Act
	result := analyzer.Analyze("I have been a loyal customer for years", nil, nil, 0)

	// Assert
	assert.Equal(t, models.SentimentNegative, result.Value)
	assert.Equal(t, models.UrgencyMedium, result.Urgency)
	assert.Contains(t, result.Indicators, "loyalty mention")
}

func TestAnalyze_BusinessImpactBumpsUrgency(t *testing.T) {
	// Arrange
	analyzer := sentiment.NewAnalyzer()

	// Act
	result := analyzer.Analyze("This outage is costing us money and it's not working", nil, nil, 0)

	// Assert
	assert.Equal(t, models.SentimentNegative, result.Value)
	assert.Contains(t, result.Indicators, "business impact")
	assert.Equal(t, models.UrgencyCritical, result.Urgency)
}

func TestAnalyze_TrendDeclining(t *testing.T) {
	// Arrange - three positive readings, then a negative message
	analyzer := sentiment.NewAnalyzer()
	history := []models.SentimentReading{
		{Value: models.SentimentPositive, Confidence: 80, MessageIndex: 0},
		{Value: models.SentimentPositive, Confidence: 82, MessageIndex: 1},
		{Value: models.SentimentPositive, Confidence: 78, MessageIndex: 2},
	}

	// Act
	result := analyzer.Analyze("this is terrible", nil, history, 3)

	// Assert
	assert.Equal(t, models.SentimentNegative, result.Value)
	assert.Equal(t, models.TrendDeclining, result.Trend)
	require.NotNil(t, result.EscalationAlert)
	assert.Equal(t, models.AlertWarning, result.EscalationAlert.Type)
}

func TestAnalyze_TrendImproving(t *testing.T) {
	// Arrange
	analyzer := sentiment.NewAnalyzer()
	history := []models.SentimentReading{
		{Value: models.SentimentNegative, Confidence: 70, MessageIndex: 0},
		{Value: models.SentimentNegative, Confidence: 75, MessageIndex: 1},
	}

	// Act
	result := analyzer.Analyze("thank you, that resolved everything", nil, history, 2)

	// Assert
	assert.Equal(t, models.SentimentPositive, result.Value)
	assert.Equal(t, models.TrendImproving, result.Trend)
}

func TestAnalyze_SinglePriorReading_TrendStable(t *testing.T) {
	// Arrange
	analyzer := sentiment.NewAnalyzer()
	history := []models.SentimentReading{
		{Value: models.SentimentNegative, Confidence: 70, MessageIndex: 0},
	}

	// Act
	result := analyzer.Analyze("thank you so much", nil, history, 1)

	// Assert
	assert.Equal(t, models.TrendStable, result.Trend)
}

func TestAnalyze_HistoryCapped(t *testing.T) {
	// Arrange
	analyzer := sentiment.NewAnalyzer()

	// Act - thread the rolling history through eight calls
	var history []models.SentimentReading
	for i := 0; i < 8; i++ {
		result := analyzer.Analyze("I'm frustrated", nil, history, i)
		history = result.History
	}

	// Assert - only the newest readings are retained
	require.Len(t, history, models.MaxSentimentHistory)
	assert.Equal(t, 3, history[0].MessageIndex)
	assert.Equal(t, 7, history[len(history)-1].MessageIndex)
}

func TestAnalyze_DoesNotMutateCallerHistory(t *testing.T) {
	// Arrange
	analyzer := sentiment.NewAnalyzer()
	history := []models.SentimentReading{
		{Value: models.SentimentNeutral, Confidence: 50, MessageIndex: 0},
		{Value: models.SentimentNeutral, Confidence: 50, MessageIndex: 1},
	}
	original := make([]models.SentimentReading, len(history))
	copy(original, history)

	// Act
	_ = analyzer.Analyze("this is terrible", nil, history, 2)

	// Assert
	assert.Equal(t, original, history)
}

func TestAnalyze_DeterministicWithFixedClock(t *testing.T) {
	// Arrange
	analyzer := sentiment.NewAnalyzerWithClock(fixedClock())
	history := []models.SentimentReading{
		{Value: models.SentimentNegative, Confidence: 70, MessageIndex: 0},
	}

	// Act
	first := analyzer.Analyze("I'm fed up with this broken dashboard!!!", []string{"it crashed yesterday"}, history, 1)
	second := analyzer.Analyze("I'm fed up with this broken dashboard!!!", []string{"it crashed yesterday"}, history, 1)

	// Assert
	assert.Equal(t, first, second)
}

func TestAnalyze_IndicatorsDedupedAndBounded(t *testing.T) {
	// Arrange - pile on enough distinct signals to exceed the display cap
	analyzer := sentiment.NewAnalyzer()

	// Act
	result := analyzer.Analyze(
		"This is ridiculous and unacceptable, I'm SO FURIOUS about this TERRIBLE broken mess!!! Why is it STILL not working?!",
		nil, nil, 0)

	// Assert
	assert.LessOrEqual(t, len(result.Indicators), 5)
	seen := make(map[string]int)
	for _, ind := range result.Indicators {
		seen[ind]++
	}
	for label, count := range seen {
		assert.Equal(t, 1, count, "indicator %q repeated", label)
	}
}

func TestAnalyze_DiminisherLowersIntensity(t *testing.T) {
	// Arrange
	analyzer := sentiment.NewAnalyzer()

	// Act
	plain := analyzer.Analyze("I'm disappointed with the service", nil, nil, 0)
	softened := analyzer.Analyze("I'm a little disappointed with the service", nil, nil, 0)

	// Assert - the diminisher lowers the score and with it the confidence
	assert.Equal(t, models.SentimentNegative, plain.Value)
	assert.Equal(t, models.SentimentNegative, softened.Value)
	assert.Less(t, softened.Confidence, plain.Confidence)
	assert.NotContains(t, softened.Indicators, "emphasis")
}
