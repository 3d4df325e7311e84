// Package insight assembles the per-message analysis consumed by the
// agent-assist display surfaces.
package insight

import (
	"github.com/contactiq/insight-service/internal/domain/models"
	"github.com/contactiq/insight-service/internal/services/intent"
	"github.com/contactiq/insight-service/internal/services/knowledge"
	"github.com/contactiq/insight-service/internal/services/sentiment"
)

// Result is the assembled analysis for one customer message.
type Result struct {
	Sentiment models.SentimentResult `json:"sentiment"`
	Intent    models.IntentResult    `json:"intent"`
	Cards     []models.KnowledgeCard `json:"cards"`
}

// Service runs the sentiment and intent analyzers and feeds their
// outputs into the knowledge ranker. Stateless: the rolling sentiment
// history rides in and out with each call.
type Service struct {
	analyzer   *sentiment.Analyzer
	classifier *intent.Classifier
	knowledge  *knowledge.Service
}

// NewService creates a new insight service.
func NewService(analyzer *sentiment.Analyzer, classifier *intent.Classifier, knowledgeService *knowledge.Service) *Service {
	return &Service{
		analyzer:   analyzer,
		classifier: classifier,
		knowledge:  knowledgeService,
	}
}

// Analyze scores one message. Sentiment and intent are independent; the
// knowledge cards depend on the detected intent and topic.
func (s *Service) Analyze(message string, conversationHistory []string, sentimentHistory []models.SentimentReading, messageIndex int) Result {
	sentimentResult := s.analyzer.Analyze(message, conversationHistory, sentimentHistory, messageIndex)
	intentResult := s.classifier.Classify(message, conversationHistory)
	cards := s.knowledge.RankForConversation(intentResult.Topic, intentResult.Label, message)

	return Result{
		Sentiment: sentimentResult,
		Intent:    intentResult,
		Cards:     cards,
	}
}
