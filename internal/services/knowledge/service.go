package knowledge

import (
	"github.com/contactiq/insight-service/internal/domain/models"
	"github.com/contactiq/insight-service/internal/services/intent"
)

// Stats summarizes the knowledge catalog.
type Stats struct {
	Documents  int      `json:"documents"`
	Topics     int      `json:"topics"`
	Categories []string `json:"categories"`
}

// Service answers knowledge queries over the static catalog.
type Service struct {
	classifier *intent.Classifier
	ranker     *Ranker
}

// NewService creates a knowledge service.
func NewService(classifier *intent.Classifier, ranker *Ranker) *Service {
	return &Service{
		classifier: classifier,
		ranker:     ranker,
	}
}

// Search classifies the query, gathers the topic's candidate cards and
// ranks them. topK bounds the result; values outside [1,4] fall back to
// the ranker's own display cap.
func (s *Service) Search(query string, topK int) []models.KnowledgeCard {
	result := s.classifier.Classify(query, nil)
	topic := result.Topic
	if topic == "" {
		topic = s.classifier.DetectTopic(query, nil)
	}

	candidates := CandidatesForTopic(topic)
	ranked := s.ranker.Rank(candidates, topic, result.Label, query)

	if topK > 0 && topK < len(ranked) {
		ranked = ranked[:topK]
	}
	return ranked
}

// RankForConversation ranks candidates for a live conversation turn,
// using the already-computed topic and intent.
func (s *Service) RankForConversation(topic, intentLabel, message string) []models.KnowledgeCard {
	candidates := CandidatesForTopic(topic)
	return s.ranker.Rank(candidates, topic, intentLabel, message)
}

// GetStats returns catalog statistics.
func (s *Service) GetStats() Stats {
	cards := AllCards()
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, c := range cards {
		if _, ok := seen[c.Category]; ok {
			continue
		}
		seen[c.Category] = struct{}{}
		categories = append(categories, c.Category)
	}
	return Stats{
		Documents:  len(cards),
		Topics:     len(catalogTopics()),
		Categories: categories,
	}
}

// GetDocuments returns every card in the catalog.
func (s *Service) GetDocuments() []models.KnowledgeCard {
	return AllCards()
}

// LoadSamples reports the size of the built-in sample set. The catalog
// is compiled in, so loading is a no-op that exists for parity with the
// demo UI's seeding button.
func (s *Service) LoadSamples() int {
	return len(AllCards())
}
