// Package knowledge ranks and serves candidate knowledge snippets for
// display alongside a conversation.
package knowledge

import (
	"sort"
	"strings"

	"github.com/contactiq/insight-service/internal/domain/models"
)

// DedupPolicy controls which card survives a near-duplicate collision.
type DedupPolicy string

const (
	// DedupKeepFirst keeps the first-seen card on a collision. This is
	// the historical behavior and the default.
	DedupKeepFirst DedupPolicy = "keep-first"
	// DedupKeepHighest keeps the higher-relevance card on a collision.
	DedupKeepHighest DedupPolicy = "keep-highest"
)

const (
	// maxCards bounds how many cards are returned for display.
	maxCards = 4

	// similarityThreshold is the Jaccard character-set similarity above
	// which two titles count as duplicates.
	similarityThreshold = 0.8

	topicBoost      = 0.10
	intentBoost     = 0.08
	keywordBoost    = 0.05
	relevanceCeil   = 0.99
	minKeywordChars = 4
)

// intentCategories maps intent labels to the card category they favor.
var intentCategories = map[string]string{
	"Escalation Request":  "escalation",
	"Billing Inquiry":     "billing",
	"Technical Support":   "troubleshooting",
	"Account Management":  "account",
	"Product Information": "product",
}

// Ranker deduplicates and re-scores candidate cards.
type Ranker struct {
	policy DedupPolicy
}

// NewRanker creates a ranker with the given dedup policy. An empty
// policy defaults to DedupKeepFirst.
func NewRanker(policy DedupPolicy) *Ranker {
	if policy == "" {
		policy = DedupKeepFirst
	}
	return &Ranker{policy: policy}
}

// Rank boosts relevance against the detected topic/intent/message,
// removes near-duplicate titles, and returns at most four cards in
// descending relevance order.
func (r *Ranker) Rank(cards []models.KnowledgeCard, currentTopic, intentLabel, message string) []models.KnowledgeCard {
	boosted := make([]models.KnowledgeCard, len(cards))
	for i, card := range cards {
		card.Relevance = boostRelevance(card, currentTopic, intentLabel, message)
		boosted[i] = card
	}

	deduped := r.dedupe(boosted)

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Relevance > deduped[j].Relevance
	})

	if len(deduped) > maxCards {
		deduped = deduped[:maxCards]
	}
	return deduped
}

// boostRelevance applies the topic, intent-category and title-keyword
// boosts, capped at 0.99.
func boostRelevance(card models.KnowledgeCard, currentTopic, intentLabel, message string) float64 {
	relevance := card.Relevance
	category := strings.ToLower(card.Category)

	if currentTopic != "" {
		topic := strings.ToLower(currentTopic)
		if strings.Contains(category, topic) || strings.Contains(topic, category) {
			relevance += topicBoost
		}
	}

	if wanted, ok := intentCategories[intentLabel]; ok && category == wanted {
		relevance += intentBoost
	}

	titleLower := strings.ToLower(card.Title)
	for _, word := range strings.Fields(strings.ToLower(message)) {
		word = strings.Trim(word, ".,!?;:'\"")
		if len(word) < minKeywordChars {
			continue
		}
		if strings.Contains(titleLower, word) {
			relevance += keywordBoost
		}
	}

	if relevance > relevanceCeil {
		relevance = relevanceCeil
	}
	return relevance
}

// dedupe drops cards whose normalized title is near-identical to an
// already accepted one. Which side of a collision survives depends on
// the configured policy.
func (r *Ranker) dedupe(cards []models.KnowledgeCard) []models.KnowledgeCard {
	accepted := make([]models.KnowledgeCard, 0, len(cards))

	for _, card := range cards {
		norm := normalizeTitle(card.Title)
		dupIndex := -1
		for i, a := range accepted {
			if jaccardSimilarity(norm, normalizeTitle(a.Title)) > similarityThreshold {
				dupIndex = i
				break
			}
		}

		if dupIndex == -1 {
			accepted = append(accepted, card)
			continue
		}
		if r.policy == DedupKeepHighest && card.Relevance > accepted[dupIndex].Relevance {
			accepted[dupIndex] = card
		}
	}

	return accepted
}

// normalizeTitle lowercases a title and strips non-alphanumerics.
func normalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// jaccardSimilarity computes character-set Jaccard similarity between
// two normalized strings.
func jaccardSimilarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	setA := make(map[rune]struct{})
	for _, r := range a {
		setA[r] = struct{}{}
	}
	setB := make(map[rune]struct{})
	for _, r := range b {
		setB[r] = struct{}{}
	}

	intersection := 0
	for r := range setA {
		if _, ok := setB[r]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
