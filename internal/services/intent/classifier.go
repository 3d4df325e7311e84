// Package intent classifies messages into a fixed catalog of
// contact-center intents via weighted keyword overlap.
package intent

import (
	"strings"

	"github.com/contactiq/insight-service/internal/domain/models"
)

const (
	// currentMessageWeight scores keyword hits in the message itself.
	currentMessageWeight = 2
	// historyWeight scores keyword hits in recent prior messages.
	historyWeight = 1
	// priorityWeight scales each category's fixed priority bonus.
	priorityWeight = 0.5
	// followUpBonus is added to already-signalled categories when the
	// message reads as a follow-up: follow-ups inherit the prior topic
	// rather than being judged on their own weak signal.
	followUpBonus = 1
	// historyDepth is how many recent history messages are scanned.
	historyDepth = 3
)

// Classifier scores messages against the intent catalog.
type Classifier struct{}

// NewClassifier creates a new intent classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the best-scoring intent for the message, annotated
// with the detected product-area topic when one applies.
func (c *Classifier) Classify(message string, history []string) models.IntentResult {
	lower := strings.ToLower(message)

	recent := history
	if len(recent) > historyDepth {
		recent = recent[len(recent)-historyDepth:]
	}
	recentLower := make([]string, len(recent))
	for i, h := range recent {
		recentLower[i] = strings.ToLower(h)
	}

	followUp := isFollowUp(lower)

	best := models.IntentResult{Label: LabelGeneral}
	bestScore := 0.0

	for _, cat := range categories {
		hits := 0.0
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				hits += currentMessageWeight
			}
			for _, h := range recentLower {
				if strings.Contains(h, kw) {
					hits += historyWeight
				}
			}
		}
		if hits == 0 {
			continue
		}

		// The priority bonus only separates categories that already
		// have keyword signal.
		score := hits + priorityWeight*cat.priority
		if followUp {
			score += followUpBonus
		}

		// Ties keep the first category encountered.
		if score > bestScore {
			bestScore = score
			best.Label = cat.label
		}
	}

	if best.Label != LabelEscalation {
		best.Topic = detectTopic(lower, recentLower)
	}

	return best
}

// DetectTopic returns the product-area topic for a message, or "" when
// none of the topic keywords match.
func (c *Classifier) DetectTopic(message string, history []string) string {
	recentLower := make([]string, len(history))
	for i, h := range history {
		recentLower[i] = strings.ToLower(h)
	}
	return detectTopic(strings.ToLower(message), recentLower)
}

// isFollowUp reports whether the message contains referential words
// pointing back at a prior turn.
func isFollowUp(lower string) bool {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(lower) {
		words[strings.Trim(w, ".,!?;:'\"")] = struct{}{}
	}
	for _, ref := range referentialWords {
		if _, ok := words[ref]; ok {
			return true
		}
	}
	return false
}

// detectTopic scans the message first, then history, and returns the
// first matching product-area topic.
func detectTopic(lower string, recentLower []string) string {
	texts := append([]string{lower}, recentLower...)
	for _, text := range texts {
		for _, entry := range topics {
			for _, kw := range entry.keywords {
				if strings.Contains(text, kw) {
					return entry.topic
				}
			}
		}
	}
	return ""
}
