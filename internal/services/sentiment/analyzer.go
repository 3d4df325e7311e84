// Package sentiment implements the rule-based sentiment, urgency and
// escalation analyzer for conversation transcripts.
package sentiment

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/contactiq/insight-service/internal/domain/models"
)

const (
	// maxIndicators bounds how many matched labels are surfaced per result.
	maxIndicators = 5

	// historyContextWeight discounts keyword matches found only in prior
	// messages rather than the current one.
	historyContextWeight = 0.5

	// trendWindow is how many prior readings feed the trend comparison.
	trendWindow = 3

	// trendThreshold is the polarity delta that counts as a move.
	trendThreshold = 0.3
)

// Analyzer scores messages against the keyword and nuance tables.
// It is stateless: every output is a pure function of its inputs, and
// the rolling history is owned by the caller.
type Analyzer struct {
	now func() time.Time
}

// NewAnalyzer creates a new sentiment analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{now: time.Now}
}

// NewAnalyzerWithClock creates an analyzer with an injected clock.
func NewAnalyzerWithClock(now func() time.Time) *Analyzer {
	return &Analyzer{now: now}
}

// Analyze scores a single message. It never fails: absence of signal
// yields a neutral, low-confidence default result.
func (a *Analyzer) Analyze(message string, conversationHistory []string, sentimentHistory []models.SentimentReading, messageIndex int) models.SentimentResult {
	lower := strings.ToLower(message)
	historyText := strings.ToLower(strings.Join(conversationHistory, " "))

	var negScore, posScore float64
	var keywordNeg float64
	indicators := make([]string, 0, maxIndicators)

	// Keyword categories. Matches in the current message carry full
	// weight and surface an indicator; matches only in prior messages
	// contribute reduced-weight context signal.
	for _, ind := range keywordIndicators {
		switch {
		case ind.matches(lower):
			if ind.polarity == polarityNegative {
				negScore += ind.weight
				keywordNeg += ind.weight
			} else {
				posScore += ind.weight
			}
			indicators = append(indicators, ind.id)
		case historyText != "" && ind.matches(historyText):
			if ind.polarity == polarityNegative {
				negScore += ind.weight * historyContextWeight
			} else {
				posScore += ind.weight * historyContextWeight
			}
		}
	}

	// Nuance patterns: one match per category.
	for _, ind := range nuanceIndicators {
		if !ind.matches(lower) {
			continue
		}
		if ind.polarity == polarityNegative {
			negScore += ind.weight
		} else {
			posScore += ind.weight
		}
		indicators = append(indicators, ind.id)
	}

	// Intensity multiplier applies to both accumulators.
	intensity := intensityMultiplier(lower)
	if intensity > 1 {
		indicators = append(indicators, labelEmphasis)
	}
	negScore *= intensity
	posScore *= intensity

	// Text-style signal is additive, after the multiplier.
	style := analyzeStyle(message)
	negScore += style.negativeBoost
	indicators = append(indicators, style.indicators...)

	value, confidence := a.valueAndConfidence(message, lower, negScore, posScore, keywordNeg, indicators, sentimentHistory)

	urgency := computeUrgency(value, negScore, indicators)
	trend := computeTrend(value, sentimentHistory)
	alert := a.escalationAlert(value, urgency, trend, indicators)

	reading := models.SentimentReading{
		Value:        value,
		Confidence:   confidence,
		Timestamp:    a.now(),
		MessageIndex: messageIndex,
	}

	return models.SentimentResult{
		Value:           value,
		Confidence:      confidence,
		Urgency:         urgency,
		Trend:           trend,
		Indicators:      dedupeTruncate(indicators, maxIndicators),
		History:         appendReading(sentimentHistory, reading),
		EscalationAlert: alert,
	}
}

// valueAndConfidence maps the score accumulators to a sentiment value
// and a confidence in [30,95], or one of the two fixed defaults (45 for
// question-only messages, 50 when there is no signal at all).
func (a *Analyzer) valueAndConfidence(raw, lower string, negScore, posScore, keywordNeg float64, indicators []string, sentimentHistory []models.SentimentReading) (models.SentimentValue, int) {
	// A bare question with no negative keyword signal is not an opinion.
	// Deliberately checked against keyword score only, before nuance
	// patterns weigh in.
	trimmed := strings.TrimSpace(raw)
	if strings.HasSuffix(trimmed, "?") && !strings.Contains(lower, "why") && keywordNeg == 0 {
		return models.SentimentNeutral, 45
	}

	var value models.SentimentValue
	var rawConfidence float64

	switch {
	case negScore > posScore && negScore >= 2:
		value = models.SentimentNegative
		rawConfidence = math.Min(95, 60+8*negScore)
	case posScore > negScore && posScore >= 2:
		value = models.SentimentPositive
		rawConfidence = math.Min(95, 60+8*posScore)
	case negScore > posScore && negScore > 0:
		value = models.SentimentNegative
		rawConfidence = 55 + 5*negScore
	case posScore > negScore && posScore > 0:
		value = models.SentimentPositive
		rawConfidence = 55 + 5*posScore
	default:
		// No signal at all: fixed default.
		return models.SentimentNeutral, 50
	}

	multiplier := 1.0
	if len(strings.Fields(raw)) <= 3 {
		multiplier *= 0.7
	}
	if len(indicators) == 0 {
		multiplier *= 0.6
	}
	if negScore > 0 && posScore > 0 {
		multiplier *= 0.8
	}
	if len(sentimentHistory) >= 3 {
		multiplier *= 1.1
	}

	confidence := math.Round(clamp(rawConfidence*multiplier, 30, 95))
	return value, int(confidence)
}

// intensityMultiplier returns a score multiplier in [0.7, 1.3] based on
// amplifier words and diminisher phrases in the message.
func intensityMultiplier(lower string) float64 {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(lower) {
		words[strings.Trim(w, ".,!?;:'\"")] = struct{}{}
	}

	multiplier := 1.0
	for _, amp := range amplifierWords {
		if _, ok := words[amp]; ok {
			multiplier += intensityStep
		}
	}
	if multiplier > intensityCap {
		multiplier = intensityCap
	}

	for _, dim := range diminisherPhrases {
		if strings.Contains(lower, dim) {
			multiplier -= intensityStep
		}
	}
	if multiplier < intensityFloor {
		multiplier = intensityFloor
	}

	return multiplier
}

// urgencyRank orders urgency levels for tier arithmetic.
var urgencyRank = map[models.UrgencyLevel]int{
	models.UrgencyLow:      0,
	models.UrgencyMedium:   1,
	models.UrgencyHigh:     2,
	models.UrgencyCritical: 3,
}

var urgencyByRank = []models.UrgencyLevel{
	models.UrgencyLow,
	models.UrgencyMedium,
	models.UrgencyHigh,
	models.UrgencyCritical,
}

// computeUrgency derives the urgency tier from negative score magnitude,
// with bumps for business-impact and loyalty indicators.
func computeUrgency(value models.SentimentValue, negScore float64, indicators []string) models.UrgencyLevel {
	if value != models.SentimentNegative {
		return models.UrgencyLow
	}

	urgency := models.UrgencyLow
	switch {
	case negScore >= 6:
		urgency = models.UrgencyCritical
	case negScore >= 4:
		urgency = models.UrgencyHigh
	case negScore >= 2:
		urgency = models.UrgencyMedium
	}

	if containsLabel(indicators, labelBusinessImpact) {
		rank := urgencyRank[urgency] + 1
		if rank > urgencyRank[models.UrgencyCritical] {
			rank = urgencyRank[models.UrgencyCritical]
		}
		urgency = urgencyByRank[rank]
	}
	if containsLabel(indicators, labelLoyaltyMention) && urgencyRank[urgency] < urgencyRank[models.UrgencyMedium] {
		urgency = models.UrgencyMedium
	}

	return urgency
}

// computeTrend compares the current polarity with the mean polarity of
// the last few readings. Fewer than two prior readings reads as stable.
func computeTrend(value models.SentimentValue, history []models.SentimentReading) models.SentimentTrend {
	if len(history) < 2 {
		return models.TrendStable
	}

	window := history
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}

	var sum float64
	for _, r := range window {
		sum += r.Value.Polarity()
	}
	mean := sum / float64(len(window))
	current := value.Polarity()

	switch {
	case current > mean+trendThreshold:
		return models.TrendImproving
	case current < mean-trendThreshold:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

// escalationAlert raises an alert when thresholds are crossed.
func (a *Analyzer) escalationAlert(value models.SentimentValue, urgency models.UrgencyLevel, trend models.SentimentTrend, indicators []string) *models.EscalationAlert {
	switch {
	case urgency == models.UrgencyCritical:
		top := indicators
		if len(top) > 2 {
			top = top[:2]
		}
		return &models.EscalationAlert{
			Type:            models.AlertCritical,
			Reason:          fmt.Sprintf("critical negative sentiment: %s", strings.Join(top, ", ")),
			SuggestedAction: "Escalate to a supervisor and acknowledge the customer's frustration",
			Timestamp:       a.now(),
		}
	case value == models.SentimentNegative && trend == models.TrendDeclining:
		return &models.EscalationAlert{
			Type:            models.AlertWarning,
			Reason:          "sentiment declining across recent messages",
			SuggestedAction: "Acknowledge the history and offer a concrete next step",
			Timestamp:       a.now(),
		}
	case urgency == models.UrgencyHigh:
		return &models.EscalationAlert{
			Type:            models.AlertWarning,
			Reason:          "negative sentiment requires immediate attention",
			SuggestedAction: "Prioritize resolution and set clear expectations",
			Timestamp:       a.now(),
		}
	default:
		return nil
	}
}

// appendReading returns a new rolling history with the reading appended
// and the oldest entries evicted beyond the cap. The caller's slice is
// never mutated.
func appendReading(history []models.SentimentReading, reading models.SentimentReading) []models.SentimentReading {
	updated := make([]models.SentimentReading, 0, len(history)+1)
	updated = append(updated, history...)
	updated = append(updated, reading)
	if len(updated) > models.MaxSentimentHistory {
		updated = updated[len(updated)-models.MaxSentimentHistory:]
	}
	return updated
}

// dedupeTruncate keeps the first occurrence of each label, up to max.
func dedupeTruncate(labels []string, max int) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, max)
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
		if len(out) == max {
			break
		}
	}
	return out
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
