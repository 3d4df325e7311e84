// Package routing decides whether a query should be served by the local
// small model or the external large model, via multi-factor weighted
// voting over rule-based signals.
package routing

import (
	"fmt"
	"math"
	"strings"

	"github.com/contactiq/insight-service/internal/domain/models"
	"github.com/contactiq/insight-service/internal/services/pii"
)

// Analyzer computes routing decisions. It is stateless and pure: every
// decision is a function of the query and conversation length alone.
type Analyzer struct {
	detector *pii.Detector
}

// NewAnalyzer creates a routing analyzer.
func NewAnalyzer(detector *pii.Detector) *Analyzer {
	return &Analyzer{detector: detector}
}

// Route runs PII detection, complexity analysis and domain analysis,
// combines all eight factors by weighted vote and returns the decision.
// Malformed or empty input yields baseline scores, never an error.
func (a *Analyzer) Route(query string, conversationLength int) models.RoutingDecision {
	lower := strings.ToLower(query)
	wordCount := len(strings.Fields(query))

	piiMatches := a.detector.Detect(query)
	complexityScore, complexity := scoreComplexity(lower, wordCount)

	factors := []models.RoutingFactor{
		privacyFactor(piiMatches),
		complexityFactor(complexityScore, complexity),
		domainFactor(lower),
		responseTimeFactor(lower),
		costFactor(conversationLength),
		reasoningFactor(lower),
		contextWindowFactor(conversationLength),
		ambiguityFactor(lower),
	}

	var slmSum, llmSum, totalWeight float64
	for _, f := range factors {
		contribution := float64(f.Score) * f.Weight
		switch f.Favors {
		case models.TargetSLM:
			slmSum += contribution
		case models.TargetLLM:
			llmSum += contribution
		default:
			slmSum += contribution * neutralSLMShare
			llmSum += contribution * neutralLLMShare
		}
		totalWeight += f.Weight
	}

	slmScore := int(math.Round(slmSum / totalWeight))
	llmScore := int(math.Round(llmSum / totalWeight))

	decision := models.TargetLLM
	if slmScore >= llmScore {
		decision = models.TargetSLM
	}

	// Complex queries carrying PII still need the stronger model; the
	// PII gets scrubbed before leaving, which is the display layer's job.
	if len(piiMatches) > 0 && complexity == models.ComplexityComplex {
		decision = models.TargetLLM
	}

	diff := slmScore - llmScore
	if diff < 0 {
		diff = -diff
	}
	confidence := diff + 50
	if confidence > 98 {
		confidence = 98
	}

	return models.RoutingDecision{
		Factors:     factors,
		SLMScore:    slmScore,
		LLMScore:    llmScore,
		Decision:    decision,
		Confidence:  confidence,
		Complexity:  complexity,
		PIIDetected: piiMatches,
	}
}

// scoreComplexity computes the 0-100 complexity score and its level.
func scoreComplexity(lower string, wordCount int) (int, models.ComplexityLevel) {
	score := complexityBase

	highHits := 0
	for _, p := range highComplexityPatterns {
		if strings.Contains(lower, p) {
			highHits++
		}
	}
	if highHits >= 1 {
		score += highPatternBump
	}
	if highHits >= 2 {
		score += multiHighPatternBump
	}

	for _, p := range mediumComplexityPatterns {
		if strings.Contains(lower, p) {
			score += mediumPatternBump
			break
		}
	}

	switch {
	case wordCount > longQueryWords:
		score += longQueryBump
	case wordCount > mediumQueryWords:
		score += mediumQueryBump
	}

	for _, p := range conditionalPhrases {
		if strings.Contains(lower, p) {
			score += conditionalBump
			break
		}
	}

	if score > 100 {
		score = 100
	}

	switch {
	case score >= complexThreshold:
		return score, models.ComplexityComplex
	case score >= mediumThreshold:
		return score, models.ComplexityMedium
	default:
		return score, models.ComplexitySimple
	}
}

// privacyFactor strongly favors keeping PII-bearing queries local.
func privacyFactor(matches []models.PIIMatch) models.RoutingFactor {
	if len(matches) > 0 {
		types := make([]string, 0, len(matches))
		seen := make(map[models.PIIType]struct{})
		for _, m := range matches {
			if _, ok := seen[m.Type]; ok {
				continue
			}
			seen[m.Type] = struct{}{}
			types = append(types, string(m.Type))
		}
		return models.RoutingFactor{
			Name:      "data privacy",
			Score:     95,
			Weight:    weightPrivacy,
			Reasoning: fmt.Sprintf("sensitive data detected (%s); keep processing local", strings.Join(types, ", ")),
			Favors:    models.TargetSLM,
		}
	}
	return models.RoutingFactor{
		Name:      "data privacy",
		Score:     10,
		Weight:    weightPrivacy,
		Reasoning: "no sensitive data detected",
		Favors:    models.TargetNeutral,
	}
}

// complexityFactor maps the complexity level onto a routing preference.
func complexityFactor(score int, level models.ComplexityLevel) models.RoutingFactor {
	switch level {
	case models.ComplexityComplex:
		return models.RoutingFactor{
			Name:      "query complexity",
			Score:     score,
			Weight:    weightComplexity,
			Reasoning: fmt.Sprintf("complex query (score %d) needs the larger model", score),
			Favors:    models.TargetLLM,
		}
	case models.ComplexityMedium:
		return models.RoutingFactor{
			Name:      "query complexity",
			Score:     score,
			Weight:    weightComplexity,
			Reasoning: fmt.Sprintf("medium complexity (score %d); either model can serve", score),
			Favors:    models.TargetNeutral,
		}
	default:
		return models.RoutingFactor{
			Name:      "query complexity",
			Score:     100 - score,
			Weight:    weightComplexity,
			Reasoning: fmt.Sprintf("simple query (score %d) is well within local capability", score),
			Favors:    models.TargetSLM,
		}
	}
}

// domainFactor finds the best-matching knowledge domain and applies its
// preferred side.
func domainFactor(lower string) models.RoutingFactor {
	bestName := "general"
	bestFavors := models.TargetNeutral
	bestHits := 0

	for _, d := range domainProfiles {
		hits := 0
		for _, kw := range d.keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			bestName = d.name
			bestFavors = d.favors
		}
	}

	if bestHits == 0 {
		return models.RoutingFactor{
			Name:      "domain fit",
			Score:     40,
			Weight:    weightDomain,
			Reasoning: "no domain keywords matched; general domain",
			Favors:    models.TargetNeutral,
		}
	}

	score := 50 + 15*bestHits
	if score > 95 {
		score = 95
	}
	return models.RoutingFactor{
		Name:      "domain fit",
		Score:     score,
		Weight:    weightDomain,
		Reasoning: fmt.Sprintf("%d keyword(s) matched the %s domain", bestHits, bestName),
		Favors:    bestFavors,
	}
}

// responseTimeFactor favors the faster local model for urgent queries.
func responseTimeFactor(lower string) models.RoutingFactor {
	for _, p := range urgencyPhrases {
		if strings.Contains(lower, p) {
			return models.RoutingFactor{
				Name:      "response time",
				Score:     85,
				Weight:    weightResponseTime,
				Reasoning: "urgent phrasing; local model answers fastest",
				Favors:    models.TargetSLM,
			}
		}
	}
	return models.RoutingFactor{
		Name:      "response time",
		Score:     40,
		Weight:    weightResponseTime,
		Reasoning: "no urgency signals",
		Favors:    models.TargetNeutral,
	}
}

// costFactor favors the cheap local model as conversations grow long.
func costFactor(conversationLength int) models.RoutingFactor {
	switch {
	case conversationLength > 10:
		return models.RoutingFactor{
			Name:      "cost efficiency",
			Score:     80,
			Weight:    weightCost,
			Reasoning: fmt.Sprintf("long conversation (%d turns); external costs accumulate", conversationLength),
			Favors:    models.TargetSLM,
		}
	case conversationLength > 5:
		return models.RoutingFactor{
			Name:      "cost efficiency",
			Score:     60,
			Weight:    weightCost,
			Reasoning: fmt.Sprintf("growing conversation (%d turns)", conversationLength),
			Favors:    models.TargetSLM,
		}
	default:
		return models.RoutingFactor{
			Name:      "cost efficiency",
			Score:     50,
			Weight:    weightCost,
			Reasoning: "short conversation; cost difference negligible",
			Favors:    models.TargetNeutral,
		}
	}
}

// reasoningFactor favors the larger model for multi-step reasoning.
func reasoningFactor(lower string) models.RoutingFactor {
	for _, p := range reasoningPhrases {
		if strings.Contains(lower, p) {
			return models.RoutingFactor{
				Name:      "reasoning depth",
				Score:     80,
				Weight:    weightReasoning,
				Reasoning: "multi-step reasoning requested",
				Favors:    models.TargetLLM,
			}
		}
	}
	return models.RoutingFactor{
		Name:      "reasoning depth",
		Score:     30,
		Weight:    weightReasoning,
		Reasoning: "no deep-reasoning signals",
		Favors:    models.TargetNeutral,
	}
}

// contextWindowFactor favors the larger model when the conversation
// exceeds what the local model's window holds comfortably.
func contextWindowFactor(conversationLength int) models.RoutingFactor {
	switch {
	case conversationLength > 20:
		return models.RoutingFactor{
			Name:      "context window",
			Score:     85,
			Weight:    weightContext,
			Reasoning: fmt.Sprintf("%d turns exceed the local context window", conversationLength),
			Favors:    models.TargetLLM,
		}
	case conversationLength > 10:
		return models.RoutingFactor{
			Name:      "context window",
			Score:     60,
			Weight:    weightContext,
			Reasoning: fmt.Sprintf("%d turns approach the local context limit", conversationLength),
			Favors:    models.TargetLLM,
		}
	default:
		return models.RoutingFactor{
			Name:      "context window",
			Score:     40,
			Weight:    weightContext,
			Reasoning: "conversation fits the local context window",
			Favors:    models.TargetSLM,
		}
	}
}

// ambiguityFactor favors the larger model for vague queries that need
// clarification.
func ambiguityFactor(lower string) models.RoutingFactor {
	for _, p := range ambiguityPhrases {
		if strings.Contains(lower, p) {
			return models.RoutingFactor{
				Name:      "query ambiguity",
				Score:     75,
				Weight:    weightAmbiguity,
				Reasoning: "vague phrasing; larger model handles clarification better",
				Favors:    models.TargetLLM,
			}
		}
	}
	return models.RoutingFactor{
		Name:      "query ambiguity",
		Score:     35,
		Weight:    weightAmbiguity,
		Reasoning: "query is specific",
		Favors:    models.TargetSLM,
	}
}
