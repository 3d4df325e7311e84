package routing

import (
	"github.com/contactiq/insight-service/internal/domain/models"
)

// Complexity scoring constants. A query starts at the base score and
// accumulates bumps for analytical patterns, length and conditionals.
const (
	complexityBase       = 30
	highPatternBump      = 25
	multiHighPatternBump = 15
	mediumPatternBump    = 10
	longQueryBump        = 20
	mediumQueryBump      = 10
	conditionalBump      = 15
	longQueryWords       = 30
	mediumQueryWords     = 15
	complexThreshold     = 70
	mediumThreshold      = 45
)

// highComplexityPatterns demand comparison, analysis or open-ended
// reasoning.
var highComplexityPatterns = []string{
	"compare", "analyze", "analyse", "recommend", "what if", "hypothetical",
	"optimize", "trade-off", "trade-offs", "tradeoff", "strategy", "evaluate", "pros and cons",
}

// mediumComplexityPatterns ask for explanation or multi-part answers.
var mediumComplexityPatterns = []string{
	"explain", "how does", "why does", "difference between", "calculate",
	"multiple", "walk me through", "in detail",
}

// conditionalPhrases signal hypothetical framing.
var conditionalPhrases = []string{"if ", "suppose", "assuming", "in case"}

// domainProfile scores a query's fit to a knowledge domain and records
// which model class that domain favors.
type domainProfile struct {
	name     string
	favors   models.RoutingTarget
	keywords []string
}

// Domain keyword table. Banking is what the local model is fine-tuned
// on; compliance and deep technical questions lean on the larger model.
var domainProfiles = []domainProfile{
	{
		name:   "banking",
		favors: models.TargetSLM,
		keywords: []string{
			"fee", "account", "balance", "transfer", "wire", "deposit",
			"withdrawal", "card", "loan", "interest rate", "statement", "overdraft",
		},
	},
	{
		name:   "technical",
		favors: models.TargetLLM,
		keywords: []string{
			"api", "integration", "error code", "debug", "configuration", "webhook",
		},
	},
	{
		name:   "compliance",
		favors: models.TargetLLM,
		keywords: []string{
			"regulation", "compliance", "kyc", "aml", "legal", "disclosure", "audit",
		},
	},
	{
		name:     "general",
		favors:   models.TargetNeutral,
		keywords: nil,
	},
}

// urgencyPhrases mark queries that need the fastest possible answer.
var urgencyPhrases = []string{"urgent", "quickly", "asap", "right now", "immediately", "in a hurry"}

// reasoningPhrases mark queries that need multi-step reasoning depth.
var reasoningPhrases = []string{"because", "reasoning", "step by step", "walk me through", "justify", "derive", "prove"}

// ambiguityPhrases mark vague queries that benefit from a model that can
// ask clarifying questions.
var ambiguityPhrases = []string{"something", "stuff", "things", "whatever", "not sure", "maybe", "kind of", "somehow"}

// Factor weights. The weighted vote normalizes by their sum.
const (
	weightPrivacy      = 1.5
	weightComplexity   = 1.2
	weightDomain       = 1.0
	weightResponseTime = 0.8
	weightCost         = 0.7
	weightReasoning    = 1.0
	weightContext      = 0.6
	weightAmbiguity    = 0.9
)

// Neutral factors split their contribution 60/40 toward the SLM.
const (
	neutralSLMShare = 0.6
	neutralLLMShare = 0.4
)
