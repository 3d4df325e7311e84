package dto

import "github.com/contactiq/insight-service/internal/domain/models"

// AnalyzeResponse is the assembled analysis for one message.
type AnalyzeResponse struct {
	Sentiment models.SentimentResult `json:"sentiment"`
	Intent    models.IntentResult    `json:"intent"`
	Cards     []models.KnowledgeCard `json:"cards"`
}

// RouteResponse wraps a routing decision.
type RouteResponse struct {
	Decision models.RoutingDecision `json:"decision"`
}

// KnowledgeSearchResponse wraps ranked knowledge results.
type KnowledgeSearchResponse struct {
	Results []models.KnowledgeCard `json:"results"`
}

// KnowledgeDocumentsResponse lists all catalog documents.
type KnowledgeDocumentsResponse struct {
	Documents []models.KnowledgeCard `json:"documents"`
}

// LoadSamplesResponse reports how many samples were loaded.
type LoadSamplesResponse struct {
	Loaded int `json:"loaded"`
}

// ScenarioResponse describes a playback scenario.
type ScenarioResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Turns int    `json:"turns"`
}
