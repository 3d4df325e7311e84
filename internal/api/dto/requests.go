// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/contactiq/insight-service/internal/domain/models"

// AnalyzeRequest is the request body for analyzing a conversation turn.
type AnalyzeRequest struct {
	Message             string                    `json:"message" binding:"required,min=1,max=8000"`
	ConversationHistory []string                  `json:"conversationHistory"`
	SentimentHistory    []models.SentimentReading `json:"sentimentHistory"`
	MessageIndex        int                       `json:"messageIndex"`
}

// RouteRequest is the request body for a routing decision.
type RouteRequest struct {
	Query              string `json:"query" binding:"required,min=1,max=8000"`
	ConversationLength int    `json:"conversationLength"`
}

// KnowledgeSearchRequest is the request body for knowledge search.
type KnowledgeSearchRequest struct {
	Query string `json:"query" binding:"required,min=1,max=2000"`
	TopK  int    `json:"top_k"`
}
