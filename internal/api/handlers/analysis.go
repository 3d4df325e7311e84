package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactiq/insight-service/internal/api/dto"
	"github.com/contactiq/insight-service/internal/api/middleware"
	"github.com/contactiq/insight-service/internal/domain/errors"
	"github.com/contactiq/insight-service/internal/services/insight"
)

// AnalysisHandler handles conversation analysis endpoints.
type AnalysisHandler struct {
	insightService *insight.Service
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(insightService *insight.Service) *AnalysisHandler {
	return &AnalysisHandler{
		insightService: insightService,
	}
}

// Analyze handles POST /analysis/analyze
// @Summary Analyze a conversation turn
// @Description Scores one customer message for sentiment, intent and suggested knowledge cards
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Message and rolling conversation state"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/insight-service/analysis/analyze [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result := h.insightService.Analyze(req.Message, req.ConversationHistory, req.SentimentHistory, req.MessageIndex)

	c.JSON(http.StatusOK, dto.AnalyzeResponse{
		Sentiment: result.Sentiment,
		Intent:    result.Intent,
		Cards:     result.Cards,
	})
}
