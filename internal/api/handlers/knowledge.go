package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactiq/insight-service/internal/api/dto"
	"github.com/contactiq/insight-service/internal/api/middleware"
	"github.com/contactiq/insight-service/internal/domain/errors"
	"github.com/contactiq/insight-service/internal/services/knowledge"
)

// KnowledgeHandler handles knowledge base endpoints.
type KnowledgeHandler struct {
	knowledgeService *knowledge.Service
}

// NewKnowledgeHandler creates a new KnowledgeHandler.
func NewKnowledgeHandler(knowledgeService *knowledge.Service) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledgeService: knowledgeService,
	}
}

// Search handles POST /knowledge/search
// @Summary Search knowledge cards
// @Description Ranks catalog cards against a query and returns the top matches
// @Tags Knowledge
// @Accept json
// @Produce json
// @Param request body dto.KnowledgeSearchRequest true "Search query"
// @Success 200 {object} dto.KnowledgeSearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/insight-service/knowledge/search [post]
func (h *KnowledgeHandler) Search(c *gin.Context) {
	var req dto.KnowledgeSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	results := h.knowledgeService.Search(req.Query, req.TopK)

	c.JSON(http.StatusOK, dto.KnowledgeSearchResponse{
		Results: results,
	})
}

// Stats handles GET /knowledge/stats
// @Summary Knowledge base statistics
// @Description Returns document and topic counts for the catalog
// @Tags Knowledge
// @Produce json
// @Success 200 {object} knowledge.Stats
// @Router /api/v1/insight-service/knowledge/stats [get]
func (h *KnowledgeHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.knowledgeService.GetStats())
}

// Documents handles GET /knowledge/documents
// @Summary List knowledge documents
// @Description Returns every card in the catalog
// @Tags Knowledge
// @Produce json
// @Success 200 {object} dto.KnowledgeDocumentsResponse
// @Router /api/v1/insight-service/knowledge/documents [get]
func (h *KnowledgeHandler) Documents(c *gin.Context) {
	c.JSON(http.StatusOK, dto.KnowledgeDocumentsResponse{
		Documents: h.knowledgeService.GetDocuments(),
	})
}

// LoadSamples handles POST /knowledge/load-samples
// @Summary Load sample documents
// @Description Loads the built-in sample catalog and reports how many cards it holds
// @Tags Knowledge
// @Produce json
// @Success 200 {object} dto.LoadSamplesResponse
// @Router /api/v1/insight-service/knowledge/load-samples [post]
func (h *KnowledgeHandler) LoadSamples(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LoadSamplesResponse{
		Loaded: h.knowledgeService.LoadSamples(),
	})
}
