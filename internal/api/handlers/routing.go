package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactiq/insight-service/internal/api/dto"
	"github.com/contactiq/insight-service/internal/api/middleware"
	"github.com/contactiq/insight-service/internal/domain/errors"
	"github.com/contactiq/insight-service/internal/services/routing"
)

// RoutingHandler handles model routing endpoints.
type RoutingHandler struct {
	routingService *routing.Service
}

// NewRoutingHandler creates a new RoutingHandler.
func NewRoutingHandler(routingService *routing.Service) *RoutingHandler {
	return &RoutingHandler{
		routingService: routingService,
	}
}

// Decide handles POST /routing/decide
// @Summary Decide query routing
// @Description Scores a query across routing factors and picks the SLM or LLM target
// @Tags Routing
// @Accept json
// @Produce json
// @Param request body dto.RouteRequest true "Query to route"
// @Success 200 {object} dto.RouteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/insight-service/routing/decide [post]
func (h *RoutingHandler) Decide(c *gin.Context) {
	var req dto.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	decision := h.routingService.Decide(c.Request.Context(), req.Query, req.ConversationLength)

	c.JSON(http.StatusOK, dto.RouteResponse{
		Decision: decision,
	})
}
