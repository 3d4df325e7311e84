package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contactiq/insight-service/internal/api/middleware"
	"github.com/contactiq/insight-service/internal/domain/errors"
	"github.com/contactiq/insight-service/internal/services/history"
)

// HistoryHandler handles customer sentiment history endpoints.
type HistoryHandler struct {
	historyService *history.Service
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService *history.Service) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// GetHistory handles GET /history/sentiment/{customerId}
// @Summary Get customer sentiment history
// @Description Returns past interactions and a sentiment summary for a customer
// @Tags History
// @Produce json
// @Param customerId path string true "Customer ID"
// @Param days query int false "Lookback window in days" default(30) minimum(1) maximum(365)
// @Success 200 {object} models.CustomerSentimentHistory
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/insight-service/history/sentiment/{customerId} [get]
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	customerID := c.Param("customerId")

	days := history.DefaultDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			middleware.HandleError(c, errors.NewValidationError("invalid days parameter", "days must be an integer between 1 and 365"))
			return
		}
		days = parsed
	}

	result, err := h.historyService.GetCustomerHistory(c.Request.Context(), customerID, days)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SeedSamples handles POST /history/sentiment/{customerId}/seed
// @Summary Seed sample history
// @Description Replaces a customer's stored interactions with deterministic sample data
// @Tags History
// @Produce json
// @Param customerId path string true "Customer ID"
// @Success 200 {object} map[string]int
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/insight-service/history/sentiment/{customerId}/seed [post]
func (h *HistoryHandler) SeedSamples(c *gin.Context) {
	customerID := c.Param("customerId")

	count, err := h.historyService.SeedSamples(c.Request.Context(), customerID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"seeded": count,
	})
}
