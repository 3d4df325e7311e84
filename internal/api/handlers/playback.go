package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/contactiq/insight-service/internal/api/dto"
	"github.com/contactiq/insight-service/internal/api/middleware"
	"github.com/contactiq/insight-service/internal/api/sse"
	"github.com/contactiq/insight-service/internal/domain/errors"
	"github.com/contactiq/insight-service/internal/services/playback"
)

// PlaybackHandler handles demo scenario playback endpoints.
type PlaybackHandler struct {
	scheduler *playback.Scheduler
}

// NewPlaybackHandler creates a new PlaybackHandler.
func NewPlaybackHandler(scheduler *playback.Scheduler) *PlaybackHandler {
	return &PlaybackHandler{
		scheduler: scheduler,
	}
}

// ListScenarios handles GET /playback/scenarios
// @Summary List playback scenarios
// @Description Returns the available scripted demo conversations
// @Tags Playback
// @Produce json
// @Success 200 {array} dto.ScenarioResponse
// @Router /api/v1/insight-service/playback/scenarios [get]
func (h *PlaybackHandler) ListScenarios(c *gin.Context) {
	scenarios := playback.ListScenarios()

	response := make([]dto.ScenarioResponse, 0, len(scenarios))
	for _, s := range scenarios {
		response = append(response, dto.ScenarioResponse{
			ID:    s.ID,
			Name:  s.Name,
			Turns: len(s.Turns),
		})
	}

	c.JSON(http.StatusOK, response)
}

// Stream handles GET /playback/scenarios/{scenarioId}/stream
// @Summary Stream a scenario
// @Description Replays a scripted conversation as Server-Sent Events, scoring each customer turn
// @Tags Playback
// @Produce text/event-stream
// @Param scenarioId path string true "Scenario ID"
// @Success 200 {string} string "SSE stream of playback events"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/insight-service/playback/scenarios/{scenarioId}/stream [get]
func (h *PlaybackHandler) Stream(c *gin.Context) {
	scenarioID := c.Param("scenarioId")

	scenario, ok := playback.GetScenario(scenarioID)
	if !ok {
		middleware.HandleError(c, errors.NewNotFoundError("scenario", scenarioID))
		return
	}

	writer, err := sse.NewWriter(c.Writer)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("streaming not supported", err))
		return
	}

	ctx := c.Request.Context()
	events := make(chan playback.Event)

	errCh := make(chan error, 1)
	go func() {
		errCh <- h.scheduler.Run(ctx, scenario, events)
	}()

	for event := range events {
		eventType := sse.EventMessage
		if event.State == playback.StateTyping {
			eventType = sse.EventTyping
		}
		if writeErr := writer.WriteJSON(eventType, event); writeErr != nil {
			log.Warn().Err(writeErr).Str("scenario_id", scenarioID).Msg("Playback stream write failed")
			return
		}
	}

	if runErr := <-errCh; runErr != nil {
		// Client went away mid-scenario; nothing left to write.
		log.Debug().Err(runErr).Str("scenario_id", scenarioID).Msg("Playback stopped early")
		return
	}

	if err := writer.WriteDone(); err != nil {
		log.Warn().Err(err).Str("scenario_id", scenarioID).Msg("Failed to write done event")
	}
}
