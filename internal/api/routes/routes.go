// Package routes defines the HTTP routes for the Conversation Insight Service.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/contactiq/insight-service/internal/api/handlers"
	"github.com/contactiq/insight-service/internal/api/middleware"
)

// Config holds the dependencies for setting up routes.
type Config struct {
	HealthHandler    *handlers.HealthHandler
	AnalysisHandler  *handlers.AnalysisHandler
	RoutingHandler   *handlers.RoutingHandler
	KnowledgeHandler *handlers.KnowledgeHandler
	HistoryHandler   *handlers.HistoryHandler
	PlaybackHandler  *handlers.PlaybackHandler
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	// API v1 routes - all routes under /api/v1/insight-service
	v1 := r.Group("/api/v1/insight-service")
	{
		// Health check routes
		v1.GET("/health", cfg.HealthHandler.Health)
		v1.GET("/ready", cfg.HealthHandler.Ready)
		v1.GET("/live", cfg.HealthHandler.Live)

		// --- Analysis Routes ---
		analysis := v1.Group("/analysis")
		{
			analysis.POST("/analyze", cfg.AnalysisHandler.Analyze)
		}

		// --- Routing Routes ---
		routing := v1.Group("/routing")
		{
			routing.POST("/decide", cfg.RoutingHandler.Decide)
		}

		// --- Knowledge Base Routes ---
		knowledge := v1.Group("/knowledge")
		{
			knowledge.POST("/search", cfg.KnowledgeHandler.Search)
			knowledge.GET("/stats", cfg.KnowledgeHandler.Stats)
			knowledge.GET("/documents", cfg.KnowledgeHandler.Documents)
			knowledge.POST("/load-samples", cfg.KnowledgeHandler.LoadSamples)
		}

		// --- Customer History Routes ---
		history := v1.Group("/history")
		{
			history.GET("/sentiment/:customerId", cfg.HistoryHandler.GetHistory)
			history.POST("/sentiment/:customerId/seed", cfg.HistoryHandler.SeedSamples)
		}

		// --- Playback Routes ---
		playback := v1.Group("/playback")
		{
			playback.GET("/scenarios", cfg.PlaybackHandler.ListScenarios)
			playback.GET("/scenarios/:scenarioId/stream", cfg.PlaybackHandler.Stream)
		}
	}
}

// SetupWithMiddleware sets up routes with common middleware.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware) {
	// Apply global middleware
	r.Use(loggingMw.Logger())
	r.Use(errorMw.Recovery())
	r.Use(gin.Recovery())
	r.Use(middleware.NewCORSMiddleware(middleware.DefaultCORSConfig()))

	// Setup routes
	Setup(r, cfg)
}
