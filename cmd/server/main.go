// Package main is the entry point for the Conversation Insight Service.
// @title Conversation Insight Service API
// @version 1.0
// @description Rule-based conversation scoring for the ContactIQ agent-assist demo: sentiment, intent, model routing and knowledge card ranking.

// @contact.name API Support
// @contact.url https://github.com/contactiq/insight-service

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8090
// @BasePath /
// @schemes http
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/contactiq/insight-service/docs"
	"github.com/contactiq/insight-service/internal/api/handlers"
	"github.com/contactiq/insight-service/internal/api/middleware"
	"github.com/contactiq/insight-service/internal/api/routes"
	"github.com/contactiq/insight-service/internal/config"
	"github.com/contactiq/insight-service/internal/core/cache"
	"github.com/contactiq/insight-service/internal/core/docdb"
	"github.com/contactiq/insight-service/internal/core/vault"
	rediscache "github.com/contactiq/insight-service/internal/infrastructure/cache/redis"
	"github.com/contactiq/insight-service/internal/infrastructure/docdb/mongodb"
	dotenvvault "github.com/contactiq/insight-service/internal/infrastructure/vault/dotenv"
	"github.com/contactiq/insight-service/internal/pkg/encryption"
	"github.com/contactiq/insight-service/internal/services/history"
	"github.com/contactiq/insight-service/internal/services/insight"
	"github.com/contactiq/insight-service/internal/services/intent"
	"github.com/contactiq/insight-service/internal/services/knowledge"
	"github.com/contactiq/insight-service/internal/services/modelproxy"
	"github.com/contactiq/insight-service/internal/services/pii"
	"github.com/contactiq/insight-service/internal/services/playback"
	"github.com/contactiq/insight-service/internal/services/routing"
	"github.com/contactiq/insight-service/internal/services/sentiment"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Configure global log level
	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	ctx := context.Background()

	// Initialize vault client using factory pattern
	vaultClient, err := createVaultClient(cfg.Vault)
	if err != nil {
		log.Fatalf("failed to initialize vault client: %v", err)
	}
	defer vaultClient.Close()

	// Initialize cache client using factory pattern
	cacheClient, err := createCacheClient(cfg.Cache)
	if err != nil {
		log.Fatalf("failed to initialize cache client: %v", err)
	}
	defer cacheClient.Close()

	// Initialize document db client using factory pattern
	docDBClient, err := createDocDBClient(ctx, cfg.DocDB)
	if err != nil {
		log.Fatalf("failed to initialize document db client: %v", err)
	}
	defer docDBClient.Close(ctx)

	// Ensure database indexes
	if err := docDBClient.EnsureIndexes(ctx); err != nil {
		log.Printf("warning: failed to ensure indexes: %v", err)
	}

	// Initialize encryptor for cached routing decisions
	encryptor, err := createEncryptor(cfg.Vault, vaultClient)
	if err != nil {
		log.Fatalf("failed to initialize encryptor: %v", err)
	}

	// Initialize routing service
	routingService, err := routing.NewService(&routing.Config{
		Analyzer:    routing.NewAnalyzer(pii.NewDetector()),
		CacheClient: cacheClient,
		Encryptor:   encryptor,
		TTL:         cfg.Cache.TTL,
	})
	if err != nil {
		log.Fatalf("failed to initialize routing service: %v", err)
	}

	// Initialize history service
	historyService, err := history.NewService(docDBClient)
	if err != nil {
		log.Fatalf("failed to initialize history service: %v", err)
	}

	// Initialize model proxy client and health monitor
	modelClient, err := modelproxy.NewClient(&modelproxy.ClientConfig{
		BaseURL:     cfg.Model.BaseURL,
		HTTPClient:  &http.Client{Timeout: cfg.Model.Timeout},
		MaxRetries:  cfg.Model.MaxRetries,
		BackoffBase: cfg.Model.BackoffBase,
		BackoffCap:  cfg.Model.BackoffCap,
	})
	if err != nil {
		log.Fatalf("failed to initialize model proxy client: %v", err)
	}

	modelMonitor := modelproxy.NewMonitor(modelClient, cfg.Model.PollInterval)
	modelMonitor.Start()
	defer modelMonitor.Stop()

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Setup router
	router := setupRouter(cacheClient, docDBClient, routingService, historyService, modelMonitor)

	// Create HTTP server
	srv := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// createVaultClient creates a vault client based on the configuration.
func createVaultClient(cfg config.VaultConfig) (vault.Client, error) {
	vaultType := vault.Type(cfg.Type)

	switch vaultType {
	case vault.TypeDotEnv:
		return dotenvvault.NewVault()
	default:
		log.Fatalf("unsupported vault type: %s", cfg.Type)
		return nil, nil
	}
}

// createCacheClient creates a cache client based on the configuration.
func createCacheClient(cfg config.CacheConfig) (cache.Client, error) {
	cacheType := cache.Type(cfg.Type)

	switch cacheType {
	case cache.TypeRedis:
		return rediscache.NewCache(rediscache.Config{
			Host:       cfg.Host,
			Port:       cfg.Port,
			Password:   cfg.Password,
			DB:         cfg.DB,
			DefaultTTL: cfg.TTL,
		})
	default:
		log.Fatalf("unsupported cache type: %s", cfg.Type)
		return nil, nil
	}
}

// createDocDBClient creates a document database client based on the configuration.
func createDocDBClient(ctx context.Context, cfg config.DocDBConfig) (docdb.Client, error) {
	docDBType := docdb.Type(cfg.Type)

	switch docDBType {
	case docdb.TypeMongoDB:
		return mongodb.NewClient(ctx, &mongodb.ClientConfig{
			URI:          cfg.URI,
			DatabaseName: cfg.Database,
		})
	default:
		log.Fatalf("unsupported docdb type: %s", cfg.Type)
		return nil, nil
	}
}

// createEncryptor creates an encryptor based on the configuration.
func createEncryptor(cfg config.VaultConfig, vaultClient vault.Client) (encryption.Encryptor, error) {
	encryptionKey := cfg.EncryptionKey
	if encryptionKey == "" {
		key, err := vaultClient.GetSecret(context.Background(), "dotenv://CACHE_ENCRYPTION_KEY")
		if err == nil && key != "" {
			encryptionKey = key
		}
	}

	if encryptionKey == "" {
		// Use NoOp encryptor in development
		log.Println("warning: CACHE_ENCRYPTION_KEY not set, using NoOp encryptor")
		return encryption.NewNoOpEncryptor(), nil
	}

	return encryption.NewAESEncryptor(encryptionKey)
}

// setupRouter creates and configures the Gin router.
func setupRouter(cacheClient cache.Client, docDBClient docdb.Client, routingService *routing.Service, historyService *history.Service, modelMonitor *modelproxy.Monitor) *gin.Engine {
	router := gin.New()

	// Create middleware
	loggingMw := middleware.NewLoggingMiddleware()
	errorMw := middleware.NewErrorMiddleware()

	// Create the scoring services. These are pure and stateless, so a
	// single instance of each serves all requests.
	classifier := intent.NewClassifier()
	knowledgeService := knowledge.NewService(classifier, knowledge.NewRanker(knowledge.DedupKeepFirst))
	insightService := insight.NewService(sentiment.NewAnalyzer(), classifier, knowledgeService)
	scheduler := playback.NewScheduler(playback.NewRealClock(), insightService)

	// Create handlers
	healthHandler := handlers.NewHealthHandler(cacheClient, docDBClient, modelMonitor)
	analysisHandler := handlers.NewAnalysisHandler(insightService)
	routingHandler := handlers.NewRoutingHandler(routingService)
	knowledgeHandler := handlers.NewKnowledgeHandler(knowledgeService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	playbackHandler := handlers.NewPlaybackHandler(scheduler)

	// Setup routes
	routesCfg := &routes.Config{
		HealthHandler:    healthHandler,
		AnalysisHandler:  analysisHandler,
		RoutingHandler:   routingHandler,
		KnowledgeHandler: knowledgeHandler,
		HistoryHandler:   historyHandler,
		PlaybackHandler:  playbackHandler,
	}

	routes.SetupWithMiddleware(router, routesCfg, loggingMw, errorMw)

	// Swagger documentation endpoint
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
