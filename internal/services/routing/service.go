package routing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/contactiq/insight-service/internal/core/cache"
	"github.com/contactiq/insight-service/internal/domain/models"
	"github.com/contactiq/insight-service/internal/pkg/encryption"
)

// Service wraps the analyzer with an explicit, constructor-injected
// query-result cache. Decisions carry raw PII values, so cached payloads
// are encrypted. Cache failures degrade to recomputation, never to an
// error: the analyzer itself cannot fail.
type Service struct {
	analyzer    *Analyzer
	cacheClient cache.Client
	encryptor   encryption.Encryptor
	ttl         time.Duration
}

// Config holds the configuration for the routing service.
type Config struct {
	Analyzer    *Analyzer
	CacheClient cache.Client
	Encryptor   encryption.Encryptor
	TTL         time.Duration
}

// DefaultTTL is the default lifetime for cached routing decisions.
const DefaultTTL = 5 * time.Minute

// NewService creates a new routing service.
func NewService(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Analyzer == nil {
		return nil, fmt.Errorf("analyzer is required")
	}
	if cfg.CacheClient == nil {
		return nil, fmt.Errorf("cache client is required")
	}
	if cfg.Encryptor == nil {
		return nil, fmt.Errorf("encryptor is required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &Service{
		analyzer:    cfg.Analyzer,
		cacheClient: cfg.CacheClient,
		encryptor:   cfg.Encryptor,
		ttl:         ttl,
	}, nil
}

// Decide returns the routing decision for a query, serving from the
// cache when a fresh identical query was already analyzed.
func (s *Service) Decide(ctx context.Context, query string, conversationLength int) models.RoutingDecision {
	key := s.cacheKey(query, conversationLength)

	if cached, ok := s.lookup(ctx, key); ok {
		return cached
	}

	decision := s.analyzer.Route(query, conversationLength)
	s.store(ctx, key, decision)
	return decision
}

// cacheKey hashes the query so raw text never appears in cache keys.
func (s *Service) cacheKey(query string, conversationLength int) string {
	sum := sha256.Sum256([]byte(query))
	return fmt.Sprintf("routing:%s:%d", hex.EncodeToString(sum[:]), conversationLength)
}

func (s *Service) lookup(ctx context.Context, key string) (models.RoutingDecision, bool) {
	var decision models.RoutingDecision

	encrypted, err := s.cacheClient.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("routing cache lookup failed")
		return decision, false
	}
	if encrypted == nil {
		return decision, false
	}

	plaintext, err := s.encryptor.Decrypt(string(encrypted))
	if err != nil {
		// Key rotation or corruption: treat as a miss.
		log.Warn().Err(err).Msg("failed to decrypt cached routing decision")
		return decision, false
	}

	if err := json.Unmarshal(plaintext, &decision); err != nil {
		log.Warn().Err(err).Msg("failed to decode cached routing decision")
		return decision, false
	}
	return decision, true
}

func (s *Service) store(ctx context.Context, key string, decision models.RoutingDecision) {
	payload, err := json.Marshal(decision)
	if err != nil {
		log.Warn().Err(err).Msg("failed to encode routing decision for cache")
		return
	}

	encrypted, err := s.encryptor.Encrypt(payload)
	if err != nil {
		log.Warn().Err(err).Msg("failed to encrypt routing decision for cache")
		return
	}

	if err := s.cacheClient.Set(ctx, key, []byte(encrypted), s.ttl); err != nil {
		log.Warn().Err(err).Msg("failed to cache routing decision")
	}
}
