// Package server holds the HTTP boundary: routing, middleware, and the thin
// handlers that translate between transport and the search service.
package server

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"shopscout-api/internal/config"
	"shopscout-api/internal/models"
	"shopscout-api/pkg/cache"
)

// SearchService is the orchestrator the boundary delegates to.
type SearchService interface {
	SearchProducts(ctx context.Context, params models.SearchParams) (*models.SearchResponse, error)
}

type Server struct {
	cfg    *config.Config
	search SearchService
	cache  *cache.RedisCache
	log    zerolog.Logger

	limiters  map[string]*rate.Limiter
	limiterMu sync.RWMutex
}

func New(cfg *config.Config, search SearchService, redisCache *cache.RedisCache, log zerolog.Logger) *Server {
	return &Server{
		cfg:      cfg,
		search:   search,
		cache:    redisCache,
		log:      log.With().Str("component", "http").Logger(),
		limiters: make(map[string]*rate.Limiter),
	}
}

func (s *Server) getRateLimiter(ip string) *rate.Limiter {
	s.limiterMu.RLock()
	limiter, exists := s.limiters[ip]
	s.limiterMu.RUnlock()

	if !exists {
		s.limiterMu.Lock()
		limiter = rate.NewLimiter(rate.Limit(s.cfg.RateLimitPerSecond), s.cfg.RateLimitBurst)
		s.limiters[ip] = limiter
		s.limiterMu.Unlock()
	}

	return limiter
}
