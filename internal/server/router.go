package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"shopscout-api/internal/models"
)

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(s.requestLogMiddleware())
	r.Use(s.rateLimitMiddleware())

	r.GET("/health", s.handleHealth)
	r.GET("/api/search", s.handleSearch)
	r.GET("/api/info", s.handleInfo)
	r.GET("/rate-limit/status", s.handleRateLimitStatus)
	r.GET("/cache/stats", s.handleCacheStats)
	r.GET("/cache/debug", s.handleCacheDebug)
	r.DELETE("/cache/flush", s.handleCacheFlush)

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) requestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := fmt.Sprintf("%d", time.Now().UnixNano())
		c.Header("X-Request-ID", requestID)
		start := time.Now()
		c.Next()
		s.log.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Dur("duration", time.Since(start)).
			Int("status", c.Writer.Status()).
			Msg("request completed")
	}
}

func (s *Server) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := s.getRateLimiter(ip)

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate_limit_exceeded",
				"message":     "Too many requests from your IP",
				"retry_after": "1 second",
				"ip":          ip,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// handleSearch validates the query parameter, delegates to the orchestrator,
// and maps orchestrator failures to the fixed degraded envelope.
func (s *Server) handleSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "query parameter 'q' is required",
		})
		return
	}

	page := 1
	if p := c.Query("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}

	response, err := s.search.SearchProducts(c.Request.Context(), models.SearchParams{
		Query: query,
		Page:  page,
	})
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("search failed")
		c.JSON(http.StatusInternalServerError, models.SearchResponse{
			Results: []models.Product{},
			Error:   "Search failed",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

func (s *Server) handleHealth(c *gin.Context) {
	health := gin.H{
		"status":  "healthy",
		"service": "shopscout-api",
		"version": "1.0.0",
	}

	if s.cache.IsAvailable() {
		health["cache"] = "redis connected"
	} else {
		health["cache"] = "redis unavailable"
	}

	if s.cfg.HasProductAPICredentials() {
		health["live_search"] = "configured"
	} else {
		health["live_search"] = "disabled, serving mock catalog"
	}

	c.JSON(http.StatusOK, health)
}

func (s *Server) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "ShopScout Search API",
		"version":     "1.0.0",
		"description": "Search aggregation API with affiliate rewriting and mock-catalog fallback",
		"features":    []string{"Live product search", "Affiliate URL rewriting", "Mock fallback", "Redis caching", "Rate limiting"},
		"endpoints": map[string]string{
			"GET /api/search":  "Search products (q required, page optional)",
			"GET /health":      "Health check",
			"GET /cache/stats": "Cache statistics",
			"GET /api/info":    "API information",
		},
	})
}

func (s *Server) handleRateLimitStatus(c *gin.Context) {
	ip := c.ClientIP()
	limiter := s.getRateLimiter(ip)

	c.JSON(http.StatusOK, gin.H{
		"ip":               ip,
		"limit_per_second": limiter.Limit(),
		"burst_capacity":   limiter.Burst(),
		"tokens_available": limiter.Tokens(),
	})
}

func (s *Server) handleCacheStats(c *gin.Context) {
	if !s.cache.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "cache not available",
		})
		return
	}

	c.JSON(http.StatusOK, s.cache.GetStats(c.Request.Context()))
}

func (s *Server) handleCacheDebug(c *gin.Context) {
	if !s.cache.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "cache not available",
		})
		return
	}

	ctx := c.Request.Context()
	keys := s.cache.GetAllKeys(ctx)

	keyDetails := make([]gin.H, 0, len(keys))
	for _, key := range keys {
		ttl := s.cache.GetKeyTTL(ctx, key)
		keyDetails = append(keyDetails, gin.H{
			"key":         key,
			"ttl_seconds": int(ttl.Seconds()),
			"expires_in":  ttl.String(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total_keys":  len(keys),
		"cache_keys":  keyDetails,
		"cache_stats": s.cache.GetStats(ctx),
	})
}

func (s *Server) handleCacheFlush(c *gin.Context) {
	if !s.cache.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "cache not available",
		})
		return
	}

	if err := s.cache.FlushCache(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to flush cache",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "cache flushed successfully",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
