package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"shopscout-api/internal/catalog"
	"shopscout-api/internal/models"
	"shopscout-api/pkg/affiliate"
	"shopscout-api/pkg/cache"
)

// ProductSource is any live product provider. Implementations absorb their own
// failures: a failed lookup is an empty slice, never an error.
type ProductSource interface {
	Search(ctx context.Context, query string, page int) []models.Product
}

// SearchService combines the live product source with the mock-catalog
// fallback and produces the response envelope.
type SearchService struct {
	source       ProductSource
	catalog      func() []models.Product
	cache        *cache.RedisCache
	affiliateTag string
	log          zerolog.Logger
}

func NewSearchService(source ProductSource, redisCache *cache.RedisCache, affiliateTag string, log zerolog.Logger) *SearchService {
	return &SearchService{
		source:       source,
		catalog:      catalog.Products,
		cache:        redisCache,
		affiliateTag: affiliateTag,
		log:          log.With().Str("component", "search_service").Logger(),
	}
}

func (s *SearchService) SearchProducts(ctx context.Context, params models.SearchParams) (*models.SearchResponse, error) {
	if strings.TrimSpace(params.Query) == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	if params.Page < 1 {
		params.Page = 1
	}

	cacheKey := ""
	if s.cache.IsAvailable() {
		cacheKey = s.cache.GenerateSearchKey(params.Query, params.Page)
		if cached, err := s.cache.GetSearchResults(ctx, cacheKey); err == nil && cached != nil {
			s.log.Debug().Str("key", cacheKey).Msg("cache hit")
			return cached, nil
		}
		s.log.Debug().Str("key", cacheKey).Msg("cache miss")
	}

	results := s.source.Search(ctx, params.Query, params.Page)
	if len(results) == 0 {
		// Blind fallback: a legitimately empty result set and an upstream
		// outage degrade identically. The log line is the only place the
		// two cases can be told apart.
		results = s.catalog()
		s.log.Info().
			Str("query", params.Query).
			Int("count", len(results)).
			Msg("live source returned nothing, serving mock catalog")
	}

	// Re-applying the tag is a no-op for records the source already tagged.
	for i := range results {
		results[i].URL = affiliate.AppendTag(results[i].URL, s.affiliateTag)
	}

	response := &models.SearchResponse{
		Results:  results,
		Total:    len(results),
		Metadata: classifyShipping(results),
	}

	if s.cache.IsAvailable() && cacheKey != "" {
		if err := s.cache.SetSearchResults(ctx, cacheKey, response); err != nil {
			s.log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache search results")
		}
	}

	return response, nil
}

func classifyShipping(products []models.Product) models.SearchMetadata {
	var meta models.SearchMetadata
	for _, p := range products {
		if p.Shipping == models.ShippingInternational {
			meta.InternationalCount++
		} else {
			meta.DomesticCount++
		}
	}
	return meta
}
