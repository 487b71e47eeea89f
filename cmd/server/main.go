package main

import (
	"os"

	"github.com/rs/zerolog"

	"shopscout-api/internal/adapters"
	"shopscout-api/internal/config"
	"shopscout-api/internal/server"
	"shopscout-api/internal/services"
	"shopscout-api/pkg/cache"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if !cfg.HasProductAPICredentials() {
		logger.Warn().Msg("PRODUCT_API_KEY not set, live search disabled, all queries will serve the mock catalog")
	}

	redisCache := cache.NewRedisCache(cfg, logger)
	amazonAdapter := adapters.NewAmazonAdapter(cfg, logger)
	searchService := services.NewSearchService(amazonAdapter, redisCache, cfg.AffiliateTag, logger)

	srv := server.New(cfg, searchService, redisCache, logger)
	router := srv.Router()

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
