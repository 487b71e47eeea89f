package adapters

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"shopscout-api/internal/config"
	"shopscout-api/internal/models"
	"shopscout-api/pkg/affiliate"
	"shopscout-api/pkg/utils"
)

// AmazonAdapter queries the hosted product-search API and projects its
// response into normalized product records. Its contract is the same as the
// old scraper layer's: never return nil, never return an error — every failure
// is logged and collapses to an empty slice so the caller can fall back.
type AmazonAdapter struct {
	client       *resty.Client
	baseURL      string
	apiKey       string
	apiHost      string
	affiliateTag string
	country      string
	log          zerolog.Logger
}

func NewAmazonAdapter(cfg *config.Config, log zerolog.Logger) *AmazonAdapter {
	client := resty.New().
		SetHeader("User-Agent", "ShopScout/1.0").
		SetTimeout(cfg.UpstreamTimeout)

	return &AmazonAdapter{
		client:       client,
		baseURL:      "https://" + cfg.ProductAPIHost + "/search",
		apiKey:       cfg.ProductAPIKey,
		apiHost:      cfg.ProductAPIHost,
		affiliateTag: cfg.AffiliateTag,
		country:      cfg.SearchCountry,
		log:          log.With().Str("component", "amazon_adapter").Logger(),
	}
}

type searchResult struct {
	Status string `json:"status"`
	Data   struct {
		Products []upstreamProduct `json:"products"`
	} `json:"data"`
}

type upstreamProduct struct {
	ASIN                 string `json:"asin"`
	ProductTitle         string `json:"product_title"`
	ProductPrice         string `json:"product_price"`
	ProductOriginalPrice string `json:"product_original_price"`
	ProductStarRating    string `json:"product_star_rating"`
	ProductNumRatings    int    `json:"product_num_ratings"`
	ProductURL           string `json:"product_url"`
	ProductPhoto         string `json:"product_photo"`
	IsPrime              *bool  `json:"is_prime"`
	Delivery             string `json:"delivery"`
}

// Search issues a single upstream call for the query and page. No retries:
// one failed attempt means an empty result set.
func (a *AmazonAdapter) Search(ctx context.Context, query string, page int) []models.Product {
	products := make([]models.Product, 0)

	if strings.TrimSpace(a.apiKey) == "" || strings.TrimSpace(a.apiHost) == "" {
		a.log.Warn().Msg("product API credentials not configured, skipping upstream search")
		return products
	}
	if page < 1 {
		page = 1
	}

	var result searchResult
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("X-RapidAPI-Key", a.apiKey).
		SetHeader("X-RapidAPI-Host", a.apiHost).
		SetQueryParams(map[string]string{
			"query":   query,
			"page":    strconv.Itoa(page),
			"country": a.country,
			"sort_by": "RELEVANCE",
		}).
		SetResult(&result).
		Get(a.baseURL)
	if err != nil {
		a.log.Error().Err(err).Str("query", query).Msg("upstream search request failed")
		return products
	}
	if resp.IsError() {
		a.log.Error().
			Int("status", resp.StatusCode()).
			Str("query", query).
			Msg("upstream search returned error status")
		return products
	}

	// An absent product list means zero matches, not a failure.
	for _, up := range result.Data.Products {
		products = append(products, a.project(up))
	}

	a.log.Info().
		Str("query", query).
		Int("page", page).
		Int("count", len(products)).
		Msg("upstream search completed")
	return products
}

func (a *AmazonAdapter) project(up upstreamProduct) models.Product {
	p := models.Product{
		Title:         up.ProductTitle,
		Price:         up.ProductPrice,
		PriceValue:    utils.ParsePrice(up.ProductPrice),
		PhotoURL:      up.ProductPhoto,
		URL:           affiliate.AppendTag(up.ProductURL, a.affiliateTag),
		ASIN:          up.ASIN,
		Delivery:      up.Delivery,
		IsPrime:       up.IsPrime,
		OriginalPrice: up.ProductOriginalPrice,
		Site:          "Amazon",
		// The upstream call is pinned to a single storefront country, so
		// every live record ships domestically.
		Shipping: models.ShippingDomestic,
	}

	if up.ProductStarRating != "" {
		rating := utils.ParseRating(up.ProductStarRating)
		p.Rating = &rating
	}
	if up.ProductNumRatings > 0 {
		count := up.ProductNumRatings
		p.ReviewCount = &count
	}

	return p
}
