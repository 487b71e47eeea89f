package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopscout-api/internal/config"
	"shopscout-api/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		ProductAPIKey:   "test-key",
		ProductAPIHost:  "example.test",
		AffiliateTag:    "shopscout0f-20",
		SearchCountry:   "US",
		UpstreamTimeout: 2 * time.Second,
	}
}

func newTestAdapter(serverURL string) *AmazonAdapter {
	a := NewAmazonAdapter(testConfig(), zerolog.Nop())
	a.baseURL = serverURL
	return a
}

func TestSearch_MissingCredentialsSkipsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called without credentials")
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.ProductAPIKey = ""
	a := NewAmazonAdapter(cfg, zerolog.Nop())
	a.baseURL = srv.URL

	products := a.Search(context.Background(), "lego", 1)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestSearch_ProjectsUpstreamProducts(t *testing.T) {
	var gotKey, gotHost, gotQuery, gotPage, gotCountry, gotSort string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotHost = r.Header.Get("X-RapidAPI-Host")
		gotQuery = r.URL.Query().Get("query")
		gotPage = r.URL.Query().Get("page")
		gotCountry = r.URL.Query().Get("country")
		gotSort = r.URL.Query().Get("sort_by")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"data": {
				"products": [
					{
						"asin": "B0ABC123",
						"product_title": "LEGO Classic Bricks",
						"product_price": "$29.99",
						"product_original_price": "$39.99",
						"product_star_rating": "4.7",
						"product_num_ratings": 1532,
						"product_url": "https://www.amazon.com/dp/B0ABC123",
						"product_photo": "https://m.media-amazon.com/images/I/abc.jpg",
						"is_prime": true,
						"delivery": "FREE delivery Tue, Sep 2"
					},
					{
						"product_title": "LEGO Minifigure",
						"product_price": "$9.99",
						"product_url": "https://www.amazon.com/dp/B0DEF456?ref=sr_1_2"
					}
				]
			}
		}`))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	products := a.Search(context.Background(), "lego", 2)

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "example.test", gotHost)
	assert.Equal(t, "lego", gotQuery)
	assert.Equal(t, "2", gotPage)
	assert.Equal(t, "US", gotCountry)
	assert.Equal(t, "RELEVANCE", gotSort)

	require.Len(t, products, 2)

	first := products[0]
	assert.Equal(t, "LEGO Classic Bricks", first.Title)
	assert.Equal(t, "$29.99", first.Price)
	assert.Equal(t, 29.99, first.PriceValue)
	assert.Equal(t, "https://m.media-amazon.com/images/I/abc.jpg", first.PhotoURL)
	assert.Equal(t, "https://www.amazon.com/dp/B0ABC123?tag=shopscout0f-20", first.URL)
	assert.Equal(t, "B0ABC123", first.ASIN)
	assert.Equal(t, "FREE delivery Tue, Sep 2", first.Delivery)
	assert.Equal(t, "$39.99", first.OriginalPrice)
	assert.Equal(t, models.ShippingDomestic, first.Shipping)
	require.NotNil(t, first.IsPrime)
	assert.True(t, *first.IsPrime)
	require.NotNil(t, first.Rating)
	assert.Equal(t, 4.7, *first.Rating)
	require.NotNil(t, first.ReviewCount)
	assert.Equal(t, 1532, *first.ReviewCount)

	// Fields absent upstream stay absent; an existing query string gets '&'.
	second := products[1]
	assert.Equal(t, "https://www.amazon.com/dp/B0DEF456?ref=sr_1_2&tag=shopscout0f-20", second.URL)
	assert.Empty(t, second.ASIN)
	assert.Empty(t, second.OriginalPrice)
	assert.Nil(t, second.IsPrime)
	assert.Nil(t, second.Rating)
	assert.Nil(t, second.ReviewCount)
}

func TestSearch_ErrorStatusReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	products := a.Search(context.Background(), "lego", 1)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestSearch_MalformedBodyReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "OK", "data": {`))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	products := a.Search(context.Background(), "lego", 1)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestSearch_MissingProductListReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "OK", "data": {}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	products := a.Search(context.Background(), "lego", 1)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestSearch_TransportErrorReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	a := newTestAdapter(srv.URL)
	products := a.Search(context.Background(), "lego", 1)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestSearch_NonPositivePageDefaultsToOne(t *testing.T) {
	var gotPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "OK", "data": {"products": []}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	a.Search(context.Background(), "lego", 0)
	assert.Equal(t, "1", gotPage)
}
