package models

// Shipping classification values used for the response metadata counts.
const (
	ShippingDomestic      = "Domestic"
	ShippingInternational = "International"
)

// Product is the normalized record every source produces, live or mock.
// Optional upstream fields stay absent when the source does not supply them.
type Product struct {
	ID            string   `json:"id,omitempty"`
	Title         string   `json:"title"`
	Price         string   `json:"price"`
	PriceValue    float64  `json:"priceValue,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	Site          string   `json:"site,omitempty"`
	PhotoURL      string   `json:"photoUrl,omitempty"`
	URL           string   `json:"url,omitempty"`
	ASIN          string   `json:"asin,omitempty"`
	Delivery      string   `json:"delivery,omitempty"`
	IsPrime       *bool    `json:"isPrime,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	ReviewCount   *int     `json:"reviewCount,omitempty"`
	OriginalPrice string   `json:"originalPrice,omitempty"`
	Shipping      string   `json:"shipping,omitempty"`
	DeliveryDays  int      `json:"deliveryDays,omitempty"`
}

// SearchMetadata breaks the result set down by shipping origin.
type SearchMetadata struct {
	DomesticCount      int `json:"domesticCount"`
	InternationalCount int `json:"internationalCount"`
}

// SearchResponse is the envelope returned to API callers. Error is set only on
// degraded responses.
type SearchResponse struct {
	Results  []Product      `json:"results"`
	Total    int            `json:"total"`
	Metadata SearchMetadata `json:"metadata"`
	Error    string         `json:"error,omitempty"`
}

// SearchParams carries a validated search request into the service layer.
type SearchParams struct {
	Query string `json:"query"`
	Page  int    `json:"page"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
