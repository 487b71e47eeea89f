// Package catalog holds the fixed fallback product list. It exists as an
// availability guarantee: when the live source yields nothing, searches are
// answered from here instead of an empty page.
package catalog

import "shopscout-api/internal/models"

var products = []models.Product{
	{
		ID:           "mock-1",
		Title:        "Wireless Noise-Cancelling Headphones",
		Price:        "$129.99",
		PriceValue:   129.99,
		Currency:     "USD",
		Site:         "Amazon",
		PhotoURL:     "https://images.shopscout.dev/mock/headphones.jpg",
		Shipping:     models.ShippingDomestic,
		DeliveryDays: 2,
	},
	{
		ID:           "mock-2",
		Title:        "Stainless Steel Insulated Water Bottle 32oz",
		Price:        "$24.50",
		PriceValue:   24.50,
		Currency:     "USD",
		Site:         "Walmart",
		PhotoURL:     "https://images.shopscout.dev/mock/bottle.jpg",
		Shipping:     models.ShippingDomestic,
		DeliveryDays: 3,
	},
	{
		ID:           "mock-3",
		Title:        "Mechanical Keyboard 87-Key Hot-Swappable",
		Price:        "$59.00",
		PriceValue:   59.00,
		Currency:     "USD",
		Site:         "AliExpress",
		PhotoURL:     "https://images.shopscout.dev/mock/keyboard.jpg",
		Shipping:     models.ShippingInternational,
		DeliveryDays: 14,
	},
	{
		ID:           "mock-4",
		Title:        "USB-C Charging Cable 3-Pack 6ft",
		Price:        "$12.99",
		PriceValue:   12.99,
		Currency:     "USD",
		Site:         "Amazon",
		PhotoURL:     "https://images.shopscout.dev/mock/cable.jpg",
		Shipping:     models.ShippingDomestic,
		DeliveryDays: 2,
	},
	{
		ID:           "mock-5",
		Title:        "Portable Bluetooth Speaker Waterproof",
		Price:        "$39.95",
		PriceValue:   39.95,
		Currency:     "USD",
		Site:         "eBay",
		PhotoURL:     "https://images.shopscout.dev/mock/speaker.jpg",
		Shipping:     models.ShippingDomestic,
		DeliveryDays: 5,
	},
	{
		ID:           "mock-6",
		Title:        "Smart LED Light Strip 16.4ft",
		Price:        "$18.75",
		PriceValue:   18.75,
		Currency:     "USD",
		Site:         "AliExpress",
		PhotoURL:     "https://images.shopscout.dev/mock/lightstrip.jpg",
		Shipping:     models.ShippingInternational,
		DeliveryDays: 12,
	},
	{
		ID:           "mock-7",
		Title:        "Ergonomic Laptop Stand Aluminum",
		Price:        "$34.99",
		PriceValue:   34.99,
		Currency:     "USD",
		Site:         "Amazon",
		PhotoURL:     "https://images.shopscout.dev/mock/stand.jpg",
		Shipping:     models.ShippingDomestic,
		DeliveryDays: 2,
	},
	{
		ID:           "mock-8",
		Title:        "Minimalist Canvas Backpack 25L",
		Price:        "$45.00",
		PriceValue:   45.00,
		Currency:     "USD",
		Site:         "eBay",
		PhotoURL:     "https://images.shopscout.dev/mock/backpack.jpg",
		Shipping:     models.ShippingInternational,
		DeliveryDays: 10,
	},
}

// Products returns the full catalog in declaration order, unfiltered and
// un-paginated. The returned slice is a copy; callers cannot write through to
// the backing catalog.
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}
