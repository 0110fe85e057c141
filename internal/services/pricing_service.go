package services

import (
	"fmt"
	"math/rand"
	"net/url"
)

// CompetitorPrice is one retailer's quote for a product.
type CompetitorPrice struct {
	Retailer string  `json:"retailer"`
	Price    float64 `json:"price"`
	InStock  bool    `json:"inStock"`
	Link     string  `json:"link"`
}

type retailer struct {
	name   string
	domain string
}

// PricingService produces simulated competitor quotes. There is no
// real scraping behind this; quotes land 0-25% above our price so the
// storefront always shows the best deal.
type PricingService struct {
	retailers []retailer
}

// NewPricingService constructs a PricingService with the default
// retailer set.
func NewPricingService() *PricingService {
	return &PricingService{
		retailers: []retailer{
			{name: "Amazon", domain: "amazon.in"},
			{name: "Flipkart", domain: "flipkart.com"},
			{name: "Croma", domain: "croma.com"},
			{name: "Reliance Digital", domain: "reliancedigital.in"},
		},
	}
}

// CompetitorPrices returns one quote per retailer for the named
// product at our price.
func (s *PricingService) CompetitorPrices(productName string, ourPrice float64) []CompetitorPrice {
	quotes := make([]CompetitorPrice, 0, len(s.retailers))
	for _, r := range s.retailers {
		markup := 1 + rand.Float64()*0.25
		quotes = append(quotes, CompetitorPrice{
			Retailer: r.name,
			Price:    float64(int64(ourPrice*markup + 0.5)),
			InStock:  rand.Float64() > 0.2,
			Link:     fmt.Sprintf("https://www.%s/search?q=%s", r.domain, url.QueryEscape(productName)),
		})
	}
	return quotes
}
