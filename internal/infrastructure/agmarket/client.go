package agmarket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/logger"
)

const resourceURL = "https://api.data.gov.in/resource/9ef84268-d588-465a-a308-a864a43d0070"

type PriceEntry struct {
	Commodity string  `json:"commodity"`
	Market    string  `json:"market,omitempty"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
}

type CategoryPrices struct {
	Category string       `json:"category"`
	Products []PriceEntry `json:"products"`
}

// Snapshot is a market-price listing plus where it came from: the
// provider or the built-in fallback table.
type Snapshot struct {
	Source     string           `json:"-"`
	Categories []CategoryPrices `json:"categories"`
	FetchedAt  time.Time        `json:"fetched_at"`
}

const (
	SourceProvider = "external-api"
	SourceMock     = "mock"
)

type providerRecord struct {
	Commodity  string `json:"commodity"`
	Market     string `json:"market"`
	ModalPrice string `json:"modal_price"`
}

type providerResponse struct {
	Records []providerRecord `json:"records"`
}

// Client proxies the data.gov.in agmarket feed, degrading to a static
// table when the provider is unavailable or unconfigured.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    resourceURL,
	}
}

// Prices returns current commodity prices, filtered by category and
// commodity name when given.
func (c *Client) Prices(ctx context.Context, category, commodity string) (*Snapshot, error) {
	if c.apiKey == "" {
		return c.mock(category, commodity), nil
	}

	query := url.Values{}
	query.Set("api-key", c.apiKey)
	query.Set("format", "json")
	query.Set("offset", "0")
	query.Set("limit", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return c.mock(category, commodity), nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Agmarket provider unreachable, serving fallback data: %v", err)
		return c.mock(category, commodity), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Agmarket provider returned %d, serving fallback data", resp.StatusCode)
		return c.mock(category, commodity), nil
	}

	var parsed providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || len(parsed.Records) == 0 {
		return c.mock(category, commodity), nil
	}

	byCategory := map[string][]PriceEntry{}
	for _, record := range parsed.Records {
		price, err := strconv.ParseFloat(record.ModalPrice, 64)
		if err != nil {
			continue
		}
		cat := categoryOf(record.Commodity)
		byCategory[cat] = append(byCategory[cat], PriceEntry{
			Commodity: record.Commodity,
			Market:    record.Market,
			Unit:      "quintal",
			Price:     price,
			Currency:  "INR",
		})
	}

	snapshot := &Snapshot{Source: SourceProvider, FetchedAt: time.Now()}
	for cat, products := range byCategory {
		snapshot.Categories = append(snapshot.Categories, CategoryPrices{Category: cat, Products: products})
	}
	return filter(snapshot, category, commodity), nil
}

func categoryOf(commodity string) string {
	c := strings.ToLower(commodity)
	switch {
	case strings.Contains(c, "wheat"), strings.Contains(c, "rice"), strings.Contains(c, "maize"), strings.Contains(c, "paddy"):
		return "grains"
	case strings.Contains(c, "tomato"), strings.Contains(c, "onion"), strings.Contains(c, "potato"), strings.Contains(c, "brinjal"):
		return "vegetables"
	case strings.Contains(c, "apple"), strings.Contains(c, "banana"), strings.Contains(c, "mango"):
		return "fruits"
	default:
		return "other"
	}
}

var fallbackPrices = []CategoryPrices{
	{
		Category: "grains",
		Products: []PriceEntry{
			{Commodity: "Wheat", Unit: "quintal", Price: 2275, Currency: "INR"},
			{Commodity: "Rice", Unit: "quintal", Price: 3100, Currency: "INR"},
			{Commodity: "Maize", Unit: "quintal", Price: 2090, Currency: "INR"},
		},
	},
	{
		Category: "vegetables",
		Products: []PriceEntry{
			{Commodity: "Tomato", Unit: "quintal", Price: 1450, Currency: "INR"},
			{Commodity: "Onion", Unit: "quintal", Price: 1800, Currency: "INR"},
			{Commodity: "Potato", Unit: "quintal", Price: 1200, Currency: "INR"},
		},
	},
	{
		Category: "fruits",
		Products: []PriceEntry{
			{Commodity: "Apple", Unit: "quintal", Price: 7500, Currency: "INR"},
			{Commodity: "Banana", Unit: "quintal", Price: 2400, Currency: "INR"},
		},
	},
}

func (c *Client) mock(category, commodity string) *Snapshot {
	snapshot := &Snapshot{
		Source:     SourceMock,
		Categories: fallbackPrices,
		FetchedAt:  time.Now(),
	}
	return filter(snapshot, category, commodity)
}

func filter(snapshot *Snapshot, category, commodity string) *Snapshot {
	if category == "" && commodity == "" {
		return snapshot
	}

	var kept []CategoryPrices
	for _, cat := range snapshot.Categories {
		if category != "" && !strings.EqualFold(cat.Category, category) {
			continue
		}
		if commodity == "" {
			kept = append(kept, cat)
			continue
		}
		var products []PriceEntry
		for _, p := range cat.Products {
			if strings.EqualFold(p.Commodity, commodity) {
				products = append(products, p)
			}
		}
		if len(products) > 0 {
			kept = append(kept, CategoryPrices{Category: cat.Category, Products: products})
		}
	}
	snapshot.Categories = kept
	return snapshot
}
