package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
)

const (
	weatherBaseURL = "https://api.openweathermap.org/data/2.5"
	geocodeBaseURL = "https://api.openweathermap.org/geo/1.0"
)

// Result carries the provider's raw JSON body so handlers can relay it
// verbatim.
type Result struct {
	Status int
	Body   json.RawMessage
}

// Client is a thin passthrough to OpenWeatherMap. No caching, no
// retries; every call is bounded by the HTTP client timeout.
type Client struct {
	apiKey     string
	httpClient *http.Client
	weatherURL string
	geocodeURL string
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		weatherURL: weatherBaseURL,
		geocodeURL: geocodeBaseURL,
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// CurrentWeather fetches current conditions for a coordinate pair, in
// metric units.
func (c *Client) CurrentWeather(ctx context.Context, lat, lon string) (*Result, error) {
	query := url.Values{}
	query.Set("lat", lat)
	query.Set("lon", lon)
	query.Set("units", "metric")
	query.Set("appid", c.apiKey)

	return c.get(ctx, c.weatherURL+"/weather?"+query.Encode())
}

// Forecast fetches the 5-day forecast for a coordinate pair.
func (c *Client) Forecast(ctx context.Context, lat, lon string) (*Result, error) {
	query := url.Values{}
	query.Set("lat", lat)
	query.Set("lon", lon)
	query.Set("units", "metric")
	query.Set("appid", c.apiKey)

	return c.get(ctx, c.weatherURL+"/forecast?"+query.Encode())
}

// Geocode resolves a free-text location query to coordinates.
func (c *Client) Geocode(ctx context.Context, q string, limit int) (*Result, error) {
	query := url.Values{}
	query.Set("q", q)
	query.Set("limit", fmt.Sprintf("%d", limit))
	query.Set("appid", c.apiKey)

	return c.get(ctx, c.geocodeURL+"/direct?"+query.Encode())
}

func (c *Client) get(ctx context.Context, endpoint string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Internal("Failed to build provider request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Upstream("Weather provider unreachable", http.StatusBadGateway, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Upstream("Failed to read provider response", http.StatusBadGateway, err)
	}

	return &Result{Status: resp.StatusCode, Body: body}, nil
}
