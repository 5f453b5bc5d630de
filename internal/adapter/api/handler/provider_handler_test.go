package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/agmarket"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/openweather"
)

// Unconfigured clients make every provider call fail before any
// network I/O, so these tests exercise only the handler's own checks.
func newProviderTestServer() (*echo.Echo, *ProviderHandler) {
	return echo.New(), NewProviderHandler(openweather.NewClient(""), agmarket.NewClient(""))
}

func TestGeocodeRequiresQuery(t *testing.T) {
	e, h := newProviderTestServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/geocode", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Geocode(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeocodeUnconfigured(t *testing.T) {
	e, h := newProviderTestServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/geocode?q=Nashik", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Geocode(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}

func TestWeatherRequiresCoordinates(t *testing.T) {
	e, h := newProviderTestServer()

	for _, target := range []string{"/v1/weather", "/v1/weather?lat=19.9", "/v1/weather?lon=73.7"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		require.NoError(t, h.Weather(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestWeatherRejectsUnknownType(t *testing.T) {
	e, h := newProviderTestServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/weather?lat=19.9&lon=73.7&type=hourly", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Weather(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarketPricesFallback(t *testing.T) {
	e, h := newProviderTestServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/market-prices", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.MarketPrices(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, agmarket.SourceMock, rec.Header().Get("X-Data-Source"))
	assert.Contains(t, rec.Body.String(), "Wheat")
}

func TestMarketPricesFilter(t *testing.T) {
	e, h := newProviderTestServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/market-prices?category=vegetables&commodity=Tomato", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.MarketPrices(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tomato")
	assert.NotContains(t, rec.Body.String(), "Wheat")
}
