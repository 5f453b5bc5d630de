package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/agmarket"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/openweather"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/response"
)

// ProviderHandler fronts the external data providers: weather and
// geocoding from OpenWeatherMap, commodity prices from the agmarket
// feed. Provider responses are relayed verbatim, status code included.
type ProviderHandler struct {
	weather  *openweather.Client
	agmarket *agmarket.Client
}

func NewProviderHandler(weather *openweather.Client, agmarketClient *agmarket.Client) *ProviderHandler {
	return &ProviderHandler{
		weather:  weather,
		agmarket: agmarketClient,
	}
}

func (h *ProviderHandler) Geocode(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return response.Error(c, errors.BadRequest("Location query is required", nil))
	}

	if !h.weather.Configured() {
		return response.Error(c, errors.Internal("Geocoding service is not configured", nil))
	}

	limit := 5
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.Error(c, errors.BadRequest("Invalid limit", err))
		}
		limit = parsed
	}

	result, err := h.weather.Geocode(c.Request().Context(), q, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSONBlob(result.Status, result.Body)
}

func (h *ProviderHandler) Weather(c echo.Context) error {
	lat := c.QueryParam("lat")
	lon := c.QueryParam("lon")
	if lat == "" || lon == "" {
		return response.Error(c, errors.BadRequest("Latitude and longitude are required", nil))
	}

	forecastType := c.QueryParam("type")
	if forecastType == "" {
		forecastType = "current"
	}
	if forecastType != "current" && forecastType != "forecast" {
		return response.Error(c, errors.BadRequest("Type must be 'current' or 'forecast'", nil))
	}

	if !h.weather.Configured() {
		return response.Error(c, errors.Internal("Weather service is not configured", nil))
	}

	var (
		result *openweather.Result
		err    error
	)
	if forecastType == "forecast" {
		result, err = h.weather.Forecast(c.Request().Context(), lat, lon)
	} else {
		result, err = h.weather.CurrentWeather(c.Request().Context(), lat, lon)
	}
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSONBlob(result.Status, result.Body)
}

func (h *ProviderHandler) MarketPrices(c echo.Context) error {
	snapshot, err := h.agmarket.Prices(c.Request().Context(), c.QueryParam("category"), c.QueryParam("commodity"))
	if err != nil {
		return response.Error(c, err)
	}

	c.Response().Header().Set("X-Data-Source", snapshot.Source)
	return response.Success(c, snapshot)
}
