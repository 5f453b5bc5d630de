package router

import (
	"github.com/labstack/echo/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/api/handler"
)

// Provider routes are public: they expose read-only external data and
// carry no user state.
func SetupProviderRouter(e *echo.Echo) {
	providerHandler := handler.GetProviderHandler()

	e.GET("/v1/geocode", providerHandler.Geocode)
	e.GET("/v1/weather", providerHandler.Weather)
	e.GET("/v1/market-prices", providerHandler.MarketPrices)
}
