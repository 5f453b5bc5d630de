package router

import (
	"github.com/labstack/echo/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/api/handler"
)

// Auth happens inside the handler; browsers cannot attach headers to
// the upgrade request.
func SetupWebSocketRouter(e *echo.Echo) {
	webSocketHandler := handler.GetWebSocketHandler()
	e.GET("/v1/ws", webSocketHandler.Connect)
}
