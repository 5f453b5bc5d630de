package router

import (
	"github.com/labstack/echo/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware)
	SetupMessagingRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupTransactionRouter(e, authMiddleware)
	SetupProviderRouter(e)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)
}
