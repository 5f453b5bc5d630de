package router

import (
	"github.com/labstack/echo/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/api/handler"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	// Public profile lookup
	e.GET("/v1/users/:id", userHandler.GetUser)

	me := e.Group("/v1/users/me")
	me.Use(authMiddleware.Authenticate)

	me.GET("", userHandler.GetProfile)
	me.PATCH("", userHandler.UpdateProfile)
}
