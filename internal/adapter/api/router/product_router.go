package router

import (
	"github.com/labstack/echo/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/api/handler"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()

	// Public catalog
	e.GET("/v1/products", productHandler.ListProducts)
	e.GET("/v1/products/:id", productHandler.GetProduct)

	// Farmer-owned listings
	protected := e.Group("/v1/products")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", productHandler.CreateProduct)
	protected.PUT("/:id", productHandler.UpdateProduct)
	protected.DELETE("/:id", productHandler.DeleteProduct)
}
