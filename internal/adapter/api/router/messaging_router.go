package router

import (
	"github.com/labstack/echo/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/api/handler"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/api/middleware"
)

func SetupMessagingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	messagingHandler := handler.GetMessagingHandler()

	conversations := e.Group("/v1/conversations")
	conversations.Use(authMiddleware.Authenticate)

	conversations.POST("", messagingHandler.StartConversation)
	conversations.GET("", messagingHandler.ListConversations)
	conversations.GET("/:id", messagingHandler.GetConversation)
	conversations.POST("/:id/messages", messagingHandler.SendMessage)
	conversations.GET("/:id/messages", messagingHandler.ListMessages)
	conversations.PUT("/:id/read", messagingHandler.MarkConversationRead)
}
