package handler

import (
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/agmarket"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/auth"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/openweather"
	ws "github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/websocket"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/usecase"
)

var (
	authHandler        *AuthHandler
	userHandler        *UserHandler
	productHandler     *ProductHandler
	messagingHandler   *MessagingHandler
	orderHandler       *OrderHandler
	transactionHandler *TransactionHandler
	providerHandler    *ProviderHandler
	webSocketHandler   *WebSocketHandler
	healthHandler      *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	productUseCase *usecase.ProductUseCase,
	messagingUseCase *usecase.MessagingUseCase,
	orderUseCase *usecase.OrderUseCase,
	transactionUseCase *usecase.TransactionUseCase,
	weatherClient *openweather.Client,
	agmarketClient *agmarket.Client,
	hub *ws.Manager,
	tokenManager *auth.TokenManager,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	productHandler = NewProductHandler(productUseCase)
	messagingHandler = NewMessagingHandler(messagingUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	transactionHandler = NewTransactionHandler(transactionUseCase)
	providerHandler = NewProviderHandler(weatherClient, agmarketClient)
	webSocketHandler = NewWebSocketHandler(hub, tokenManager)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetMessagingHandler() *MessagingHandler {
	return messagingHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetTransactionHandler() *TransactionHandler {
	return transactionHandler
}

func GetProviderHandler() *ProviderHandler {
	return providerHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
