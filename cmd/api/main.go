package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/api"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/api/handler"
	apimiddleware "github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/api/middleware"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/api/router"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/repository"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/agmarket"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/auth"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/openweather"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/websocket"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/usecase"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsJSON := os.Getenv("FIRESTORE_CREDENTIALS_JSON"); credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	} else if credentialsPath := os.Getenv("FIRESTORE_CREDENTIALS_PATH"); credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	conversationRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	transactionRepo := repository.NewFirestoreTransactionRepository(firestoreClient)

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	weatherClient := openweather.NewClient(cfg.OpenWeatherKey)
	agmarketClient := agmarket.NewClient(cfg.AgmarketKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenManager)
	userUseCase := usecase.NewUserUseCase(userRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, userRepo)
	messagingUseCase := usecase.NewMessagingUseCase(conversationRepo, userRepo, productRepo, wsManager)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, userRepo, transactionRepo)
	transactionUseCase := usecase.NewTransactionUseCase(transactionRepo, userRepo)

	handler.Setup(
		authUseCase,
		userUseCase,
		productUseCase,
		messagingUseCase,
		orderUseCase,
		transactionUseCase,
		weatherClient,
		agmarketClient,
		wsManager,
		tokenManager,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)
	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
