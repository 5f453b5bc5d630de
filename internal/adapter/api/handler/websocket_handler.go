package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/auth"
	ws "github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/websocket"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler upgrades authenticated clients into the realtime
// hub. Browsers cannot set an Authorization header on the upgrade
// request, so the token travels as a query parameter.
type WebSocketHandler struct {
	hub          *ws.Manager
	tokenManager *auth.TokenManager
}

func NewWebSocketHandler(hub *ws.Manager, tokenManager *auth.TokenManager) *WebSocketHandler {
	return &WebSocketHandler{
		hub:          hub,
		tokenManager: tokenManager,
	}
}

func (h *WebSocketHandler) Connect(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing token")
	}

	userID, _, err := h.tokenManager.Verify(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed for %s: %v", userID, err)
		return err
	}

	client := &ws.Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump(h.hub)

	return nil
}
