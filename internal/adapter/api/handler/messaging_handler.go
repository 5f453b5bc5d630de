package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/usecase"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/response"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/utils"
)

type MessagingHandler struct {
	messagingUseCase *usecase.MessagingUseCase
}

func NewMessagingHandler(messagingUseCase *usecase.MessagingUseCase) *MessagingHandler {
	return &MessagingHandler{
		messagingUseCase: messagingUseCase,
	}
}

type startConversationRequest struct {
	RecipientID    string `json:"recipient_id" validate:"required"`
	ProductID      string `json:"product_id"`
	InitialMessage string `json:"initial_message"`
}

func (h *MessagingHandler) StartConversation(c echo.Context) error {
	var req startConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	conversation, err := h.messagingUseCase.StartConversation(c.Request().Context(), userID, usecase.StartConversationInput{
		RecipientID:    req.RecipientID,
		ProductID:      req.ProductID,
		InitialMessage: req.InitialMessage,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, conversation)
}

func (h *MessagingHandler) ListConversations(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	conversations, total, err := h.messagingUseCase.ListConversations(c.Request().Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, conversations, total, params.Page, params.PageSize)
}

func (h *MessagingHandler) GetConversation(c echo.Context) error {
	userID := c.Get("uid").(string)

	conversation, err := h.messagingUseCase.GetConversation(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversation)
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *MessagingHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	message, err := h.messagingUseCase.SendMessage(c.Request().Context(), userID, c.Param("id"), req.Content)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *MessagingHandler) ListMessages(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	messages, total, err := h.messagingUseCase.ListMessages(c.Request().Context(), userID, c.Param("id"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, params.Page, params.PageSize)
}

func (h *MessagingHandler) MarkConversationRead(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.messagingUseCase.MarkConversationRead(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Conversation marked as read",
	})
}
