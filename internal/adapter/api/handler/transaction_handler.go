package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/usecase"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/response"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/utils"
)

type TransactionHandler struct {
	transactionUseCase *usecase.TransactionUseCase
}

func NewTransactionHandler(transactionUseCase *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
	}
}

type createTransactionRequest struct {
	RecipientID   string  `json:"recipient_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	Currency      string  `json:"currency"`
	Type          string  `json:"type" validate:"required,oneof=deposit withdrawal transfer payment refund"`
	Description   string  `json:"description"`
	Reference     string  `json:"reference"`
	PaymentMethod string  `json:"payment_method"`
	Fee           float64 `json:"fee" validate:"gte=0"`
}

func (h *TransactionHandler) RecordTransaction(c echo.Context) error {
	var req createTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	senderID := c.Get("uid").(string)
	transaction, err := h.transactionUseCase.RecordTransaction(c.Request().Context(), senderID, usecase.CreateTransactionInput{
		RecipientID:   req.RecipientID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Type:          req.Type,
		Description:   req.Description,
		Reference:     req.Reference,
		PaymentMethod: req.PaymentMethod,
		Fee:           req.Fee,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, transaction)
}

func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID := c.Get("uid").(string)

	transaction, err := h.transactionUseCase.GetTransaction(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, transaction)
}

func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	transactions, total, err := h.transactionUseCase.ListTransactions(c.Request().Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, transactions, total, params.Page, params.PageSize)
}

type updateTransactionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed failed cancelled"`
}

func (h *TransactionHandler) UpdateStatus(c echo.Context) error {
	var req updateTransactionStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	transaction, err := h.transactionUseCase.UpdateStatus(c.Request().Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, transaction)
}
