package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/usecase"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/response"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type orderItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
}

type shippingRequest struct {
	Address      string    `json:"address" validate:"required"`
	Coordinates  []float64 `json:"coordinates" validate:"omitempty,len=2"`
	ContactName  string    `json:"contact_name" validate:"required"`
	ContactPhone string    `json:"contact_phone" validate:"required"`
	Instructions string    `json:"instructions"`
}

type createOrderRequest struct {
	FarmerID      string             `json:"farmer_id" validate:"required"`
	Items         []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string             `json:"payment_method" validate:"required"`
	Shipping      shippingRequest    `json:"shipping" validate:"required"`
	Notes         string             `json:"notes"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	buyerID := c.Get("uid").(string)
	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), buyerID, usecase.CreateOrderInput{
		FarmerID:      req.FarmerID,
		Items:         items,
		PaymentMethod: req.PaymentMethod,
		Shipping: entity.ShippingInfo{
			Address:      req.Shipping.Address,
			Coordinates:  req.Shipping.Coordinates,
			ContactName:  req.Shipping.ContactName,
			ContactPhone: req.Shipping.ContactPhone,
			Instructions: req.Shipping.Instructions,
		},
		Notes: req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID := c.Get("uid").(string)

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListOrders(c.Request().Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, params.Page, params.PageSize)
}

type updateOrderStatusRequest struct {
	Status            string     `json:"status" validate:"required,oneof=pending processing shipped delivered canceled"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	Notes             string     `json:"notes"`
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), userID, c.Param("id"), usecase.UpdateOrderStatusInput{
		Status:            req.Status,
		EstimatedDelivery: req.EstimatedDelivery,
		Notes:             req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

// MarkPaid is the buyer's payment confirmation callback.
func (h *OrderHandler) MarkPaid(c echo.Context) error {
	userID := c.Get("uid").(string)
	orderID := c.Param("id")

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.Error(c, err)
	}
	if order.BuyerID != userID {
		return response.Error(c, errors.Forbidden("Only the buyer can confirm payment", nil))
	}

	if err := h.orderUseCase.MarkPaid(c.Request().Context(), orderID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Payment recorded",
	})
}
