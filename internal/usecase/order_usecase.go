package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/repository"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/logger"
)

type OrderUseCase struct {
	orderRepo       repository.OrderRepository
	productRepo     repository.ProductRepository
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
	}
}

type OrderItemInput struct {
	ProductID string
	Quantity  float64
}

type CreateOrderInput struct {
	FarmerID      string
	Items         []OrderItemInput
	PaymentMethod string
	Shipping      entity.ShippingInfo
	Notes         string
}

// CreateOrder validates availability, prices the items, assigns an
// order number and records a pending payment ledger entry against the
// farmer.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, buyerID string, input CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, errors.BadRequest("Order must contain at least one item", nil)
	}
	if buyerID == input.FarmerID {
		return nil, errors.BadRequest("You cannot order from yourself", nil)
	}

	farmer, err := uc.userRepo.GetByID(ctx, input.FarmerID)
	if err != nil {
		return nil, err
	}
	if !farmer.IsFarmer() {
		return nil, errors.BadRequest("Recipient is not a farmer", nil)
	}

	var (
		items       []entity.OrderItem
		totalAmount float64
		currency    string
	)
	for _, item := range input.Items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product.FarmerID != input.FarmerID {
			return nil, errors.BadRequest("Product "+product.Name+" does not belong to this farmer", nil)
		}
		if item.Quantity <= 0 {
			return nil, errors.BadRequest("Quantity must be positive", nil)
		}
		if product.Quantity.Available < item.Quantity {
			return nil, errors.BadRequest("Insufficient quantity available for "+product.Name, nil)
		}
		if item.Quantity < product.Quantity.Minimum {
			return nil, errors.BadRequest("Minimum order for "+product.Name+" is "+strconv.FormatFloat(product.Quantity.Minimum, 'f', -1, 64)+" "+product.Quantity.Unit, nil)
		}

		subtotal := product.Price.Amount * item.Quantity
		totalAmount += subtotal
		if currency == "" {
			currency = product.Price.Currency
		}

		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Subtotal:  subtotal,
		})
	}

	orderNumber, err := uc.nextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		OrderNumber:   orderNumber,
		BuyerID:       buyerID,
		FarmerID:      input.FarmerID,
		Items:         items,
		TotalAmount:   totalAmount,
		Currency:      currency,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		PaymentMethod: input.PaymentMethod,
		Shipping:      input.Shipping,
		Notes:         input.Notes,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	// Ledger entry for the expected payment; settlement flows through
	// the transaction state machine, not this usecase.
	ledgerEntry := &entity.Transaction{
		SenderID:      buyerID,
		RecipientID:   input.FarmerID,
		Amount:        totalAmount,
		Currency:      currency,
		Type:          entity.TransactionTypePayment,
		Status:        entity.TransactionStatusPending,
		Description:   "Order " + order.OrderNumber,
		Reference:     entity.NewTransactionReference(time.Now()),
		PaymentMethod: input.PaymentMethod,
	}
	if err := uc.transactionRepo.Create(ctx, ledgerEntry); err != nil {
		logger.Error("Order %s created but ledger entry failed: %v", order.OrderNumber, err)
		return nil, err
	}
	order.PaymentReference = ledgerEntry.Reference
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// nextOrderNumber continues the sequence from the most recent order.
func (uc *OrderUseCase) nextOrderNumber(ctx context.Context) (string, error) {
	last, err := uc.orderRepo.LastOrderNumber(ctx)
	if err != nil {
		return "", err
	}

	counter := 1
	if last != "" {
		if idx := strings.LastIndex(last, "-"); idx >= 0 {
			if n, err := strconv.Atoi(last[idx+1:]); err == nil {
				counter = n + 1
			}
		}
	}

	return entity.FormatOrderNumber(time.Now(), counter), nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != userID && order.FarmerID != userID {
		return nil, errors.Forbidden("You are not a party to this order", nil)
	}
	return order, nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	if user.IsFarmer() {
		return uc.orderRepo.ListByFarmer(ctx, userID, limit, offset)
	}
	return uc.orderRepo.ListByBuyer(ctx, userID, limit, offset)
}

type UpdateOrderStatusInput struct {
	Status            string
	EstimatedDelivery *time.Time
	Notes             string
}

// UpdateStatus advances an order along the fulfilment state machine.
// Only the owning farmer may do so.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, userID, orderID string, input UpdateOrderStatusInput) (*entity.Order, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsFarmer() {
		return nil, errors.Forbidden("Only farmers can update order status", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.FarmerID != userID {
		return nil, errors.Forbidden("You do not have permission to update this order", nil)
	}

	if !entity.ValidOrderStatus(input.Status) {
		return nil, errors.BadRequest("Invalid status value", nil)
	}
	if !entity.ValidOrderTransition(order.Status, input.Status) {
		return nil, errors.BadRequest("Cannot transition from "+order.Status+" to "+input.Status, nil)
	}

	order.Status = input.Status
	if input.EstimatedDelivery != nil {
		order.EstimatedDelivery = input.EstimatedDelivery
	}
	if input.Notes != "" {
		order.Notes = input.Notes
	}
	if input.Status == entity.OrderStatusDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// MarkPaid settles the order's payment: flips the payment status,
// completes the ledger entry and reduces product stock.
func (uc *OrderUseCase) MarkPaid(ctx context.Context, orderID string) error {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.PaymentStatus == entity.PaymentStatusPaid {
		return nil
	}

	order.PaymentStatus = entity.PaymentStatusPaid
	if order.Status == entity.OrderStatusPending {
		order.Status = entity.OrderStatusProcessing
	}
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return err
	}

	if order.PaymentReference != "" {
		ledgerEntry, err := uc.transactionRepo.GetByReference(ctx, order.PaymentReference)
		if err == nil && ledgerEntry.Status == entity.TransactionStatusPending {
			ledgerEntry.Status = entity.TransactionStatusCompleted
			if err := uc.transactionRepo.Update(ctx, ledgerEntry); err != nil {
				logger.Error("Failed to settle ledger entry %s: %v", ledgerEntry.Reference, err)
			}
		}
	}

	for _, item := range order.Items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			logger.Warn("Product %s missing while reducing stock for order %s", item.ProductID, order.OrderNumber)
			continue
		}
		product.Quantity.Available -= item.Quantity
		if product.Quantity.Available <= 0 {
			product.Quantity.Available = 0
			product.Status = entity.ProductStatusSoldOut
		} else if product.Quantity.Available < product.Quantity.Minimum {
			product.Status = entity.ProductStatusLowStock
		}
		if err := uc.productRepo.Update(ctx, product); err != nil {
			logger.Error("Failed to reduce stock for %s: %v", product.ID, err)
		}
	}

	return nil
}
