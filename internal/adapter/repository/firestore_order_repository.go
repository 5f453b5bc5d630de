package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/repository"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/logger"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return r.listByField(ctx, "buyerId", buyerID, limit, offset)
}

func (r *firestoreOrderRepository) ListByFarmer(ctx context.Context, farmerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return r.listByField(ctx, "farmerId", farmerID, limit, offset)
}

func (r *firestoreOrderRepository) listByField(ctx context.Context, field, value string, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection("orders").
		Where(field, "==", value).
		OrderBy("createdAt", firestore.Desc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while listing orders by %s: %v", field, err)
		return nil, 0, errors.Internal("Failed to list orders", err)
	}

	total := int64(len(docs))

	start := offset
	if start > len(docs) {
		start = len(docs)
	}
	end := len(docs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var orders []*entity.Order
	for i := start; i < end; i++ {
		var order entity.Order
		if err := docs[i].DataTo(&order); err != nil {
			logger.Warn("Skipping malformed order document %s: %v", docs[i].Ref.ID, err)
			continue
		}
		orders = append(orders, &order)
	}

	return orders, total, nil
}

func (r *firestoreOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.UpdatedAt = time.Now()

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to update order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) LastOrderNumber(ctx context.Context) (string, error) {
	query := r.client.Collection("orders").OrderBy("createdAt", firestore.Desc).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return "", nil
		}
		return "", errors.Internal("Failed to query last order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return "", errors.Internal("Failed to parse order data", err)
	}

	return order.OrderNumber, nil
}
