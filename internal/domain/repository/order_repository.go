package repository

import (
	"context"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error)
	ListByFarmer(ctx context.Context, farmerID string, limit, offset int) ([]*entity.Order, int64, error)
	Update(ctx context.Context, order *entity.Order) error
	// LastOrderNumber returns the most recently created order's number,
	// or "" when the collection is empty.
	LastOrderNumber(ctx context.Context) (string, error)
}
