package repository

import (
	"context"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
)

// ProductFilter narrows catalog listings. Zero values mean "no
// constraint"; Status defaults to available in the usecase.
type ProductFilter struct {
	Category string
	Query    string
	Organic  bool
	MinPrice float64
	MaxPrice float64
	FarmerID string
	Status   string
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
