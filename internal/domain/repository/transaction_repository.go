package repository

import (
	"context"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*entity.Transaction, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Transaction, int64, error)
	Update(ctx context.Context, transaction *entity.Transaction) error
}
