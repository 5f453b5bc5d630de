package repository

import (
	"context"
	"sort"
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

type firestoreTransactionRepository struct {
	client *firestore.Client
}

func NewFirestoreTransactionRepository(client *firestore.Client) repository.TransactionRepository {
	return &firestoreTransactionRepository{
		client: client,
	}
}

func (r *firestoreTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}

	now := time.Now()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	_, err := r.client.Collection("transactions").Doc(transaction.ID).Set(ctx, transaction)
	if err != nil {
		return errors.Internal("Failed to create transaction", err)
	}

	return nil
}

func (r *firestoreTransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	doc, err := r.client.Collection("transactions").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Transaction", err)
		}
		return nil, errors.Internal("Failed to get transaction", err)
	}

	var transaction entity.Transaction
	if err := doc.DataTo(&transaction); err != nil {
		return nil, errors.Internal("Failed to parse transaction data", err)
	}

	return &transaction, nil
}

func (r *firestoreTransactionRepository) GetByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	query := r.client.Collection("transactions").Where("reference", "==", reference).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Transaction", nil)
		}
		return nil, errors.Internal("Failed to query transaction by reference", err)
	}

	var transaction entity.Transaction
	if err := doc.DataTo(&transaction); err != nil {
		return nil, errors.Internal("Failed to parse transaction data", err)
	}

	return &transaction, nil
}

// ListByUserID returns entries where the user is sender or recipient,
// newest first. Firestore has no OR queries across fields, so the two
// sides are fetched separately and merged.
func (r *firestoreTransactionRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Transaction, int64, error) {
	byID := make(map[string]*entity.Transaction)

	for _, field := range []string{"senderId", "recipientId"} {
		docs, err := r.client.Collection("transactions").Where(field, "==", userID).Documents(ctx).GetAll()
		if err != nil {
			logger.Error("Firestore error while listing transactions by %s: %v", field, err)
			return nil, 0, errors.Internal("Failed to list transactions", err)
		}
		for _, doc := range docs {
			var transaction entity.Transaction
			if err := doc.DataTo(&transaction); err != nil {
				logger.Warn("Skipping malformed transaction document %s: %v", doc.Ref.ID, err)
				continue
			}
			byID[transaction.ID] = &transaction
		}
	}

	merged := make([]*entity.Transaction, 0, len(byID))
	for _, transaction := range byID {
		merged = append(merged, transaction)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	total := int64(len(merged))

	start := offset
	if start > len(merged) {
		start = len(merged)
	}
	end := len(merged)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	return merged[start:end], total, nil
}

func (r *firestoreTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transaction.UpdatedAt = time.Now()

	_, err := r.client.Collection("transactions").Doc(transaction.ID).Set(ctx, transaction)
	if err != nil {
		return errors.Internal("Failed to update transaction", err)
	}

	return nil
}
