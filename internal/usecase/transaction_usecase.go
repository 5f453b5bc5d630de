package usecase

import (
	"context"
	"time"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/repository"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/logger"
)

type TransactionUseCase struct {
	transactionRepo repository.TransactionRepository
	userRepo        repository.UserRepository
}

func NewTransactionUseCase(transactionRepo repository.TransactionRepository, userRepo repository.UserRepository) *TransactionUseCase {
	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

type CreateTransactionInput struct {
	RecipientID   string
	Amount        float64
	Currency      string
	Type          string
	Description   string
	Reference     string
	PaymentMethod string
	Fee           float64
}

// RecordTransaction appends a ledger entry. Entries start pending and
// are settled later through UpdateStatus; they are never deleted.
func (uc *TransactionUseCase) RecordTransaction(ctx context.Context, senderID string, input CreateTransactionInput) (*entity.Transaction, error) {
	if input.Amount < 0 {
		return nil, errors.BadRequest("Amount must not be negative", nil)
	}
	if input.Fee < 0 {
		return nil, errors.BadRequest("Fee must not be negative", nil)
	}
	if !entity.ValidTransactionType(input.Type) {
		return nil, errors.BadRequest("Invalid transaction type", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, input.RecipientID); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	reference := input.Reference
	if reference == "" {
		reference = entity.NewTransactionReference(time.Now())
	}

	transaction := &entity.Transaction{
		SenderID:      senderID,
		RecipientID:   input.RecipientID,
		Amount:        input.Amount,
		Currency:      currency,
		Type:          input.Type,
		Status:        entity.TransactionStatusPending,
		Description:   input.Description,
		Reference:     reference,
		PaymentMethod: input.PaymentMethod,
		Fee:           input.Fee,
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	logger.Info("Recorded transaction %s (%s %.2f %s)", transaction.Reference, transaction.Type, transaction.Amount, transaction.Currency)
	return transaction, nil
}

func (uc *TransactionUseCase) GetTransaction(ctx context.Context, userID, transactionID string) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction.SenderID != userID && transaction.RecipientID != userID {
		return nil, errors.Forbidden("You are not a party to this transaction", nil)
	}
	return transaction, nil
}

func (uc *TransactionUseCase) ListTransactions(ctx context.Context, userID string, limit, offset int) ([]*entity.Transaction, int64, error) {
	return uc.transactionRepo.ListByUserID(ctx, userID, limit, offset)
}

// UpdateStatus moves an entry along the settlement state machine.
// Illegal transitions (anything out of a terminal status, or a jump the
// table does not list) are rejected.
func (uc *TransactionUseCase) UpdateStatus(ctx context.Context, userID, transactionID, newStatus string) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction.SenderID != userID && transaction.RecipientID != userID {
		return nil, errors.Forbidden("You are not a party to this transaction", nil)
	}

	if !entity.ValidTransactionTransition(transaction.Status, newStatus) {
		return nil, errors.BadRequest("Cannot transition from "+transaction.Status+" to "+newStatus, nil)
	}

	transaction.Status = newStatus
	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, err
	}

	logger.Info("Transaction %s moved to %s", transaction.Reference, newStatus)
	return transaction, nil
}
