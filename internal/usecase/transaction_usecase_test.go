package usecase

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
)

func newTestTransactionUseCase(t *testing.T) (*TransactionUseCase, *memTransactionRepo) {
	t.Helper()

	userRepo := newMemUserRepo()
	transactionRepo := newMemTransactionRepo()

	for _, u := range []*entity.User{
		{ID: "farmer-1", Name: "Ravi", UserType: entity.UserTypeFarmer},
		{ID: "buyer-1", Name: "Meera", UserType: entity.UserTypeBuyer},
		{ID: "buyer-2", Name: "Arjun", UserType: entity.UserTypeBuyer},
	} {
		require.NoError(t, userRepo.Create(context.Background(), u))
	}

	return NewTransactionUseCase(transactionRepo, userRepo), transactionRepo
}

func TestRecordTransaction(t *testing.T) {
	uc, _ := newTestTransactionUseCase(t)

	txn, err := uc.RecordTransaction(context.Background(), "buyer-1", CreateTransactionInput{
		RecipientID: "farmer-1",
		Amount:      1250.50,
		Type:        entity.TransactionTypePayment,
		Description: "Payment for rice order",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TransactionStatusPending, txn.Status)
	assert.Equal(t, entity.DefaultCurrency, txn.Currency)
	assert.Regexp(t, regexp.MustCompile(`^TXN-\d{6}-[A-Z0-9]{6}$`), txn.Reference)
}

func TestRecordTransactionValidation(t *testing.T) {
	uc, _ := newTestTransactionUseCase(t)

	_, err := uc.RecordTransaction(context.Background(), "buyer-1", CreateTransactionInput{
		RecipientID: "farmer-1", Amount: -10, Type: entity.TransactionTypePayment,
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.RecordTransaction(context.Background(), "buyer-1", CreateTransactionInput{
		RecipientID: "farmer-1", Amount: 10, Fee: -1, Type: entity.TransactionTypePayment,
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.RecordTransaction(context.Background(), "buyer-1", CreateTransactionInput{
		RecipientID: "farmer-1", Amount: 10, Type: "gift",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.RecordTransaction(context.Background(), "buyer-1", CreateTransactionInput{
		RecipientID: "ghost", Amount: 10, Type: entity.TransactionTypePayment,
	})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestTransactionPartyChecks(t *testing.T) {
	uc, _ := newTestTransactionUseCase(t)

	txn, err := uc.RecordTransaction(context.Background(), "buyer-1", CreateTransactionInput{
		RecipientID: "farmer-1", Amount: 500, Type: entity.TransactionTypePayment,
	})
	require.NoError(t, err)

	// Either party can read it, an outsider cannot.
	_, err = uc.GetTransaction(context.Background(), "farmer-1", txn.ID)
	assert.NoError(t, err)
	_, err = uc.GetTransaction(context.Background(), "buyer-2", txn.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.UpdateStatus(context.Background(), "buyer-2", txn.ID, entity.TransactionStatusCompleted)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestTransactionStatusTransitions(t *testing.T) {
	uc, _ := newTestTransactionUseCase(t)

	txn, err := uc.RecordTransaction(context.Background(), "buyer-1", CreateTransactionInput{
		RecipientID: "farmer-1", Amount: 500, Type: entity.TransactionTypePayment,
	})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(context.Background(), "buyer-1", txn.ID, entity.TransactionStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusCompleted, updated.Status)

	// Completed is terminal.
	_, err = uc.UpdateStatus(context.Background(), "buyer-1", txn.ID, entity.TransactionStatusFailed)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	_, err = uc.UpdateStatus(context.Background(), "buyer-1", txn.ID, entity.TransactionStatusPending)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
