package entity

import (
	"crypto/rand"
	"fmt"
	"time"
)

const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeTransfer   = "transfer"
	TransactionTypePayment    = "payment"
	TransactionTypeRefund     = "refund"

	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
	TransactionStatusCancelled = "cancelled"

	DefaultCurrency = "INR"
)

// Transaction is a monetary ledger entry between two users. Entries are
// never deleted; settlement mutates Status only along the transition
// table below.
type Transaction struct {
	ID            string    `json:"id" firestore:"id"`
	SenderID      string    `json:"sender_id" firestore:"senderId"`
	RecipientID   string    `json:"recipient_id" firestore:"recipientId"`
	Amount        float64   `json:"amount" firestore:"amount"`
	Currency      string    `json:"currency" firestore:"currency"`
	Type          string    `json:"type" firestore:"type"`
	Status        string    `json:"status" firestore:"status"`
	Description   string    `json:"description,omitempty" firestore:"description,omitempty"`
	Reference     string    `json:"reference" firestore:"reference"`
	PaymentMethod string    `json:"payment_method,omitempty" firestore:"paymentMethod,omitempty"`
	Fee           float64   `json:"fee" firestore:"fee"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}

func ValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer,
		TransactionTypePayment, TransactionTypeRefund:
		return true
	}
	return false
}

// transactionTransitions is the explicit settlement state machine:
// pending is the only non-terminal status.
var transactionTransitions = map[string][]string{
	TransactionStatusPending:   {TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusCancelled},
	TransactionStatusCompleted: {},
	TransactionStatusFailed:    {},
	TransactionStatusCancelled: {},
}

func ValidTransactionTransition(from, to string) bool {
	for _, next := range transactionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewTransactionReference builds a reference of the form
// TXN-<last 6 digits of epoch millis>-<6 random uppercase alphanumerics>.
func NewTransactionReference(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}

	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		// Degrade to a time-derived suffix; collisions here are as
		// unlikely as the source format's.
		for i := range suffix {
			suffix[i] = referenceAlphabet[(now.UnixNano()>>uint(i*6))%int64(len(referenceAlphabet))]
		}
	} else {
		for i, b := range suffix {
			suffix[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
		}
	}

	return fmt.Sprintf("TXN-%s-%s", millis, string(suffix))
}
