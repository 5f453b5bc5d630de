package entity

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTransactionReferenceFormat(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	ref := NewTransactionReference(now)

	assert.Regexp(t, regexp.MustCompile(`^TXN-\d{6}-[A-Z0-9]{6}$`), ref)

	// The middle segment is the tail of the epoch millis.
	millis := fmt.Sprintf("%d", now.UnixMilli())
	assert.Equal(t, millis[len(millis)-6:], ref[4:10])
}

func TestNewTransactionReferenceUnique(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref := NewTransactionReference(now)
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}

func TestValidTransactionTransition(t *testing.T) {
	// Pending is the only non-terminal status.
	assert.True(t, ValidTransactionTransition(TransactionStatusPending, TransactionStatusCompleted))
	assert.True(t, ValidTransactionTransition(TransactionStatusPending, TransactionStatusFailed))
	assert.True(t, ValidTransactionTransition(TransactionStatusPending, TransactionStatusCancelled))

	assert.False(t, ValidTransactionTransition(TransactionStatusCompleted, TransactionStatusPending))
	assert.False(t, ValidTransactionTransition(TransactionStatusFailed, TransactionStatusCompleted))
	assert.False(t, ValidTransactionTransition(TransactionStatusCancelled, TransactionStatusCompleted))
	assert.False(t, ValidTransactionTransition(TransactionStatusPending, TransactionStatusPending))
	assert.False(t, ValidTransactionTransition("unknown", TransactionStatusCompleted))
}

func TestValidTransactionType(t *testing.T) {
	for _, valid := range []string{"deposit", "withdrawal", "transfer", "payment", "refund"} {
		assert.True(t, ValidTransactionType(valid), valid)
	}
	assert.False(t, ValidTransactionType("gift"))
	assert.False(t, ValidTransactionType(""))
}
