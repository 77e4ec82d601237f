package store

import (
	"sync"
	"time"

	"github.com/byonar/Rep-Rakbank-POC-Kafka-Bronze-Webhook-APIKey/internal/models"
)

// TransactionLog is the process-lifetime record of everything the webhook
// has received. It is append-only: records are never updated or deleted,
// and sequence ids are never reused. Nothing is persisted, a restart
// starts over at sequence 1.
type TransactionLog struct {
	mu      sync.Mutex
	records []models.Transaction
}

func NewTransactionLog() *TransactionLog {
	return &TransactionLog{}
}

// Append assigns the next sequence id and the receipt timestamp, then
// stores the record. Assignment and insertion happen under one lock hold,
// so concurrent appends can never share a sequence id. Returns the stored
// copy.
func (l *TransactionLog) Append(tx models.Transaction) models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx.SequenceID = int64(len(l.records)) + 1
	tx.ReceivedAt = time.Now().Format(time.RFC3339Nano)
	l.records = append(l.records, tx)
	return tx
}

func (l *TransactionLog) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Last returns up to n of the most recent records, in append order.
// Asking for more than is stored returns everything; an empty log returns
// an empty slice.
func (l *TransactionLog) Last(n int) []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n < 0 {
		n = 0
	}
	if n > len(l.records) {
		n = len(l.records)
	}
	out := make([]models.Transaction, n)
	copy(out, l.records[len(l.records)-n:])
	return out
}

// All returns a snapshot copy of every stored record in append order.
func (l *TransactionLog) All() []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Transaction, len(l.records))
	copy(out, l.records)
	return out
}

// First returns the earliest record, if any.
func (l *TransactionLog) First() (models.Transaction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.records) == 0 {
		return models.Transaction{}, false
	}
	return l.records[0], true
}

// Newest returns the most recently appended record, if any.
func (l *TransactionLog) Newest() (models.Transaction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.records) == 0 {
		return models.Transaction{}, false
	}
	return l.records[len(l.records)-1], true
}
