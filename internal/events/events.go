// Package events publishes notifications about changes to transactions.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	TransactionCreated = "transaction.created"
	TransactionUpdated = "transaction.updated"
	TransactionDeleted = "transaction.deleted"
	BalancesRebuilt    = "monthly_balances.rebuilt"
)

// Event describes a change that affected the monthly balances of a user.
type Event struct {
	Type            string          `json:"type"`
	UserID          uuid.UUID       `json:"userId"`
	TransactionID   uuid.UUID       `json:"transactionId,omitempty"`
	CategoryID      uuid.UUID       `json:"categoryId,omitempty"`
	TransactionType string          `json:"transactionType,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Year            int             `json:"year,omitempty"`
	Month           int             `json:"month,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
}

// JSON returns the wire representation of the event.
func (e Event) JSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers events to consumers.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop discards all events.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }

var (
	mu        sync.RWMutex
	publisher Publisher = Noop{}
)

// Use sets the publisher used by Emit and returns the previous one.
func Use(p Publisher) Publisher {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		p = Noop{}
	}

	previous := publisher
	publisher = p
	return previous
}

// Emit publishes the event. Failures are logged and do not
// affect the caller since the change is already committed.
func Emit(ctx context.Context, e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().In(time.UTC)
	}

	mu.RLock()
	p := publisher
	mu.RUnlock()

	if err := p.Publish(ctx, e); err != nil {
		log.Error().Err(err).Str("event", e.Type).Str("user", e.UserID.String()).Msg("failed to publish event")
	}
}
