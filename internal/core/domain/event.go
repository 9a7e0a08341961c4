package domain

import (
	"errors"
	"time"
)

// ErrDuplicateReference is returned by repositories when a unique
// reference already exists.
var ErrDuplicateReference = errors.New("duplicate reference")

// EventType names a post-commit notification.
type EventType string

const (
	EventTransactionPosted   EventType = "transaction.posted"
	EventRevenueRecorded     EventType = "revenue.recorded"
	EventSettlementCompleted EventType = "settlement.completed"
)

// Event is published after a successful commit for downstream
// notification services. It carries references only.
type Event struct {
	Type       EventType         `json:"type"`
	Reference  string            `json:"reference"`
	Status     string            `json:"status,omitempty"`
	Amount     string            `json:"amount,omitempty"`
	Currency   string            `json:"currency,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}
