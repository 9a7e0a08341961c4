package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Metadata keys stamped on settled revenue records.
const (
	MetaSettlementBatch = "settlementBatch"
	MetaSettlementNotes = "settlementNotes"
)

// RevenueRecord is one fee earned by the platform. It moves from pending
// to settled exactly once.
type RevenueRecord struct {
	ID                       uuid.UUID         `json:"id"`
	Reference                string            `json:"transaction_ref"`
	RevenueType              string            `json:"revenue_type"`
	Amount                   decimal.Decimal   `json:"amount"`
	Currency                 string            `json:"currency"`
	Status                   RevenueStatus     `json:"status"`
	TransactionDate          time.Time         `json:"transaction_date"`
	SettlementDate           *time.Time        `json:"settlement_date,omitempty"`
	AssociatedTransactionRef string            `json:"associated_transaction_ref,omitempty"`
	SettlementBatch          string            `json:"settlement_batch,omitempty"`
	Metadata                 map[string]string `json:"metadata,omitempty"`
}

// IsSettled reports whether the record has been settled.
func (r *RevenueRecord) IsSettled() bool {
	return r.Status == RevenueStatusSettled
}

// SettlementResult summarises one settlement batch.
type SettlementResult struct {
	BatchRef     string          `json:"settlement_batch_ref"`
	TotalAmount  decimal.Decimal `json:"total_settlement_amount"`
	Currency     string          `json:"currency"`
	SettledCount int             `json:"settled_count"`
}
