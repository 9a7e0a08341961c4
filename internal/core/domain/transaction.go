package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Common transaction types. Fee rules may also target TransactionTypeAll.
const (
	TransactionTypeTransfer   = "transfer"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeDeposit    = "deposit"
	TransactionTypePayment    = "payment"
)

// TransactionStatus represents the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// IsValid reports whether s is a known status.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusCancelled:
		return true
	}
	return false
}

// RevenueStatus tracks a fee line or revenue record through settlement.
type RevenueStatus string

const (
	RevenueStatusPending RevenueStatus = "pending"
	RevenueStatusSettled RevenueStatus = "settled"
)

// Party is a point-in-time snapshot of a sender or receiver. WalletRef,
// when set, names the wallet whose balance moves on completion.
type Party struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	Tier      string `json:"tier,omitempty"`
	Phone     string `json:"phone,omitempty"`
	WalletRef string `json:"wallet_ref,omitempty"`
}

// FeeLine is one fee charged on a transaction.
type FeeLine struct {
	FeeAmount      decimal.Decimal `json:"fee_amount"`
	FeeType        string          `json:"fee_type"`
	Description    string          `json:"description,omitempty"`
	RevenueStatus  RevenueStatus   `json:"revenue_status"`
	SettlementDate *time.Time      `json:"settlement_date,omitempty"`
}

// Transaction is one money-movement attempt. Only fee line revenue status
// changes after creation.
type Transaction struct {
	ID              uuid.UUID         `json:"id"`
	Reference       string            `json:"transaction_ref"`
	TransactionType string            `json:"transaction_type"`
	Status          TransactionStatus `json:"status"`
	Sender          Party             `json:"sender"`
	Receiver        *Party            `json:"receiver,omitempty"`
	TransferAmount  decimal.Decimal   `json:"transfer_amount"`
	Currency        string            `json:"currency"`
	Fees            []FeeLine         `json:"fees"`
	CreatedAt       time.Time         `json:"created_at"`
}

// TotalFee sums every fee line.
func (t *Transaction) TotalFee() decimal.Decimal {
	total := decimal.Zero
	for _, f := range t.Fees {
		total = total.Add(f.FeeAmount)
	}
	return total
}

// HasFees reports whether any fee line is attached.
func (t *Transaction) HasFees() bool {
	return len(t.Fees) > 0
}
