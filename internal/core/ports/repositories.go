package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepository defines persistence operations for wallets.
// Wallets are created elsewhere; this service reads them and moves balances.
type WalletRepository interface {
	GetByEntityRef(ctx context.Context, entityRef string) (*domain.Wallet, error)
	// Debit subtracts amount only if the wallet is active, holds currency and
	// has balance >= amount, rolling the monthly counter in the same statement.
	// Returns false when no row matched.
	Debit(ctx context.Context, tx pgx.Tx, entityRef, currency string, amount decimal.Decimal, now time.Time) (bool, error)
	Credit(ctx context.Context, tx pgx.Tx, entityRef, currency string, amount decimal.Decimal) (bool, error)
}

// FeeRuleRepository defines persistence operations for fee rules.
type FeeRuleRepository interface {
	Create(ctx context.Context, rule *domain.FeeRule) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeRule, error)
	List(ctx context.Context, activeOnly bool) ([]domain.FeeRule, error)
	// ListActiveByTransactionType returns active rules for the type or "all".
	// The effective window is checked by the caller.
	ListActiveByTransactionType(ctx context.Context, transactionType string) ([]domain.FeeRule, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*domain.FeeRule, error)
}

// TransactionRepository defines persistence operations for transactions and fee lines.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	ReferenceExists(ctx context.Context, reference string) (bool, error)
	// SettleFeeLine flips pending fee lines of feeType to settled. Returns rows updated.
	SettleFeeLine(ctx context.Context, tx pgx.Tx, reference string, feeType string, settledAt time.Time) (int64, error)
}

// LedgerRepository is the append-only journal store.
type LedgerRepository interface {
	Append(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error
	ListByReference(ctx context.Context, reference string) ([]domain.LedgerEntry, error)
}

// RevenueRepository defines persistence operations for revenue records.
type RevenueRepository interface {
	Create(ctx context.Context, tx pgx.Tx, record *domain.RevenueRecord) error
	ReferenceExists(ctx context.Context, reference string) (bool, error)
	// LockPendingByIDs selects pending records FOR UPDATE inside tx.
	LockPendingByIDs(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) ([]domain.RevenueRecord, error)
	CountByIDs(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) (int64, error)
	MarkSettled(ctx context.Context, tx pgx.Tx, id uuid.UUID, batchRef string, settledAt time.Time, notes string) error
	List(ctx context.Context, params RevenueListParams) ([]domain.RevenueRecord, int64, error)
}

// RevenueListParams holds filter + pagination for listing revenue records.
type RevenueListParams struct {
	Status   *domain.RevenueStatus
	Page     int
	PageSize int
}

// AuditRepository persists audit logs.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// DBTransactor opens the atomic session shared by repositories.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
