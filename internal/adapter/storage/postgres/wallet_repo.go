package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// GetByEntityRef fetches a wallet by its owning entity reference (non-locking read).
func (r *WalletRepo) GetByEntityRef(ctx context.Context, entityRef string) (*domain.Wallet, error) {
	query := `SELECT id, entity_ref, balance::text, currency, tier, is_active,
		monthly_tx_count, counter_reset_at, created_at, updated_at
		FROM wallets WHERE entity_ref = $1`

	w := &domain.Wallet{}
	var balance, tier string
	err := r.pool.QueryRow(ctx, query, entityRef).Scan(
		&w.ID, &w.EntityRef, &balance, &w.Currency, &tier, &w.IsActive,
		&w.MonthlyTxCount, &w.CounterResetAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by entity ref: %w", err)
	}
	w.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("parse wallet balance: %w", err)
	}
	w.Tier = domain.Tier(tier)
	return w, nil
}

// Debit is the conditional decrement that closes the read-then-decide race:
// the balance and currency checks, the subtraction and the monthly counter
// roll happen in one statement. It MUST be called within a transaction.
func (r *WalletRepo) Debit(ctx context.Context, tx pgx.Tx, entityRef, currency string, amount decimal.Decimal, now time.Time) (bool, error) {
	query := `UPDATE wallets SET
		balance = balance - $2,
		monthly_tx_count = CASE WHEN counter_reset_at < $4 THEN 1 ELSE monthly_tx_count + 1 END,
		counter_reset_at = CASE WHEN counter_reset_at < $4 THEN $3 ELSE counter_reset_at END,
		updated_at = $3
		WHERE entity_ref = $1 AND is_active AND balance >= $2 AND currency = $5`

	tag, err := tx.Exec(ctx, query, entityRef, amount.String(), now, domain.MonthStart(now), currency)
	if err != nil {
		return false, fmt.Errorf("debit wallet: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Credit adds amount to an active wallet held in currency. It MUST be called
// within a transaction.
func (r *WalletRepo) Credit(ctx context.Context, tx pgx.Tx, entityRef, currency string, amount decimal.Decimal) (bool, error) {
	query := `UPDATE wallets SET balance = balance + $2, updated_at = NOW()
		WHERE entity_ref = $1 AND is_active AND currency = $3`

	tag, err := tx.Exec(ctx, query, entityRef, amount.String(), currency)
	if err != nil {
		return false, fmt.Errorf("credit wallet: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
