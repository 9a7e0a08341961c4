package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts the transaction and its fee lines within a database transaction.
// A reference collision surfaces as domain.ErrDuplicateReference.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	sender, err := json.Marshal(t.Sender)
	if err != nil {
		return fmt.Errorf("marshal sender: %w", err)
	}
	var receiver []byte
	if t.Receiver != nil {
		if receiver, err = json.Marshal(t.Receiver); err != nil {
			return fmt.Errorf("marshal receiver: %w", err)
		}
	}

	query := `INSERT INTO transactions (id, reference, transaction_type, status, sender, receiver,
		transfer_amount, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = tx.Exec(ctx, query,
		t.ID, t.Reference, t.TransactionType, string(t.Status), sender, receiver,
		t.TransferAmount.String(), t.Currency, t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert transaction %s: %w", t.Reference, domain.ErrDuplicateReference)
		}
		return fmt.Errorf("insert transaction: %w", err)
	}

	feeQuery := `INSERT INTO transaction_fees (transaction_ref, line_no, fee_amount, fee_type, description, revenue_status)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for i, f := range t.Fees {
		_, err := tx.Exec(ctx, feeQuery,
			t.Reference, i+1, f.FeeAmount.String(), f.FeeType, f.Description, string(f.RevenueStatus),
		)
		if err != nil {
			return fmt.Errorf("insert fee line %d: %w", i+1, err)
		}
	}
	return nil
}

// GetByReference fetches a transaction and its fee lines.
func (r *TransactionRepo) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := `SELECT id, reference, transaction_type, status, sender, receiver,
		transfer_amount::text, currency, created_at
		FROM transactions WHERE reference = $1`

	t := &domain.Transaction{}
	var (
		status           string
		sender, receiver []byte
		amount           string
	)
	err := r.pool.QueryRow(ctx, query, reference).Scan(
		&t.ID, &t.Reference, &t.TransactionType, &status, &sender, &receiver,
		&amount, &t.Currency, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by reference: %w", err)
	}

	t.Status = domain.TransactionStatus(status)
	if t.TransferAmount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse transfer amount: %w", err)
	}
	if err := json.Unmarshal(sender, &t.Sender); err != nil {
		return nil, fmt.Errorf("unmarshal sender: %w", err)
	}
	if len(receiver) > 0 {
		t.Receiver = &domain.Party{}
		if err := json.Unmarshal(receiver, t.Receiver); err != nil {
			return nil, fmt.Errorf("unmarshal receiver: %w", err)
		}
	}

	if t.Fees, err = r.listFees(ctx, reference); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TransactionRepo) listFees(ctx context.Context, reference string) ([]domain.FeeLine, error) {
	query := `SELECT fee_amount::text, fee_type, description, revenue_status, settlement_date
		FROM transaction_fees WHERE transaction_ref = $1 ORDER BY line_no`

	rows, err := r.pool.Query(ctx, query, reference)
	if err != nil {
		return nil, fmt.Errorf("list fee lines: %w", err)
	}
	defer rows.Close()

	fees := []domain.FeeLine{}
	for rows.Next() {
		var (
			f             domain.FeeLine
			amount, state string
		)
		if err := rows.Scan(&amount, &f.FeeType, &f.Description, &state, &f.SettlementDate); err != nil {
			return nil, fmt.Errorf("scan fee line: %w", err)
		}
		if f.FeeAmount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse fee amount: %w", err)
		}
		f.RevenueStatus = domain.RevenueStatus(state)
		fees = append(fees, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fee lines: %w", err)
	}
	return fees, nil
}

// ReferenceExists reports whether a transaction reference is already taken.
func (r *TransactionRepo) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM transactions WHERE reference = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, reference).Scan(&exists); err != nil {
		return false, fmt.Errorf("check transaction reference: %w", err)
	}
	return exists, nil
}

// SettleFeeLine marks pending fee lines of feeType on reference as settled.
// It MUST be called within a transaction.
func (r *TransactionRepo) SettleFeeLine(ctx context.Context, tx pgx.Tx, reference string, feeType string, settledAt time.Time) (int64, error) {
	query := `UPDATE transaction_fees SET revenue_status = 'settled', settlement_date = $3
		WHERE transaction_ref = $1 AND fee_type = $2 AND revenue_status = 'pending'`

	tag, err := tx.Exec(ctx, query, reference, feeType, settledAt)
	if err != nil {
		return 0, fmt.Errorf("settle fee line: %w", err)
	}
	return tag.RowsAffected(), nil
}
