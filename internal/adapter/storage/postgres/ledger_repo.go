package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"wallet-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerRepo implements ports.LedgerRepository. The table only ever sees
// INSERT and SELECT.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Append inserts entries in order within a database transaction.
func (r *LedgerRepo) Append(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (id, transaction_ref, entry_date, account, debit, credit,
		currency, description, entry_type, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	for _, e := range entries {
		meta, err := marshalMetadata(e.Metadata)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, query,
			e.ID, e.TransactionRef, e.EntryDate, string(e.Account),
			e.Debit.String(), e.Credit.String(), e.Currency, e.Description,
			string(e.EntryType), meta,
		)
		if err != nil {
			return fmt.Errorf("insert ledger entry %s: %w", e.ID, err)
		}
	}
	return nil
}

// ListByReference returns every entry posted under reference in posting order.
func (r *LedgerRepo) ListByReference(ctx context.Context, reference string) ([]domain.LedgerEntry, error) {
	query := `SELECT id, transaction_ref, entry_date, account, debit::text, credit::text,
		currency, description, entry_type, metadata
		FROM ledger_entries WHERE transaction_ref = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, reference)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var (
			e                  domain.LedgerEntry
			account, entryType string
			debit, credit      string
			meta               []byte
		)
		err := rows.Scan(
			&e.ID, &e.TransactionRef, &e.EntryDate, &account, &debit, &credit,
			&e.Currency, &e.Description, &entryType, &meta,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.Account = domain.AccountBucket(account)
		e.EntryType = domain.EntryType(entryType)
		if e.Debit, err = decimal.NewFromString(debit); err != nil {
			return nil, fmt.Errorf("parse debit: %w", err)
		}
		if e.Credit, err = decimal.NewFromString(credit); err != nil {
			return nil, fmt.Errorf("parse credit: %w", err)
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &e.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal ledger metadata: %w", err)
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return entries, nil
}
