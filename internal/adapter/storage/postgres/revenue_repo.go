package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const revenueColumns = `id, reference, revenue_type, amount::text, currency, status, transaction_date,
		settlement_date, associated_transaction_ref, settlement_batch, metadata`

// RevenueRepo implements ports.RevenueRepository.
type RevenueRepo struct {
	pool Pool
}

// NewRevenueRepo creates a new RevenueRepo.
func NewRevenueRepo(pool Pool) *RevenueRepo {
	return &RevenueRepo{pool: pool}
}

// Create inserts a revenue record within a database transaction.
func (r *RevenueRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.RevenueRecord) error {
	meta, err := marshalMetadata(rec.Metadata)
	if err != nil {
		return err
	}

	query := `INSERT INTO revenue_records (id, reference, revenue_type, amount, currency, status,
		transaction_date, settlement_date, associated_transaction_ref, settlement_batch, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = tx.Exec(ctx, query,
		rec.ID, rec.Reference, rec.RevenueType, rec.Amount.String(), rec.Currency, string(rec.Status),
		rec.TransactionDate, rec.SettlementDate, rec.AssociatedTransactionRef, rec.SettlementBatch, meta,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert revenue record %s: %w", rec.Reference, domain.ErrDuplicateReference)
		}
		return fmt.Errorf("insert revenue record: %w", err)
	}
	return nil
}

// ReferenceExists reports whether a revenue reference is already taken.
func (r *RevenueRepo) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM revenue_records WHERE reference = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, reference).Scan(&exists); err != nil {
		return false, fmt.Errorf("check revenue reference: %w", err)
	}
	return exists, nil
}

// LockPendingByIDs selects the pending subset of ids and row-locks them so a
// concurrent batch over the same ids waits, then sees them settled.
func (r *RevenueRepo) LockPendingByIDs(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) ([]domain.RevenueRecord, error) {
	query := `SELECT ` + revenueColumns + ` FROM revenue_records
		WHERE id = ANY($1::uuid[]) AND status = 'pending'
		ORDER BY id FOR UPDATE`

	rows, err := tx.Query(ctx, query, uuidStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("lock pending revenue: %w", err)
	}
	defer rows.Close()

	return collectRevenue(rows)
}

// CountByIDs counts how many of ids exist regardless of status.
func (r *RevenueRepo) CountByIDs(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM revenue_records WHERE id = ANY($1::uuid[])`

	var n int64
	if err := tx.QueryRow(ctx, query, uuidStrings(ids)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count revenue records: %w", err)
	}
	return n, nil
}

// MarkSettled moves a pending record to settled, stamping the batch and notes
// into metadata. Settled records are never touched again.
func (r *RevenueRepo) MarkSettled(ctx context.Context, tx pgx.Tx, id uuid.UUID, batchRef string, settledAt time.Time, notes string) error {
	query := `UPDATE revenue_records SET status = 'settled', settlement_date = $2, settlement_batch = $3,
		metadata = COALESCE(metadata, '{}'::jsonb) || jsonb_build_object('settlementBatch', $3::text, 'settlementNotes', $4::text)
		WHERE id = $1 AND status = 'pending'`

	tag, err := tx.Exec(ctx, query, id, settledAt, batchRef, notes)
	if err != nil {
		return fmt.Errorf("mark revenue settled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("revenue record %s is not pending", id)
	}
	return nil
}

// List fetches revenue records with filtering and pagination.
func (r *RevenueRepo) List(ctx context.Context, params ports.RevenueListParams) ([]domain.RevenueRecord, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, string(*params.Status))
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM revenue_records %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count revenue records: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM revenue_records %s
		ORDER BY transaction_date DESC LIMIT $%d OFFSET $%d`, revenueColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list revenue records: %w", err)
	}
	defer rows.Close()

	recs, err := collectRevenue(rows)
	if err != nil {
		return nil, 0, err
	}
	return recs, total, nil
}

func collectRevenue(rows pgx.Rows) ([]domain.RevenueRecord, error) {
	recs := []domain.RevenueRecord{}
	for rows.Next() {
		rec, err := scanRevenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revenue rows: %w", err)
	}
	return recs, nil
}

// scanRevenue reads one row selected with revenueColumns.
func scanRevenue(row pgx.Row) (*domain.RevenueRecord, error) {
	rec := &domain.RevenueRecord{}
	var (
		amount, status string
		meta           []byte
	)
	err := row.Scan(
		&rec.ID, &rec.Reference, &rec.RevenueType, &amount, &rec.Currency, &status, &rec.TransactionDate,
		&rec.SettlementDate, &rec.AssociatedTransactionRef, &rec.SettlementBatch, &meta,
	)
	if err != nil {
		return nil, err
	}
	rec.Status = domain.RevenueStatus(status)
	if rec.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse revenue amount: %w", err)
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &rec.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal revenue metadata: %w", err)
		}
	}
	return rec, nil
}

func marshalMetadata(m map[string]string) ([]byte, error) {
	if len(m) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	return b, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
