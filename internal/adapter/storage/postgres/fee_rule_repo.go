package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const feeRuleColumns = `id, name, fee_type, transaction_type, calculation_type, calculation_params,
		minimum_fee::text, maximum_fee::text, currency, applicable_tiers, applicable_regions,
		is_active, effective_start, effective_end, created_at`

// FeeRuleRepo implements ports.FeeRuleRepository.
type FeeRuleRepo struct {
	pool Pool
}

// NewFeeRuleRepo creates a new FeeRuleRepo.
func NewFeeRuleRepo(pool Pool) *FeeRuleRepo {
	return &FeeRuleRepo{pool: pool}
}

// Create inserts a fee rule. The calculation variant is stored as type + jsonb params.
func (r *FeeRuleRepo) Create(ctx context.Context, rule *domain.FeeRule) error {
	calcType, params, err := domain.EncodeCalculation(rule.Calculation)
	if err != nil {
		return err
	}

	query := `INSERT INTO fee_rules (id, name, fee_type, transaction_type, calculation_type, calculation_params,
		minimum_fee, maximum_fee, currency, applicable_tiers, applicable_regions,
		is_active, effective_start, effective_end, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = r.pool.Exec(ctx, query,
		rule.ID, rule.Name, rule.FeeType, rule.TransactionType, string(calcType), params,
		rule.MinimumFee.String(), rule.MaximumFee.String(), rule.Currency,
		rule.ApplicableTiers, rule.ApplicableRegions,
		rule.IsActive, rule.EffectiveStart, rule.EffectiveEnd, rule.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fee rule: %w", err)
	}
	return nil
}

// GetByID fetches a fee rule by UUID.
func (r *FeeRuleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeRule, error) {
	query := `SELECT ` + feeRuleColumns + ` FROM fee_rules WHERE id = $1`

	rule, err := scanFeeRule(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fee rule: %w", err)
	}
	return rule, nil
}

// List returns every rule, or only active ones, newest first.
func (r *FeeRuleRepo) List(ctx context.Context, activeOnly bool) ([]domain.FeeRule, error) {
	query := `SELECT ` + feeRuleColumns + ` FROM fee_rules`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY effective_start DESC`

	return r.queryRules(ctx, query)
}

// ListActiveByTransactionType returns active rules for transactionType or "all".
func (r *FeeRuleRepo) ListActiveByTransactionType(ctx context.Context, transactionType string) ([]domain.FeeRule, error) {
	query := `SELECT ` + feeRuleColumns + ` FROM fee_rules
		WHERE is_active AND transaction_type IN ($1, $2)
		ORDER BY effective_start DESC`

	return r.queryRules(ctx, query, transactionType, domain.TransactionTypeAll)
}

// Deactivate flips is_active off and returns the updated rule, or nil if absent.
func (r *FeeRuleRepo) Deactivate(ctx context.Context, id uuid.UUID) (*domain.FeeRule, error) {
	query := `UPDATE fee_rules SET is_active = FALSE WHERE id = $1 RETURNING ` + feeRuleColumns

	rule, err := scanFeeRule(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("deactivate fee rule: %w", err)
	}
	return rule, nil
}

func (r *FeeRuleRepo) queryRules(ctx context.Context, query string, args ...any) ([]domain.FeeRule, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fee rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.FeeRule
	for rows.Next() {
		rule, err := scanFeeRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fee rule row: %w", err)
		}
		rules = append(rules, *rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fee rule rows: %w", err)
	}
	return rules, nil
}

// scanFeeRule reads one row selected with feeRuleColumns.
func scanFeeRule(row pgx.Row) (*domain.FeeRule, error) {
	rule := &domain.FeeRule{}
	var (
		calcType       string
		params         []byte
		minFee, maxFee string
	)
	err := row.Scan(
		&rule.ID, &rule.Name, &rule.FeeType, &rule.TransactionType, &calcType, &params,
		&minFee, &maxFee, &rule.Currency, &rule.ApplicableTiers, &rule.ApplicableRegions,
		&rule.IsActive, &rule.EffectiveStart, &rule.EffectiveEnd, &rule.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rule.Calculation, err = domain.DecodeCalculation(domain.CalculationType(calcType), params); err != nil {
		return nil, err
	}
	if rule.MinimumFee, err = decimal.NewFromString(minFee); err != nil {
		return nil, fmt.Errorf("parse minimum fee: %w", err)
	}
	if rule.MaximumFee, err = decimal.NewFromString(maxFee); err != nil {
		return nil, fmt.Errorf("parse maximum fee: %w", err)
	}
	return rule, nil
}
