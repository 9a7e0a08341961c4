package service

import (
	"context"
	"fmt"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// reportingService implements ports.ReportingService.
type reportingService struct {
	txRepo      ports.TransactionRepository
	ledgerRepo  ports.LedgerRepository
	revenueRepo ports.RevenueRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	txRepo ports.TransactionRepository,
	ledgerRepo ports.LedgerRepository,
	revenueRepo ports.RevenueRepository,
) ports.ReportingService {
	return &reportingService{
		txRepo:      txRepo,
		ledgerRepo:  ledgerRepo,
		revenueRepo: revenueRepo,
	}
}

// GetTransaction returns a transaction with its fee lines.
func (s *reportingService) GetTransaction(ctx context.Context, reference string) (*domain.Transaction, error) {
	txn, err := s.txRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("transaction")
	}
	return txn, nil
}

// GetLedger returns every entry posted under reference with its totals.
func (s *reportingService) GetLedger(ctx context.Context, reference string) (*ports.LedgerView, error) {
	entries, err := s.ledgerRepo.ListByReference(ctx, reference)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if len(entries) == 0 {
		return nil, apperror.ErrNotFound(fmt.Sprintf("ledger entries for %s", reference))
	}

	debit, credit := domain.LedgerTotals(entries)
	return &ports.LedgerView{
		Reference:   reference,
		Entries:     entries,
		TotalDebit:  debit,
		TotalCredit: credit,
		Balanced:    debit.Equal(credit),
	}, nil
}

// ListRevenue returns a page of revenue records.
func (s *reportingService) ListRevenue(ctx context.Context, params ports.RevenueListParams) ([]domain.RevenueRecord, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	recs, total, err := s.revenueRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return recs, total, nil
}
