package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const opSettleBatch = "settle_batch"

// SettlementBatcherService implements ports.SettlementBatcher.
type SettlementBatcherService struct {
	transactor  ports.DBTransactor
	revenueRepo ports.RevenueRepository
	txRepo      ports.TransactionRepository
	journal     ports.LedgerJournal
	refGen      ports.ReferenceGenerator
	publisher   ports.EventPublisher
	log         zerolog.Logger
	now         func() time.Time
}

// NewSettlementBatcherService creates a new SettlementBatcherService.
func NewSettlementBatcherService(
	transactor ports.DBTransactor,
	revenueRepo ports.RevenueRepository,
	txRepo ports.TransactionRepository,
	journal ports.LedgerJournal,
	refGen ports.ReferenceGenerator,
	publisher ports.EventPublisher,
	log zerolog.Logger,
) *SettlementBatcherService {
	return &SettlementBatcherService{
		transactor:  transactor,
		revenueRepo: revenueRepo,
		txRepo:      txRepo,
		journal:     journal,
		refGen:      refGen,
		publisher:   publisher,
		log:         log,
		now:         time.Now,
	}
}

// SettleBatch settles every pending record among req.RevenueIDs in one
// session. Records already settled are skipped, so rerunning a batch over
// the same ids settles nothing and reports a zero count.
func (s *SettlementBatcherService) SettleBatch(ctx context.Context, req ports.SettleBatchRequest) (*domain.SettlementResult, error) {
	ids := uniqueIDs(req.RevenueIDs)
	if len(ids) == 0 {
		return nil, apperror.Validation("revenueIds must not be empty")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	records, err := s.revenueRepo.LockPendingByIDs(ctx, dbTx, ids)
	if err != nil {
		return nil, aborted(s.log, opSettleBatch, req.BatchRef, apperror.InternalError(fmt.Errorf("lock pending revenue: %w", err)))
	}

	if len(records) == 0 {
		n, err := s.revenueRepo.CountByIDs(ctx, dbTx, ids)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("count revenue: %w", err))
		}
		if n == 0 {
			return nil, apperror.ErrNothingToSettle()
		}
		s.log.Info().Int("requested", len(ids)).Msg("settlement rerun, nothing pending")
		return &domain.SettlementResult{BatchRef: req.BatchRef, TotalAmount: decimal.Zero}, nil
	}

	currency := records[0].Currency
	for _, rec := range records[1:] {
		if rec.Currency != currency {
			return nil, apperror.Validation("revenue records in one batch must share a currency")
		}
	}

	batchRef := req.BatchRef
	if batchRef == "" {
		batchRef = s.refGen.BatchReference()
	}
	settledAt := s.now().UTC()
	if req.SettlementDate != nil {
		settledAt = req.SettlementDate.UTC()
	}

	total := decimal.Zero
	entries := make([]domain.LedgerEntry, 0, len(records))
	for _, rec := range records {
		total = total.Add(rec.Amount)

		if err := s.revenueRepo.MarkSettled(ctx, dbTx, rec.ID, batchRef, settledAt, req.Notes); err != nil {
			return nil, aborted(s.log, opSettleBatch, batchRef, apperror.InternalError(fmt.Errorf("mark settled: %w", err)))
		}

		e := domain.DebitEntry(rec.Reference, domain.AccountOperating, rec.Amount, rec.Currency, "revenue settled", domain.EntryTypeSettlement)
		e.EntryDate = settledAt
		e.Metadata = map[string]string{domain.MetaSettlementBatch: batchRef}
		entries = append(entries, e)

		if rec.AssociatedTransactionRef == "" {
			continue
		}
		n, err := s.txRepo.SettleFeeLine(ctx, dbTx, rec.AssociatedTransactionRef, rec.RevenueType, settledAt)
		if err != nil {
			return nil, aborted(s.log, opSettleBatch, batchRef, apperror.InternalError(fmt.Errorf("settle fee line: %w", err)))
		}
		if n == 0 {
			s.log.Warn().
				Str("revenue_ref", rec.Reference).
				Str("transaction_ref", rec.AssociatedTransactionRef).
				Msg("no pending fee line matched settled revenue")
		}
	}

	if err := s.journal.Post(ctx, dbTx, entries); err != nil {
		return nil, aborted(s.log, opSettleBatch, batchRef, apperror.InternalError(fmt.Errorf("post ledger: %w", err)))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, aborted(s.log, opSettleBatch, batchRef, apperror.InternalError(fmt.Errorf("commit tx: %w", err)))
	}

	result := &domain.SettlementResult{
		BatchRef:     batchRef,
		TotalAmount:  total,
		Currency:     currency,
		SettledCount: len(records),
	}

	s.log.Info().
		Str("batch_ref", batchRef).
		Int("settled_count", result.SettledCount).
		Str("total", total.String()).
		Str("currency", currency).
		Msg("settlement batch committed")

	publishEvent(ctx, s.publisher, s.log, domain.Event{
		Type:       domain.EventSettlementCompleted,
		Reference:  batchRef,
		Status:     string(domain.RevenueStatusSettled),
		Amount:     total.StringFixed(2),
		Currency:   currency,
		Attributes: map[string]string{"settledCount": strconv.Itoa(result.SettledCount)},
		OccurredAt: settledAt,
	})

	return result, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
