package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const opRecordRevenue = "record_revenue"

// RevenueRecognizerService implements ports.RevenueRecognizer.
type RevenueRecognizerService struct {
	transactor  ports.DBTransactor
	revenueRepo ports.RevenueRepository
	txRepo      ports.TransactionRepository
	journal     ports.LedgerJournal
	refGen      ports.ReferenceGenerator
	publisher   ports.EventPublisher
	prefix      string
	log         zerolog.Logger
	now         func() time.Time
}

// NewRevenueRecognizerService creates a new RevenueRecognizerService.
func NewRevenueRecognizerService(
	transactor ports.DBTransactor,
	revenueRepo ports.RevenueRepository,
	txRepo ports.TransactionRepository,
	journal ports.LedgerJournal,
	refGen ports.ReferenceGenerator,
	publisher ports.EventPublisher,
	prefix string,
	log zerolog.Logger,
) *RevenueRecognizerService {
	return &RevenueRecognizerService{
		transactor:  transactor,
		revenueRepo: revenueRepo,
		txRepo:      txRepo,
		journal:     journal,
		refGen:      refGen,
		publisher:   publisher,
		prefix:      prefix,
		log:         log,
		now:         time.Now,
	}
}

// RecordRevenue books a fee as revenue. A record created already settled
// also gets its settlement posting and flips the matching fee line.
func (s *RevenueRecognizerService) RecordRevenue(ctx context.Context, req ports.RecordRevenueRequest) (*domain.RevenueRecord, error) {
	if req.Status == "" {
		req.Status = domain.RevenueStatusPending
	}
	if err := validateRevenueRequest(req); err != nil {
		return nil, err
	}

	if req.AssociatedTransactionRef != "" {
		txn, err := s.txRepo.GetByReference(ctx, req.AssociatedTransactionRef)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get associated transaction: %w", err))
		}
		if txn == nil {
			return nil, apperror.ErrNotFound("associated transaction")
		}
	}

	ref := req.Reference
	if ref == "" {
		var err error
		if ref, err = s.refGen.Generate(ctx, s.prefix, s.revenueRepo.ReferenceExists); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	rec := &domain.RevenueRecord{
		ID:                       uuid.New(),
		Reference:                ref,
		RevenueType:              req.RevenueType,
		Amount:                   req.Amount,
		Currency:                 req.Currency,
		Status:                   req.Status,
		TransactionDate:          now,
		AssociatedTransactionRef: req.AssociatedTransactionRef,
		Metadata:                 maps.Clone(req.Metadata),
	}
	if req.TransactionDate != nil {
		rec.TransactionDate = req.TransactionDate.UTC()
	}

	entries := []domain.LedgerEntry{
		domain.CreditEntry(ref, domain.AccountRevenue, rec.Amount, rec.Currency, "revenue recognized", domain.EntryTypeFee),
	}
	if rec.IsSettled() {
		batch := s.refGen.BatchReference()
		rec.SettlementDate = &now
		rec.SettlementBatch = batch
		if rec.Metadata == nil {
			rec.Metadata = map[string]string{}
		}
		rec.Metadata[domain.MetaSettlementBatch] = batch

		settle := domain.DebitEntry(ref, domain.AccountOperating, rec.Amount, rec.Currency, "revenue settled", domain.EntryTypeSettlement)
		settle.Metadata = map[string]string{domain.MetaSettlementBatch: batch}
		entries = append(entries, settle)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.revenueRepo.Create(ctx, dbTx, rec); err != nil {
		if errors.Is(err, domain.ErrDuplicateReference) {
			return nil, apperror.ErrConflict(fmt.Sprintf("revenue reference %s already exists", ref))
		}
		return nil, aborted(s.log, opRecordRevenue, ref, apperror.InternalError(fmt.Errorf("create revenue record: %w", err)))
	}

	if err := s.journal.Post(ctx, dbTx, entries); err != nil {
		return nil, aborted(s.log, opRecordRevenue, ref, apperror.InternalError(fmt.Errorf("post ledger: %w", err)))
	}

	if rec.IsSettled() && rec.AssociatedTransactionRef != "" {
		n, err := s.txRepo.SettleFeeLine(ctx, dbTx, rec.AssociatedTransactionRef, rec.RevenueType, now)
		if err != nil {
			return nil, aborted(s.log, opRecordRevenue, ref, apperror.InternalError(fmt.Errorf("settle fee line: %w", err)))
		}
		if n == 0 {
			s.log.Warn().
				Str("transaction_ref", rec.AssociatedTransactionRef).
				Str("fee_type", rec.RevenueType).
				Msg("no pending fee line matched settled revenue")
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, aborted(s.log, opRecordRevenue, ref, apperror.InternalError(fmt.Errorf("commit tx: %w", err)))
	}

	s.log.Info().
		Str("revenue_ref", ref).
		Str("revenue_type", rec.RevenueType).
		Str("status", string(rec.Status)).
		Str("amount", rec.Amount.String()).
		Msg("revenue recorded")

	publishEvent(ctx, s.publisher, s.log, domain.Event{
		Type:       domain.EventRevenueRecorded,
		Reference:  ref,
		Status:     string(rec.Status),
		Amount:     rec.Amount.StringFixed(2),
		Currency:   rec.Currency,
		Attributes: map[string]string{"associatedTransactionRef": rec.AssociatedTransactionRef},
		OccurredAt: now,
	})

	return rec, nil
}

func validateRevenueRequest(req ports.RecordRevenueRequest) error {
	if !req.Amount.IsPositive() {
		return apperror.Validation("revenueAmount must be positive")
	}
	if !domain.HasMoneyScale(req.Amount) {
		return apperror.Validation("revenueAmount must have at most 2 decimal places")
	}
	if req.RevenueType == "" {
		return apperror.Validation("revenueType is required")
	}
	if req.Currency == "" {
		return apperror.Validation("currency is required")
	}
	if req.Status != domain.RevenueStatusPending && req.Status != domain.RevenueStatusSettled {
		return apperror.Validation(fmt.Sprintf("unknown status %q", req.Status))
	}
	return nil
}
