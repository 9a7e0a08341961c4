package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const opPostTransaction = "post_transaction"

// TransactionPosterService implements ports.TransactionPoster.
type TransactionPosterService struct {
	transactor ports.DBTransactor
	txRepo     ports.TransactionRepository
	walletRepo ports.WalletRepository
	journal    ports.LedgerJournal
	refGen     ports.ReferenceGenerator
	publisher  ports.EventPublisher
	prefix     string
	log        zerolog.Logger
	now        func() time.Time
}

// NewTransactionPosterService creates a new TransactionPosterService.
// publisher may be nil.
func NewTransactionPosterService(
	transactor ports.DBTransactor,
	txRepo ports.TransactionRepository,
	walletRepo ports.WalletRepository,
	journal ports.LedgerJournal,
	refGen ports.ReferenceGenerator,
	publisher ports.EventPublisher,
	prefix string,
	log zerolog.Logger,
) *TransactionPosterService {
	return &TransactionPosterService{
		transactor: transactor,
		txRepo:     txRepo,
		walletRepo: walletRepo,
		journal:    journal,
		refGen:     refGen,
		publisher:  publisher,
		prefix:     prefix,
		log:        log,
		now:        time.Now,
	}
}

// PostTransaction persists the transaction, moves wallet balances when it is
// completed, and posts its ledger entries, all in one session.
func (s *TransactionPosterService) PostTransaction(ctx context.Context, req ports.PostTransactionRequest) (*domain.Transaction, error) {
	if req.Receiver == nil {
		req.Receiver = req.Recipient
	}
	if req.Status == "" {
		req.Status = domain.TransactionStatusPending
	}
	if err := validatePostRequest(req); err != nil {
		return nil, err
	}

	ref := req.Reference
	if ref == "" {
		var err error
		if ref, err = s.refGen.Generate(ctx, s.prefix, s.txRepo.ReferenceExists); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	txn := &domain.Transaction{
		ID:              uuid.New(),
		Reference:       ref,
		TransactionType: req.TransactionType,
		Status:          req.Status,
		Sender:          req.Sender,
		Receiver:        req.Receiver,
		TransferAmount:  req.TransferAmount,
		Currency:        req.Currency,
		CreatedAt:       now,
	}
	for _, f := range req.Fees {
		txn.Fees = append(txn.Fees, domain.FeeLine{
			FeeAmount:     f.FeeAmount,
			FeeType:       f.FeeType,
			Description:   f.Description,
			RevenueStatus: domain.RevenueStatusPending,
		})
	}
	totalFee := txn.TotalFee()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		if errors.Is(err, domain.ErrDuplicateReference) {
			return nil, apperror.ErrConflict(fmt.Sprintf("transaction reference %s already exists", ref))
		}
		return nil, aborted(s.log, opPostTransaction, ref, apperror.InternalError(fmt.Errorf("create transaction: %w", err)))
	}

	if txn.Status == domain.TransactionStatusCompleted {
		if err := s.moveBalances(ctx, dbTx, txn, totalFee, now); err != nil {
			return nil, aborted(s.log, opPostTransaction, ref, err)
		}
	}

	entries := transactionEntries(ref, txn.TransferAmount, totalFee, txn.Currency, txn.HasFees())
	if err := s.journal.Post(ctx, dbTx, entries); err != nil {
		return nil, aborted(s.log, opPostTransaction, ref, apperror.InternalError(fmt.Errorf("post ledger: %w", err)))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, aborted(s.log, opPostTransaction, ref, apperror.InternalError(fmt.Errorf("commit tx: %w", err)))
	}

	s.log.Info().
		Str("transaction_ref", ref).
		Str("transaction_type", txn.TransactionType).
		Str("status", string(txn.Status)).
		Str("amount", txn.TransferAmount.String()).
		Str("total_fee", totalFee.String()).
		Msg("transaction posted")

	publishEvent(ctx, s.publisher, s.log, domain.Event{
		Type:       domain.EventTransactionPosted,
		Reference:  ref,
		Status:     string(txn.Status),
		Amount:     txn.TransferAmount.StringFixed(2),
		Currency:   txn.Currency,
		OccurredAt: now,
	})

	return txn, nil
}

// moveBalances debits the sender amount plus fees and credits the receiver
// the amount, both only on wallets held in the transaction currency. The
// updates are conditional, so zero rows sends us to rejectedWallet for the
// reason.
func (s *TransactionPosterService) moveBalances(ctx context.Context, dbTx pgx.Tx, txn *domain.Transaction, totalFee decimal.Decimal, now time.Time) error {
	if ref := txn.Sender.WalletRef; ref != "" {
		ok, err := s.walletRepo.Debit(ctx, dbTx, ref, txn.Currency, txn.TransferAmount.Add(totalFee), now)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("debit sender wallet: %w", err))
		}
		if !ok {
			return s.rejectedWallet(ctx, "sender wallet", ref, txn.Currency, apperror.ErrInsufficientBalance())
		}
	}
	if txn.Receiver != nil && txn.Receiver.WalletRef != "" {
		ref := txn.Receiver.WalletRef
		ok, err := s.walletRepo.Credit(ctx, dbTx, ref, txn.Currency, txn.TransferAmount)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("credit receiver wallet: %w", err))
		}
		if !ok {
			return s.rejectedWallet(ctx, "receiver wallet", ref, txn.Currency, apperror.ErrNotFound("receiver wallet"))
		}
	}
	return nil
}

// rejectedWallet explains a balance update that matched no row. Currency is
// fixed at wallet creation, so the unlocked read is safe to classify with.
func (s *TransactionPosterService) rejectedWallet(ctx context.Context, label, ref, currency string, otherwise *apperror.AppError) error {
	w, err := s.walletRepo.GetByEntityRef(ctx, ref)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load %s: %w", label, err))
	}
	if w == nil {
		return apperror.ErrNotFound(label)
	}
	if w.Currency != currency {
		return apperror.Validation(fmt.Sprintf("%s holds %s, transaction is in %s", label, w.Currency, currency))
	}
	return otherwise
}

// transactionEntries builds the balanced postings for a transaction. With
// fees: debit customer the amount, credit revenue the fees, and book the
// difference as a customer leg. Without fees: a customer debit/credit pair.
func transactionEntries(ref string, amount, totalFee decimal.Decimal, currency string, hasFees bool) []domain.LedgerEntry {
	if !hasFees {
		return []domain.LedgerEntry{
			domain.DebitEntry(ref, domain.AccountCustomer, amount, currency, "transfer", domain.EntryTypeTransfer),
			domain.CreditEntry(ref, domain.AccountCustomer, amount, currency, "transfer", domain.EntryTypeTransfer),
		}
	}

	entries := []domain.LedgerEntry{
		domain.DebitEntry(ref, domain.AccountCustomer, amount, currency, "transfer", domain.EntryTypeTransfer),
		domain.CreditEntry(ref, domain.AccountRevenue, totalFee, currency, "transaction fees", domain.EntryTypeFee),
	}
	switch net := amount.Sub(totalFee); {
	case net.IsPositive():
		entries = append(entries, domain.CreditEntry(ref, domain.AccountCustomer, net, currency, "net counterparty leg", domain.EntryTypeTransfer))
	case net.IsNegative():
		entries = append(entries, domain.DebitEntry(ref, domain.AccountCustomer, net.Neg(), currency, "net counterparty leg", domain.EntryTypeTransfer))
	}
	return entries
}

func validatePostRequest(req ports.PostTransactionRequest) error {
	if req.TransactionType == "" {
		return apperror.Validation("transactionType is required")
	}
	if !req.TransferAmount.IsPositive() {
		return apperror.Validation("transferAmount must be positive")
	}
	if !domain.HasMoneyScale(req.TransferAmount) {
		return apperror.Validation("transferAmount must have at most 2 decimal places")
	}
	if req.Currency == "" {
		return apperror.Validation("currency is required")
	}
	if req.Sender.ID == "" {
		return apperror.Validation("sender id is required")
	}
	if !req.Status.IsValid() {
		return apperror.Validation(fmt.Sprintf("unknown status %q", req.Status))
	}
	for i, f := range req.Fees {
		if !f.FeeAmount.IsPositive() {
			return apperror.Validation(fmt.Sprintf("fees[%d].feeAmount must be positive", i))
		}
		if !domain.HasMoneyScale(f.FeeAmount) {
			return apperror.Validation(fmt.Sprintf("fees[%d].feeAmount must have at most 2 decimal places", i))
		}
		if f.FeeType == "" {
			return apperror.Validation(fmt.Sprintf("fees[%d].feeType is required", i))
		}
	}
	return nil
}
