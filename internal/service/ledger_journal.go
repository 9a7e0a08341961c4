package service

import (
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
)

// LedgerJournalService implements ports.LedgerJournal. It never nets,
// balances or corrects; callers hand it a complete set of entries.
type LedgerJournalService struct {
	repo ports.LedgerRepository
	now  func() time.Time
}

// NewLedgerJournalService creates a new LedgerJournalService.
func NewLedgerJournalService(repo ports.LedgerRepository) *LedgerJournalService {
	return &LedgerJournalService{repo: repo, now: time.Now}
}

// Post stamps ids and dates on entries and appends them inside tx.
func (s *LedgerJournalService) Post(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("post ledger: no entries")
	}

	now := s.now().UTC()
	stamped := make([]domain.LedgerEntry, len(entries))
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("post ledger entry %d for %s: %w", i, e.TransactionRef, err)
		}
		if e.ID == "" {
			e.ID = ulid.Make().String()
		}
		if e.EntryDate.IsZero() {
			e.EntryDate = now
		}
		stamped[i] = e
	}

	if err := s.repo.Append(ctx, tx, stamped); err != nil {
		return fmt.Errorf("append ledger entries: %w", err)
	}
	return nil
}
