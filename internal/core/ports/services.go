package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// FeeRuleCache is a read-through cache of active rules per transaction type.
type FeeRuleCache interface {
	// Get returns ok=false on a cache miss.
	Get(ctx context.Context, transactionType string) ([]domain.FeeRule, bool, error)
	Set(ctx context.Context, transactionType string, rules []domain.FeeRule, ttl time.Duration) error
	Invalidate(ctx context.Context, transactionType string) error
}

// EventPublisher fans out post-commit events to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// TokenService verifies bearer tokens issued by the identity service.
type TokenService interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the authenticated actor.
type TokenClaims struct {
	ActorID string
	Role    string
}

// --- Service Ports (Business Logic) ---

// FeeCatalog stores fee rules and selects the one that prices a request.
type FeeCatalog interface {
	SelectFeeRule(ctx context.Context, transactionType string, amount decimal.Decimal, tier domain.Tier, region string, now time.Time) (*domain.FeeRule, error)
	QuoteFee(ctx context.Context, req FeeQuoteRequest) (*FeeQuote, error)
	CreateFeeRule(ctx context.Context, rule domain.FeeRule) (*domain.FeeRule, error)
	DeactivateFeeRule(ctx context.Context, id uuid.UUID) (*domain.FeeRule, error)
	GetFeeRule(ctx context.Context, id uuid.UUID) (*domain.FeeRule, error)
	ListFeeRules(ctx context.Context, activeOnly bool) ([]domain.FeeRule, error)
}

// FeeQuoteRequest prices a prospective transaction without a wallet.
type FeeQuoteRequest struct {
	TransactionType string
	Amount          decimal.Decimal
	Tier            domain.Tier
	Region          string
}

// FeeQuote is the selected rule and the fee it yields.
type FeeQuote struct {
	Rule      *domain.FeeRule
	FeeAmount decimal.Decimal
	Total     decimal.Decimal
}

// WalletGuard is the read-only eligibility gate run before posting.
type WalletGuard interface {
	CheckEligibility(ctx context.Context, walletRef string, amount decimal.Decimal, transactionType string) (*Eligibility, error)
}

// Eligibility is returned when a wallet may perform the transaction.
type Eligibility struct {
	WalletRef string
	FeeAmount decimal.Decimal
	FeeType   string
	Total     decimal.Decimal
	Rule      *domain.FeeRule
}

// LedgerJournal appends validated entries inside an open session.
type LedgerJournal interface {
	Post(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error
}

// ReferenceExistsFunc reports whether a generated reference is already taken.
type ReferenceExistsFunc func(ctx context.Context, reference string) (bool, error)

// ReferenceGenerator produces unique human-readable references.
type ReferenceGenerator interface {
	Generate(ctx context.Context, prefix string, exists ReferenceExistsFunc) (string, error)
	BatchReference() string
}

// TransactionPoster commits a transaction and its ledger postings atomically.
type TransactionPoster interface {
	PostTransaction(ctx context.Context, req PostTransactionRequest) (*domain.Transaction, error)
}

// PostTransactionRequest is the validated input for posting. Recipient is
// accepted as an alias of Receiver and folded onto it.
type PostTransactionRequest struct {
	Reference       string
	TransactionType string
	Status          domain.TransactionStatus
	Sender          domain.Party
	Receiver        *domain.Party
	Recipient       *domain.Party
	TransferAmount  decimal.Decimal
	Currency        string
	Fees            []FeeLineInput
}

// FeeLineInput is one fee supplied by the caller.
type FeeLineInput struct {
	FeeAmount   decimal.Decimal
	FeeType     string
	Description string
}

// RevenueRecognizer books an earned fee as platform revenue.
type RevenueRecognizer interface {
	RecordRevenue(ctx context.Context, req RecordRevenueRequest) (*domain.RevenueRecord, error)
}

// RecordRevenueRequest is the validated input for revenue recognition.
type RecordRevenueRequest struct {
	Reference                string
	RevenueType              string
	Amount                   decimal.Decimal
	Currency                 string
	AssociatedTransactionRef string
	Status                   domain.RevenueStatus
	TransactionDate          *time.Time
	Metadata                 map[string]string
}

// SettlementBatcher settles pending revenue records as one batch.
type SettlementBatcher interface {
	SettleBatch(ctx context.Context, req SettleBatchRequest) (*domain.SettlementResult, error)
}

// SettleBatchRequest selects revenue records to settle.
type SettleBatchRequest struct {
	RevenueIDs     []uuid.UUID
	BatchRef       string
	SettlementDate *time.Time
	Notes          string
}

// ReportingService serves read-only views of posted data.
type ReportingService interface {
	GetTransaction(ctx context.Context, reference string) (*domain.Transaction, error)
	GetLedger(ctx context.Context, reference string) (*LedgerView, error)
	ListRevenue(ctx context.Context, params RevenueListParams) ([]domain.RevenueRecord, int64, error)
}

// LedgerView is every entry posted under one reference.
type LedgerView struct {
	Reference   string
	Entries     []domain.LedgerEntry
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balanced    bool
}

// AuditService records audited writes.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
